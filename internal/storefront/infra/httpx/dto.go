package httpx

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       string  `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
}

type ListResponse struct {
	Products   []ProductResponse `json:"products"`
	Categories []string          `json:"categories"`
	Query      string            `json:"query"`
	ActiveCat  string            `json:"active_cat"`
}

type ProductDetailResponse struct {
	Product ProductResponse   `json:"product"`
	Stars   []string          `json:"stars"`
	Related []ProductResponse `json:"related"`
}

type CartLineResponse struct {
	Product   ProductResponse `json:"product"`
	Quantity  int             `json:"qty"`
	LineTotal string          `json:"line_total"`
}

type SummaryResponse struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	SummaryResponse
}

type AddToCartResponse struct {
	OK        bool   `json:"ok"`
	CartCount int    `json:"cart_count"`
	Message   string `json:"message"`
}

type UpdateCartResponse struct {
	OK        bool            `json:"ok"`
	CartCount int             `json:"cart_count"`
	Summary   SummaryResponse `json:"summary"`
}

type RemoveFromCartResponse struct {
	OK        bool `json:"ok"`
	CartCount int  `json:"cart_count"`
}

type SuggestionResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type CheckoutResponse struct {
	OK      bool            `json:"ok"`
	Message string          `json:"message"`
	Summary SummaryResponse `json:"summary"`
}

type GlobalsResponse struct {
	SiteName   string   `json:"site_name"`
	CartCount  int      `json:"cart_count"`
	Categories []string `json:"categories"`
}

type FailureResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
