package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/domain/entity"
)

// Image URLs are Unsplash placeholders. Hyphens in names and descriptions are
// U+2011 non-breaking hyphens, so a search typed with "-" does not match them.
var seed = []entity.Product{
	{
		ID:          "kang-001",
		Name:        "Cangroo Canvas Tote",
		Price:       decimal.RequireFromString("19.99"),
		Category:    "Bags",
		Image:       "https://images.unsplash.com/photo-1520975916090-3105956dac38?q=80&w=1200&auto=format&fit=crop",
		Rating:      decimal.RequireFromString("4.6"),
		Description: "Eco‑friendly canvas tote with a springy Cangroo emblem. Folds flat, carries everything.",
	},
	{
		ID:          "kang-002",
		Name:        "Cangroo Runner Sneakers",
		Price:       decimal.RequireFromString("74.50"),
		Category:    "Shoes",
		Image:       "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?q=80&w=1200&auto=format&fit=crop",
		Rating:      decimal.RequireFromString("4.8"),
		Description: "Lightweight daily trainers with bounce. Mesh upper, comfy foam midsole.",
	},
	{
		ID:          "kang-003",
		Name:        "Cangroo Thermal Bottle 1L",
		Price:       decimal.RequireFromString("29.00"),
		Category:    "Accessories",
		Image:       "https://images.unsplash.com/photo-1542736667-069246bdbc74?q=80&w=1200&auto=format&fit=crop",
		Rating:      decimal.RequireFromString("4.7"),
		Description: "Keeps drinks icy for 24h and hot for 12h. Powder‑coated finish, leak‑proof cap.",
	},
	{
		ID:          "kang-004",
		Name:        "Cangroo Hoodie (Unisex)",
		Price:       decimal.RequireFromString("49.90"),
		Category:    "Apparel",
		Image:       "https://images.unsplash.com/photo-1503342217505-b0a15cf70489?q=80&w=1200&auto=format&fit=crop",
		Rating:      decimal.RequireFromString("4.5"),
		Description: "Mid‑weight fleece hoodie with soft hand‑feel and relaxed fit.",
	},
	{
		ID:          "kang-005",
		Name:        "Cangroo Trail Backpack 22L",
		Price:       decimal.RequireFromString("89.00"),
		Category:    "Bags",
		Image:       "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?q=80&w=1200&auto=format&fit=crop",
		Rating:      decimal.RequireFromString("4.9"),
		Description: "All‑day pack with breathable back panel, laptop sleeve, and stretch pockets.",
	},
	{
		ID:          "kang-006",
		Name:        "Cangroo Tee (Organic)",
		Price:       decimal.RequireFromString("24.00"),
		Category:    "Apparel",
		Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?q=80&w=1200&auto=format&fit=crop",
		Rating:      decimal.RequireFromString("4.4"),
		Description: "100% organic cotton tee. Silky smooth, pre‑shrunk, and durable.",
	},
	{
		ID:          "kang-007",
		Name:        "Cangroo Sport Socks (3‑Pack)",
		Price:       decimal.RequireFromString("12.00"),
		Category:    "Accessories",
		Image:       "https://images.unsplash.com/photo-1512436991641-6745cdb1723f?q=80&w=1200&auto=format&fit=crop",
		Rating:      decimal.RequireFromString("4.3"),
		Description: "Cushioned heel & toe, breathable mesh zones. Bounce with every hop.",
	},
	{
		ID:          "kang-008",
		Name:        "Cangroo Daylight Sunglasses",
		Price:       decimal.RequireFromString("39.50"),
		Category:    "Accessories",
		Image:       "https://images.unsplash.com/photo-1511499767150-a48a237f0083?q=80&w=1200&auto=format&fit=crop",
		Rating:      decimal.RequireFromString("4.6"),
		Description: "Polarized lenses with UV400 protection. Matte finish frames.",
	},
}

// Default returns the built-in storefront catalog.
func Default() *Catalog {
	c, err := New(seed)
	if err != nil {
		panic(err)
	}
	return c
}
