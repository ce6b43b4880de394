// Package catalog holds the read-only product list and the lookups the
// storefront runs over it. A Catalog is safe for concurrent use because it
// is never mutated after New returns.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/domain/entity"
)

// ErrProductNotFound is returned when an identifier does not resolve.
var ErrProductNotFound = errors.New("product not found")

// Catalog is an immutable, ordered set of products.
type Catalog struct {
	products   []entity.Product
	byID       map[string]int
	categories []string
}

// New builds a catalog preserving the given order. Identifiers must be unique.
func New(products []entity.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]entity.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(c.products, products)

	seen := make(map[string]struct{})
	for i, p := range c.products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: product at index %d has empty id", i)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		c.byID[p.ID] = i
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			c.categories = append(c.categories, p.Category)
		}
	}
	sort.Strings(c.categories)

	return c, nil
}

// FindByID returns the product with exactly the given identifier.
func (c *Catalog) FindByID(id string) (entity.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return entity.Product{}, fmt.Errorf("catalog: %q: %w", id, ErrProductNotFound)
	}
	return c.products[i], nil
}

// All returns every product in catalog order.
func (c *Catalog) All() []entity.Product {
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Filter returns products matching category (exact) and query (case-insensitive
// substring of name or description). Empty arguments match everything.
func (c *Catalog) Filter(category, query string) []entity.Product {
	q := strings.ToLower(query)
	out := make([]entity.Product, 0, len(c.products))
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the distinct categories in ascending order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Related returns up to limit products sharing p's category, excluding p itself.
func (c *Catalog) Related(p entity.Product, limit int) []entity.Product {
	out := make([]entity.Product, 0, limit)
	for _, other := range c.products {
		if len(out) >= limit {
			break
		}
		if other.Category == p.Category && other.ID != p.ID {
			out = append(out, other)
		}
	}
	return out
}

// Suggest powers the type-ahead search box. The query is trimmed and matched
// against "name description" as a single lower-cased haystack.
func (c *Catalog) Suggest(query string, limit int) []entity.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return []entity.Product{}
	}

	out := make([]entity.Product, 0, limit)
	for _, p := range c.products {
		hay := strings.ToLower(p.Name + " " + p.Description)
		if strings.Contains(hay, q) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
