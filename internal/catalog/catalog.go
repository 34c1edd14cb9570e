package catalog

import "strings"

// Catalog is an immutable in-memory table of products and offers. The slices
// are copied on the way in and on the way out, so callers can never mutate the
// canonical data. Lookups are linear scans; the catalog is small and static.
type Catalog struct {
	products []Product
	offers   []Offer
}

func New(products []Product, offers []Offer) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		offers:   make([]Offer, len(offers)),
	}

	copy(c.products, products)
	copy(c.offers, offers)

	return c
}

func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)

	return out
}

func (c *Catalog) FindByID(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}

	return Product{}, false
}

func (c *Catalog) FilterByCategory(category string) []Product {
	var out []Product

	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}

	return out
}

// Search matches the query as a case-insensitive substring of the product name
// or category.
func (c *Catalog) Search(query string) []Product {
	q := strings.ToLower(query)

	var out []Product

	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}

	return out
}

func (c *Catalog) Offers() []Offer {
	out := make([]Offer, len(c.offers))
	copy(out, c.offers)

	return out
}
