package catalog

import "time"

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       int     `json:"price"`
	ABV         float64 `json:"abv"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// Offer is a promotional record shown alongside the catalog. Offers are
// display-only: the order pipeline never reads them.
type Offer struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	ValidUntil     time.Time      `json:"valid_until"`
	MinOrderValue  int            `json:"min_order_value,omitempty"`
	MinQuantity    int            `json:"min_quantity,omitempty"`
	ApplicableDays []time.Weekday `json:"applicable_days,omitempty"`
}
