package order

import (
	"time"

	"github.com/daarukart/storefront/internal/catalog"
)

// StatusConfirmed is the only status a booking ever carries; there is no
// fulfilment flow behind the demo.
const StatusConfirmed = "confirmed"

// FormInput is the raw, unvalidated delivery form. Missing fields arrive as
// empty strings.
type FormInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Pin      string `json:"pin"`
	Payment  string `json:"payment"`
	Quantity string `json:"quantity"`
}

// ValidatedData is the form after validation. Only the phone is rewritten
// (whitespace stripped); every other field passes through as submitted, so
// quantity stays a string and is re-parsed when the total is computed.
type ValidatedData FormInput

type ETA struct {
	Date        time.Time `json:"date"`
	DateString  string    `json:"date_string"`
	DaysFromNow int       `json:"days_from_now"`
	Relative    string    `json:"relative"`
}

// Booking embeds a full product snapshot rather than an id, so a stored
// booking stays renderable even if the catalog changes underneath it.
type Booking struct {
	ID          string          `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Status      string          `json:"status"`
	Customer    ValidatedData   `json:"customer"`
	Product     catalog.Product `json:"product"`
	ETA         ETA             `json:"eta"`
	TotalAmount int             `json:"total_amount"`
}
