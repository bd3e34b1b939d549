// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentItem is a single ordered line within a reservation's bill: one menu
// item, an optional option, a quantity and the unit amount. A reservation's
// bill is the set of its payment items.
type PaymentItem struct {
	ID            uuid.UUID `json:"id"`             // The unique identifier for this line item.
	ReservationID int64     `json:"reservation_id"` // The reservation this line belongs to.
	StoreID       int64     `json:"store_id"`       // The store the order was placed at.
	MenuID        int64     `json:"menu_id"`        // The ordered menu item.
	OptionID      int64     `json:"option_id"`      // The selected option; defaults to the base option.
	Quantity      int       `json:"quantity"`       // Number of units ordered.
	Amount        int64     `json:"amount"`         // Unit price in the smallest currency unit.
	CreatedAt     time.Time `json:"created_at"`
}
