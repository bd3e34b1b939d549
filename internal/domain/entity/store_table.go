// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoreTable represents a single seating table inside a store, used by the
// reservation flow to track capacity and occupancy.
type StoreTable struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the table record.
	StoreID   int64     `json:"store_id"`   // The store this table belongs to.
	Name      string    `json:"name"`       // Display label for the table, e.g. "A-3".
	Capacity  int       `json:"capacity"`   // Number of seats at the table.
	InUse     bool      `json:"in_use"`     // Whether the table is currently occupied.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this table was registered.
}
