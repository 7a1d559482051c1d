package domain

import (
	"time"

	"github.com/google/uuid"
)

// Visit is one confirmed recommendation, appended to the ledger when the user
// accepts a place. Visits are append-only; there is no update or delete.
// A user visiting the same named place twice produces two rows, and both
// count on the leaderboard.
//
// Lat and Lon are nil when the place record carried no coordinate; such a
// visit is valid but cannot be mapped.
type Visit struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Place     string    `json:"place"`
	Lat       *float64  `json:"lat,omitempty"`
	Lon       *float64  `json:"lon,omitempty"`
	VisitedAt time.Time `json:"visited_at"`
}
