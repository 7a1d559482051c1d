package domain

import "time"

// ExportRow is a single row in the full-ledger export.
// It is a flat, denormalized view: one row per visit, with the username
// repeated on every row. Users with no visits do not appear; the export is
// a dump of the ledger, not of the user table.
type ExportRow struct {
	Username  string
	Place     string
	Lat       *float64 // nil when the visit carries no coordinate
	Lon       *float64
	VisitedAt time.Time
}
