package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/grazingtrail/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of the export.
var csvHeaders = []string{"username", "place", "lat", "lon", "visited_at"}

// GetExport handles GET /export.
// One row per ledger entry, oldest first. Visits without a coordinate get
// empty lat/lon cells.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="visits.csv"`)

	cw := csv.NewWriter(w)
	//nolint:errcheck // the underlying writer reports failures on Flush
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(exportRowToCSVRecord(row))
	}
	cw.Flush()
}

// exportRowToCSVRecord encodes one ExportRow as a flat string slice.
// Nil coordinates are encoded as empty strings.
func exportRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.Username,
		r.Place,
		formatOptionalFloat(r.Lat),
		formatOptionalFloat(r.Lon),
		r.VisitedAt.UTC().Format(time.RFC3339),
	}
}

// formatOptionalFloat returns the shortest representation of f, or "" if f is nil.
func formatOptionalFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
