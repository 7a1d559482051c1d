package service

import (
	"context"
	"fmt"

	"github.com/grazingtrail/backend/internal/domain"
	"github.com/grazingtrail/backend/internal/repo"
)

// ExportService assembles a full flat export of the visit ledger.
type ExportService struct {
	visits repo.VisitRepo
}

// NewExportService constructs an ExportService backed by the provided VisitRepo.
func NewExportService(visits repo.VisitRepo) *ExportService {
	return &ExportService{visits: visits}
}

// Export returns one ExportRow per ledger entry, oldest first, with the
// username resolved on every row. Users with no visits do not appear.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	rows, err := s.visits.ExportRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	if rows == nil {
		rows = []domain.ExportRow{}
	}
	return rows, nil
}
