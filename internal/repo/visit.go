package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/grazingtrail/backend/internal/domain"
)

// VisitRepo defines the persistence operations for the visit ledger.
// The ledger is append-only: there is no update or delete. Repeated inserts
// for the same (user, place) pair are allowed and each row counts on the
// leaderboard.
type VisitRepo interface {
	// Create appends one visit and returns the persisted record (with
	// DB-generated id populated). The write is committed before Create
	// returns, so a read issued afterwards observes it.
	Create(ctx context.Context, visit domain.Visit) (domain.Visit, error)

	// HasVisited reports whether the user has at least one ledger entry for
	// the exact place name (case-sensitive).
	HasVisited(ctx context.Context, userID uuid.UUID, place string) (bool, error)

	// VisitedNames returns the distinct place names the user has visited.
	// Feeds the match filter's exclusion step; read fresh at query time.
	VisitedNames(ctx context.Context, userID uuid.UUID) ([]string, error)

	// ListByUser returns one page of the user's visits, most recent first,
	// plus the total count across all pages.
	ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Visit, int64, error)

	// CountsByUser computes the leaderboard: every registered user with their
	// total visit count, ordered by count descending then username ascending.
	// Users with zero visits appear with count 0.
	CountsByUser(ctx context.Context) ([]domain.LeaderboardEntry, error)

	// ExportRows returns the full ledger joined with usernames, ordered by
	// visit time ascending, for the CSV export.
	ExportRows(ctx context.Context) ([]domain.ExportRow, error)
}

// pgVisitRepo is the Postgres implementation of VisitRepo.
type pgVisitRepo struct {
	db db
}

// NewVisitRepo constructs a VisitRepo backed by the provided db connection.
func NewVisitRepo(db db) VisitRepo {
	return &pgVisitRepo{db: db}
}

// Create appends one visit row. The foreign key on user_id enforces
// referential integrity at write time: a visit can never reference a user
// that does not exist.
func (r *pgVisitRepo) Create(ctx context.Context, visit domain.Visit) (domain.Visit, error) {
	const q = `
		INSERT INTO visits (user_id, place, lat, lon, visited_at)
		VALUES (@user_id, @place, @lat, @lon, @visited_at)
		RETURNING id, user_id, place, lat, lon, visited_at`

	args := pgx.NamedArgs{
		"user_id":    visit.UserID,
		"place":      visit.Place,
		"lat":        visit.Lat, // nil becomes NULL
		"lon":        visit.Lon,
		"visited_at": visit.VisitedAt,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVisit(row)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("repo.VisitRepo.Create: %w", err)
	}
	return result, nil
}

// HasVisited reports whether a ledger entry exists for (user, place).
func (r *pgVisitRepo) HasVisited(ctx context.Context, userID uuid.UUID, place string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM visits
			WHERE user_id = @user_id AND place = @place
		)`

	var exists bool
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "place": place}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repo.VisitRepo.HasVisited: %w", err)
	}
	return exists, nil
}

// VisitedNames returns the distinct place names in the user's ledger.
func (r *pgVisitRepo) VisitedNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const q = `
		SELECT DISTINCT place
		FROM visits
		WHERE user_id = @user_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.VisitRepo.VisitedNames: %w", err)
	}
	defer rows.Close()

	var places []string
	for rows.Next() {
		var place string
		if err := rows.Scan(&place); err != nil {
			return nil, fmt.Errorf("repo.VisitRepo.VisitedNames: scan: %w", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VisitRepo.VisitedNames: rows: %w", err)
	}
	return places, nil
}

// ListByUser returns one page of visits ordered by visited_at descending.
func (r *pgVisitRepo) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Visit, int64, error) {
	const countQ = `SELECT count(*) FROM visits WHERE user_id = @user_id`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"user_id": userID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.VisitRepo.ListByUser: count: %w", err)
	}

	const q = `
		SELECT id, user_id, place, lat, lon, visited_at
		FROM visits
		WHERE user_id = @user_id
		ORDER BY visited_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"user_id": userID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.VisitRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	visits := []domain.Visit{}
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.VisitRepo.ListByUser: scan: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.VisitRepo.ListByUser: rows: %w", err)
	}
	return visits, total, nil
}

// CountsByUser recomputes the leaderboard from scratch on every call.
// The LEFT JOIN keeps zero-visit users in the result; the secondary sort on
// username makes ties deterministic.
func (r *pgVisitRepo) CountsByUser(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	const q = `
		SELECT u.username, count(v.id) AS visits
		FROM users u
		LEFT JOIN visits v ON v.user_id = u.id
		GROUP BY u.username
		ORDER BY visits DESC, u.username ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VisitRepo.CountsByUser: %w", err)
	}
	defer rows.Close()

	entries := []domain.LeaderboardEntry{}
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.Visits); err != nil {
			return nil, fmt.Errorf("repo.VisitRepo.CountsByUser: scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VisitRepo.CountsByUser: rows: %w", err)
	}
	return entries, nil
}

// ExportRows returns the full ledger joined with usernames, oldest first.
func (r *pgVisitRepo) ExportRows(ctx context.Context) ([]domain.ExportRow, error) {
	const q = `
		SELECT u.username, v.place, v.lat, v.lon, v.visited_at
		FROM visits v
		JOIN users u ON u.id = v.user_id
		ORDER BY v.visited_at ASC, v.id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VisitRepo.ExportRows: %w", err)
	}
	defer rows.Close()

	out := []domain.ExportRow{}
	for rows.Next() {
		var row domain.ExportRow
		if err := rows.Scan(&row.Username, &row.Place, &row.Lat, &row.Lon, &row.VisitedAt); err != nil {
			return nil, fmt.Errorf("repo.VisitRepo.ExportRows: scan: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VisitRepo.ExportRows: rows: %w", err)
	}
	return out, nil
}

// scanVisit maps a single database row into a domain.Visit.
// It handles the UUID and nullable lat/lon conversions.
func scanVisit(s scanner) (domain.Visit, error) {
	var (
		v      domain.Visit
		id     pgtype.UUID
		userID pgtype.UUID
	)

	err := s.Scan(&id, &userID, &v.Place, &v.Lat, &v.Lon, &v.VisitedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Visit{}, domain.ErrNotFound
		}
		return domain.Visit{}, err
	}

	v.ID = uuid.UUID(id.Bytes)
	v.UserID = uuid.UUID(userID.Bytes)
	return v, nil
}
