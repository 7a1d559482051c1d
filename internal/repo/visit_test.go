package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grazingtrail/backend/internal/domain"
	"github.com/grazingtrail/backend/internal/repo"
)

// newVisitFixtures returns both repos over the same rollback transaction plus
// a registered user to attach visits to.
func newVisitFixtures(t *testing.T) (repo.UserRepo, repo.VisitRepo, domain.User) {
	t.Helper()
	tx := newTestTx(t)

	users := repo.NewUserRepo(tx)
	visits := repo.NewVisitRepo(tx)

	u, err := users.Create(context.Background(), "alice", "hash")
	require.NoError(t, err)

	return users, visits, u
}

// visitFixture returns a domain.Visit with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func visitFixture(userID uuid.UUID) domain.Visit {
	lat, lon := 40.0, -75.0
	return domain.Visit{
		UserID:    userID,
		Place:     "Pizza Place",
		Lat:       &lat,
		Lon:       &lon,
		VisitedAt: time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC),
	}
}

func TestVisitRepo_Create(t *testing.T) {
	_, visits, u := newVisitFixtures(t)
	ctx := context.Background()

	input := visitFixture(u.ID)
	got, err := visits.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, [16]byte{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, u.ID, got.UserID)
	assert.Equal(t, "Pizza Place", got.Place)
	require.NotNil(t, got.Lat)
	require.NotNil(t, got.Lon)
	assert.InDelta(t, 40.0, *got.Lat, 1e-9)
	assert.InDelta(t, -75.0, *got.Lon, 1e-9)
	assert.True(t, got.VisitedAt.Equal(input.VisitedAt), "VisitedAt mismatch")
}

func TestVisitRepo_Create_NilCoordinates(t *testing.T) {
	_, visits, u := newVisitFixtures(t)
	ctx := context.Background()

	input := visitFixture(u.ID)
	input.Lat, input.Lon = nil, nil

	got, err := visits.Create(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, got.Lat)
	assert.Nil(t, got.Lon)
}

func TestVisitRepo_Create_UnknownUser(t *testing.T) {
	_, visits, _ := newVisitFixtures(t)
	ctx := context.Background()

	input := visitFixture(uuid.New()) // never registered

	_, err := visits.Create(ctx, input)

	// The foreign key rejects ledger rows for users that do not exist.
	assert.Error(t, err)
}

func TestVisitRepo_Create_DuplicatesAllowed(t *testing.T) {
	_, visits, u := newVisitFixtures(t)
	ctx := context.Background()

	_, err := visits.Create(ctx, visitFixture(u.ID))
	require.NoError(t, err)
	_, err = visits.Create(ctx, visitFixture(u.ID))
	require.NoError(t, err)

	_, total, err := visits.ListByUser(ctx, u.ID, domain.NewPaginationParams("", ""))
	require.NoError(t, err)
	assert.EqualValues(t, 2, total, "repeat visits each get their own row")
}

func TestVisitRepo_HasVisited(t *testing.T) {
	_, visits, u := newVisitFixtures(t)
	ctx := context.Background()

	_, err := visits.Create(ctx, visitFixture(u.ID))
	require.NoError(t, err)

	seen, err := visits.HasVisited(ctx, u.ID, "Pizza Place")
	require.NoError(t, err)
	assert.True(t, seen)

	seen, err = visits.HasVisited(ctx, u.ID, "pizza place")
	require.NoError(t, err)
	assert.False(t, seen, "place names match case-sensitively")

	seen, err = visits.HasVisited(ctx, u.ID, "Somewhere Else")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestVisitRepo_VisitedNames_Distinct(t *testing.T) {
	_, visits, u := newVisitFixtures(t)
	ctx := context.Background()

	for _, place := range []string{"Pizza Place", "Pizza Place", "Taco Cart"} {
		v := visitFixture(u.ID)
		v.Place = place
		_, err := visits.Create(ctx, v)
		require.NoError(t, err)
	}

	got, err := visits.VisitedNames(ctx, u.ID)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Pizza Place", "Taco Cart"}, got)
}

func TestVisitRepo_ListByUser_MostRecentFirst(t *testing.T) {
	_, visits, u := newVisitFixtures(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, place := range []string{"First", "Second", "Third"} {
		v := visitFixture(u.ID)
		v.Place = place
		v.VisitedAt = base.AddDate(0, 0, i)
		_, err := visits.Create(ctx, v)
		require.NoError(t, err)
	}

	got, total, err := visits.ListByUser(ctx, u.ID, domain.NewPaginationParams("", ""))

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, got, 3)
	assert.Equal(t, "Third", got[0].Place)
	assert.Equal(t, "Second", got[1].Place)
	assert.Equal(t, "First", got[2].Place)
}

func TestVisitRepo_ListByUser_Paginated(t *testing.T) {
	_, visits, u := newVisitFixtures(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := range 5 {
		v := visitFixture(u.ID)
		v.VisitedAt = base.Add(time.Duration(i) * time.Hour)
		_, err := visits.Create(ctx, v)
		require.NoError(t, err)
	}

	page2, total, err := visits.ListByUser(ctx, u.ID, domain.NewPaginationParams("2", "2"))

	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page2, 2)
}

func TestVisitRepo_CountsByUser(t *testing.T) {
	users, visits, alice := newVisitFixtures(t)
	ctx := context.Background()

	bob, err := users.Create(ctx, "bob", "hash")
	require.NoError(t, err)
	_, err = users.Create(ctx, "carol", "hash") // zero visits
	require.NoError(t, err)

	for _, uid := range []uuid.UUID{alice.ID, alice.ID, bob.ID} {
		_, err := visits.Create(ctx, visitFixture(uid))
		require.NoError(t, err)
	}

	got, err := visits.CountsByUser(ctx)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, domain.LeaderboardEntry{Username: "alice", Visits: 2}, got[0])
	assert.Equal(t, domain.LeaderboardEntry{Username: "bob", Visits: 1}, got[1])
	assert.Equal(t, domain.LeaderboardEntry{Username: "carol", Visits: 0}, got[2],
		"registered user with no visits still appears")
}

func TestVisitRepo_CountsByUser_TiesBrokenByUsername(t *testing.T) {
	users, visits, alice := newVisitFixtures(t)
	ctx := context.Background()

	zed, err := users.Create(ctx, "zed", "hash")
	require.NoError(t, err)

	for _, uid := range []uuid.UUID{alice.ID, zed.ID} {
		_, err := visits.Create(ctx, visitFixture(uid))
		require.NoError(t, err)
	}

	got, err := visits.CountsByUser(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].Username)
	assert.Equal(t, "zed", got[1].Username)
}

func TestVisitRepo_ExportRows(t *testing.T) {
	_, visits, u := newVisitFixtures(t)
	ctx := context.Background()

	early := visitFixture(u.ID)
	early.Place = "Early Stop"
	early.VisitedAt = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	late := visitFixture(u.ID)
	late.Place = "Late Stop"
	late.Lat, late.Lon = nil, nil
	late.VisitedAt = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	for _, v := range []domain.Visit{late, early} {
		_, err := visits.Create(ctx, v)
		require.NoError(t, err)
	}

	got, err := visits.ExportRows(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Early Stop", got[0].Place, "export is oldest first")
	assert.Equal(t, "alice", got[0].Username)
	assert.Nil(t, got[1].Lat)
}
