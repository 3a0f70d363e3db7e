package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyvernhall/snackcupboard/internal/database"
	"github.com/wyvernhall/snackcupboard/internal/staff"
	"github.com/wyvernhall/snackcupboard/internal/staff/store"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func seedStaff(t *testing.T, s *store.Store, members ...*staff.Staff) {
	t.Helper()

	for _, m := range members {
		require.NoError(t, s.CreateStaff(context.Background(), m))
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	s := store.New(testDB(t))
	ctx := context.Background()

	seedStaff(t, s, &staff.Staff{Initials: "JD", Surname: "Doe", Forename: "Jane"})

	got, err := s.GetStaff(ctx, "JD")
	require.NoError(t, err)
	assert.Equal(t, "Doe", got.Surname)
	assert.Nil(t, got.ArchivedAt)

	_, err = s.GetStaff(ctx, "ZZ")
	assert.ErrorIs(t, err, staff.ErrNotFound)

	err = s.CreateStaff(ctx, &staff.Staff{Initials: "JD", Surname: "Other", Forename: "Jim"})
	assert.ErrorIs(t, err, staff.ErrDuplicate)
}

func TestStore_ListStaff(t *testing.T) {
	s := store.New(testDB(t))
	ctx := context.Background()

	archivedAt := time.Now().UTC()
	seedStaff(t, s,
		&staff.Staff{Initials: "JD", Surname: "Doe", Forename: "Jane"},
		&staff.Staff{Initials: "AB", Surname: "Able", Forename: "Anna"},
		&staff.Staff{Initials: "XX", Surname: "Gone", Forename: "Greg", ArchivedAt: &archivedAt},
	)

	active, err := s.ListStaff(ctx, staff.ListFilter{})
	require.NoError(t, err)
	require.Len(t, active, 2)
	// Sorted by surname.
	assert.Equal(t, "AB", active[0].Initials)
	assert.Equal(t, "JD", active[1].Initials)

	all, err := s.ListStaff(ctx, staff.ListFilter{IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := s.ListStaff(ctx, staff.ListFilter{Search: "doe"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "JD", found[0].Initials)
}

func TestStore_UpdateStaff(t *testing.T) {
	s := store.New(testDB(t))
	ctx := context.Background()

	seedStaff(t, s, &staff.Staff{Initials: "JD", Surname: "Doe", Forename: "Jane"})

	archivedAt := time.Now().UTC()
	err := s.UpdateStaff(ctx, &staff.Staff{Initials: "JD", Surname: "Dove", Forename: "June", ArchivedAt: &archivedAt})
	require.NoError(t, err)

	got, err := s.GetStaff(ctx, "JD")
	require.NoError(t, err)
	assert.Equal(t, "Dove", got.Surname)
	assert.NotNil(t, got.ArchivedAt)

	err = s.UpdateStaff(ctx, &staff.Staff{Initials: "ZZ", Surname: "x", Forename: "y"})
	assert.ErrorIs(t, err, staff.ErrNotFound)
}

func TestStore_DeleteArchivedMany(t *testing.T) {
	s := store.New(testDB(t))
	ctx := context.Background()

	archivedAt := time.Now().UTC()
	seedStaff(t, s,
		&staff.Staff{Initials: "JD", Surname: "Doe", Forename: "Jane", ArchivedAt: &archivedAt},
		&staff.Staff{Initials: "AB", Surname: "Able", Forename: "Anna"},
	)

	// One target still active: nothing may be deleted.
	err := s.DeleteArchivedMany(ctx, []string{"JD", "AB"})
	assert.ErrorIs(t, err, staff.ErrNotArchived)

	_, err = s.GetStaff(ctx, "JD")
	require.NoError(t, err)

	// One target missing: same, nothing deleted.
	err = s.DeleteArchivedMany(ctx, []string{"JD", "ZZ"})
	assert.ErrorIs(t, err, staff.ErrNotFound)

	require.NoError(t, s.DeleteArchivedMany(ctx, []string{"JD"}))

	_, err = s.GetStaff(ctx, "JD")
	assert.ErrorIs(t, err, staff.ErrNotFound)
}

func TestStore_ArchiveAndRestoreMany(t *testing.T) {
	s := store.New(testDB(t))
	ctx := context.Background()

	seedStaff(t, s,
		&staff.Staff{Initials: "JD", Surname: "Doe", Forename: "Jane"},
		&staff.Staff{Initials: "AB", Surname: "Able", Forename: "Anna"},
	)

	require.NoError(t, s.ArchiveMany(ctx, []string{"JD", "AB"}, time.Now().UTC()))

	active, err := s.ListStaff(ctx, staff.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, s.RestoreMany(ctx, []string{"JD"}))

	active, err = s.ListStaff(ctx, staff.ListFilter{})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "JD", active[0].Initials)
}

func TestStore_ImportTx(t *testing.T) {
	s := store.New(testDB(t))
	ctx := context.Background()

	archivedAt := time.Now().UTC()
	seedStaff(t, s,
		&staff.Staff{Initials: "JD", Surname: "Doe", Forename: "Jane"},
		&staff.Staff{Initials: "AB", Surname: "Able", Forename: "Anna", ArchivedAt: &archivedAt},
		&staff.Staff{Initials: "XX", Surname: "Gone", Forename: "Greg"},
	)

	itx, err := s.BeginImport(ctx)
	require.NoError(t, err)
	defer itx.Rollback()

	created, err := itx.Upsert(ctx, staff.CreateParams{Initials: "NEW", Surname: "Newman", Forename: "Nora"})
	require.NoError(t, err)
	assert.True(t, created)

	// Existing member updates in place.
	created, err = itx.Upsert(ctx, staff.CreateParams{Initials: "JD", Surname: "Dove", Forename: "Jane"})
	require.NoError(t, err)
	assert.False(t, created)

	// Archived member present in the file is restored.
	created, err = itx.Upsert(ctx, staff.CreateParams{Initials: "AB", Surname: "Able", Forename: "Anna"})
	require.NoError(t, err)
	assert.False(t, created)

	archived, err := itx.ArchiveAbsent(ctx, []string{"NEW", "JD", "AB"}, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(1), archived)

	require.NoError(t, itx.Commit())

	jd, err := s.GetStaff(ctx, "JD")
	require.NoError(t, err)
	assert.Equal(t, "Dove", jd.Surname)

	ab, err := s.GetStaff(ctx, "AB")
	require.NoError(t, err)
	assert.Nil(t, ab.ArchivedAt)

	xx, err := s.GetStaff(ctx, "XX")
	require.NoError(t, err)
	assert.NotNil(t, xx.ArchivedAt)
}

func TestStore_ImportTx_RollbackLeavesNoTrace(t *testing.T) {
	s := store.New(testDB(t))
	ctx := context.Background()

	itx, err := s.BeginImport(ctx)
	require.NoError(t, err)

	_, err = itx.Upsert(ctx, staff.CreateParams{Initials: "JD", Surname: "Doe", Forename: "Jane"})
	require.NoError(t, err)
	require.NoError(t, itx.Rollback())

	_, err = s.GetStaff(ctx, "JD")
	assert.ErrorIs(t, err, staff.ErrNotFound)
}
