package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyvernhall/snackcupboard/internal/database"
	"github.com/wyvernhall/snackcupboard/internal/term"
	"github.com/wyvernhall/snackcupboard/internal/term/store"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func insertPurchase(t *testing.T, db *sql.DB, termName, year string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO purchases (id, staff_initials, staff_forename, staff_surname,
			item_name, quantity, unit_price_pence, term, academic_year, created_at)
		VALUES (?, 'JD', 'Jane', 'Doe', 'Coke', 1, 150, ?, ?, ?)`,
		uuid.NewString(), termName, year, time.Now().UTC())
	require.NoError(t, err)
}

func TestStore_CurrentTerm_Defaults(t *testing.T) {
	s := store.New(testDB(t))

	cur, err := s.CurrentTerm(context.Background())
	require.NoError(t, err)

	assert.Equal(t, term.Michaelmas, cur.Term)
	assert.Equal(t, "2024-25", cur.AcademicYear)
}

func TestStore_SetCurrentTerm(t *testing.T) {
	db := testDB(t)
	s := store.New(db)
	ctx := context.Background()

	next := term.Current{Term: term.Hilary, AcademicYear: "2025-26"}
	require.NoError(t, s.SetCurrentTerm(ctx, next))

	cur, err := s.CurrentTerm(ctx)
	require.NoError(t, err)
	assert.Equal(t, next, cur)

	// The pair also lands in the terms catalog, exactly once.
	require.NoError(t, s.SetCurrentTerm(ctx, next))

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM terms WHERE term = ? AND academic_year = ?`,
		next.Term, next.AcademicYear).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_ListTerms_Ordering(t *testing.T) {
	db := testDB(t)
	s := store.New(db)
	ctx := context.Background()

	for _, cur := range []term.Current{
		{Term: term.Michaelmas, AcademicYear: "2024-25"},
		{Term: term.Trinity, AcademicYear: "2024-25"},
		{Term: term.Hilary, AcademicYear: "2024-25"},
		{Term: term.Michaelmas, AcademicYear: "2025-26"},
	} {
		require.NoError(t, s.SetCurrentTerm(ctx, cur))
	}

	insertPurchase(t, db, term.Trinity, "2024-25")
	insertPurchase(t, db, term.Trinity, "2024-25")

	infos, err := s.ListTerms(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 4)

	// Newest year first, then Trinity before Hilary before Michaelmas.
	assert.Equal(t, term.Michaelmas, infos[0].Term)
	assert.Equal(t, "2025-26", infos[0].AcademicYear)
	assert.Equal(t, term.Trinity, infos[1].Term)
	assert.Equal(t, term.Hilary, infos[2].Term)
	assert.Equal(t, term.Michaelmas, infos[3].Term)

	assert.Equal(t, 2, infos[1].PurchaseCount)
	assert.Equal(t, 0, infos[2].PurchaseCount)
}

func TestStore_SetCurrentTerm_LeavesPurchaseStampsAlone(t *testing.T) {
	db := testDB(t)
	s := store.New(db)
	ctx := context.Background()

	require.NoError(t, s.SetCurrentTerm(ctx, term.Current{Term: term.Michaelmas, AcademicYear: "2025-26"}))
	insertPurchase(t, db, term.Michaelmas, "2025-26")

	require.NoError(t, s.SetCurrentTerm(ctx, term.Current{Term: term.Hilary, AcademicYear: "2025-26"}))

	// Purchases carry the term they were stamped with at record time,
	// not the current setting.
	var stampedTerm, stampedYear string
	err := db.QueryRow(`SELECT term, academic_year FROM purchases`).Scan(&stampedTerm, &stampedYear)
	require.NoError(t, err)
	assert.Equal(t, term.Michaelmas, stampedTerm)
	assert.Equal(t, "2025-26", stampedYear)
}

func TestStore_DeleteTerm(t *testing.T) {
	db := testDB(t)
	s := store.New(db)
	ctx := context.Background()

	require.NoError(t, s.SetCurrentTerm(ctx, term.Current{Term: term.Hilary, AcademicYear: "2024-25"}))
	require.NoError(t, s.SetCurrentTerm(ctx, term.Current{Term: term.Trinity, AcademicYear: "2024-25"}))

	insertPurchase(t, db, term.Hilary, "2024-25")

	err := s.DeleteTerm(ctx, term.Hilary, "2024-25")
	assert.ErrorIs(t, err, term.ErrHasPurchases)

	err = s.DeleteTerm(ctx, term.Michaelmas, "1999-00")
	assert.ErrorIs(t, err, term.ErrNotFound)

	require.NoError(t, s.DeleteTerm(ctx, term.Trinity, "2024-25"))

	infos, err := s.ListTerms(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, term.Hilary, infos[0].Term)
}
