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
	"github.com/wyvernhall/snackcupboard/internal/reset/store"
	"github.com/wyvernhall/snackcupboard/internal/term"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func seedEverything(t *testing.T, db *sql.DB) {
	t.Helper()

	archivedAt := time.Now().UTC()

	_, err := db.Exec(`INSERT INTO staff (initials, surname, forename) VALUES ('JD', 'Doe', 'Jane')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO staff (initials, surname, forename, archived_at) VALUES ('AB', 'Brown', 'Alex', ?)`,
		archivedAt)
	require.NoError(t, err)

	itemID := uuid.NewString()
	_, err = db.Exec(`INSERT INTO items (id, name, price_pence, category) VALUES (?, 'Coke', 150, 'Drink')`,
		itemID)
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO purchases (id, staff_initials, staff_forename, staff_surname,
			item_id, item_name, quantity, unit_price_pence, term, academic_year, created_at)
		VALUES (?, 'JD', 'Jane', 'Doe', ?, 'Coke', 2, 150, 'Michaelmas', '2025-26', ?)`,
		uuid.NewString(), itemID, time.Now().UTC())
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO terms (term, academic_year) VALUES ('Michaelmas', '2025-26')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO settings (key, value) VALUES ('currency', 'GBP')`)
	require.NoError(t, err)
}

func count(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))

	return n
}

func TestStore_Wipe(t *testing.T) {
	db := testDB(t)
	s := store.New(db)
	ctx := context.Background()

	seedEverything(t, db)

	seed := term.Current{Term: term.Hilary, AcademicYear: "2026-27"}
	require.NoError(t, s.Wipe(ctx, seed))

	assert.Zero(t, count(t, db, "purchases"))
	assert.Zero(t, count(t, db, "staff"))
	assert.Zero(t, count(t, db, "items"))

	// The terms catalog holds exactly the reseeded pair.
	var seededTerm, seededYear string
	require.NoError(t, db.QueryRow(`SELECT term, academic_year FROM terms`).Scan(&seededTerm, &seededYear))
	assert.Equal(t, term.Hilary, seededTerm)
	assert.Equal(t, "2026-27", seededYear)

	stats, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Terms)
	assert.Equal(t, 1, stats.Total)
}

func TestStore_Wipe_PreservesCurrency(t *testing.T) {
	db := testDB(t)
	s := store.New(db)
	ctx := context.Background()

	seedEverything(t, db)

	require.NoError(t, s.Wipe(ctx, term.Current{Term: term.Trinity, AcademicYear: "2025-26"}))

	var currency string
	require.NoError(t, db.QueryRow(`SELECT value FROM settings WHERE key = 'currency'`).Scan(&currency))
	assert.Equal(t, "GBP", currency)

	// Besides currency only the two reseeded keys remain.
	var currentTerm, currentYear string
	require.NoError(t, db.QueryRow(`SELECT value FROM settings WHERE key = 'current_term'`).Scan(&currentTerm))
	require.NoError(t, db.QueryRow(`SELECT value FROM settings WHERE key = 'current_academic_year'`).Scan(&currentYear))
	assert.Equal(t, term.Trinity, currentTerm)
	assert.Equal(t, "2025-26", currentYear)

	assert.Equal(t, 3, count(t, db, "settings"))
}

func TestStore_CountsAndSnapshot(t *testing.T) {
	db := testDB(t)
	s := store.New(db)
	ctx := context.Background()

	seedEverything(t, db)

	stats, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Purchases)
	assert.Equal(t, 1, stats.Staff)
	assert.Equal(t, 1, stats.ArchivedStaff)
	assert.Equal(t, 1, stats.Items)
	assert.Equal(t, 0, stats.ArchivedItems)
	assert.Equal(t, 1, stats.Terms)
	assert.Equal(t, 5, stats.Total)

	data, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, data.Purchases, 1)
	assert.Equal(t, "JD", data.Purchases[0].StaffInitials)
	require.NotNil(t, data.Purchases[0].ItemID)
	assert.Len(t, data.Staff, 2)
	assert.Len(t, data.Items, 1)
	assert.Len(t, data.Terms, 1)

	keys := make([]string, len(data.Settings))
	for i, kv := range data.Settings {
		keys[i] = kv.Key
	}
	assert.Equal(t, []string{"currency", "current_academic_year", "current_term"}, keys)
}
