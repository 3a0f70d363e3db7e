package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wyvernhall/snackcupboard/internal/term"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const (
	keyCurrentTerm = "current_term"
	keyCurrentYear = "current_academic_year"
)

func (s *Store) CurrentTerm(ctx context.Context) (term.Current, error) {
	// Migrations seed both keys; fall back to the same defaults anyway so
	// a hand-edited settings table cannot break checkout.
	cur := term.Current{Term: term.Michaelmas, AcademicYear: "2024-25"}

	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM settings WHERE key IN (?, ?)`, keyCurrentTerm, keyCurrentYear)
	if err != nil {
		return term.Current{}, fmt.Errorf("reading current term: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return term.Current{}, fmt.Errorf("scanning setting: %w", err)
		}

		switch key {
		case keyCurrentTerm:
			cur.Term = value
		case keyCurrentYear:
			cur.AcademicYear = value
		}
	}

	if err := rows.Err(); err != nil {
		return term.Current{}, fmt.Errorf("iterating settings: %w", err)
	}

	return cur, nil
}

func (s *Store) SetCurrentTerm(ctx context.Context, cur term.Current) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO terms (term, academic_year) VALUES (?, ?)`,
		cur.Term, cur.AcademicYear)
	if err != nil {
		return fmt.Errorf("upserting term: %w", err)
	}

	upsert := `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`

	if _, err := tx.ExecContext(ctx, upsert, keyCurrentTerm, cur.Term); err != nil {
		return fmt.Errorf("writing current term: %w", err)
	}

	if _, err := tx.ExecContext(ctx, upsert, keyCurrentYear, cur.AcademicYear); err != nil {
		return fmt.Errorf("writing current year: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing tx: %w", err)
	}

	return nil
}

// ListTerms orders by academic year descending, then reverse calendar
// order within the year (Trinity, Hilary, Michaelmas), so the most recent
// term comes first.
func (s *Store) ListTerms(ctx context.Context) ([]*term.Info, error) {
	query := `
		SELECT t.term, t.academic_year, t.created_at, COUNT(p.id)
		FROM terms t
		LEFT JOIN purchases p ON p.term = t.term AND p.academic_year = t.academic_year
		GROUP BY t.term, t.academic_year
		ORDER BY t.academic_year DESC,
			CASE t.term WHEN 'Trinity' THEN 1 WHEN 'Hilary' THEN 2 WHEN 'Michaelmas' THEN 3 END
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing terms: %w", err)
	}
	defer rows.Close()

	var infos []*term.Info

	for rows.Next() {
		var info term.Info
		if err := rows.Scan(&info.Term, &info.AcademicYear, &info.CreatedAt, &info.PurchaseCount); err != nil {
			return nil, fmt.Errorf("scanning term: %w", err)
		}

		infos = append(infos, &info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating terms: %w", err)
	}

	return infos, nil
}

func (s *Store) DeleteTerm(ctx context.Context, name, academicYear string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	// Conditional delete: the purchase-count guard runs in the same
	// statement, so a purchase recorded after the admin fetched counts
	// still blocks deletion.
	res, err := tx.ExecContext(ctx, `
		DELETE FROM terms
		WHERE term = ? AND academic_year = ?
		AND NOT EXISTS (
			SELECT 1 FROM purchases WHERE term = ? AND academic_year = ?
		)`, name, academicYear, name, academicYear)
	if err != nil {
		return fmt.Errorf("deleting term: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete: %w", err)
	}

	if n == 0 {
		var exists bool

		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM terms WHERE term = ? AND academic_year = ?)`,
			name, academicYear).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking term: %w", err)
		}

		if exists {
			return term.ErrHasPurchases
		}

		return term.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing tx: %w", err)
	}

	return nil
}
