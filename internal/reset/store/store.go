package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/wyvernhall/snackcupboard/internal/item"
	"github.com/wyvernhall/snackcupboard/internal/purchase"
	"github.com/wyvernhall/snackcupboard/internal/reset"
	"github.com/wyvernhall/snackcupboard/internal/staff"
	"github.com/wyvernhall/snackcupboard/internal/term"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Counts(ctx context.Context) (*reset.Statistics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM purchases),
			(SELECT COUNT(*) FROM staff WHERE archived_at IS NULL),
			(SELECT COUNT(*) FROM staff WHERE archived_at IS NOT NULL),
			(SELECT COUNT(*) FROM items WHERE archived_at IS NULL),
			(SELECT COUNT(*) FROM items WHERE archived_at IS NOT NULL),
			(SELECT COUNT(*) FROM terms)
	`

	var stats reset.Statistics

	err := s.db.QueryRowContext(ctx, query).Scan(
		&stats.Purchases, &stats.Staff, &stats.ArchivedStaff,
		&stats.Items, &stats.ArchivedItems, &stats.Terms,
	)
	if err != nil {
		return nil, fmt.Errorf("counting rows: %w", err)
	}

	stats.Total = stats.Purchases + stats.Staff + stats.ArchivedStaff +
		stats.Items + stats.ArchivedItems + stats.Terms

	return &stats, nil
}

func (s *Store) Snapshot(ctx context.Context) (*reset.BackupData, error) {
	data := &reset.BackupData{}

	var err error

	if data.Purchases, err = s.allPurchases(ctx); err != nil {
		return nil, err
	}

	if data.Staff, err = s.allStaff(ctx); err != nil {
		return nil, err
	}

	if data.Items, err = s.allItems(ctx); err != nil {
		return nil, err
	}

	if data.Terms, err = s.allTerms(ctx); err != nil {
		return nil, err
	}

	if data.Settings, err = s.allSettings(ctx); err != nil {
		return nil, err
	}

	return data, nil
}

func (s *Store) Wipe(ctx context.Context, seed term.Current) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning wipe tx: %w", err)
	}
	defer tx.Rollback()

	wipes := []string{
		`DELETE FROM purchases`,
		`DELETE FROM staff`,
		`DELETE FROM items`,
		`DELETE FROM terms`,
		// Unrelated settings like 'currency' survive the reset.
		`DELETE FROM settings WHERE key != 'currency'`,
	}

	for _, q := range wipes {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("wiping (%s): %w", q, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO terms (term, academic_year) VALUES (?, ?)`,
		seed.Term, seed.AcademicYear)
	if err != nil {
		return fmt.Errorf("seeding term: %w", err)
	}

	upsert := `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`

	if _, err := tx.ExecContext(ctx, upsert, "current_term", seed.Term); err != nil {
		return fmt.Errorf("seeding current term: %w", err)
	}

	if _, err := tx.ExecContext(ctx, upsert, "current_academic_year", seed.AcademicYear); err != nil {
		return fmt.Errorf("seeding current year: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing wipe: %w", err)
	}

	return nil
}

func (s *Store) allPurchases(ctx context.Context) ([]*purchase.Purchase, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, staff_initials, staff_forename, staff_surname,
			item_id, item_name, quantity, unit_price_pence,
			term, academic_year, created_at
		FROM purchases ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("reading purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*purchase.Purchase

	for rows.Next() {
		var (
			p      purchase.Purchase
			id     string
			itemID sql.NullString
		)

		if err := rows.Scan(&id, &p.StaffInitials, &p.StaffForename, &p.StaffSurname,
			&itemID, &p.ItemName, &p.Quantity, &p.UnitPricePence,
			&p.Term, &p.AcademicYear, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning purchase: %w", err)
		}

		if p.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing purchase id: %w", err)
		}

		if itemID.Valid {
			iid, err := uuid.Parse(itemID.String)
			if err != nil {
				return nil, fmt.Errorf("parsing item id: %w", err)
			}

			p.ItemID = &iid
		}

		purchases = append(purchases, &p)
	}

	return purchases, rows.Err()
}

func (s *Store) allStaff(ctx context.Context) ([]*staff.Staff, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT initials, surname, forename, archived_at FROM staff ORDER BY initials`)
	if err != nil {
		return nil, fmt.Errorf("reading staff: %w", err)
	}
	defer rows.Close()

	var members []*staff.Staff

	for rows.Next() {
		var st staff.Staff
		if err := rows.Scan(&st.Initials, &st.Surname, &st.Forename, &st.ArchivedAt); err != nil {
			return nil, fmt.Errorf("scanning staff: %w", err)
		}

		members = append(members, &st)
	}

	return members, rows.Err()
}

func (s *Store) allItems(ctx context.Context) ([]*item.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, price_pence, category, archived_at FROM items ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	defer rows.Close()

	var items []*item.Item

	for rows.Next() {
		var (
			it       item.Item
			id       string
			category string
		)

		if err := rows.Scan(&id, &it.Name, &it.PricePence, &category, &it.ArchivedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		if it.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing item id: %w", err)
		}

		it.Category = item.Category(category)
		items = append(items, &it)
	}

	return items, rows.Err()
}

func (s *Store) allTerms(ctx context.Context) ([]*reset.TermRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT term, academic_year, created_at FROM terms ORDER BY academic_year, term`)
	if err != nil {
		return nil, fmt.Errorf("reading terms: %w", err)
	}
	defer rows.Close()

	var terms []*reset.TermRow

	for rows.Next() {
		var t reset.TermRow
		if err := rows.Scan(&t.Term, &t.AcademicYear, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning term: %w", err)
		}

		terms = append(terms, &t)
	}

	return terms, rows.Err()
}

func (s *Store) allSettings(ctx context.Context) ([]*reset.Setting, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	defer rows.Close()

	var settings []*reset.Setting

	for rows.Next() {
		var kv reset.Setting
		if err := rows.Scan(&kv.Key, &kv.Value); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}

		settings = append(settings, &kv)
	}

	return settings, rows.Err()
}
