package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wyvernhall/snackcupboard/internal/purchase"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectPurchaseColumns = `
	id, staff_initials, staff_forename, staff_surname,
	item_id, item_name, quantity, unit_price_pence,
	term, academic_year, created_at
`

func scanPurchase(s scanner) (*purchase.Purchase, error) {
	var (
		p      purchase.Purchase
		id     string
		itemID sql.NullString
	)

	if err := s.Scan(
		&id, &p.StaffInitials, &p.StaffForename, &p.StaffSurname,
		&itemID, &p.ItemName, &p.Quantity, &p.UnitPricePence,
		&p.Term, &p.AcademicYear, &p.CreatedAt,
	); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parsing purchase id: %w", err)
	}

	p.ID = parsed

	if itemID.Valid {
		iid, err := uuid.Parse(itemID.String)
		if err != nil {
			return nil, fmt.Errorf("parsing item id: %w", err)
		}

		p.ItemID = &iid
	}

	return &p, nil
}

func (s *Store) CreatePurchases(ctx context.Context, purchases []*purchase.Purchase) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO purchases (
			id, staff_initials, staff_forename, staff_surname,
			item_id, item_name, quantity, unit_price_pence,
			term, academic_year, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, p := range purchases {
		var itemID any
		if p.ItemID != nil {
			itemID = p.ItemID.String()
		}

		_, err := tx.ExecContext(ctx, query,
			p.ID.String(), p.StaffInitials, p.StaffForename, p.StaffSurname,
			itemID, p.ItemName, p.Quantity, p.UnitPricePence,
			p.Term, p.AcademicYear, p.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting purchase: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing tx: %w", err)
	}

	return nil
}

func (s *Store) GetPurchase(ctx context.Context, id uuid.UUID) (*purchase.Purchase, error) {
	query := `SELECT ` + selectPurchaseColumns + ` FROM purchases WHERE id = ?`

	p, err := scanPurchase(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, purchase.ErrNotFound
		}

		return nil, fmt.Errorf("getting purchase: %w", err)
	}

	return p, nil
}

func (s *Store) ListPurchases(ctx context.Context, filter purchase.ListFilter) ([]*purchase.Purchase, error) {
	query := `SELECT ` + selectPurchaseColumns + ` FROM purchases WHERE 1=1`

	var args []any

	query, args = applyFilter(query, args, filter.Term, filter.AcademicYear)

	if filter.StaffInitials != "" {
		query += " AND staff_initials = ?"

		args = append(args, filter.StaffInitials)
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*purchase.Purchase

	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning purchase: %w", err)
		}

		purchases = append(purchases, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating purchase rows: %w", err)
	}

	return purchases, nil
}

func (s *Store) UpdatePurchase(ctx context.Context, p *purchase.Purchase) error {
	query := `
		UPDATE purchases
		SET item_id = ?, item_name = ?, quantity = ?, unit_price_pence = ?
		WHERE id = ?
	`

	var itemID any
	if p.ItemID != nil {
		itemID = p.ItemID.String()
	}

	res, err := s.db.ExecContext(ctx, query,
		itemID, p.ItemName, p.Quantity, p.UnitPricePence, p.ID.String())
	if err != nil {
		return fmt.Errorf("updating purchase: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return purchase.ErrNotFound
	}

	return nil
}

func (s *Store) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM purchases WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("deleting purchase: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return purchase.ErrNotFound
	}

	return nil
}

func (s *Store) DeletePurchases(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id.String()
	}

	query := `DELETE FROM purchases WHERE id IN (` +
		strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",") + `)`

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting purchases: %w", err)
	}

	return res.RowsAffected()
}

func (s *Store) DeleteByTerm(ctx context.Context, termName, academicYear string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM purchases WHERE term = ? AND academic_year = ?`, termName, academicYear)
	if err != nil {
		return 0, fmt.Errorf("deleting purchases by term: %w", err)
	}

	return res.RowsAffected()
}

// PopularItems groups by the snapshotted item name so purchases of since
// renamed or deleted items still count. Category comes from the live item
// when the link survives.
func (s *Store) PopularItems(ctx context.Context, filter purchase.AnalyticsFilter) ([]*purchase.PopularItem, error) {
	query := `
		SELECT
			p.item_name,
			COALESCE(i.category, 'Unknown'),
			COUNT(p.id),
			SUM(p.quantity),
			SUM(p.unit_price_pence * p.quantity)
		FROM purchases p
		LEFT JOIN items i ON i.id = p.item_id
		WHERE 1=1
	`

	var args []any

	query, args = applyFilter(query, args, filter.Term, filter.AcademicYear)
	query += `
		GROUP BY p.item_name, COALESCE(i.category, 'Unknown')
		ORDER BY COUNT(p.id) DESC, SUM(p.quantity) DESC, SUM(p.unit_price_pence * p.quantity) DESC
	`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying popular items: %w", err)
	}
	defer rows.Close()

	var items []*purchase.PopularItem

	for rows.Next() {
		var it purchase.PopularItem
		if err := rows.Scan(&it.ItemName, &it.Category, &it.PurchaseCount,
			&it.TotalQuantity, &it.TotalRevenuePence); err != nil {
			return nil, fmt.Errorf("scanning popular item: %w", err)
		}

		items = append(items, &it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating popular items: %w", err)
	}

	return items, nil
}

func (s *Store) CategoryTotals(ctx context.Context, filter purchase.AnalyticsFilter) ([]*purchase.CategoryStat, error) {
	query := `
		SELECT
			COALESCE(i.category, 'Unknown'),
			COUNT(p.id),
			SUM(p.quantity),
			SUM(p.unit_price_pence * p.quantity)
		FROM purchases p
		LEFT JOIN items i ON i.id = p.item_id
		WHERE 1=1
	`

	var args []any

	query, args = applyFilter(query, args, filter.Term, filter.AcademicYear)
	query += `
		GROUP BY COALESCE(i.category, 'Unknown')
		ORDER BY SUM(p.unit_price_pence * p.quantity) DESC
	`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying category totals: %w", err)
	}
	defer rows.Close()

	var stats []*purchase.CategoryStat

	for rows.Next() {
		var st purchase.CategoryStat
		if err := rows.Scan(&st.Category, &st.PurchaseCount,
			&st.TotalQuantity, &st.TotalRevenuePence); err != nil {
			return nil, fmt.Errorf("scanning category stat: %w", err)
		}

		stats = append(stats, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category stats: %w", err)
	}

	return stats, nil
}

// StaffTotals ranks by total spend. Names come from the purchase snapshots
// so the leaderboard includes members deleted since.
func (s *Store) StaffTotals(ctx context.Context, filter purchase.AnalyticsFilter) ([]*purchase.StaffSpend, error) {
	query := `
		SELECT
			p.staff_initials,
			p.staff_forename,
			p.staff_surname,
			COUNT(p.id),
			SUM(p.quantity),
			SUM(p.unit_price_pence * p.quantity),
			MIN(DATE(p.created_at)),
			MAX(DATE(p.created_at))
		FROM purchases p
		WHERE 1=1
	`

	var args []any

	query, args = applyFilter(query, args, filter.Term, filter.AcademicYear)
	query += `
		GROUP BY p.staff_initials, p.staff_forename, p.staff_surname
		ORDER BY SUM(p.unit_price_pence * p.quantity) DESC
	`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying staff totals: %w", err)
	}
	defer rows.Close()

	var spends []*purchase.StaffSpend

	for rows.Next() {
		var sp purchase.StaffSpend
		if err := rows.Scan(&sp.Initials, &sp.Forename, &sp.Surname,
			&sp.PurchaseCount, &sp.TotalItems, &sp.TotalSpentPence,
			&sp.FirstPurchase, &sp.LastPurchase); err != nil {
			return nil, fmt.Errorf("scanning staff spend: %w", err)
		}

		spends = append(spends, &sp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating staff totals: %w", err)
	}

	return spends, nil
}

func (s *Store) TimeTrends(ctx context.Context, filter purchase.AnalyticsFilter) ([]*purchase.TrendBucket, error) {
	query := `
		SELECT
			DATE(p.created_at),
			COUNT(p.id),
			SUM(p.quantity),
			SUM(p.unit_price_pence * p.quantity),
			COUNT(DISTINCT p.staff_initials)
		FROM purchases p
		WHERE 1=1
	`

	var args []any

	query, args = applyFilter(query, args, filter.Term, filter.AcademicYear)
	query += `
		GROUP BY DATE(p.created_at)
		ORDER BY DATE(p.created_at) ASC
	`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying time trends: %w", err)
	}
	defer rows.Close()

	var buckets []*purchase.TrendBucket

	for rows.Next() {
		var b purchase.TrendBucket
		if err := rows.Scan(&b.Date, &b.PurchaseCount, &b.TotalItems,
			&b.TotalRevenuePence, &b.UniqueStaff); err != nil {
			return nil, fmt.Errorf("scanning trend bucket: %w", err)
		}

		buckets = append(buckets, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trend buckets: %w", err)
	}

	return buckets, nil
}

// TermSummaries orders by academic year descending, then terms within a
// year most-recent-first (Trinity, Hilary, Michaelmas).
func (s *Store) TermSummaries(ctx context.Context, initials string) ([]*purchase.TermSummary, error) {
	query := `
		SELECT term, academic_year, SUM(quantity), SUM(unit_price_pence * quantity)
		FROM purchases
		WHERE staff_initials = ?
		GROUP BY term, academic_year
		ORDER BY academic_year DESC,
			CASE term WHEN 'Trinity' THEN 1 WHEN 'Hilary' THEN 2 WHEN 'Michaelmas' THEN 3 END
	`

	rows, err := s.db.QueryContext(ctx, query, initials)
	if err != nil {
		return nil, fmt.Errorf("querying term summaries: %w", err)
	}
	defer rows.Close()

	var summaries []*purchase.TermSummary

	for rows.Next() {
		var sum purchase.TermSummary
		if err := rows.Scan(&sum.Term, &sum.AcademicYear, &sum.ItemCount, &sum.TotalSpentPence); err != nil {
			return nil, fmt.Errorf("scanning term summary: %w", err)
		}

		summaries = append(summaries, &sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating term summaries: %w", err)
	}

	return summaries, nil
}

func applyFilter(query string, args []any, termName, academicYear string) (string, []any) {
	if termName != "" {
		query += " AND term = ?"

		args = append(args, termName)
	}

	if academicYear != "" {
		query += " AND academic_year = ?"

		args = append(args, academicYear)
	}

	return query, args
}
