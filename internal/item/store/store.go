package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wyvernhall/snackcupboard/internal/item"
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

const selectItemColumns = `id, name, price_pence, category, archived_at`

func scanItem(s scanner) (*item.Item, error) {
	var (
		it       item.Item
		id       string
		category string
	)

	if err := s.Scan(&id, &it.Name, &it.PricePence, &category, &it.ArchivedAt); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parsing item id: %w", err)
	}

	it.ID = parsed
	it.Category = item.Category(category)

	return &it, nil
}

func (s *Store) ListItems(ctx context.Context, filter item.ListFilter) ([]*item.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM items WHERE 1=1`

	var args []any

	if !filter.IncludeArchived {
		query += " AND archived_at IS NULL"
	}

	if filter.Search != "" {
		query += " AND name LIKE ?"

		args = append(args, "%"+filter.Search+"%")
	}

	query += " ORDER BY name COLLATE NOCASE ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []*item.Item

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}

	return items, nil
}

func (s *Store) GetItem(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM items WHERE id = ?`

	it, err := scanItem(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, item.ErrNotFound
		}

		return nil, fmt.Errorf("getting item: %w", err)
	}

	return it, nil
}

func (s *Store) FindByName(ctx context.Context, name string) (*item.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM items WHERE name = ? COLLATE NOCASE`

	it, err := scanItem(s.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, item.ErrNotFound
		}

		return nil, fmt.Errorf("finding item by name: %w", err)
	}

	return it, nil
}

func (s *Store) CreateItem(ctx context.Context, it *item.Item) error {
	query := `INSERT INTO items (id, name, price_pence, category, archived_at) VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		it.ID.String(), it.Name, it.PricePence, string(it.Category), it.ArchivedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return item.ErrDuplicate
		}

		return fmt.Errorf("creating item: %w", err)
	}

	return nil
}

func (s *Store) UpdateItem(ctx context.Context, it *item.Item) error {
	query := `UPDATE items SET name = ?, price_pence = ?, category = ?, archived_at = ? WHERE id = ?`

	res, err := s.db.ExecContext(ctx, query,
		it.Name, it.PricePence, string(it.Category), it.ArchivedAt, it.ID.String())
	if err != nil {
		if isUniqueViolation(err) {
			return item.ErrDuplicate
		}

		return fmt.Errorf("updating item: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return item.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteItem(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return item.ErrNotFound
	}

	return nil
}

func (s *Store) ArchiveMany(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE items SET archived_at = ? WHERE archived_at IS NULL AND id IN (` +
		placeholders(len(ids)) + `)`

	args := append([]any{at}, idArgs(ids)...)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("archiving items: %w", err)
	}

	return nil
}

func (s *Store) RestoreMany(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE items SET archived_at = NULL WHERE id IN (` + placeholders(len(ids)) + `)`

	if _, err := s.db.ExecContext(ctx, query, idArgs(ids)...); err != nil {
		return fmt.Errorf("restoring items: %w", err)
	}

	return nil
}

// DeleteArchivedMany removes a batch of items, all-or-nothing: every target
// must exist and already be archived.
func (s *Store) DeleteArchivedMany(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning delete tx: %w", err)
	}
	defer tx.Rollback()

	in := placeholders(len(ids))
	args := idArgs(ids)

	var existing, archived int

	countQuery := `SELECT COUNT(*), COUNT(archived_at) FROM items WHERE id IN (` + in + `)`
	if err := tx.QueryRowContext(ctx, countQuery, args...).Scan(&existing, &archived); err != nil {
		return fmt.Errorf("checking batch: %w", err)
	}

	if existing != len(ids) {
		return item.ErrNotFound
	}

	if archived != len(ids) {
		return item.ErrNotArchived
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id IN (`+in+`)`, args...); err != nil {
		return fmt.Errorf("deleting batch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	return nil
}

func (s *Store) ReplaceAll(ctx context.Context, items []*item.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning replace tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("clearing items: %w", err)
	}

	insert := `INSERT INTO items (id, name, price_pence, category) VALUES (?, ?, ?, ?)`

	for _, it := range items {
		_, err := tx.ExecContext(ctx, insert,
			it.ID.String(), it.Name, it.PricePence, string(it.Category))
		if err != nil {
			return fmt.Errorf("inserting %q: %w", it.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing replace: %w", err)
	}

	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func idArgs(ids []uuid.UUID) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
