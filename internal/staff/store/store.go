package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/wyvernhall/snackcupboard/internal/staff"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectStaffColumns = `initials, surname, forename, archived_at`

func scanStaff(s scanner) (*staff.Staff, error) {
	var st staff.Staff

	if err := s.Scan(&st.Initials, &st.Surname, &st.Forename, &st.ArchivedAt); err != nil {
		return nil, err
	}

	return &st, nil
}

func (s *Store) ListStaff(ctx context.Context, filter staff.ListFilter) ([]*staff.Staff, error) {
	query := `SELECT ` + selectStaffColumns + ` FROM staff WHERE 1=1`

	var args []any

	if !filter.IncludeArchived {
		query += " AND archived_at IS NULL"
	}

	if filter.Search != "" {
		query += " AND (forename LIKE ? OR surname LIKE ? OR initials LIKE ?)"

		like := "%" + filter.Search + "%"
		args = append(args, like, like, like)
	}

	query += " ORDER BY surname ASC, forename ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing staff: %w", err)
	}
	defer rows.Close()

	var members []*staff.Staff

	for rows.Next() {
		st, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning staff: %w", err)
		}

		members = append(members, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating staff rows: %w", err)
	}

	return members, nil
}

func (s *Store) GetStaff(ctx context.Context, initials string) (*staff.Staff, error) {
	query := `SELECT ` + selectStaffColumns + ` FROM staff WHERE initials = ?`

	st, err := scanStaff(s.db.QueryRowContext(ctx, query, initials))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, staff.ErrNotFound
		}

		return nil, fmt.Errorf("getting staff: %w", err)
	}

	return st, nil
}

func (s *Store) CreateStaff(ctx context.Context, st *staff.Staff) error {
	query := `INSERT INTO staff (initials, surname, forename, archived_at) VALUES (?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query, st.Initials, st.Surname, st.Forename, st.ArchivedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return staff.ErrDuplicate
		}

		return fmt.Errorf("creating staff: %w", err)
	}

	return nil
}

func (s *Store) UpdateStaff(ctx context.Context, st *staff.Staff) error {
	query := `UPDATE staff SET surname = ?, forename = ?, archived_at = ? WHERE initials = ?`

	res, err := s.db.ExecContext(ctx, query, st.Surname, st.Forename, st.ArchivedAt, st.Initials)
	if err != nil {
		return fmt.Errorf("updating staff: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return staff.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteStaff(ctx context.Context, initials string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM staff WHERE initials = ?`, initials)
	if err != nil {
		return fmt.Errorf("deleting staff: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return staff.ErrNotFound
	}

	return nil
}

func (s *Store) ArchiveMany(ctx context.Context, initials []string, at time.Time) error {
	if len(initials) == 0 {
		return nil
	}

	query := `UPDATE staff SET archived_at = ? WHERE archived_at IS NULL AND initials IN (` +
		placeholders(len(initials)) + `)`

	args := append([]any{at}, toAnySlice(initials)...)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("archiving staff: %w", err)
	}

	return nil
}

func (s *Store) RestoreMany(ctx context.Context, initials []string) error {
	if len(initials) == 0 {
		return nil
	}

	query := `UPDATE staff SET archived_at = NULL WHERE initials IN (` +
		placeholders(len(initials)) + `)`

	if _, err := s.db.ExecContext(ctx, query, toAnySlice(initials)...); err != nil {
		return fmt.Errorf("restoring staff: %w", err)
	}

	return nil
}

// DeleteArchivedMany removes a batch of staff. The batch only proceeds when
// every target exists and is archived; otherwise nothing is deleted.
func (s *Store) DeleteArchivedMany(ctx context.Context, initials []string) error {
	if len(initials) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning delete tx: %w", err)
	}
	defer tx.Rollback()

	in := placeholders(len(initials))
	args := toAnySlice(initials)

	var existing, archived int

	countQuery := `
		SELECT COUNT(*), COUNT(archived_at)
		FROM staff WHERE initials IN (` + in + `)`
	if err := tx.QueryRowContext(ctx, countQuery, args...).Scan(&existing, &archived); err != nil {
		return fmt.Errorf("checking batch: %w", err)
	}

	if existing != len(initials) {
		return staff.ErrNotFound
	}

	if archived != len(initials) {
		return staff.ErrNotArchived
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM staff WHERE initials IN (`+in+`)`, args...); err != nil {
		return fmt.Errorf("deleting batch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	return nil
}

type importTx struct {
	tx *sql.Tx
}

func (s *Store) BeginImport(ctx context.Context) (staff.ImportTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	return &importTx{tx: tx}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

// Upsert inserts a new member or updates an existing one by initials.
// Updating clears archived_at: a member present in an uploaded roster is
// by definition active again.
func (itx *importTx) Upsert(ctx context.Context, params staff.CreateParams) (bool, error) {
	query := `
		INSERT INTO staff (initials, surname, forename, archived_at)
		VALUES (?, ?, ?, NULL)
		ON CONFLICT (initials) DO UPDATE
		SET surname = excluded.surname, forename = excluded.forename, archived_at = NULL
	`

	var existed bool

	err := itx.tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM staff WHERE initials = ?)`, params.Initials,
	).Scan(&existed)
	if err != nil {
		return false, fmt.Errorf("checking existing: %w", err)
	}

	if _, err := itx.tx.ExecContext(ctx, query, params.Initials, params.Surname, params.Forename); err != nil {
		return false, fmt.Errorf("upserting staff: %w", err)
	}

	return !existed, nil
}

func (itx *importTx) ArchiveAbsent(ctx context.Context, present []string, at time.Time) (int64, error) {
	query := `UPDATE staff SET archived_at = ? WHERE archived_at IS NULL`

	args := []any{at}

	if len(present) > 0 {
		query += ` AND initials NOT IN (` + placeholders(len(present)) + `)`
		args = append(args, toAnySlice(present)...)
	}

	res, err := itx.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("archiving absent staff: %w", err)
	}

	return res.RowsAffected()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}

	return out
}

// isUniqueViolation matches the sqlite unique-constraint error without
// importing driver internals.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
