package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=staff
type Repository interface {
	ListStaff(ctx context.Context, filter ListFilter) ([]*Staff, error)
	GetStaff(ctx context.Context, initials string) (*Staff, error)
	CreateStaff(ctx context.Context, st *Staff) error
	UpdateStaff(ctx context.Context, st *Staff) error
	DeleteStaff(ctx context.Context, initials string) error

	ArchiveMany(ctx context.Context, initials []string, at time.Time) error
	RestoreMany(ctx context.Context, initials []string) error
	DeleteArchivedMany(ctx context.Context, initials []string) error

	BeginImport(ctx context.Context) (ImportTx, error)
}

// ImportTx is a CSV import in progress. All statements run inside one
// database transaction so a half-read file never leaves a half-written
// roster.
type ImportTx interface {
	Upsert(ctx context.Context, params CreateParams) (created bool, err error)
	ArchiveAbsent(ctx context.Context, present []string, at time.Time) (int64, error)
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ListFilter struct {
	Search          string
	IncludeArchived bool
}

type CreateParams struct {
	Initials string
	Surname  string
	Forename string
}

func (p *CreateParams) validate() error {
	p.Initials = NormalizeInitials(p.Initials)
	p.Surname = strings.TrimSpace(p.Surname)
	p.Forename = strings.TrimSpace(p.Forename)

	if p.Initials == "" || p.Surname == "" || p.Forename == "" {
		return fmt.Errorf("initials, surname and forename are required")
	}

	return nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Staff, error) {
	return s.repo.ListStaff(ctx, filter)
}

func (s *Service) Get(ctx context.Context, initials string) (*Staff, error) {
	return s.repo.GetStaff(ctx, NormalizeInitials(initials))
}

// Create adds a new staff member. If an archived member with the same
// initials exists it is restored with the new names instead of raising a
// duplicate error; an active duplicate is rejected.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Staff, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetStaff(ctx, params.Initials)
	if err == nil {
		if !existing.Archived() {
			return nil, ErrDuplicate
		}

		existing.Surname = params.Surname
		existing.Forename = params.Forename
		existing.ArchivedAt = nil

		if err := s.repo.UpdateStaff(ctx, existing); err != nil {
			return nil, fmt.Errorf("restoring staff: %w", err)
		}

		return existing, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	st := &Staff{
		Initials: params.Initials,
		Surname:  params.Surname,
		Forename: params.Forename,
	}
	if err := s.repo.CreateStaff(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *Service) Update(ctx context.Context, initials string, params CreateParams) (*Staff, error) {
	params.Initials = initials
	if err := params.validate(); err != nil {
		return nil, err
	}

	st, err := s.repo.GetStaff(ctx, params.Initials)
	if err != nil {
		return nil, err
	}

	st.Surname = params.Surname
	st.Forename = params.Forename

	if err := s.repo.UpdateStaff(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *Service) Archive(ctx context.Context, initials string) error {
	st, err := s.repo.GetStaff(ctx, NormalizeInitials(initials))
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	st.ArchivedAt = &now

	return s.repo.UpdateStaff(ctx, st)
}

func (s *Service) Restore(ctx context.Context, initials string) error {
	st, err := s.repo.GetStaff(ctx, NormalizeInitials(initials))
	if err != nil {
		return err
	}

	st.ArchivedAt = nil

	return s.repo.UpdateStaff(ctx, st)
}

// HardDelete permanently removes a member. Only archived members may be
// removed; purchase history keeps its own name snapshot so nothing dangles.
func (s *Service) HardDelete(ctx context.Context, initials string) error {
	st, err := s.repo.GetStaff(ctx, NormalizeInitials(initials))
	if err != nil {
		return err
	}

	if !st.Archived() {
		return ErrNotArchived
	}

	return s.repo.DeleteStaff(ctx, st.Initials)
}

func (s *Service) BulkArchive(ctx context.Context, initials []string) error {
	return s.repo.ArchiveMany(ctx, normalizeAll(initials), time.Now().UTC())
}

func (s *Service) BulkRestore(ctx context.Context, initials []string) error {
	return s.repo.RestoreMany(ctx, normalizeAll(initials))
}

// BulkHardDelete removes a batch of archived members. The whole batch
// fails if any target is missing or still active.
func (s *Service) BulkHardDelete(ctx context.Context, initials []string) error {
	return s.repo.DeleteArchivedMany(ctx, normalizeAll(initials))
}

// ImportMode selects what happens to staff absent from an uploaded CSV.
type ImportMode string

const (
	// ModeReplace upserts every row, then archives active staff not in the file.
	ModeReplace ImportMode = "replace"
	// ModeAppend upserts only and never archives anybody.
	ModeAppend ImportMode = "append"
)

type ImportResult struct {
	Created  int
	Updated  int
	Archived int
}

// Import applies a parsed staff CSV in one transaction. Rows upsert by
// initials: new initials insert, existing ones update names and restore
// archived members.
func (s *Service) Import(ctx context.Context, mode ImportMode, rows []CreateParams) (*ImportResult, error) {
	if mode != ModeReplace && mode != ModeAppend {
		return nil, fmt.Errorf("unknown import mode: %s", mode)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no staff rows to import")
	}

	for i := range rows {
		if err := rows[i].validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	itx, err := s.repo.BeginImport(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	result := &ImportResult{}
	present := make([]string, 0, len(rows))

	for _, row := range rows {
		created, err := itx.Upsert(ctx, row)
		if err != nil {
			return nil, fmt.Errorf("upserting %s: %w", row.Initials, err)
		}

		if created {
			result.Created++
		} else {
			result.Updated++
		}

		present = append(present, row.Initials)
	}

	if mode == ModeReplace {
		archived, err := itx.ArchiveAbsent(ctx, present, time.Now().UTC())
		if err != nil {
			return nil, fmt.Errorf("archiving absent staff: %w", err)
		}

		result.Archived = int(archived)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return result, nil
}

func normalizeAll(initials []string) []string {
	out := make([]string, 0, len(initials))
	for _, in := range initials {
		out = append(out, NormalizeInitials(in))
	}

	return out
}
