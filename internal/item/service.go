package item

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=item
type Repository interface {
	ListItems(ctx context.Context, filter ListFilter) ([]*Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	// FindByName matches case-insensitively across active and archived items.
	FindByName(ctx context.Context, name string) (*Item, error)
	CreateItem(ctx context.Context, it *Item) error
	UpdateItem(ctx context.Context, it *Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error

	ArchiveMany(ctx context.Context, ids []uuid.UUID, at time.Time) error
	RestoreMany(ctx context.Context, ids []uuid.UUID) error
	DeleteArchivedMany(ctx context.Context, ids []uuid.UUID) error

	// ReplaceAll clears the catalog and inserts the given items in one
	// transaction. Used by the destructive CSV import.
	ReplaceAll(ctx context.Context, items []*Item) error
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
	Name       string
	PricePence int64
	Category   Category
}

func (p *CreateParams) validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}

	if p.PricePence < 0 {
		return fmt.Errorf("price must not be negative")
	}

	if p.Category == "" {
		p.Category = CategoryFood
	}

	if p.Category != CategoryFood && p.Category != CategoryDrink {
		return fmt.Errorf("category must be Food or Drink")
	}

	return nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Item, error) {
	return s.repo.ListItems(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

// Create adds an item to the catalog. A name matching an archived item
// restores that item with the new price and category rather than erroring;
// a name matching an active item is a duplicate.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Item, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByName(ctx, params.Name)
	if err == nil {
		if !existing.Archived() {
			return nil, ErrDuplicate
		}

		existing.Name = params.Name
		existing.PricePence = params.PricePence
		existing.Category = params.Category
		existing.ArchivedAt = nil

		if err := s.repo.UpdateItem(ctx, existing); err != nil {
			return nil, fmt.Errorf("restoring item: %w", err)
		}

		return existing, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	it := &Item{
		ID:         uuid.New(),
		Name:       params.Name,
		PricePence: params.PricePence,
		Category:   params.Category,
	}
	if err := s.repo.CreateItem(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params CreateParams) (*Item, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	// Renaming onto another active item's name is a conflict.
	if other, err := s.repo.FindByName(ctx, params.Name); err == nil {
		if other.ID != id && !other.Archived() {
			return nil, ErrDuplicate
		}
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	it.Name = params.Name
	it.PricePence = params.PricePence
	it.Category = params.Category

	if err := s.repo.UpdateItem(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

// ResolveName returns the active item whose name matches case-insensitively.
// Archived items do not resolve: a purchase edited to name one keeps the
// name as a plain snapshot instead of linking to a hidden item.
func (s *Service) ResolveName(ctx context.Context, name string) (*Item, error) {
	it, err := s.repo.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}

	if it.Archived() {
		return nil, ErrNotFound
	}

	return it, nil
}

func (s *Service) Archive(ctx context.Context, id uuid.UUID) error {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	it.ArchivedAt = &now

	return s.repo.UpdateItem(ctx, it)
}

func (s *Service) Restore(ctx context.Context, id uuid.UUID) error {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return err
	}

	it.ArchivedAt = nil

	return s.repo.UpdateItem(ctx, it)
}

func (s *Service) HardDelete(ctx context.Context, id uuid.UUID) error {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return err
	}

	if !it.Archived() {
		return ErrNotArchived
	}

	return s.repo.DeleteItem(ctx, id)
}

func (s *Service) BulkArchive(ctx context.Context, ids []uuid.UUID) error {
	return s.repo.ArchiveMany(ctx, ids, time.Now().UTC())
}

func (s *Service) BulkRestore(ctx context.Context, ids []uuid.UUID) error {
	return s.repo.RestoreMany(ctx, ids)
}

func (s *Service) BulkHardDelete(ctx context.Context, ids []uuid.UUID) error {
	return s.repo.DeleteArchivedMany(ctx, ids)
}

// Import wipes the catalog and loads the parsed CSV rows. There is no
// append mode for items: the cupboard sells what the file says it sells.
func (s *Service) Import(ctx context.Context, rows []CreateParams) (int, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("no item rows to import")
	}

	items := make([]*Item, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))

	for i := range rows {
		if err := rows[i].validate(); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}

		// Last occurrence of a repeated name wins, matching how a
		// spreadsheet author would expect corrections to apply.
		key := strings.ToLower(rows[i].Name)
		if _, dup := seen[key]; dup {
			for j, it := range items {
				if strings.EqualFold(it.Name, rows[i].Name) {
					items = append(items[:j], items[j+1:]...)
					break
				}
			}
		}

		seen[key] = struct{}{}

		items = append(items, &Item{
			ID:         uuid.New(),
			Name:       rows[i].Name,
			PricePence: rows[i].PricePence,
			Category:   rows[i].Category,
		})
	}

	if err := s.repo.ReplaceAll(ctx, items); err != nil {
		return 0, fmt.Errorf("replacing items: %w", err)
	}

	return len(items), nil
}
