package purchase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wyvernhall/snackcupboard/internal/item"
	"github.com/wyvernhall/snackcupboard/internal/staff"
	"github.com/wyvernhall/snackcupboard/internal/term"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=purchase
type Repository interface {
	CreatePurchases(ctx context.Context, purchases []*Purchase) error
	GetPurchase(ctx context.Context, id uuid.UUID) (*Purchase, error)
	ListPurchases(ctx context.Context, filter ListFilter) ([]*Purchase, error)
	UpdatePurchase(ctx context.Context, p *Purchase) error
	DeletePurchase(ctx context.Context, id uuid.UUID) error
	DeletePurchases(ctx context.Context, ids []uuid.UUID) (int64, error)
	DeleteByTerm(ctx context.Context, termName, academicYear string) (int64, error)

	PopularItems(ctx context.Context, filter AnalyticsFilter) ([]*PopularItem, error)
	CategoryTotals(ctx context.Context, filter AnalyticsFilter) ([]*CategoryStat, error)
	StaffTotals(ctx context.Context, filter AnalyticsFilter) ([]*StaffSpend, error)
	TimeTrends(ctx context.Context, filter AnalyticsFilter) ([]*TrendBucket, error)
	TermSummaries(ctx context.Context, initials string) ([]*TermSummary, error)
}

// StaffDirectory resolves initials to a staff member for the name snapshot.
type StaffDirectory interface {
	Get(ctx context.Context, initials string) (*staff.Staff, error)
}

// ItemResolver finds the active item behind an edited purchase's name.
type ItemResolver interface {
	ResolveName(ctx context.Context, name string) (*item.Item, error)
}

// TermSource supplies the (term, year) pair new purchases are stamped with.
type TermSource interface {
	Current(ctx context.Context) (term.Current, error)
}

type Service struct {
	repo  Repository
	staff StaffDirectory
	items ItemResolver
	terms TermSource
}

func NewService(repo Repository, staffDir StaffDirectory, items ItemResolver, terms TermSource) *Service {
	return &Service{repo: repo, staff: staffDir, items: items, terms: terms}
}

// Line is one basket entry at checkout. The kiosk sends the price it
// displayed; that displayed price is what gets snapshotted.
type Line struct {
	ItemID         *uuid.UUID
	ItemName       string
	Quantity       int64
	UnitPricePence int64
}

func (l *Line) validate() error {
	l.ItemName = strings.TrimSpace(l.ItemName)
	if l.ItemName == "" {
		return fmt.Errorf("item name is required")
	}

	if l.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}

	if l.UnitPricePence < 0 {
		return fmt.Errorf("price must not be negative")
	}

	return nil
}

// Record writes one purchase row per basket line, stamped with the current
// term and year read at call time. All lines commit together.
func (s *Service) Record(ctx context.Context, initials string, lines []Line) ([]*Purchase, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("at least one item is required")
	}

	for i := range lines {
		if err := lines[i].validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
	}

	member, err := s.staff.Get(ctx, initials)
	if err != nil {
		return nil, err
	}

	cur, err := s.terms.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading current term: %w", err)
	}

	now := time.Now().UTC()
	purchases := make([]*Purchase, 0, len(lines))

	for _, line := range lines {
		purchases = append(purchases, &Purchase{
			ID:             uuid.New(),
			StaffInitials:  member.Initials,
			StaffForename:  member.Forename,
			StaffSurname:   member.Surname,
			ItemID:         line.ItemID,
			ItemName:       line.ItemName,
			Quantity:       line.Quantity,
			UnitPricePence: line.UnitPricePence,
			Term:           cur.Term,
			AcademicYear:   cur.AcademicYear,
			CreatedAt:      now,
		})
	}

	if err := s.repo.CreatePurchases(ctx, purchases); err != nil {
		return nil, fmt.Errorf("recording purchases: %w", err)
	}

	return purchases, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Purchase, error) {
	return s.repo.ListPurchases(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Purchase, error) {
	return s.repo.GetPurchase(ctx, id)
}

type UpdateParams struct {
	ItemName       string
	Quantity       int64
	UnitPricePence int64
}

// Update edits a purchase's item name, quantity and unit price. The unit
// price is taken as given, never recomputed from a total. The linked item
// id is re-resolved from the edited name; if no active item matches, the
// link is dropped and the name stands on its own as the snapshot.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Purchase, error) {
	line := Line{ItemName: params.ItemName, Quantity: params.Quantity, UnitPricePence: params.UnitPricePence}
	if err := line.validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetPurchase(ctx, id)
	if err != nil {
		return nil, err
	}

	p.ItemName = line.ItemName
	p.Quantity = line.Quantity
	p.UnitPricePence = line.UnitPricePence
	p.ItemID = nil

	if it, err := s.items.ResolveName(ctx, line.ItemName); err == nil {
		p.ItemID = &it.ID
	} else if !errors.Is(err, item.ErrNotFound) {
		return nil, fmt.Errorf("resolving item: %w", err)
	}

	if err := s.repo.UpdatePurchase(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePurchase(ctx, id)
}

func (s *Service) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("at least one purchase id is required")
	}

	return s.repo.DeletePurchases(ctx, ids)
}

// DeleteByTerm bulk-deletes a term's purchase data, used for term cleanup
// before the term row itself can go.
func (s *Service) DeleteByTerm(ctx context.Context, termName, academicYear string) (int64, error) {
	if termName == "" || academicYear == "" {
		return 0, fmt.Errorf("term and academic year are required")
	}

	return s.repo.DeleteByTerm(ctx, termName, academicYear)
}

// Export returns the purchases matching the filter, oldest first, for CSV
// serialization. An empty result set is an error rather than an empty file.
func (s *Service) Export(ctx context.Context, filter ListFilter) ([]*Purchase, error) {
	purchases, err := s.repo.ListPurchases(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(purchases) == 0 {
		return nil, ErrNoData
	}

	return purchases, nil
}

func (s *Service) PopularItems(ctx context.Context, filter AnalyticsFilter) ([]*PopularItem, error) {
	items, err := s.repo.PopularItems(ctx, filter)
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		if it.TotalQuantity > 0 {
			it.AvgPricePence = roundDiv(it.TotalRevenuePence, it.TotalQuantity)
		}
	}

	return items, nil
}

func (s *Service) CategoryBreakdown(ctx context.Context, filter AnalyticsFilter) ([]*CategoryStat, error) {
	stats, err := s.repo.CategoryTotals(ctx, filter)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, st := range stats {
		total += st.TotalRevenuePence
	}

	if total > 0 {
		for _, st := range stats {
			st.Percentage = float64(st.TotalRevenuePence) / float64(total) * 100
			st.Percentage = float64(int(st.Percentage*10+0.5)) / 10
		}
	}

	return stats, nil
}

type StaffSpendingReport struct {
	StaffSpending []*StaffSpend
	Summary       SpendingSummary
}

func (s *Service) StaffSpending(ctx context.Context, filter AnalyticsFilter) (*StaffSpendingReport, error) {
	rows, err := s.repo.StaffTotals(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &StaffSpendingReport{StaffSpending: rows}

	for _, row := range rows {
		if row.PurchaseCount > 0 {
			row.AvgPurchasePence = roundDiv(row.TotalSpentPence, int64(row.PurchaseCount))
		}

		report.Summary.TotalSpentPence += row.TotalSpentPence
	}

	report.Summary.TotalStaffWithPurchases = len(rows)
	if len(rows) > 0 {
		report.Summary.AvgSpentPerStaffPence = roundDiv(report.Summary.TotalSpentPence, int64(len(rows)))
	}

	return report, nil
}

func (s *Service) TimeTrends(ctx context.Context, filter AnalyticsFilter) ([]*TrendBucket, error) {
	return s.repo.TimeTrends(ctx, filter)
}

// History is what the kiosk shows a staff member about themselves.
type History struct {
	CurrentTerm      term.Current
	CurrentPurchases []*Purchase
	CurrentSummary   TermSummary
	TermSummaries    []*TermSummary
}

// History returns the member's current-term purchases plus lifetime
// per-term summaries, most recent term first.
func (s *Service) History(ctx context.Context, initials string) (*History, error) {
	member, err := s.staff.Get(ctx, initials)
	if err != nil {
		return nil, err
	}

	cur, err := s.terms.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading current term: %w", err)
	}

	purchases, err := s.repo.ListPurchases(ctx, ListFilter{
		StaffInitials: member.Initials,
		Term:          cur.Term,
		AcademicYear:  cur.AcademicYear,
	})
	if err != nil {
		return nil, err
	}

	summaries, err := s.repo.TermSummaries(ctx, member.Initials)
	if err != nil {
		return nil, err
	}

	h := &History{
		CurrentTerm:      cur,
		CurrentPurchases: purchases,
		CurrentSummary:   TermSummary{Term: cur.Term, AcademicYear: cur.AcademicYear},
		TermSummaries:    summaries,
	}

	for _, sum := range summaries {
		if sum.Term == cur.Term && sum.AcademicYear == cur.AcademicYear {
			h.CurrentSummary = *sum
			break
		}
	}

	return h, nil
}

// roundDiv divides pence amounts rounding half away from zero. Inputs are
// non-negative in practice.
func roundDiv(total, n int64) int64 {
	return (total + n/2) / n
}
