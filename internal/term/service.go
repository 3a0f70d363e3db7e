package term

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=term
type Repository interface {
	CurrentTerm(ctx context.Context) (Current, error)
	// SetCurrentTerm upserts the pair into the terms catalog and writes
	// both settings keys in one transaction.
	SetCurrentTerm(ctx context.Context, cur Current) error
	ListTerms(ctx context.Context) ([]*Info, error)
	// DeleteTerm removes a catalog row only if it has no purchases,
	// checked in the same statement so a concurrent purchase cannot
	// slip between check and delete.
	DeleteTerm(ctx context.Context, name, academicYear string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Current(ctx context.Context) (Current, error) {
	return s.repo.CurrentTerm(ctx)
}

func (s *Service) SetCurrent(ctx context.Context, name, academicYear string) (Current, error) {
	name = strings.TrimSpace(name)
	academicYear = strings.TrimSpace(academicYear)

	if name == "" || academicYear == "" {
		return Current{}, fmt.Errorf("term and academic year are required")
	}

	if !Valid(name) {
		return Current{}, fmt.Errorf("invalid term %q: must be Michaelmas, Hilary or Trinity", name)
	}

	cur := Current{Term: name, AcademicYear: academicYear}
	if err := s.repo.SetCurrentTerm(ctx, cur); err != nil {
		return Current{}, err
	}

	return cur, nil
}

func (s *Service) List(ctx context.Context) ([]*Info, error) {
	return s.repo.ListTerms(ctx)
}

func (s *Service) Delete(ctx context.Context, name, academicYear string) error {
	name = strings.TrimSpace(name)
	academicYear = strings.TrimSpace(academicYear)

	if name == "" || academicYear == "" {
		return fmt.Errorf("term and academic year are required")
	}

	return s.repo.DeleteTerm(ctx, name, academicYear)
}
