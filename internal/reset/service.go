package reset

import (
	"context"
	"fmt"
	"time"

	"github.com/wyvernhall/snackcupboard/internal/term"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=reset
type Repository interface {
	Counts(ctx context.Context) (*Statistics, error)
	Snapshot(ctx context.Context) (*BackupData, error)
	// Wipe clears purchases, staff, items and terms, drops every settings
	// key except 'currency', and seeds the given term as current, all in
	// one transaction.
	Wipe(ctx context.Context, seed term.Current) error
}

// PasswordVerifier re-checks the admin password at execution time; holding
// a session token alone is not enough to wipe the database.
type PasswordVerifier interface {
	VerifyPassword(password string) error
}

type Service struct {
	repo     Repository
	verifier PasswordVerifier
	now      func() time.Time
}

func NewService(repo Repository, verifier PasswordVerifier) *Service {
	return &Service{repo: repo, verifier: verifier, now: time.Now}
}

func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	return s.repo.Counts(ctx)
}

func (s *Service) Backup(ctx context.Context) (*Backup, error) {
	data, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshotting database: %w", err)
	}

	return &Backup{
		ExportDate: s.now().UTC(),
		Version:    "1.0",
		Data:       *data,
	}, nil
}

// Execute wipes the database after re-verifying the password and the typed
// confirmation phrase, then reseeds the term covering today's date. It
// returns the seeded term.
func (s *Service) Execute(ctx context.Context, password, confirmationPhrase string) (term.Current, error) {
	if err := s.verifier.VerifyPassword(password); err != nil {
		return term.Current{}, err
	}

	if confirmationPhrase != ConfirmationPhrase {
		return term.Current{}, ErrBadConfirmation
	}

	seed := term.ForDate(s.now())
	if err := s.repo.Wipe(ctx, seed); err != nil {
		return term.Current{}, fmt.Errorf("wiping database: %w", err)
	}

	return seed, nil
}
