package staff

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound    = errors.New("staff member not found")
	ErrDuplicate   = errors.New("staff member already exists")
	ErrNotArchived = errors.New("staff member is not archived")
)

// Staff is a member of staff who can buy from the cupboard. Initials are
// the identity and are always stored upper-cased.
type Staff struct {
	Initials   string
	Surname    string
	Forename   string
	ArchivedAt *time.Time
}

// Archived reports whether the member has been soft-deleted.
func (s *Staff) Archived() bool {
	return s.ArchivedAt != nil
}

// NormalizeInitials upper-cases and trims initials so lookups and unique
// checks are case-insensitive.
func NormalizeInitials(initials string) string {
	return strings.ToUpper(strings.TrimSpace(initials))
}
