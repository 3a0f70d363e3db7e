package reset

import (
	"errors"
	"time"

	"github.com/wyvernhall/snackcupboard/internal/item"
	"github.com/wyvernhall/snackcupboard/internal/purchase"
	"github.com/wyvernhall/snackcupboard/internal/staff"
)

// ErrBadConfirmation means the typed confirmation phrase did not match.
var ErrBadConfirmation = errors.New("invalid confirmation phrase")

// ConfirmationPhrase is what the admin must type before the wipe runs.
const ConfirmationPhrase = "DELETE"

// Statistics previews what a reset would remove.
type Statistics struct {
	Purchases     int
	Staff         int
	ArchivedStaff int
	Items         int
	ArchivedItems int
	Terms         int
	Total         int
}

// TermRow is a terms-catalog row as exported in a backup.
type TermRow struct {
	Term         string
	AcademicYear string
	CreatedAt    time.Time
}

// Setting is one settings key/value pair as exported in a backup.
type Setting struct {
	Key   string
	Value string
}

// Backup is a full-database JSON export, taken before destructive actions.
type Backup struct {
	ExportDate time.Time
	Version    string
	Data       BackupData
}

type BackupData struct {
	Purchases []*purchase.Purchase
	Staff     []*staff.Staff
	Items     []*item.Item
	Terms     []*TermRow
	Settings  []*Setting
}
