package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("purchase not found")
	// ErrNoData is returned by exports over an empty result set; an empty
	// CSV download hides mistakes like exporting the wrong term.
	ErrNoData = errors.New("no purchases to export")
)

// Purchase is one basket line, immutable history once recorded. Staff
// names and the item name are snapshotted at purchase time so archiving or
// hard-deleting the source entity never rewrites what was bought, and the
// unit price is fixed here rather than read back from the item.
type Purchase struct {
	ID             uuid.UUID
	StaffInitials  string
	StaffForename  string
	StaffSurname   string
	ItemID         *uuid.UUID
	ItemName       string
	Quantity       int64
	UnitPricePence int64
	Term           string
	AcademicYear   string
	CreatedAt      time.Time
}

// TotalPence is always derived, never stored, so it cannot drift from its
// components.
func (p *Purchase) TotalPence() int64 {
	return p.UnitPricePence * p.Quantity
}

// ListFilter narrows a purchase listing. Empty fields match everything.
type ListFilter struct {
	Term          string
	AcademicYear  string
	StaffInitials string
}

// AnalyticsFilter scopes the aggregation queries to one term when set.
type AnalyticsFilter struct {
	Term         string
	AcademicYear string
}

// PopularItem ranks an item by how often it sells.
type PopularItem struct {
	ItemName          string
	Category          string
	PurchaseCount     int
	TotalQuantity     int64
	TotalRevenuePence int64
	AvgPricePence     int64
}

// CategoryStat is one category's share of revenue.
type CategoryStat struct {
	Category          string
	PurchaseCount     int
	TotalQuantity     int64
	TotalRevenuePence int64
	Percentage        float64
}

// StaffSpend is one staff member's row on the spending leaderboard.
type StaffSpend struct {
	Initials         string
	Forename         string
	Surname          string
	PurchaseCount    int
	TotalItems       int64
	TotalSpentPence  int64
	AvgPurchasePence int64
	FirstPurchase    string
	LastPurchase     string
}

// SpendingSummary aggregates the leaderboard.
type SpendingSummary struct {
	TotalStaffWithPurchases int
	TotalSpentPence         int64
	AvgSpentPerStaffPence   int64
}

// TrendBucket is one day's activity.
type TrendBucket struct {
	Date              string
	PurchaseCount     int
	TotalItems        int64
	TotalRevenuePence int64
	UniqueStaff       int
}

// TermSummary is a staff member's lifetime total for one term.
type TermSummary struct {
	Term            string
	AcademicYear    string
	ItemCount       int64
	TotalSpentPence int64
}
