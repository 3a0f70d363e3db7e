package term

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound     = errors.New("term not found")
	ErrHasPurchases = errors.New("term has purchases")
)

// The three academic terms, in calendar order within a year.
const (
	Michaelmas = "Michaelmas"
	Hilary     = "Hilary"
	Trinity    = "Trinity"
)

// Valid reports whether name is one of the three known terms.
func Valid(name string) bool {
	return name == Michaelmas || name == Hilary || name == Trinity
}

// Current is the (term, academic year) pair new purchases are stamped with.
type Current struct {
	Term         string
	AcademicYear string
}

// Info is a catalog entry with its derived purchase count.
type Info struct {
	Term          string
	AcademicYear  string
	CreatedAt     time.Time
	PurchaseCount int
}

// ForDate returns the term covering t and the academic-year label used for
// it: September through December is Michaelmas, January through March
// Hilary, April through August Trinity.
func ForDate(t time.Time) Current {
	year := t.Year()
	label := fmt.Sprintf("%d-%02d", year, (year+1)%100)

	switch {
	case t.Month() >= time.September:
		return Current{Term: Michaelmas, AcademicYear: label}
	case t.Month() <= time.March:
		return Current{Term: Hilary, AcademicYear: label}
	default:
		return Current{Term: Trinity, AcademicYear: label}
	}
}
