package term_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wyvernhall/snackcupboard/internal/term"
)

func TestValid(t *testing.T) {
	assert.True(t, term.Valid(term.Michaelmas))
	assert.True(t, term.Valid(term.Hilary))
	assert.True(t, term.Valid(term.Trinity))
	assert.False(t, term.Valid("Summer"))
	assert.False(t, term.Valid("michaelmas"))
	assert.False(t, term.Valid(""))
}

func TestForDate(t *testing.T) {
	type testCase struct {
		name string
		date time.Time
		want term.Current
	}

	tests := []testCase{
		{
			name: "September",
			date: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
			want: term.Current{Term: term.Michaelmas, AcademicYear: "2025-26"},
		},
		{
			name: "December",
			date: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			want: term.Current{Term: term.Michaelmas, AcademicYear: "2025-26"},
		},
		{
			name: "January",
			date: time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
			want: term.Current{Term: term.Hilary, AcademicYear: "2026-27"},
		},
		{
			name: "March",
			date: time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
			want: term.Current{Term: term.Hilary, AcademicYear: "2026-27"},
		},
		{
			name: "April",
			date: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
			want: term.Current{Term: term.Trinity, AcademicYear: "2026-27"},
		},
		{
			name: "August",
			date: time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
			want: term.Current{Term: term.Trinity, AcademicYear: "2026-27"},
		},
		{
			name: "CenturyPadding",
			date: time.Date(2099, time.October, 1, 0, 0, 0, 0, time.UTC),
			want: term.Current{Term: term.Michaelmas, AcademicYear: "2099-00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, term.ForDate(tt.date))
		})
	}
}
