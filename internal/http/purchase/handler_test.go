package purchase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wyvernhall/snackcupboard/internal/purchase"
)

func TestExportFilename(t *testing.T) {
	tests := []struct {
		name   string
		filter purchase.ListFilter
		want   string
	}{
		{
			name: "Unfiltered",
			want: "purchases-all.csv",
		},
		{
			name:   "TermAndYear",
			filter: purchase.ListFilter{Term: "Michaelmas", AcademicYear: "2025-26"},
			want:   "purchases-Michaelmas-2025-26.csv",
		},
		{
			name:   "TermOnly",
			filter: purchase.ListFilter{Term: "Hilary"},
			want:   "purchases-Hilary.csv",
		},
		{
			name:   "YearOnly",
			filter: purchase.ListFilter{AcademicYear: "2025-26"},
			want:   "purchases-2025-26.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exportFilename(tt.filter))
		})
	}
}
