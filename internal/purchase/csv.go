package purchase

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/wyvernhall/snackcupboard/internal/money"
)

var exportHeader = []string{
	"id", "initials", "forename", "surname", "item",
	"quantity", "unit_price", "total", "term", "academic_year", "timestamp",
}

// WriteCSV serializes purchases for download. Prices are written as
// decimal pounds; timestamps as RFC 3339.
func WriteCSV(w io.Writer, purchases []*Purchase) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, p := range purchases {
		record := []string{
			p.ID.String(),
			p.StaffInitials,
			p.StaffForename,
			p.StaffSurname,
			p.ItemName,
			strconv.FormatInt(p.Quantity, 10),
			money.Pounds(p.UnitPricePence),
			money.Pounds(p.TotalPence()),
			p.Term,
			p.AcademicYear,
			p.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}
