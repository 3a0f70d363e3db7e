// Package staffcsv parses uploaded staff rosters. The accepted layout is
// Initials,Surname,Forename with case-insensitive headers in any column
// order; a legacy StaffID column is tolerated and ignored.
package staffcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/wyvernhall/snackcupboard/internal/encoding"
	"github.com/wyvernhall/snackcupboard/internal/staff"
)

const (
	colInitials = "initials"
	colSurname  = "surname"
	colForename = "forename"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]staff.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("csv must have a header and at least one data row")
	}

	cols, err := mapHeader(records[0])
	if err != nil {
		return nil, err
	}

	var rows []staff.CreateParams

	for i, record := range records[1:] {
		if blank(record) {
			continue
		}

		row := staff.CreateParams{
			Initials: cell(record, cols[colInitials]),
			Surname:  cell(record, cols[colSurname]),
			Forename: cell(record, cols[colForename]),
		}

		if row.Initials == "" || row.Surname == "" || row.Forename == "" {
			return nil, fmt.Errorf("row %d: initials, surname and forename are required", i+2)
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("csv has no data rows")
	}

	return rows, nil
}

func mapHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string

	for _, required := range []string{colInitials, colSurname, colForename} {
		if _, ok := cols[required]; !ok {
			missing = append(missing, required)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("csv must have columns Initials, Surname, Forename (missing: %s)",
			strings.Join(missing, ", "))
	}

	return cols, nil
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[idx])
}

func blank(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
