// Package itemcsv parses uploaded item catalogs. The accepted layout is
// name,price with an optional category column (Food when absent), headers
// matched case-insensitively in any column order.
package itemcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/wyvernhall/snackcupboard/internal/encoding"
	"github.com/wyvernhall/snackcupboard/internal/item"
	"github.com/wyvernhall/snackcupboard/internal/money"
)

const (
	colName     = "name"
	colPrice    = "price"
	colCategory = "category"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]item.CreateParams, error) {
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

	categoryIdx, hasCategory := cols[colCategory]

	var rows []item.CreateParams

	for i, record := range records[1:] {
		if blank(record) {
			continue
		}

		name := cell(record, cols[colName])
		if name == "" {
			return nil, fmt.Errorf("row %d: name is required", i+2)
		}

		// A row with an unparseable price is skipped rather than
		// failing the file; spreadsheets grow stray total rows.
		pence, err := money.ParsePounds(cell(record, cols[colPrice]))
		if err != nil || pence < 0 {
			continue
		}

		category := item.CategoryFood

		if hasCategory {
			parsed, ok := item.ParseCategory(cell(record, categoryIdx))
			if !ok {
				return nil, fmt.Errorf("row %d: category must be Food or Drink", i+2)
			}

			category = parsed
		}

		rows = append(rows, item.CreateParams{
			Name:       name,
			PricePence: pence,
			Category:   category,
		})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("csv has no usable data rows")
	}

	return rows, nil
}

func mapHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string

	for _, required := range []string{colName, colPrice} {
		if _, ok := cols[required]; !ok {
			missing = append(missing, required)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("csv must have columns name, price (missing: %s)",
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
