// Package services – ImportService
//
// This file implements bulk catalog import from an Excel workbook. The
// header row is validated first: a single missing required column aborts
// the whole import before any row is added. Validated rows are appended
// through the store in one batch, so the ids are sequential and the
// snapshot is written once.
package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Dhayou05/Karim-perfume/internal/domain"
	"github.com/Dhayou05/Karim-perfume/internal/store"
)

// requiredColumns are the header names a workbook must carry, matched
// exactly after trimming surrounding whitespace.
var requiredColumns = []string{"Name", "Description", "Notes", "Profile", "Image URL"}

// ImportService appends catalog entries from tabular uploads.
type ImportService struct {
	Catalog *store.Catalog
}

// ImportXLSX reads the first sheet of the workbook in r and appends one
// catalog entry per data row. Returns how many entries were added.
//
// Contract:
//   - Any required column missing from the header aborts with
//     ErrMissingColumn (wrapped with the column name) and the catalog is
//     unchanged.
//   - An empty Notes cell yields an empty notes sequence, not an error.
//   - Rows whose required cells are all empty are skipped.
//   - Imported entries start visible with zero counters.
func (s *ImportService) ImportXLSX(ctx context.Context, r io.Reader) (int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return 0, fmt.Errorf("read workbook rows: %w", err)
	}
	if len(rows) == 0 {
		return 0, ErrEmptyWorkbook
	}

	col := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		col[strings.TrimSpace(h)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	cell := func(row []string, name string) string {
		// Trailing empty cells are not materialized by the reader.
		if i := col[name]; i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var items []domain.Perfume
	for _, row := range rows[1:] {
		p := domain.Perfume{
			Name:        cell(row, "Name"),
			Description: cell(row, "Description"),
			Notes:       SplitNotes(cell(row, "Notes")),
			Profile:     cell(row, "Profile"),
			ImageURL:    cell(row, "Image URL"),
		}
		if p.Name == "" && p.Description == "" && len(p.Notes) == 0 && p.Profile == "" && p.ImageURL == "" {
			continue
		}
		items = append(items, p)
	}
	if len(items) == 0 {
		return 0, nil
	}

	added, err := s.Catalog.AddAll(ctx, items)
	if err != nil {
		return 0, err
	}
	return len(added), nil
}
