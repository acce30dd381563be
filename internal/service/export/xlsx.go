package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/robdix/spanish-reading/internal/domain"
)

// SheetName is the worksheet holding the exported vocabulary.
const SheetName = "Sheet1"

// WriteXLSX writes entries as a workbook with a header row naming each
// column's fields. Cells hold plain text; no HTML markup is added.
func WriteXLSX(w io.Writer, entries []domain.VocabularyEntry, mappings []domain.FieldMapping) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, len(mappings))
	for i, m := range mappings {
		header[i] = strings.Join(m.SourceFields, " + ")
	}
	if err := setRow(f, 1, header); err != nil {
		return err
	}

	for i, e := range entries {
		row := make([]any, len(mappings))
		for j, m := range mappings {
			row[j] = renderSlot(e, m, false)
		}
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", row, err)
	}
	return nil
}
