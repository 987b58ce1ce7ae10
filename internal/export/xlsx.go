package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"forkful/internal/domain"
)

var itemColumns = []string{"Item", "Quantity", "Unit", "Notes", "Checked"}

// WriteShoppingListXLSX renders a shopping list as an Excel workbook with one
// sheet named after the list.
func WriteShoppingListXLSX(w io.Writer, list *domain.ShoppingList, items []domain.ShoppingListItem) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := sheetName(list.Name)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}

	for col, name := range itemColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("export: header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("export: header cell: %w", err)
		}
	}

	for i, item := range items {
		row := i + 2
		values := []interface{}{item.Name, nil, item.Unit, item.Notes, item.Checked}
		if item.Quantity != nil {
			values[1] = *item.Quantity
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("export: item cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("export: item cell: %w", err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

// sheetName trims the list name to Excel's 31-character sheet limit and
// strips characters Excel rejects.
func sheetName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return ' '
		}
		return r
	}, name)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		cleaned = "Shopping List"
	}
	if len(cleaned) > 31 {
		cleaned = cleaned[:31]
	}
	return cleaned
}
