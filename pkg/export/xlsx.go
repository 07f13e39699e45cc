// Package export writes FinanceFlow data to spreadsheet files.
package export

import (
	"fmt"
	"io"

	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/services"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Transactions"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Headers are the column titles of the transaction sheet.
var Headers = []string{"Date", "Type", "Category", "Description", "Amount"}

var border = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

type styles struct {
	header, data, amount, summary int
}

func newStyles(f *excelize.File) (s styles, err error) {
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1E3A8A"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	}); err != nil {
		return
	}

	if s.data, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    border,
	}); err != nil {
		return
	}

	// Built-in number format 4 is "#,##0.00"
	if s.amount, err = f.NewStyle(&excelize.Style{
		NumFmt:    4,
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:    border,
	}); err != nil {
		return
	}

	s.summary, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FACC15"}, Pattern: 1},
		NumFmt: 4,
		Border: border,
	})
	return
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// WriteTransactionsXLSX writes the transactions as a spreadsheet to w, with
// dates formatted according to the settings. The sheet ends with rows for
// the total income and expenses.
func WriteTransactionsXLSX(w io.Writer, transactions []models.Transaction, settings models.UserSettings) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	s, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("creating styles: %w", err)
	}

	widths := []float64{14, 10, 18, 40, 14}
	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return err
		}
	}

	for i, header := range Headers {
		if err := f.SetCellValue(SheetName, cell(i+1, 1), header); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(SheetName, cell(1, 1), cell(len(Headers), 1), s.header); err != nil {
		return err
	}

	income, expenses := decimal.Zero, decimal.Zero
	for i, t := range transactions {
		row := i + 2
		amount, _ := t.Amount.Float64()

		values := []interface{}{
			services.FormatDate(t.Date, settings.DateFormat),
			string(t.Type),
			t.Category,
			t.Description,
			amount,
		}

		for col, value := range values {
			if err := f.SetCellValue(SheetName, cell(col+1, row), value); err != nil {
				return err
			}
		}

		if err := f.SetCellStyle(SheetName, cell(1, row), cell(4, row), s.data); err != nil {
			return err
		}

		if err := f.SetCellStyle(SheetName, cell(5, row), cell(5, row), s.amount); err != nil {
			return err
		}

		if t.IsIncome() {
			income = income.Add(t.Amount)
		} else {
			expenses = expenses.Add(t.Amount)
		}
	}

	summary := len(transactions) + 2
	for i, total := range []struct {
		label string
		value decimal.Decimal
	}{
		{fmt.Sprintf("Total income (%s)", settings.Currency), income},
		{fmt.Sprintf("Total expenses (%s)", settings.Currency), expenses},
	} {
		row := summary + i
		value, _ := total.value.Float64()

		if err := f.SetCellValue(SheetName, cell(1, row), total.label); err != nil {
			return err
		}

		if err := f.MergeCell(SheetName, cell(1, row), cell(4, row)); err != nil {
			return err
		}

		if err := f.SetCellValue(SheetName, cell(5, row), value); err != nil {
			return err
		}

		if err := f.SetCellStyle(SheetName, cell(1, row), cell(5, row), s.summary); err != nil {
			return err
		}
	}

	return f.Write(w)
}
