// Package reports renders the quotation history into spreadsheet exports.
package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"borequote/internal/domain/quotation"
)

const (
	sheetName  = "Quotations"
	dateLayout = "02/01/2006"
)

// WriteQuotationsXLSX writes all quotations to w as a spreadsheet, one row
// per record in store order.
func WriteQuotationsXLSX(w io.Writer, quotations []quotation.Quotation, symbol string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	headers := []string{"Quotation No", "Date", "Customer", "Items", "Total"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, q := range quotations {
		row := []string{
			q.QuotationNumber,
			q.Date.Format(dateLayout),
			q.CustomerName,
			fmt.Sprintf("%d", len(q.Items)),
			symbol + q.Total.StringFixed(2),
		}
		for colIdx, value := range row {
			cell := fmt.Sprintf("%s%d", string(rune('A'+colIdx)), rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range headers {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 18)
	}

	f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write spreadsheet: %w", err)
	}
	return nil
}
