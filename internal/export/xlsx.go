package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/laticiniossantana/notabase/internal/models"
	"github.com/laticiniossantana/notabase/internal/report"
)

// XLSXFileName is the download name for native-Excel exports.
const XLSXFileName = "documentos.xlsx"

// XLSX renders the already-derived document list as a workbook with the same
// column set as the CSV export, keeping Valor numeric so spreadsheet totals
// work without cleanup.
func XLSX(docs []models.Document) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Documentos"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, h := range Header {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, h)
	}

	for idx, d := range docs {
		row := idx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), d.SourceName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), FormatDateBR(d.PaymentDate))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), report.Amount(d.AmountPaid))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), d.PaidBy)
	}

	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "B", 18)
	f.SetColWidth(sheet, "C", "C", 12)
	f.SetColWidth(sheet, "D", "D", 30)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
