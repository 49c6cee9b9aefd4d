package export

import (
	"bytes"
	"fmt"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"

	"github.com/csaassociates/ca-admin-api/internal/application/dto"
)

// ledgerSheet name of the workbook sheet.
const ledgerSheet = "Ledgers"

// LedgerExport renders ledger downloads: an xlsx workbook of every
// account and a per-customer CSV statement. Satisfies
// usecase.LedgerExporter.
type LedgerExport struct{}

// NewLedgerExport builds the exporter.
func NewLedgerExport() *LedgerExport {
	return &LedgerExport{}
}

// Workbook writes the accounts into a single-sheet xlsx file.
func (e *LedgerExport) Workbook(rows []*dto.LedgerEntryResponse) ([]byte, error) {
	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(1), ledgerSheet)

	headers := []string{"Customer", "Opening Balance", "Total Invoices", "Total Payments", "Outstanding", "Last Transaction"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(ledgerSheet, cell, h)
	}

	for i, r := range rows {
		row := i + 2
		f.SetCellValue(ledgerSheet, fmt.Sprintf("A%d", row), r.CustomerName)
		f.SetCellValue(ledgerSheet, fmt.Sprintf("B%d", row), r.OpeningBalance.String())
		f.SetCellValue(ledgerSheet, fmt.Sprintf("C%d", row), r.TotalInvoices.String())
		f.SetCellValue(ledgerSheet, fmt.Sprintf("D%d", row), r.TotalPayments.String())
		f.SetCellValue(ledgerSheet, fmt.Sprintf("E%d", row), r.Outstanding.String())
		f.SetCellValue(ledgerSheet, fmt.Sprintf("F%d", row), r.LastTransaction)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Statement serializes statement rows as CSV with a header line.
func (e *LedgerExport) Statement(rows []dto.StatementRow) ([]byte, error) {
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
