// Package export renders statistics reports as downloadable CSV or PDF files.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Report is a titled table ready for rendering.
type Report struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// CSV encodes the report as CSV bytes. The title is not part of the CSV body.
func CSV(report Report) ([]byte, error) {
	if len(report.Headers) == 0 {
		return nil, fmt.Errorf("report has no headers")
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(report.Headers); err != nil {
		return nil, fmt.Errorf("write headers: %w", err)
	}
	for i, row := range report.Rows {
		if len(row) != len(report.Headers) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(report.Headers))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// PDF renders the report as a single-page A4 table.
func PDF(report Report) ([]byte, error) {
	if len(report.Headers) == 0 {
		return nil, fmt.Errorf("report has no headers")
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(10, 15, 10)
	doc.AddPage()

	if report.Title != "" {
		doc.SetFont("Arial", "B", 14)
		doc.CellFormat(0, 10, report.Title, "", 1, "C", false, 0, "")
		doc.Ln(4)
	}

	colWidth := 190.0 / float64(len(report.Headers))

	doc.SetFont("Arial", "B", 10)
	for _, h := range report.Headers {
		doc.CellFormat(colWidth, 8, h, "1", 0, "C", false, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Arial", "", 9)
	for _, row := range report.Rows {
		for i := range report.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			doc.CellFormat(colWidth, 7, cell, "1", 0, "", false, 0, "")
		}
		doc.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := doc.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
