package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders a printable lint report, one section per file. The
// layout is intentionally simple: a bold heading per file and one line per
// finding.
func WritePDF(results []FileResult, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "caplint report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, r := range results {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, r.Path, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		if len(r.Diagnostics) == 0 {
			pdf.MultiCell(0, 5, "no findings", "", "L", false)
			pdf.Ln(4)
			continue
		}
		for _, it := range r.Diagnostics {
			line := fmt.Sprintf("%d:%d %s: %s", it.Line, it.Column, it.Severity, it.Message)
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
		pdf.Ln(4)
	}

	return pdf.OutputFileAndClose(outPath)
}
