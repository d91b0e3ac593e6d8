package contract

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// RenderPDF turns an assembled document into PDF bytes.
func RenderPDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	// Core fonts are latin-1 only; translate the Portuguese accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr(doc.Title), "", "C", false)
	pdf.Ln(6)

	for _, section := range doc.Sections {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 6, tr(section.Heading), "", "L", false)
		pdf.Ln(1)

		pdf.SetFont("Helvetica", "", 11)
		for _, p := range section.Paragraphs {
			pdf.MultiCell(0, 5.5, tr(p), "", "L", false)
			pdf.Ln(1)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render contract pdf: %w", err)
	}
	return buf.Bytes(), nil
}
