package document

import (
	"fmt"
	"path/filepath"

	"smartedybot/internal/config"
	"smartedybot/internal/domain"

	"github.com/go-pdf/fpdf"
)

const (
	coreFont    = "Arial"
	unicodeFont = "Unicode"
)

// PDFRenderer lays out receipts as single-page A4 documents
type PDFRenderer struct {
	fontPath string
}

// NewPDFRenderer creates a renderer. Without a font path the core
// Arial font is used and text outside cp1252 is not representable.
func NewPDFRenderer(cfg config.DocumentConfig) *PDFRenderer {
	return &PDFRenderer{fontPath: cfg.FontPath}
}

// Render writes receipt to path
func (r *PDFRenderer) Render(receipt domain.Receipt, path string) error {
	fontDir := ""
	if r.fontPath != "" {
		fontDir = filepath.Dir(r.fontPath)
	}
	pdf := fpdf.New("P", "mm", "A4", fontDir)
	pdf.SetTitle(receipt.Title, true)

	family := coreFont
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if r.fontPath != "" {
		// fpdf resolves font files relative to its font directory
		pdf.AddUTF8Font(unicodeFont, "", filepath.Base(r.fontPath))
		family = unicodeFont
		tr = func(s string) string { return s }
	}

	pdf.AddPage()

	pdf.SetFont(family, "", 16)
	pdf.MultiCell(190, 10, tr(receipt.Title), "", "C", false)
	pdf.Ln(4)

	pdf.SetFont(family, "", 12)
	pdf.MultiCell(190, 10, tr(receipt.Body), "", "", false)
	pdf.MultiCell(190, 10, tr(receipt.Tier.ProductLabel()), "", "", false)
	pdf.MultiCell(190, 10, fmt.Sprintf("%d EUR", receipt.Tier.PriceEUR()), "", "", false)
	pdf.MultiCell(190, 10, receipt.IssuedAt.Format("2006-01-02"), "", "", false)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("layout pdf: %w", err)
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}
