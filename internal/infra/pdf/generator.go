// Package pdf renders maintenance history into downloadable PDF documents.
package pdf

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/entity"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/service"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	pageWidth    = 210.0 // A4 portrait, mm
	leftMargin   = 14.0
	rightMargin  = 14.0
	contentWidth = pageWidth - leftMargin - rightMargin

	headerFill  = 235
	lineHeight  = 6.0
	cellPadding = 1.5
)

// Column widths follow the reference layout: date, title, category,
// recurrence, notes.
var columnWidths = [5]float64{25, 47, 30, 30, 50}

var columnTitles = [5]string{"Datum", "Název", "Kategorie", "Periodicita", "Poznámky"}

type generator struct {
	logger *slog.Logger
}

// NewDocumentService creates the PDF-backed document service.
func NewDocumentService(logger *slog.Logger) service.DocumentService {
	return &generator{logger: logger}
}

// RenderHistory renders one maintenance table per section, grouped under the
// property's name, and returns the finished document. No partial output is
// returned on failure.
func (g *generator) RenderHistory(ctx context.Context, sections []service.ExportSection, opts service.ExportOptions) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(leftMargin, 15, rightMargin)
	doc.SetAutoPageBreak(true, 20)
	doc.SetTitle("Historie údržby", true)
	doc.AliasNbPages("")

	// Core fonts are Latin-1; Czech labels need the cp1250 translator.
	tr := doc.UnicodeTranslatorFromDescriptor("cp1250")

	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(0, 10, tr("Strana "+strconv.Itoa(doc.PageNo())+" z {nb}"), "", 0, "R", false, 0, "")
	})

	doc.AddPage()
	g.renderTitleBlock(doc, tr, sections)

	if len(opts.ShareCode) > 0 {
		g.renderShareCode(doc, opts.ShareCode)
	}

	for i, section := range sections {
		g.renderSection(doc, tr, section, opts.IncludeImages)

		// Separator between properties, as in the reference layout.
		if i < len(sections)-1 {
			y := doc.GetY() + 5
			doc.SetDrawColor(200, 200, 200)
			doc.Line(leftMargin, y, pageWidth-rightMargin, y)
			doc.SetDrawColor(0, 0, 0)
			doc.SetY(y + 5)
		}
	}

	if doc.Err() {
		g.logger.Error("Failed to render history document", slog.Any("error", doc.Error()))

		return nil, errors.Wrap(doc.Error(), "failed to render history document")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write history document")
	}

	return buf.Bytes(), nil
}

// renderTitleBlock draws the centered document header: title, property name
// when a single property is exported, and the generation date.
func (g *generator) renderTitleBlock(doc *fpdf.Fpdf, tr func(string) string, sections []service.ExportSection) {
	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(contentWidth, 10, tr("Historie údržby"), "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 12)
	if len(sections) == 1 {
		doc.CellFormat(contentWidth, 7, tr("Nemovitost: "+sections[0].Property.Name), "", 1, "C", false, 0, "")
	}
	doc.CellFormat(contentWidth, 7, tr("Vygenerováno: "+time.Now().Format("02.01.2006")), "", 1, "C", false, 0, "")
	doc.Ln(4)
}

// renderShareCode embeds the share QR code in the top-right corner.
func (g *generator) renderShareCode(doc *fpdf.Fpdf, code []byte) {
	doc.RegisterImageOptionsReader("share-qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(code))
	doc.ImageOptions("share-qr", pageWidth-rightMargin-24, 10, 24, 24, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

// renderSection draws one property heading followed by its maintenance table.
func (g *generator) renderSection(doc *fpdf.Fpdf, tr func(string) string, section service.ExportSection, includeImages bool) {
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(contentWidth, 9, tr("Nemovitost: "+section.Property.Name), "", 1, "L", false, 0, "")

	if section.Property.Address != "" {
		doc.SetFont("Helvetica", "", 12)
		doc.CellFormat(contentWidth, 7, tr("Adresa: "+section.Property.Address), "", 1, "L", false, 0, "")
	}
	doc.Ln(2)

	g.renderTableHeader(doc, tr)
	for _, event := range section.Events {
		g.renderTableRow(doc, tr, event)
	}

	if includeImages {
		g.renderImagePlaceholders(doc, tr, section.Events)
	}

	doc.Ln(4)
}

func (g *generator) renderTableHeader(doc *fpdf.Fpdf, tr func(string) string) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(headerFill, headerFill, headerFill)
	for i, title := range columnTitles {
		doc.CellFormat(columnWidths[i], lineHeight+cellPadding, tr(title), "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)
}

// renderTableRow draws one event row. The notes column wraps; the other cells
// stretch to the row height.
func (g *generator) renderTableRow(doc *fpdf.Fpdf, tr func(string) string, event *entity.MaintenanceEvent) {
	doc.SetFont("Helvetica", "", 10)

	cells := [5]string{
		event.Date.Format("02.01.2006"),
		tr(event.Title),
		tr(translateCategory(event.Category)),
		tr(translateRecurringPeriod(event.RecurringPeriod)),
		tr(event.Notes),
	}

	// SplitLines is the byte-string variant of SplitText; the notes cell holds
	// cp1250 bytes, which SplitText would misread as UTF-8.
	noteLines := doc.SplitLines([]byte(cells[4]), columnWidths[4]-2*cellPadding)
	rowLines := len(noteLines)
	if rowLines < 1 {
		rowLines = 1
	}
	rowHeight := float64(rowLines)*lineHeight + cellPadding

	// Keep the row on one page.
	_, pageHeight := doc.GetPageSize()
	_, _, _, bottom := doc.GetMargins()
	if doc.GetY()+rowHeight > pageHeight-bottom {
		doc.AddPage()
		g.renderTableHeader(doc, tr)
	}

	x, y := doc.GetXY()
	for i := 0; i < 4; i++ {
		doc.Rect(x, y, columnWidths[i], rowHeight, "D")
		doc.SetXY(x+cellPadding, y)
		doc.CellFormat(columnWidths[i]-2*cellPadding, rowHeight, cells[i], "", 0, "L", false, 0, "")
		x += columnWidths[i]
	}

	doc.Rect(x, y, columnWidths[4], rowHeight, "D")
	doc.SetXY(x+cellPadding, y)
	doc.MultiCell(columnWidths[4]-2*cellPadding, lineHeight, cells[4], "", "L", false)

	doc.SetXY(leftMargin, y+rowHeight)
}

// renderImagePlaceholders draws a framed placeholder block per event carrying
// a photo, matching the reference export.
func (g *generator) renderImagePlaceholders(doc *fpdf.Fpdf, tr func(string) string, events []*entity.MaintenanceEvent) {
	for _, event := range events {
		if event.Photo == "" {
			continue
		}

		if doc.GetY() > 240 {
			doc.AddPage()
		}
		doc.Ln(4)

		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(contentWidth, 7, tr("Obrázek k údržbě: "+event.Title), "", 1, "L", false, 0, "")

		y := doc.GetY()
		doc.Rect(leftMargin, y, contentWidth, 50, "D")
		doc.SetXY(leftMargin, y+22)
		doc.CellFormat(contentWidth, 6, tr("Místo pro obrázek údržby"), "", 1, "C", false, 0, "")
		doc.SetY(y + 54)
	}
}
