package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/career-compass/career-compass-backend/internal/plans/domain"
)

const (
	pageMargin   = 50
	titleText    = "Your Custom Career Compass Plan"
	detailsLabel = "Plan Details:"
	resLabel     = "Suggested Resources:"
)

// Render lays out the plan as a letter-sized PDF: a title, then per week a
// heading followed by bulleted details and resources. The plan is validated
// first so malformed payloads surface as domain.ErrMalformedPlan instead of
// a broken document.
func Render(plan *domain.LearningPlan) ([]byte, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	doc := fpdf.New(fpdf.OrientationPortrait, fpdf.UnitPoint, fpdf.PageSizeLetter, "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 22, tr(titleText), "", 1, "C", false, 0, "")
	doc.Ln(24)

	for _, week := range plan.Weeks {
		doc.SetFont("Helvetica", "B", 14)
		doc.MultiCell(0, 18, tr(fmt.Sprintf("%s: %s", week.Week, week.Topic)), "", "L", false)
		doc.Ln(12)

		writeBullets(doc, tr, detailsLabel, week.Details)
		doc.Ln(12)
		writeBullets(doc, tr, resLabel, week.Resources)
		doc.Ln(24)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("build pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeBullets(doc *fpdf.Fpdf, tr func(string) string, label string, items []string) {
	doc.SetFont("Helvetica", "BU", 11)
	doc.CellFormat(0, 14, tr(label), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	for _, item := range items {
		doc.MultiCell(0, 14, tr("• "+item), "", "L", false)
	}
}
