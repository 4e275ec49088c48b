package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"techtonic/routes"
)

// The core PDF fonts are cp1252, which has no rupee sign.
var pdfText = strings.NewReplacer(routes.CurrencySymbol, "Rs. ")

// GenerateRoutePDF renders a recommendation as a one-page PDF.
func GenerateRoutePDF(rec *routes.Recommendation, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "TechTonic Travel", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Route Recommendation", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, pdfText.Replace(value), "", 1, "L", false, 0, "")
	}

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	row("Route", fmt.Sprintf("%s - %s", rec.Source, rec.Destination))
	row("Distance", fmt.Sprintf("%.0f km", rec.DistanceKM))
	row("Generated", generatedAt.UTC().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Options table ─────────────────────────────────────────
	sectionHeader("Travel Options (cheapest first)")
	widths := []float64{25, 30, 25, 35, 25, 30}
	headers := []string{"Mode", "Duration", "Price", "Estimated range", "Daily", "Comfort"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, o := range rec.TravelModes {
		cells := []string{
			o.Mode,
			o.Duration,
			routes.FormatPrice(o.Price),
			o.EstimatedCostRange,
			fmt.Sprintf("%d", o.Availability),
			string(o.Comfort),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, pdfText.Replace(c), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	// ── Best For ──────────────────────────────────────────────
	sectionHeader("Best For")
	row("Fastest", rec.BestFor.Fastest)
	row("Cheapest", rec.BestFor.Cheapest)
	row("Most comfortable", rec.BestFor.Comfort)

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Indicative prices only. Not a booking confirmation.",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
