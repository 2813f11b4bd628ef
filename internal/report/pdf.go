// Package report renders channel analyses as downloadable PDF documents.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/shadowmoulic/youtube-dashboard/internal/model"
	"github.com/shadowmoulic/youtube-dashboard/pkg/format"
)

// A4 portrait, millimetres.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 20.0
	marginRight  = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

type rgb struct{ r, g, b int }

var (
	darkGray   = rgb{31, 41, 55}
	mutedGray  = rgb{107, 114, 128}
	green      = rgb{16, 185, 129}
	orange     = rgb{245, 158, 11}
	red        = rgb{239, 68, 68}
	blue       = rgb{37, 99, 235}
	lightGray  = rgb{243, 244, 246}
	borderGray = rgb{229, 231, 235}
	white      = rgb{255, 255, 255}
)

// maxActionsPerVideo caps how many recommendations each video card shows.
const maxActionsPerVideo = 3

// Generate renders the analysis as a PDF: a header with the lead's details,
// an executive summary with the average score, then one card per video with
// its metrics and top recommendations.
func Generate(resp *model.AnalysisResponse, lead model.Lead) ([]byte, error) {
	d := &doc{pdf: fpdf.New("P", "mm", "A4", "")}
	d.pdf.SetTitle("YouTube SEO Analysis Report", false)
	d.pdf.AliasNbPages("")
	d.pdf.SetAutoPageBreak(false, 0)
	d.pdf.SetFooterFunc(d.footer)
	d.pdf.AddPage()

	y := d.header(lead)
	y = d.summary(y, resp)

	for i, v := range resp.Videos {
		y = d.videoCard(y, i, v, i < len(resp.Videos)-1)
	}

	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type doc struct {
	pdf *fpdf.Fpdf
}

func (d *doc) textColor(c rgb) { d.pdf.SetTextColor(c.r, c.g, c.b) }
func (d *doc) fillColor(c rgb) { d.pdf.SetFillColor(c.r, c.g, c.b) }
func (d *doc) drawColor(c rgb) { d.pdf.SetDrawColor(c.r, c.g, c.b) }

func (d *doc) header(lead model.Lead) float64 {
	pdf := d.pdf
	y := 20.0

	pdf.SetFont("Helvetica", "B", 20)
	d.textColor(darkGray)
	pdf.Text(marginLeft, y, "YouTube SEO Analysis Report")
	y += 8

	pdf.SetFont("Helvetica", "", 10)
	d.textColor(mutedGray)
	pdf.Text(marginLeft, y, "Generated on "+time.Now().Format("January 2, 2006"))
	y += 15

	// Prepared-for card
	d.fillColor(lightGray)
	pdf.RoundedRect(marginLeft, y, contentWidth, 18, 3, "1234", "F")
	pdf.SetFont("Helvetica", "B", 10)
	d.textColor(darkGray)
	pdf.Text(marginLeft+5, y+7, "Prepared for: "+lead.Name)
	pdf.SetFont("Helvetica", "", 8)
	d.textColor(mutedGray)
	pdf.Text(marginLeft+5, y+13, lead.Email)

	return y + 28
}

func (d *doc) summary(y float64, resp *model.AnalysisResponse) float64 {
	pdf := d.pdf

	pdf.SetFont("Helvetica", "B", 15)
	d.textColor(darkGray)
	pdf.Text(marginLeft, y, "Executive Summary")
	y += 10

	n := len(resp.Videos)
	noun := "videos"
	if n == 1 {
		noun = "video"
	}
	text := fmt.Sprintf("This report analyzes %d %s from your YouTube channel, "+
		"providing actionable SEO recommendations to improve visibility, "+
		"engagement, and search rankings.", n, noun)
	y += d.wrapped(text, marginLeft, y, contentWidth, 10, "", mutedGray) + 12

	avg := averageScore(resp.Videos)
	d.badge(avg, marginLeft, y, true)

	pdf.SetFont("Helvetica", "B", 12)
	d.textColor(darkGray)
	pdf.Text(marginLeft+70, y+8, scoreLabel(avg))
	pdf.SetFont("Helvetica", "", 8)
	d.textColor(mutedGray)
	pdf.Text(marginLeft+70, y+14, "Average SEO Score")
	y += 30

	d.divider(y)
	return y + 15
}

func (d *doc) videoCard(y float64, index int, v model.AnalyzedVideo, trailingDivider bool) float64 {
	pdf := d.pdf

	if y > pageHeight-100 {
		pdf.AddPage()
		y = 20
	}

	// Card header with the video title
	d.fillColor(lightGray)
	pdf.RoundedRect(marginLeft, y, contentWidth, 12, 2, "1234", "F")
	pdf.SetFont("Helvetica", "B", 15)
	d.textColor(darkGray)
	title := v.Snippet.Title
	if title == "" {
		title = "Untitled Video"
	}
	if r := []rune(title); len(r) > 65 {
		title = string(r[:65]) + "..."
	}
	pdf.Text(marginLeft+3, y+8, fmt.Sprintf("%d. %s", index+1, title))
	y += 17

	// Metrics row: score badge plus view/like/comment counts
	d.badge(v.Analysis.Score, marginLeft, y, false)
	pdf.SetFont("Helvetica", "", 8)
	d.textColor(mutedGray)
	metricsX := marginLeft + 35
	pdf.Text(metricsX, y+7, "Views: "+format.CountOrNA(v.Statistics.ViewCount))
	pdf.Text(metricsX+30, y+7, "|")
	pdf.Text(metricsX+35, y+7, "Likes: "+format.CountOrNA(v.Statistics.LikeCount))
	pdf.Text(metricsX+60, y+7, "|")
	pdf.Text(metricsX+65, y+7, "Comments: "+format.CountOrNA(v.Statistics.CommentCount))
	y += 15

	actions := v.Analysis.SpecificActions
	if len(actions) == 0 {
		pdf.SetFont("Helvetica", "I", 8)
		d.textColor(mutedGray)
		pdf.Text(marginLeft, y, "No specific recommendations available.")
		y += 10
	} else {
		pdf.SetFont("Helvetica", "B", 12)
		d.textColor(darkGray)
		pdf.Text(marginLeft, y, "Recommended Actions")
		y += 8

		if len(actions) > maxActionsPerVideo {
			actions = actions[:maxActionsPerVideo]
		}
		for _, action := range actions {
			y = d.actionItem(y, action)
		}
		y += 5
	}

	y += 10
	if trailingDivider {
		d.divider(y)
		y += 15
	}
	return y
}

func (d *doc) actionItem(y float64, action model.Action) float64 {
	pdf := d.pdf

	if y > pageHeight-50 {
		pdf.AddPage()
		y = 20
	}

	d.fillColor(blue)
	pdf.Circle(marginLeft+2, y+2, 1.2, "F")

	issue := action.Issue
	if issue == "" {
		issue = "Optimization needed"
	}
	y += d.wrapped(issue, marginLeft+8, y+3, contentWidth-10, 10, "B", darkGray) + 3

	if action.Current != "" {
		y += d.wrapped("Current: "+action.Current, marginLeft+12, y, contentWidth-15, 8, "", mutedGray) + 2
	}

	if action.Recommended != "" {
		pdf.SetFont("Helvetica", "B", 8)
		d.textColor(green)
		pdf.Text(marginLeft+12, y, "Optimized:")
		y += d.wrapped(action.Recommended, marginLeft+12, y+3.5, contentWidth-15, 8, "", green) + 6
	}

	return y
}

// wrapped renders text at x,y split to maxWidth and returns the height used.
func (d *doc) wrapped(text string, x, y, maxWidth, size float64, style string, color rgb) float64 {
	pdf := d.pdf
	pdf.SetFont("Helvetica", style, size)
	d.textColor(color)

	lines := pdf.SplitText(collapseSpace(text), maxWidth)
	lineHeight := size * 0.4
	for i, line := range lines {
		pdf.Text(x, y+float64(i)*lineHeight, line)
	}
	return float64(len(lines)) * lineHeight
}

// badge draws a rounded, colored score box. Green for strong scores, orange
// for middling, red for critical.
func (d *doc) badge(score int, x, y float64, large bool) {
	pdf := d.pdf

	w, h, size := 28.0, 10.0, 9.0
	if large {
		w, h, size = 60.0, 20.0, 14.0
	}

	d.fillColor(scoreColor(score))
	pdf.RoundedRect(x, y, w, h, 3, "1234", "F")

	pdf.SetFont("Helvetica", "B", size)
	d.textColor(white)
	label := fmt.Sprintf("%d", score)
	pdf.Text(x+w/2-pdf.GetStringWidth(label)/2, y+h/2+size*0.12, label)
}

func (d *doc) divider(y float64) {
	d.drawColor(borderGray)
	d.pdf.SetLineWidth(0.5)
	d.pdf.Line(marginLeft, y, pageWidth-marginRight, y)
}

func (d *doc) footer() {
	pdf := d.pdf
	footerY := pageHeight - 15

	d.drawColor(borderGray)
	pdf.SetLineWidth(0.3)
	pdf.Line(marginLeft, footerY-5, pageWidth-marginRight, footerY-5)

	pdf.SetFont("Helvetica", "", 8)
	d.textColor(mutedGray)
	pdf.Text(marginLeft, footerY, "Created by Sayak Moulic")

	page := fmt.Sprintf("Page %d of {nb}", pdf.PageNo())
	pdf.Text(pageWidth-marginRight-pdf.GetStringWidth(page), footerY, page)
}

func scoreColor(score int) rgb {
	switch {
	case score >= 75:
		return green
	case score >= 50:
		return orange
	default:
		return red
	}
}

func scoreLabel(score int) string {
	switch {
	case score >= 75:
		return "Excellent Performance"
	case score >= 50:
		return "Needs Improvement"
	default:
		return "Critical Issues Detected"
	}
}

func averageScore(videos []model.AnalyzedVideo) int {
	if len(videos) == 0 {
		return 0
	}
	sum := 0
	for _, v := range videos {
		sum += v.Analysis.Score
	}
	return int(float64(sum)/float64(len(videos)) + 0.5)
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
