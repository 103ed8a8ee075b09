package report

import (
	"time"

	"github.com/go-pdf/fpdf"

	"backtest-pdf-report/internal/layout"
)

type rgb struct{ r, g, b int }

var (
	black      = rgb{0, 0, 0}
	whitesmoke = rgb{245, 245, 245}
	grey       = rgb{128, 128, 128}
	winGreen   = rgb{0x2E, 0x7D, 0x32}
	lossRed    = rgb{0xB7, 0x1C, 0x1C}
)

const (
	cellFontSize  = 9.0
	gridLineWidth = 0.4
	titleFontSize = 18.0
	titleHeight   = 24.0
	summaryHeight = 14.0
	creator       = "backtest-pdf-report"
)

// metadata is stamped into the document info dictionary.
type metadata struct {
	Title   string
	Author  string
	Subject string
	Created time.Time
}

// cellStyle is the fill/text colouring of a table row. A nil fill leaves the cell unfilled.
type cellStyle struct {
	fill *rgb
	text rgb
	bold bool
}

// tableSpec is everything drawTable needs besides the plan.
type tableSpec struct {
	headers []string
	rows    [][]string
	header  cellStyle
	// rowStyle returns the style of data row i.
	rowStyle func(i int) cellStyle
}

// page wraps an fpdf document sized from a layout plan.
type page struct {
	pdf  *fpdf.Fpdf
	plan layout.Plan
	tr   func(string) string
}

func newPage(plan layout.Plan, meta metadata) *page {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: plan.PageWidth, Ht: plan.PageHeight},
	})
	pdf.SetMargins(layout.Margin, layout.Margin, layout.Margin)
	pdf.SetAutoPageBreak(false, layout.Margin)
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetCreator(creator, true)
	pdf.SetCreationDate(meta.Created)
	pdf.SetModificationDate(meta.Created)
	pdf.AddPage()

	return &page{
		pdf:  pdf,
		plan: plan,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// top converts a lower-left y into fpdf's top-down coordinate.
func (p *page) top(y float64) float64 {
	return p.plan.PageHeight - y
}

func (p *page) title(text string) {
	p.pdf.SetXY(layout.Margin, layout.Margin)
	p.pdf.SetFont("Helvetica", "B", titleFontSize)
	p.setText(black)
	p.pdf.CellFormat(p.plan.ContentWidth(), titleHeight, p.tr(text), "", 1, "C", false, 0, "")
}

// summary writes "label value" pairs on one line below the title, labels in bold.
func (p *page) summary(pairs [][2]string) {
	const gap = 12.0
	total := 0.0
	for _, kv := range pairs {
		p.pdf.SetFont("Helvetica", "B", 10)
		total += p.pdf.GetStringWidth(kv[0]+" ") + gap
		p.pdf.SetFont("Helvetica", "", 10)
		total += p.pdf.GetStringWidth(kv[1])
	}

	p.pdf.SetXY(layout.Margin+(p.plan.ContentWidth()-total)/2, layout.Margin+titleHeight)
	p.setText(black)
	for _, kv := range pairs {
		p.pdf.SetFont("Helvetica", "B", 10)
		label := p.tr(kv[0] + " ")
		p.pdf.CellFormat(p.pdf.GetStringWidth(label), summaryHeight, label, "", 0, "L", false, 0, "")
		p.pdf.SetFont("Helvetica", "", 10)
		value := p.tr(kv[1])
		p.pdf.CellFormat(p.pdf.GetStringWidth(value)+gap, summaryHeight, value, "", 0, "L", false, 0, "")
	}
}

// table draws the header row and every data row from the plan's table top downwards.
func (p *page) table(spec tableSpec) {
	p.pdf.SetLineWidth(gridLineWidth)
	p.pdf.SetDrawColor(black.r, black.g, black.b)

	y := p.top(p.plan.TableTop())
	p.row(y, spec.headers, spec.header)
	for i, cells := range spec.rows {
		y += p.plan.RowHeight
		p.row(y, cells, spec.rowStyle(i))
	}
}

func (p *page) row(y float64, cells []string, style cellStyle) {
	fontStyle := ""
	if style.bold {
		fontStyle = "B"
	}
	p.pdf.SetFont("Helvetica", fontStyle, cellFontSize)
	p.setText(style.text)
	fill := style.fill != nil
	if fill {
		p.pdf.SetFillColor(style.fill.r, style.fill.g, style.fill.b)
	}

	p.pdf.SetXY(layout.Margin, y)
	for i, w := range p.plan.ColumnWidths {
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		p.pdf.CellFormat(w, p.plan.RowHeight, p.tr(text), "1", 0, "CM", fill, 0, "")
	}
}

func (p *page) setText(c rgb) {
	p.pdf.SetTextColor(c.r, c.g, c.b)
}
