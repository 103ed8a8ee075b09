// Package layout derives page geometry for backtest reports.
//
// All values are PDF points with the origin at the lower-left corner of the page.
// The table renderer and the form-field overlay are separate passes over the same
// page; both read their coordinates from a Plan so the widgets stay inside the
// row band they annotate.
package layout

const (
	// Inch is one inch in points.
	Inch = 72.0

	RowHeight     = 0.45 * Inch
	Margin        = 1.0 * Inch
	MinPageHeight = 11 * Inch

	ManualDataColumnWidth = 1.05 * Inch
	ControlColumnWidth    = 1.5 * Inch
	AutomatedColumnWidth  = 1.0 * Inch

	// ManualControlColumns are Decision, 1st Trade and 2nd Trade.
	ManualControlColumns = 3

	// HeaderBandFactor scales the row height into the band above the first data row.
	HeaderBandFactor = 1.5
	// ButtonAdjust lowers a widget from the row's top edge into its visual band.
	ButtonAdjust = 0.8 * Inch
	// TitleBand is the space between the page top and the table's top edge.
	TitleBand = 0.7 * Inch

	ButtonSize = 16.0
	// FirstOptionDX and SecondOptionDX place the two options of a group within a control column.
	FirstOptionDX  = 5.0
	SecondOptionDX = 60.0

	// paddingRows reserves the header row and one row of padding.
	paddingRows = 2
)

// Params describe the table to lay out.
type Params struct {
	Rows               int
	DataColumns        int
	ControlColumns     int
	DataColumnWidth    float64
	ControlColumnWidth float64
	RowHeight          float64
}

// Manual returns the parameters of the manual report: seven data columns followed by
// three control columns.
func Manual(rows int) Params {
	return Params{
		Rows:               rows,
		DataColumns:        7,
		ControlColumns:     ManualControlColumns,
		DataColumnWidth:    ManualDataColumnWidth,
		ControlColumnWidth: ControlColumnWidth,
		RowHeight:          RowHeight,
	}
}

// Automated returns the parameters of the automated report: nine equal columns, no controls.
func Automated(rows int) Params {
	return Params{
		Rows:            rows,
		DataColumns:     9,
		DataColumnWidth: AutomatedColumnWidth,
		RowHeight:       RowHeight,
	}
}

// Plan is the derived geometry of one report page.
type Plan struct {
	PageWidth    float64
	PageHeight   float64
	RowHeight    float64
	ColumnWidths []float64
	DataColumns  int
	// Offsets holds the widget baseline of every data row, top row first.
	Offsets []float64
}

// New computes the plan for p.
func New(p Params) Plan {
	rowHeight := p.RowHeight
	if rowHeight <= 0 {
		rowHeight = RowHeight
	}
	rows := p.Rows
	if rows < 0 {
		rows = 0
	}

	widths := make([]float64, 0, p.DataColumns+p.ControlColumns)
	for i := 0; i < p.DataColumns; i++ {
		widths = append(widths, p.DataColumnWidth)
	}
	for i := 0; i < p.ControlColumns; i++ {
		widths = append(widths, p.ControlColumnWidth)
	}

	pageWidth := 2 * Margin
	for _, w := range widths {
		pageWidth += w
	}

	pageHeight := float64(rows+paddingRows)*rowHeight + 2*Margin
	if pageHeight < MinPageHeight {
		pageHeight = MinPageHeight
	}

	plan := Plan{
		PageWidth:    pageWidth,
		PageHeight:   pageHeight,
		RowHeight:    rowHeight,
		ColumnWidths: widths,
		DataColumns:  p.DataColumns,
		Offsets:      make([]float64, rows),
	}
	for i := range plan.Offsets {
		plan.Offsets[i] = plan.RowOffset(i)
	}
	return plan
}

// PageTop is the y of the top content edge (the top margin line).
func (p Plan) PageTop() float64 {
	return p.PageHeight - Margin
}

// TableTop is the y of the table's top edge.
func (p Plan) TableTop() float64 {
	return p.PageTop() - TitleBand
}

// RowOffset returns the widget y for data row i:
// page top - header band - i row heights - button adjustment.
func (p Plan) RowOffset(i int) float64 {
	headerBand := HeaderBandFactor * p.RowHeight
	return p.PageTop() - headerBand - float64(i)*p.RowHeight - ButtonAdjust
}

// ColumnX returns the left edge of column i.
func (p Plan) ColumnX(i int) float64 {
	x := Margin
	for j := 0; j < i && j < len(p.ColumnWidths); j++ {
		x += p.ColumnWidths[j]
	}
	return x
}

// ControlX returns the left edge of control column k (0-based, after the data columns).
func (p Plan) ControlX(k int) float64 {
	return p.ColumnX(p.DataColumns + k)
}

// ContentWidth is the sum of all column widths.
func (p Plan) ContentWidth() float64 {
	return p.PageWidth - 2*Margin
}
