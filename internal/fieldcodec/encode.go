package fieldcodec

import (
	"backtest-pdf-report/internal/layout"
	"backtest-pdf-report/internal/models"
)

// RadioButton is one positioned option of a group.
type RadioButton struct {
	Value Option
	X, Y  float64
	Size  float64
}

// RadioGroup is one named field group of the manual report.
type RadioGroup struct {
	Name     string
	Group    Group
	Row      int
	Buttons  []RadioButton
	Selected Option
}

// Encode returns the three field groups of every record, placed with plan.
// Group k of a row sits in control column k; its two options are FirstOptionDX and
// SecondOptionDX into the column, on the row's widget offset.
func Encode(records []models.Record, plan layout.Plan) []RadioGroup {
	groups := make([]RadioGroup, 0, len(records)*len(Groups()))
	for i, rec := range records {
		y := plan.RowOffset(i)
		for k, g := range Groups() {
			x := plan.ControlX(k)
			opts := g.Options()
			rg := RadioGroup{
				Name:  FieldName(g, i),
				Group: g,
				Row:   i,
				Buttons: []RadioButton{
					{Value: opts[0], X: x + layout.FirstOptionDX, Y: y, Size: layout.ButtonSize},
					{Value: opts[1], X: x + layout.SecondOptionDX, Y: y, Size: layout.ButtonSize},
				},
			}
			if g == GroupOptionType {
				rg.Selected = Preselect(rec.Overview)
			}
			groups = append(groups, rg)
		}
	}
	return groups
}
