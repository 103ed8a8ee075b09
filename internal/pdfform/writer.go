package pdfform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"

	"backtest-pdf-report/internal/fieldcodec"
)

const (
	labelFont     = "$labels"
	labelFontSize = 9
	labelGap      = 3
)

// Writer overlays radio groups onto page 1 of an existing PDF.
type Writer struct {
	logger *zap.Logger
	conf   *model.Configuration
}

// NewWriter creates a new Writer.
func NewWriter(logger *zap.Logger) *Writer {
	return &Writer{
		logger: logger.Named("pdfform-writer"),
		conf:   model.NewDefaultConfiguration(),
	}
}

// Overlay reads the PDF from rs, adds groups as form fields and writes the result to w.
func (wr *Writer) Overlay(rs io.ReadSeeker, groups []fieldcodec.RadioGroup, w io.Writer) error {
	doc, err := json.Marshal(buildFormDoc(groups))
	if err != nil {
		return fmt.Errorf("failed to encode form layout: %w", err)
	}

	if err := api.Create(rs, bytes.NewReader(doc), w, wr.conf); err != nil {
		return fmt.Errorf("failed to add form fields: %w", err)
	}

	wr.logger.Debug("Form fields added", zap.Int("groups", len(groups)))
	return nil
}

// formDoc mirrors the subset of pdfcpu's JSON page-content layout used for radio groups.
type formDoc struct {
	Origin string              `json:"origin"`
	Fonts  map[string]fontSpec `json:"fonts"`
	Pages  map[string]pageSpec `json:"pages"`
}

type fontSpec struct {
	Name string `json:"name"`
	Size int    `json:"size"`
	Col  string `json:"col,omitempty"`
}

type pageSpec struct {
	Content contentSpec `json:"content"`
}

type contentSpec struct {
	RadioButtonGroups []radioGroupSpec `json:"radiobuttongroup"`
}

type radioGroupSpec struct {
	ID          string      `json:"id"`
	Value       string      `json:"value,omitempty"`
	Default     string      `json:"default,omitempty"`
	Pos         [2]float64  `json:"pos"`
	Width       float64     `json:"width"` // side of each button
	Orientation string      `json:"orientation"`
	Buttons     buttonsSpec `json:"buttons"`
	BgCol       string      `json:"bgCol"`
}

type buttonsSpec struct {
	Values []string  `json:"values"`
	Gap    int       `json:"gap"` // between a button and its own label
	Label  labelSpec `json:"label"`
}

// labelSpec lays out the option labels. pdfcpu requires a non-empty Value even
// though button labels print the option values.
type labelSpec struct {
	Value string   `json:"value"`
	Width int      `json:"width"`
	Pos   string   `json:"pos"`
	Font  fontName `json:"font"`
}

type fontName struct {
	Name string `json:"name"`
}

// buildFormDoc lays out groups for pdfcpu. Horizontal buttons advance by
// button width plus label width, so the label width is the gap between
// consecutive options minus the button size.
func buildFormDoc(groups []fieldcodec.RadioGroup) formDoc {
	specs := make([]radioGroupSpec, 0, len(groups))
	for _, g := range groups {
		if len(g.Buttons) == 0 {
			continue
		}
		first := g.Buttons[0]

		values := make([]string, len(g.Buttons))
		for i, b := range g.Buttons {
			values[i] = string(b.Value)
		}

		labelWidth := 1
		if len(g.Buttons) > 1 {
			step := g.Buttons[1].X - first.X
			if w := int(math.Round(step - first.Size)); w > labelWidth {
				labelWidth = w
			}
		}

		specs = append(specs, radioGroupSpec{
			ID:          g.Name,
			Value:       string(g.Selected),
			Default:     string(g.Selected),
			Pos:         [2]float64{first.X, first.Y},
			Width:       first.Size,
			Orientation: "hor",
			Buttons: buttonsSpec{
				Values: values,
				Gap:    labelGap,
				Label: labelSpec{
					Value: g.Name,
					Width: labelWidth,
					Pos:   "right",
					Font:  fontName{Name: labelFont},
				},
			},
			BgCol: "#FFFFFF",
		})
	}

	return formDoc{
		Origin: "LowerLeft",
		Fonts: map[string]fontSpec{
			labelFont[1:]: {Name: "Helvetica-Bold", Size: labelFontSize, Col: "#000000"},
		},
		Pages: map[string]pageSpec{
			"1": {Content: contentSpec{RadioButtonGroups: specs}},
		},
	}
}
