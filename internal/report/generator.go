package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"backtest-pdf-report/internal/config"
	"backtest-pdf-report/internal/fieldcodec"
	"backtest-pdf-report/internal/layout"
	"backtest-pdf-report/internal/table"
)

// FormWriter adds interactive field groups to a rendered document.
type FormWriter interface {
	Overlay(rs io.ReadSeeker, groups []fieldcodec.RadioGroup, w io.Writer) error
}

var (
	manualHeaders    = []string{"Date", "Area", "Peak", "Trend", "AvgTrend", "Rally", "Overview", "Decision", "1st Trade", "2nd Trade"}
	automatedHeaders = []string{"Date", "Entry Time", "Exit Time", "Direction", "Entry Price", "SL", "Target", "Risk, Reward", "Result"}

	// Visual labels under the widgets of the three control columns.
	controlPlaceholders = []string{"   CE           PE", " Target       SL", " Target       SL"}
)

// Generator renders backtest tables into PDF reports.
type Generator struct {
	logger *zap.Logger
	cfg    config.Report
	forms  FormWriter
	now    func() time.Time // Injectable clock for deterministic output
	newID  func() string
}

// NewGenerator creates a new report generator.
func NewGenerator(cfg config.Report, logger *zap.Logger, forms FormWriter) *Generator {
	return &Generator{
		logger: logger.Named("generator"),
		cfg:    cfg,
		forms:  forms,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Manual renders the interactive manual report of t to filename (the configured
// default when empty) and returns the path written.
//
// Each row gets three radio groups (option_type_i, action_i, action2_i); the
// option-type group is pre-selected from the row's Overview.
func (g *Generator) Manual(t table.Table, month string, year int, filename string) (string, error) {
	if filename == "" {
		filename = g.cfg.ManualOutput
	}
	records := table.ManualRecords(t)
	plan := layout.New(layout.Manual(len(records)))
	reportID := g.newID()

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = append([]string{r.Date, r.Area, r.Peak, r.Trend, r.AvgTrend, r.Rally, r.Overview}, controlPlaceholders...)
	}

	title := g.title("Manual Backtest", month, year)
	p := newPage(plan, g.metadata(title, reportID))
	p.title(title)
	p.table(tableSpec{
		headers: manualHeaders,
		rows:    rows,
		header:  cellStyle{fill: &winGreen, text: whitesmoke, bold: true},
		rowStyle: func(int) cellStyle {
			return cellStyle{text: black}
		},
	})

	var rendered bytes.Buffer
	if err := p.pdf.Output(&rendered); err != nil {
		return "", fmt.Errorf("failed to render manual report: %w", err)
	}

	groups := fieldcodec.Encode(records, plan)
	if err := writeFile(filename, func(w io.Writer) error {
		return g.forms.Overlay(bytes.NewReader(rendered.Bytes()), groups, w)
	}); err != nil {
		return "", err
	}

	g.logger.Info("Manual PDF created",
		zap.String("file", filename),
		zap.Int("rows", len(records)),
		zap.Int("field_groups", len(groups)),
		zap.String("report_id", reportID),
	)
	return filename, nil
}

// Automated renders the automated algo report of t to filename (the configured default
// when empty) and returns the path written. Rows are coloured by their Result.
func (g *Generator) Automated(t table.Table, month string, year int, filename string) (string, error) {
	if filename == "" {
		filename = g.cfg.AutomatedOutput
	}
	records := table.AutomatedRecords(t)
	summary := Summarize(records)
	plan := layout.New(layout.Automated(len(records)))
	reportID := g.newID()

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{r.Date, r.EntryTime, r.ExitTime, r.Direction, r.EntryPrice, r.SL, r.Target, r.RiskReward, r.Result}
	}

	title := g.title("Automated Algo Backtest", month, year)
	p := newPage(plan, g.metadata(title, reportID))
	p.title(title)
	p.summary([][2]string{
		{"Accuracy:", summary.AccuracyText() + "%"},
		{"Wins:", strconv.Itoa(summary.Wins)},
		{"Losses:", strconv.Itoa(summary.Losses)},
	})
	p.table(tableSpec{
		headers: automatedHeaders,
		rows:    rows,
		header:  cellStyle{fill: &grey, text: whitesmoke, bold: true},
		rowStyle: func(i int) cellStyle {
			return automatedRowStyle(records[i].Result)
		},
	})

	if err := writeFile(filename, p.pdf.Output); err != nil {
		return "", err
	}

	g.logger.Info("Automated PDF created",
		zap.String("file", filename),
		zap.Int("rows", len(records)),
		zap.String("summary", summary.String()),
		zap.String("report_id", reportID),
	)
	return filename, nil
}

func (g *Generator) title(kind, month string, year int) string {
	title := fmt.Sprintf("%s — %s %d", kind, month, year)
	if g.cfg.TitleSuffix != "" {
		title += " (" + g.cfg.TitleSuffix + ")"
	}
	return title
}

func (g *Generator) metadata(title, reportID string) metadata {
	return metadata{
		Title:   title,
		Author:  g.cfg.Author,
		Subject: "report-id " + reportID,
		Created: g.now(),
	}
}

// writeFile creates filename and fills it with render. A partially written file is removed.
func writeFile(filename string, render func(io.Writer) error) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", filename, cerr)
		}
		if err != nil {
			_ = os.Remove(filename)
		}
	}()

	if err = render(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
