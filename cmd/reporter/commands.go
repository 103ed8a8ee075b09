package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"backtest-pdf-report/internal/config"
	"backtest-pdf-report/internal/logger"
	"backtest-pdf-report/internal/pdfform"
	"backtest-pdf-report/internal/report"
	"backtest-pdf-report/internal/source"
	"backtest-pdf-report/internal/table"
)

var periodFlags = []cli.Flag{
	cli.StringFlag{Name: "input, i", Usage: "input table: *.csv, *.json, sqlite://file.db[?table=t] or http(s) URL"},
	cli.StringFlag{Name: "month, m", Usage: "month label shown in the title, e.g. Feb"},
	cli.IntFlag{Name: "year, y", Usage: "year shown in the title"},
	cli.StringFlag{Name: "output, o", Usage: "output PDF path (defaults to the configured name)"},
}

var (
	manualCMD = cli.Command{
		Name:        "manual",
		Usage:       "render a manual backtest report with fillable radio groups",
		Action:      manualAction,
		Flags:       periodFlags,
		Description: `Render the manual backtest journal at --input as a one-page PDF form.`,
	}
	automatedCMD = cli.Command{
		Name:        "automated",
		Usage:       "render an automated algo report with an accuracy summary",
		Action:      automatedAction,
		Flags:       periodFlags,
		Description: `Render the automated backtest at --input as a one-page PDF.`,
	}
	accuracyCMD = cli.Command{
		Name:  "accuracy",
		Usage: "read back the radio selections of a filled manual report",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "pdf, p", Usage: "filled manual report"},
		},
		Action:      accuracyAction,
		Description: `Print set1, set2 and combined accuracy of a filled manual report as JSON.`,
	}
	demoCMD = cli.Command{
		Name:  "demo",
		Usage: "render both reports from the built-in sanitized fixtures",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "dir, d", Value: ".", Usage: "output directory"},
		},
		Action: demoAction,
	}
)

// app bundles the services every command needs.
type app struct {
	cfg       config.Config
	log       *zap.Logger
	loader    *source.Loader
	generator *report.Generator
	readback  *report.Readback
}

func newApp(c *cli.Context) (*app, error) {
	cfg, err := config.LoadConfig(c.GlobalString("config"))
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}

	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		return nil, fmt.Errorf("could not create logger: %w", err)
	}
	log.Debug("Configuration loaded")

	return &app{
		cfg:       cfg,
		log:       log,
		loader:    source.NewLoader(cfg.Source, log),
		generator: report.NewGenerator(cfg.Report, log, pdfform.NewWriter(log)),
		readback:  report.NewReadback(log, pdfform.NewReader(log)),
	}, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func requireFlags(c *cli.Context, names ...string) error {
	for _, name := range names {
		if !c.IsSet(name) {
			return cli.NewExitError(fmt.Sprintf("missing required flag --%s", name), 2)
		}
	}
	return nil
}

func manualAction(c *cli.Context) error {
	return renderAction(c, func(a *app, t table.Table) (string, error) {
		return a.generator.Manual(t, c.String("month"), c.Int("year"), c.String("output"))
	})
}

func automatedAction(c *cli.Context) error {
	return renderAction(c, func(a *app, t table.Table) (string, error) {
		return a.generator.Automated(t, c.String("month"), c.Int("year"), c.String("output"))
	})
}

func renderAction(c *cli.Context, render func(*app, table.Table) (string, error)) error {
	if err := requireFlags(c, "input", "month", "year"); err != nil {
		return err
	}
	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	ctx, cancel := signalContext()
	defer cancel()

	t, err := a.loader.Load(ctx, c.String("input"))
	if err != nil {
		a.log.Error("Failed to load input", zap.String("input", c.String("input")), zap.Error(err))
		return err
	}

	path, err := render(a, t)
	if err != nil {
		a.log.Error("Failed to render report", zap.Error(err))
		return err
	}
	fmt.Println(path)
	return nil
}

func accuracyAction(c *cli.Context) error {
	if err := requireFlags(c, "pdf"); err != nil {
		return err
	}
	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	result := a.readback.Accuracy(c.String("pdf"))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func demoAction(c *cli.Context) error {
	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	dir := c.String("dir")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	manual, err := a.generator.Manual(source.DemoManual(), "Feb", 2024,
		filepath.Join(dir, filepath.Base(a.cfg.Report.ManualOutput)))
	if err != nil {
		a.log.Error("Failed to render manual demo", zap.Error(err))
		return err
	}
	fmt.Println(manual)

	automated, err := a.generator.Automated(source.DemoAutomated(), "Feb", 2024,
		filepath.Join(dir, filepath.Base(a.cfg.Report.AutomatedOutput)))
	if err != nil {
		a.log.Error("Failed to render automated demo", zap.Error(err))
		return err
	}
	fmt.Println(automated)
	return nil
}
