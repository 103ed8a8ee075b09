package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	app := cli.NewApp()
	app.Name = "reporter"
	app.Usage = "Render backtest PDF reports and read back their accuracy"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Value: "./configs",
			Usage: "directory holding config.yml",
		},
	}

	app.Commands = []cli.Command{
		manualCMD,
		automatedCMD,
		accuracyCMD,
		demoCMD,
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
