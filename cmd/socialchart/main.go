// Command socialchart aggregates the social media CSV data and draws
// the box plot, grouped bar chart and line chart from it.
package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	_ "go.uber.org/automaxprocs"

	chart "github.com/vdobler/socialchart"
)

type CLI struct {
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"info" env:"SOCIALCHART_LOG_LEVEL"`
	Theme    string `help:"YAML theme file" type:"path" env:"SOCIALCHART_THEME"`

	Aggregate aggregateCmd `cmd:"" help:"Compute the average likes tables from the raw posts"`
	Boxplot   boxplotCmd   `cmd:"" help:"Draw the box plot of likes per category"`
	Bars      barsCmd      `cmd:"" help:"Draw the grouped bar chart of average likes"`
	Line      lineCmd      `cmd:"" help:"Draw the line chart of average likes over time"`
	Summary   summaryCmd   `cmd:"" help:"Print the five-number summary per category"`
	All       allCmd       `cmd:"" help:"Aggregate and draw all charts"`
}

// Context is passed to every command.
type Context struct {
	ctx    context.Context
	logger *slog.Logger
	theme  chart.Theme
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func main() {
	// Settings in .env act like environment variables; a missing file is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("cannot load .env", "error", err)
	}

	var cli CLI
	kongCtx := kong.Parse(&cli,
		kong.Name("socialchart"),
		kong.Description("Summarize and chart social media likes."),
		kong.UsageOnError(),
	)

	logger := newLogger(cli.LogLevel)
	theme, err := chart.LoadTheme(cli.Theme)
	kongCtx.FatalIfErrorf(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = kongCtx.Run(&Context{ctx: ctx, logger: logger, theme: theme})
	if err != nil {
		logger.Error("command failed", "command", kongCtx.Command(), "error", err)
		stop()
		os.Exit(1)
	}
}
