package main

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pkg/errors"

	chart "github.com/vdobler/socialchart"
	"github.com/vdobler/socialchart/stat"
)

// -------------------------------------------------------------------------
// aggregate

type aggregateCmd struct {
	Input  string `short:"i" help:"Raw posts CSV" default:"socialMedia.csv" type:"existingfile"`
	OutDir string `short:"o" help:"Directory for the result tables" default:"." type:"existingdir"`
}

// Names of the tables written by aggregate.
const (
	avgFile  = "socialMediaAvg.csv"
	timeFile = "socialMediaTime.csv"
)

func (c *aggregateCmd) Run(rc *Context) error {
	posts, err := readCSV(c.Input)
	if err != nil {
		return err
	}
	byType, byDate, err := chart.Aggregate(posts)
	if err != nil {
		return err
	}
	for _, out := range []struct {
		name string
		df   *chart.DataFrame
	}{
		{avgFile, byType},
		{timeFile, byDate},
	} {
		path := filepath.Join(c.OutDir, out.name)
		if err := writeFile(path, out.df.WriteCSV); err != nil {
			return err
		}
		rc.logger.Info("table written", "path", path, "rows", out.df.N)
	}
	return nil
}

// -------------------------------------------------------------------------
// boxplot

type boxplotCmd struct {
	Input  string `short:"i" help:"Raw posts CSV" default:"socialMedia.csv" type:"existingfile"`
	Group  string `help:"Category column" default:"AgeGroup"`
	Value  string `help:"Value column" default:"Likes"`
	XLabel string `help:"Title of the x axis" default:"Age Group"`
	YLabel string `help:"Title of the y axis" default:"Number of Likes"`
	Output string `short:"o" help:"Output file, .svg or .png" default:"boxplot.svg"`
}

func (c *boxplotCmd) Run(rc *Context) error {
	df, err := readCSV(c.Input)
	if err != nil {
		return err
	}
	bc, err := chart.NewBoxplotChart(rc.ctx, df, c.Group, c.Value)
	if err != nil {
		return err
	}
	bc.XLabel, bc.YLabel = c.XLabel, c.YLabel
	for _, s := range bc.Summaries {
		rc.logger.Debug("box", "group", s.Key, "n", s.N,
			"min", s.Min, "q1", s.Q1, "median", s.Median, "q3", s.Q3, "max", s.Max)
	}
	return render(rc, bc, c.Output)
}

// -------------------------------------------------------------------------
// bars

type barsCmd struct {
	Input  string `short:"i" help:"Average likes per platform and post type" default:"socialMediaAvg.csv" type:"existingfile"`
	Group  string `help:"Column on the x axis" default:"Platform"`
	Series string `help:"Column distinguishing the bars of a group" default:"PostType"`
	Value  string `help:"Bar height column" default:"AvgLikes"`
	XLabel string `help:"Title of the x axis" default:"Platform"`
	YLabel string `help:"Title of the y axis" default:"Average Number of Likes"`
	Output string `short:"o" help:"Output file, .svg or .png" default:"bars.svg"`
}

func (c *barsCmd) Run(rc *Context) error {
	df, err := readCSV(c.Input)
	if err != nil {
		return err
	}
	bc, err := chart.NewGroupedBarChart(df, c.Group, c.Series, c.Value)
	if err != nil {
		return err
	}
	bc.XLabel, bc.YLabel = c.XLabel, c.YLabel
	return render(rc, bc, c.Output)
}

// -------------------------------------------------------------------------
// line

type lineCmd struct {
	Input      string `short:"i" help:"Average likes per day" default:"socialMediaTime.csv" type:"existingfile"`
	Date       string `help:"Date column" default:"Date"`
	Value      string `help:"Value column" default:"AvgLikes"`
	XLabel     string `help:"Title of the x axis" default:"Date (Month/Day)"`
	YLabel     string `help:"Title of the y axis" default:"Average Number of Likes"`
	TimeFormat string `help:"Go time layout of the x tick labels" default:"01/02"`
	Output     string `short:"o" help:"Output file, .svg or .png" default:"line.svg"`
}

func (c *lineCmd) Run(rc *Context) error {
	df, err := readCSV(c.Input)
	if err != nil {
		return err
	}
	lc, err := chart.NewLineChart(df, c.Date, c.Value)
	if err != nil {
		return err
	}
	lc.XLabel, lc.YLabel, lc.TimeFormat = c.XLabel, c.YLabel, c.TimeFormat
	return render(rc, lc, c.Output)
}

// -------------------------------------------------------------------------
// summary

type summaryCmd struct {
	Input  string `short:"i" help:"Raw posts CSV" default:"socialMedia.csv" type:"existingfile"`
	Group  string `help:"Category column" default:"AgeGroup"`
	Value  string `help:"Value column" default:"Likes"`
	Format string `help:"Output format" enum:"text,json" default:"text"`
}

func (c *summaryCmd) Run(rc *Context) error {
	df, err := readCSV(c.Input)
	if err != nil {
		return err
	}
	summaries, err := chart.StatBoxplot{Group: c.Group, Value: c.Value}.Apply(rc.ctx, df)
	if err != nil {
		return err
	}
	return printSummaries(os.Stdout, c.Group, summaries, c.Format)
}

func printSummaries(w io.Writer, group string, summaries []stat.GroupSummary, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(summaries), "encoding summaries")
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignRight},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{Borders: tw.BorderNone}),
	)
	table.Header(group, "n", "min", "q1", "median", "q3", "max")
	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = []string{s.Key, strconv.Itoa(s.N),
			chart.FormatFloat(s.Min), chart.FormatFloat(s.Q1), chart.FormatFloat(s.Median),
			chart.FormatFloat(s.Q3), chart.FormatFloat(s.Max)}
	}
	if err := table.Bulk(rows); err != nil {
		return errors.Wrap(err, "writing summaries")
	}
	return errors.Wrap(table.Render(), "writing summaries")
}

// -------------------------------------------------------------------------
// all

type allCmd struct {
	Input  string `short:"i" help:"Raw posts CSV" default:"socialMedia.csv" type:"existingfile"`
	OutDir string `short:"o" help:"Directory for tables and charts" default:"." type:"existingdir"`
	Format string `help:"Chart format" enum:"svg,png" default:"svg"`
}

func (c *allCmd) Run(rc *Context) error {
	agg := aggregateCmd{Input: c.Input, OutDir: c.OutDir}
	if err := agg.Run(rc); err != nil {
		return err
	}

	out := func(name string) string { return filepath.Join(c.OutDir, name+"."+c.Format) }
	box := boxplotCmd{
		Input: c.Input, Group: chart.ColAgeGroup, Value: chart.ColLikes,
		XLabel: "Age Group", YLabel: "Number of Likes",
		Output: out("boxplot"),
	}
	if err := box.Run(rc); err != nil {
		return err
	}
	bars := barsCmd{
		Input: filepath.Join(c.OutDir, avgFile),
		Group: chart.ColPlatform, Series: chart.ColPostType, Value: chart.ColAvgLikes,
		XLabel: "Platform", YLabel: "Average Number of Likes",
		Output: out("bars"),
	}
	if err := bars.Run(rc); err != nil {
		return err
	}
	line := lineCmd{
		Input: filepath.Join(c.OutDir, timeFile),
		Date:  chart.ColDate, Value: chart.ColAvgLikes,
		XLabel: "Date (Month/Day)", YLabel: "Average Number of Likes",
		TimeFormat: "01/02",
		Output:     out("line"),
	}
	return line.Run(rc)
}

// -------------------------------------------------------------------------
// helpers

func readCSV(path string) (*chart.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()
	return chart.ReadCSV(filepath.Base(path), f)
}

// formatOf derives the chart format from the extension of path.
func formatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range chart.Formats {
		if ext == f {
			return f, nil
		}
	}
	return "", errors.Errorf("%s: unsupported format %q, want one of %s",
		path, ext, strings.Join(chart.Formats, ", "))
}

func render(rc *Context, c chart.Chart, path string) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}
	err = writeFile(path, func(w io.Writer) error {
		return chart.Render(w, c, format, rc.theme)
	})
	if err != nil {
		return err
	}
	rc.logger.Info("chart written", "path", path)
	return nil
}

// writeFile creates path and lets write fill it. A failed write removes
// the partial file.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
