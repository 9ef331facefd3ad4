// Package pipeline ties loading, plotting and exporting together: one input
// sheet in, the three figures and three CSV exports out.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"

	"cloud.google.com/go/storage"
	"github.com/carbocation/abxcounts"
	"github.com/carbocation/abxcounts/plot"
)

// Output file names, written inside Config.OutputDir.
const (
	LineChartFile   = "graph_lines.png"
	CecalViolinFile = "graph_cecal.png"
	IlealViolinFile = "graph_ileal.png"
	FecalExportFile = "outfile_fec.csv"
	CecalExportFile = "outfile_cecal.csv"
	IlealExportFile = "outfile_ileal.csv"
	SummaryFile     = "summary.tsv"
)

type Config struct {
	// Input is a local path, gs:// object or http(s) URL.
	Input string

	// OutputDir is a local folder (created if needed) or gs:// prefix.
	OutputDir string

	// Delimiter separates fields in Input. 0 means sniff it.
	Delimiter rune

	// Summary additionally writes per-group descriptive statistics.
	Summary bool

	Plot plot.Options

	// StorageClient is required only when Input or OutputDir is on Google
	// Storage.
	StorageClient *storage.Client
}

// Run loads cfg.Input once, then writes the fecal line chart and export
// followed by the cecal and ileal violin plots and exports. It stops at the
// first failure.
func Run(ctx context.Context, cfg Config) error {
	data, err := abxcounts.Load(ctx, cfg.Input, cfg.Delimiter, cfg.StorageClient)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d rows with columns %v from %s\n", data.Len(), data.Columns, cfg.Input)

	out, err := abxcounts.NewOutputDir(cfg.OutputDir, cfg.StorageClient)
	if err != nil {
		return err
	}

	return ProcessAndPlot(ctx, data, out, cfg)
}

// ProcessAndPlot produces every figure and export for an already loaded
// table.
func ProcessAndPlot(ctx context.Context, data *abxcounts.Table, out *abxcounts.OutputDir, cfg Config) error {
	// Chart 1: fecal time course, and the rows behind it.
	if err := write(ctx, out, LineChartFile, func(w io.Writer) error {
		return plot.LineChart(w, data, cfg.Plot)
	}); err != nil {
		return err
	}

	fecal := data.BySampleType(abxcounts.Fecal)
	if err := write(ctx, out, FecalExportFile, func(w io.Writer) error {
		return abxcounts.WriteFecalExport(w, fecal)
	}); err != nil {
		return err
	}

	// Charts 2 and 3: terminal samples.
	for _, site := range []struct {
		sampleType abxcounts.SampleType
		figure     string
		export     string
	}{
		{abxcounts.Cecal, CecalViolinFile, CecalExportFile},
		{abxcounts.Ileal, IlealViolinFile, IlealExportFile},
	} {
		sampleType := site.sampleType

		if err := write(ctx, out, site.figure, func(w io.Writer) error {
			return plot.Violin(w, data, sampleType, cfg.Plot)
		}); err != nil {
			return err
		}

		rows := data.BySampleType(sampleType)
		if err := write(ctx, out, site.export, func(w io.Writer) error {
			return abxcounts.WriteSiteExport(w, rows)
		}); err != nil {
			return err
		}
	}

	if cfg.Summary {
		summaries, err := abxcounts.Summarize(data, abxcounts.Fecal, abxcounts.Cecal, abxcounts.Ileal)
		if err != nil {
			return err
		}

		if err := write(ctx, out, SummaryFile, func(w io.Writer) error {
			return abxcounts.WriteSummary(w, summaries)
		}); err != nil {
			return err
		}
	}

	return nil
}

func write(ctx context.Context, out *abxcounts.OutputDir, name string, fill func(io.Writer) error) error {
	if err := out.WriteFile(ctx, name, fill); err != nil {
		return fmt.Errorf("%s: %w", out.Path(name), err)
	}

	log.Printf("Wrote %s\n", out.Path(name))

	return nil
}
