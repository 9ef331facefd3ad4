// abxplot turns a semicolon-delimited sheet of live bacterial counts from
// antibiotic (ABX) and placebo treated mice into a fecal time course line
// chart, cecal and ileal violin plots, and the filtered CSVs behind each
// figure.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"cloud.google.com/go/storage"
	"github.com/carbocation/abxcounts"
	"github.com/carbocation/abxcounts/compileinfo"
	"github.com/carbocation/abxcounts/pipeline"
	"github.com/carbocation/abxcounts/plot"
)

const (
	defaultInput     = "./data/data_small.csv"
	defaultOutputDir = "./output"
)

func main() {
	compileinfo.PrintToStdErr()
	fmt.Fprintln(os.Stderr, strings.Join(os.Args, " "))

	var cfg pipeline.Config
	var delimiter string

	flag.StringVar(&cfg.Input, "input", defaultInput, "Count sheet to plot. May be a local path, a gs:// object or an http(s) URL, optionally compressed.")
	flag.StringVar(&cfg.OutputDir, "output", defaultOutputDir, "Folder (local or gs://) where the figures and CSV exports will be written.")
	flag.StringVar(&delimiter, "delimiter", string(abxcounts.DefaultDelimiter), "Field delimiter of the input. Use 'tab' for tabs or 'auto' to detect it.")
	flag.BoolVar(&cfg.Summary, "summary", false, "Also write summary.tsv with per-group descriptive statistics?")
	flag.IntVar(&cfg.Plot.Width, "width", plot.DefaultWidth, "Figure width in pixels")
	flag.IntVar(&cfg.Plot.Height, "height", plot.DefaultHeight, "Figure height in pixels")
	flag.Parse()

	if cfg.Input == "" || cfg.OutputDir == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	var err error
	cfg.Delimiter, err = parseDelimiter(delimiter)
	if err != nil {
		log.Println(err)
		flag.PrintDefaults()
		os.Exit(1)
	}

	ctx := context.Background()

	// Initialize the Google Storage client only if we're pointing to Google
	// Storage paths.
	if abxcounts.IsGoogleStoragePath(cfg.Input) || abxcounts.IsGoogleStoragePath(cfg.OutputDir) {
		cfg.StorageClient, err = storage.NewClient(ctx)
		if err != nil {
			log.Fatalln(err)
		}
		defer cfg.StorageClient.Close()
	}

	if err := pipeline.Run(ctx, cfg); err != nil {
		log.Fatalln(err)
	}

	log.Println("Done")
}

func parseDelimiter(value string) (rune, error) {
	switch strings.ToLower(value) {
	case "auto":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}

	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("Delimiter must be a single character, 'tab' or 'auto'; got %q", value)
	}

	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}
