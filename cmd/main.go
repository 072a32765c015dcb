// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"datacleanse/internal/batch"
	"datacleanse/internal/batchio"
	"datacleanse/internal/config"
	"datacleanse/internal/help"
	"datacleanse/internal/lookup"
	"datacleanse/internal/observability"
	"datacleanse/internal/postal"
	"datacleanse/internal/resilience"
	"datacleanse/internal/version"

	"datacleanse/internal/formatters"
	_ "datacleanse/internal/formatters/csv"
	_ "datacleanse/internal/formatters/json"
	_ "datacleanse/internal/formatters/text"
)

// cliFlags holds command line flag values
type cliFlags struct {
	input        string
	recordType   string
	format       string
	output       string
	configFile   string
	dictionaries string
	validate     bool
	minConf      float64
	workers      int
	verbose      bool
	debug        bool
	noColor      bool
	status       bool
	showVersion  bool
	showHelp     bool
}

func main() {
	flags := &cliFlags{}
	flag.StringVar(&flags.input, "input", "", "Path to the input file (.csv or .xlsx)")
	flag.StringVar(&flags.recordType, "type", "names", "Record type in the input: names or addresses")
	flag.StringVar(&flags.format, "format", "", "Output format: text, json, csv")
	flag.StringVar(&flags.output, "output", "", "Path to output file (default: stdout)")
	flag.StringVar(&flags.configFile, "config", "", "Path to configuration file (YAML)")
	flag.StringVar(&flags.dictionaries, "dictionaries", "", "Path to the reference dictionary directory")
	flag.BoolVar(&flags.validate, "validate", false, "Validate us_valid addresses against the postal provider")
	flag.Float64Var(&flags.minConf, "min-confidence", 0, "Only report name results at or above this confidence")
	flag.IntVar(&flags.workers, "workers", 0, "Number of parallel workers")
	flag.BoolVar(&flags.verbose, "verbose", false, "Display detailed information for each record")
	flag.BoolVar(&flags.debug, "debug", false, "Enable debug logging of per-record operations")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.status, "status", false, "Show service availability and exit")
	flag.BoolVar(&flags.showVersion, "version", false, "Show version information and exit")
	flag.BoolVar(&flags.showHelp, "help", false, "Show help")
	flag.Parse()

	if flags.showVersion {
		fmt.Println(version.Info())
		return
	}
	if flags.showHelp {
		help.NewSystem(flags.noColor).ShowGeneralHelp()
		return
	}

	os.Exit(run(flags))
}

func run(flags *cliFlags) int {
	cfg := config.LoadConfigOrDefault(flags.configFile)

	format := cfg.Defaults.Format
	if isFlagSet("format") && flags.format != "" {
		format = flags.format
	}
	workers := cfg.Defaults.Workers
	if isFlagSet("workers") && flags.workers > 0 {
		workers = flags.workers
	}
	verbose := cfg.Defaults.Verbose || flags.verbose
	debug := cfg.Defaults.Debug || flags.debug

	// Color output defaults off when stdout is not a terminal or when
	// writing to a file.
	noColor := cfg.Defaults.NoColor || flags.noColor ||
		flags.output != "" || !term.IsTerminal(int(os.Stdout.Fd()))

	dictPath := cfg.Dictionaries.Path
	if isFlagSet("dictionaries") {
		dictPath = flags.dictionaries
	}

	observerLevel := observability.LevelOff
	if debug {
		observerLevel = observability.LevelDebug
	}
	observer := observability.NewStandardObserver(observerLevel, os.Stderr)

	tables, err := lookup.Load(dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dictionaries: %v\n", err)
		return 1
	}
	if tables.Degraded() && verbose {
		fmt.Fprintln(os.Stderr, "Warning: no dictionaries found, running in heuristic mode")
	}

	retry := resilience.PostalRetryConfig()
	if cfg.Postal.MaxRetries > 0 {
		retry.MaxRetries = cfg.Postal.MaxRetries
	}
	client := postal.NewClient(postal.Config{
		AuthURL:       cfg.Postal.AuthURL,
		ValidateURL:   cfg.Postal.ValidateURL,
		RatePerSecond: cfg.Postal.RatePerSecond,
		Burst:         cfg.Postal.Burst,
		Timeout:       time.Duration(cfg.Postal.TimeoutSeconds) * time.Second,
		Retry:         retry,
	}, config.LoadCredentials(), observer)

	processor := batch.NewProcessor(workers, tables, client, observer)
	options := formatters.FormatterOptions{Verbose: verbose, NoColor: noColor}

	if flags.status {
		status := processor.Status()
		return render(format, formatters.Report{Status: &status}, options, flags.output)
	}

	if flags.input == "" {
		fmt.Fprintln(os.Stderr, "Error: --input is required")
		fmt.Fprintln(os.Stderr, "Run with --help for usage")
		return 1
	}

	source, err := batchio.Open(flags.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer source.Close()

	ctx := context.Background()
	report := formatters.Report{}

	switch flags.recordType {
	case "names":
		records, err := batchio.ToNameRecords(source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			return 1
		}
		report.Names = processor.ProcessNames(ctx, records)
		if flags.minConf > 0 {
			filterByConfidence(report.Names, flags.minConf)
		}
	case "addresses":
		records, err := batchio.ToAddressRecords(source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			return 1
		}
		if flags.validate && !client.Configured() {
			fmt.Fprintln(os.Stderr, "Warning: postal credentials not configured, skipping provider validation")
		}
		report.Addresses = processor.ProcessAddresses(ctx, records, flags.validate)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown record type %q (expected names or addresses)\n", flags.recordType)
		return 1
	}

	return render(format, report, options, flags.output)
}

// render formats the report and writes it to the output path or stdout.
func render(format string, report formatters.Report, options formatters.FormatterOptions, outputPath string) int {
	content, err := formatters.Export(format, report, options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if outputPath == "" {
		fmt.Print(content)
		if content != "" && content[len(content)-1] != '\n' {
			fmt.Println()
		}
		return 0
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		return 1
	}
	return 0
}

// filterByConfidence drops name results below the threshold from the report.
// The summary keeps the full-batch counts; the filter is display-only.
func filterByConfidence(report *batch.NameReport, min float64) {
	kept := report.Resolutions[:0]
	for _, res := range report.Resolutions {
		if res.Confidence >= min {
			kept = append(kept, res)
		}
	}
	report.Resolutions = kept
}

// isFlagSet reports whether the named flag was set on the command line.
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
