// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"datacleanse/internal/address"
	"datacleanse/internal/batch"
	"datacleanse/internal/formatters"
	"datacleanse/internal/names"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(report formatters.Report, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder

	if report.Status != nil {
		f.appendStatus(&builder, *report.Status)
	}
	if report.Names != nil {
		f.appendNames(&builder, report.Names, options)
	}
	if report.Addresses != nil {
		f.appendAddresses(&builder, report.Addresses, options)
	}

	return builder.String(), nil
}

func (f *Formatter) appendStatus(builder *strings.Builder, status batch.ServiceStatus) {
	builder.WriteString(f.colors["white"].Sprint("Service Status") + "\n")
	builder.WriteString(fmt.Sprintf("  Name validation:    %s\n", f.availability(status.NameValidation)))
	builder.WriteString(fmt.Sprintf("  Address validation: %s\n", f.availability(status.AddressValidation)))
	if status.DictionariesDegraded {
		builder.WriteString(f.colors["yellow"].Sprint("  Dictionaries missing, running in heuristic mode") + "\n")
	}
	builder.WriteString("\n")
}

func (f *Formatter) availability(available bool) string {
	if available {
		return f.colors["green"].Sprint("available")
	}
	return f.colors["red"].Sprint("unavailable")
}

func (f *Formatter) appendNames(builder *strings.Builder, report *batch.NameReport, options formatters.FormatterOptions) {
	builder.WriteString(f.colors["white"].Sprint("Name Results") + "\n")

	for _, res := range report.Resolutions {
		display := strings.TrimSpace(strings.Join([]string{
			res.Parsed.FirstName, res.Parsed.MiddleName, res.Parsed.LastName,
		}, " "))
		display = strings.Join(strings.Fields(display), " ")
		if display == "" {
			display = res.FullName
		}

		builder.WriteString(fmt.Sprintf("  [%s] %-30s %-14s %s %s\n",
			res.ID,
			display,
			res.Status,
			f.confidenceColor(res.Confidence, res.Status).Sprintf("%5.1f%%", res.Confidence),
			res.Method,
		))

		if options.Verbose {
			if res.Parsed.Prefix != "" || res.Parsed.Suffix != "" {
				builder.WriteString(fmt.Sprintf("        prefix=%q suffix=%q\n", res.Parsed.Prefix, res.Parsed.Suffix))
			}
			if res.StandardizedFirst != "" && res.StandardizedFirst != res.Parsed.FirstName {
				builder.WriteString(fmt.Sprintf("        standardized first name: %s\n", res.StandardizedFirst))
			}
			if res.Gender != "" {
				builder.WriteString(fmt.Sprintf("        gender: %s\n", res.Gender))
			}
			if res.Message != "" {
				builder.WriteString(fmt.Sprintf("        note: %s\n", res.Message))
			}
		}
	}

	f.appendSummary(builder, report.Summary)
}

func (f *Formatter) appendAddresses(builder *strings.Builder, report *batch.AddressReport, options formatters.FormatterOptions) {
	builder.WriteString(f.colors["white"].Sprint("Address Results") + "\n")

	for _, out := range report.Outcomes {
		cat := out.Categorization
		builder.WriteString(fmt.Sprintf("  [%s] %-14s %s\n",
			cat.ID,
			f.categoryColor(cat.Category).Sprint(string(cat.Category)),
			cat.CompleteAddress,
		))

		if len(cat.Issues) > 0 {
			for _, issue := range cat.Issues {
				builder.WriteString("        " + f.colors["yellow"].Sprint(issue) + "\n")
			}
		}
		if out.Validation != nil {
			verdict := f.colors["red"].Sprint("not deliverable")
			if out.Validation.Deliverable {
				verdict = f.colors["green"].Sprint("deliverable")
			}
			builder.WriteString(fmt.Sprintf("        provider: %s (%.0f%%)\n", verdict, out.Validation.ResultPercentage))
			if options.Verbose && out.Validation.Standardized.StreetAddress != "" {
				std := out.Validation.Standardized
				builder.WriteString(fmt.Sprintf("        standardized: %s, %s, %s %s\n",
					std.StreetAddress, std.City, std.State, std.Zip))
			}
		}
		if out.ValidationError != "" {
			builder.WriteString("        " + f.colors["red"].Sprint("validation failed: "+out.ValidationError) + "\n")
		}
	}

	f.appendSummary(builder, report.Summary)
}

func (f *Formatter) appendSummary(builder *strings.Builder, summary batch.Summary) {
	builder.WriteString(fmt.Sprintf("\n  Processed %d records in %dms: %d ok, %d errors (%.1f%% success)\n\n",
		summary.Processed, summary.DurationMs, summary.Successful, summary.Errors, summary.SuccessRate))
}

// confidenceColor maps the confidence bands to colors: green for the
// dictionary-validated band, yellow for the middle band, red below it.
// Organizations get their own color since confidence bands mean something
// different there.
func (f *Formatter) confidenceColor(confidence float64, status string) *color.Color {
	if status == names.StatusOrganization {
		return f.colors["cyan"]
	}
	switch {
	case confidence >= 90:
		return f.colors["green"]
	case confidence >= 70:
		return f.colors["yellow"]
	default:
		return f.colors["red"]
	}
}

func (f *Formatter) categoryColor(category address.Category) *color.Color {
	switch category {
	case address.CategoryUSValid:
		return f.colors["green"]
	case address.CategoryInternational:
		return f.colors["cyan"]
	default:
		return f.colors["red"]
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
