// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"fmt"
	"strings"

	"datacleanse/internal/formatters"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(report formatters.Report, options formatters.FormatterOptions) (string, error) {
	var sections []string
	if report.Names != nil {
		sections = append(sections, f.formatNames(report))
	}
	if report.Addresses != nil {
		sections = append(sections, f.formatAddresses(report))
	}
	return strings.Join(sections, "\n\n"), nil
}

func (f *Formatter) formatNames(report formatters.Report) string {
	headers := []string{
		"Row", "UniqueID", "Original Name", "Prefix", "First Name", "Middle Name",
		"Last Name", "Suffix", "Party Type", "Gender", "Status", "Confidence %", "Method",
	}
	csvRows := []string{strings.Join(headers, ",")}

	for i, res := range report.Names.Resolutions {
		row := []string{
			fmt.Sprintf("%d", i+1),
			f.escapeCSVField(res.ID),
			f.escapeCSVField(res.FullName),
			f.escapeCSVField(res.Parsed.Prefix),
			f.escapeCSVField(res.Parsed.FirstName),
			f.escapeCSVField(res.Parsed.MiddleName),
			f.escapeCSVField(res.Parsed.LastName),
			f.escapeCSVField(res.Parsed.Suffix),
			f.escapeCSVField(res.PartyType),
			f.escapeCSVField(res.Gender),
			f.escapeCSVField(res.Status),
			fmt.Sprintf("%.1f", res.Confidence),
			f.escapeCSVField(string(res.Method)),
		}
		csvRows = append(csvRows, strings.Join(row, ","))
	}
	return strings.Join(csvRows, "\n")
}

func (f *Formatter) formatAddresses(report formatters.Report) string {
	headers := []string{
		"Row", "UniqueID", "Category", "State", "Complete Address", "Issues",
		"Deliverable", "Standardized Address", "Result %",
	}
	csvRows := []string{strings.Join(headers, ",")}

	for i, out := range report.Addresses.Outcomes {
		cat := out.Categorization

		deliverable, standardized, percentage := "", "", ""
		if out.Validation != nil {
			deliverable = fmt.Sprintf("%t", out.Validation.Deliverable)
			std := out.Validation.Standardized
			standardized = strings.TrimSpace(fmt.Sprintf("%s, %s, %s %s",
				std.StreetAddress, std.City, std.State, std.Zip))
			percentage = fmt.Sprintf("%.0f", out.Validation.ResultPercentage)
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			f.escapeCSVField(cat.ID),
			f.escapeCSVField(string(cat.Category)),
			f.escapeCSVField(cat.NormalizedState),
			f.escapeCSVField(cat.CompleteAddress),
			f.escapeCSVField(strings.Join(cat.Issues, "; ")),
			deliverable,
			f.escapeCSVField(standardized),
			percentage,
		}
		csvRows = append(csvRows, strings.Join(row, ","))
	}
	return strings.Join(csvRows, "\n")
}

// escapeCSVField properly escapes a field for CSV format and prevents CSV injection
func (f *Formatter) escapeCSVField(field string) string {
	// Prevent CSV injection by sanitizing formula characters
	field = f.sanitizeFormulaInjection(field)

	// If field contains comma, quote, or newline, wrap in quotes and escape internal quotes
	if strings.Contains(field, ",") || strings.Contains(field, "\"") || strings.Contains(field, "\n") || strings.Contains(field, "\r") {
		escaped := strings.ReplaceAll(field, "\"", "\"\"")
		return fmt.Sprintf("\"%s\"", escaped)
	}
	return field
}

// sanitizeFormulaInjection prevents CSV injection attacks by sanitizing formula characters
func (f *Formatter) sanitizeFormulaInjection(field string) string {
	if len(field) == 0 {
		return field
	}

	// Fields starting with formula characters are dangerous in spreadsheets
	firstChar := field[0]
	if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' {
		return "'" + field
	}

	return field
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
