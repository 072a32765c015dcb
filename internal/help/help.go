// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
)

// System renders CLI help output.
type System struct {
	noColor bool
	colors  map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	// Disable colors if requested
	if noColor {
		color.NoColor = true
	}

	return &System{
		noColor: noColor,
		colors: map[string]*color.Color{
			"title":   color.New(color.FgWhite, color.Bold),
			"header":  color.New(color.FgBlue, color.Bold),
			"example": color.New(color.FgMagenta),
		},
	}
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("Datacleanse - Name and Address Validation Tool")
	fmt.Println("==============================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  datacleanse --input <path-to-file> --type <names|addresses> [options]")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --input\t<path>\tPath to the input file, CSV or XLSX (required)")
	fmt.Fprintln(w, "  --type\t<kind>\tRecord type in the input: names or addresses (default: names)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --dictionaries\t<path>\tPath to the reference dictionary directory")
	fmt.Fprintln(w, "  --validate\t\tValidate us_valid addresses against the postal provider (requires credentials)")
	fmt.Fprintln(w, "  --min-confidence\t<n>\tOnly report name results at or above this confidence")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json, csv (default: text)")
	fmt.Fprintln(w, "  --output\t<path>\tPath to output file (if not specified, output to stdout)")
	fmt.Fprintln(w, "  --workers\t<n>\tNumber of parallel workers (default: 4)")
	fmt.Fprintln(w, "  --verbose\t\tDisplay detailed information for each record")
	fmt.Fprintln(w, "  --debug\t\tEnable debug logging of per-record operations")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --status\t\tShow service availability and exit")
	fmt.Fprintln(w, "  --version\t\tShow version information and exit")
	fmt.Fprintln(w, "  --help\t\tShow this help")
	w.Flush()
	fmt.Println()

	h.colors["header"].Println("ENVIRONMENT:")
	fmt.Println("  USPS_CLIENT_ID, USPS_CLIENT_SECRET  Postal provider credentials (.env supported)")
	fmt.Println()

	h.colors["header"].Println("EXAMPLES:")
	h.colors["example"].Println("  datacleanse --input customers.csv --type names")
	h.colors["example"].Println("  datacleanse --input addresses.xlsx --type addresses --validate --format json")
	h.colors["example"].Println("  datacleanse --input names.csv --format csv --output resolved.csv")
}
