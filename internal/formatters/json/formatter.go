// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"datacleanse/internal/formatters"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// payload is the envelope written to output. Only the sections present in
// the report are emitted.
type payload struct {
	Status    interface{} `json:"service_status,omitempty"`
	Names     interface{} `json:"names,omitempty"`
	Addresses interface{} `json:"addresses,omitempty"`
}

func (f *Formatter) Format(report formatters.Report, options formatters.FormatterOptions) (string, error) {
	out := payload{}
	if report.Status != nil {
		out.Status = report.Status
	}
	if report.Names != nil {
		out.Names = report.Names
	}
	if report.Addresses != nil {
		out.Addresses = report.Addresses
	}

	jsonData, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("formatting JSON: %w", err)
	}
	return string(jsonData), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
