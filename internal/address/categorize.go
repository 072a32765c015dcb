// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"fmt"
	"regexp"
	"strings"

	"datacleanse/internal/observability"
)

var cityCharsRe = regexp.MustCompile(`^[A-Za-z\s.\-']+$`)

// Categorizer classifies raw address records into the 3-bucket scheme.
// Categorization is pure and deterministic: it never performs I/O, so it can
// gate the expensive provider calls safely.
type Categorizer struct {
	observer *observability.StandardObserver
}

// NewCategorizer creates a categorizer.
func NewCategorizer(observer *observability.StandardObserver) *Categorizer {
	return &Categorizer{observer: observer}
}

// Categorize runs the decision tree over one record:
// country code, state normalization, required fields, postal-code pattern
// classification, then the strict domestic gate. Country and ZIP evidence
// outrank state validity for the international bucket.
func (c *Categorizer) Categorize(rec Record) Categorization {
	result := Categorization{ID: rec.ID}

	state := NormalizeState(rec.State)
	result.NormalizedState = state.Code
	result.StateValid = state.Valid
	result.StateNormalizationApplied = state.Applied
	result.CompleteAddress = completeAddress(rec, state)

	country := strings.ToUpper(strings.TrimSpace(rec.Country))
	if country != "" && country != "US" && country != "USA" {
		result.Category = CategoryInternational
		result.Issues = append(result.Issues, fmt.Sprintf("non-US country code: %s", country))
		c.log(rec.ID, result)
		return result
	}

	var missing []string
	if strings.TrimSpace(rec.Line1) == "" {
		missing = append(missing, "line1")
	}
	if strings.TrimSpace(rec.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(rec.State) == "" {
		missing = append(missing, "state")
	}
	if strings.TrimSpace(rec.Zip) == "" {
		missing = append(missing, "zip")
	}
	if len(missing) > 0 {
		result.Category = CategoryInvalid
		for _, field := range missing {
			result.Issues = append(result.Issues, fmt.Sprintf("missing required field: %s", field))
		}
		c.log(rec.ID, result)
		return result
	}

	result.ZipClass = ClassifyZip(rec.Zip)
	switch result.ZipClass {
	case ZipInternational:
		result.Category = CategoryInternational
		result.Issues = append(result.Issues, "international postal code format")
		c.log(rec.ID, result)
		return result
	case ZipInvalid:
		result.Category = CategoryInvalid
		result.Issues = append(result.Issues, "unrecognized postal code format")
		c.log(rec.ID, result)
		return result
	}

	// Domestic ZIP: every strict check must pass, and every failure is
	// reported, not just the first.
	var issues []string
	if !state.Valid {
		issues = append(issues, fmt.Sprintf("invalid state: %s", strings.TrimSpace(rec.State)))
	}
	if !strictUSZip.MatchString(strings.TrimSpace(rec.Zip)) {
		issues = append(issues, "ZIP must be 5 digits or ZIP+4")
	}
	if len(strings.TrimSpace(rec.Line1)) < 3 {
		issues = append(issues, "street address too short")
	}
	city := strings.TrimSpace(rec.City)
	if len(city) < 2 {
		issues = append(issues, "city too short")
	} else if !cityCharsRe.MatchString(city) {
		issues = append(issues, "city contains invalid characters")
	}

	if len(issues) > 0 {
		result.Category = CategoryInvalid
		result.Issues = issues
	} else {
		result.Category = CategoryUSValid
	}
	c.log(rec.ID, result)
	return result
}

// completeAddress renders the pipe-delimited display form, using the
// normalized state code when it resolved.
func completeAddress(rec Record, state NormalizedState) string {
	parts := []string{strings.TrimSpace(rec.Line1)}
	if line2 := strings.TrimSpace(rec.Line2); line2 != "" {
		parts = append(parts, line2)
	}
	parts = append(parts, fmt.Sprintf("%s, %s %s",
		strings.TrimSpace(rec.City), state.Code, strings.TrimSpace(rec.Zip)))
	return strings.Join(parts, " | ")
}

func (c *Categorizer) log(recordID string, result Categorization) {
	if c == nil || c.observer == nil {
		return
	}
	c.observer.LogOperation(observability.OperationData{
		Component: "address",
		Operation: "categorize",
		RecordID:  recordID,
		Success:   result.Category != CategoryInvalid,
		Metadata: map[string]interface{}{
			"category":    string(result.Category),
			"state":       result.NormalizedState,
			"issue_count": len(result.Issues),
		},
	})
}
