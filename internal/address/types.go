// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

// Category is the 3-bucket classification for an address record.
type Category string

const (
	// CategoryUSValid marks addresses eligible for postal validation.
	CategoryUSValid Category = "us_valid"
	// CategoryInternational marks non-US addresses; they are classified
	// but never validated against the postal provider.
	CategoryInternational Category = "international"
	// CategoryInvalid marks addresses that fail structural checks.
	CategoryInvalid Category = "invalid"
)

// ZipClass is the outcome of postal-code pattern classification.
type ZipClass string

const (
	ZipUS            ZipClass = "us"
	ZipInternational ZipClass = "international"
	ZipInvalid       ZipClass = "invalid"
)

// Record is one raw address input. State may be a 2-letter code or a
// free-text state name; normalization happens during categorization.
type Record struct {
	ID      string `json:"uniqueid"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country,omitempty"`
}

// Categorization is the deterministic classification of a Record.
// Re-categorizing the same input always yields the same category.
type Categorization struct {
	ID                        string   `json:"uniqueid"`
	Category                  Category `json:"category"`
	NormalizedState           string   `json:"normalized_state"`
	StateValid                bool     `json:"state_valid"`
	StateNormalizationApplied bool     `json:"state_normalization_applied"`
	ZipClass                  ZipClass `json:"zip_class"`
	Issues                    []string `json:"issues,omitempty"`
	CompleteAddress           string   `json:"complete_address"`
}
