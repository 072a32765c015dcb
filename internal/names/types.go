// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

// MaxConfidence is the confidence ceiling for every resolution. The score is
// never exactly 100 to signal that results are probabilistic, not certain.
const MaxConfidence = 99.9995

// Method identifies how a resolution (or one of its sub-decisions) was made.
type Method string

const (
	// MethodDeterministic means the result is backed by dictionary hits on
	// the majority of sub-decisions.
	MethodDeterministic Method = "deterministic"
	// MethodHybrid means dictionary and heuristic signals tied.
	MethodHybrid Method = "hybrid"
	// MethodAIFallback means no dictionary signal outweighed the heuristics.
	MethodAIFallback Method = "ai_fallback"

	// MethodExplicitOrg and MethodExplicitIndividual record caller hints.
	MethodExplicitOrg        Method = "explicit_org"
	MethodExplicitIndividual Method = "explicit_individual"

	// Party-type classifier methods.
	MethodDeterministicSuffix       Method = "deterministic_suffix"
	MethodDeterministicBusinessWord Method = "deterministic_business_word"
	MethodDeterministicIndividual   Method = "deterministic_individual"
	MethodAIPatternMatching         Method = "ai_pattern_matching"

	// MethodNoParse means parsing was skipped by request.
	MethodNoParse Method = "no_parse"
	// MethodError means per-record processing failed.
	MethodError Method = "error"
)

// Party type codes.
const (
	PartyIndividual   = "I"
	PartyOrganization = "O"
)

// Parse indicator values on input records.
const (
	ParseRequested = "Y"
	ParseSkipped   = "N"
)

// Record is one raw name input. FullName is the only required field.
type Record struct {
	ID         string `json:"uniqueid"`
	FullName   string `json:"name"`
	GenderHint string `json:"gender,omitempty"`
	PartyHint  string `json:"party_type,omitempty"`
	ParseInd   string `json:"parse_ind,omitempty"`
}

// ParsedName holds the components extracted from a full-name string.
// All fields are optional; it is recomputed per record, never mutated.
type ParsedName struct {
	Prefix     string `json:"prefix,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Suffix     string `json:"suffix,omitempty"`
}

// Status values on a resolution.
const (
	StatusParsed       = "Parsed"
	StatusNotParsed    = "Not Parsed"
	StatusOrganization = "Organization"
	StatusWarning      = "Warning"
	StatusError        = "Error"
)

// Status labels describing the confidence band.
const (
	LabelDictionaryValidated = "Dictionary Validated"
	LabelProbablyValid       = "Probably Valid"
	LabelPossiblyValid       = "Possibly Valid"
	LabelLowConfidence       = "Low Confidence"
)

// Resolution is the full outcome for one name record. Produced fresh per
// call; records share no state beyond the read-only lookup tables.
type Resolution struct {
	ID                string     `json:"uniqueid"`
	FullName          string     `json:"name"`
	PartyType         string     `json:"party_type"`
	Parsed            ParsedName `json:"parsed_components"`
	StandardizedFirst string     `json:"standardized_first_name,omitempty"`
	Gender            string     `json:"gender,omitempty"`
	Confidence        float64    `json:"confidence_score"`
	Method            Method     `json:"validation_method"`
	Status            string     `json:"parse_status"`
	StatusLabel       string     `json:"status_label"`
	Message           string     `json:"message,omitempty"`
	DictionaryUsed    bool       `json:"dictionary_lookup_used"`
	HeuristicUsed     bool       `json:"ai_fallback_used"`
}
