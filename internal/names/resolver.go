// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

import (
	"fmt"
	"strings"

	"datacleanse/internal/lookup"
	"datacleanse/internal/observability"
)

// Resolver sequences parsing, party-type classification, standardization,
// gender prediction and confidence scoring for one record at a time.
// Resolve never returns an error and never panics outward: any failure is
// caught at this boundary and mapped to an Error-status resolution so one
// bad record cannot abort its siblings in a batch.
type Resolver struct {
	tables       *lookup.Tables
	parser       *Parser
	party        *PartyClassifier
	gender       *GenderPredictor
	standardizer *Standardizer
	observer     *observability.StandardObserver
}

// NewResolver creates a resolver backed by the given lookup tables. A nil
// tables value runs the whole pipeline in pure-heuristic mode.
func NewResolver(tables *lookup.Tables, observer *observability.StandardObserver) *Resolver {
	return &Resolver{
		tables:       tables,
		parser:       NewParser(tables),
		party:        NewPartyClassifier(tables),
		gender:       NewGenderPredictor(tables),
		standardizer: NewStandardizer(tables),
		observer:     observer,
	}
}

// Degraded reports whether the resolver is running without reference data.
func (r *Resolver) Degraded() bool { return r.tables.Degraded() }

// Resolve produces the full resolution for one record.
func (r *Resolver) Resolve(rec Record) (res Resolution) {
	defer func() {
		if p := recover(); p != nil {
			res = Resolution{
				ID:          rec.ID,
				FullName:    rec.FullName,
				Confidence:  0.0,
				Method:      MethodError,
				Status:      StatusError,
				StatusLabel: LabelLowConfidence,
				Message:     fmt.Sprintf("record processing failed: %v", p),
			}
		}
	}()

	var finish func(bool, map[string]interface{})
	if r.observer != nil {
		finish = r.observer.StartTiming("names", "resolve", rec.ID)
	}

	res = r.resolve(rec)

	if finish != nil {
		finish(res.Method != MethodError, map[string]interface{}{
			"method":     string(res.Method),
			"party_type": res.PartyType,
			"confidence": res.Confidence,
		})
	}
	return res
}

func (r *Resolver) resolve(rec Record) Resolution {
	fullName := strings.TrimSpace(rec.FullName)
	if fullName == "" {
		// Input defect, not an exception: lowest confidence band.
		return Resolution{
			ID:          rec.ID,
			FullName:    rec.FullName,
			Confidence:  0.0,
			Method:      MethodAIFallback,
			Status:      StatusWarning,
			StatusLabel: LabelLowConfidence,
			Message:     "full name is required",
		}
	}

	decision := r.party.Classify(fullName, rec.PartyHint)
	if decision.IsOrganization {
		return r.organizationResolution(rec, fullName, decision)
	}

	if strings.EqualFold(strings.TrimSpace(rec.ParseInd), ParseSkipped) {
		return Resolution{
			ID:          rec.ID,
			FullName:    fullName,
			PartyType:   PartyIndividual,
			Confidence:  80.0,
			Method:      MethodNoParse,
			Status:      StatusNotParsed,
			StatusLabel: LabelPossiblyValid,
		}
	}

	parsed := r.parser.Parse(fullName)

	gender := strings.ToUpper(strings.TrimSpace(rec.GenderHint))
	genderSource := GenderSourceNone
	if gender == "" && parsed.FirstName != "" {
		gender, genderSource = r.gender.Predict(parsed.FirstName)
	}

	confidence, method, detCount, aiCount := r.scoreResolution(parsed, genderSource)
	status, label := statusForConfidence(confidence, method)

	res := Resolution{
		ID:                rec.ID,
		FullName:          fullName,
		PartyType:         PartyIndividual,
		Parsed:            parsed,
		StandardizedFirst: r.standardizer.Standardize(parsed.FirstName),
		Gender:            gender,
		Confidence:        confidence,
		Method:            method,
		Status:            status,
		StatusLabel:       label,
		DictionaryUsed:    detCount > 0,
		HeuristicUsed:     aiCount > 0,
	}
	if parsed.FirstName == "" && parsed.LastName == "" {
		res.Message = "could not parse name into components"
	}
	return res
}

// organizationResolution short-circuits with the classifier's confidence
// band (92-99 for dictionary rules, 99 for explicit hints) and empty name
// fields; the individual confidence resolver is bypassed entirely.
func (r *Resolver) organizationResolution(rec Record, fullName string, decision PartyDecision) Resolution {
	label := LabelProbablyValid
	dictionaryUsed := false
	switch decision.Method {
	case MethodExplicitOrg, MethodDeterministicSuffix, MethodDeterministicBusinessWord:
		label = LabelDictionaryValidated
		dictionaryUsed = decision.Method != MethodExplicitOrg
	}
	if decision.Confidence < 70 {
		label = LabelLowConfidence
	}
	return Resolution{
		ID:             rec.ID,
		FullName:       fullName,
		PartyType:      PartyOrganization,
		Confidence:     clampConfidence(decision.Confidence),
		Method:         decision.Method,
		Status:         StatusOrganization,
		StatusLabel:    label,
		DictionaryUsed: dictionaryUsed,
		HeuristicUsed:  decision.Method == MethodAIPatternMatching,
	}
}

// scoreResolution implements the trust-tier vote. Each sub-decision counts
// toward the dictionary tier or the heuristic tier; the final method must
// reflect the lowest-trust signal that contributed, so a heuristic-only
// match can never masquerade as dictionary-grade confidence.
func (r *Resolver) scoreResolution(parsed ParsedName, genderSource GenderSource) (float64, Method, int, int) {
	confidence := 50.0
	detCount := 0
	aiCount := 0

	if parsed.FirstName != "" {
		if r.tables.IsFirstName(parsed.FirstName) {
			detCount++
			confidence += 20
		} else {
			aiCount++
			confidence += 10
		}
	}
	if parsed.LastName != "" {
		if r.tables.IsLastName(parsed.LastName) {
			detCount++
			confidence += 20
		} else {
			aiCount++
			confidence += 10
		}
	}
	switch genderSource {
	case GenderSourceDictionary:
		detCount++
		confidence += 10
	case GenderSourceHeuristic:
		aiCount++
		confidence += 5
	}

	var method Method
	var ceiling float64
	switch {
	case detCount > aiCount:
		method, ceiling = MethodDeterministic, 99.0
	case detCount == aiCount && detCount > 0:
		method, ceiling = MethodHybrid, 90.0
	default:
		method, ceiling = MethodAIFallback, 80.0
	}
	if confidence > ceiling {
		confidence = ceiling
	}
	return clampConfidence(confidence), method, detCount, aiCount
}

// statusForConfidence maps a confidence score to the status and band label.
func statusForConfidence(confidence float64, method Method) (string, string) {
	switch {
	case confidence >= 90:
		if method == MethodDeterministic {
			return StatusParsed, LabelDictionaryValidated
		}
		return StatusParsed, LabelProbablyValid
	case confidence >= 70:
		return StatusParsed, LabelPossiblyValid
	default:
		return StatusWarning, LabelLowConfidence
	}
}

// clampConfidence bounds a score to [0, MaxConfidence].
func clampConfidence(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > MaxConfidence {
		return MaxConfidence
	}
	return confidence
}
