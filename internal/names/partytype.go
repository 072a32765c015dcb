// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

import (
	"regexp"
	"strings"

	"datacleanse/internal/lookup"
)

// Regexes used by the fallback heuristic. Compiled once.
var (
	orgLegalFormRe = regexp.MustCompile(`\b(llc|inc|corp|ltd)\b`)
	personTitleRe  = regexp.MustCompile(`^(mr|mrs|ms|miss|dr|prof)\.?\s+[a-z]+\s+[a-z]+$`)
	personSuffixRe = regexp.MustCompile(`\b[a-z]+\s+(jr|sr|ii|iii)\.?$`)
)

// PartyDecision is the outcome of individual-vs-organization classification.
type PartyDecision struct {
	IsOrganization bool
	Confidence     float64 // 0..99
	Method         Method
}

// PartyClassifier decides whether a name belongs to an individual or an
// organization. Rule order is fixed: explicit hints, then dictionary rules
// (when tables are loaded), then the pattern heuristic. The first satisfied
// rule wins; scores are never combined across tiers.
type PartyClassifier struct {
	tables *lookup.Tables
}

// NewPartyClassifier creates a classifier backed by the given tables.
func NewPartyClassifier(tables *lookup.Tables) *PartyClassifier {
	return &PartyClassifier{tables: tables}
}

// Classify applies the tiered rules to fullName with an optional explicit
// hint ("I", "O" or empty).
func (c *PartyClassifier) Classify(fullName, hint string) PartyDecision {
	switch strings.ToUpper(strings.TrimSpace(hint)) {
	case PartyOrganization:
		return PartyDecision{IsOrganization: true, Confidence: 99, Method: MethodExplicitOrg}
	case PartyIndividual:
		return PartyDecision{IsOrganization: false, Confidence: 99, Method: MethodExplicitIndividual}
	}

	lower := strings.ToLower(strings.TrimSpace(fullName))

	// Company suffixes are checked as substrings, matching observed
	// behavior; short suffixes can in principle hit inside ordinary words.
	if c.tables.HasCompanySuffixes() {
		for _, suffix := range c.tables.CompanySuffixes() {
			if strings.Contains(lower, suffix) {
				return PartyDecision{IsOrganization: true, Confidence: 95, Method: MethodDeterministicSuffix}
			}
		}
	}

	tokens := strings.Fields(lower)

	if c.tables.HasBusinessWords() {
		for _, token := range tokens {
			if c.tables.IsBusinessWord(strings.Trim(token, ".,")) {
				return PartyDecision{IsOrganization: true, Confidence: 92, Method: MethodDeterministicBusinessWord}
			}
		}
	}

	if c.tables.HasFirstNames() && c.tables.HasLastNames() && len(tokens) >= 2 {
		first := strings.Trim(tokens[0], ".,")
		last := strings.Trim(tokens[len(tokens)-1], ".,")
		if c.tables.IsFirstName(first) && c.tables.IsLastName(last) {
			return PartyDecision{IsOrganization: false, Confidence: 94, Method: MethodDeterministicIndividual}
		}
	}

	return c.patternHeuristic(lower, tokens)
}

// patternHeuristic scores organization-vs-individual signals when no
// dictionary rule fired. Organization iff score > 10.
func (c *PartyClassifier) patternHeuristic(lower string, tokens []string) PartyDecision {
	score := 0

	for _, indicator := range orgIndicators {
		if strings.Contains(lower, indicator) {
			score += 10
		}
	}
	if orgLegalFormRe.MatchString(lower) {
		score += 15
	}
	if len(tokens) > 3 {
		score += 5
	}
	if personTitleRe.MatchString(lower) {
		score -= 8
	}
	if personSuffixRe.MatchString(lower) {
		score -= 8
	}

	abs := score
	if abs < 0 {
		abs = -abs
	}
	confidence := 50 + 2*float64(abs)
	if confidence > 80 {
		confidence = 80
	}

	return PartyDecision{
		IsOrganization: score > 10,
		Confidence:     confidence,
		Method:         MethodAIPatternMatching,
	}
}
