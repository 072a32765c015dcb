// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

import (
	"strings"

	"datacleanse/internal/lookup"
)

// GenderSource records which tier produced a gender prediction.
type GenderSource int

const (
	GenderSourceNone GenderSource = iota
	GenderSourceDictionary
	GenderSourceHeuristic
)

// GenderPredictor resolves a first name to "M", "F" or "" (unknown).
// Identical input always yields identical output; there is no randomness
// anywhere in the pipeline.
type GenderPredictor struct {
	tables *lookup.Tables
}

// NewGenderPredictor creates a predictor backed by the given tables.
func NewGenderPredictor(tables *lookup.Tables) *GenderPredictor {
	return &GenderPredictor{tables: tables}
}

// Predict returns the gender for firstName and the tier that decided it.
// Dictionary lookup wins outright; otherwise ending patterns accumulate a
// signed score, the small fixed common-name sets override the score, and a
// near-zero score returns unknown rather than guessing.
func (g *GenderPredictor) Predict(firstName string) (string, GenderSource) {
	name := strings.ToLower(strings.TrimSpace(firstName))
	if name == "" {
		return "", GenderSourceNone
	}

	if gender, ok := g.tables.Gender(name); ok && gender != "" {
		return gender, GenderSourceDictionary
	}

	score := 0
	for _, ending := range feminineEndingsStrong {
		if strings.HasSuffix(name, ending) {
			score -= 3
		}
	}
	for _, ending := range feminineEndingsWeak {
		if strings.HasSuffix(name, ending) {
			score--
		}
	}
	for _, ending := range masculineEndingsStrong {
		if strings.HasSuffix(name, ending) {
			score += 2
		}
	}
	for _, ending := range masculineEndingsWeak {
		if strings.HasSuffix(name, ending) {
			score++
		}
	}

	if commonFemaleNames[name] {
		return "F", GenderSourceHeuristic
	}
	if commonMaleNames[name] {
		return "M", GenderSourceHeuristic
	}

	switch {
	case score <= -2:
		return "F", GenderSourceHeuristic
	case score >= 2:
		return "M", GenderSourceHeuristic
	}
	return "", GenderSourceNone
}
