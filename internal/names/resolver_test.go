// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

import (
	"testing"

	"datacleanse/internal/lookup"
)

// testTables builds the synthetic reference data shared by the resolver
// tests.
func testTables(t *testing.T) *lookup.Tables {
	t.Helper()
	return lookup.Synthetic(lookup.SyntheticData{
		FirstNames:      []string{"william", "mary", "john", "bill", "elizabeth"},
		LastNames:       []string{"smith", "johnson", "windsor"},
		BusinessWords:   []string{"solutions", "consulting", "enterprises"},
		CompanySuffixes: []string{"llc", "inc", "corp"},
		GenderByName:    map[string]string{"william": "M", "mary": "F", "bill": "M"},
		Nicknames:       map[string]string{"bill": "william", "liz": "elizabeth"},
	})
}

func TestResolve_DictionaryValidatedIndividual(t *testing.T) {
	r := NewResolver(testTables(t), nil)

	res := r.Resolve(Record{ID: "1", FullName: "Bill Smith"})

	if res.Status != StatusParsed || res.StatusLabel != LabelDictionaryValidated {
		t.Errorf("expected Parsed / Dictionary Validated, got %s / %s", res.Status, res.StatusLabel)
	}
	if res.Method != MethodDeterministic {
		t.Errorf("expected deterministic method, got %s", res.Method)
	}
	if res.Confidence != 99.0 {
		t.Errorf("expected confidence capped at 99.0, got %v", res.Confidence)
	}
	if res.StandardizedFirst != "William" {
		t.Errorf("expected nickname standardization to William, got %q", res.StandardizedFirst)
	}
	if res.Gender != "M" {
		t.Errorf("expected dictionary gender M, got %q", res.Gender)
	}
	if !res.DictionaryUsed || res.HeuristicUsed {
		t.Errorf("expected dictionary-only flags, got dict=%v heuristic=%v", res.DictionaryUsed, res.HeuristicUsed)
	}
	if res.PartyType != PartyIndividual {
		t.Errorf("expected individual, got %q", res.PartyType)
	}
}

func TestResolve_OrganizationShortCircuit(t *testing.T) {
	r := NewResolver(testTables(t), nil)

	res := r.Resolve(Record{ID: "2", FullName: "TechData Systems Inc"})

	if res.Status != StatusOrganization {
		t.Fatalf("expected Organization status, got %s", res.Status)
	}
	if res.Method != MethodDeterministicSuffix {
		t.Errorf("expected deterministic_suffix, got %s", res.Method)
	}
	if res.Confidence != 95.0 {
		t.Errorf("expected confidence 95.0, got %v", res.Confidence)
	}
	if res.PartyType != PartyOrganization {
		t.Errorf("expected party type O, got %q", res.PartyType)
	}
	// Organizations bypass name parsing entirely.
	if res.Parsed.FirstName != "" || res.Parsed.LastName != "" {
		t.Errorf("expected empty parsed components, got %+v", res.Parsed)
	}
}

func TestResolve_ExplicitHints(t *testing.T) {
	r := NewResolver(testTables(t), nil)

	org := r.Resolve(Record{ID: "3", FullName: "Smith", PartyHint: "O"})
	if org.Method != MethodExplicitOrg || org.Confidence != 99.0 || org.Status != StatusOrganization {
		t.Errorf("explicit org hint: got method=%s conf=%v status=%s", org.Method, org.Confidence, org.Status)
	}

	ind := r.Resolve(Record{ID: "4", FullName: "Acme Inc", PartyHint: "I"})
	if ind.PartyType != PartyIndividual {
		t.Errorf("explicit individual hint must override suffix rule, got %q", ind.PartyType)
	}
}

func TestResolve_ParseSkipped(t *testing.T) {
	r := NewResolver(testTables(t), nil)

	res := r.Resolve(Record{ID: "5", FullName: "John Smith", ParseInd: "N"})

	if res.Method != MethodNoParse || res.Confidence != 80.0 {
		t.Errorf("expected no_parse at 80.0, got %s at %v", res.Method, res.Confidence)
	}
	if res.Status != StatusNotParsed || res.StatusLabel != LabelPossiblyValid {
		t.Errorf("expected Not Parsed / Possibly Valid, got %s / %s", res.Status, res.StatusLabel)
	}
	if res.Parsed.FirstName != "" {
		t.Errorf("expected no parsing, got %+v", res.Parsed)
	}
}

func TestResolve_EmptyParseIndStillParses(t *testing.T) {
	r := NewResolver(testTables(t), nil)

	res := r.Resolve(Record{ID: "6", FullName: "John Smith"})
	if res.Parsed.FirstName != "John" || res.Parsed.LastName != "Smith" {
		t.Errorf("empty parse indicator must parse, got %+v", res.Parsed)
	}
}

func TestResolve_EmptyName(t *testing.T) {
	r := NewResolver(testTables(t), nil)

	res := r.Resolve(Record{ID: "7", FullName: "   "})

	if res.Status != StatusWarning || res.StatusLabel != LabelLowConfidence {
		t.Errorf("expected Warning / Low Confidence, got %s / %s", res.Status, res.StatusLabel)
	}
	if res.Confidence != 0.0 || res.Method != MethodAIFallback {
		t.Errorf("expected 0.0 / ai_fallback, got %v / %s", res.Confidence, res.Method)
	}
	if res.Message == "" {
		t.Error("expected a message explaining the defect")
	}
}

func TestResolve_HybridMethod(t *testing.T) {
	r := NewResolver(testTables(t), nil)

	// First name unknown (heuristic), last name in dictionary, no gender
	// signal: one vote per tier means hybrid.
	res := r.Resolve(Record{ID: "8", FullName: "Zorblax Smith"})

	if res.Method != MethodHybrid {
		t.Fatalf("expected hybrid, got %s", res.Method)
	}
	if res.Confidence != 80.0 {
		t.Errorf("expected 50+10+20=80, got %v", res.Confidence)
	}
	if !res.DictionaryUsed || !res.HeuristicUsed {
		t.Errorf("hybrid must set both usage flags, got dict=%v heuristic=%v", res.DictionaryUsed, res.HeuristicUsed)
	}
}

func TestResolve_FallbackNicknameStandardization(t *testing.T) {
	// "bill" misses the first-name dictionary but the surname hits, so the
	// method degrades to hybrid while the fixed nickname table still
	// standardizes the first name.
	tables := lookup.Synthetic(lookup.SyntheticData{
		FirstNames: []string{"william", "mary"},
		LastNames:  []string{"smith"},
	})
	r := NewResolver(tables, nil)

	res := r.Resolve(Record{ID: "12", FullName: "Bill Smith"})

	if res.Method == MethodDeterministic {
		t.Errorf("first-name dictionary miss must not yield deterministic, got %s", res.Method)
	}
	if res.Parsed.FirstName != "Bill" {
		t.Errorf("parsed first = %q, want Bill", res.Parsed.FirstName)
	}
	if res.StandardizedFirst != "William" {
		t.Errorf("standardized first = %q, want William", res.StandardizedFirst)
	}
}

func TestResolve_HeuristicFallbackWithoutTables(t *testing.T) {
	r := NewResolver(nil, nil)
	if !r.Degraded() {
		t.Fatal("nil tables should report degraded mode")
	}

	res := r.Resolve(Record{ID: "9", FullName: "Tyler Anderson"})

	if res.Method != MethodAIFallback {
		t.Errorf("expected ai_fallback in degraded mode, got %s", res.Method)
	}
	if res.Confidence > 80.0 {
		t.Errorf("ai_fallback must cap at 80.0, got %v", res.Confidence)
	}
	if res.DictionaryUsed {
		t.Error("no dictionary available, flag must be false")
	}
}

func TestResolve_GenderHintSkipsPrediction(t *testing.T) {
	r := NewResolver(testTables(t), nil)

	res := r.Resolve(Record{ID: "10", FullName: "Zorblax Qwerty", GenderHint: "F"})

	if res.Gender != "F" {
		t.Errorf("expected hint to pass through, got %q", res.Gender)
	}
	// With the hint present the gender tier contributes no vote:
	// two unknown names at +10 each.
	if res.Confidence != 70.0 {
		t.Errorf("expected 50+10+10=70, got %v", res.Confidence)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	r := NewResolver(testTables(t), nil)
	rec := Record{ID: "11", FullName: "Mary Johnson"}

	first := r.Resolve(rec)
	second := r.Resolve(rec)

	if first != second {
		t.Errorf("identical input must yield identical output:\n%+v\n%+v", first, second)
	}
}

func TestResolve_ConfidenceBounds(t *testing.T) {
	r := NewResolver(testTables(t), nil)

	inputs := []Record{
		{ID: "a", FullName: "Bill Smith"},
		{ID: "b", FullName: "Mary Johnson"},
		{ID: "c", FullName: "Acme Solutions LLC"},
		{ID: "d", FullName: "X"},
		{ID: "e", FullName: ""},
		{ID: "f", FullName: "Dr. William Windsor Jr."},
	}

	for _, rec := range inputs {
		res := r.Resolve(rec)
		if res.Confidence < 0 || res.Confidence > MaxConfidence {
			t.Errorf("Resolve(%q): confidence %v out of [0, %v]", rec.FullName, res.Confidence, MaxConfidence)
		}
	}
}

func TestStatusForConfidence(t *testing.T) {
	tests := []struct {
		confidence float64
		method     Method
		status     string
		label      string
	}{
		{95, MethodDeterministic, StatusParsed, LabelDictionaryValidated},
		{95, MethodHybrid, StatusParsed, LabelProbablyValid},
		{85, MethodHybrid, StatusParsed, LabelPossiblyValid},
		{70, MethodAIFallback, StatusParsed, LabelPossiblyValid},
		{69.9, MethodAIFallback, StatusWarning, LabelLowConfidence},
		{50, MethodAIFallback, StatusWarning, LabelLowConfidence},
	}

	for _, tt := range tests {
		status, label := statusForConfidence(tt.confidence, tt.method)
		if status != tt.status || label != tt.label {
			t.Errorf("statusForConfidence(%v, %s) = %s/%s, want %s/%s",
				tt.confidence, tt.method, status, label, tt.status, tt.label)
		}
	}
}
