// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"strings"
	"testing"
)

func TestCategorize_USValid(t *testing.T) {
	c := NewCategorizer(nil)

	got := c.Categorize(Record{
		ID:    "1",
		Line1: "123 Main St",
		City:  "Little Rock",
		State: "Arkansas",
		Zip:   "72201",
	})

	if got.Category != CategoryUSValid {
		t.Fatalf("expected us_valid, got %s with issues %v", got.Category, got.Issues)
	}
	if got.NormalizedState != "AR" || !got.StateValid || !got.StateNormalizationApplied {
		t.Errorf("state normalization: %+v", got)
	}
	if got.ZipClass != ZipUS {
		t.Errorf("expected us zip class, got %s", got.ZipClass)
	}
	if got.CompleteAddress != "123 Main St | Little Rock, AR 72201" {
		t.Errorf("complete address = %q", got.CompleteAddress)
	}
}

func TestCategorize_Line2InDisplayForm(t *testing.T) {
	c := NewCategorizer(nil)

	got := c.Categorize(Record{
		ID:    "2",
		Line1: "123 Main St",
		Line2: "Suite 400",
		City:  "Little Rock",
		State: "AR",
		Zip:   "72201",
	})
	if got.CompleteAddress != "123 Main St | Suite 400 | Little Rock, AR 72201" {
		t.Errorf("complete address = %q", got.CompleteAddress)
	}
}

func TestCategorize_CountryShortCircuit(t *testing.T) {
	c := NewCategorizer(nil)

	// A non-US country wins before required fields are even checked.
	got := c.Categorize(Record{ID: "3", Country: "CA"})
	if got.Category != CategoryInternational {
		t.Fatalf("expected international, got %s", got.Category)
	}
	if len(got.Issues) != 1 || !strings.Contains(got.Issues[0], "non-US country code: CA") {
		t.Errorf("issues = %v", got.Issues)
	}

	for _, domestic := range []string{"US", "usa", " Us "} {
		got := c.Categorize(Record{
			ID: "4", Line1: "123 Main St", City: "Little Rock",
			State: "AR", Zip: "72201", Country: domestic,
		})
		if got.Category != CategoryUSValid {
			t.Errorf("country %q should stay domestic, got %s", domestic, got.Category)
		}
	}
}

func TestCategorize_MissingFieldsAllReported(t *testing.T) {
	c := NewCategorizer(nil)

	got := c.Categorize(Record{ID: "5", State: "AR"})
	if got.Category != CategoryInvalid {
		t.Fatalf("expected invalid, got %s", got.Category)
	}
	if len(got.Issues) != 3 {
		t.Fatalf("expected 3 missing-field issues, got %v", got.Issues)
	}
	for _, field := range []string{"line1", "city", "zip"} {
		found := false
		for _, issue := range got.Issues {
			if strings.Contains(issue, field) {
				found = true
			}
		}
		if !found {
			t.Errorf("missing issue for %s in %v", field, got.Issues)
		}
	}
}

func TestCategorize_InternationalZip(t *testing.T) {
	c := NewCategorizer(nil)

	got := c.Categorize(Record{
		ID: "6", Line1: "1 Front St", City: "Toronto", State: "NY", Zip: "M5V 2T6",
	})
	if got.Category != CategoryInternational || got.ZipClass != ZipInternational {
		t.Errorf("expected international via zip pattern, got %+v", got)
	}
}

func TestCategorize_StrictGateCollectsAllIssues(t *testing.T) {
	c := NewCategorizer(nil)

	got := c.Categorize(Record{
		ID: "7", Line1: "12", City: "X", State: "ZZ", Zip: "72201",
	})
	if got.Category != CategoryInvalid {
		t.Fatalf("expected invalid, got %s", got.Category)
	}
	// Every strict failure is reported, not just the first.
	if len(got.Issues) != 3 {
		t.Errorf("expected 3 issues (state, street, city), got %v", got.Issues)
	}
}

func TestCategorize_CityCharacterCheck(t *testing.T) {
	c := NewCategorizer(nil)

	got := c.Categorize(Record{
		ID: "8", Line1: "123 Main St", City: "L1ttle Rock", State: "AR", Zip: "72201",
	})
	if got.Category != CategoryInvalid {
		t.Fatalf("expected invalid, got %s", got.Category)
	}
	if len(got.Issues) != 1 || !strings.Contains(got.Issues[0], "invalid characters") {
		t.Errorf("issues = %v", got.Issues)
	}

	// Punctuation common in real city names is allowed.
	ok := c.Categorize(Record{
		ID: "9", Line1: "123 Main St", City: "Coeur d'Alene", State: "ID", Zip: "83814",
	})
	if ok.Category != CategoryUSValid {
		t.Errorf("apostrophes and spaces should pass, got %+v", ok)
	}
}

func TestCategorize_Idempotent(t *testing.T) {
	c := NewCategorizer(nil)

	rec := Record{ID: "10", Line1: "123 Main St", City: "Little Rock", State: "Arkansas", Zip: "72201"}
	first := c.Categorize(rec)

	// Feeding the normalized state back in must not change the outcome.
	rec.State = first.NormalizedState
	second := c.Categorize(rec)
	if second.Category != first.Category || second.NormalizedState != first.NormalizedState {
		t.Errorf("re-categorization drifted: %+v vs %+v", first, second)
	}
}
