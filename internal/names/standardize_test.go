// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

import "testing"

func TestStandardize_DictionaryNickname(t *testing.T) {
	s := NewStandardizer(testTables(t))

	if got := s.Standardize("Bill"); got != "William" {
		t.Errorf("Standardize(Bill) = %q, want William", got)
	}
	if got := s.Standardize("LIZ"); got != "Elizabeth" {
		t.Errorf("lookup must be case-insensitive, got %q", got)
	}
}

func TestStandardize_FallbackNickname(t *testing.T) {
	s := NewStandardizer(nil)

	if got := s.Standardize("Bob"); got != "Robert" {
		t.Errorf("Standardize(Bob) = %q, want Robert", got)
	}
}

func TestStandardize_Passthrough(t *testing.T) {
	s := NewStandardizer(nil)

	tests := map[string]string{
		"Xavier":    "Xavier",
		"xavier":    "Xavier",
		"mary-jane": "Mary-Jane",
		"o'brien":   "O'Brien",
		"josé":      "José",
		"ÉLODIE":    "Élodie",
		"":          "",
		"   ":       "",
	}
	for in, want := range tests {
		if got := s.Standardize(in); got != want {
			t.Errorf("Standardize(%q) = %q, want %q", in, got, want)
		}
	}
}
