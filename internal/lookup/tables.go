// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package lookup

import "strings"

// Tables holds the reference data used by the name and party-type engines.
// All collections are read-only after load and safe for concurrent reads.
// A nil *Tables is valid everywhere and means pure-heuristic mode.
type Tables struct {
	firstNames      map[string]bool
	lastNames       map[string]bool
	businessWords   map[string]bool
	companySuffixes []string
	prefixes        map[string]bool
	genderByName    map[string]string // lowercase name → "M" or "F"
	nicknames       map[string]string // lowercase nickname → standard name
}

// HasFirstNames reports whether the first-name set was loaded.
func (t *Tables) HasFirstNames() bool { return t != nil && len(t.firstNames) > 0 }

// HasLastNames reports whether the surname set was loaded.
func (t *Tables) HasLastNames() bool { return t != nil && len(t.lastNames) > 0 }

// HasBusinessWords reports whether the business-word set was loaded.
func (t *Tables) HasBusinessWords() bool { return t != nil && len(t.businessWords) > 0 }

// HasCompanySuffixes reports whether the company-suffix list was loaded.
func (t *Tables) HasCompanySuffixes() bool { return t != nil && len(t.companySuffixes) > 0 }

// HasPrefixes reports whether the honorific-prefix set was loaded.
func (t *Tables) HasPrefixes() bool { return t != nil && len(t.prefixes) > 0 }

// IsFirstName reports whether name is a known first name.
func (t *Tables) IsFirstName(name string) bool {
	if t == nil {
		return false
	}
	return t.firstNames[strings.ToLower(name)]
}

// IsLastName reports whether name is a known surname.
func (t *Tables) IsLastName(name string) bool {
	if t == nil {
		return false
	}
	return t.lastNames[strings.ToLower(name)]
}

// IsBusinessWord reports whether word is a known business word.
func (t *Tables) IsBusinessWord(word string) bool {
	if t == nil {
		return false
	}
	return t.businessWords[strings.ToLower(word)]
}

// CompanySuffixes returns the loaded company-suffix list in stable order.
func (t *Tables) CompanySuffixes() []string {
	if t == nil {
		return nil
	}
	return t.companySuffixes
}

// IsPrefix reports whether token is a known honorific prefix.
func (t *Tables) IsPrefix(token string) bool {
	if t == nil {
		return false
	}
	return t.prefixes[strings.ToLower(token)]
}

// Gender returns the dictionary gender for a first name, if present.
func (t *Tables) Gender(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	g, ok := t.genderByName[strings.ToLower(name)]
	return g, ok
}

// Nickname returns the standard form for a nickname, if present.
func (t *Tables) Nickname(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	std, ok := t.nicknames[strings.ToLower(name)]
	return std, ok
}

// Degraded reports whether the engine is running without any reference data.
func (t *Tables) Degraded() bool {
	if t == nil {
		return true
	}
	return len(t.firstNames) == 0 && len(t.lastNames) == 0 &&
		len(t.businessWords) == 0 && len(t.companySuffixes) == 0 &&
		len(t.prefixes) == 0 && len(t.genderByName) == 0 && len(t.nicknames) == 0
}

// Stats returns entry counts per table for status reporting.
func (t *Tables) Stats() map[string]int {
	if t == nil {
		return map[string]int{}
	}
	return map[string]int{
		"first_names":      len(t.firstNames),
		"last_names":       len(t.lastNames),
		"business_words":   len(t.businessWords),
		"company_suffixes": len(t.companySuffixes),
		"prefixes":         len(t.prefixes),
		"gender_names":     len(t.genderByName),
		"nicknames":        len(t.nicknames),
	}
}
