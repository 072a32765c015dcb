// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package lookup

import "strings"

// SyntheticData describes in-memory reference data for constructing tables
// without files. Used by tests and by callers that manage their own storage.
type SyntheticData struct {
	FirstNames      []string
	LastNames       []string
	BusinessWords   []string
	CompanySuffixes []string
	Prefixes        []string
	GenderByName    map[string]string
	Nicknames       map[string]string
}

// Synthetic builds lookup tables directly from in-memory data.
func Synthetic(data SyntheticData) *Tables {
	t := &Tables{
		firstNames:    make(map[string]bool, len(data.FirstNames)),
		lastNames:     make(map[string]bool, len(data.LastNames)),
		businessWords: make(map[string]bool, len(data.BusinessWords)),
		prefixes:      make(map[string]bool, len(data.Prefixes)),
		genderByName:  make(map[string]string, len(data.GenderByName)),
		nicknames:     make(map[string]string, len(data.Nicknames)),
	}
	for _, name := range data.FirstNames {
		t.firstNames[strings.ToLower(name)] = true
	}
	for _, name := range data.LastNames {
		t.lastNames[strings.ToLower(name)] = true
	}
	for _, word := range data.BusinessWords {
		t.businessWords[strings.ToLower(word)] = true
	}
	for _, suffix := range data.CompanySuffixes {
		t.companySuffixes = append(t.companySuffixes, strings.ToLower(suffix))
	}
	for _, prefix := range data.Prefixes {
		t.prefixes[strings.ToLower(prefix)] = true
	}
	for name, gender := range data.GenderByName {
		t.genderByName[strings.ToLower(name)] = normalizeGender(gender)
	}
	for nick, std := range data.Nicknames {
		t.nicknames[strings.ToLower(nick)] = strings.ToLower(std)
	}
	return t
}
