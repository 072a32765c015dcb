// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

import (
	"strings"
	"unicode"

	"datacleanse/internal/lookup"
)

// Standardizer maps a parsed first name to its canonical form via the
// nickname dictionary, falling back to the fixed nickname table. Output is
// always title-cased; unknown names pass through unchanged.
type Standardizer struct {
	tables *lookup.Tables
}

// NewStandardizer creates a standardizer backed by the given tables.
func NewStandardizer(tables *lookup.Tables) *Standardizer {
	return &Standardizer{tables: tables}
}

// Standardize returns the canonical first name for firstName.
func (s *Standardizer) Standardize(firstName string) string {
	name := strings.TrimSpace(firstName)
	if name == "" {
		return ""
	}
	lower := strings.ToLower(name)

	if std, ok := s.tables.Nickname(lower); ok {
		return titleCase(std)
	}
	if std, ok := fallbackNicknames[lower]; ok {
		return titleCase(std)
	}
	return titleCase(lower)
}

// titleCase uppercases the first letter of each space- or hyphen-separated
// part and lowercases the rest. Unicode-aware so accented names keep their
// letters through the case mapping.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	upperNext := true
	for _, r := range s {
		switch {
		case r == ' ' || r == '-' || r == '\'':
			upperNext = true
			b.WriteRune(r)
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
