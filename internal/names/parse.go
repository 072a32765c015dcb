// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

import (
	"regexp"
	"strings"

	"datacleanse/internal/lookup"
)

// nonNameChars matches everything outside letters, digits, underscores,
// whitespace and periods. Punctuation like commas and quotes is stripped
// before tokenizing; accented letters are name characters and must survive.
var nonNameChars = regexp.MustCompile(`[^\p{L}\p{N}_\s.]`)

// Parser splits a raw full-name string into its components using the
// prefix dictionary when loaded, with fixed fallback tables otherwise.
type Parser struct {
	tables *lookup.Tables
}

// NewParser creates a parser backed by the given lookup tables (nil is fine).
func NewParser(tables *lookup.Tables) *Parser {
	return &Parser{tables: tables}
}

// Parse extracts {prefix, first, middle, last, suffix} from fullName.
// Empty or whitespace-only input yields an all-empty ParsedName; this step
// never fails — the caller decides how to treat empty output.
func (p *Parser) Parse(fullName string) ParsedName {
	var parsed ParsedName

	cleaned := nonNameChars.ReplaceAllString(fullName, "")
	tokens := strings.Fields(cleaned)
	if len(tokens) == 0 {
		return parsed
	}

	if p.isPrefix(tokens[0]) {
		parsed.Prefix = tokens[0]
		tokens = tokens[1:]
	}

	if len(tokens) > 0 && isSuffixToken(tokens[len(tokens)-1]) {
		parsed.Suffix = tokens[len(tokens)-1]
		tokens = tokens[:len(tokens)-1]
	}

	switch len(tokens) {
	case 0:
	case 1:
		parsed.FirstName = tokens[0]
	case 2:
		parsed.FirstName = tokens[0]
		parsed.LastName = tokens[1]
	default:
		parsed.FirstName = tokens[0]
		parsed.LastName = tokens[len(tokens)-1]
		parsed.MiddleName = strings.Join(tokens[1:len(tokens)-1], " ")
	}

	return parsed
}

// isPrefix checks the token against the prefix dictionary when loaded,
// falling back to the fixed honorific table.
func (p *Parser) isPrefix(token string) bool {
	normalized := normalizeToken(token)
	if p.tables.HasPrefixes() {
		return p.tables.IsPrefix(normalized)
	}
	return fallbackPrefixes[normalized]
}

// isSuffixToken always uses the fixed suffix table; suffixes have no
// dictionary override point.
func isSuffixToken(token string) bool {
	return nameSuffixes[normalizeToken(token)]
}

// normalizeToken lowercases a token and strips a trailing period.
func normalizeToken(token string) string {
	return strings.TrimSuffix(strings.ToLower(token), ".")
}
