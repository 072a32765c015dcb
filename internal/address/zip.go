// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"regexp"
	"strings"
)

// zipPattern is one entry of the ordered postal-code pattern table.
type zipPattern struct {
	name          string
	re            *regexp.Regexp
	class         ZipClass
	requireLetter bool // generic alphanumeric must contain a letter
}

// zipPatterns is checked in order; the first match wins. US patterns come
// first so a plain 5-digit code is always classified domestic.
var zipPatterns = []zipPattern{
	{name: "us_zip5", re: regexp.MustCompile(`^\d{5}$`), class: ZipUS},
	{name: "us_zip9", re: regexp.MustCompile(`^\d{9}$`), class: ZipUS},
	{name: "us_zip_plus4", re: regexp.MustCompile(`^\d{5}-?\d{4}$`), class: ZipUS},
	{name: "canada", re: regexp.MustCompile(`^[A-Za-z]\d[A-Za-z] ?\d[A-Za-z]\d$`), class: ZipInternational},
	{name: "united_kingdom", re: regexp.MustCompile(`^[A-Za-z]{1,2}\d[A-Za-z\d]? ?\d[A-Za-z]{2}$`), class: ZipInternational},
	{name: "germany", re: regexp.MustCompile(`^[Dd]-\d{5}$`), class: ZipInternational},
	{name: "australia", re: regexp.MustCompile(`^\d{4}$`), class: ZipInternational},
	{name: "netherlands", re: regexp.MustCompile(`^\d{4} ?[A-Za-z]{2}$`), class: ZipInternational},
	{name: "nordic", re: regexp.MustCompile(`^\d{3} \d{2}$`), class: ZipInternational},
	{name: "japan", re: regexp.MustCompile(`^\d{3}-\d{4}$`), class: ZipInternational},
	{name: "brazil", re: regexp.MustCompile(`^\d{5}-\d{3}$`), class: ZipInternational},
	{name: "india_china", re: regexp.MustCompile(`^\d{6}$`), class: ZipInternational},
	{name: "generic_alphanumeric", re: regexp.MustCompile(`^[A-Za-z\d][A-Za-z\d -]{1,8}[A-Za-z\d]$`), class: ZipInternational, requireLetter: true},
}

// strictUSZip is the final gate for the us_valid category.
var strictUSZip = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// ClassifyZip runs the postal code through the ordered pattern table.
func ClassifyZip(zip string) ZipClass {
	trimmed := strings.TrimSpace(zip)
	if trimmed == "" {
		return ZipInvalid
	}
	for _, p := range zipPatterns {
		if !p.re.MatchString(trimmed) {
			continue
		}
		if p.requireLetter && !containsLetter(trimmed) {
			continue
		}
		return p.class
	}
	return ZipInvalid
}

func containsLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
