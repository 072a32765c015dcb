// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

// Fallback heuristic tables shared between the dictionary-present and
// dictionary-absent code paths. Each table lives here once so the two paths
// cannot drift apart.

// fallbackPrefixes is used by the parser when no prefix dictionary is loaded:
// honorifics, professional titles and military ranks.
var fallbackPrefixes = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "miss": true, "mx": true,
	"dr": true, "prof": true, "professor": true,
	"rev": true, "reverend": true, "fr": true, "pastor": true,
	"hon": true, "honorable": true, "judge": true,
	"capt": true, "captain": true, "col": true, "colonel": true,
	"maj": true, "major": true, "lt": true, "sgt": true,
	"gen": true, "general": true, "adm": true, "cmdr": true,
}

// nameSuffixes is the fixed set of generational and credential suffixes.
// There is no dictionary override point for suffixes, only for prefixes.
var nameSuffixes = map[string]bool{
	"jr": true, "sr": true, "ii": true, "iii": true, "iv": true, "v": true,
	"md": true, "phd": true, "dds": true, "esq": true, "cpa": true,
	"jd": true, "rn": true, "do": true, "dvm": true, "edd": true, "mba": true,
}

// orgIndicators are substring keywords that suggest an organization name.
var orgIndicators = []string{
	"llc", "inc", "corp", "company", "ltd", "co.", "corporation",
	"hospital", "medical", "clinic", "center", "services", "solutions",
	"group", "partners", "associates", "firm", "office", "bank",
	"trust", "foundation", "institute", "university", "college",
}

// fallbackNicknames maps common nicknames to standard first names when the
// nickname dictionary is absent or misses the name.
var fallbackNicknames = map[string]string{
	"bill":  "william",
	"will":  "william",
	"bob":   "robert",
	"bobby": "robert",
	"rob":   "robert",
	"dick":  "richard",
	"rick":  "richard",
	"jim":   "james",
	"jimmy": "james",
	"mike":  "michael",
	"tom":   "thomas",
	"tony":  "anthony",
	"joe":   "joseph",
	"dave":  "david",
	"dan":   "daniel",
	"chris": "christopher",
	"matt":  "matthew",
	"steve": "steven",
	"ted":   "theodore",
	"andy":  "andrew",
	"liz":   "elizabeth",
	"beth":  "elizabeth",
	"kate":  "katherine",
	"peggy": "margaret",
	"sue":   "susan",
}

// Gender-ending score tables. Negative totals lean female, positive male.
var feminineEndingsStrong = []string{"a", "ia", "ana", "ella", "ina", "lyn", "lynn", "elle", "ette"} // -3 each
var feminineEndingsWeak = []string{"y", "ie", "ey"}                                                  // -1 each
var masculineEndingsStrong = []string{"er", "on", "an", "en", "son", "ton", "man"}                   // +2 each
var masculineEndingsWeak = []string{"ck", "x", "z"}                                                  // +1 each

// Small fixed common-name sets checked after the pattern score. A hit here
// overrides the pattern score entirely.
var commonFemaleNames = map[string]bool{
	"mary": true, "jennifer": true, "patricia": true, "linda": true,
	"barbara": true, "susan": true, "elizabeth": true, "jessica": true,
	"sarah": true, "karen": true,
}

var commonMaleNames = map[string]bool{
	"james": true, "john": true, "robert": true, "michael": true,
	"william": true, "david": true, "richard": true, "joseph": true,
	"thomas": true, "charles": true,
}
