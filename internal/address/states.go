// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"regexp"
	"strings"
)

// validStateCodes is the set of accepted 2-letter codes: 50 states plus DC.
var validStateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true,
	"CO": true, "CT": true, "DE": true, "FL": true, "GA": true,
	"HI": true, "ID": true, "IL": true, "IN": true, "IA": true,
	"KS": true, "KY": true, "LA": true, "ME": true, "MD": true,
	"MA": true, "MI": true, "MN": true, "MS": true, "MO": true,
	"MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true,
	"OK": true, "OR": true, "PA": true, "RI": true, "SC": true,
	"SD": true, "TN": true, "TX": true, "UT": true, "VT": true,
	"VA": true, "WA": true, "WV": true, "WI": true, "WY": true,
	"DC": true,
}

// stateNamesToCodes maps lowercased, punctuation-stripped state names and
// common abbreviation variants to 2-letter codes.
var stateNamesToCodes = map[string]string{
	"alabama":        "AL",
	"alaska":         "AK",
	"arizona":        "AZ",
	"ariz":           "AZ",
	"arkansas":       "AR",
	"ark":            "AR",
	"california":     "CA",
	"calif":          "CA",
	"cali":           "CA",
	"colorado":       "CO",
	"colo":           "CO",
	"connecticut":    "CT",
	"conn":           "CT",
	"delaware":       "DE",
	"florida":        "FL",
	"fla":            "FL",
	"georgia":        "GA",
	"hawaii":         "HI",
	"idaho":          "ID",
	"illinois":       "IL",
	"ill":            "IL",
	"indiana":        "IN",
	"ind":            "IN",
	"iowa":           "IA",
	"kansas":         "KS",
	"kans":           "KS",
	"kentucky":       "KY",
	"louisiana":      "LA",
	"maine":          "ME",
	"maryland":       "MD",
	"massachusetts":  "MA",
	"mass":           "MA",
	"michigan":       "MI",
	"mich":           "MI",
	"minnesota":      "MN",
	"minn":           "MN",
	"mississippi":    "MS",
	"missouri":       "MO",
	"montana":        "MT",
	"mont":           "MT",
	"nebraska":       "NE",
	"nebr":           "NE",
	"nevada":         "NV",
	"new hampshire":  "NH",
	"new jersey":     "NJ",
	"new mexico":     "NM",
	"new york":       "NY",
	"north carolina": "NC",
	"north dakota":   "ND",
	"ohio":           "OH",
	"oklahoma":       "OK",
	"okla":           "OK",
	"oregon":         "OR",
	"ore":            "OR",
	"oreg":           "OR",
	"pennsylvania":   "PA",
	"penn":           "PA",
	"penna":          "PA",
	"rhode island":   "RI",
	"south carolina": "SC",
	"south dakota":   "SD",
	"tennessee":      "TN",
	"tenn":           "TN",
	"texas":          "TX",
	"tex":            "TX",
	"utah":           "UT",
	"vermont":        "VT",
	"virginia":       "VA",
	"washington":     "WA",
	"wash":           "WA",
	"west virginia":  "WV",
	"wisconsin":      "WI",
	"wis":            "WI",
	"wisc":           "WI",
	"wyoming":        "WY",
	"wyo":            "WY",
	"district of columbia": "DC",
	"washington dc":        "DC",
	"washington d c":       "DC",
}

var statePunct = regexp.MustCompile(`[^\w\s]`)

// NormalizedState is the outcome of state normalization.
type NormalizedState struct {
	Code    string // 2-letter code when valid, uppercased original otherwise
	Valid   bool
	Applied bool // true when a name or variant was converted to a code
}

// NormalizeState resolves a 2-letter code or free-text state name to its
// canonical code. An already-normalized code short-circuits on the fast
// path, which makes categorization idempotent.
func NormalizeState(input string) NormalizedState {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) == 2 {
		code := strings.ToUpper(trimmed)
		if validStateCodes[code] {
			return NormalizedState{Code: code, Valid: true}
		}
	}

	cleaned := statePunct.ReplaceAllString(strings.ToLower(trimmed), "")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if code, ok := stateNamesToCodes[cleaned]; ok {
		return NormalizedState{Code: code, Valid: true, Applied: true}
	}

	return NormalizedState{Code: strings.ToUpper(trimmed)}
}
