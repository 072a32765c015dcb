// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package postal

import (
	"regexp"
	"strings"
)

// unitPatterns match trailing secondary-address designators. Checked in
// order; the keyword forms win over the bare "4B" style so "100 Main St
// Suite 4B" keeps the whole designator together.
var unitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+(apartment|apt|suite|ste|unit|#)\s*\.?\s*([a-z0-9\-]+)$`),
	regexp.MustCompile(`(?i)\s+([0-9]+[a-z]{1,2})$`),
	regexp.MustCompile(`(?i)\s+#([a-z0-9\-]+)$`),
}

// splitStreet separates a street line into the primary street and a
// trailing unit designator. The provider requires units in a separate
// secondaryAddress parameter.
func splitStreet(line string) (street, unit string) {
	line = strings.Join(strings.Fields(line), " ")
	if line == "" {
		return "", ""
	}
	for _, p := range unitPatterns {
		loc := p.FindStringIndex(line)
		if loc == nil {
			continue
		}
		return strings.TrimSpace(line[:loc[0]]), strings.TrimSpace(line[loc[0]:])
	}
	return line, ""
}
