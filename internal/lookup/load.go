// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package lookup

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Reference data file names expected inside the dictionary directory.
// Missing files are skipped so the engine can run with partial data.
const (
	firstNamesFile      = "first_names.txt"
	lastNamesFile       = "last_names.txt"
	businessWordsFile   = "business_words.txt"
	companySuffixesFile = "company_suffixes.txt"
	prefixesFile        = "prefixes.txt"
	genderNamesFile     = "gender_names.txt"
	nicknamesFile       = "nicknames.txt"
)

// Load builds lookup tables from plain-text files in dir. Set files contain
// one entry per line; map files contain "key<TAB>value" per line. A missing
// directory or missing individual files are not errors — the returned tables
// simply report Degraded() until data is present.
func Load(dir string) (*Tables, error) {
	t := &Tables{
		firstNames:    make(map[string]bool),
		lastNames:     make(map[string]bool),
		businessWords: make(map[string]bool),
		prefixes:      make(map[string]bool),
		genderByName:  make(map[string]string),
		nicknames:     make(map[string]string),
	}

	if dir == "" {
		return t, nil
	}
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, fmt.Errorf("dictionary directory: %w", err)
	}

	if err := loadSet(filepath.Join(dir, firstNamesFile), t.firstNames); err != nil {
		return nil, err
	}
	if err := loadSet(filepath.Join(dir, lastNamesFile), t.lastNames); err != nil {
		return nil, err
	}
	if err := loadSet(filepath.Join(dir, businessWordsFile), t.businessWords); err != nil {
		return nil, err
	}
	suffixes, err := loadList(filepath.Join(dir, companySuffixesFile))
	if err != nil {
		return nil, err
	}
	t.companySuffixes = suffixes
	if err := loadSet(filepath.Join(dir, prefixesFile), t.prefixes); err != nil {
		return nil, err
	}
	if err := loadMap(filepath.Join(dir, genderNamesFile), t.genderByName, normalizeGender); err != nil {
		return nil, err
	}
	if err := loadMap(filepath.Join(dir, nicknamesFile), t.nicknames, strings.ToLower); err != nil {
		return nil, err
	}

	return t, nil
}

// loadSet reads one lowercase entry per line into dst. Missing file is skipped.
func loadSet(path string, dst map[string]bool) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	for _, line := range lines {
		dst[strings.ToLower(line)] = true
	}
	return nil
}

// loadList reads one entry per line preserving order. Missing file is skipped.
func loadList(path string) ([]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, strings.ToLower(line))
	}
	return out, nil
}

// loadMap reads "key<TAB>value" pairs into dst, normalizing values with norm.
func loadMap(path string, dst map[string]string, norm func(string) string) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	for _, line := range lines {
		key, value, found := strings.Cut(line, "\t")
		if !found {
			continue
		}
		key = strings.TrimSpace(strings.ToLower(key))
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		dst[key] = norm(value)
	}
	return nil
}

// readLines returns trimmed non-empty lines from path, or nil when the file
// does not exist.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

func normalizeGender(v string) string {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "M", "MALE":
		return "M"
	case "F", "FEMALE":
		return "F"
	}
	return ""
}
