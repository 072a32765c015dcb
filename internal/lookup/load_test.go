// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package lookup

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDict(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeDict(t, dir, "first_names.txt", "# common first names\nWilliam\nmary\n\njohn\n")
	writeDict(t, dir, "last_names.txt", "Smith\nJohnson\n")
	writeDict(t, dir, "business_words.txt", "solutions\nconsulting\n")
	writeDict(t, dir, "company_suffixes.txt", "LLC\ninc\ncorp\n")
	writeDict(t, dir, "prefixes.txt", "mr\ndr\n")
	writeDict(t, dir, "gender_names.txt", "William\tM\nmary\tFemale\nbroken line no tab\n")
	writeDict(t, dir, "nicknames.txt", "Bill\tWilliam\nliz\telizabeth\n")

	tables, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	if tables.Degraded() {
		t.Fatal("loaded tables should not be degraded")
	}
	if !tables.IsFirstName("WILLIAM") || !tables.IsFirstName("john") {
		t.Error("first-name lookup must be case-insensitive")
	}
	if !tables.IsLastName("smith") {
		t.Error("missing surname smith")
	}
	if !tables.IsBusinessWord("Solutions") {
		t.Error("missing business word solutions")
	}
	if got := tables.CompanySuffixes(); len(got) != 3 || got[0] != "llc" {
		t.Errorf("company suffixes = %v, want lowercased in file order", got)
	}
	if !tables.IsPrefix("Dr") {
		t.Error("missing prefix dr")
	}

	if g, ok := tables.Gender("mary"); !ok || g != "F" {
		t.Errorf("gender variant Female should normalize to F, got %q/%v", g, ok)
	}
	if g, ok := tables.Gender("william"); !ok || g != "M" {
		t.Errorf("gender william = %q/%v", g, ok)
	}
	if _, ok := tables.Gender("broken line no tab"); ok {
		t.Error("tab-less map line must be skipped")
	}

	if std, ok := tables.Nickname("BILL"); !ok || std != "william" {
		t.Errorf("nickname bill = %q/%v", std, ok)
	}
}

func TestLoad_MissingDirectoryIsDegraded(t *testing.T) {
	tables, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("missing directory must not error: %v", err)
	}
	if !tables.Degraded() {
		t.Error("expected degraded tables")
	}
}

func TestLoad_EmptyPathIsDegraded(t *testing.T) {
	tables, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if !tables.Degraded() {
		t.Error("expected degraded tables for empty path")
	}
}

func TestLoad_PartialData(t *testing.T) {
	dir := t.TempDir()
	writeDict(t, dir, "first_names.txt", "william\n")

	tables, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if tables.Degraded() {
		t.Error("one loaded table is enough to leave degraded mode")
	}
	if !tables.HasFirstNames() || tables.HasLastNames() {
		t.Errorf("unexpected table presence: %v", tables.Stats())
	}
}

func TestNilTables(t *testing.T) {
	var tables *Tables

	if !tables.Degraded() {
		t.Error("nil tables must report degraded")
	}
	if tables.IsFirstName("william") || tables.IsLastName("smith") || tables.IsPrefix("dr") {
		t.Error("nil tables must answer negatively")
	}
	if _, ok := tables.Gender("mary"); ok {
		t.Error("nil tables must miss gender lookups")
	}
	if got := tables.CompanySuffixes(); got != nil {
		t.Errorf("nil tables suffixes = %v", got)
	}
	if got := tables.Stats(); len(got) != 0 {
		t.Errorf("nil tables stats = %v", got)
	}
}

func TestSynthetic(t *testing.T) {
	tables := Synthetic(SyntheticData{
		FirstNames:   []string{"William"},
		GenderByName: map[string]string{"William": "male"},
		Nicknames:    map[string]string{"Bill": "William"},
	})

	if !tables.IsFirstName("william") {
		t.Error("synthetic first name missing")
	}
	if g, ok := tables.Gender("william"); !ok || g != "M" {
		t.Errorf("synthetic gender = %q/%v, want M", g, ok)
	}
	if std, ok := tables.Nickname("bill"); !ok || std != "william" {
		t.Errorf("synthetic nickname = %q/%v, want william", std, ok)
	}
}
