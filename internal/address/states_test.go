// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import "testing"

func TestNormalizeState(t *testing.T) {
	tests := []struct {
		in      string
		code    string
		valid   bool
		applied bool
	}{
		{"AR", "AR", true, false},
		{"ar", "AR", true, false},
		{" ny ", "NY", true, false},
		{"Arkansas", "AR", true, true},
		{"calif", "CA", true, true},
		{"Washington D.C.", "DC", true, true},
		{"district of columbia", "DC", true, true},
		{"new   york", "NY", true, true},
		{"Atlantis", "ATLANTIS", false, false},
		{"ZZ", "ZZ", false, false},
		{"", "", false, false},
	}

	for _, tt := range tests {
		got := NormalizeState(tt.in)
		if got.Code != tt.code || got.Valid != tt.valid || got.Applied != tt.applied {
			t.Errorf("NormalizeState(%q) = %+v, want code=%q valid=%v applied=%v",
				tt.in, got, tt.code, tt.valid, tt.applied)
		}
	}
}

func TestNormalizeState_Idempotent(t *testing.T) {
	first := NormalizeState("Arkansas")
	second := NormalizeState(first.Code)
	if !second.Valid || second.Code != first.Code {
		t.Errorf("re-normalizing %q gave %+v", first.Code, second)
	}
	// The fast path does not count as a conversion.
	if second.Applied {
		t.Error("already-normalized code must not report normalization applied")
	}
}
