/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package keys

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/suparena/secschema/errors"
)

func TestHashKeyNull(t *testing.T) {
	var k HashKey
	if !k.IsNull() {
		t.Fatal("zero value should be the null key")
	}
	if k.String() != "" {
		t.Errorf("null key should render empty, got %q", k.String())
	}
	if NewHashKey().IsNull() {
		t.Error("NewHashKey returned the null key")
	}
}

func TestHashKeyRoundTrip(t *testing.T) {
	k := HashKeyOf([]byte("example.com"))
	parsed, err := ParseHashKey(k.String())
	if err != nil {
		t.Fatalf("ParseHashKey failed: %v", err)
	}
	if parsed != k {
		t.Errorf("round trip mismatch: %s != %s", parsed, k)
	}

	empty, err := ParseHashKey("")
	if err != nil || !empty.IsNull() {
		t.Errorf("empty string should parse to null key, got %v, %v", empty, err)
	}
}

func TestParseHashKeyRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"short", "abcd"},
		{"bad characters", strings.Repeat("zz", HashKeySize)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHashKey(tt.input)
			if !errors.IsValidationError(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestHashKeyOrdering(t *testing.T) {
	a := MustParseHashKey(strings.Repeat("00", HashKeySize-1) + "01")
	b := MustParseHashKey(strings.Repeat("00", HashKeySize-1) + "02")

	if a.Compare(b) >= 0 || b.Compare(a) <= 0 {
		t.Error("expected a < b")
	}
	if a.Compare(a) != 0 {
		t.Error("expected a == a")
	}
	if NullHashKey.Compare(a) >= 0 {
		t.Error("null key should sort first")
	}
	if a.HashCode() == b.HashCode() {
		t.Error("adjacent keys should not collide")
	}
}

func TestHashKeyJSON(t *testing.T) {
	type holder struct {
		ID    HashKey `json:"id"`
		Proxy HashKey `json:"proxy"`
	}
	in := holder{ID: NewHashKey()}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"proxy":""`) {
		t.Errorf("null key should encode as empty string: %s", data)
	}

	var out holder
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out != in {
		t.Errorf("JSON round trip mismatch: %+v != %+v", out, in)
	}
}
