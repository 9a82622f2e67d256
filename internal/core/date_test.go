package core

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-05")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.String() != "2025-03-05" {
		t.Fatalf("expected 2025-03-05, got %s", d)
	}
	if _, err := ParseDate("05/03/2025"); err == nil {
		t.Fatalf("expected error for wrong format")
	}
}

func TestDateInRange(t *testing.T) {
	d := NewDate(2025, 2, 20)
	cases := []struct {
		from, to Date
		want     bool
	}{
		{NewDate(2025, 2, 15), NewDate(2025, 2, 25), true},
		{NewDate(2025, 2, 20), NewDate(2025, 2, 20), true}, // inclusive bounds
		{NewDate(2025, 2, 21), NewDate(2025, 2, 25), false},
		{Date{}, NewDate(2025, 2, 19), false},
		{Date{}, Date{}, true}, // unbounded
	}
	for i, tc := range cases {
		if got := d.InRange(tc.from, tc.to); got != tc.want {
			t.Fatalf("case %d: expected %v, got %v", i, tc.want, got)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, 3, 5)
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2025-03-05"` {
		t.Fatalf("expected \"2025-03-05\", got %s", out)
	}
	var back Date
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %s != %s", back, d)
	}
}

func TestMonthLabel(t *testing.T) {
	if got := NewDate(2025, 3, 5).MonthLabel(); got != "March 2025" {
		t.Fatalf("expected March 2025, got %s", got)
	}
}
