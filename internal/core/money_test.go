package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"45.50", 4550, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{4550, "45.50"},
		{100, "1.00"},
		{1, "0.01"},
		{65050, "650.50"},
		{-4550, "-45.50"},
		{0, "0.00"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Fatalf("cents %d: expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestMoneyJSONCoercion(t *testing.T) {
	// Numbers and quoted strings must both decode to cents.
	for _, in := range []string{`45.50`, `"45.50"`, `"45,50"`} {
		var m Money
		if err := json.Unmarshal([]byte(in), &m); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if m.Cents != 4550 {
			t.Fatalf("%s: expected 4550, got %d", in, m.Cents)
		}
	}

	out, err := json.Marshal(Money{Cents: 4550})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "45.50" {
		t.Fatalf("expected 45.50, got %s", out)
	}
}

func TestMoneyJSONSignedAndZero(t *testing.T) {
	// Report payloads carry zero buckets and can carry a negative
	// balance; decoding must not reject them.
	cases := []struct {
		in   string
		want int64
	}{
		{`0.00`, 0},
		{`"0.00"`, 0},
		{`-45.50`, -4550},
		{`"-45.50"`, -4550},
		{`-0.01`, -1},
	}
	for _, tc := range cases {
		var m Money
		if err := json.Unmarshal([]byte(tc.in), &m); err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		if m.Cents != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.in, tc.want, m.Cents)
		}
	}
}

func TestMoneyValidate(t *testing.T) {
	cases := []struct {
		cents int64
		ok    bool
	}{
		{4550, true},
		{1, true},
		{0, false},
		{-100, false},
	}
	for _, tc := range cases {
		err := (Money{Cents: tc.cents}).Validate()
		if tc.ok && err != nil {
			t.Fatalf("cents %d: unexpected error %v", tc.cents, err)
		}
		if !tc.ok && err != ErrInvalidAmount {
			t.Fatalf("cents %d: expected ErrInvalidAmount, got %v", tc.cents, err)
		}
	}
}
