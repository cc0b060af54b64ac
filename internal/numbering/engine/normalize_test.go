package engine

import (
	"errors"
	"testing"
)

func TestNormalize_StripsFormattingNoise(t *testing.T) {
	cases := []struct {
		raw    string
		digits string
		plus   bool
	}{
		{"+1 (555) 123-4567", "15551234567", true},
		{"555.123.4567", "5551234567", false},
		{"tel: 555 123 4567 ext", "5551234567", false},
		{"  +44 20 7946 0958", "442079460958", true},
	}
	for _, tc := range cases {
		got, err := normalize(tc.raw)
		if err != nil {
			t.Fatalf("normalize(%q) failed: %v", tc.raw, err)
		}
		if got.digits != tc.digits || got.explicitPlus != tc.plus {
			t.Fatalf("normalize(%q) = %+v, want digits=%q plus=%v", tc.raw, got, tc.digits, tc.plus)
		}
	}
}

func TestNormalize_InteriorPlusIsNoise(t *testing.T) {
	got, err := normalize("555+1234567")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if got.explicitPlus {
		t.Fatal("interior + must not count as an explicit prefix")
	}
	if got.digits != "5551234567" {
		t.Fatalf("unexpected digits %q", got.digits)
	}

	// A + preceded only by noise is still the first retained position.
	got, err = normalize("call +31612345678")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if !got.explicitPlus {
		t.Fatal("leading + after noise must count as explicit")
	}
}

func TestNormalize_EmptyAfterStripping(t *testing.T) {
	for _, raw := range []string{"", "abc", "()-", "+"} {
		if _, err := normalize(raw); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("normalize(%q): expected ErrEmptyInput, got %v", raw, err)
		}
	}
}

func TestResolve_LongestCallingCodeFirst(t *testing.T) {
	e := newTestEngine(t)

	// 351 must win over 35x falling back to shorter prefixes.
	res := mustValidate(t, e, "+351 912 345 678", "")
	if res.Number.CountryCallingCode != 351 || res.Number.RegionCode != "PT" {
		t.Fatalf("expected PT via calling code 351, got %+v", res.Number)
	}

	// 391 is not a calling code, so Italy's 39 matches at length two.
	res = mustValidate(t, e, "+39 312 345 6789", "")
	if res.Number.CountryCallingCode != 39 || res.Number.RegionCode != "IT" {
		t.Fatalf("expected IT via calling code 39, got %+v", res.Number)
	}

	res = mustValidate(t, e, "+234 802 123 4567", "")
	if res.Number.CountryCallingCode != 234 || res.Number.RegionCode != "NG" {
		t.Fatalf("expected NG via calling code 234, got %+v", res.Number)
	}
}
