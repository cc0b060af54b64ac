package plan

import "testing"

func TestLoad_EmbeddedPlan(t *testing.T) {
	store, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded plan failed: %v", err)
	}
	if len(store.Regions()) == 0 {
		t.Fatal("embedded plan has no regions")
	}
	if store.CallingCodeCount() == 0 {
		t.Fatal("embedded plan has no calling codes")
	}

	for _, r := range store.Regions() {
		if len(r.PossibleLengths()) == 0 {
			t.Fatalf("region %s has no possible lengths", r.Code)
		}
		if r.CallingCode < 1 || r.CallingCode > 999 {
			t.Fatalf("region %s has calling code %d out of range", r.Code, r.CallingCode)
		}
	}
}

func TestLoad_MainRegionOrderedFirst(t *testing.T) {
	store, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded plan failed: %v", err)
	}

	seen := map[int]bool{}
	for _, r := range store.Regions() {
		seen[r.CallingCode] = true
	}
	for code := range seen {
		regions := store.RegionsForCallingCode(code)
		if len(regions) == 0 {
			t.Fatalf("calling code %d has no regions", code)
		}
		if !regions[0].MainForCode {
			t.Fatalf("calling code %d: first region %s is not the main region", code, regions[0].Code)
		}
		for _, r := range regions[1:] {
			if r.MainForCode {
				t.Fatalf("calling code %d: secondary region %s also flagged main", code, r.Code)
			}
		}
	}
}

func TestLoad_NANPASharedCallingCode(t *testing.T) {
	store, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded plan failed: %v", err)
	}

	regions := store.RegionsForCallingCode(1)
	if len(regions) < 2 {
		t.Fatalf("expected multiple regions for calling code 1, got %d", len(regions))
	}
	if regions[0].Code != "US" {
		t.Fatalf("expected US first for calling code 1, got %s", regions[0].Code)
	}
}

func TestFromYAML_RejectsDuplicateRegionCode(t *testing.T) {
	doc := `
regions:
  - code: US
    calling_code: 1
    main_for_code: true
    possible_lengths: [10]
    general: '\d{10}'
  - code: US
    calling_code: 1
    possible_lengths: [10]
    general: '\d{10}'
`
	if _, err := FromYAML([]byte(doc)); err == nil {
		t.Fatal("expected duplicate region code error, got nil")
	}
}

func TestFromYAML_RejectsMissingMainRegion(t *testing.T) {
	doc := `
regions:
  - code: US
    calling_code: 1
    possible_lengths: [10]
    general: '\d{10}'
  - code: CA
    calling_code: 1
    possible_lengths: [10]
    general: '\d{10}'
`
	if _, err := FromYAML([]byte(doc)); err == nil {
		t.Fatal("expected missing main region error, got nil")
	}
}

func TestFromYAML_RejectsEmptyLengths(t *testing.T) {
	doc := `
regions:
  - code: US
    calling_code: 1
    main_for_code: true
    possible_lengths: []
    general: '\d{10}'
`
	if _, err := FromYAML([]byte(doc)); err == nil {
		t.Fatal("expected empty possible_lengths error, got nil")
	}
}

func TestFromYAML_RejectsBadPattern(t *testing.T) {
	doc := `
regions:
  - code: US
    calling_code: 1
    main_for_code: true
    possible_lengths: [10]
    general: '[unclosed'
`
	if _, err := FromYAML([]byte(doc)); err == nil {
		t.Fatal("expected pattern compile error, got nil")
	}
}

func TestRegion_StripNationalPrefix(t *testing.T) {
	store, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded plan failed: %v", err)
	}
	gb, ok := store.Region("GB")
	if !ok {
		t.Fatal("GB missing from embedded plan")
	}

	if got := gb.StripNationalPrefix("02079460958"); got != "2079460958" {
		t.Fatalf("expected prefix stripped, got %q", got)
	}
	if got := gb.StripNationalPrefix("2079460958"); got != "2079460958" {
		t.Fatalf("prefix must never be required, got %q", got)
	}
	// A bare prefix is not a number; stripping must not empty the input.
	if got := gb.StripNationalPrefix("0"); got != "0" {
		t.Fatalf("expected bare prefix kept, got %q", got)
	}
}

func TestRegion_LookupIsCaseInsensitive(t *testing.T) {
	store, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded plan failed: %v", err)
	}
	if _, ok := store.Region("gb"); !ok {
		t.Fatal("lowercase region lookup failed")
	}
	if _, ok := store.Region("ZZ"); ok {
		t.Fatal("unexpected region ZZ")
	}
}

func TestRegion_ClassifyType(t *testing.T) {
	store, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded plan failed: %v", err)
	}

	gb, _ := store.Region("GB")
	if got := gb.ClassifyType("7911123456"); got != TypeMobile {
		t.Fatalf("expected MOBILE for UK 79xx, got %s", got)
	}
	if got := gb.ClassifyType("2079460958"); got != TypeFixedLine {
		t.Fatalf("expected FIXED_LINE for UK 20xx, got %s", got)
	}

	// Mexico carries no type sub-patterns: everything is UNKNOWN.
	mx, _ := store.Region("MX")
	if got := mx.ClassifyType("5512345678"); got != TypeUnknown {
		t.Fatalf("expected UNKNOWN for MX, got %s", got)
	}
}
