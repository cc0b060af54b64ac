package plan

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var embeddedPlan []byte

// YAML document schema. Patterns are anchored at build time, so the data
// files carry bare expressions.
type planDoc struct {
	Regions []regionDoc `yaml:"regions"`
}

type regionDoc struct {
	Code            string      `yaml:"code"`
	CallingCode     int         `yaml:"calling_code"`
	MainForCode     bool        `yaml:"main_for_code"`
	NationalPrefix  string      `yaml:"national_prefix"`
	PossibleLengths []int       `yaml:"possible_lengths"`
	General         string      `yaml:"general"`
	Types           []typeDoc   `yaml:"types"`
	Formats         []formatDoc `yaml:"formats"`
}

type typeDoc struct {
	Type    string `yaml:"type"`
	Pattern string `yaml:"pattern"`
}

type formatDoc struct {
	Leading       string `yaml:"leading"`
	Pattern       string `yaml:"pattern"`
	National      string `yaml:"national"`
	International string `yaml:"international"`
}

// Load builds the numbering plan store. When path is empty the embedded
// plan is used, otherwise the YAML file at path replaces it entirely.
func Load(path string) (*Store, error) {
	data := embeddedPlan
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read numbering plan %s: %w", path, err)
		}
		data = b
	}
	return FromYAML(data)
}

// FromYAML parses and validates a numbering plan document.
func FromYAML(data []byte) (*Store, error) {
	var doc planDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse numbering plan: %w", err)
	}
	if len(doc.Regions) == 0 {
		return nil, fmt.Errorf("numbering plan defines no regions")
	}

	store := &Store{
		byCode:    make(map[string]*Region, len(doc.Regions)),
		byCalling: make(map[int][]*Region),
	}

	for _, rd := range doc.Regions {
		region, err := buildRegion(rd)
		if err != nil {
			return nil, fmt.Errorf("region %s: %w", rd.Code, err)
		}
		if _, dup := store.byCode[region.Code]; dup {
			return nil, fmt.Errorf("duplicate region code %s", region.Code)
		}
		store.byCode[region.Code] = region
		store.regions = append(store.regions, region)
	}

	if err := indexCallingCodes(store); err != nil {
		return nil, err
	}
	return store, nil
}

func buildRegion(rd regionDoc) (*Region, error) {
	code := strings.ToUpper(strings.TrimSpace(rd.Code))
	if code == "" {
		return nil, fmt.Errorf("missing region code")
	}
	if rd.CallingCode < 1 || rd.CallingCode > 999 {
		return nil, fmt.Errorf("calling code %d out of range", rd.CallingCode)
	}
	if len(rd.PossibleLengths) == 0 {
		return nil, fmt.Errorf("possible_lengths must not be empty")
	}

	general, err := compileFull(rd.General)
	if err != nil {
		return nil, fmt.Errorf("general pattern: %w", err)
	}

	region := &Region{
		Code:           code,
		CallingCode:    rd.CallingCode,
		MainForCode:    rd.MainForCode,
		NationalPrefix: rd.NationalPrefix,
		general:        general,
		lengths:        make(map[int]struct{}, len(rd.PossibleLengths)),
	}
	for _, n := range rd.PossibleLengths {
		if n < 1 {
			return nil, fmt.Errorf("possible length %d out of range", n)
		}
		if _, ok := region.lengths[n]; !ok {
			region.lengths[n] = struct{}{}
			region.lengthSeq = append(region.lengthSeq, n)
		}
	}
	sort.Ints(region.lengthSeq)

	for _, td := range rd.Types {
		nt := NumberType(td.Type)
		if nt != TypeFixedLine && nt != TypeMobile {
			return nil, fmt.Errorf("unknown number type %q", td.Type)
		}
		p, err := compileFull(td.Pattern)
		if err != nil {
			return nil, fmt.Errorf("type pattern %s: %w", td.Type, err)
		}
		region.types = append(region.types, TypePattern{Type: nt, pattern: p})
	}

	for i, fd := range rd.Formats {
		rule, err := buildFormatRule(fd)
		if err != nil {
			return nil, fmt.Errorf("format rule %d: %w", i, err)
		}
		region.Formats = append(region.Formats, rule)
	}

	return region, nil
}

func buildFormatRule(fd formatDoc) (FormatRule, error) {
	if fd.Pattern == "" || fd.National == "" || fd.International == "" {
		return FormatRule{}, fmt.Errorf("pattern and both templates are required")
	}
	pattern, err := compileFull(fd.Pattern)
	if err != nil {
		return FormatRule{}, fmt.Errorf("number pattern: %w", err)
	}
	rule := FormatRule{
		pattern:       pattern,
		National:      fd.National,
		International: fd.International,
	}
	if fd.Leading != "" {
		leading, err := regexp.Compile("^(?:" + fd.Leading + ")")
		if err != nil {
			return FormatRule{}, fmt.Errorf("leading digits pattern: %w", err)
		}
		rule.leading = leading
	}
	return rule, nil
}

// indexCallingCodes groups regions by calling code, main region first, and
// enforces that every shared code names exactly one main region.
func indexCallingCodes(store *Store) error {
	for _, r := range store.regions {
		if r.MainForCode {
			store.byCalling[r.CallingCode] = append([]*Region{r}, store.byCalling[r.CallingCode]...)
		} else {
			store.byCalling[r.CallingCode] = append(store.byCalling[r.CallingCode], r)
		}
	}
	for code, regions := range store.byCalling {
		mains := 0
		for _, r := range regions {
			if r.MainForCode {
				mains++
			}
		}
		if mains != 1 {
			return fmt.Errorf("calling code %d has %d main regions, want exactly 1", code, mains)
		}
	}
	return nil
}

// compileFull anchors a pattern so it must match the entire digit string.
func compileFull(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern must not be empty")
	}
	return regexp.Compile("^(?:" + pattern + ")$")
}
