// Package plan holds the numbering plan metadata: per-region dialing rules
// loaded once at startup and shared read-only by the validation engine.
package plan

import (
	"regexp"
	"strings"
)

// NumberType classifies a national significant number by the labeled
// sub-pattern it matched, when the region's plan distinguishes subtypes.
type NumberType string

const (
	TypeFixedLine NumberType = "FIXED_LINE"
	TypeMobile    NumberType = "MOBILE"
	TypeUnknown   NumberType = "UNKNOWN"
)

// TypePattern is a labeled sub-pattern of a region's general pattern.
// The first matching entry determines the number type.
type TypePattern struct {
	Type    NumberType
	pattern *regexp.Regexp
}

// FormatRule selects a display template by the leading digits of the
// national significant number. Rules are evaluated in declared order, so
// more specific prefixes must precede general ones.
type FormatRule struct {
	leading       *regexp.Regexp // nil means match everything
	pattern       *regexp.Regexp
	National      string
	International string
}

// MatchesLeading reports whether the rule applies to the given national
// significant number.
func (fr *FormatRule) MatchesLeading(nsn string) bool {
	if fr.leading == nil {
		return true
	}
	return fr.leading.MatchString(nsn)
}

// Render applies the rule's number pattern to the national significant
// number using the given template. The second return value is false when
// the digit count does not satisfy the pattern's capture structure.
func (fr *FormatRule) Render(nsn, template string) (string, bool) {
	if !fr.pattern.MatchString(nsn) {
		return "", false
	}
	return fr.pattern.ReplaceAllString(nsn, template), true
}

// Region describes one region's numbering plan rules. All fields are
// immutable after load.
type Region struct {
	Code           string
	CallingCode    int
	MainForCode    bool
	NationalPrefix string
	Formats        []FormatRule

	general   *regexp.Regexp
	types     []TypePattern
	lengths   map[int]struct{}
	lengthSeq []int // sorted, for enumeration
}

// MatchesLength reports whether n is a valid national significant number
// length for the region.
func (r *Region) MatchesLength(n int) bool {
	_, ok := r.lengths[n]
	return ok
}

// PossibleLengths returns the valid digit counts in ascending order.
func (r *Region) PossibleLengths() []int {
	out := make([]int, len(r.lengthSeq))
	copy(out, r.lengthSeq)
	return out
}

// MatchesGeneral reports whether the national significant number fully
// matches the region's general pattern.
func (r *Region) MatchesGeneral(nsn string) bool {
	return r.general.MatchString(nsn)
}

// ClassifyType returns the number type of a national significant number
// according to the region's labeled sub-patterns, or TypeUnknown when the
// plan does not distinguish subtypes.
func (r *Region) ClassifyType(nsn string) NumberType {
	for _, tp := range r.types {
		if tp.pattern.MatchString(nsn) {
			return tp.Type
		}
	}
	return TypeUnknown
}

// StripNationalPrefix removes the region's national prefix from the digit
// sequence when present. The prefix is never required.
func (r *Region) StripNationalPrefix(digits string) string {
	if r.NationalPrefix == "" {
		return digits
	}
	if rest, ok := strings.CutPrefix(digits, r.NationalPrefix); ok && rest != "" {
		return rest
	}
	return digits
}

// Store is the immutable numbering plan table. It is built once by Load and
// safe for concurrent readers without locking.
type Store struct {
	regions   []*Region
	byCode    map[string]*Region
	byCalling map[int][]*Region
}

// Region looks up a region by its code (case-insensitive).
func (s *Store) Region(code string) (*Region, bool) {
	r, ok := s.byCode[strings.ToUpper(code)]
	return r, ok
}

// HasCallingCode reports whether the calling code is registered.
func (s *Store) HasCallingCode(code int) bool {
	_, ok := s.byCalling[code]
	return ok
}

// RegionsForCallingCode returns every region sharing the calling code, main
// region first, then remaining regions in stable document order. The
// returned slice is shared and must not be modified.
func (s *Store) RegionsForCallingCode(code int) []*Region {
	return s.byCalling[code]
}

// Regions enumerates all regions in stable document order. The returned
// slice is shared and must not be modified.
func (s *Store) Regions() []*Region {
	return s.regions
}

// CallingCodeCount returns the number of distinct registered calling codes.
func (s *Store) CallingCodeCount() int {
	return len(s.byCalling)
}
