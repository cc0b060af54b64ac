// Package engine implements the phone number validation engine: a pure,
// synchronous pipeline that turns loosely formatted text into a structurally
// validated, internationally unambiguous phone number and renders it back
// into canonical display forms.
//
// The pipeline runs strictly forward: normalize → resolve calling code →
// match candidate regions → format. The numbering plan store is read-only,
// so Validate is safe for arbitrarily many concurrent callers and is a pure
// function of its inputs.
package engine

import (
	"errors"

	"phonecheck_backend/internal/numbering/plan"
)

// RegionUnknown is reported when a calling code resolved but no region's
// pattern matched the remaining digits.
const RegionUnknown = "unknown"

var (
	// ErrEmptyInput is returned when the input contains no digits after
	// formatting noise is removed.
	ErrEmptyInput = errors.New("input contains no digits")

	// ErrAmbiguousRegion is returned when no country code prefix, no IDD
	// prefix and no default region is available to resolve the number.
	ErrAmbiguousRegion = errors.New("region cannot be determined: dial with + or supply a default region")
)

// ParsedNumber is the structural result of a validation attempt. It carries
// plain identifiers only, so numbering plan reloads never invalidate it.
type ParsedNumber struct {
	RawInput                  string
	CountryCallingCode        int
	RegionCode                string
	NationalSignificantNumber string
	Type                      plan.NumberType
	Valid                     bool
}

// Result is a ParsedNumber plus canonical renderings. The format fields are
// populated only for valid numbers.
type Result struct {
	Number        ParsedNumber
	National      string
	International string
}

// Engine composes the validation pipeline over an immutable plan store.
type Engine struct {
	store *plan.Store
}

// New creates an engine over the given numbering plan store.
func New(store *plan.Store) *Engine {
	return &Engine{store: store}
}

// Store exposes the underlying plan store for enumeration (directory,
// tooling, tests).
func (e *Engine) Store() *plan.Store {
	return e.store
}

// Validate parses and validates raw user input. defaultRegion may be empty
// when the input carries its own country code prefix.
//
// A number that is well-formed but matches no region's plan is a successful
// result with Valid=false; only empty input and an unresolvable region are
// errors.
func (e *Engine) Validate(raw, defaultRegion string) (*Result, error) {
	norm, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	res, err := e.resolve(norm, defaultRegion)
	if err != nil {
		return nil, err
	}

	parsed := e.match(raw, res)
	out := &Result{Number: parsed}
	if parsed.Valid {
		f := e.format(parsed)
		out.National = f.National
		out.International = f.International
	}
	return out, nil
}
