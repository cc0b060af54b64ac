package engine

import (
	"strconv"
	"strings"

	"phonecheck_backend/internal/numbering/plan"
)

// Common IDD dial-out prefixes accepted in place of a typed +. Longer
// prefixes are tried first so "011" is never read as "00" + "1".
var iddPrefixes = []string{"011", "00"}

// resolution is the calling-code resolver's output: the candidate regions
// to try, in priority order, and the digits remaining after the calling
// code was stripped.
type resolution struct {
	callingCode int // 0 when an international prefix resolved no known code
	national    string
	candidates  []*plan.Region
}

// resolve maps the normalized digits to candidate (calling code, region)
// pairs. With an explicit + or a detected IDD prefix the calling code is
// matched greedily, longest first (3 → 1 digits); calling codes are
// prefix-free across lengths, so the first length that matches wins.
// Without either, the default region's calling code is the only candidate.
func (e *Engine) resolve(n normalized, defaultRegion string) (resolution, error) {
	digits := n.digits
	international := n.explicitPlus

	if !international && defaultRegion == "" {
		rest, ok := stripIDD(digits)
		if !ok {
			return resolution{}, ErrAmbiguousRegion
		}
		digits = rest
		international = true
	}

	if international {
		return e.resolveInternational(digits), nil
	}

	region, ok := e.store.Region(strings.ToUpper(defaultRegion))
	if !ok {
		return resolution{}, ErrAmbiguousRegion
	}
	return resolution{
		callingCode: region.CallingCode,
		national:    digits,
		candidates:  []*plan.Region{region},
	}, nil
}

func (e *Engine) resolveInternational(digits string) resolution {
	// No calling code starts with 0.
	if digits[0] != '0' {
		for l := 3; l >= 1; l-- {
			if len(digits) <= l {
				continue
			}
			code, err := strconv.Atoi(digits[:l])
			if err != nil || !e.store.HasCallingCode(code) {
				continue
			}
			return resolution{
				callingCode: code,
				national:    digits[l:],
				candidates:  e.store.RegionsForCallingCode(code),
			}
		}
	}
	// Unknown calling code: not an error, the matcher reports an invalid
	// result with the digits intact.
	return resolution{national: digits}
}

// stripIDD removes a leading international dial-out prefix, if present, and
// reports whether one was found.
func stripIDD(digits string) (string, bool) {
	for _, idd := range iddPrefixes {
		if rest, ok := strings.CutPrefix(digits, idd); ok && rest != "" {
			return rest, true
		}
	}
	return digits, false
}
