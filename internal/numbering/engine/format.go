package engine

import "fmt"

// formatted holds the canonical display renderings of a valid number.
type formatted struct {
	National      string
	International string
}

// format renders a valid parsed number using the region's format rules,
// evaluated in declared order; the first rule whose leading-digits pattern
// matches supplies the templates. When no rule matches, or the digit count
// does not satisfy the selected rule's capture structure, the undivided
// national number is used.
func (e *Engine) format(p ParsedNumber) formatted {
	nsn := p.NationalSignificantNumber
	intl := fmt.Sprintf("+%d %s", p.CountryCallingCode, nsn)

	region, ok := e.store.Region(p.RegionCode)
	if !ok {
		return formatted{National: nsn, International: intl}
	}

	national, international := nsn, nsn
	for i := range region.Formats {
		rule := &region.Formats[i]
		if !rule.MatchesLeading(nsn) {
			continue
		}
		if nat, ok := rule.Render(nsn, rule.National); ok {
			national = nat
			international, _ = rule.Render(nsn, rule.International)
		}
		break
	}

	return formatted{
		National:      prependNationalPrefix(region.NationalPrefix, national),
		International: fmt.Sprintf("+%d %s", p.CountryCallingCode, international),
	}
}

// prependNationalPrefix re-adds the domestically dialed prefix. Digit-initial
// renderings join directly ("0" + "30 901820" → "030 901820"); otherwise a
// space keeps the prefix legible ("1" + "(555) 123-4567").
func prependNationalPrefix(prefix, national string) string {
	if prefix == "" || national == "" {
		return national
	}
	if national[0] >= '0' && national[0] <= '9' {
		return prefix + national
	}
	return prefix + " " + national
}
