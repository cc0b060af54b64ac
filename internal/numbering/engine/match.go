package engine

import "phonecheck_backend/internal/numbering/plan"

// match tests the national digits against each candidate region in priority
// order. The first region whose length and general pattern checks pass wins.
// A region's national prefix is stripped when present, never required.
//
// No match is a normal outcome, not an error: the result keeps the resolved
// calling code (when one was found) and reports RegionUnknown.
func (e *Engine) match(raw string, r resolution) ParsedNumber {
	for _, region := range r.candidates {
		nsn := region.StripNationalPrefix(r.national)
		if !region.MatchesLength(len(nsn)) {
			continue
		}
		if !region.MatchesGeneral(nsn) {
			continue
		}
		return ParsedNumber{
			RawInput:                  raw,
			CountryCallingCode:        region.CallingCode,
			RegionCode:                region.Code,
			NationalSignificantNumber: nsn,
			Type:                      region.ClassifyType(nsn),
			Valid:                     true,
		}
	}

	return ParsedNumber{
		RawInput:                  raw,
		CountryCallingCode:        r.callingCode,
		RegionCode:                RegionUnknown,
		NationalSignificantNumber: r.national,
		Type:                      plan.TypeUnknown,
	}
}
