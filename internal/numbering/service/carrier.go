package service

import "math/rand"

// CarrierEstimator supplies a cosmetic carrier label for a region. Real
// carrier attribution requires licensed number-portability data, which this
// service does not have: any estimate produced here is decorative guesswork,
// must be labeled as such in responses, and is never derived from the
// validation result. The engine itself stays deterministic; this decoration
// lives entirely in the service layer and is off unless configured.
type CarrierEstimator interface {
	// Estimate returns a carrier guess for the region, and false when the
	// estimator has no entry for it.
	Estimate(regionCode string) (string, bool)
}

// HeuristicCarriers picks a pseudo-random name from a short hand-curated
// list per region.
type HeuristicCarriers struct {
	rng      *rand.Rand
	byRegion map[string][]string
}

// NewHeuristicCarriers creates the built-in estimator. The random source is
// injected so tests can pin it.
func NewHeuristicCarriers(rng *rand.Rand) *HeuristicCarriers {
	return &HeuristicCarriers{rng: rng, byRegion: carrierHints}
}

// Estimate implements CarrierEstimator.
func (h *HeuristicCarriers) Estimate(regionCode string) (string, bool) {
	names := h.byRegion[regionCode]
	if len(names) == 0 {
		return "", false
	}
	return names[h.rng.Intn(len(names))], true
}

var carrierHints = map[string][]string{
	"US": {"Verizon", "AT&T", "T-Mobile"},
	"GB": {"EE", "O2", "Vodafone", "Three"},
	"DE": {"Telekom", "Vodafone", "O2"},
	"FR": {"Orange", "SFR", "Bouygues", "Free"},
	"IN": {"Jio", "Airtel", "Vi"},
	"BR": {"Vivo", "Claro", "TIM"},
	"RU": {"MTS", "MegaFon", "Beeline"},
	"JP": {"NTT Docomo", "au", "SoftBank"},
}
