// Package transport defines the request/response types for the numbering
// module's HTTP API.
package transport

// ValidateRequest is the body of POST /phone-numbers/validate.
type ValidateRequest struct {
	// Number is the raw user-typed input; formatting noise is allowed.
	Number string `json:"number" validate:"required,max=64"`
	// DefaultRegion is the optional region hint used when the number
	// carries no country code prefix.
	DefaultRegion string `json:"default_region" validate:"omitempty,alpha,len=2"`
}

// CarrierHint is a cosmetic carrier guess. Estimated is always true: the
// value is heuristic decoration, not real carrier data.
type CarrierHint struct {
	Name      string `json:"name"`
	Estimated bool   `json:"estimated"`
}

// ValidateResponse is the outcome of a validation request. Valid=false with
// a 200 status means the input was well-formed but matches no region's
// numbering plan.
type ValidateResponse struct {
	Valid                     bool         `json:"valid"`
	CountryCallingCode        int          `json:"country_calling_code,omitempty"`
	RegionCode                string       `json:"region_code"`
	RegionName                string       `json:"region_name,omitempty"`
	NationalSignificantNumber string       `json:"national_significant_number"`
	NumberType                string       `json:"number_type"`
	NationalFormat            string       `json:"national_format,omitempty"`
	InternationalFormat       string       `json:"international_format,omitempty"`
	EstimatedCarrier          *CarrierHint `json:"estimated_carrier,omitempty"`
}

// RegionInfo describes one region of the numbering plan for UI pickers and
// example-number shortcuts.
type RegionInfo struct {
	Code               string   `json:"code"`
	Name               string   `json:"name"`
	CountryCallingCode int      `json:"country_calling_code"`
	MainForCode        bool     `json:"main_for_code"`
	PossibleLengths    []int    `json:"possible_lengths"`
	ExampleNumbers     []string `json:"example_numbers,omitempty"`
}

// RegionsResponse lists every region in stable plan order.
type RegionsResponse struct {
	Regions []RegionInfo `json:"regions"`
}
