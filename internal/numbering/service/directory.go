package service

// Directory supplies the cosmetic region tables consumed by UIs: display
// names and example numbers. None of this is required for validation
// correctness; the engine never reads it.
type Directory struct {
	names    map[string]string
	examples map[string][]string
}

// NewDirectory creates the built-in region directory. It covers every
// region shipped in the embedded numbering plan.
func NewDirectory() *Directory {
	return &Directory{names: regionNames, examples: exampleNumbers}
}

// Name returns the display name for a region code, falling back to the code
// itself for regions the directory does not know.
func (d *Directory) Name(regionCode string) string {
	if name, ok := d.names[regionCode]; ok {
		return name
	}
	return regionCode
}

// Examples returns dialable example numbers for a region, for UI shortcut
// buttons. The returned slice is shared and must not be modified.
func (d *Directory) Examples(regionCode string) []string {
	return d.examples[regionCode]
}

var regionNames = map[string]string{
	"US": "United States",
	"BS": "Bahamas",
	"DO": "Dominican Republic",
	"RU": "Russia",
	"KZ": "Kazakhstan",
	"GB": "United Kingdom",
	"DE": "Germany",
	"FR": "France",
	"NL": "Netherlands",
	"ES": "Spain",
	"IT": "Italy",
	"IN": "India",
	"BR": "Brazil",
	"JP": "Japan",
	"AU": "Australia",
	"SG": "Singapore",
	"MX": "Mexico",
	"ZA": "South Africa",
	"IE": "Ireland",
	"PT": "Portugal",
	"UA": "Ukraine",
	"NG": "Nigeria",
}

// Example numbers use ranges reserved for fiction or documentation where a
// region defines them. Every entry validates against the embedded plan to
// its own region (covered by tests).
var exampleNumbers = map[string][]string{
	"US": {"+1 201-555-0123", "+1 555-123-4567"},
	"BS": {"+1 242-359-1234"},
	"DO": {"+1 809-234-5678"},
	"RU": {"+7 912 345-67-89"},
	"KZ": {"+7 701 234 5678"},
	"GB": {"+44 20 7946 0958", "+44 7911 123456"},
	"DE": {"+49 1512 3456789", "+49 30 901820"},
	"FR": {"+33 6 12 34 56 78"},
	"NL": {"+31 6 12345678"},
	"ES": {"+34 612 34 56 78"},
	"IT": {"+39 312 345 6789"},
	"IN": {"+91 98765 43210"},
	"BR": {"+55 11 96123-4567"},
	"JP": {"+81 90-1234-5678"},
	"AU": {"+61 412 345 678"},
	"SG": {"+65 8123 4567"},
	"MX": {"+52 55 1234 5678"},
	"ZA": {"+27 82 123 4567"},
	"IE": {"+353 85 123 4567"},
	"PT": {"+351 912 345 678"},
	"UA": {"+380 50 123 45 67"},
	"NG": {"+234 802 123 4567"},
}
