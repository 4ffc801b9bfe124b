package domain

import "strings"

var countryFlags = map[string]string{
	"england":       "\U0001F3F4\U000E0067\U000E0062\U000E0065\U000E006E\U000E0067\U000E007F",
	"scotland":      "\U0001F3F4\U000E0067\U000E0062\U000E0073\U000E0063\U000E0074\U000E007F",
	"spain":         "\U0001F1EA\U0001F1F8",
	"germany":       "\U0001F1E9\U0001F1EA",
	"italy":         "\U0001F1EE\U0001F1F9",
	"france":        "\U0001F1EB\U0001F1F7",
	"portugal":      "\U0001F1F5\U0001F1F9",
	"netherlands":   "\U0001F1F3\U0001F1F1",
	"belgium":       "\U0001F1E7\U0001F1EA",
	"turkey":        "\U0001F1F9\U0001F1F7",
	"brazil":        "\U0001F1E7\U0001F1F7",
	"argentina":     "\U0001F1E6\U0001F1F7",
	"usa":           "\U0001F1FA\U0001F1F8",
	"united states": "\U0001F1FA\U0001F1F8",
	"mexico":        "\U0001F1F2\U0001F1FD",
	"japan":         "\U0001F1EF\U0001F1F5",
	"south korea":   "\U0001F1F0\U0001F1F7",
	"australia":     "\U0001F1E6\U0001F1FA",
	"saudi arabia":  "\U0001F1F8\U0001F1E6",
	"europe":        "\U0001F1EA\U0001F1FA",
	"world":         "\U0001F30D",
	"international": "\U0001F30D",
}

// CountryFlag resolves a country name to its flag glyph, falling back
// to a neutral flag for countries outside the fixed map.
func CountryFlag(country string) string {
	if flag, ok := countryFlags[strings.ToLower(strings.TrimSpace(country))]; ok {
		return flag
	}
	return "\U0001F3F3\uFE0F"
}
