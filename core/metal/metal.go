// Package metal normalizes free-form metal tokens into canonical keys.
// The pricing tables are indexed by these keys; everything upstream of the
// pricers funnels through Normalize so a front-end sending "Stainless Steel",
// "ss", or "SS304" lands on the same table node.
package metal

import (
	"regexp"
	"strings"
)

// Canonical metal keys used across the pricing catalog.
const (
	Stainless  = "stainless"
	Copper     = "copper"
	Galvanized = "galvanized"
	Galvalume  = "galvalume"
	Aluminum   = "aluminum"
	Kynar      = "kynar"
)

var aliasIndex = map[string]string{
	"ss":              Stainless,
	"stainless":       Stainless,
	"stainless steel": Stainless,
	"stainless-steel": Stainless,
	"304":             Stainless,
	"ss304":           Stainless,
	"316":             Stainless,
	"cop":             Copper,
	"copper":          Copper,
	"cu":              Copper,
	"galv":            Galvanized,
	"galvanized":      Galvanized,
	"g90":             Galvanized,
	"galvalume":       Galvalume,
	"gal":             Galvalume,
	"alum":            Aluminum,
	"aluminum":        Aluminum,
	"aluminium":       Aluminum,
	"kynar":           Kynar,
	"paint grip":      Kynar,
	"paintgrip":       Kynar,
}

// Premium metals carry higher hole and unsquare surcharges on chase covers.
// The predicate is a policy constant, not derived from catalog data.
var premiumPattern = regexp.MustCompile(`(?i)^(ss|stainless|cop|copper)`)

// Stainless-family match used by the powdercoat finish surcharge.
var stainlessPattern = regexp.MustCompile(`(?i)(ss|stainless)`)

// Normalize maps a raw metal token to its canonical key.
// Unknown tokens pass through lowercased/trimmed so table lookups can still
// succeed on catalogs authored with non-standard keys.
func Normalize(raw string) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return ""
	}
	if key, ok := aliasIndex[token]; ok {
		return key
	}
	// Try prefix aliases: "stainless 24ga" etc.
	for alias, key := range aliasIndex {
		if len(alias) >= 3 && strings.HasPrefix(token, alias) {
			return key
		}
	}
	return token
}

// IsPremium reports whether the key is in the stainless or copper family
func IsPremium(key string) bool {
	return premiumPattern.MatchString(key)
}

// IsStainless reports whether the key is in the stainless family
func IsStainless(key string) bool {
	return stainlessPattern.MatchString(key)
}
