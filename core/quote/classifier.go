// Product classification: an explicit ordered rule table.
// The order is a deliberate tie-break - corbel routes to chase cover even
// when a shroud model name is present, and implicit dimension-only requests
// are chase covers.
package quote

import (
	"math"
	"strings"
)

// Family is a product pricing family
type Family string

const (
	FamilyChaseCover Family = "chase_cover"
	FamilyShroud     Family = "shroud"
	FamilyMultiFlue  Family = "multi_flue"
	FamilyUnknown    Family = "unknown"
)

// shroudModels is the closed set of decorative model names that imply the
// shroud family without an explicit "shroud" token.
var shroudModels = []string{
	"dynasty", "majesty", "monaco", "royale", "durham", "monarch", "regal",
	"princess", "prince", "temptress", "imperial", "centurion", "mountaineer",
	"emperor",
}

type rule struct {
	family Family
	match  func(*Request) bool
}

// rules are evaluated in order; first match wins.
var rules = []rule{
	{FamilyChaseCover, matchChaseCover},
	{FamilyShroud, matchShroud},
	{FamilyMultiFlue, matchMultiFlue},
}

// Classify routes a request to exactly one pricing family
func Classify(req *Request) Family {
	for _, r := range rules {
		if r.match(req) {
			return r.family
		}
	}
	return FamilyUnknown
}

// matchChaseCover: explicit chase or corbel token, or the implicit form
// (valid length and width plus a metal, with no product token at all).
func matchChaseCover(req *Request) bool {
	if strings.Contains(req.Product, "chase") || strings.Contains(req.Product, "corbel") {
		return true
	}
	return req.Product == "" && validNumber(req.Length) && validNumber(req.Width) && req.Metal != ""
}

// matchShroud: shroud token or a known model name, unless corbel is present.
// Corbel always routes to chase cover; the shroud then prices as an add-on.
func matchShroud(req *Request) bool {
	if strings.Contains(req.Product, "corbel") {
		return false
	}
	if strings.Contains(req.Product, "shroud") {
		return true
	}
	for _, name := range shroudModels {
		if strings.Contains(req.Product, name) {
			return true
		}
	}
	return false
}

func matchMultiFlue(req *Request) bool {
	return strings.Contains(req.Product, "flat_top") ||
		strings.Contains(req.Product, "hip") ||
		strings.Contains(req.Product, "ridge")
}

// ShroudAddOnMatches reports whether a chase cover request also carries a
// shroud signal (chase cover sold as an add-on beneath a shroud).
func ShroudAddOnMatches(req *Request) bool {
	if strings.Contains(req.Product, "shroud") {
		return true
	}
	for _, name := range shroudModels {
		if strings.Contains(req.Product, name) {
			return true
		}
	}
	return false
}

// ShroudModelToken extracts the model name from the request: the explicit
// model field wins, then the first model name embedded in the product token.
func ShroudModelToken(req *Request) string {
	if req.Model != "" {
		return strings.ToLower(strings.TrimSpace(req.Model))
	}
	for _, name := range shroudModels {
		if strings.Contains(req.Product, name) {
			return name
		}
	}
	return req.Product
}

func validNumber(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
