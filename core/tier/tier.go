// Package tier resolves free-form pricing tier tokens.
//
// Tier keys form a closed set. The short keys (elite, val, vg, vs, bul, ho)
// are what the multi-flue tables and the front-end speak; the long-form names
// (elite, value, gold, silver, builder, homeowner) index the chase cover
// matrix and the shroud table. Unrecognized input silently resolves to elite
// with multiplier 1 - that is deliberate policy, never an error.
package tier

import "strings"

// Key is a canonical short tier key
type Key string

const (
	Elite     Key = "elite"
	Value     Key = "val"
	Gold      Key = "vg"
	Silver    Key = "vs"
	Builder   Key = "bul"
	Homeowner Key = "ho"
)

// Keys lists every canonical short key
var Keys = []Key{Elite, Value, Gold, Silver, Builder, Homeowner}

// aliasIndex maps every accepted token to its short key.
// Both short and long forms are accepted, plus the hyphenated
// "value-*" spellings some front-end builds send.
var aliasIndex = map[string]Key{
	"elite":        Elite,
	"val":          Value,
	"value":        Value,
	"vg":           Gold,
	"gold":         Gold,
	"value-gold":   Gold,
	"vs":           Silver,
	"silver":       Silver,
	"value-silver": Silver,
	"bul":          Builder,
	"builder":      Builder,
	"ho":           Homeowner,
	"homeowner":    Homeowner,
}

var longForms = map[Key]string{
	Elite:     "elite",
	Value:     "value",
	Gold:      "gold",
	Silver:    "silver",
	Builder:   "builder",
	Homeowner: "homeowner",
}

// Resolution is the outcome of resolving a tier token
type Resolution struct {
	// Key is the canonical short key
	Key Key

	// Multiplier is the tier pricing multiplier, used only by multi-flue
	Multiplier float64
}

// Resolve maps a tier token to its canonical key and multiplier.
// The multiplier comes from the supplied table; a resolved key with no table
// entry falls back to 1. Resolve never fails.
func Resolve(token string, multipliers map[Key]float64) Resolution {
	key, ok := aliasIndex[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		key = Elite
	}

	mult, ok := multipliers[key]
	if !ok {
		mult = 1
	}
	return Resolution{Key: key, Multiplier: mult}
}

// LongForm returns the long-form tier name used by the chase cover matrix
// and shroud table. Unknown keys map to elite.
func LongForm(k Key) string {
	if name, ok := longForms[k]; ok {
		return name
	}
	return "elite"
}
