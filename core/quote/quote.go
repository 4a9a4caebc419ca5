// Package quote implements the pricing resolution engine: classification
// into a product family, tier-aware table lookups, dimensional adjustments,
// and the cross-cutting finish surcharge, in a fixed family-dependent order.
package quote

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Request is a normalized quoting request. The API layer coalesces field
// aliases and normalizes the metal token before anything here runs.
type Request struct {
	// Product is the lowercased product token; may be empty for the
	// implicit chase cover form
	Product string

	// Metal is the normalized metal key; RawMetal keeps the caller's token
	// for raw-first table lookups
	Metal    string
	RawMetal string

	// Tier is the raw tier token; resolution is the engine's job
	Tier string

	// Powdercoat requests the stainless finish surcharge
	Powdercoat bool

	// Chase cover and multi-flue dimensions
	Length *float64
	Width  *float64
	Skirt  *float64

	// Chase cover hole signals
	Holes          *int
	HoleType       string
	MultiHoleCount *int

	// Unsquare chase cover flag
	Unsquare bool

	// Corbel-variant skirt additions
	NailingFlange *float64
	BaseOverhang  *float64

	// Shroud model name
	Model string

	// Multi-flue continuous dimensions
	Screen   *float64
	Overhang *float64
	Inset    *float64
	Pitch    *float64
}

// Component is one line of the adjustments breakdown
type Component struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Line is an add-on line item (a shroud sold on top of a chase cover)
type Line struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Printout is the human-readable quote summary
type Printout struct {
	Lines []string `json:"lines"`
	Total string   `json:"total"`
}

// Quote is the priced result for one request. The legacy duplicate "price"
// field is emitted only at the serialization boundary; internally FinalPrice
// is the single canonical total.
type Quote struct {
	Product        string      `json:"product"`
	Tier           string      `json:"tier"`
	TierMultiplier float64     `json:"tierMultiplier"`
	Metal          string      `json:"metal"`
	SizeCategory   string      `json:"sizeCategory,omitempty"`
	Model          string      `json:"model,omitempty"`
	BasePrice      float64     `json:"basePrice"`
	Adjustments    []Component `json:"adjustments,omitempty"`
	Lines          []Line      `json:"lines,omitempty"`
	FinalPrice     float64     `json:"finalPrice"`
	Printout       *Printout   `json:"printout,omitempty"`

	finishApplied bool
}

// setTotal rewrites the printout total line
func (q *Quote) setTotal(text string) {
	if q.Printout == nil {
		q.Printout = &Printout{}
	}
	q.Printout.Total = text
}

// addLine appends a printout line
func (q *Quote) addLine(format string, args ...interface{}) {
	if q.Printout == nil {
		q.Printout = &Printout{}
	}
	q.Printout.Lines = append(q.Printout.Lines, fmt.Sprintf(format, args...))
}

// round2 rounds to cents. Monetary values are rounded only at the point
// they become final.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// round4 rounds factor precision (multi-flue base factor after delta)
func round4(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(4).Float64()
	return f
}
