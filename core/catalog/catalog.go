// Package catalog holds the immutable pricing tables.
//
// A Catalog is a sealed point-in-time snapshot: it is built once (from the
// built-in dataset, optionally overridden by JSON files), content-hashed,
// and never mutated afterward. Request handlers only ever see a snapshot
// reference; reloads build a complete new Catalog and swap it atomically.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"roofquote/core/tier"
)

// SizeCategory is a discrete chase cover price bucket
type SizeCategory string

// Size categories in fixed priority order. Bucket selection walks this
// sequence and the first category whose dimension limits accommodate the
// request wins.
const (
	SizeSmall       SizeCategory = "small"
	SizeMedium      SizeCategory = "medium"
	SizeLargeNoSeam SizeCategory = "large_no_seam"
	SizeLargeSeam   SizeCategory = "large_seam"
	SizeExtraLarge  SizeCategory = "extra_large"
)

// SizeOrder is the bucket walk order for chase cover pricing
var SizeOrder = []SizeCategory{SizeSmall, SizeMedium, SizeLargeNoSeam, SizeLargeSeam, SizeExtraLarge}

// DimensionRow is one skirt-depth row inside a size bucket
type DimensionRow struct {
	// SkirtThreshold is the maximum skirt depth this row covers
	SkirtThreshold float64 `json:"skirtThreshold"`

	// MaxLength is the largest length the bucket accepts at this skirt depth
	MaxLength float64 `json:"maxLength"`

	// MaxWidth is the largest width the bucket accepts at this skirt depth
	MaxWidth float64 `json:"maxWidth"`
}

// SizeBucket is a priced chase cover size category.
// Dimensions are ordered by ascending SkirtThreshold.
type SizeBucket struct {
	BasePrice  float64        `json:"basePrice"`
	Dimensions []DimensionRow `json:"dimensions"`
}

// ChaseCoverMetal maps size category -> bucket for one tier/metal pair
type ChaseCoverMetal map[SizeCategory]SizeBucket

// ChaseCoverMatrix maps long-form tier -> metal key -> buckets
type ChaseCoverMatrix map[string]map[string]ChaseCoverMetal

// ShroudTable maps metal key -> model name -> long-form tier -> price.
// Prices are tier-scoped at authoring time; no multiplier applies on top.
type ShroudTable map[string]map[string]map[string]float64

// LinearRule is a per-dimension multi-flue adjustment:
// ((value - Standard) / Interval) * Rate, zero when Interval is zero.
type LinearRule struct {
	Standard float64 `json:"standard"`
	Interval float64 `json:"interval"`
	Rate     float64 `json:"rate"`
}

// PitchRule is the two-sided pitch adjustment. The threshold is authored
// catalog data, never inferred.
type PitchRule struct {
	Threshold float64 `json:"threshold"`
	Below     float64 `json:"below"`
	Above     float64 `json:"above"`
}

// Adjustments holds the dimensional adjustment rules of a factor row
type Adjustments struct {
	Screen   LinearRule `json:"screen"`
	Overhang LinearRule `json:"overhang"`
	Inset    LinearRule `json:"inset"`
	Skirt    LinearRule `json:"skirt"`
	Pitch    PitchRule  `json:"pitch"`
}

// FactorRow is a multi-flue base factor keyed by metal and product.
// Rows are authored at the elite tier; requested tiers are served by
// discrepancy deltas and the final multiplier, never by extra rows.
type FactorRow struct {
	Metal       string      `json:"metal"`
	Product     string      `json:"product"`
	Tier        string      `json:"tier"`
	Factor      float64     `json:"factor"`
	Adjustments Adjustments `json:"adjustments"`
}

// DiscrepancyDeltas maps metal -> product -> short tier key -> delta
// applied on top of the elite base factor.
type DiscrepancyDeltas map[string]map[string]map[tier.Key]float64

// Catalog is an immutable pricing snapshot
type Catalog struct {
	// Version increments on every reload within a process
	Version int `json:"version"`

	// ContentHash is the SHA-256 of the table payload
	ContentHash string `json:"contentHash"`

	// LoadedAt records when this snapshot was built
	LoadedAt time.Time `json:"loadedAt"`

	TierMultipliers map[tier.Key]float64 `json:"tiers"`
	ChaseCovers     ChaseCoverMatrix     `json:"chaseCovers"`
	Shrouds         ShroudTable          `json:"shrouds"`
	FactorRows      []FactorRow          `json:"multiFactors"`
	Deltas          DiscrepancyDeltas    `json:"multiDiscrepancies"`
}

// Seal computes the content hash over the table payload. Called once by
// the loader after all tables are in place.
func (c *Catalog) Seal() {
	payload, _ := json.Marshal(struct {
		Tiers   map[tier.Key]float64 `json:"tiers"`
		Chase   ChaseCoverMatrix     `json:"chase"`
		Shrouds ShroudTable          `json:"shrouds"`
		Factors []FactorRow          `json:"factors"`
		Deltas  DiscrepancyDeltas    `json:"deltas"`
	}{c.TierMultipliers, c.ChaseCovers, c.Shrouds, c.FactorRows, c.Deltas})
	sum := sha256.Sum256(payload)
	c.ContentHash = hex.EncodeToString(sum[:])
	if c.LoadedAt.IsZero() {
		c.LoadedAt = time.Now().UTC()
	}
}

// FindFactorRow returns the elite-tier factor row for a metal/product pair.
// Lookup is always anchored at elite; rows with an empty tier are treated as
// elite, rows keyed on any other tier never match.
func (c *Catalog) FindFactorRow(metalKey, product string) (FactorRow, bool) {
	m := strings.ToLower(metalKey)
	p := strings.ToLower(product)
	for _, row := range c.FactorRows {
		rowTier := strings.ToLower(row.Tier)
		if rowTier == "" {
			rowTier = "elite"
		}
		if rowTier != "elite" {
			continue
		}
		if strings.ToLower(row.Metal) == m && strings.ToLower(row.Product) == p {
			return row, true
		}
	}
	return FactorRow{}, false
}

// Delta returns the discrepancy delta for a requested tier.
// Elite always contributes zero; missing entries default to zero.
func (c *Catalog) Delta(metalKey, product string, key tier.Key) float64 {
	if key == tier.Elite {
		return 0
	}
	products, ok := c.Deltas[strings.ToLower(metalKey)]
	if !ok {
		return 0
	}
	deltas, ok := products[strings.ToLower(product)]
	if !ok {
		return 0
	}
	return deltas[key]
}

// ChaseTierSlice returns the chase cover matrix slice for a long-form tier
func (c *Catalog) ChaseTierSlice(longTier string) (map[string]ChaseCoverMetal, bool) {
	slice, ok := c.ChaseCovers[longTier]
	return slice, ok
}

// MetalsForTier lists the metal keys available in a chase cover tier slice,
// sorted for stable error payloads.
func (c *Catalog) MetalsForTier(longTier string) []string {
	slice, ok := c.ChaseCovers[longTier]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(slice))
	for k := range slice {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ShroudPrice looks up a tier-scoped shroud price. The boolean results report
// which level of the table resolved, so callers can build precise errors.
func (c *Catalog) ShroudPrice(metalKey, model, longTier string) (price float64, haveMetal, haveModel, havePrice bool) {
	models, ok := c.Shrouds[strings.ToLower(metalKey)]
	if !ok {
		return 0, false, false, false
	}
	tiers, ok := models[strings.ToLower(model)]
	if !ok {
		return 0, true, false, false
	}
	p, ok := tiers[longTier]
	if !ok {
		return 0, true, true, false
	}
	return p, true, true, true
}

// ShroudModels lists model names present for a metal, sorted
func (c *Catalog) ShroudModels(metalKey string) []string {
	models, ok := c.Shrouds[strings.ToLower(metalKey)]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
