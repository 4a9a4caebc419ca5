// Built-in authoritative pricing dataset.
// This is the source of truth when no override files are present. Prices are
// authored at the elite tier; the remaining tiers are derived with the scale
// table below, matching how the shop's price book is maintained.
package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"roofquote/core/metal"
	"roofquote/core/tier"
)

// defaultTierMultipliers feed multi-flue pricing only
var defaultTierMultipliers = map[tier.Key]float64{
	tier.Elite:     1.0,
	tier.Gold:      0.95,
	tier.Silver:    0.90,
	tier.Value:     0.85,
	tier.Builder:   0.80,
	tier.Homeowner: 0.75,
}

// tierScale derives the chase cover and shroud tier-scoped tables from the
// elite price book
var tierScale = map[string]float64{
	"elite":     1.00,
	"gold":      0.95,
	"silver":    0.90,
	"value":     0.85,
	"builder":   0.80,
	"homeowner": 0.75,
}

// Elite chase cover price book, per metal. Dimensions in inches,
// rows ordered by ascending skirt threshold.
var chaseCoverEliteBook = map[string]ChaseCoverMetal{
	metal.Stainless: {
		SizeSmall: {BasePrice: 259, Dimensions: []DimensionRow{
			{SkirtThreshold: 4, MaxLength: 40, MaxWidth: 24},
			{SkirtThreshold: 6, MaxLength: 38, MaxWidth: 22},
			{SkirtThreshold: 8, MaxLength: 36, MaxWidth: 20},
		}},
		SizeMedium: {BasePrice: 319, Dimensions: []DimensionRow{
			{SkirtThreshold: 4, MaxLength: 60, MaxWidth: 32},
			{SkirtThreshold: 6, MaxLength: 58, MaxWidth: 30},
			{SkirtThreshold: 8, MaxLength: 56, MaxWidth: 28},
		}},
		SizeLargeNoSeam: {BasePrice: 399, Dimensions: []DimensionRow{
			{SkirtThreshold: 4, MaxLength: 75, MaxWidth: 40},
			{SkirtThreshold: 6, MaxLength: 73, MaxWidth: 38},
			{SkirtThreshold: 8, MaxLength: 71, MaxWidth: 36},
		}},
		SizeLargeSeam: {BasePrice: 499, Dimensions: []DimensionRow{
			{SkirtThreshold: 4, MaxLength: 90, MaxWidth: 48},
			{SkirtThreshold: 6, MaxLength: 88, MaxWidth: 46},
			{SkirtThreshold: 8, MaxLength: 86, MaxWidth: 44},
		}},
		SizeExtraLarge: {BasePrice: 629, Dimensions: []DimensionRow{
			{SkirtThreshold: 4, MaxLength: 120, MaxWidth: 60},
			{SkirtThreshold: 6, MaxLength: 118, MaxWidth: 58},
			{SkirtThreshold: 8, MaxLength: 116, MaxWidth: 56},
		}},
	},
	metal.Galvanized: {
		SizeSmall: {BasePrice: 185, Dimensions: []DimensionRow{
			{SkirtThreshold: 4, MaxLength: 40, MaxWidth: 24},
			{SkirtThreshold: 6, MaxLength: 38, MaxWidth: 22},
			{SkirtThreshold: 8, MaxLength: 36, MaxWidth: 20},
		}},
		SizeMedium: {BasePrice: 229, Dimensions: []DimensionRow{
			{SkirtThreshold: 4, MaxLength: 60, MaxWidth: 32},
			{SkirtThreshold: 6, MaxLength: 58, MaxWidth: 30},
			{SkirtThreshold: 8, MaxLength: 56, MaxWidth: 28},
		}},
		SizeLargeNoSeam: {BasePrice: 285, Dimensions: []DimensionRow{
			{SkirtThreshold: 4, MaxLength: 75, MaxWidth: 40},
			{SkirtThreshold: 6, MaxLength: 73, MaxWidth: 38},
			{SkirtThreshold: 8, MaxLength: 71, MaxWidth: 36},
		}},
		SizeLargeSeam: {BasePrice: 355, Dimensions: []DimensionRow{
			{SkirtThreshold: 4, MaxLength: 90, MaxWidth: 48},
			{SkirtThreshold: 6, MaxLength: 88, MaxWidth: 46},
			{SkirtThreshold: 8, MaxLength: 86, MaxWidth: 44},
		}},
		SizeExtraLarge: {BasePrice: 449, Dimensions: []DimensionRow{
			{SkirtThreshold: 4, MaxLength: 120, MaxWidth: 60},
			{SkirtThreshold: 6, MaxLength: 118, MaxWidth: 58},
			{SkirtThreshold: 8, MaxLength: 116, MaxWidth: 56},
		}},
	},
	metal.Copper: {
		SizeSmall: {BasePrice: 465, Dimensions: []DimensionRow{
			{SkirtThreshold: 4, MaxLength: 40, MaxWidth: 24},
			{SkirtThreshold: 6, MaxLength: 38, MaxWidth: 22},
			{SkirtThreshold: 8, MaxLength: 36, MaxWidth: 20},
		}},
		SizeMedium: {BasePrice: 575, Dimensions: []DimensionRow{
			{SkirtThreshold: 4, MaxLength: 60, MaxWidth: 32},
			{SkirtThreshold: 6, MaxLength: 58, MaxWidth: 30},
			{SkirtThreshold: 8, MaxLength: 56, MaxWidth: 28},
		}},
		SizeLargeNoSeam: {BasePrice: 719, Dimensions: []DimensionRow{
			{SkirtThreshold: 4, MaxLength: 75, MaxWidth: 40},
			{SkirtThreshold: 6, MaxLength: 73, MaxWidth: 38},
			{SkirtThreshold: 8, MaxLength: 71, MaxWidth: 36},
		}},
		SizeLargeSeam: {BasePrice: 899, Dimensions: []DimensionRow{
			{SkirtThreshold: 4, MaxLength: 90, MaxWidth: 48},
			{SkirtThreshold: 6, MaxLength: 88, MaxWidth: 46},
			{SkirtThreshold: 8, MaxLength: 86, MaxWidth: 44},
		}},
		SizeExtraLarge: {BasePrice: 1135, Dimensions: []DimensionRow{
			{SkirtThreshold: 4, MaxLength: 120, MaxWidth: 60},
			{SkirtThreshold: 6, MaxLength: 118, MaxWidth: 58},
			{SkirtThreshold: 8, MaxLength: 116, MaxWidth: 56},
		}},
	},
}

// Elite shroud price book. Decorative shrouds price purely by
// model x metal x tier; dimensions are accepted on input but unused.
var shroudEliteBook = map[string]map[string]float64{
	metal.Stainless: {
		"prince":      745,
		"princess":    795,
		"durham":      895,
		"centurion":   985,
		"monaco":      995,
		"regal":       1050,
		"majesty":     1095,
		"temptress":   1150,
		"dynasty":     1195,
		"mountaineer": 1250,
		"royale":      1295,
		"imperial":    1395,
		"monarch":     1495,
		"emperor":     1695,
	},
	metal.Copper: {
		"prince":      1415,
		"princess":    1510,
		"durham":      1700,
		"centurion":   1870,
		"monaco":      1890,
		"regal":       1995,
		"majesty":     2080,
		"temptress":   2185,
		"dynasty":     2270,
		"mountaineer": 2375,
		"royale":      2460,
		"imperial":    2650,
		"monarch":     2840,
		"emperor":     3220,
	},
}

// standardAdjustments are shared by every default factor row
var standardAdjustments = Adjustments{
	Screen:   LinearRule{Standard: 8, Interval: 1, Rate: 15},
	Overhang: LinearRule{Standard: 5, Interval: 1, Rate: 10},
	Inset:    LinearRule{Standard: 0, Interval: 1, Rate: 8},
	Skirt:    LinearRule{Standard: 6, Interval: 2, Rate: 12},
	Pitch:    PitchRule{Threshold: 6, Below: 0, Above: 45},
}

// Elite multi-flue factor rows, metal x product
var defaultFactorRows = []FactorRow{
	{Metal: metal.Stainless, Product: "flat_top", Tier: "elite", Factor: 585, Adjustments: standardAdjustments},
	{Metal: metal.Stainless, Product: "hip", Tier: "elite", Factor: 745, Adjustments: standardAdjustments},
	{Metal: metal.Stainless, Product: "ridge", Tier: "elite", Factor: 695, Adjustments: standardAdjustments},
	{Metal: metal.Galvanized, Product: "flat_top", Tier: "elite", Factor: 425, Adjustments: standardAdjustments},
	{Metal: metal.Galvanized, Product: "hip", Tier: "elite", Factor: 545, Adjustments: standardAdjustments},
	{Metal: metal.Galvanized, Product: "ridge", Tier: "elite", Factor: 505, Adjustments: standardAdjustments},
	{Metal: metal.Copper, Product: "flat_top", Tier: "elite", Factor: 1095, Adjustments: standardAdjustments},
	{Metal: metal.Copper, Product: "hip", Tier: "elite", Factor: 1395, Adjustments: standardAdjustments},
	{Metal: metal.Copper, Product: "ridge", Tier: "elite", Factor: 1295, Adjustments: standardAdjustments},
}

// Per-tier corrections on top of the elite factor. These reconcile the
// published tier sheets against what the scaled factors would predict.
var defaultDeltas = DiscrepancyDeltas{
	metal.Stainless: {
		"flat_top": {tier.Gold: -12.5, tier.Silver: -22, tier.Value: -31.5, tier.Builder: -40, tier.Homeowner: -47.5},
		"hip":      {tier.Gold: -16, tier.Silver: -28, tier.Value: -40, tier.Builder: -51, tier.Homeowner: -60.5},
		"ridge":    {tier.Gold: -15, tier.Silver: -26, tier.Value: -37.5, tier.Builder: -47.5, tier.Homeowner: -56.5},
	},
	metal.Galvanized: {
		"flat_top": {tier.Gold: -9, tier.Silver: -16, tier.Value: -23, tier.Builder: -29, tier.Homeowner: -34.5},
		"hip":      {tier.Gold: -11.5, tier.Silver: -20.5, tier.Value: -29.5, tier.Builder: -37, tier.Homeowner: -44},
		"ridge":    {tier.Gold: -10.5, tier.Silver: -19, tier.Value: -27.5, tier.Builder: -34.5, tier.Homeowner: -41},
	},
	metal.Copper: {
		"flat_top": {tier.Gold: -23.5, tier.Silver: -41, tier.Value: -59, tier.Builder: -75, tier.Homeowner: -89},
		"hip":      {tier.Gold: -30, tier.Silver: -52.5, tier.Value: -75, tier.Builder: -95.5, tier.Homeowner: -113},
		"ridge":    {tier.Gold: -28, tier.Silver: -48.5, tier.Value: -70, tier.Builder: -88.5, tier.Homeowner: -105},
	},
}

// Defaults builds the built-in catalog. Each call returns a fresh,
// independent snapshot; callers may override tables before sealing.
func Defaults() *Catalog {
	c := &Catalog{
		Version:         1,
		LoadedAt:        time.Now().UTC(),
		TierMultipliers: make(map[tier.Key]float64, len(defaultTierMultipliers)),
		ChaseCovers:     make(ChaseCoverMatrix, len(tierScale)),
		Shrouds:         make(ShroudTable, len(shroudEliteBook)),
		FactorRows:      append([]FactorRow(nil), defaultFactorRows...),
		Deltas:          defaultDeltas,
	}

	for k, v := range defaultTierMultipliers {
		c.TierMultipliers[k] = v
	}

	for longTier, scale := range tierScale {
		slice := make(map[string]ChaseCoverMetal, len(chaseCoverEliteBook))
		for metalKey, buckets := range chaseCoverEliteBook {
			scaled := make(ChaseCoverMetal, len(buckets))
			for category, bucket := range buckets {
				scaled[category] = SizeBucket{
					BasePrice:  scalePrice(bucket.BasePrice, scale),
					Dimensions: append([]DimensionRow(nil), bucket.Dimensions...),
				}
			}
			slice[metalKey] = scaled
		}
		c.ChaseCovers[longTier] = slice
	}

	for metalKey, models := range shroudEliteBook {
		table := make(map[string]map[string]float64, len(models))
		for model, base := range models {
			tiers := make(map[string]float64, len(tierScale))
			for longTier, scale := range tierScale {
				tiers[longTier] = scalePrice(base, scale)
			}
			table[model] = tiers
		}
		c.Shrouds[metalKey] = table
	}

	c.Seal()
	return c
}

func scalePrice(base, scale float64) float64 {
	d := decimal.NewFromFloat(base).Mul(decimal.NewFromFloat(scale)).Round(2)
	f, _ := d.Float64()
	return f
}
