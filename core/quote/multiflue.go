// Multi-flue pricing: formula-based. The base factor is always fetched at
// the elite tier; the requested tier contributes only the discrepancy delta
// and the final multiplier. The multiplier is applied exactly once, after
// every additive adjustment.
package quote

import (
	"roofquote/core/catalog"
	"roofquote/core/tier"
	"roofquote/internal/errors"
)

// PriceMultiFlue prices a flat_top/hip/ridge multi-flue cap
func PriceMultiFlue(cat *catalog.Catalog, req *Request, res tier.Resolution) (*Quote, error) {
	row, ok := cat.FindFactorRow(req.Metal, req.Product)
	if !ok {
		return nil, errors.Newf(errors.CodeNoFactorFound, "no factor found for %s (%s)", req.Product, req.Metal).
			WithDetail("product", req.Product).
			WithDetail("metal", req.Metal)
	}

	delta := cat.Delta(req.Metal, req.Product, res.Key)
	baseFactor := round4(row.Factor + delta)

	adj := row.Adjustments
	components := []Component{
		{Name: "screen", Amount: linearAdjustment(req.Screen, adj.Screen)},
		{Name: "overhang", Amount: linearAdjustment(req.Overhang, adj.Overhang)},
		{Name: "inset", Amount: linearAdjustment(req.Inset, adj.Inset)},
		{Name: "skirt", Amount: linearAdjustment(req.Skirt, adj.Skirt)},
		{Name: "pitch", Amount: pitchAdjustment(req.Pitch, adj.Pitch)},
	}

	raw := baseFactor
	var breakdown []Component
	for _, c := range components {
		raw += c.Amount
		if c.Amount != 0 {
			breakdown = append(breakdown, c)
		}
	}

	q := &Quote{
		Product:        req.Product,
		Tier:           string(res.Key),
		TierMultiplier: res.Multiplier,
		Metal:          req.Metal,
		BasePrice:      baseFactor,
		Adjustments:    breakdown,
		FinalPrice:     round2(raw * res.Multiplier),
	}

	q.addLine("Multi-Flue %s (%s): base factor %.4f", req.Product, req.Metal, baseFactor)
	for _, c := range breakdown {
		q.addLine("Adjustment %s: %.2f", c.Name, c.Amount)
	}
	if res.Multiplier != 1 {
		q.addLine("Tier %s multiplier: %.2f", res.Key, res.Multiplier)
	}
	q.setTotal(totalText(q.FinalPrice))

	return q, nil
}

// linearAdjustment: ((value - standard) / interval) * rate.
// Zero when the rule has no interval or the value is absent. Values below
// the standard legitimately produce negative adjustments.
func linearAdjustment(value *float64, rule catalog.LinearRule) float64 {
	if rule.Interval == 0 || !validNumber(value) {
		return 0
	}
	return ((*value - rule.Standard) / rule.Interval) * rule.Rate
}

// pitchAdjustment applies the two-sided threshold rule. The threshold is
// catalog-authored; strictly below it picks the Below amount.
func pitchAdjustment(value *float64, rule catalog.PitchRule) float64 {
	if !validNumber(value) {
		return 0
	}
	if *value < rule.Threshold {
		return rule.Below
	}
	return rule.Above
}
