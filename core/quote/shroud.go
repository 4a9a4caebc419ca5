// Shroud pricing: a straight model x metal x tier table lookup.
// The table is tier-scoped at authoring time, so no multiplier applies on
// top - applying one again is the historical bug this code exists to avoid.
package quote

import (
	"roofquote/core/catalog"
	"roofquote/core/tier"
	"roofquote/internal/errors"
)

// PriceShroud prices a decorative shroud. Length/width are accepted on the
// request but table-based models ignore them.
func PriceShroud(cat *catalog.Catalog, req *Request, res tier.Resolution) (*Quote, error) {
	model := ShroudModelToken(req)
	longTier := tier.LongForm(res.Key)

	price, err := lookupShroudPrice(cat, req.Metal, model, longTier)
	if err != nil {
		return nil, err
	}

	q := &Quote{
		Product:        productOrDefault(req, "shroud"),
		Tier:           longTier,
		TierMultiplier: 1,
		Metal:          req.Metal,
		Model:          model,
		BasePrice:      price,
		FinalPrice:     round2(price), // defensive re-round; table is authored to cents
	}
	q.addLine("Shroud %s (%s, %s tier): %.2f", model, req.Metal, longTier, q.FinalPrice)
	q.setTotal(totalText(q.FinalPrice))
	return q, nil
}

// lookupShroudPrice resolves the three table levels, failing with a
// descriptive missing-configuration error rather than defaulting to zero.
func lookupShroudPrice(cat *catalog.Catalog, metalKey, model, longTier string) (float64, error) {
	price, haveMetal, haveModel, havePrice := cat.ShroudPrice(metalKey, model, longTier)
	switch {
	case !haveMetal:
		return 0, errors.Newf(errors.CodeMissingShroudConfig, "no shroud pricing for metal %q", metalKey).
			WithDetail("metal", metalKey)
	case !haveModel:
		return 0, errors.Newf(errors.CodeMissingShroudConfig, "no shroud pricing for model %q in %s", model, metalKey).
			WithDetail("model", model).
			WithDetail("availableModels", cat.ShroudModels(metalKey))
	case !havePrice:
		return 0, errors.Newf(errors.CodeMissingShroudConfig, "shroud %s/%s has no %s tier price", metalKey, model, longTier).
			WithDetail("tier", longTier)
	}
	return price, nil
}
