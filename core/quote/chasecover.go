// Chase cover pricing: bucket-based. A size category is selected from the
// tiered dimension tables, then per-feature surcharges are added.
package quote

import (
	"strings"

	"roofquote/core/catalog"
	"roofquote/core/metal"
	"roofquote/core/tier"
	"roofquote/internal/errors"
)

// Surcharge policy constants. These are pricing policy, not catalog data.
const (
	holeRatePremium     = 45.0
	holeRateStandard    = 25.0
	unsquareFeePremium  = 85.0
	unsquareFeeStandard = 60.0
)

// PriceChaseCover prices a chase cover request against the tier/metal
// dimension matrix.
func PriceChaseCover(cat *catalog.Catalog, req *Request, res tier.Resolution) (*Quote, error) {
	if !validNumber(req.Length) || !validNumber(req.Width) {
		return nil, errors.New(errors.CodeBadDimensions, "length and width must be valid numbers")
	}
	length, width := *req.Length, *req.Width

	longTier := tier.LongForm(res.Key)
	slice, ok := cat.ChaseTierSlice(longTier)
	if !ok {
		return nil, errors.Newf(errors.CodeInvalidTier, "no chase cover pricing for tier %q", longTier).
			WithDetail("tier", longTier)
	}

	// Raw metal key first, then the normalized key.
	metalKey := req.RawMetal
	buckets, ok := slice[metalKey]
	if !ok {
		metalKey = req.Metal
		buckets, ok = slice[metalKey]
	}
	if !ok {
		return nil, errors.Newf(errors.CodeInvalidMetal, "metal %q not priced for tier %q", req.Metal, longTier).
			WithDetail("availableMetals", cat.MetalsForTier(longTier))
	}

	effSkirt := effectiveSkirt(req)
	category, bucket, ok := selectBucket(buckets, length, width, effSkirt)
	if !ok {
		return nil, errors.Newf(errors.CodeSizeBucketUnresolved, "no size category fits %gx%g with skirt %g", length, width, effSkirt).
			WithDetail("length", length).
			WithDetail("width", width)
	}

	holeCount := resolveHoleCount(req)
	extraHoles := holeCount - 1
	if extraHoles < 0 {
		extraHoles = 0
	}

	premium := metal.IsPremium(metalKey)
	holeRate := holeRateStandard
	unsquareFee := unsquareFeeStandard
	if premium {
		holeRate = holeRatePremium
		unsquareFee = unsquareFeePremium
	}

	holesSurcharge := float64(extraHoles) * holeRate
	var unsquareSurcharge float64
	if req.Unsquare {
		unsquareSurcharge = unsquareFee
	}

	q := &Quote{
		Product:        productOrDefault(req, "chase_cover"),
		Tier:           longTier,
		TierMultiplier: 1, // matrix prices are already tier-scoped
		Metal:          metalKey,
		SizeCategory:   string(category),
		BasePrice:      bucket.BasePrice,
		FinalPrice:     round2(bucket.BasePrice + holesSurcharge + unsquareSurcharge),
	}
	if holesSurcharge > 0 {
		q.Adjustments = append(q.Adjustments, Component{Name: "extra_holes", Amount: holesSurcharge})
	}
	if unsquareSurcharge > 0 {
		q.Adjustments = append(q.Adjustments, Component{Name: "unsquare", Amount: unsquareSurcharge})
	}

	q.addLine("Chase Cover %s (%s, %s tier): %.2f", category, metalKey, longTier, bucket.BasePrice)
	if holesSurcharge > 0 {
		q.addLine("Extra holes x%d: %.2f", extraHoles, holesSurcharge)
	}
	if unsquareSurcharge > 0 {
		q.addLine("Unsquare: %.2f", unsquareSurcharge)
	}
	q.setTotal(totalText(q.FinalPrice))

	return q, nil
}

// effectiveSkirt computes the skirt depth used for row selection. The corbel
// variant folds the nailing flange and base overhang in, plus one inch.
func effectiveSkirt(req *Request) float64 {
	skirt := floatOrZero(req.Skirt)
	if !strings.Contains(req.Product, "corbel") {
		return skirt
	}
	return skirt + floatOrZero(req.NailingFlange) + floatOrZero(req.BaseOverhang) + 1
}

// selectBucket walks size categories in fixed priority order. Within a
// category the dimension row is the smallest skirt threshold >= the
// effective skirt, or the last row when none qualifies.
func selectBucket(buckets catalog.ChaseCoverMetal, length, width, effSkirt float64) (catalog.SizeCategory, catalog.SizeBucket, bool) {
	for _, category := range catalog.SizeOrder {
		bucket, ok := buckets[category]
		if !ok || bucket.BasePrice <= 0 || len(bucket.Dimensions) == 0 {
			continue
		}
		row := bucket.Dimensions[len(bucket.Dimensions)-1]
		for _, candidate := range bucket.Dimensions {
			if candidate.SkirtThreshold >= effSkirt {
				row = candidate
				break
			}
		}
		if length <= row.MaxLength && width <= row.MaxWidth {
			return category, bucket, true
		}
	}
	return "", catalog.SizeBucket{}, false
}

// resolveHoleCount applies the hole-count policy: an explicit count wins;
// "offset-multi" uses the multi-hole count or defaults to 2; anything else
// (center, single, offset, absent) means 1.
func resolveHoleCount(req *Request) int {
	if req.Holes != nil && *req.Holes > 0 {
		return *req.Holes
	}
	if strings.EqualFold(strings.TrimSpace(req.HoleType), "offset-multi") {
		if req.MultiHoleCount != nil && *req.MultiHoleCount > 0 {
			return *req.MultiHoleCount
		}
		return 2
	}
	return 1
}

func productOrDefault(req *Request, def string) string {
	if req.Product != "" {
		return req.Product
	}
	return def
}

func floatOrZero(v *float64) float64 {
	if !validNumber(v) {
		return 0
	}
	return *v
}
