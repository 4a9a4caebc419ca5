package quote

import (
	"testing"

	"roofquote/core/catalog"
	"roofquote/core/tier"
	"roofquote/internal/errors"
)

func eliteRes() tier.Resolution {
	return tier.Resolution{Key: tier.Elite, Multiplier: 1}
}

// Spec'd additivity case: base 500, premium metal, 3 holes, unsquare.
func TestChaseCoverSurchargeAdditivity(t *testing.T) {
	cat := newTestCatalog()
	q, err := PriceChaseCover(cat, &Request{
		Product:  "chase_cover",
		Metal:    "stainless",
		RawMetal: "stainless",
		Length:   floatPtr(40),
		Width:    floatPtr(20),
		Holes:    intPtr(3),
		Unsquare: true,
	}, eliteRes())
	if err != nil {
		t.Fatalf("PriceChaseCover: %v", err)
	}

	if q.BasePrice != 500 {
		t.Errorf("BasePrice = %v, want 500", q.BasePrice)
	}
	// 2 extra holes x 45 + unsquare 85
	if q.FinalPrice != 675.00 {
		t.Errorf("FinalPrice = %v, want 675.00", q.FinalPrice)
	}
	if q.TierMultiplier != 1 {
		t.Errorf("TierMultiplier = %v, want 1 (matrix already tier-scoped)", q.TierMultiplier)
	}
}

func TestChaseCoverStandardMetalRates(t *testing.T) {
	cat := newTestCatalog()
	q, err := PriceChaseCover(cat, &Request{
		Product:  "chase_cover",
		Metal:    "galvanized",
		RawMetal: "galvanized",
		Length:   floatPtr(30),
		Width:    floatPtr(15),
		Holes:    intPtr(2),
		Unsquare: true,
	}, eliteRes())
	if err != nil {
		t.Fatalf("PriceChaseCover: %v", err)
	}

	// 1 extra hole x 25 + unsquare 60 on a 300 base
	if q.FinalPrice != 385.00 {
		t.Errorf("FinalPrice = %v, want 385.00", q.FinalPrice)
	}
}

// Growing either dimension never moves a request into a smaller category.
func TestChaseCoverSizeMonotonicity(t *testing.T) {
	cat := newTestCatalog()
	order := map[string]int{}
	for i, c := range catalog.SizeOrder {
		order[string(c)] = i
	}

	previous := -1
	for _, length := range []float64{20, 38, 45, 58, 80} {
		q, err := PriceChaseCover(cat, &Request{
			Product:  "chase_cover",
			Metal:    "stainless",
			RawMetal: "stainless",
			Length:   floatPtr(length),
			Width:    floatPtr(15),
		}, eliteRes())
		if err != nil {
			t.Fatalf("length %v: %v", length, err)
		}
		rank := order[q.SizeCategory]
		if rank < previous {
			t.Errorf("length %v landed in %s, smaller than previous category", length, q.SizeCategory)
		}
		previous = rank
	}
}

// The dimension row is the smallest skirt threshold covering the effective
// skirt; deeper skirts tighten the length/width limits.
func TestChaseCoverSkirtRowSelection(t *testing.T) {
	cat := newTestCatalog()

	// 38x19 fits small at skirt 4 (40x20) but not at skirt 8 (36x18).
	q, err := PriceChaseCover(cat, &Request{
		Product:  "chase_cover",
		Metal:    "stainless",
		RawMetal: "stainless",
		Length:   floatPtr(38),
		Width:    floatPtr(19),
		Skirt:    floatPtr(3),
	}, eliteRes())
	if err != nil {
		t.Fatalf("shallow skirt: %v", err)
	}
	if q.SizeCategory != string(catalog.SizeSmall) {
		t.Errorf("shallow skirt category = %s, want small", q.SizeCategory)
	}

	q, err = PriceChaseCover(cat, &Request{
		Product:  "chase_cover",
		Metal:    "stainless",
		RawMetal: "stainless",
		Length:   floatPtr(38),
		Width:    floatPtr(19),
		Skirt:    floatPtr(7),
	}, eliteRes())
	if err != nil {
		t.Fatalf("deep skirt: %v", err)
	}
	if q.SizeCategory != string(catalog.SizeMedium) {
		t.Errorf("deep skirt category = %s, want medium", q.SizeCategory)
	}
}

// Corbel effective skirt = skirt + nailing flange + base overhang + 1.
func TestChaseCoverCorbelEffectiveSkirt(t *testing.T) {
	cat := newTestCatalog()

	// skirt 2 + flange 2 + overhang 2 + 1 = 7 -> row at threshold 8.
	q, err := PriceChaseCover(cat, &Request{
		Product:       "corbel chase",
		Metal:         "stainless",
		RawMetal:      "stainless",
		Length:        floatPtr(38),
		Width:         floatPtr(19),
		Skirt:         floatPtr(2),
		NailingFlange: floatPtr(2),
		BaseOverhang:  floatPtr(2),
	}, eliteRes())
	if err != nil {
		t.Fatalf("corbel: %v", err)
	}
	if q.SizeCategory != string(catalog.SizeMedium) {
		t.Errorf("corbel category = %s, want medium (effective skirt 7)", q.SizeCategory)
	}
}

func TestChaseCoverHoleTypePolicy(t *testing.T) {
	cat := newTestCatalog()

	price := func(req *Request) float64 {
		t.Helper()
		q, err := PriceChaseCover(cat, req, eliteRes())
		if err != nil {
			t.Fatalf("PriceChaseCover: %v", err)
		}
		return q.FinalPrice
	}
	base := func() *Request {
		return &Request{
			Product:  "chase_cover",
			Metal:    "stainless",
			RawMetal: "stainless",
			Length:   floatPtr(30),
			Width:    floatPtr(15),
		}
	}

	// center/single/offset/absent imply one hole: no surcharge.
	for _, holeType := range []string{"", "center", "single", "offset"} {
		req := base()
		req.HoleType = holeType
		if got := price(req); got != 500 {
			t.Errorf("holeType %q: price %v, want 500", holeType, got)
		}
	}

	// offset-multi defaults to 2 holes.
	req := base()
	req.HoleType = "offset-multi"
	if got := price(req); got != 545 {
		t.Errorf("offset-multi default: price %v, want 545", got)
	}

	// offset-multi with an explicit multi count.
	req = base()
	req.HoleType = "offset-multi"
	req.MultiHoleCount = intPtr(4)
	if got := price(req); got != 635 {
		t.Errorf("offset-multi x4: price %v, want 635", got)
	}
}

func TestChaseCoverErrors(t *testing.T) {
	cat := newTestCatalog()

	_, err := PriceChaseCover(cat, &Request{Product: "chase_cover", Metal: "stainless", RawMetal: "stainless"}, eliteRes())
	if !errors.IsCode(err, errors.CodeBadDimensions) {
		t.Errorf("missing dimensions: got %v, want BAD_DIMENSIONS", err)
	}

	_, err = PriceChaseCover(cat, &Request{
		Product: "chase_cover", Metal: "stainless", RawMetal: "stainless",
		Length: floatPtr(40), Width: floatPtr(20),
	}, tier.Resolution{Key: tier.Gold, Multiplier: 0.95})
	if !errors.IsCode(err, errors.CodeInvalidTier) {
		t.Errorf("missing tier slice: got %v, want INVALID_TIER", err)
	}

	_, err = PriceChaseCover(cat, &Request{
		Product: "chase_cover", Metal: "copper", RawMetal: "copper",
		Length: floatPtr(40), Width: floatPtr(20),
	}, eliteRes())
	if !errors.IsCode(err, errors.CodeInvalidMetal) {
		t.Errorf("missing metal: got %v, want INVALID_METAL", err)
	}
	if e, _ := errors.AsError(err); e.Details["availableMetals"] == nil {
		t.Error("INVALID_METAL should list available metals")
	}

	_, err = PriceChaseCover(cat, &Request{
		Product: "chase_cover", Metal: "stainless", RawMetal: "stainless",
		Length: floatPtr(500), Width: floatPtr(200),
	}, eliteRes())
	if !errors.IsCode(err, errors.CodeSizeBucketUnresolved) {
		t.Errorf("oversized: got %v, want SIZE_BUCKET_UNRESOLVED", err)
	}
}
