package quote

import "testing"

func TestPowdercoatBump(t *testing.T) {
	q := &Quote{Metal: "stainless", FinalPrice: 1000}
	ApplyFinish(q, true)
	if q.FinalPrice != 1300.00 {
		t.Errorf("FinalPrice = %v, want 1300.00", q.FinalPrice)
	}
	if q.Printout == nil || q.Printout.Total != "Total Price (with Powdercoat): 1300.00" {
		t.Errorf("printout total not rewritten: %+v", q.Printout)
	}
}

// The modifier runs once per request; a second application must not
// compound to 1690.
func TestPowdercoatNotReentrant(t *testing.T) {
	q := &Quote{Metal: "stainless", FinalPrice: 1000}
	ApplyFinish(q, true)
	ApplyFinish(q, true)
	if q.FinalPrice != 1300.00 {
		t.Errorf("FinalPrice after double apply = %v, want 1300.00", q.FinalPrice)
	}
}

func TestPowdercoatOnlyStainlessFamily(t *testing.T) {
	for _, metalKey := range []string{"galvanized", "copper", "aluminum"} {
		q := &Quote{Metal: metalKey, FinalPrice: 1000}
		ApplyFinish(q, true)
		if q.FinalPrice != 1000 {
			t.Errorf("%s: FinalPrice = %v, want 1000 (no bump)", metalKey, q.FinalPrice)
		}
	}

	q := &Quote{Metal: "ss", FinalPrice: 200}
	ApplyFinish(q, true)
	if q.FinalPrice != 260.00 {
		t.Errorf("ss: FinalPrice = %v, want 260.00", q.FinalPrice)
	}
}

func TestPowdercoatNotRequested(t *testing.T) {
	q := &Quote{Metal: "stainless", FinalPrice: 1000}
	ApplyFinish(q, false)
	if q.FinalPrice != 1000 {
		t.Errorf("FinalPrice = %v, want 1000", q.FinalPrice)
	}
}
