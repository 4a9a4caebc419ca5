// Finish surcharge: the powdercoat bump. Pure post-processing, applied
// exactly once per request, strictly after family pricing and the
// multi-flue tier multiplier.
package quote

import (
	"fmt"

	"roofquote/core/metal"
)

// powdercoatMultiplier is the flat stainless-family finish surcharge
const powdercoatMultiplier = 1.3

// ApplyFinish applies the powdercoat surcharge when requested and the
// quote's metal is in the stainless family. Idempotent: a quote that has
// already been through here is never bumped again.
func ApplyFinish(q *Quote, powdercoat bool) {
	if q.finishApplied {
		return
	}
	q.finishApplied = true

	if !powdercoat || !metal.IsStainless(q.Metal) {
		return
	}

	q.FinalPrice = round2(q.FinalPrice * powdercoatMultiplier)
	q.setTotal(fmt.Sprintf("Total Price (with Powdercoat): %.2f", q.FinalPrice))
}

func totalText(v float64) string {
	return fmt.Sprintf("Total Price: %.2f", v)
}
