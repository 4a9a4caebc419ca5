// Engine: the request orchestrator. Classifies, resolves the tier once,
// dispatches to exactly one pricer, attaches the shroud add-on line when a
// chase cover request also carries a shroud signal, and applies the finish
// surcharge last.
package quote

import (
	"go.uber.org/zap"

	"roofquote/core/catalog"
	"roofquote/core/tier"
	"roofquote/internal/errors"
)

// CatalogProvider yields the active catalog snapshot. A request reads it
// once and keeps the same snapshot for its whole computation.
type CatalogProvider interface {
	Current() *catalog.Catalog
}

// Engine computes quotes against the active catalog snapshot
type Engine struct {
	catalogs CatalogProvider
	logger   *zap.Logger
}

// NewEngine creates an engine
func NewEngine(catalogs CatalogProvider, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{catalogs: catalogs, logger: logger}
}

// Quote prices one request. All returned errors are *errors.Error; the
// caller maps them to HTTP statuses.
func (e *Engine) Quote(req *Request) (*Quote, error) {
	cat := e.catalogs.Current()
	res := tier.Resolve(req.Tier, cat.TierMultipliers)

	family := Classify(req)
	if family == FamilyUnknown {
		if req.Product == "" {
			return nil, errors.New(errors.CodeMissingProduct, "no product token and no implicit chase cover signal")
		}
		return nil, errors.Newf(errors.CodeUnknownProduct, "unknown product type").
			WithDetail("product", req.Product)
	}

	var (
		q   *Quote
		err error
	)
	switch family {
	case FamilyChaseCover:
		q, err = e.priceChaseCoverWithAddOns(cat, req, res)
	case FamilyShroud:
		q, err = PriceShroud(cat, req, res)
	case FamilyMultiFlue:
		q, err = PriceMultiFlue(cat, req, res)
	}
	if err != nil {
		return nil, err
	}

	ApplyFinish(q, req.Powdercoat)

	e.logger.Debug("quote computed",
		zap.String("family", string(family)),
		zap.String("product", q.Product),
		zap.String("tier", q.Tier),
		zap.String("metal", q.Metal),
		zap.Float64("final_price", q.FinalPrice),
		zap.Int("catalog_version", cat.Version))

	return q, nil
}

// priceChaseCoverWithAddOns runs chase cover pricing and, when the request
// also matches the shroud family (a chase cover sold beneath a shroud),
// adds the shroud table price as a line item instead of returning it
// standalone. Missing shroud configuration is still an error: prices are
// never silently dropped.
func (e *Engine) priceChaseCoverWithAddOns(cat *catalog.Catalog, req *Request, res tier.Resolution) (*Quote, error) {
	q, err := PriceChaseCover(cat, req, res)
	if err != nil {
		return nil, err
	}

	if !ShroudAddOnMatches(req) {
		return q, nil
	}

	model := ShroudModelToken(req)
	price, err := lookupShroudPrice(cat, req.Metal, model, tier.LongForm(res.Key))
	if err != nil {
		return nil, err
	}

	price = round2(price)
	q.Lines = append(q.Lines, Line{
		Description: "shroud " + model,
		Amount:      price,
	})
	q.FinalPrice = round2(q.FinalPrice + price)
	q.addLine("Shroud %s add-on: %.2f", model, price)
	q.setTotal(totalText(q.FinalPrice))
	return q, nil
}
