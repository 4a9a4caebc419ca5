// Catalog validation. Runs on every load, before the snapshot can become
// active; a catalog that fails here never reaches a request.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

var knownCategories = func() map[SizeCategory]bool {
	m := make(map[SizeCategory]bool, len(SizeOrder))
	for _, c := range SizeOrder {
		m[c] = true
	}
	return m
}()

// Validate checks structural soundness of a sealed catalog
func Validate(c *Catalog) error {
	var problems []string

	if len(c.TierMultipliers) == 0 {
		problems = append(problems, "tier multiplier table is empty")
	}
	for key, mult := range c.TierMultipliers {
		if mult <= 0 {
			problems = append(problems, fmt.Sprintf("tier %q has non-positive multiplier %v", key, mult))
		}
	}

	for longTier, slice := range c.ChaseCovers {
		for metalKey, buckets := range slice {
			for category, bucket := range buckets {
				loc := fmt.Sprintf("chase %s/%s/%s", longTier, metalKey, category)
				if !knownCategories[category] {
					problems = append(problems, loc+": unknown size category")
				}
				if bucket.BasePrice < 0 {
					problems = append(problems, loc+": negative base price")
				}
				if len(bucket.Dimensions) == 0 {
					problems = append(problems, loc+": no dimension rows")
				}
				for i := 1; i < len(bucket.Dimensions); i++ {
					if bucket.Dimensions[i].SkirtThreshold < bucket.Dimensions[i-1].SkirtThreshold {
						problems = append(problems, loc+": dimension rows not ordered by skirt threshold")
						break
					}
				}
			}
		}
	}

	for metalKey, models := range c.Shrouds {
		for model, tiers := range models {
			for longTier, price := range tiers {
				if price < 0 {
					problems = append(problems, fmt.Sprintf("shroud %s/%s/%s: negative price", metalKey, model, longTier))
				}
			}
		}
	}

	seen := make(map[string]bool)
	for _, row := range c.FactorRows {
		rowTier := strings.ToLower(row.Tier)
		if rowTier == "" {
			rowTier = "elite"
		}
		if rowTier != "elite" {
			problems = append(problems, fmt.Sprintf("factor row %s/%s authored at tier %q; rows must be elite-anchored", row.Metal, row.Product, row.Tier))
		}
		key := strings.ToLower(row.Metal) + "/" + strings.ToLower(row.Product)
		if seen[key] {
			problems = append(problems, fmt.Sprintf("duplicate factor row for %s", key))
		}
		seen[key] = true
		if row.Factor < 0 {
			problems = append(problems, fmt.Sprintf("factor row %s: negative factor", key))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("%d problem(s): %s", len(problems), strings.Join(problems, "; "))
}
