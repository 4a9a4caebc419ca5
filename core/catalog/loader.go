// Catalog loading: built-in dataset plus optional JSON override files.
// Overrides replace whole tables, never merge into them - a partial file
// can't produce a half-updated table.
package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"roofquote/core/tier"
)

// Override file names recognized inside the catalog directory.
const (
	tiersFile   = "tiers.json"
	chaseFile   = "chase_covers.json"
	shroudsFile = "shrouds.json"
	factorsFile = "multi_factors.json"
	deltasFile  = "multi_discrepancies.json"
)

// Load builds a sealed catalog. An empty dir means built-in data only.
// Any present override file must parse and validate; a broken file fails the
// whole load rather than serving a partial catalog.
func Load(dir string) (*Catalog, error) {
	c := Defaults()

	if dir != "" {
		if err := applyOverrides(c, dir); err != nil {
			return nil, err
		}
	}

	c.Seal()
	if err := Validate(c); err != nil {
		return nil, eris.Wrap(err, "catalog validation failed")
	}
	return c, nil
}

func applyOverrides(c *Catalog, dir string) error {
	var tiers map[tier.Key]float64
	if ok, err := readOverride(dir, tiersFile, &tiers); err != nil {
		return err
	} else if ok {
		c.TierMultipliers = tiers
	}

	var chase ChaseCoverMatrix
	if ok, err := readOverride(dir, chaseFile, &chase); err != nil {
		return err
	} else if ok {
		c.ChaseCovers = chase
	}

	var shrouds ShroudTable
	if ok, err := readOverride(dir, shroudsFile, &shrouds); err != nil {
		return err
	} else if ok {
		c.Shrouds = shrouds
	}

	var factors []FactorRow
	if ok, err := readOverride(dir, factorsFile, &factors); err != nil {
		return err
	} else if ok {
		c.FactorRows = factors
	}

	var deltas DiscrepancyDeltas
	if ok, err := readOverride(dir, deltasFile, &deltas); err != nil {
		return err
	} else if ok {
		c.Deltas = deltas
	}

	return nil
}

// readOverride reads one optional override file. Returns false when the file
// does not exist.
func readOverride(dir, name string, out interface{}) (bool, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, eris.Wrapf(err, "read catalog override %s", path)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, eris.Wrapf(err, "decode catalog override %s", path)
	}
	return true, nil
}
