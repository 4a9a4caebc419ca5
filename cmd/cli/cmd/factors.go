package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"roofquote/core/catalog"
	"roofquote/internal/config"
)

var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "Dump the multi-flue factor table as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(config.Get().Catalog.Dir)
		if err != nil {
			return err
		}

		out := struct {
			CatalogHash string              `json:"catalogHash"`
			Rows        []catalog.FactorRow `json:"rows"`
		}{cat.ContentHash, cat.FactorRows}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}
