package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"roofquote/core/catalog"
	"roofquote/core/metal"
	"roofquote/core/quote"
	"roofquote/internal/config"
	"roofquote/internal/logging"
)

var quoteFlags struct {
	product       string
	metalToken    string
	tierToken     string
	model         string
	holeType      string
	length        float64
	width         float64
	skirt         float64
	screen        float64
	overhang      float64
	inset         float64
	pitch         float64
	nailingFlange float64
	baseOverhang  float64
	holes         int
	multiHoles    int
	unsquare      bool
	powdercoat    bool
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a single request and print the quote as JSON",
	RunE:  runQuote,
}

func init() {
	f := quoteCmd.Flags()
	f.StringVar(&quoteFlags.product, "product", "", "product token (chase_cover, corbel, shroud, flat_top, hip, ridge, or a model name)")
	f.StringVar(&quoteFlags.metalToken, "metal", "", "metal type")
	f.StringVar(&quoteFlags.tierToken, "tier", "", "pricing tier (elite, vg, vs, val, bul, ho)")
	f.StringVar(&quoteFlags.model, "model", "", "shroud model name")
	f.StringVar(&quoteFlags.holeType, "hole-type", "", "hole type (center, single, offset, offset-multi)")
	f.Float64Var(&quoteFlags.length, "length", 0, "length in inches")
	f.Float64Var(&quoteFlags.width, "width", 0, "width in inches")
	f.Float64Var(&quoteFlags.skirt, "skirt", 0, "skirt depth in inches")
	f.Float64Var(&quoteFlags.screen, "screen", 0, "screen height (multi-flue)")
	f.Float64Var(&quoteFlags.overhang, "overhang", 0, "lid overhang (multi-flue)")
	f.Float64Var(&quoteFlags.inset, "inset", 0, "inset (multi-flue)")
	f.Float64Var(&quoteFlags.pitch, "pitch", 0, "roof pitch (multi-flue)")
	f.Float64Var(&quoteFlags.nailingFlange, "nailing-flange", 0, "nailing flange (corbel chase cover)")
	f.Float64Var(&quoteFlags.baseOverhang, "base-overhang", 0, "base overhang (corbel chase cover)")
	f.IntVar(&quoteFlags.holes, "holes", 0, "hole count")
	f.IntVar(&quoteFlags.multiHoles, "multi-hole-count", 0, "hole count for offset-multi")
	f.BoolVar(&quoteFlags.unsquare, "unsquare", false, "unsquare chase")
	f.BoolVar(&quoteFlags.powdercoat, "powdercoat", false, "apply powdercoat finish")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	cat, err := catalog.Load(cfg.Catalog.Dir)
	if err != nil {
		return err
	}

	req := &quote.Request{
		Product:    strings.ToLower(strings.TrimSpace(quoteFlags.product)),
		Metal:      metal.Normalize(quoteFlags.metalToken),
		RawMetal:   strings.ToLower(strings.TrimSpace(quoteFlags.metalToken)),
		Tier:       quoteFlags.tierToken,
		Model:      quoteFlags.model,
		HoleType:   quoteFlags.holeType,
		Unsquare:   quoteFlags.unsquare,
		Powdercoat: quoteFlags.powdercoat,
	}
	setIfChanged := func(name string, dst **float64, v *float64) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	setIfChanged("length", &req.Length, &quoteFlags.length)
	setIfChanged("width", &req.Width, &quoteFlags.width)
	setIfChanged("skirt", &req.Skirt, &quoteFlags.skirt)
	setIfChanged("screen", &req.Screen, &quoteFlags.screen)
	setIfChanged("overhang", &req.Overhang, &quoteFlags.overhang)
	setIfChanged("inset", &req.Inset, &quoteFlags.inset)
	setIfChanged("pitch", &req.Pitch, &quoteFlags.pitch)
	setIfChanged("nailing-flange", &req.NailingFlange, &quoteFlags.nailingFlange)
	setIfChanged("base-overhang", &req.BaseOverhang, &quoteFlags.baseOverhang)
	if cmd.Flags().Changed("holes") {
		req.Holes = &quoteFlags.holes
	}
	if cmd.Flags().Changed("multi-hole-count") {
		req.MultiHoleCount = &quoteFlags.multiHoles
	}

	engine := quote.NewEngine(catalog.NewStaticStore(cat), logging.Logger)
	q, err := engine.Quote(req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(q); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "final price: %.2f\n", q.FinalPrice)
	return nil
}
