// Package cmd provides the CLI commands for roofquote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roofquote/internal/config"
	"roofquote/internal/logging"
)

var (
	cfgFile    string
	catalogDir string
	verbose    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "roofquote",
	Short: "Price quotes for custom sheet-metal roof accessories",
	Long: `roofquote prices chase covers, decorative shrouds, and multi-flue caps
from the tiered pricing catalog.

Examples:
  roofquote serve
  roofquote quote --product flat_top --metal stainless --tier vg --length 40 --width 20
  roofquote factors`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional)")
	rootCmd.PersistentFlags().StringVar(&catalogDir, "catalog", "", "catalog override directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(factorsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if catalogDir != "" {
		cfg.Catalog.Dir = catalogDir
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("roofquote version 1.0.0")
	},
}
