package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	seo "github.com/eringen/pubengine-seo"
	"github.com/eringen/pubengine-seo/registry"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "seo",
	Short: "Manage the SEO properties of a pubengine site",
	Long: `seo reads and writes the SEO registry of a pubengine site
and shows what the SEO hooks add to exported pages.

Examples:
  seo set 12 document_title "Pricing"
  seo export 12 13
  seo hooks`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "seo.yaml", "config file path")
}

// openModule loads the config, opens the registry and builds the module
// around it. The caller closes the store.
func openModule() (*seo.Module, *registry.Store, error) {
	cfg, err := seo.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	store, err := registry.NewStore(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open registry: %w", err)
	}
	return seo.New(cfg, seo.WithRegistry(store)), store, nil
}
