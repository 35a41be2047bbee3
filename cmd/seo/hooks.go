package main

import (
	"fmt"

	"github.com/spf13/cobra"

	seo "github.com/eringen/pubengine-seo"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "List the events the SEO module subscribes to",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		t := seo.New(seo.Config{}).Table()
		for _, k := range t.Keys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-40s %d\n", k, t.Len(k))
		}
	},
}

func init() {
	rootCmd.AddCommand(hooksCmd)
}
