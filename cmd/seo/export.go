package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	seo "github.com/eringen/pubengine-seo"
)

var exportCmd = &cobra.Command{
	Use:   "export <id>...",
	Short: "Print records as the export operation sees them after the SEO hook",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 0, len(args))
		for _, a := range args {
			id, err := strconv.ParseInt(a, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", a)
			}
			ids = append(ids, id)
		}

		m, store, err := openModule()
		if err != nil {
			return err
		}
		defer store.Close()

		ev := seo.ExportEvent{Records: make(map[int64]*seo.ExportRecord, len(ids))}
		for _, id := range ids {
			ev.Records[id] = &seo.ExportRecord{ID: id}
		}
		if err := seo.Dispatch(cmd.Context(), m.Table(), seo.PageExport, nil, &ev); err != nil {
			return err
		}

		out := make([]*seo.ExportRecord, 0, len(ids))
		for _, id := range ids {
			out = append(out, ev.Records[id])
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
