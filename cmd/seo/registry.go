package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eringen/pubengine-seo/registry"
)

var setCmd = &cobra.Command{
	Use:   "set <id> <name> <value>",
	Short: "Store a registry property of a record",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		_, store, err := openModule()
		if err != nil {
			return err
		}
		defer store.Close()
		return store.Set(cmd.Context(), id, args[1], args[2])
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id> <name>",
	Short: "Print a registry property of a record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		_, store, err := openModule()
		if err != nil {
			return err
		}
		defer store.Close()
		value, err := store.Get(cmd.Context(), id, args[1])
		if errors.Is(err, registry.ErrNotFound) {
			return fmt.Errorf("%s is not set for record %d", args[1], id)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd, getCmd)
}
