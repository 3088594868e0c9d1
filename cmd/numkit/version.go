package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/numkit/internal/precision"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			arbitrary := "enabled"
			if !precision.ArbitraryAvailable {
				arbitrary = "disabled (built with nodecimal)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "numkit %s\ncommit: %s\nbuilt: %s\narbitrary decimals: %s\n", version, commit, date, arbitrary)
			return nil
		},
	}

	return cmd
}
