package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stoned/frontier"
)

func newSupportedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "supported",
		Short: "List the supported model configurations",
		Long: `List every formulation/error model/returns-to-scale/loss/undesirable/isotonic
combination that can be assembled, with its model name. Both frontier
orientations (production, cost) are available for each entry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range frontier.Supported() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
