package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stoned",
		Short: "Assemble StoNED frontier estimation models",
		Long: `stoned builds convex nonparametric frontier models (CNLS, CQR, CER, their
isotonic and directional-distance variants) from a CSV dataset and a YAML
run file, and exports them for an external solver.

Examples:
  stoned assemble --config run.yaml
  stoned assemble --config run.yaml --out model.jsonl.zst
  stoned assemble --config run.yaml --taus 0.1,0.5,0.9
  stoned supported`,
		Version:      version,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log at debug level")

	cmd.AddCommand(newAssembleCommand())
	cmd.AddCommand(newSupportedCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stoned version %s\n", version)
		},
	}
}
