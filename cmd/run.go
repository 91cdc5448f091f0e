package cmd

import (
	"github.com/spf13/cobra"

	"tokswap.dev/pkg/tokswap/internal/domain"
)

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [path]",
		Short: "Replace the match token throughout a document",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Run(domain.RunArgs{
				Config: runConfigFromFlags(args[0]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
