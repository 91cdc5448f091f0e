package cmd

import (
	"github.com/spf13/cobra"

	"tokswap.dev/pkg/tokswap/internal/domain"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [path]",
		Short: "Count matches without changing the document",
		Long:  scanLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Scan(domain.ScanArgs{
				Config: runConfigFromFlags(args[0]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
