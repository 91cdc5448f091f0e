package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"tokswap.dev/pkg/tokswap/internal/controller"
	"tokswap.dev/pkg/tokswap/internal/domain"
	m "tokswap.dev/pkg/tokswap/internal/model"
)

var auditFormatFlag string
var auditLastFlag int

// auditCmd represents the audit command.
var auditCmd = newAuditCmd()

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show audit records of committed runs",
		Long:  auditLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			logPath := m.Path(viper.GetString(auditLogConfigKey))
			if logPath == "" {
				return errors.New("no audit log selected: pass --audit-log or set paths.audit_log")
			}

			return workflow.Audit(domain.AuditArgs{
				LogPath: logPath,
				Format:  controller.AuditFormat(auditFormatFlag),
				Last:    auditLastFlag,
			})
		},
	}

	configureAuditFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func configureAuditFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&auditFormatFlag, formatFlagName, "f", string(controller.FormatTable), "output format: table or yaml")
	cmd.Flags().IntVarP(&auditLastFlag, lastFlagName, "n", 0, "show only the N most recent records (0 shows all)")
}
