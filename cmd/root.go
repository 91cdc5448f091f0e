// Package cmd provides the root command and CLI setup for tokswap.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"tokswap.dev/pkg/tokswap/internal/adapter"
	"tokswap.dev/pkg/tokswap/internal/controller"
	"tokswap.dev/pkg/tokswap/internal/domain"
	m "tokswap.dev/pkg/tokswap/internal/model"
)

var fsAdapter adapter.DocumentFS
var auditStore adapter.AuditStore
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// matchTokenFlag and replacementFlag define the literal rewrite pair.
var matchTokenFlag string
var replacementFlag string

// auditLogFlag overrides the audit log destination; empty derives it from the
// document path.
var auditLogFlag string

// stagingFlag overrides where the staging artifact is created.
var stagingFlag string

// bufferLinesFlag caps how many rewritten lines wait in memory for the writer.
var bufferLinesFlag int

// plainFlag forces the non-interactive UI even on a terminal.
var plainFlag bool

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		configureLogger("", viper.GetBool(logVerboseKey))

		interactive := controller.IsTTY(os.Stdout) && !viper.GetBool(uiPlainConfigKey)
		ui = controller.NewUI(cmd, interactive)
		workflow = domain.NewWorkflow(auditStore, ui, orchestrator)
	}

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalDocumentFS()
	auditStore = adapter.NewLocalAuditStore()
	orchestrator = domain.NewOrchestrator(fsAdapter, auditStore)
	workflow = domain.NewWorkflow(auditStore, ui, orchestrator)
}

const tokenSourceHelp = `The match token is taken from --token, the TOKSWAP_MATCH_TOKEN environment
variable, or the match.token key in tokswap.yaml, in that order.`

const rootLongDescription = `Tokswap replaces every occurrence of a literal token in a text document.

Documents are streamed line by line, so they never load fully into memory.
The rewritten content replaces the original in a single atomic rename and
every committed run is appended to an audit log.

` + tokenSourceHelp

const runLongDescription = `Replace every occurrence of the match token in the document at the given
path and commit the result atomically. A failed run leaves the document
untouched.

` + tokenSourceHelp

const scanLongDescription = `Count what a run would replace without changing the document. The scan
reports the total occurrences and the 1-based numbers of the lines that
contain the match token.

` + tokenSourceHelp

const auditLongDescription = `Render the audit records of previously committed runs, oldest first. The
log location comes from --audit-log or the paths.audit_log config key.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokswap",
		Short: "Literal token replacement for text documents",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&matchTokenFlag, tokenFlagName, "t", "", "literal token to replace")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(tokenFlagName), tokenConfigKey)

	cmd.PersistentFlags().StringVarP(&replacementFlag, replacementFlagName, "r", "", "replacement text (empty deletes the token)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(replacementFlagName), replacementConfigKey)

	cmd.PersistentFlags().StringVar(&auditLogFlag, auditLogFlagName, "", "audit log path (default <document>.audit.log)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(auditLogFlagName), auditLogConfigKey)

	cmd.PersistentFlags().StringVar(&stagingFlag, stagingFlagName, "", "staging artifact path (default a hidden sibling of the document)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(stagingFlagName), stagingConfigKey)

	cmd.PersistentFlags().IntVar(&bufferLinesFlag, bufferLinesFlagName, 0, "rewritten lines held in memory before the writer drains them (default 256)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(bufferLinesFlagName), bufferLinesConfigKey)

	cmd.PersistentFlags().BoolVar(&plainFlag, plainFlagName, false, "plain line output instead of the live progress display")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(plainFlagName), uiPlainConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log debug detail to the log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// runConfigFromFlags assembles the run configuration for the document at source,
// reading everything else through viper so flags, env, and config file agree.
func runConfigFromFlags(source string) m.RunConfig {
	return m.RunConfig{
		SourcePath:       m.Path(source),
		StagingPath:      m.Path(viper.GetString(stagingConfigKey)),
		LogPath:          m.Path(viper.GetString(auditLogConfigKey)),
		MatchToken:       viper.GetString(tokenConfigKey),
		ReplacementToken: viper.GetString(replacementConfigKey),
		BufferLines:      viper.GetInt(bufferLinesConfigKey),
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
