package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "layerlint [path]",
		Short: "Keep dependencies flowing inward",
		Long: "Layerlint audits a Python codebase against the Clean Architecture dependency rule " +
			"and its structural conventions: layer-aware imports, naming, encapsulation, " +
			"layer content and use-case structure.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, args, allSuites, format)
		},
	}

	cmd.PersistentFlags().StringVar(&format, "format", "text", "Output format: text, json or yaml")

	cmd.AddCommand(newImportsCmd(&format))
	cmd.AddCommand(newStructureCmd(&format))
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show layerlint version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Printf("layerlint %s (%s)\n", version, commit)
			return nil
		},
	}
}
