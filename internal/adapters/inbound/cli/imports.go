package cli

import "github.com/spf13/cobra"

func newImportsCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "imports [path]",
		Short: "Check the Dependency Rule only",
		Long:  "Verify that every project-internal import points to the same or an inner layer.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, args, importSuite, *format)
		},
	}
}
