package cli

import "github.com/spf13/cobra"

func newStructureCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "structure [path]",
		Short: "Check structure and convention rules only",
		Long:  "Run the naming, encapsulation, layer-content and use-case-structure checks without the Dependency Rule audit.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, args, structureSuite, *format)
		},
	}
}
