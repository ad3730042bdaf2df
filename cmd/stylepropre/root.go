package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stylepropre",
		Short:         "stylepropre turns a product idea into a browsable project blueprint",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand launches the interactive studio.
			return runStudio(flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the settings file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
