package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Creativityliberty/stylepropre/internal/manifest"
	"github.com/Creativityliberty/stylepropre/internal/theme"
)

type exportOptions struct {
	format  string
	mode    string
	outPath string
}

func newExportCmd() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <manifest.json>",
		Short: "Render a saved manifest as markdown or CSS custom properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "markdown", "Output format: markdown or css")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "light", "Color mode for css output: light or dark")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, path string, opts *exportOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	raw, err := manifest.ParseFile(path, data)
	if err != nil {
		return err
	}
	normalized := manifest.Normalize(raw)

	mode := theme.ModeLight
	switch opts.mode {
	case "light":
	case "dark":
		mode = theme.ModeDark
	default:
		return fmt.Errorf("unknown mode %q (expected light or dark)", opts.mode)
	}

	var output string
	switch opts.format {
	case "markdown", "md":
		output = manifest.Markdown(normalized)
	case "css":
		output = theme.CSSVariables(theme.Resolve(normalized.DesignSystem, mode)) + "\n"
	default:
		return fmt.Errorf("unknown format %q (expected markdown or css)", opts.format)
	}

	if opts.outPath != "" {
		if err := os.WriteFile(opts.outPath, []byte(output), 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.outPath)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}
