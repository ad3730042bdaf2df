package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Creativityliberty/stylepropre/internal/generator"
	"github.com/Creativityliberty/stylepropre/internal/manifest"
)

type generateOptions struct {
	prompt    string
	imagePath string
	outPath   string
}

func newGenerateCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a project manifest from a prompt, without the TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(opts.prompt) == "" {
				return fmt.Errorf("--prompt is required")
			}
			return runGenerate(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.prompt, "prompt", "p", "", "Product description to generate from")
	cmd.Flags().StringVarP(&opts.imagePath, "image", "i", "", "Reference image to attach")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "Write the manifest JSON to a file instead of stdout")

	return cmd
}

func runGenerate(cmd *cobra.Command, rootFlags *rootFlags, opts *generateOptions) error {
	app, err := newAppContext(rootFlags)
	if err != nil {
		return err
	}

	gen, err := app.newGenerator()
	if err != nil {
		return err
	}

	imageURI := ""
	if opts.imagePath != "" {
		imageURI, err = generator.EncodeImageFile(opts.imagePath)
		if err != nil {
			return err
		}
	}

	raw, err := gen.Generate(cmd.Context(), opts.prompt, imageURI)
	if err != nil {
		return err
	}

	normalized := manifest.Normalize(raw)
	for _, warning := range manifest.Lint(normalized) {
		app.log.WithFields(map[string]any{"warning": warning}).Warn("manifest lint")
	}

	payload := manifest.PrettyJSON(normalized) + "\n"
	if opts.outPath != "" {
		if err := os.WriteFile(opts.outPath, []byte(payload), 0o644); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.outPath)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), payload)
	return nil
}
