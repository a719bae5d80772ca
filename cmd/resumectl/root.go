package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"resume-styler/internal/bootstrap"
	"resume-styler/internal/shared/config"
	"resume-styler/internal/shared/telemetry"
	"resume-styler/resume/render"
)

// cli carries state shared by subcommands.
type cli struct {
	cfg      config.Config
	verbose  bool
	renderer func() render.Renderer
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	c.renderer = func() render.Renderer { return bootstrap.BuildRenderer(c.cfg) }

	root := &cobra.Command{
		Use:   "resumectl",
		Short: "Render structured resume records with fixed visual templates",
		Long: `resumectl renders a resume record (JSON or YAML) into a styled, paginated
document using one of the built-in templates, and can extract a record from
an existing PDF or DOCX resume through the configured language model.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.cfg = config.Load()
			level := c.cfg.LogLevel
			if !c.verbose {
				level = "warn"
			}
			telemetry.SetLevel(level)
			telemetry.SetOutput(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(
		newRenderCmd(c),
		newExtractCmd(c),
		newTemplatesCmd(),
		newPreviewCmd(c),
	)
	return root
}

// writeOutput writes data to path, or to w when path is "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "-" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
