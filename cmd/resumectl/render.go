package main

import (
	"github.com/spf13/cobra"

	"resume-styler/resume/render"
)

func newRenderCmd(c *cli) *cobra.Command {
	var (
		templateID string
		format     string
		out        string
	)
	cmd := &cobra.Command{
		Use:   "render <record.json|record.yaml>",
		Short: "Render a record in one template",
		Long: `Render a resume record into a document.

Example:
  resumectl render jane.yaml --template "Ivy League"
  resumectl render jane.json --template "Modern Sans" --format html --out jane.html
  resumectl render jane.json --format outline --out -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			rec, err := loadRecord(args[0])
			if err != nil {
				return err
			}
			data, err := c.renderer().Render(cmd.Context(), rec, templateID, f)
			if err != nil {
				return err
			}
			if out == "" {
				out = render.DownloadFileName(templateID, f.Extension())
			}
			if err := writeOutput(cmd.OutOrStdout(), out, data); err != nil {
				return err
			}
			if out != "-" {
				cmd.Printf("wrote %s (%d bytes)\n", out, len(data))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&templateID, "template", "t", "Ivy League", "Template identifier")
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "Output format: pdf, html or outline")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path, or - for stdout (default Professional_Resume_<Template>.<ext>)")
	return cmd
}
