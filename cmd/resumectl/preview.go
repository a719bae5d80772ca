package main

import (
	"github.com/spf13/cobra"
)

func newPreviewCmd(c *cli) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "preview <record.json|record.yaml>",
		Short: "Render a record in every template into a zip archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := loadRecord(args[0])
			if err != nil {
				return err
			}
			data, err := c.renderer().RenderBundle(cmd.Context(), rec)
			if err != nil {
				return err
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
	cmd.Flags().StringVarP(&out, "out", "o", "Professional_Resume_Preview.zip", "Output path, or - for stdout")
	return cmd
}
