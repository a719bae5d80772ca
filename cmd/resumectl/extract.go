package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-styler/internal/bootstrap"
	"resume-styler/internal/extract"
	"resume-styler/resume/service"
)

func newExtractCmd(c *cli) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "extract <resume.pdf|resume.docx>",
		Short: "Extract a record from an existing resume",
		Long: `Extract a structured record from a PDF, DOCX or text resume using the
provider configured by LLM_PROVIDER. The record is written as JSON, or YAML
when --out ends in .yaml or .yml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read resume: %w", err)
			}
			name := filepath.Base(args[0])
			text, err := extract.ExtractTextFromBytes(cmd.Context(), raw, extract.NormalizeMimeType("", name, raw), name)
			if err != nil {
				return err
			}
			client, err := bootstrap.BuildLLM(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer bootstrap.CloseLLM(client)
			res, err := service.NewExtractor(client).Extract(cmd.Context(), text)
			if err != nil {
				return err
			}
			if res.Fallback {
				cmd.PrintErrln("warning: the model returned no usable JSON; only detected contact details were kept")
			}
			data, err := marshalRecord(res.Record, out)
			if err != nil {
				return err
			}
			if err := writeOutput(cmd.OutOrStdout(), out, data); err != nil {
				return err
			}
			if out != "-" {
				cmd.Printf("wrote %s\n", out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "Output path (.json, .yaml or .yml), or - for stdout")
	return cmd
}
