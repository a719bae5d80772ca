package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"resume-styler/resume/render"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available templates and their styling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TEMPLATE\tHEADER\tBODY\tALIGN\tNAME\tHEADINGS\tRULES\tSEPARATOR")
			for _, t := range render.Templates() {
				p := t.Profile()
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%t\t%q\n",
					t, p.HeaderFont, p.BodyFont, p.HeaderAlign,
					strconv.FormatFloat(p.NameSize, 'f', -1, 64), p.HeadingCase, p.RuleLines, p.Separator)
			}
			return tw.Flush()
		},
	}
}
