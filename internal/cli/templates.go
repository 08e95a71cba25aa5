package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-sigstudio/pkg/studio"
)

// templatesCommand creates the templates command.
func (a *app) templatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List templates and size profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogue := studio.Templates()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(tw, "TEMPLATE\tLAYOUT\tIMAGE\tDESCRIPTION")
			for _, info := range catalogue.Templates {
				name := string(info.Kind)
				if info.Kind == a.cfg.TemplateKind() {
					name += " *"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, info.Layout, info.ImageStyle, info.Description)
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "SIZE\tSCALE")
			for _, size := range catalogue.Sizes {
				name := string(size.Name)
				if size.Name == a.cfg.SizeProfile() {
					name += " *"
				}
				fmt.Fprintf(tw, "%s\t%.2f\n", name, size.Scale)
			}
			return tw.Flush()
		},
	}
}
