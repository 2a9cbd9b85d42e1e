package internal

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goplus/extopt/formula"
	"github.com/goplus/extopt/pkgs/buildsys"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the variant catalog",
	Long:  `Variants lists every variant with the flag token it adds and its description.`,
	Args:  cobra.NoArgs,
	RunE:  runVariants,
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}

func runVariants(cmd *cobra.Command, args []string) error {
	name := color.New(color.FgCyan).SprintFunc()
	token := color.New(color.Faint).SprintFunc()

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "VARIANT\tFLAG\tDESCRIPTION\n")
	for _, v := range formula.Variants() {
		tok, _ := buildsys.TokenOf(v.Name)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name(v.Name), token(tok), v.Description)
	}
	return tw.Flush()
}
