package internal

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goplus/extopt/internal/recipe"
)

var checkSpec specFlags

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a specification against the declared requirements",
	Long: `Check reports every declared dependency requirement the specification
does not satisfy, and fails if there is any.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkSpec.register(checkCmd.Flags())
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	spec, err := checkSpec.build(cmd.Context())
	if err != nil {
		return err
	}
	unsatisfied := recipe.Check(cmd.Context(), spec)
	if len(unsatisfied) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("ok"), spec)
		return nil
	}
	for _, u := range unsatisfied {
		fmt.Fprintln(cmd.OutOrStdout(), color.RedString("unsatisfied"), u)
	}
	return fmt.Errorf("%d unsatisfied requirements", len(unsatisfied))
}
