package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goplus/extopt/internal/ctxlog"
	"github.com/goplus/extopt/internal/env"
	"github.com/goplus/extopt/internal/recipe"
)

var (
	resolveSpec   specFlags
	resolveOutput string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the build options for a specification",
	Long: `Resolve sets up the build environment for a specification and prints the
options for the extension build backend.

Hosts below Python 3.11 get a list of global options; newer hosts get a
config-settings mapping. Output formats:

  json  the payload as JSON (default)
  args  one flag token per line
  pip   pip install arguments, one per line
  env   the shell statement that sets up the toolkit variable`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveSpec.register(resolveCmd.Flags())
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "json", "Output format: json, args, pip or env")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	spec, err := resolveSpec.build(ctx)
	if err != nil {
		return err
	}
	inv, err := recipe.Resolve(ctx, spec, env.Process())
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", spec, err)
	}
	ctxlog.FromContext(ctx).Info("Resolved build options", "strategy", inv.Strategy, "spec", spec.String())

	return printInvocation(cmd.OutOrStdout(), inv, resolveOutput)
}

func printInvocation(w io.Writer, inv *recipe.Invocation, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(inv.Payload, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "args":
		return printLines(w, inv.Payload.Flags())
	case "pip":
		return printLines(w, inv.Payload.PipArgs())
	case "env":
		if inv.Toolkit == "" {
			_, err := fmt.Fprintf(w, "unset %s\n", env.ToolkitVar)
			return err
		}
		_, err := fmt.Fprintf(w, "export %s=%s\n", env.ToolkitVar, shellQuote(inv.Toolkit))
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}

// shellQuote wraps s in single quotes so a POSIX shell takes it literally.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
