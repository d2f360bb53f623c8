package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/xssguard/pkg/defuse"
)

func newRewriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite [file]",
		Short: "Defuse HTML or text read from a file or stdin",
		Long: `Reads the whole input, applies the rewrite rules and writes the result to stdout.

In html mode neutralized characters become entities. In text mode an invisible
word joiner is inserted instead, so the output reads the same.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRewrite,
	}

	cmd.Flags().StringP("mode", "m", defuse.ModeHTML.String(), "output mode: html or text")
	cmd.Flags().Bool("scriptless", false, "also neutralize <meta> and <base> tags")
	cmd.Flags().Bool("report", false, "print per-rule substitution counts to stderr")
	return cmd
}

func runRewrite(cmd *cobra.Command, args []string) error {
	modeName, _ := cmd.Flags().GetString("mode")
	scriptless, _ := cmd.Flags().GetBool("scriptless")
	report, _ := cmd.Flags().GetBool("report")

	mode, err := defuse.ParseMode(modeName)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	input, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	out, rep := defuse.RewriteReport(string(input), mode, defuse.Flags{Scriptless: scriptless})
	if _, err := io.WriteString(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if report {
		parts := make([]string, 0, len(rep))
		for _, c := range rep {
			parts = append(parts, fmt.Sprintf("%s=%d", c.Rule, c.Count))
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "mode=%s %s total=%d\n", mode, strings.Join(parts, " "), rep.Total())
	}
	return nil
}
