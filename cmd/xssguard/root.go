package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "xssguard",
		Short:        "Neutralize script injection in rendered output",
		Long:         `xssguard rewrites HTML and plain text so that injected <script> tags, dangerous href assignments and (optionally) <meta>/<base> tags stop working, without otherwise changing what a reader sees.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringSlice("env-file", nil, "dotenv files to load before reading the environment")

	root.AddCommand(newRewriteCmd(), newServeCmd())
	return root
}
