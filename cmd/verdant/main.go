// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "verdant",
	Short: "Verdant - themed hosting for digital gardens",
	Long: `Verdant hosts digital gardens: small personal sites whose entire look
is driven by a generated color theme.

Each garden carries a two-mode theme document - a harmony palette, a
bloom mark, content and control colors - edited and randomized through
the admin API and rendered as a CSS custom-property stylesheet.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
