// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/verdantgarden/verdant/internal/themes"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Work with theme generation",
	Long:  "Generate palettes, preview derived colors, and export theme documents without a running server",
}

var themeGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a harmony palette",
	Run: func(cmd *cobra.Command, args []string) {
		hue, _ := cmd.Flags().GetFloat64("hue")
		sat, _ := cmd.Flags().GetFloat64("saturation")
		light, _ := cmd.Flags().GetFloat64("lightness")
		modeName, _ := cmd.Flags().GetString("mode")

		mode, err := themes.ParseHarmonyMode(modeName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		palette := themes.GeneratePalette(hue, sat, light, mode, themes.NewSource())
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ROLE\tCOLOR")
		fmt.Fprintf(w, "primary\t%s\n", palette.Primary)
		fmt.Fprintf(w, "secondary\t%s\n", palette.Secondary)
		fmt.Fprintf(w, "tertiary\t%s\n", palette.Tertiary)
		fmt.Fprintf(w, "quaternary\t%s\n", palette.Quaternary)
		w.Flush()
	},
}

var themePreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Derive full light and dark color sets from a palette",
	Run: func(cmd *cobra.Command, args []string) {
		hue, _ := cmd.Flags().GetFloat64("hue")
		sat, _ := cmd.Flags().GetFloat64("saturation")
		light, _ := cmd.Flags().GetFloat64("lightness")
		modeName, _ := cmd.Flags().GetString("mode")

		mode, err := themes.ParseHarmonyMode(modeName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		rng := themes.NewSource()
		palette := themes.GeneratePalette(hue, sat, light, mode, rng)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FIELD\tLIGHT\tDARK")
		lightSet := themes.DeriveModeColors(palette, themes.Light, rng)
		darkSet := themes.DeriveModeColors(palette, themes.Dark, rng)
		rows := []struct {
			name        string
			light, dark string
		}{
			{"background", lightSet.Background, darkSet.Background},
			{"panel", lightSet.Panel, darkSet.Panel},
			{"text", lightSet.Text, darkSet.Text},
			{"border", lightSet.Border, darkSet.Border},
			{"selection", lightSet.Selection, darkSet.Selection},
			{"button bg", lightSet.ButtonBackground.Seed(), darkSet.ButtonBackground.Seed()},
			{"button text", lightSet.ButtonText, darkSet.ButtonText},
			{"link", lightSet.Link, darkSet.Link},
		}
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n", row.name, row.light, row.dark)
		}
		w.Flush()
	},
}

var themeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a randomized theme document as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		form := themes.NewThemeFormData()
		themes.RandomizeAll(form, true, themes.NewSource())

		document, err := themes.MarshalDocument(themes.FormToDocument(form))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error serializing theme: %v\n", err)
			os.Exit(1)
		}

		if output == "" {
			fmt.Println(document)
			return
		}
		if err := os.WriteFile(output, []byte(document), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
			os.Exit(1)
		}
		fmt.Printf("Theme document written to %s\n", output)
	},
}

func init() {
	for _, c := range []*cobra.Command{themeGenerateCmd, themePreviewCmd} {
		c.Flags().Float64("hue", 210, "Seed hue in degrees (0-360)")
		c.Flags().Float64("saturation", 0.65, "Seed saturation (0-1)")
		c.Flags().Float64("lightness", 0.5, "Seed lightness (0-1)")
		c.Flags().String("mode", "complementary", "Harmony mode")
	}
	themeExportCmd.Flags().String("output", "", "Write the document to a file instead of stdout")

	themeCmd.AddCommand(themeGenerateCmd)
	themeCmd.AddCommand(themePreviewCmd)
	themeCmd.AddCommand(themeExportCmd)
	rootCmd.AddCommand(themeCmd)
}
