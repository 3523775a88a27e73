package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/contentstudio/server/internal/intent"
	"github.com/contentstudio/server/internal/overlay"
	"github.com/contentstudio/server/internal/reference"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "studioctl",
		Short: "Offline tools for the content studio",
		Long: `studioctl resolves video links and renders overlay presets without a server.

Examples:
  # Print the video id of a link
  studioctl resolve https://youtu.be/dQw4w9WgXcQ

  # Render a preset as it would look over a playing video
  studioctl render -f preset.yaml --has-video`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newResolveCmd(), newRenderCmd(), newCatalogCmd())

	return rootCmd
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <url>...",
		Short: "Print the video id of each link, or null when unsupported",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, raw := range args {
				ref := reference.Resolve(raw)
				id := "null"
				if !ref.IsNone() {
					id = ref.String()
				}
				fmt.Fprintf(out, "%s\t%s\n", raw, id)
			}
			return nil
		},
	}
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an overlay preset to its layer tree as JSON",
		Long: `Render reads a YAML style preset and prints the render tree.
Fields missing from the preset keep their default value.

Example preset:
  text: "WR pace"
  font: vt323
  position: top
  background_enabled: true
  aspect_ratio: "9:16"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			hasVideo, _ := cmd.Flags().GetBool("has-video")

			style := overlay.DefaultStyle()
			if path != "" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open preset: %w", err)
				}
				defer f.Close()

				if style, err = loadStyle(f); err != nil {
					return err
				}
			}

			return writeJSON(cmd.OutOrStdout(), overlay.Render(style, hasVideo))
		},
	}

	cmd.Flags().StringP("file", "f", "", "YAML style preset (defaults when omitted)")
	cmd.Flags().Bool("has-video", false, "Render as if a video is loaded")

	return cmd
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the fonts, colors, aspect ratios and speeds on offer",
		RunE: func(cmd *cobra.Command, args []string) error {
			speeds := make([]string, 0, len(intent.Speeds()))
			for _, s := range intent.Speeds() {
				speeds = append(speeds, s.Label())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "fonts:")
			for _, f := range overlay.Fonts() {
				fmt.Fprintf(out, "  %-8s %s\n", f.ID, f.Family)
			}
			fmt.Fprintln(out, "colors:")
			for _, c := range overlay.Colors() {
				fmt.Fprintf(out, "  %-8s %s\n", c.ID, c.Value)
			}
			fmt.Fprintln(out, "aspect ratios:")
			for _, a := range overlay.AspectRatios() {
				fmt.Fprintf(out, "  %-8s %s\n", a.ID, a.Label)
			}
			fmt.Fprintf(out, "speeds: %s\n", strings.Join(speeds, " "))

			return nil
		},
	}
}

// loadStyle decodes a preset over the default style.
func loadStyle(r io.Reader) (overlay.Style, error) {
	style := overlay.DefaultStyle()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&style); err != nil && err != io.EOF {
		return overlay.Style{}, fmt.Errorf("failed to decode preset: %w", err)
	}

	return style, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
