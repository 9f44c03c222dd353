package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"spotifyeq/internal/eq"
)

type presetJSON struct {
	Name        string    `json:"name"`
	Custom      bool      `json:"custom"`
	DBValues    []float64 `json:"db_values"`
	PlistValues []float64 `json:"plist_values"`
}

func newPresetsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var normalized bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List available equalizer presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := ctx.presetTable()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			precision := cfg.Output.Precision
			presets := table.Presets()

			if asJSON {
				out := make([]presetJSON, 0, len(presets))
				for _, p := range presets {
					out = append(out, presetJSON{
						Name:        p.Name,
						Custom:      p.Custom,
						DBValues:    p.Bands.Slice(),
						PlistValues: eq.RoundAll(p.Bands.Normalized(), precision),
					})
				}
				return writeJSON(cmd, out)
			}

			headers := append([]string{"Preset"}, bandHeaders()...)
			headers = append(headers, "Source")
			aligns := make([]columnAlignment, len(headers))
			for i := 1; i <= eq.BandCount; i++ {
				aligns[i] = alignRight
			}

			rows := make([][]string, 0, len(presets))
			for _, p := range presets {
				values := p.Bands.Slice()
				if normalized {
					values = eq.RoundAll(p.Bands.Normalized(), precision)
				}
				row := make([]string, 0, len(headers))
				row = append(row, p.Name)
				for _, v := range values {
					row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
				}
				row = append(row, presetSource(p))
				rows = append(rows, row)
			}

			title := "Equalizer presets (dB)"
			if normalized {
				title = "Equalizer presets (plist values)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), tableSpec{
				title:   title,
				headers: headers,
				rows:    rows,
				aligns:  aligns,
			}.render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print presets as JSON")
	cmd.Flags().BoolVar(&normalized, "normalized", false, "Show the normalized plist values instead of dB")
	return cmd
}

func presetSource(p eq.Preset) string {
	if p.Custom {
		return "config"
	}
	return "built-in"
}
