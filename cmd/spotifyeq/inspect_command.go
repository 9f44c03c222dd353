package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"spotifyeq/internal/config"
	"spotifyeq/internal/eq"
	"spotifyeq/internal/plistdoc"
)

type inspectKeyJSON struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

type inspectEqualizerJSON struct {
	Key         string    `json:"key"`
	PlistValues []float64 `json:"plist_values,omitempty"`
	DBValues    []float64 `json:"db_values,omitempty"`
}

type inspectJSON struct {
	Path      string                `json:"path"`
	Format    string                `json:"format"`
	Keys      []inspectKeyJSON      `json:"keys"`
	Equalizer *inspectEqualizerJSON `json:"equalizer,omitempty"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <file.plist>",
		Short: "Show the keys of a plist and its current equalizer values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			doc, err := plistdoc.Load(path)
			if err != nil {
				return err
			}

			keys := doc.Keys()
			report := inspectJSON{
				Path:   path,
				Format: string(doc.SourceFormat()),
				Keys:   make([]inspectKeyJSON, 0, len(keys)),
			}
			for _, k := range keys {
				v, _ := doc.Get(k)
				report.Keys = append(report.Keys, inspectKeyJSON{Key: k, Type: plistdoc.Kind(v), Value: plistdoc.Describe(v)})
			}
			if key, ok := plistdoc.FindKey(doc, cfg.Patch.KeyMarker); ok {
				raw, _ := doc.Get(key)
				eqReport := &inspectEqualizerJSON{Key: key}
				if values, ok := plistdoc.Floats(raw); ok {
					eqReport.PlistValues = values
					eqReport.DBValues = make([]float64, len(values))
					for i, v := range values {
						eqReport.DBValues[i] = eq.Round(eq.ValueToDB(v), cfg.Output.Precision)
					}
				}
				report.Equalizer = eqReport
			}

			if asJSON {
				return writeJSON(cmd, report)
			}
			renderInspect(cmd, report, cfg.Patch.KeyMarker, cfg.Output.Precision)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the inspection as JSON")
	return cmd
}

func renderInspect(cmd *cobra.Command, report inspectJSON, marker string, precision int) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	title := fmt.Sprintf("%s (%s, %d keys)", report.Path, report.Format, len(report.Keys))
	for _, line := range renderSectionHeader(title, colorize) {
		fmt.Fprintln(out, line)
	}

	rows := make([][]string, 0, len(report.Keys))
	for _, k := range report.Keys {
		rows = append(rows, []string{k.Key, k.Type, k.Value})
	}
	fmt.Fprintln(out, tableSpec{headers: []string{"Key", "Type", "Value"}, rows: rows}.render())
	fmt.Fprintln(out)

	if report.Equalizer == nil {
		fmt.Fprintln(out, renderStatusLine("Equalizer key", statusWarn, fmt.Sprintf("no key contains %q", marker), colorize))
		return
	}
	fmt.Fprintln(out, renderStatusLine("Equalizer key", statusOK, report.Equalizer.Key, colorize))
	if report.Equalizer.PlistValues == nil {
		fmt.Fprintln(out, renderStatusLine("Equalizer values", statusError, "value is not a numeric array", colorize))
		return
	}
	if n := len(report.Equalizer.PlistValues); n != eq.BandCount {
		fmt.Fprintln(out, renderStatusLine("Equalizer values", statusWarn, fmt.Sprintf("expected %d bands, found %d", eq.BandCount, n), colorize))
	}

	bandRows := make([][]string, 0, len(report.Equalizer.PlistValues))
	for i, v := range report.Equalizer.PlistValues {
		freq := "?"
		if i < eq.BandCount {
			freq = eq.FrequencyLabel(eq.Frequencies[i])
		}
		bandRows = append(bandRows, []string{
			strconv.Itoa(i + 1),
			freq,
			strconv.FormatFloat(eq.Round(v, precision), 'f', -1, 64),
			strconv.FormatFloat(report.Equalizer.DBValues[i], 'f', -1, 64),
		})
	}
	fmt.Fprintln(out, tableSpec{
		headers: []string{"Band", "Frequency", "Plist value", "dB"},
		rows:    bandRows,
		aligns:  []columnAlignment{alignRight, alignRight, alignRight, alignRight},
	}.render())
}
