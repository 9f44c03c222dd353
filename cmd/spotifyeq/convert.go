package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"spotifyeq/internal/config"
	"spotifyeq/internal/eq"
	"spotifyeq/internal/logging"
	"spotifyeq/internal/patcher"
	"spotifyeq/internal/plistdoc"
)

// errUsage signals that usage text was already printed.
var errUsage = errors.New("usage")

type convertOptions struct {
	format string
	json   bool
	dryRun bool
}

// minConvertArgs is input, output, and a preset name or first gain.
const minConvertArgs = 3

func runConvert(cmd *cobra.Command, ctx *commandContext, opts *convertOptions, args []string) error {
	table, err := ctx.presetTable()
	if len(args) < minConvertArgs {
		if err != nil {
			table = eq.DefaultTable()
		}
		printUsage(cmd.OutOrStdout(), table)
		return errUsage
	}
	if err != nil {
		return err
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger(cmd)
	if err != nil {
		return err
	}

	format := cfg.OutputFormat()
	if strings.TrimSpace(opts.format) != "" {
		if format, err = plistdoc.ParseFormat(opts.format); err != nil {
			return fmt.Errorf("--format: %w", err)
		}
	}

	bands, source, err := selectBands(table, args[2:], logger)
	if err != nil {
		return err
	}

	input, err := config.ExpandPath(args[0])
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	output, err := config.ExpandPath(args[1])
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	p := patcher.New(
		patcher.WithKeyMarker(cfg.Patch.KeyMarker),
		patcher.WithLogger(logger),
	)
	req := patcher.Request{
		InputPath:  input,
		OutputPath: output,
		Bands:      bands,
		Format:     format,
	}
	logger.Debug("patching plist",
		slog.String("input", input),
		slog.String("output", output),
		slog.String("source", source),
		slog.String("marker", p.Marker()),
	)

	var res *patcher.Result
	if opts.dryRun {
		res, err = p.Preview(cmd.Context(), req)
	} else {
		res, err = p.Patch(cmd.Context(), req)
	}
	if err != nil {
		logger.Debug("patch failed", logging.Error(err))
		return err
	}

	if opts.json {
		return writeJSON(cmd, res.Summary(cfg.Output.Precision))
	}
	patcher.WriteReport(cmd.OutOrStdout(), res, cfg.Output.Precision)
	return nil
}

// selectBands resolves the gain arguments. A single argument is always a
// preset name; more arguments are literal gains.
func selectBands(table *eq.Table, values []string, logger *slog.Logger) (eq.Bands, string, error) {
	if len(values) == 1 {
		preset, err := table.Lookup(values[0])
		if err != nil {
			return eq.Bands{}, "", err
		}
		return preset.Bands, "preset:" + preset.Name, nil
	}
	bands, ignored, err := eq.ParseBands(values)
	if err != nil {
		return eq.Bands{}, "", err
	}
	if ignored > 0 {
		logger.Warn("ignoring extra dB values",
			slog.Int("ignored", ignored),
			slog.Int("bands", eq.BandCount),
		)
	}
	return bands, "literal", nil
}

func printUsage(out io.Writer, table *eq.Table) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  spotifyeq <input.plist> <output.plist> <preset_name>")
	fmt.Fprintln(out, "  spotifyeq <input.plist> <output.plist> <db1> <db2> ... <db10>")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Available presets:", strings.Join(table.Names(), ", "))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Example:")
	fmt.Fprintln(out, "  spotifyeq original.plist custom.plist bass_boost")
	fmt.Fprintln(out, "  spotifyeq original.plist custom.plist 6 4 2 0 -2 -2 0 2 4 6")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'spotifyeq --help' for flags and subcommands.")
}
