package patcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"spotifyeq/internal/eq"
	"spotifyeq/internal/fileutil"
	"spotifyeq/internal/logging"
	"spotifyeq/internal/plistdoc"
)

// DefaultKeyMarker is the text identifying the equalizer values key.
const DefaultKeyMarker = "equalizer.values"

// ErrKeyNotFound is returned when no document key contains the marker.
var ErrKeyNotFound = errors.New("equalizer.values key not found in plist")

// Request describes one patch invocation.
type Request struct {
	InputPath  string
	OutputPath string
	Bands      eq.Bands
	Format     plistdoc.Format
}

// Result reports what a patch wrote.
type Result struct {
	OutputPath string
	Key        string
	Format     plistdoc.Format
	DB         eq.Bands
	Normalized []float64
	// Previous holds the values the key carried before patching, when they
	// were numeric.
	Previous []float64
	Written  bool
}

// Patcher applies band values to property list documents.
type Patcher struct {
	marker string
	logger *slog.Logger
}

// Option customizes a Patcher.
type Option func(*Patcher)

// WithKeyMarker overrides the substring used to locate the equalizer key.
func WithKeyMarker(marker string) Option {
	return func(p *Patcher) {
		if m := strings.TrimSpace(marker); m != "" {
			p.marker = m
		}
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Patcher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New constructs a Patcher.
func New(opts ...Option) *Patcher {
	p := &Patcher{marker: DefaultKeyMarker, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = logging.NewComponentLogger(p.logger, "patcher")
	return p
}

// Marker returns the key marker in use.
func (p *Patcher) Marker() string {
	return p.marker
}

// Apply sets the normalized bands on the first key containing the marker and
// returns the key. The document is left untouched when no key matches.
func (p *Patcher) Apply(doc plistdoc.Document, bands eq.Bands) (string, []float64, error) {
	key, ok := plistdoc.FindKey(doc, p.marker)
	if !ok {
		return "", nil, fmt.Errorf("%w (marker %q)", ErrKeyNotFound, p.marker)
	}
	var previous []float64
	if current, ok := doc.Get(key); ok {
		previous, _ = plistdoc.Floats(current)
	}
	normalized := bands.Normalized()
	values := make([]any, len(normalized))
	for i, v := range normalized {
		values[i] = v
	}
	doc.Set(key, values)
	return key, previous, nil
}

// Preview loads the input and applies the bands in memory without writing.
func (p *Patcher) Preview(ctx context.Context, req Request) (*Result, error) {
	res, _, err := p.prepare(ctx, req)
	return res, err
}

// Patch loads the input, replaces the equalizer key, and writes the output
// file. No output is written when the key is missing.
func (p *Patcher) Patch(ctx context.Context, req Request) (*Result, error) {
	if err := fileutil.CheckWritableDir(req.OutputPath); err != nil {
		return nil, err
	}
	res, doc, err := p.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := doc.Save(req.OutputPath, res.Format); err != nil {
		return nil, err
	}
	res.Written = true
	p.logger.Info("wrote patched plist",
		slog.String(logging.FieldPath, req.OutputPath),
		slog.String("format", string(res.Format)),
	)
	return res, nil
}

func (p *Patcher) prepare(ctx context.Context, req Request) (*Result, *plistdoc.Dict, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(req.InputPath) == "" || strings.TrimSpace(req.OutputPath) == "" {
		return nil, nil, errors.New("input and output paths are required")
	}

	doc, err := plistdoc.Load(req.InputPath)
	if err != nil {
		return nil, nil, err
	}
	p.logger.Debug("loaded plist",
		slog.String(logging.FieldPath, req.InputPath),
		slog.Int("keys", doc.Len()),
		slog.String("format", string(doc.SourceFormat())),
	)

	key, previous, err := p.Apply(doc, req.Bands)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", req.InputPath, err)
	}

	format := req.Format
	if format == "" {
		format = plistdoc.FormatBinary
	}
	if format == plistdoc.FormatSource {
		format = doc.SourceFormat()
	}

	p.logger.Info("replaced equalizer values",
		slog.String("key", key),
		slog.Any("plist_values", req.Bands.Normalized()),
	)
	return &Result{
		OutputPath: req.OutputPath,
		Key:        key,
		Format:     format,
		DB:         req.Bands,
		Normalized: req.Bands.Normalized(),
		Previous:   previous,
	}, doc, nil
}
