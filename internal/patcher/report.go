package patcher

import (
	"fmt"
	"io"

	"spotifyeq/internal/eq"
)

// Summary is the serializable form of a Result.
type Summary struct {
	Output     string    `json:"output"`
	Key        string    `json:"key"`
	Format     string    `json:"format"`
	Written    bool      `json:"written"`
	DB         []float64 `json:"db_values"`
	Normalized []float64 `json:"plist_values"`
}

// Summary rounds the normalized values to precision decimal places.
func (r *Result) Summary(precision int) Summary {
	return Summary{
		Output:     r.OutputPath,
		Key:        r.Key,
		Format:     string(r.Format),
		Written:    r.Written,
		DB:         r.DB.Slice(),
		Normalized: eq.RoundAll(r.Normalized, precision),
	}
}

// WriteReport prints the human-readable confirmation for a patch.
func WriteReport(w io.Writer, r *Result, precision int) {
	label := "Created"
	if !r.Written {
		label = "Would create"
	}
	fmt.Fprintf(w, "%s: %s\n", label, r.OutputPath)
	fmt.Fprintf(w, "dB values: %s\n", r.DB)
	fmt.Fprintf(w, "Plist values: %s\n", eq.FormatList(eq.RoundAll(r.Normalized, precision)))
}
