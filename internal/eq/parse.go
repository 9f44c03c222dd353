package eq

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseError reports a band argument that is not a finite number.
type ParseError struct {
	Index int
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dB values must be numbers: band %d value %q", e.Index+1, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseBands parses up to BandCount decibel arguments. Missing bands are 0 and
// arguments past BandCount are ignored; the number ignored is returned.
func ParseBands(args []string) (Bands, int, error) {
	var bands Bands
	ignored := 0
	if len(args) > BandCount {
		ignored = len(args) - BandCount
		args = args[:BandCount]
	}
	for i, arg := range args {
		trimmed := strings.TrimSpace(arg)
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return Bands{}, 0, &ParseError{Index: i, Value: arg, Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Bands{}, 0, &ParseError{Index: i, Value: arg}
		}
		bands[i] = v
	}
	return bands, ignored, nil
}
