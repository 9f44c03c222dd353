package eq

import (
	"errors"
	"testing"
)

func TestParseBandsPadsMissingValues(t *testing.T) {
	bands, ignored, err := ParseBands([]string{"3", "-1.5", "0.25"})
	if err != nil {
		t.Fatalf("ParseBands: %v", err)
	}
	if ignored != 0 {
		t.Fatalf("expected nothing ignored, got %d", ignored)
	}
	want := Bands{3, -1.5, 0.25, 0, 0, 0, 0, 0, 0, 0}
	if bands != want {
		t.Fatalf("got %v want %v", bands, want)
	}
}

func TestParseBandsIgnoresExtras(t *testing.T) {
	args := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "abc"}
	bands, ignored, err := ParseBands(args)
	if err != nil {
		t.Fatalf("ParseBands: %v", err)
	}
	if ignored != 2 {
		t.Fatalf("expected 2 ignored, got %d", ignored)
	}
	if bands[9] != 10 {
		t.Fatalf("unexpected last band %v", bands[9])
	}
}

func TestParseBandsRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		index int
	}{
		{"word", []string{"1", "loud"}, 1},
		{"nan", []string{"NaN"}, 0},
		{"infinity", []string{"0", "0", "+Inf"}, 2},
		{"empty", []string{""}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseBands(tt.args)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if perr.Index != tt.index {
				t.Fatalf("expected index %d, got %d", tt.index, perr.Index)
			}
		})
	}
}
