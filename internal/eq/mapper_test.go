package eq

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func TestDBToValueLinearInsideRange(t *testing.T) {
	for db := -12.0; db <= 12.0; db += 0.25 {
		got := DBToValue(db)
		if math.Abs(got-db/12.0) > tolerance {
			t.Fatalf("DBToValue(%v) = %v, want %v", db, got, db/12.0)
		}
		if got < -1 || got > 1 {
			t.Fatalf("DBToValue(%v) = %v outside [-1, 1]", db, got)
		}
	}
}

func TestDBToValueClamps(t *testing.T) {
	tests := []struct {
		name string
		db   float64
		want float64
	}{
		{"just above", 12.5, 1},
		{"far above", 48, 1},
		{"just below", -12.01, -1},
		{"far below", -100, -1},
		{"positive infinity", math.Inf(1), 1},
		{"negative infinity", math.Inf(-1), -1},
		{"nan is flat", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DBToValue(tt.db); got != tt.want {
				t.Fatalf("DBToValue(%v) = %v, want %v", tt.db, got, tt.want)
			}
		})
	}
}

func TestValueToDBRoundTrip(t *testing.T) {
	for db := -12.0; db <= 12.0; db += 0.5 {
		if got := ValueToDB(DBToValue(db)); math.Abs(got-db) > 1e-9 {
			t.Fatalf("round trip of %v returned %v", db, got)
		}
	}
	if got := ValueToDB(DBToValue(20)); got != 12 {
		t.Fatalf("expected clamped round trip to return 12, got %v", got)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in     float64
		places int
		want   float64
	}{
		{5.0 / 12.0, 3, 0.417},
		{4.0 / 12.0, 3, 0.333},
		{2.0 / 12.0, 3, 0.167},
		{-2.0 / 12.0, 3, -0.167},
		{0.5, 3, 0.5},
		{-0.0001, 3, 0},
		{0.123456, -1, 0.123456},
	}
	for _, tt := range tests {
		if got := Round(tt.in, tt.places); got != tt.want {
			t.Fatalf("Round(%v, %d) = %v, want %v", tt.in, tt.places, got, tt.want)
		}
	}
	if got := Round(-0.0001, 3); math.Signbit(got) {
		t.Fatal("expected negative zero to be collapsed")
	}
}

func TestBandsNormalizedMatchesReference(t *testing.T) {
	bands := Bands{6, 5, 4, 2, 0, 0, 0, 0, 0, 0}
	got := RoundAll(bands.Normalized(), 3)
	want := []float64{0.5, 0.417, 0.333, 0.167, 0, 0, 0, 0, 0, 0}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("band %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestFormatList(t *testing.T) {
	if got := FormatList([]float64{0.5, 0.417, 0, -1}); got != "[0.5, 0.417, 0, -1]" {
		t.Fatalf("unexpected list rendering: %q", got)
	}
	if got := (Bands{6, 5, 4, 2}).String(); got != "[6, 5, 4, 2, 0, 0, 0, 0, 0, 0]" {
		t.Fatalf("unexpected bands rendering: %q", got)
	}
}

func TestFrequencyLabel(t *testing.T) {
	if got := FrequencyLabel(Frequencies[0]); got != "31 Hz" {
		t.Fatalf("got %q", got)
	}
	if got := FrequencyLabel(Frequencies[BandCount-1]); got != "16 kHz" {
		t.Fatalf("got %q", got)
	}
}
