package eq

import (
	"strconv"
	"strings"
)

// BandCount is the number of equalizer bands the client stores.
const BandCount = 10

// Frequencies lists the center frequency in Hz of each band, low to high.
var Frequencies = [BandCount]int{31, 63, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}

// Bands holds one decibel gain per band, ordered like Frequencies.
type Bands [BandCount]float64

// Normalized maps every band through DBToValue.
func (b Bands) Normalized() []float64 {
	out := make([]float64, BandCount)
	for i, db := range b {
		out[i] = DBToValue(db)
	}
	return out
}

// Slice returns the bands as a freshly allocated slice.
func (b Bands) Slice() []float64 {
	out := make([]float64, BandCount)
	copy(out, b[:])
	return out
}

func (b Bands) String() string {
	return FormatList(b[:])
}

// FormatList renders values as "[a, b, c]" using the shortest exact
// representation of each number.
func FormatList(values []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

// FrequencyLabel formats a band center frequency as "31 Hz" or "1 kHz".
func FrequencyLabel(hz int) string {
	if hz >= 1000 && hz%1000 == 0 {
		return strconv.Itoa(hz/1000) + " kHz"
	}
	return strconv.Itoa(hz) + " Hz"
}
