package plistdoc

import (
	"fmt"
	"strconv"
	"time"

	"howett.net/plist"
)

const maxDescribeLen = 48

// Kind names the property list type of a decoded value.
func Kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case float32, float64:
		return "real"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case time.Time:
		return "date"
	case []byte:
		return "data"
	case plist.UID:
		return "uid"
	case []any:
		return "array"
	case map[string]any:
		return "dict"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Describe renders a short human-readable summary of a decoded value.
func Describe(v any) string {
	switch val := v.(type) {
	case string:
		return truncate(strconv.Quote(val))
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case []byte:
		return fmt.Sprintf("<%d bytes>", len(val))
	case plist.UID:
		return fmt.Sprintf("uid(%d)", uint64(val))
	case []any:
		return fmt.Sprintf("array(%d)", len(val))
	case map[string]any:
		return fmt.Sprintf("dict(%d)", len(val))
	case nil:
		return "null"
	default:
		return truncate(fmt.Sprint(val))
	}
}

// Floats converts an array value to float64s. It reports false when v is not
// an array or holds a non-numeric element.
func Floats(v any) ([]float64, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]float64, len(items))
	for i, item := range items {
		switch n := item.(type) {
		case float64:
			out[i] = n
		case float32:
			out[i] = float64(n)
		case int64:
			out[i] = float64(n)
		case uint64:
			out[i] = float64(n)
		case int:
			out[i] = float64(n)
		default:
			return nil, false
		}
	}
	return out, true
}

func truncate(s string) string {
	if len(s) <= maxDescribeLen {
		return s
	}
	return s[:maxDescribeLen-3] + "..."
}
