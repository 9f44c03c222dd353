package plistdoc

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"howett.net/plist"

	"spotifyeq/internal/fileutil"
)

// ErrNotDictionary is returned when a property list root is not a dictionary.
var ErrNotDictionary = errors.New("property list root is not a dictionary")

// Document is the capability set the patcher needs from a key/value file.
type Document interface {
	Keys() []string
	Get(key string) (any, bool)
	Set(key string, value any)
}

// Dict is a decoded property list whose root is a dictionary.
type Dict struct {
	values map[string]any
	format Format
}

// New returns an empty dictionary that saves as binary by default.
func New() *Dict {
	return &Dict{values: map[string]any{}, format: FormatBinary}
}

// Decode parses property list bytes in any format the codec understands.
func Decode(data []byte) (*Dict, error) {
	var root any
	code, err := plist.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("decode plist: %w", err)
	}
	values, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w (got %s)", ErrNotDictionary, Describe(root))
	}
	return &Dict{values: values, format: formatFromCodec(code)}, nil
}

// Load reads and decodes the property list at path.
func Load(path string) (*Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// SourceFormat reports the encoding the document was decoded from.
func (d *Dict) SourceFormat() Format {
	return d.format
}

// Keys returns the dictionary keys in lexicographic order. The codec does not
// preserve on-disk order, so sorting keeps key searches deterministic.
func (d *Dict) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Get returns the value stored under key.
func (d *Dict) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (d *Dict) Set(key string, value any) {
	d.values[key] = value
}

// Len reports the number of top-level keys.
func (d *Dict) Len() int {
	return len(d.values)
}

// Encode serializes the dictionary. FormatSource reuses the decoded format.
func (d *Dict) Encode(format Format) ([]byte, error) {
	if format == FormatSource {
		format = d.format
	}
	code, err := format.codec()
	if err != nil {
		return nil, err
	}
	if code == plist.XMLFormat {
		return plist.MarshalIndent(d.values, code, "\t")
	}
	return plist.Marshal(d.values, code)
}

// Save encodes the dictionary and atomically writes it to path, overwriting
// any existing file.
func (d *Dict) Save(path string, format Format) error {
	data, err := d.Encode(format)
	if err != nil {
		return fmt.Errorf("encode plist: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// FindKey returns the first key, in the document's key order, that contains
// marker. For *Dict that order is lexicographic, so when several keys match,
// the winner can differ from the first match in the file's stored order.
func FindKey(doc Document, marker string) (string, bool) {
	for _, k := range doc.Keys() {
		if strings.Contains(k, marker) {
			return k, true
		}
	}
	return "", false
}
