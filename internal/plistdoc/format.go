package plistdoc

import (
	"fmt"
	"strings"

	"howett.net/plist"
)

// Format selects the encoding used when a document is saved.
type Format string

const (
	FormatBinary   Format = "binary"
	FormatXML      Format = "xml"
	FormatOpenStep Format = "openstep"
	FormatGNUStep  Format = "gnustep"
	// FormatSource re-encodes in whatever format the document was read from.
	FormatSource Format = "source"
)

// Formats lists every accepted format name.
func Formats() []Format {
	return []Format{FormatBinary, FormatXML, FormatOpenStep, FormatGNUStep, FormatSource}
}

// ParseFormat validates a format name. An empty name selects FormatBinary.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "":
		return FormatBinary, nil
	case FormatBinary, FormatXML, FormatOpenStep, FormatGNUStep, FormatSource:
		return f, nil
	default:
		names := make([]string, 0, len(Formats()))
		for _, name := range Formats() {
			names = append(names, string(name))
		}
		return "", fmt.Errorf("unsupported plist format %q (valid: %s)", value, strings.Join(names, ", "))
	}
}

func (f Format) codec() (int, error) {
	switch f {
	case FormatBinary, "":
		return plist.BinaryFormat, nil
	case FormatXML:
		return plist.XMLFormat, nil
	case FormatOpenStep:
		return plist.OpenStepFormat, nil
	case FormatGNUStep:
		return plist.GNUStepFormat, nil
	default:
		return 0, fmt.Errorf("unsupported plist format %q", string(f))
	}
}

func formatFromCodec(code int) Format {
	switch code {
	case plist.XMLFormat:
		return FormatXML
	case plist.OpenStepFormat:
		return FormatOpenStep
	case plist.GNUStepFormat:
		return FormatGNUStep
	default:
		return FormatBinary
	}
}
