package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cwmp-models/cwmp-go/pkg/model"
)

// ErrUnknownFormat is returned for unsupported document formats.
var ErrUnknownFormat = errors.New("unknown format")

// Format identifies a document encoding.
type Format uint8

const (
	FormatXML Format = iota
	FormatCBOR
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatCBOR:
		return "cbor"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name ("xml" or "cbor").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "xml":
		return FormatXML, nil
	case "cbor", "cbr":
		return FormatCBOR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath returns the format matching a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Encode encodes obj in the given format. CBOR output is a Document.
func Encode(f Format, obj model.Object) ([]byte, error) {
	switch f {
	case FormatXML:
		return MarshalXML(obj)
	case FormatCBOR:
		return EncodeDocument(obj)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
}

// Decode decodes a document in the given format, creating the object from
// the registry.
func Decode(f Format, data []byte) (model.Object, error) {
	switch f {
	case FormatXML:
		return DecodeXML(data)
	case FormatCBOR:
		return DecodeDocument(data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
}
