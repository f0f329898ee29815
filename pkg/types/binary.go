package types

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Binary errors.
var (
	ErrInvalidHexBinary = errors.New("invalid hexBinary")
	ErrInvalidBase64    = errors.New("invalid base64")
)

// HexBinary is an xsd:hexBinary parameter value.
type HexBinary []byte

// ParseHexBinary decodes a hex string. Upper and lower case are accepted.
func ParseHexBinary(s string) (HexBinary, error) {
	if s == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHexBinary, err)
	}
	return HexBinary(b), nil
}

// MustParseHexBinary is like ParseHexBinary but panics on error.
func MustParseHexBinary(s string) HexBinary {
	b, err := ParseHexBinary(s)
	if err != nil {
		panic(err)
	}
	return b
}

// String returns the lower-case hex encoding.
func (h HexBinary) String() string { return hex.EncodeToString(h) }

// Equal reports whether h and o hold the same bytes.
func (h HexBinary) Equal(o HexBinary) bool { return bytes.Equal(h, o) }

// MarshalText implements encoding.TextMarshaler.
func (h HexBinary) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HexBinary) UnmarshalText(text []byte) error {
	v, err := ParseHexBinary(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// MarshalCBOR implements cbor.Marshaler. The value is a CBOR byte string.
func (h HexBinary) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal([]byte(h))
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (h *HexBinary) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	*h = b
	return nil
}

// Base64 is an xsd:base64Binary parameter value.
type Base64 []byte

// ParseBase64 decodes standard base64 with padding.
func ParseBase64(s string) (Base64, error) {
	if s == "" {
		return nil, nil
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return Base64(b), nil
}

// MustParseBase64 is like ParseBase64 but panics on error.
func MustParseBase64(s string) Base64 {
	b, err := ParseBase64(s)
	if err != nil {
		panic(err)
	}
	return b
}

// String returns the standard base64 encoding.
func (b Base64) String() string { return base64.StdEncoding.EncodeToString(b) }

// Equal reports whether b and o hold the same bytes.
func (b Base64) Equal(o Base64) bool { return bytes.Equal(b, o) }

// MarshalText implements encoding.TextMarshaler.
func (b Base64) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Base64) UnmarshalText(text []byte) error {
	v, err := ParseBase64(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// MarshalCBOR implements cbor.Marshaler. The value is a CBOR byte string.
func (b Base64) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal([]byte(b))
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (b *Base64) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = raw
	return nil
}
