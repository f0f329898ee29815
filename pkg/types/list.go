package types

import (
	"slices"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// StringList is a comma-separated list parameter value, e.g. the LowerLayers
// of an interface. Whitespace around items is not significant.
type StringList []string

// ParseStringList splits a comma-separated list. An empty string yields a nil
// list.
func ParseStringList(s string) StringList {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	list := make(StringList, 0, len(parts))
	for _, p := range parts {
		list = append(list, strings.TrimSpace(p))
	}
	return list
}

// MustParseStringList is ParseStringList. It exists so that generated
// defaults can use the same MustParse form for every named type.
func MustParseStringList(s string) StringList {
	return ParseStringList(s)
}

// Contains reports whether the list holds item.
func (l StringList) Contains(item string) bool {
	return slices.Contains(l, item)
}

// String returns the items joined by commas.
func (l StringList) String() string { return strings.Join(l, ",") }

// Equal reports whether l and o hold the same items in the same order.
// A nil list equals an empty list.
func (l StringList) Equal(o StringList) bool { return slices.Equal(l, o) }

// MarshalText implements encoding.TextMarshaler.
func (l StringList) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *StringList) UnmarshalText(text []byte) error {
	*l = ParseStringList(string(text))
	return nil
}

// MarshalCBOR implements cbor.Marshaler. The value is a CBOR array of strings.
func (l StringList) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal([]string(l))
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (l *StringList) UnmarshalCBOR(data []byte) error {
	var items []string
	if err := cbor.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = items
	return nil
}
