package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// ErrInvalidDateTime is returned for malformed dateTime values.
var ErrInvalidDateTime = errors.New("invalid dateTime")

// Special dateTime values defined by TR-106.
var (
	// UnknownTime indicates that the time is not known or not applicable.
	UnknownTime = DateTime{}

	// InfiniteTime indicates an infinite lifetime or duration.
	InfiniteTime = DateTime{t: time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)}
)

// relativeLayout is the form of a dateTime without a time zone. Such values
// are relative times (e.g. time since boot) and are written back without one.
const relativeLayout = "2006-01-02T15:04:05.999999999"

// DateTime is an xsd:dateTime parameter value.
type DateTime struct {
	t time.Time

	// relative is set for values without a time zone.
	relative bool
}

// DateTimeOf wraps a time.Time.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{t: t}
}

// ParseDateTime parses an xsd:dateTime. An empty string yields UnknownTime.
func ParseDateTime(s string) (DateTime, error) {
	if s == "" {
		return UnknownTime, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateTime{t: t}, nil
	}
	if t, err := time.Parse(relativeLayout, s); err == nil {
		return DateTime{t: t, relative: true}, nil
	}
	return DateTime{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
}

// MustParseDateTime is like ParseDateTime but panics on error.
func MustParseDateTime(s string) DateTime {
	d, err := ParseDateTime(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the underlying time.
func (d DateTime) Time() time.Time { return d.t }

// IsUnknown returns true for UnknownTime.
func (d DateTime) IsUnknown() bool { return d.t.IsZero() }

// IsInfinite returns true for InfiniteTime.
func (d DateTime) IsInfinite() bool { return d.t.Equal(InfiniteTime.t) }

// IsRelative returns true for values parsed without a time zone.
func (d DateTime) IsRelative() bool { return d.relative }

// String returns the RFC 3339 form, or the zone-less form for relative
// values. UnknownTime is "0001-01-01T00:00:00Z".
func (d DateTime) String() string {
	if d.relative {
		return d.t.Format(relativeLayout)
	}
	return d.t.Format(time.RFC3339Nano)
}

// Equal reports whether d and o denote the same instant and are both
// absolute or both relative.
func (d DateTime) Equal(o DateTime) bool {
	return d.relative == o.relative && d.t.Equal(o.t)
}

// MarshalText implements encoding.TextMarshaler.
func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DateTime) UnmarshalText(text []byte) error {
	v, err := ParseDateTime(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (d DateTime) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(d.String())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (d *DateTime) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}
