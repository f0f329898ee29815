package types

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// ErrInvalidUUID is returned for malformed UUIDs.
var ErrInvalidUUID = errors.New("invalid UUID")

// UUID is a UUID parameter value (RFC 4122), e.g. a deployment unit UUID.
type UUID struct {
	id    uuid.UUID
	valid bool
}

// NewUUID returns a random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New(), valid: true}
}

// UUIDFrom wraps a uuid.UUID.
func UUIDFrom(id uuid.UUID) UUID {
	return UUID{id: id, valid: true}
}

// ParseUUID parses the canonical 36-character form. An empty string yields
// the zero value.
func ParseUUID(s string) (UUID, error) {
	if s == "" {
		return UUID{}, nil
	}
	if len(s) != 36 {
		return UUID{}, fmt.Errorf("%w: %q", ErrInvalidUUID, s)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("%w: %q", ErrInvalidUUID, s)
	}
	return UUID{id: id, valid: true}, nil
}

// MustParseUUID is like ParseUUID but panics on error.
func MustParseUUID(s string) UUID {
	u, err := ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return u
}

// UUID returns the underlying uuid.UUID (uuid.Nil if unset).
func (u UUID) UUID() uuid.UUID { return u.id }

// IsValid returns true if the UUID is set.
func (u UUID) IsValid() bool { return u.valid }

// String returns the canonical form, or "" if unset.
func (u UUID) String() string {
	if !u.valid {
		return ""
	}
	return u.id.String()
}

// Equal reports whether u and o are the same UUID.
func (u UUID) Equal(o UUID) bool { return u == o }

// MarshalText implements encoding.TextMarshaler.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UUID) UnmarshalText(text []byte) error {
	v, err := ParseUUID(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (u UUID) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(u.String())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (u *UUID) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}
