package types

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// ErrInvalidMACAddress is returned for malformed MAC addresses.
var ErrInvalidMACAddress = errors.New("invalid MAC address")

// MACAddress is a 48-bit IEEE 802 MAC address.
type MACAddress struct {
	addr  [6]byte
	valid bool
}

// MACAddressFrom returns a MACAddress for a 6-byte hardware address.
func MACAddressFrom(hw net.HardwareAddr) (MACAddress, error) {
	if len(hw) != 6 {
		return MACAddress{}, fmt.Errorf("%w: %d bytes", ErrInvalidMACAddress, len(hw))
	}
	var m MACAddress
	copy(m.addr[:], hw)
	m.valid = true
	return m, nil
}

// ParseMACAddress parses "00:1A:2B:3C:4D:5E". Dashes are accepted as separator.
// An empty string yields the zero value.
func ParseMACAddress(s string) (MACAddress, error) {
	if s == "" {
		return MACAddress{}, nil
	}
	hw, err := net.ParseMAC(strings.ReplaceAll(s, "-", ":"))
	if err != nil {
		return MACAddress{}, fmt.Errorf("%w: %q", ErrInvalidMACAddress, s)
	}
	return MACAddressFrom(hw)
}

// MustParseMACAddress is like ParseMACAddress but panics on error.
func MustParseMACAddress(s string) MACAddress {
	m, err := ParseMACAddress(s)
	if err != nil {
		panic(err)
	}
	return m
}

// IsValid returns true if the address is set.
func (m MACAddress) IsValid() bool { return m.valid }

// HardwareAddr returns the address as net.HardwareAddr (nil if unset).
func (m MACAddress) HardwareAddr() net.HardwareAddr {
	if !m.valid {
		return nil
	}
	return net.HardwareAddr(m.addr[:])
}

// String returns the upper-case colon-separated form, or "" if unset.
func (m MACAddress) String() string {
	if !m.valid {
		return ""
	}
	return strings.ToUpper(net.HardwareAddr(m.addr[:]).String())
}

// Equal reports whether m and o are the same address.
func (m MACAddress) Equal(o MACAddress) bool { return m == o }

// MarshalText implements encoding.TextMarshaler.
func (m MACAddress) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MACAddress) UnmarshalText(text []byte) error {
	v, err := ParseMACAddress(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (m MACAddress) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(m.String())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (m *MACAddress) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	return m.UnmarshalText([]byte(s))
}
