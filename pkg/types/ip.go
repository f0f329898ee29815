package types

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/fxamacker/cbor/v2"
)

// IP errors.
var (
	ErrInvalidIPAddress = errors.New("invalid IP address")
	ErrInvalidIPPrefix  = errors.New("invalid IP prefix")
)

// IPAddress is an IPv4 or IPv6 address.
type IPAddress struct {
	addr netip.Addr
}

// IPAddressFrom wraps a netip.Addr.
func IPAddressFrom(a netip.Addr) IPAddress {
	return IPAddress{addr: a}
}

// ParseIPAddress parses an IPv4 or IPv6 address. An empty string yields the
// zero value.
func ParseIPAddress(s string) (IPAddress, error) {
	if s == "" {
		return IPAddress{}, nil
	}
	a, err := netip.ParseAddr(s)
	if err != nil {
		return IPAddress{}, fmt.Errorf("%w: %q", ErrInvalidIPAddress, s)
	}
	return IPAddress{addr: a}, nil
}

// MustParseIPAddress is like ParseIPAddress but panics on error.
func MustParseIPAddress(s string) IPAddress {
	a, err := ParseIPAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Addr returns the underlying netip.Addr.
func (a IPAddress) Addr() netip.Addr { return a.addr }

// IsValid returns true if the address is set.
func (a IPAddress) IsValid() bool { return a.addr.IsValid() }

// Is4 returns true for IPv4 addresses.
func (a IPAddress) Is4() bool { return a.addr.Is4() }

// Is6 returns true for IPv6 addresses.
func (a IPAddress) Is6() bool { return a.addr.Is6() }

// String returns the textual address, or "" if unset.
func (a IPAddress) String() string {
	if !a.addr.IsValid() {
		return ""
	}
	return a.addr.String()
}

// Equal reports whether a and o are the same address.
func (a IPAddress) Equal(o IPAddress) bool { return a.addr == o.addr }

// MarshalText implements encoding.TextMarshaler.
func (a IPAddress) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *IPAddress) UnmarshalText(text []byte) error {
	v, err := ParseIPAddress(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (a IPAddress) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(a.String())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (a *IPAddress) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	return a.UnmarshalText([]byte(s))
}

// IPPrefix is an IPv4 or IPv6 prefix in CIDR notation.
type IPPrefix struct {
	prefix netip.Prefix
}

// ParseIPPrefix parses "2001:db8::/64". An empty string yields the zero value.
func ParseIPPrefix(s string) (IPPrefix, error) {
	if s == "" {
		return IPPrefix{}, nil
	}
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return IPPrefix{}, fmt.Errorf("%w: %q", ErrInvalidIPPrefix, s)
	}
	return IPPrefix{prefix: p}, nil
}

// MustParseIPPrefix is like ParseIPPrefix but panics on error.
func MustParseIPPrefix(s string) IPPrefix {
	p, err := ParseIPPrefix(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Prefix returns the underlying netip.Prefix.
func (p IPPrefix) Prefix() netip.Prefix { return p.prefix }

// IsValid returns true if the prefix is set.
func (p IPPrefix) IsValid() bool { return p.prefix.IsValid() }

// String returns the CIDR notation, or "" if unset.
func (p IPPrefix) String() string {
	if !p.prefix.IsValid() {
		return ""
	}
	return p.prefix.String()
}

// Equal reports whether p and o are the same prefix.
func (p IPPrefix) Equal(o IPPrefix) bool { return p.prefix == o.prefix }

// MarshalText implements encoding.TextMarshaler.
func (p IPPrefix) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *IPPrefix) UnmarshalText(text []byte) error {
	v, err := ParseIPPrefix(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (p IPPrefix) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(p.String())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (p *IPPrefix) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}
