package model

import (
	"fmt"
	"strings"
)

// Access flags for parameters and objects.
type Access uint8

const (
	// AccessReadOnly parameters are reported by the CPE and cannot be set.
	// For objects it means entries cannot be added or deleted by the ACS.
	AccessReadOnly Access = iota

	// AccessReadWrite parameters can be set by the ACS.
	// For objects it means entries can be added and deleted by the ACS.
	AccessReadWrite
)

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a == AccessReadWrite }

// String returns the access as it appears in BBF data model definitions.
func (a Access) String() string {
	if a.CanWrite() {
		return "readWrite"
	}
	return "readOnly"
}

// ParseAccess parses "readOnly" or "readWrite". An empty string is readOnly.
func ParseAccess(s string) (Access, error) {
	switch s {
	case "", "readOnly":
		return AccessReadOnly, nil
	case "readWrite":
		return AccessReadWrite, nil
	default:
		return AccessReadOnly, fmt.Errorf("unknown access %q", s)
	}
}

// DataType represents the type of a parameter value.
type DataType uint8

const (
	TypeUnknown DataType = iota
	TypeString
	TypeBoolean
	TypeInt
	TypeUnsignedInt
	TypeLong
	TypeUnsignedLong
	TypeDateTime
	TypeBase64
	TypeHexBinary

	// Named data types from the BBF common definitions.
	TypeMACAddress
	TypeIPAddress
	TypeIPv4Address
	TypeIPv6Address
	TypeIPPrefix
	TypeIPv4Prefix
	TypeIPv6Prefix
	TypeUUID
	TypeAlias
	TypeStatsCounter32
	TypeStatsCounter64
	TypeDbm1000
)

var dataTypeNames = []string{
	"unknown", "string", "boolean", "int", "unsignedInt", "long", "unsignedLong",
	"dateTime", "base64", "hexBinary",
	"MACAddress", "IPAddress", "IPv4Address", "IPv6Address", "IPPrefix",
	"IPv4Prefix", "IPv6Prefix", "UUID", "Alias", "StatsCounter32",
	"StatsCounter64", "Dbm1000",
}

// String returns the data type name.
func (d DataType) String() string {
	if int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return "unknown"
}

// Base returns the xsd base type used for the value on the wire.
// Named string types (MACAddress, IPAddress, ...) are strings, counters are
// unsigned integers.
func (d DataType) Base() DataType {
	switch d {
	case TypeMACAddress, TypeIPAddress, TypeIPv4Address, TypeIPv6Address,
		TypeIPPrefix, TypeIPv4Prefix, TypeIPv6Prefix, TypeUUID, TypeAlias:
		return TypeString
	case TypeStatsCounter32:
		return TypeUnsignedInt
	case TypeStatsCounter64:
		return TypeUnsignedLong
	case TypeDbm1000:
		return TypeInt
	default:
		return d
	}
}

// XSD returns the type as it appears in a ParameterValueStruct, e.g. "xsd:string".
func (d DataType) XSD() string {
	return "xsd:" + d.Base().String()
}

// ParseDataType parses a data type name. The "xsd:" prefix is accepted.
func ParseDataType(s string) (DataType, error) {
	name := strings.TrimPrefix(s, "xsd:")
	for i, n := range dataTypeNames {
		if i > 0 && n == name {
			return DataType(i), nil
		}
	}
	return TypeUnknown, fmt.Errorf("unknown data type %q", s)
}

// ParameterMetadata describes a parameter of an object.
type ParameterMetadata struct {
	// Name is the parameter name as it appears in the path.
	Name string

	// Field is the Go struct field holding the value.
	Field string

	// Type is the data type of the parameter.
	Type DataType

	// Access defines whether the ACS may set the parameter.
	Access Access

	// List indicates a comma-separated list value.
	List bool

	// MinLength and MaxLength bound the string length (0 = unbounded).
	MinLength int
	MaxLength int

	// MinValue and MaxValue bound numeric values (nil = unbounded).
	MinValue *int64
	MaxValue *int64

	// Enumeration lists the allowed string values.
	Enumeration []string

	// Default is the literal default value, if any.
	Default string

	// Hidden parameters always read as an empty string (e.g. passwords).
	Hidden bool

	// Units is the unit of measurement (e.g. "seconds", "milliseconds").
	Units string

	// Description is a human-readable description.
	Description string
}

// Writable returns true if the ACS may set the parameter.
func (p *ParameterMetadata) Writable() bool {
	return p.Access.CanWrite()
}

// AllowsValue reports whether v is a member of the enumeration.
// Parameters without an enumeration allow every value.
func (p *ParameterMetadata) AllowsValue(v string) bool {
	if len(p.Enumeration) == 0 {
		return true
	}
	for _, e := range p.Enumeration {
		if e == v {
			return true
		}
	}
	return false
}

// Int64 returns a pointer to v. Used in generated range bounds.
func Int64(v int64) *int64 {
	return &v
}
