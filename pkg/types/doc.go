// Package types provides Go types for the named parameter types of the
// Broadband Forum data models.
//
// Every type has a zero value meaning "not set", which encodes as an empty
// string. Text encoding follows the CWMP string representation, so the types
// work unchanged with encoding/xml, and each type also implements the CBOR
// marshaler interfaces:
//
//	MACAddress  "00:1A:2B:3C:4D:5E"
//	IPAddress   "192.168.1.1", "2001:db8::1"
//	IPPrefix    "2001:db8::/64"
//	DateTime    "2024-03-01T12:00:00Z" (UnknownTime, InfiniteTime)
//	HexBinary   "00ff10"
//	Base64      "AP8Q"
//	UUID        "f81d4fae-7dec-11d0-a765-00a0c91e6bf6"
//	StringList  "eth0,eth1"
package types
