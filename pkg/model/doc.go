// Package model implements the CWMP object metadata shared by all generated
// Broadband Forum data models.
//
// # Object Hierarchy
//
// Broadband Forum data models (TR-104, TR-135, TR-181) describe a tree of
// objects addressed by dotted paths:
//
//	Device.
//	├── DeviceInfo.
//	├── IP.
//	│   └── Interface.{i}.
//	│       ├── IPv4Address.{i}.
//	│       └── Stats.
//	└── Hosts.
//	    └── Host.{i}.
//
// An object ending in "{i}." is a multi-instance object (a table). Every other
// object occurs at most once below its parent.
//
// # Metadata
//
// Each generated Go type describes itself through an ObjectMetadata value:
//   - Name: the schema path ("Device.IP.Interface.{i}.")
//   - Parameters: name, Go field, type, access, size and range bounds, default
//   - Objects: child objects, with the parent-level NumberOfEntries parameter
//   - UniqueKeys: parameter sets that must be unique across table entries
//
// Generated types register their metadata at init time so that codecs and the
// parameter-path surface can find a type by schema path or XML element.
//
// # Constraints
//
// Size bounds, ranges and enumerations are declarative. Validate evaluates
// them on demand; nothing in this package rejects an assignment.
package model
