// Package codec encodes data model objects as XML or CBOR documents.
//
// # XML
//
// XML documents follow the struct tags of the generated types: each object is
// an element named after its path segment, each parameter a child element
// holding the value in its CWMP string form, and each table entry a repeated
// element. The document element is a root object ("Device", "VoiceService"),
// which lets DecodeXML pick the Go type from the registry.
//
// # CBOR
//
// CBOR encoding is deterministic (canonical key order, definite lengths).
// Objects are maps keyed by parameter and child names. A Document wraps an
// object with its schema path so any registered object can be decoded without
// knowing its type in advance.
package codec
