package model

import "strings"

// Object is implemented by every generated data model type.
type Object interface {
	// CWMPObject returns the metadata describing the object type.
	CWMPObject() *ObjectMetadata
}

// ObjectMetadata describes an object type of a data model.
type ObjectMetadata struct {
	// Name is the schema path, e.g. "Device.IP.Interface.{i}.".
	Name string

	// Type is the Go type name of the generated struct.
	Type string

	// Access defines whether the ACS may add and delete table entries.
	Access Access

	// MinEntries and MaxEntries bound the number of table entries
	// (MaxEntries 0 = unbounded).
	MinEntries int
	MaxEntries int

	// UniqueKeys lists parameter sets whose values identify a table entry.
	UniqueKeys [][]string

	// Parameters lists the object's parameters in declaration order.
	Parameters []ParameterMetadata

	// Objects lists the child objects in declaration order.
	Objects []ChildMetadata

	// Description is a human-readable description.
	Description string
}

// ChildMetadata describes a child object reachable from its parent.
type ChildMetadata struct {
	// Name is the path segment of the child, e.g. "Interface".
	Name string

	// Field is the Go struct field holding the child (pointer or slice).
	Field string

	// Path is the child's schema path.
	Path string

	// Multi indicates a multi-instance object held in a slice.
	Multi bool

	// NumEntriesParameter is the parent parameter counting the entries of a
	// multi-instance child, e.g. "InterfaceNumberOfEntries".
	NumEntriesParameter string
}

// IsMultiInstance returns true if the object is a table.
func (m *ObjectMetadata) IsMultiInstance() bool {
	return strings.HasSuffix(m.Name, ".{i}.")
}

// IsRoot returns true if the object has no parent object.
func (m *ObjectMetadata) IsRoot() bool {
	return strings.Count(strings.TrimSuffix(strings.TrimSuffix(m.Name, "{i}."), "."), ".") == 0
}

// Segment returns the last name segment of the path, e.g. "Interface" for
// "Device.IP.Interface.{i}.".
func (m *ObjectMetadata) Segment() string {
	name := strings.TrimSuffix(m.Name, "{i}.")
	name = strings.TrimSuffix(name, ".")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Parameter returns the parameter metadata with the given name.
func (m *ObjectMetadata) Parameter(name string) (*ParameterMetadata, bool) {
	for i := range m.Parameters {
		if m.Parameters[i].Name == name {
			return &m.Parameters[i], true
		}
	}
	return nil, false
}

// Child returns the child object metadata with the given path segment.
func (m *ObjectMetadata) Child(name string) (*ChildMetadata, bool) {
	for i := range m.Objects {
		if m.Objects[i].Name == name {
			return &m.Objects[i], true
		}
	}
	return nil, false
}

// ChildByEntriesParameter returns the child counted by the given
// NumberOfEntries parameter.
func (m *ObjectMetadata) ChildByEntriesParameter(name string) (*ChildMetadata, bool) {
	if name == "" {
		return nil, false
	}
	for i := range m.Objects {
		if m.Objects[i].NumEntriesParameter == name {
			return &m.Objects[i], true
		}
	}
	return nil, false
}
