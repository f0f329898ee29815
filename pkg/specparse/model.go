// Package specparse provides the YAML parsing types and functions for
// Broadband Forum data model definition files. cwmp-gen imports this package.
package specparse

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cwmp-models/cwmp-go/pkg/model"
	"gopkg.in/yaml.v3"
)

// ErrInvalidModel is returned when a model definition fails its structural checks.
var ErrInvalidModel = errors.New("invalid model definition")

// RawModelDef represents a data model definition loaded from YAML.
type RawModelDef struct {
	Name        string         `yaml:"name"`    // "Device:2.16"
	Spec        string         `yaml:"spec"`    // "urn:broadband-forum-org:tr-181-2-16-0"
	Package     string         `yaml:"package"` // Go package name
	Description string         `yaml:"description"`
	Objects     []RawObjectDef `yaml:"objects"`
}

// RawObjectDef represents an object definition.
type RawObjectDef struct {
	Name                string            `yaml:"name"` // "Device.IP.Interface.{i}."
	Type                string            `yaml:"type"` // Go type name; derived from the path if empty
	Access              string            `yaml:"access"`
	MinEntries          int               `yaml:"minEntries"`
	MaxEntries          int               `yaml:"maxEntries"`
	NumEntriesParameter string            `yaml:"numEntriesParameter"`
	UniqueKeys          [][]string        `yaml:"uniqueKeys"`
	Description         string            `yaml:"description"`
	Parameters          []RawParameterDef `yaml:"parameters"`
}

// RawParameterDef represents a parameter definition.
type RawParameterDef struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"` // "string", "boolean", "unsignedInt", "MACAddress", ...
	Access      string   `yaml:"access"`
	List        bool     `yaml:"list"`
	MinLength   int      `yaml:"minLength"`
	MaxLength   int      `yaml:"maxLength"`
	Min         *int64   `yaml:"min"`
	Max         *int64   `yaml:"max"`
	Enumeration []string `yaml:"enumeration"`
	Default     any      `yaml:"default"`
	Hidden      bool     `yaml:"hidden"`
	Units       string   `yaml:"units"`
	Description string   `yaml:"description"`
}

// HasDefault returns true if the definition declares a default value.
func (p *RawParameterDef) HasDefault() bool {
	return p.Default != nil
}

// DefaultString returns the default value in its CWMP string form.
func (p *RawParameterDef) DefaultString() string {
	if p.Default == nil {
		return ""
	}
	return fmt.Sprint(p.Default)
}

// ParseModelDef parses a model definition from YAML bytes and applies the
// structural checks.
func ParseModelDef(data []byte) (*RawModelDef, error) {
	var def RawModelDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing model def: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("model definition missing name")
	}
	def.fillTypes()
	if err := def.Check(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadModelDef loads and parses a model definition from a file.
func LoadModelDef(path string) (*RawModelDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseModelDef(data)
}

// fillTypes derives missing Go type names from the last path segment.
func (d *RawModelDef) fillTypes() {
	for i := range d.Objects {
		if d.Objects[i].Type == "" {
			d.Objects[i].Type = GoName(ObjectSegment(d.Objects[i].Name))
		}
	}
}

// Check validates the structure of the definition: object paths are unique
// and well-formed, every non-root object has its parent defined, Go type
// names do not collide, and all parameter types and access values are known.
func (d *RawModelDef) Check() error {
	var errs []error
	paths := make(map[string]bool, len(d.Objects))
	types := make(map[string]string, len(d.Objects))

	for _, obj := range d.Objects {
		if !strings.HasSuffix(obj.Name, ".") {
			errs = append(errs, fmt.Errorf("object %q: path must end with \".\"", obj.Name))
		}
		if paths[obj.Name] {
			errs = append(errs, fmt.Errorf("object %q: defined twice", obj.Name))
		}
		paths[obj.Name] = true

		if other, dup := types[obj.Type]; dup {
			errs = append(errs, fmt.Errorf("object %q: type %s already used by %q", obj.Name, obj.Type, other))
		}
		types[obj.Type] = obj.Name

		if _, err := model.ParseAccess(obj.Access); err != nil {
			errs = append(errs, fmt.Errorf("object %q: %w", obj.Name, err))
		}

		params := make(map[string]bool, len(obj.Parameters))
		for _, p := range obj.Parameters {
			if params[p.Name] {
				errs = append(errs, fmt.Errorf("object %q: parameter %s defined twice", obj.Name, p.Name))
			}
			params[p.Name] = true
			if _, err := model.ParseDataType(p.Type); err != nil {
				errs = append(errs, fmt.Errorf("parameter %s%s: %w", obj.Name, p.Name, err))
			}
			if _, err := model.ParseAccess(p.Access); err != nil {
				errs = append(errs, fmt.Errorf("parameter %s%s: %w", obj.Name, p.Name, err))
			}
		}
		for _, key := range obj.UniqueKeys {
			for _, k := range key {
				if !params[k] {
					errs = append(errs, fmt.Errorf("object %q: unique key %s is not a parameter", obj.Name, k))
				}
			}
		}
	}

	for _, obj := range d.Objects {
		parent := ParentPath(obj.Name)
		if parent != "" && !paths[parent] {
			errs = append(errs, fmt.Errorf("object %q: parent %q not defined", obj.Name, parent))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w %s: %w", ErrInvalidModel, d.Name, errors.Join(errs...))
	}
	return nil
}

// Object returns the object definition with the given path.
func (d *RawModelDef) Object(name string) (*RawObjectDef, bool) {
	for i := range d.Objects {
		if d.Objects[i].Name == name {
			return &d.Objects[i], true
		}
	}
	return nil, false
}

// Children returns the direct child objects of the object with the given
// path, in definition order.
func (d *RawModelDef) Children(name string) []*RawObjectDef {
	var result []*RawObjectDef
	for i := range d.Objects {
		if ParentPath(d.Objects[i].Name) == name {
			result = append(result, &d.Objects[i])
		}
	}
	return result
}

// Roots returns the objects without a parent.
func (d *RawModelDef) Roots() []*RawObjectDef {
	return d.Children("")
}

// IsMultiInstance returns true for table objects.
func (o *RawObjectDef) IsMultiInstance() bool {
	return strings.HasSuffix(o.Name, ".{i}.")
}

// ParentPath returns the path of the enclosing object, or "" for a root.
// "Device.IP.Interface.{i}.IPv4Address.{i}." has parent "Device.IP.Interface.{i}.".
func ParentPath(name string) string {
	body := strings.TrimSuffix(strings.TrimSuffix(name, "{i}."), ".")
	i := strings.LastIndexByte(body, '.')
	if i < 0 {
		return ""
	}
	return body[:i+1]
}

// ObjectSegment returns the last name segment of an object path.
func ObjectSegment(name string) string {
	body := strings.TrimSuffix(strings.TrimSuffix(name, "{i}."), ".")
	if i := strings.LastIndexByte(body, '.'); i >= 0 {
		return body[i+1:]
	}
	return body
}
