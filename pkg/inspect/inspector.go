// Package inspect provides read and write access to a populated data model
// tree for diagnostic tools.
package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwmp-models/cwmp-go/pkg/model"
	"github.com/cwmp-models/cwmp-go/pkg/parampath"
	"github.com/cwmp-models/cwmp-go/pkg/params"
)

// Errors returned by the inspector.
var (
	ErrParameterNotFound = errors.New("parameter not found")
	ErrNotWritable       = errors.New("parameter is not writable")
)

// Inspector provides inspection and modification of a data model tree.
type Inspector struct {
	root model.Object
	opts []params.Option
}

// NewInspector creates an inspector for a root object such as a Device,
// VoiceService or STBService.
func NewInspector(root model.Object, opts ...params.Option) *Inspector {
	return &Inspector{root: root, opts: opts}
}

// Root returns the inspected root object.
func (i *Inspector) Root() model.Object {
	return i.root
}

// ObjectInfo is an object of the inspected tree with its parameters and
// child objects. Table objects such as "Device.IP.Interface." have no
// parameters and hold their entries as children.
type ObjectInfo struct {
	Path       string
	Table      bool
	Writable   bool
	Parameters []ParameterInfo
	Objects    []*ObjectInfo
}

// ParameterInfo describes a parameter of the inspected tree.
type ParameterInfo struct {
	Path   string
	Name   string
	Value  string
	Type   model.DataType
	Access model.Access
	List   bool
	Hidden bool
	Units  string

	// Counter marks a computed NumberOfEntries parameter.
	Counter bool
}

// Tree returns the inspected tree below path. The empty path selects the
// root object.
func (i *Inspector) Tree(path string) (*ObjectInfo, error) {
	names, err := params.GetParameterNames(i.root, path, false, i.opts...)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 || !isObjectPath(names[0].Name) {
		return nil, fmt.Errorf("%s: not an object path", path)
	}
	values, err := params.GetParameterValues(i.root, []string{path}, i.opts...)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]params.ParameterValue, len(values))
	for _, v := range values {
		byName[v.Name] = v
	}

	// Names come depth-first, so the enclosing object is on the stack.
	var top *ObjectInfo
	var stack []*ObjectInfo
	for _, n := range names {
		if isObjectPath(n.Name) {
			obj := &ObjectInfo{
				Path:     n.Name,
				Table:    isTablePath(n.Name),
				Writable: n.Writable,
			}
			for len(stack) > 0 && !strings.HasPrefix(n.Name, stack[len(stack)-1].Path) {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				top = obj
			} else {
				parent := stack[len(stack)-1]
				parent.Objects = append(parent.Objects, obj)
			}
			stack = append(stack, obj)
			continue
		}
		if len(stack) == 0 {
			continue
		}
		obj := stack[len(stack)-1]
		obj.Parameters = append(obj.Parameters, describe(byName[n.Name]))
	}
	return top, nil
}

// Parameter returns a single parameter.
func (i *Inspector) Parameter(path string) (*ParameterInfo, error) {
	if path == "" || isObjectPath(path) {
		return nil, fmt.Errorf("%w: %s", ErrParameterNotFound, path)
	}
	values, err := params.GetParameterValues(i.root, []string{path}, i.opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParameterNotFound, path, err)
	}
	info := describe(values[0])
	return &info, nil
}

// Parameters returns every parameter below a partial path.
func (i *Inspector) Parameters(path string) ([]ParameterInfo, error) {
	values, err := params.GetParameterValues(i.root, []string{path}, i.opts...)
	if err != nil {
		return nil, err
	}
	out := make([]ParameterInfo, len(values))
	for j, v := range values {
		out[j] = describe(v)
	}
	return out, nil
}

// SetParameter sets a single parameter from its string form.
func (i *Inspector) SetParameter(path, value string) error {
	info, err := i.Parameter(path)
	if err != nil {
		return err
	}
	if !info.Access.CanWrite() {
		return fmt.Errorf("%w: %s", ErrNotWritable, path)
	}
	return params.SetParameterValues(i.root, []params.ParameterValue{{Name: path, Value: value}}, i.opts...)
}

// describe adds the schema metadata of a parameter to its value.
func describe(v params.ParameterValue) ParameterInfo {
	info := ParameterInfo{
		Path:  v.Name,
		Name:  v.Name,
		Value: v.Value,
		Type:  v.Type,
	}
	p, err := parampath.Parse(v.Name)
	if err != nil {
		return info
	}
	info.Name = p.Last().String()

	meta, err := model.Lookup(p.Schema().Parent().String())
	if err != nil {
		return info
	}
	if pm, ok := meta.Parameter(info.Name); ok {
		info.Access = pm.Access
		info.List = pm.List
		info.Hidden = pm.Hidden
		info.Units = pm.Units
		return info
	}
	if _, ok := meta.ChildByEntriesParameter(info.Name); ok {
		info.Counter = true
	}
	return info
}

func isObjectPath(name string) bool {
	return strings.HasSuffix(name, ".")
}

// isTablePath reports whether an object path names a table rather than one
// of its entries.
func isTablePath(name string) bool {
	p, err := parampath.Parse(name)
	if err != nil || p.Len() == 0 {
		return false
	}
	last := p.Last()
	if last.IsInstance() {
		return false
	}
	meta, err := model.Lookup(p.Schema().Instance(0).Schema().String())
	return err == nil && meta.IsMultiInstance()
}
