package params

import (
	"fmt"
	"log/slog"
	"reflect"
	"strconv"

	"github.com/cwmp-models/cwmp-go/pkg/model"
)

// ParameterValue is a parameter path with its value in string form.
type ParameterValue struct {
	Name  string
	Value string
	Type  model.DataType
}

// ParameterInfo is an entry of a GetParameterNames response.
type ParameterInfo struct {
	Name     string
	Writable bool
}

type options struct {
	rootInstance int
	logger       *slog.Logger
}

// Option configures the parameter operations.
type Option func(*options)

// WithRootInstance sets the instance number of a multi-instance root object
// such as VoiceService or STBService. The default is 1.
func WithRootInstance(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.rootInstance = n
		}
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{rootInstance: 1}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// debugLog logs a debug message if a logger is configured.
func (o *options) debugLog(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}

// Flatten returns every parameter of the tree below root in document order:
// the parameters of an object, then its NumberOfEntries parameters, then its
// child objects depth-first.
func Flatten(root model.Object, opts ...Option) ([]ParameterValue, error) {
	o := newOptions(opts)
	n, err := rootNode(root, o)
	if err != nil {
		return nil, err
	}
	var out []ParameterValue
	collectValues(n, &out)
	o.debugLog("flattened", "root", n.path, "parameters", len(out))
	return out, nil
}

// GetParameterValues returns the values of the named parameters. A partial
// path selects every parameter below the object or table it names, and the
// empty name selects the whole tree. Unknown names fail with
// FaultInvalidParameterName.
func GetParameterValues(root model.Object, names []string, opts ...Option) ([]ParameterValue, error) {
	o := newOptions(opts)
	n, err := rootNode(root, o)
	if err != nil {
		return nil, &Fault{Code: FaultInternalError, Message: err.Error()}
	}

	var out []ParameterValue
	for _, name := range names {
		t, err := resolve(n, name)
		if err != nil {
			o.debugLog("get failed", "name", name, "error", err)
			return nil, &Fault{Code: FaultInvalidParameterName, Message: err.Error()}
		}
		switch t.kind {
		case targetParameter:
			out = append(out, parameterValue(t.node, t.param))
		case targetCounter:
			out = append(out, counterValue(t.node, t.child))
		case targetObject:
			collectValues(t.node, &out)
		case targetTable:
			for _, e := range tableEntries(t) {
				collectValues(e, &out)
			}
		}
	}
	return out, nil
}

// GetParameterNames returns the objects and parameters below path. With
// nextLevel only the direct children are listed. Object names end in ".".
// Table entries are writable when the ACS may delete them, tables when it
// may add entries.
func GetParameterNames(root model.Object, path string, nextLevel bool, opts ...Option) ([]ParameterInfo, error) {
	o := newOptions(opts)
	n, err := rootNode(root, o)
	if err != nil {
		return nil, &Fault{Code: FaultInternalError, Message: err.Error()}
	}

	if path == "" && nextLevel {
		return []ParameterInfo{{Name: n.path}}, nil
	}

	t, err := resolve(n, path)
	if err != nil {
		o.debugLog("names failed", "path", path, "error", err)
		return nil, &Fault{Code: FaultInvalidParameterName, Message: err.Error()}
	}

	var out []ParameterInfo
	switch t.kind {
	case targetParameter, targetCounter:
		if nextLevel {
			return nil, newFault(FaultInvalidArguments, "NextLevel is true for parameter %s", t.path)
		}
		writable := t.kind == targetParameter && t.param.Writable()
		out = append(out, ParameterInfo{Name: t.path, Writable: writable})
	case targetObject:
		if nextLevel {
			levelNames(t.node, &out)
		} else {
			objectNames(t.node, entryWritable(t.node.meta), &out)
		}
	case targetTable:
		access := tableWritable(t)
		if !nextLevel {
			out = append(out, ParameterInfo{Name: t.path, Writable: access})
		}
		for _, e := range tableEntries(t) {
			if nextLevel {
				out = append(out, ParameterInfo{Name: e.path, Writable: access})
			} else {
				objectNames(e, access, &out)
			}
		}
	}
	return out, nil
}

// SetParameterValues assigns the given values. The request is applied
// completely or not at all: every value is resolved, type checked and
// checked against the declared bounds first, and any failure rejects the
// request with FaultInvalidArguments listing the per-parameter faults.
func SetParameterValues(root model.Object, values []ParameterValue, opts ...Option) error {
	o := newOptions(opts)
	n, err := rootNode(root, o)
	if err != nil {
		return &Fault{Code: FaultInternalError, Message: err.Error()}
	}

	type assignment struct {
		field reflect.Value
		value any
	}

	var (
		pending []assignment
		faults  []ParameterFault
		seen    = make(map[string]bool, len(values))
	)
	for _, pv := range values {
		if seen[pv.Name] {
			return newFault(FaultInvalidArguments, "duplicate parameter %s", pv.Name)
		}
		seen[pv.Name] = true

		field, value, code, err := prepareSet(n, pv)
		if err != nil {
			faults = append(faults, ParameterFault{Name: pv.Name, Code: code, Message: err.Error()})
			continue
		}
		pending = append(pending, assignment{field: field, value: value})
	}

	if len(faults) > 0 {
		o.debugLog("set rejected", "parameters", len(values), "faults", len(faults))
		return &Fault{Code: FaultInvalidArguments, Parameters: faults}
	}

	for _, a := range pending {
		a.field.Set(reflect.ValueOf(a.value))
	}
	o.debugLog("set applied", "parameters", len(pending))
	return nil
}

// prepareSet resolves and parses a value without assigning it.
func prepareSet(root node, pv ParameterValue) (reflect.Value, any, FaultCode, error) {
	t, err := resolve(root, pv.Name)
	if err != nil {
		return reflect.Value{}, nil, FaultInvalidParameterName, err
	}
	switch t.kind {
	case targetParameter:
	case targetCounter:
		return reflect.Value{}, nil, FaultNonWritableParameter, fmt.Errorf("%s is read-only", t.path)
	default:
		return reflect.Value{}, nil, FaultInvalidParameterName, fmt.Errorf("%w: %s is an object", ErrInvalidName, t.path)
	}

	p := t.param
	if !p.Writable() {
		return reflect.Value{}, nil, FaultNonWritableParameter, fmt.Errorf("%s is read-only", t.path)
	}
	if pv.Type != model.TypeUnknown && pv.Type.Base() != p.Type.Base() {
		return reflect.Value{}, nil, FaultInvalidParameterType,
			fmt.Errorf("%s has type %s, got %s", t.path, p.Type.XSD(), pv.Type.XSD())
	}

	value, err := ParseValue(p, pv.Value)
	if err != nil {
		return reflect.Value{}, nil, FaultInvalidParameterValue, err
	}
	if err := CheckValue(p, pv.Value, value); err != nil {
		return reflect.Value{}, nil, FaultInvalidParameterValue, err
	}

	field := t.node.field(p)
	if !field.CanSet() || field.Type() != reflect.TypeOf(value) {
		return reflect.Value{}, nil, FaultInternalError, fmt.Errorf("%s: field %s cannot hold %T", t.path, p.Field, value)
	}
	return field, value, 0, nil
}

func parameterValue(n node, p *model.ParameterMetadata) ParameterValue {
	pv := ParameterValue{Name: n.path + p.Name, Type: p.Type}
	if p.Hidden {
		return pv
	}
	if s, err := FormatValue(n.field(p).Interface()); err == nil {
		pv.Value = s
	}
	return pv
}

func counterValue(n node, c *model.ChildMetadata) ParameterValue {
	return ParameterValue{
		Name:  n.path + c.NumEntriesParameter,
		Value: strconv.Itoa(n.tableLen(c)),
		Type:  model.TypeUnsignedInt,
	}
}

func collectValues(n node, out *[]ParameterValue) {
	for i := range n.meta.Parameters {
		*out = append(*out, parameterValue(n, &n.meta.Parameters[i]))
	}
	for i := range n.meta.Objects {
		if c := &n.meta.Objects[i]; c.Multi && c.NumEntriesParameter != "" {
			*out = append(*out, counterValue(n, c))
		}
	}
	for i := range n.meta.Objects {
		c := &n.meta.Objects[i]
		if !c.Multi {
			if child, ok := n.child(c); ok {
				collectValues(child, out)
			}
			continue
		}
		for _, e := range n.entries(c) {
			collectValues(e, out)
		}
	}
}

// objectNames lists an object and everything below it.
func objectNames(n node, writable bool, out *[]ParameterInfo) {
	*out = append(*out, ParameterInfo{Name: n.path, Writable: writable})
	for i := range n.meta.Parameters {
		p := &n.meta.Parameters[i]
		*out = append(*out, ParameterInfo{Name: n.path + p.Name, Writable: p.Writable()})
	}
	for i := range n.meta.Objects {
		if c := &n.meta.Objects[i]; c.Multi && c.NumEntriesParameter != "" {
			*out = append(*out, ParameterInfo{Name: n.path + c.NumEntriesParameter})
		}
	}
	for i := range n.meta.Objects {
		c := &n.meta.Objects[i]
		if !c.Multi {
			if child, ok := n.child(c); ok {
				objectNames(child, false, out)
			}
			continue
		}
		access := tableAccess(c).CanWrite()
		*out = append(*out, ParameterInfo{Name: n.path + c.Name + ".", Writable: access})
		for _, e := range n.entries(c) {
			objectNames(e, access, out)
		}
	}
}

// levelNames lists the direct children of an object.
func levelNames(n node, out *[]ParameterInfo) {
	for i := range n.meta.Parameters {
		p := &n.meta.Parameters[i]
		*out = append(*out, ParameterInfo{Name: n.path + p.Name, Writable: p.Writable()})
	}
	for i := range n.meta.Objects {
		if c := &n.meta.Objects[i]; c.Multi && c.NumEntriesParameter != "" {
			*out = append(*out, ParameterInfo{Name: n.path + c.NumEntriesParameter})
		}
	}
	for i := range n.meta.Objects {
		c := &n.meta.Objects[i]
		if !c.Multi {
			if _, ok := n.child(c); ok {
				*out = append(*out, ParameterInfo{Name: n.path + c.Name + "."})
			}
			continue
		}
		*out = append(*out, ParameterInfo{Name: n.path + c.Name + ".", Writable: tableAccess(c).CanWrite()})
	}
}

// entryWritable reports whether an object instance can be deleted.
func entryWritable(meta *model.ObjectMetadata) bool {
	return meta.IsMultiInstance() && meta.Access.CanWrite()
}

func tableWritable(t target) bool {
	if t.child == nil {
		return t.node.meta.Access.CanWrite()
	}
	return tableAccess(t.child).CanWrite()
}

// tableEntries returns the entries of a table target. The table of a
// multi-instance root holds the root alone.
func tableEntries(t target) []node {
	if t.child == nil {
		return []node{t.node}
	}
	return t.node.entries(t.child)
}
