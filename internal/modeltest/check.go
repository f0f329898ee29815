package modeltest

import (
	"fmt"
	"reflect"

	"github.com/cwmp-models/cwmp-go/pkg/model"
	"github.com/cwmp-models/cwmp-go/pkg/params"
	"github.com/cwmp-models/cwmp-go/pkg/types"
)

// fieldTypes maps data types to the Go type of their struct field.
var fieldTypes = map[model.DataType]reflect.Type{
	model.TypeString:         reflect.TypeFor[string](),
	model.TypeAlias:          reflect.TypeFor[string](),
	model.TypeBoolean:        reflect.TypeFor[bool](),
	model.TypeInt:            reflect.TypeFor[int32](),
	model.TypeDbm1000:        reflect.TypeFor[int32](),
	model.TypeUnsignedInt:    reflect.TypeFor[uint32](),
	model.TypeStatsCounter32: reflect.TypeFor[uint32](),
	model.TypeLong:           reflect.TypeFor[int64](),
	model.TypeUnsignedLong:   reflect.TypeFor[uint64](),
	model.TypeStatsCounter64: reflect.TypeFor[uint64](),
	model.TypeDateTime:       reflect.TypeFor[types.DateTime](),
	model.TypeBase64:         reflect.TypeFor[types.Base64](),
	model.TypeHexBinary:      reflect.TypeFor[types.HexBinary](),
	model.TypeMACAddress:     reflect.TypeFor[types.MACAddress](),
	model.TypeIPAddress:      reflect.TypeFor[types.IPAddress](),
	model.TypeIPv4Address:    reflect.TypeFor[types.IPAddress](),
	model.TypeIPv6Address:    reflect.TypeFor[types.IPAddress](),
	model.TypeIPPrefix:       reflect.TypeFor[types.IPPrefix](),
	model.TypeIPv4Prefix:     reflect.TypeFor[types.IPPrefix](),
	model.TypeIPv6Prefix:     reflect.TypeFor[types.IPPrefix](),
	model.TypeUUID:           reflect.TypeFor[types.UUID](),
}

// FieldType returns the Go type a parameter field must have.
func FieldType(p *model.ParameterMetadata) reflect.Type {
	if p.List {
		return reflect.TypeFor[types.StringList]()
	}
	return fieldTypes[p.Type]
}

// CheckObject runs every check against a registered object type.
func CheckObject(meta *model.ObjectMetadata) []*Result {
	obj, err := model.New(meta.Name)
	if err != nil {
		return []*Result{Fail("object not registered", meta.Name, err)}
	}

	results := []*Result{CheckRegistration(meta, obj)}
	results = append(results, CheckFields(obj)...)
	results = append(results, CheckDefaults(obj)...)
	results = append(results, CheckWithers(obj)...)
	return results
}

// CheckRegistration checks that the registry returns the object's own
// metadata for its schema path.
func CheckRegistration(meta *model.ObjectMetadata, obj model.Object) *Result {
	registered, err := model.Lookup(meta.Name)
	if err != nil {
		return Fail("lookup failed", meta.Name, err)
	}
	if registered != meta || obj.CWMPObject() != meta {
		return Fail(meta.Name+": registered metadata differs", meta, registered)
	}
	return Pass(meta.Name + ": registered")
}

// CheckFields checks that every parameter and child object of the metadata
// has a struct field of the right type.
func CheckFields(obj model.Object) []*Result {
	meta := obj.CWMPObject()
	v := reflect.ValueOf(obj).Elem()

	var results []*Result
	for i := range meta.Parameters {
		p := &meta.Parameters[i]
		name := meta.Name + p.Name
		f, ok := v.Type().FieldByName(p.Field)
		switch {
		case !ok:
			results = append(results, Fail(name+": missing field", p.Field, nil))
		case f.Type != FieldType(p):
			results = append(results, Fail(name+": field type", FieldType(p), f.Type))
		default:
			results = append(results, Pass(name+": field "+f.Type.String()))
		}
	}

	for _, c := range meta.Objects {
		name := meta.Name + c.Name
		f, ok := v.Type().FieldByName(c.Field)
		if !ok {
			results = append(results, Fail(name+": missing field", c.Field, nil))
			continue
		}
		want := reflect.Pointer
		if c.Multi {
			want = reflect.Slice
		}
		if f.Type.Kind() != want {
			results = append(results, Fail(name+": field kind", want, f.Type.Kind()))
			continue
		}
		results = append(results, Pass(name+": child field"))
	}
	return results
}

// CheckDefaults checks that a new object holds the declared default of
// every parameter and the zero value where no default is declared.
func CheckDefaults(obj model.Object) []*Result {
	meta := obj.CWMPObject()
	v := reflect.ValueOf(obj).Elem()

	var results []*Result
	for i := range meta.Parameters {
		p := &meta.Parameters[i]
		name := meta.Name + p.Name
		field := v.FieldByName(p.Field)
		if !field.IsValid() {
			continue
		}

		if p.Default == "" {
			if !field.IsZero() {
				results = append(results, Fail(name+": no default declared", "zero value", field.Interface()))
				continue
			}
			results = append(results, Pass(name+": zero value"))
			continue
		}

		want, err := canonical(p, p.Default)
		if err != nil {
			results = append(results, Fail(name+": invalid default", p.Default, err))
			continue
		}
		got, err := params.FormatValue(field.Interface())
		if err != nil || got != want {
			results = append(results, Fail(name+": default", want, got))
			continue
		}
		results = append(results, Pass(name+": default "+want))
	}
	return results
}

// canonical returns the formatted form of a literal value, e.g. "1" for a
// boolean becomes "true".
func canonical(p *model.ParameterMetadata, s string) (string, error) {
	v, err := params.ParseValue(p, s)
	if err != nil {
		return "", err
	}
	return params.FormatValue(v)
}

// CheckWithers checks that every With method sets its field and returns
// the receiver, and that table withers append.
func CheckWithers(obj model.Object) []*Result {
	meta := obj.CWMPObject()
	rv := reflect.ValueOf(obj)

	var results []*Result
	for i := range meta.Parameters {
		p := &meta.Parameters[i]
		name := fmt.Sprintf("%sWith%s", meta.Name, p.Field)
		method := rv.MethodByName("With" + p.Field)
		if !method.IsValid() {
			results = append(results, Fail(name+": missing", "method", nil))
			continue
		}
		value, err := params.ParseValue(p, SampleValue(p, 2))
		if err != nil {
			results = append(results, Fail(name+": sample value", nil, err))
			continue
		}
		out := method.Call([]reflect.Value{reflect.ValueOf(value)})
		results = append(results, checkReturnsReceiver(name, rv, out))
		if got := rv.Elem().FieldByName(p.Field).Interface(); !reflect.DeepEqual(got, value) {
			results = append(results, Fail(name+": field not set", value, got))
		}
	}

	for i := range meta.Objects {
		c := &meta.Objects[i]
		name := fmt.Sprintf("%sWith%s", meta.Name, c.Field)
		method := rv.MethodByName("With" + c.Field)
		if !method.IsValid() {
			results = append(results, Fail(name+": missing", "method", nil))
			continue
		}
		first, err1 := model.New(c.Path)
		second, err2 := model.New(c.Path)
		if err1 != nil || err2 != nil {
			results = append(results, Fail(name+": child not registered", c.Path, nil))
			continue
		}

		field := rv.Elem().FieldByName(c.Field)
		if !c.Multi {
			out := method.Call([]reflect.Value{reflect.ValueOf(first)})
			results = append(results, checkReturnsReceiver(name, rv, out))
			if field.Pointer() != reflect.ValueOf(first).Pointer() {
				results = append(results, Fail(name+": child not set", first, field.Interface()))
			}
			continue
		}

		before := field.Len()
		method.Call([]reflect.Value{reflect.ValueOf(first)})
		out := method.Call([]reflect.Value{reflect.ValueOf(second)})
		results = append(results, checkReturnsReceiver(name, rv, out))
		switch {
		case field.Len() != before+2:
			results = append(results, Fail(name+": entries not appended", before+2, field.Len()))
		case field.Index(before).Pointer() != reflect.ValueOf(first).Pointer() ||
			field.Index(before+1).Pointer() != reflect.ValueOf(second).Pointer():
			results = append(results, Fail(name+": entry order", "first, second", "reordered"))
		}
	}
	return results
}

func checkReturnsReceiver(name string, rv reflect.Value, out []reflect.Value) *Result {
	if len(out) != 1 || out[0].Pointer() != rv.Pointer() {
		return Fail(name+": does not return the receiver", rv.Interface(), out)
	}
	return Pass(name + ": returns the receiver")
}
