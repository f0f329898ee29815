package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwmp-models/cwmp-go/pkg/model"
	"github.com/cwmp-models/cwmp-go/pkg/specparse"
)

const modulePath = "github.com/cwmp-models/cwmp-go"

// goTypes maps parameter data types to Go field types.
var goTypes = map[model.DataType]string{
	model.TypeString:         "string",
	model.TypeAlias:          "string",
	model.TypeBoolean:        "bool",
	model.TypeInt:            "int32",
	model.TypeDbm1000:        "int32",
	model.TypeUnsignedInt:    "uint32",
	model.TypeStatsCounter32: "uint32",
	model.TypeLong:           "int64",
	model.TypeUnsignedLong:   "uint64",
	model.TypeStatsCounter64: "uint64",
	model.TypeDateTime:       "types.DateTime",
	model.TypeBase64:         "types.Base64",
	model.TypeHexBinary:      "types.HexBinary",
	model.TypeMACAddress:     "types.MACAddress",
	model.TypeIPAddress:      "types.IPAddress",
	model.TypeIPv4Address:    "types.IPAddress",
	model.TypeIPv6Address:    "types.IPAddress",
	model.TypeIPPrefix:       "types.IPPrefix",
	model.TypeIPv4Prefix:     "types.IPPrefix",
	model.TypeIPv6Prefix:     "types.IPPrefix",
	model.TypeUUID:           "types.UUID",
}

// GenerateModel generates the Go source for all objects of a model definition.
// pkg overrides the package name declared in the definition.
func GenerateModel(def *specparse.RawModelDef, pkg string) (string, error) {
	if pkg == "" {
		pkg = def.Package
	}
	if pkg == "" {
		return "", fmt.Errorf("model %s: no package name", def.Name)
	}

	data := fileData{
		Model:   def.Name,
		Spec:    def.Spec,
		Package: pkg,
	}

	var errs []error
	for i := range def.Objects {
		obj, err := buildObject(def, &def.Objects[i])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		data.Objects = append(data.Objects, obj)
	}
	if len(errs) > 0 {
		return "", errors.Join(errs...)
	}
	data.Imports = fileImports(data.Objects)

	var b strings.Builder
	renderTemplate(&b, "file", data)
	return b.String(), nil
}

func buildObject(def *specparse.RawModelDef, obj *specparse.RawObjectDef) (objectData, error) {
	access, _ := model.ParseAccess(obj.Access)
	od := objectData{
		Type:        obj.Type,
		Path:        obj.Name,
		Description: oneLine(obj.Description),
		Root:        specparse.ParentPath(obj.Name) == "",
		Access:      accessConst(access),
		MinEntries:  obj.MinEntries,
		MaxEntries:  obj.MaxEntries,
		UniqueKeys:  uniqueKeysExpr(obj.UniqueKeys),
		MetaVar:     "meta" + obj.Type,
	}
	if od.Root {
		od.Element = specparse.ObjectSegment(obj.Name)
	}

	for _, p := range obj.Parameters {
		dt, _ := model.ParseDataType(p.Type)
		goType := fieldType(dt, p.List)
		field := specparse.GoName(p.Name)

		od.Fields = append(od.Fields, fieldData{
			Name:   field,
			GoType: goType,
			Tag:    parameterTag(&p, goType),
		})
		od.Params = append(od.Params, parameterMetaExpr(&p, field, dt))

		if p.HasDefault() {
			expr, err := defaultExpr(goType, p.DefaultString())
			if err != nil {
				return od, fmt.Errorf("parameter %s%s: %w", obj.Name, p.Name, err)
			}
			od.Defaults = append(od.Defaults, defaultData{Field: field, Expr: expr})
		}
	}

	for _, child := range def.Children(obj.Name) {
		seg := specparse.ObjectSegment(child.Name)
		field := specparse.GoName(seg)
		multi := child.IsMultiInstance()

		fd := fieldData{Name: field, Multi: multi, ElemType: child.Type}
		if multi {
			fd.GoType = "[]*" + child.Type
			fd.Tag = tableTag(seg, child.MaxEntries)
		} else {
			fd.GoType = "*" + child.Type
			fd.Tag = fmt.Sprintf(`xml:"%s,omitempty" cbor:"%s,omitempty"`, seg, seg)
		}
		od.Fields = append(od.Fields, fd)
		od.Children = append(od.Children, childData{
			Name:                seg,
			Field:               field,
			Path:                child.Name,
			Multi:               multi,
			NumEntriesParameter: child.NumEntriesParameter,
		})
	}

	return od, nil
}

// fieldType returns the Go type of a parameter field. List values are kept in
// their comma-separated form.
func fieldType(dt model.DataType, list bool) string {
	if list {
		return "types.StringList"
	}
	if t, ok := goTypes[dt]; ok {
		return t
	}
	return "string"
}

// parameterTag builds the struct tag of a parameter field.
func parameterTag(p *specparse.RawParameterDef, goType string) string {
	tag := fmt.Sprintf(`xml:"%s" cbor:"%s"`, p.Name, p.Name)
	if v := validateTag(p, goType); v != "" {
		tag += fmt.Sprintf(` validate:"%s"`, v)
	}
	return tag
}

// validateTag translates the declared size, range and enumeration bounds into
// validator rules. Only string and integer fields carry rules.
func validateTag(p *specparse.RawParameterDef, goType string) string {
	var rules []string
	switch goType {
	case "string":
		enum := oneofSafe(p.Enumeration)
		if enum || p.MinLength > 0 {
			rules = append(rules, "omitempty")
		}
		if p.MinLength > 0 {
			rules = append(rules, "min="+strconv.Itoa(p.MinLength))
		}
		if p.MaxLength > 0 {
			rules = append(rules, "max="+strconv.Itoa(p.MaxLength))
		}
		if enum {
			rules = append(rules, "oneof="+strings.Join(p.Enumeration, " "))
		}
	case "int32", "uint32", "int64", "uint64":
		if p.Min != nil {
			rules = append(rules, "min="+strconv.FormatInt(*p.Min, 10))
		}
		if p.Max != nil {
			rules = append(rules, "max="+strconv.FormatInt(*p.Max, 10))
		}
	}
	return strings.Join(rules, ",")
}

// oneofSafe reports whether an enumeration can be expressed as a oneof rule,
// which splits on spaces and cannot contain commas.
func oneofSafe(values []string) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if v == "" || strings.ContainsAny(v, " ,'") {
			return false
		}
	}
	return true
}

func tableTag(seg string, maxEntries int) string {
	rule := "dive"
	if maxEntries > 0 {
		rule = fmt.Sprintf("max=%d,dive", maxEntries)
	}
	return fmt.Sprintf(`xml:"%s" cbor:"%s,omitempty" validate:"%s"`, seg, seg, rule)
}

// defaultExpr returns the Go expression of a literal default value.
func defaultExpr(goType, value string) (string, error) {
	switch goType {
	case "string":
		return strconv.Quote(value), nil
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", fmt.Errorf("invalid boolean default %q", value)
		}
		return strconv.FormatBool(b), nil
	case "int32", "int64":
		if _, err := strconv.ParseInt(value, 10, bitSize(goType)); err != nil {
			return "", fmt.Errorf("invalid %s default %q", goType, value)
		}
		return value, nil
	case "uint32", "uint64":
		if _, err := strconv.ParseUint(value, 10, bitSize(goType)); err != nil {
			return "", fmt.Errorf("invalid %s default %q", goType, value)
		}
		return value, nil
	default:
		name, ok := strings.CutPrefix(goType, "types.")
		if !ok {
			return "", fmt.Errorf("no default for type %s", goType)
		}
		return fmt.Sprintf("types.MustParse%s(%q)", name, value), nil
	}
}

func bitSize(goType string) int {
	if strings.HasSuffix(goType, "64") {
		return 64
	}
	return 32
}

// parameterMetaExpr renders the ParameterMetadata literal of a parameter.
func parameterMetaExpr(p *specparse.RawParameterDef, field string, dt model.DataType) string {
	access, _ := model.ParseAccess(p.Access)

	parts := []string{
		fmt.Sprintf("Name: %q", p.Name),
		fmt.Sprintf("Field: %q", field),
		"Type: " + dataTypeConst(dt),
		"Access: " + accessConst(access),
	}
	if p.List {
		parts = append(parts, "List: true")
	}
	if p.MinLength > 0 {
		parts = append(parts, fmt.Sprintf("MinLength: %d", p.MinLength))
	}
	if p.MaxLength > 0 {
		parts = append(parts, fmt.Sprintf("MaxLength: %d", p.MaxLength))
	}
	if p.Min != nil {
		parts = append(parts, fmt.Sprintf("MinValue: model.Int64(%d)", *p.Min))
	}
	if p.Max != nil {
		parts = append(parts, fmt.Sprintf("MaxValue: model.Int64(%d)", *p.Max))
	}
	if len(p.Enumeration) > 0 {
		quoted := make([]string, len(p.Enumeration))
		for i, e := range p.Enumeration {
			quoted[i] = strconv.Quote(e)
		}
		parts = append(parts, "Enumeration: []string{"+strings.Join(quoted, ", ")+"}")
	}
	if p.HasDefault() {
		parts = append(parts, fmt.Sprintf("Default: %q", p.DefaultString()))
	}
	if p.Hidden {
		parts = append(parts, "Hidden: true")
	}
	if p.Units != "" {
		parts = append(parts, fmt.Sprintf("Units: %q", p.Units))
	}
	if p.Description != "" {
		parts = append(parts, fmt.Sprintf("Description: %q", oneLine(p.Description)))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// dataTypeConst returns the model constant for a data type, e.g.
// "model.TypeUnsignedInt".
func dataTypeConst(dt model.DataType) string {
	name := dt.String()
	return "model.Type" + strings.ToUpper(name[:1]) + name[1:]
}

// oneLine collapses the whitespace of a description.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func accessConst(a model.Access) string {
	if a.CanWrite() {
		return "model.AccessReadWrite"
	}
	return "model.AccessReadOnly"
}

func uniqueKeysExpr(keys [][]string) string {
	if len(keys) == 0 {
		return ""
	}
	sets := make([]string, len(keys))
	for i, key := range keys {
		quoted := make([]string, len(key))
		for j, k := range key {
			quoted[j] = strconv.Quote(k)
		}
		sets[i] = "{" + strings.Join(quoted, ", ") + "}"
	}
	return "[][]string{" + strings.Join(sets, ", ") + "}"
}

// fileImports returns the import block of a generated file, grouped the way
// goimports groups them.
func fileImports(objects []objectData) []string {
	var root, usesTypes bool
	for _, obj := range objects {
		root = root || obj.Root
		for _, f := range obj.Fields {
			if strings.HasPrefix(f.GoType, "types.") {
				usesTypes = true
			}
		}
	}

	var result []string
	if root {
		result = append(result, "encoding/xml", "")
	}
	result = append(result, modulePath+"/pkg/model")
	if usesTypes {
		result = append(result, modulePath+"/pkg/types")
	}
	return result
}
