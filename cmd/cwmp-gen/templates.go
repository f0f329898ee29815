package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
	"recv":  func(name string) string { return strings.ToLower(name[:1]) },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	fileTmpl +
		objectStructTmpl +
		constructorTmpl +
		withersTmpl +
		metadataTmpl +
		registerTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template data types ---

// fileData holds the data for one generated model file.
type fileData struct {
	Model   string
	Spec    string
	Package string
	Imports []string // "" separates import groups
	Objects []objectData
}

// objectData holds pre-computed data for one object type.
type objectData struct {
	Type        string
	Path        string
	Element     string
	Description string
	Root        bool
	Access      string
	MinEntries  int
	MaxEntries  int
	UniqueKeys  string
	MetaVar     string
	Fields      []fieldData
	Defaults    []defaultData
	Params      []string
	Children    []childData
}

// fieldData describes one struct field: a parameter or a child object.
type fieldData struct {
	Name     string
	GoType   string
	Tag      string
	Multi    bool
	ElemType string
}

type defaultData struct {
	Field string
	Expr  string
}

type childData struct {
	Name                string
	Field               string
	Path                string
	Multi               bool
	NumEntriesParameter string
}

// --- Template definitions ---

const fileTmpl = `{{define "file"}}
// Code generated by cwmp-gen. DO NOT EDIT.
// Source: {{.Model}}{{if .Spec}} ({{.Spec}}){{end}}

package {{.Package}}

import (
{{- range .Imports}}
{{if .}}{{quote .}}{{end}}
{{- end}}
)
{{range .Objects}}
{{template "objectStruct" .}}
{{- template "constructor" .}}
{{- template "withers" .}}
{{- template "metadata" .}}
{{- end}}
{{- template "register" .}}
{{end}}`

const objectStructTmpl = `{{define "objectStruct"}}
// {{.Type}} represents the {{.Path}} object.
{{- if .Description}}
//
// {{.Description}}
{{- end}}
type {{.Type}} struct {
{{- if .Root}}
XMLName xml.Name ` + "`" + `xml:"{{.Element}}" cbor:"-"` + "`" + `
{{- end}}
{{- range .Fields}}
{{.Name}} {{.GoType}} ` + "`" + `{{.Tag}}` + "`" + `
{{- end}}
}
{{end}}`

const constructorTmpl = `{{define "constructor"}}
// New{{.Type}} returns a new {{.Type}} with its default values.
func New{{.Type}}() *{{.Type}} {
{{- if .Defaults}}
return &{{.Type}}{
{{- range .Defaults}}
{{.Field}}: {{.Expr}},
{{- end}}
}
{{- else}}
return &{{.Type}}{}
{{- end}}
}

// CWMPObject returns the metadata of the {{.Path}} object.
func (*{{.Type}}) CWMPObject() *model.ObjectMetadata {
return {{.MetaVar}}
}
{{end}}`

const withersTmpl = `{{define "withers"}}
{{- $type := .Type}}
{{- $recv := recv .Type}}
{{- range .Fields}}
{{- if .Multi}}

// With{{.Name}} appends entries to the {{.Name}} table and returns the receiver.
func ({{$recv}} *{{$type}}) With{{.Name}}(entries ...*{{.ElemType}}) *{{$type}} {
{{$recv}}.{{.Name}} = append({{$recv}}.{{.Name}}, entries...)
return {{$recv}}
}
{{- else}}

// With{{.Name}} sets {{.Name}} and returns the receiver.
func ({{$recv}} *{{$type}}) With{{.Name}}(value {{.GoType}}) *{{$type}} {
{{$recv}}.{{.Name}} = value
return {{$recv}}
}
{{- end}}
{{- end}}
{{end}}`

const metadataTmpl = `{{define "metadata"}}
var {{.MetaVar}} = &model.ObjectMetadata{
Name: {{quote .Path}},
Type: {{quote .Type}},
Access: {{.Access}},
{{- if .MinEntries}}
MinEntries: {{.MinEntries}},
{{- end}}
{{- if .MaxEntries}}
MaxEntries: {{.MaxEntries}},
{{- end}}
{{- if .UniqueKeys}}
UniqueKeys: {{.UniqueKeys}},
{{- end}}
{{- if .Description}}
Description: {{quote .Description}},
{{- end}}
{{- if .Params}}
Parameters: []model.ParameterMetadata{
{{- range .Params}}
{{.}},
{{- end}}
},
{{- end}}
{{- if .Children}}
Objects: []model.ChildMetadata{
{{- range .Children}}
{Name: {{quote .Name}}, Field: {{quote .Field}}, Path: {{quote .Path}}
{{- if .Multi}}, Multi: true{{end}}
{{- if .NumEntriesParameter}}, NumEntriesParameter: {{quote .NumEntriesParameter}}{{end}}},
{{- end}}
},
{{- end}}
}
{{end}}`

const registerTmpl = `{{define "register"}}
func init() {
{{- range .Objects}}
model.Register({{.MetaVar}}, func() model.Object { return New{{.Type}}() })
{{- end}}
}
{{end}}`
