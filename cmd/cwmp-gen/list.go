package main

import (
	"fmt"
	"strings"

	"github.com/cwmp-models/cwmp-go/pkg/specparse"
)

// DeriveParameterList produces a YAML listing of every object and parameter
// path of the given models, including the NumberOfEntries parameters that
// count table entries. Objects keep their definition order.
func DeriveParameterList(defs []*specparse.RawModelDef) string {
	var b strings.Builder

	b.WriteString("models:\n")
	for _, def := range defs {
		writeModelList(&b, def)
	}
	return b.String()
}

func writeModelList(b *strings.Builder, def *specparse.RawModelDef) {
	fmt.Fprintf(b, "  - name: %q\n", def.Name)
	if def.Spec != "" {
		fmt.Fprintf(b, "    spec: %q\n", def.Spec)
	}
	b.WriteString("    objects:\n")

	for _, obj := range def.Objects {
		fmt.Fprintf(b, "      - path: %q\n", obj.Name)
		fmt.Fprintf(b, "        access: %s\n", accessName(obj.Access))
		if obj.IsMultiInstance() && obj.MaxEntries > 0 {
			fmt.Fprintf(b, "        maxEntries: %d\n", obj.MaxEntries)
		}

		var counters []string
		for _, child := range def.Children(obj.Name) {
			if child.NumEntriesParameter != "" {
				counters = append(counters, child.NumEntriesParameter)
			}
		}
		if len(obj.Parameters) == 0 && len(counters) == 0 {
			continue
		}

		b.WriteString("        parameters:\n")
		for _, p := range obj.Parameters {
			typ := p.Type
			if p.List {
				typ = "list<" + typ + ">"
			}
			fmt.Fprintf(b, "          - { name: %s, type: %s, access: %s }\n", p.Name, typ, accessName(p.Access))
		}
		for _, c := range counters {
			fmt.Fprintf(b, "          - { name: %s, type: unsignedInt, access: readOnly }\n", c)
		}
	}
	b.WriteString("\n")
}

func accessName(access string) string {
	if access == "" {
		return "readOnly"
	}
	return access
}
