package modeltest

import (
	"encoding/xml"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwmp-models/cwmp-go/pkg/model"
)

// Diff returns a human-readable difference between two object trees, or ""
// when they hold the same values. Document element names are ignored and
// nil and empty collections compare equal.
func Diff(want, got model.Object) string {
	return cmp.Diff(want, got, cmpopts.IgnoreTypes(xml.Name{}), cmpopts.EquateEmpty())
}

// Objects returns the registered object types whose schema path starts with
// the given root segment, e.g. "Device".
func Objects(root string) []*model.ObjectMetadata {
	var out []*model.ObjectMetadata
	for _, meta := range model.Registered() {
		if strings.HasPrefix(meta.Name, root+".") {
			out = append(out, meta)
		}
	}
	return out
}
