package inspect

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cwmp-models/cwmp-go/pkg/model"
)

// Formatter renders inspected objects and parameters as text.
type Formatter struct {
	// ShowMetadata adds type and access annotations to parameters.
	ShowMetadata bool

	// ShowCounters includes the computed NumberOfEntries parameters.
	ShowCounters bool

	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int
}

// NewFormatter creates a new formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata: true,
		ShowCounters: true,
		IndentWidth:  2,
	}
}

// Indent returns the content indented to the given depth.
func (f *Formatter) Indent(depth int, content string) string {
	return strings.Repeat(" ", depth*f.IndentWidth) + content
}

// FormatValue formats a parameter value for display.
func (f *Formatter) FormatValue(p *ParameterInfo) string {
	if p.Hidden {
		return "<hidden>"
	}
	if p.List {
		return "[" + p.Value + "]"
	}
	// Named string types such as addresses print unquoted.
	switch p.Type {
	case model.TypeString, model.TypeAlias:
		return strconv.Quote(p.Value)
	}
	switch p.Type.Base() {
	case model.TypeInt, model.TypeUnsignedInt, model.TypeLong, model.TypeUnsignedLong:
		return formatNumber(p.Value, p.Units)
	}
	if p.Value == "" {
		return "(empty)"
	}
	return p.Value
}

// formatNumber appends the unit and, for durations, a readable form.
func formatNumber(value, units string) string {
	if units == "" {
		return value
	}
	s := value + " " + units
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n == 0 {
		return s
	}
	if d, ok := FormatDurationHumanReadable(n, units); ok {
		s += " (" + d + ")"
	}
	return s
}

// FormatDurationHumanReadable formats a time value in seconds or
// milliseconds as a Go duration string.
func FormatDurationHumanReadable(n int64, units string) (string, bool) {
	switch units {
	case "seconds":
		if n < 60 && n > -60 {
			return "", false
		}
		return (time.Duration(n) * time.Second).String(), true
	case "milliseconds":
		if n < 1000 && n > -1000 {
			return "", false
		}
		return (time.Duration(n) * time.Millisecond).String(), true
	}
	return "", false
}

// FormatAccess formats an access flag for display.
func FormatAccess(access model.Access) string {
	if access.CanWrite() {
		return "RW"
	}
	return "R"
}

// FormatDataType formats a parameter data type for display.
func FormatDataType(p *ParameterInfo) string {
	if p.List {
		return "list<" + p.Type.String() + ">"
	}
	return p.Type.String()
}

// FormatParameter formats a parameter as a single "Name = value" line.
func (f *Formatter) FormatParameter(p *ParameterInfo) string {
	line := fmt.Sprintf("%s = %s", p.Name, f.FormatValue(p))
	if f.ShowMetadata {
		line += fmt.Sprintf("  [%s, %s]", FormatDataType(p), FormatAccess(p.Access))
	}
	return line
}

// FormatTree formats an object and everything below it.
func (f *Formatter) FormatTree(obj *ObjectInfo) string {
	var sb strings.Builder
	f.formatObject(&sb, obj, 0)
	return sb.String()
}

func (f *Formatter) formatObject(sb *strings.Builder, obj *ObjectInfo, depth int) {
	header := obj.Path
	if f.ShowMetadata {
		switch {
		case obj.Table && obj.Writable:
			header += "  [table, add/delete]"
		case obj.Table:
			header += "  [table]"
		case obj.Writable:
			header += "  [deletable]"
		}
	}
	sb.WriteString(f.Indent(depth, header) + "\n")

	for i := range obj.Parameters {
		p := &obj.Parameters[i]
		if p.Counter && !f.ShowCounters {
			continue
		}
		sb.WriteString(f.Indent(depth+1, f.FormatParameter(p)) + "\n")
	}
	for _, child := range obj.Objects {
		f.formatObject(sb, child, depth+1)
	}
}

// FormatParameterTable formats parameters as an aligned table with full
// paths.
func (f *Formatter) FormatParameterTable(rows []ParameterInfo) string {
	if len(rows) == 0 {
		return "  (no parameters)\n"
	}

	pathWidth := len("PATH")
	valueWidth := len("VALUE")
	values := make([]string, len(rows))
	for i := range rows {
		values[i] = f.FormatValue(&rows[i])
		pathWidth = max(pathWidth, len(rows[i].Path))
		valueWidth = max(valueWidth, len(values[i]))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "  %-*s  %-*s  %-20s  %s\n", pathWidth, "PATH", valueWidth, "VALUE", "TYPE", "ACCESS")
	for i := range rows {
		fmt.Fprintf(&sb, "  %-*s  %-*s  %-20s  %s\n",
			pathWidth, rows[i].Path,
			valueWidth, values[i],
			FormatDataType(&rows[i]),
			FormatAccess(rows[i].Access))
	}
	return sb.String()
}
