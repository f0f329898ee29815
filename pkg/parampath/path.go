// Package parampath parses and builds Broadband Forum parameter paths.
//
// Supported forms:
//   - "Device.DeviceInfo.SerialNumber"     - parameter path
//   - "Device.IP.Interface.1."             - partial path (object instance)
//   - "Device.IP.Interface.{i}."           - schema path (placeholder)
//   - "Device.IP.Interface.[lan1].Enable"  - instance alias reference
//
// A path ending in "." is partial: it names an object and everything below it.
package parampath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path errors.
var (
	ErrEmptyPath       = errors.New("empty path")
	ErrInvalidPath     = errors.New("invalid path format")
	ErrInvalidInstance = errors.New("invalid instance number")
)

// Placeholder is the instance placeholder used in schema paths.
const Placeholder = "{i}"

// SegmentKind identifies the kind of a path segment.
type SegmentKind uint8

const (
	// SegmentName is an object or parameter name.
	SegmentName SegmentKind = iota

	// SegmentInstance is an instance number (1, 2, ...).
	SegmentInstance

	// SegmentPlaceholder is the "{i}" placeholder of a schema path.
	SegmentPlaceholder

	// SegmentAlias is an instance alias reference "[alias]".
	SegmentAlias
)

// Segment is one dot-separated element of a path.
type Segment struct {
	Kind SegmentKind

	// Name is the object/parameter name or the alias value.
	Name string

	// Instance is the instance number for SegmentInstance.
	Instance int
}

// IsInstance returns true for segments selecting a table entry.
func (s Segment) IsInstance() bool {
	return s.Kind != SegmentName
}

// String returns the segment as it appears in a path.
func (s Segment) String() string {
	switch s.Kind {
	case SegmentInstance:
		return strconv.Itoa(s.Instance)
	case SegmentPlaceholder:
		return Placeholder
	case SegmentAlias:
		return "[" + s.Name + "]"
	default:
		return s.Name
	}
}

// Path is a parsed parameter or object path.
type Path struct {
	segments []Segment
	partial  bool
}

// Parse parses a path string.
func Parse(s string) (Path, error) {
	if s == "" {
		return Path{}, ErrEmptyPath
	}

	p := Path{partial: strings.HasSuffix(s, ".")}
	body := strings.TrimSuffix(s, ".")
	if body == "" {
		return Path{}, fmt.Errorf("%w: %q", ErrInvalidPath, s)
	}

	parts := strings.Split(body, ".")
	p.segments = make([]Segment, 0, len(parts))
	for i, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return Path{}, fmt.Errorf("%w: %q", err, s)
		}
		if seg.IsInstance() && (i == 0 || p.segments[i-1].IsInstance()) {
			return Path{}, fmt.Errorf("%w: instance without object name in %q", ErrInvalidPath, s)
		}
		p.segments = append(p.segments, seg)
	}

	return p, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseSegment(part string) (Segment, error) {
	switch {
	case part == "":
		return Segment{}, ErrInvalidPath
	case part == Placeholder:
		return Segment{Kind: SegmentPlaceholder}, nil
	case strings.HasPrefix(part, "[") && strings.HasSuffix(part, "]"):
		alias := part[1 : len(part)-1]
		if alias == "" {
			return Segment{}, ErrInvalidPath
		}
		return Segment{Kind: SegmentAlias, Name: alias}, nil
	case part[0] >= '0' && part[0] <= '9':
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return Segment{}, ErrInvalidInstance
		}
		return Segment{Kind: SegmentInstance, Instance: n}, nil
	default:
		if !validName(part) {
			return Segment{}, ErrInvalidPath
		}
		return Segment{Kind: SegmentName, Name: part}, nil
	}
}

// validName checks a name against the data model naming rules: a letter or
// underscore followed by letters, digits, underscores or hyphens.
func validName(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case i > 0 && (r == '-' || r >= '0' && r <= '9'):
		default:
			return false
		}
	}
	return true
}

// String returns the path in dotted form.
func (p Path) String() string {
	var sb strings.Builder
	for i, seg := range p.segments {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(seg.String())
	}
	if p.partial && len(p.segments) > 0 {
		sb.WriteByte('.')
	}
	return sb.String()
}

// IsPartial returns true for object paths ending in ".".
func (p Path) IsPartial() bool { return p.partial }

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segments) }

// Segments returns a copy of the segments.
func (p Path) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Segment returns the i-th segment.
func (p Path) Segment(i int) Segment { return p.segments[i] }

// Last returns the last segment, or the zero Segment for an empty path.
func (p Path) Last() Segment {
	if len(p.segments) == 0 {
		return Segment{}
	}
	return p.segments[len(p.segments)-1]
}

// Schema returns the schema form of the path: instance numbers and aliases
// become "{i}".
func (p Path) Schema() Path {
	out := Path{segments: make([]Segment, len(p.segments)), partial: p.partial}
	for i, seg := range p.segments {
		if seg.IsInstance() {
			seg = Segment{Kind: SegmentPlaceholder}
		}
		out.segments[i] = seg
	}
	return out
}

// Parent returns the partial path of the enclosing object. The parent of a
// table entry "Device.IP.Interface.1." is the table "Device.IP.Interface.".
func (p Path) Parent() Path {
	if len(p.segments) <= 1 {
		return Path{}
	}
	return Path{segments: p.clone(len(p.segments) - 1), partial: true}
}

// Child returns the partial path of a child object.
func (p Path) Child(name string) Path {
	segs := append(p.clone(len(p.segments)), Segment{Kind: SegmentName, Name: name})
	return Path{segments: segs, partial: true}
}

// Parameter returns the path of a parameter of the object.
func (p Path) Parameter(name string) Path {
	segs := append(p.clone(len(p.segments)), Segment{Kind: SegmentName, Name: name})
	return Path{segments: segs}
}

// Instance returns the partial path of a table entry.
func (p Path) Instance(n int) Path {
	segs := append(p.clone(len(p.segments)), Segment{Kind: SegmentInstance, Instance: n})
	return Path{segments: segs, partial: true}
}

// HasPrefix reports whether prefix is a partial path containing p, or equal
// to p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix.segments) > len(p.segments) {
		return false
	}
	if len(prefix.segments) == len(p.segments) {
		return prefix.partial == p.partial && p.equalSegments(prefix)
	}
	if !prefix.partial {
		return false
	}
	return p.equalSegments(prefix)
}

func (p Path) equalSegments(prefix Path) bool {
	for i, seg := range prefix.segments {
		if p.segments[i] != seg {
			return false
		}
	}
	return true
}

func (p Path) clone(n int) []Segment {
	out := make([]Segment, n, n+1)
	copy(out, p.segments[:n])
	return out
}
