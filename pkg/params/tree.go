package params

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/cwmp-models/cwmp-go/pkg/model"
	"github.com/cwmp-models/cwmp-go/pkg/parampath"
)

// Tree errors.
var (
	ErrInvalidName = errors.New("invalid parameter name")
	ErrNotPointer  = errors.New("object must be a non-nil pointer")
)

// node is an object instance in the tree together with its instance path.
type node struct {
	path string
	v    reflect.Value
	meta *model.ObjectMetadata
}

func objectNode(path string, ptr reflect.Value) (node, bool) {
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() {
		return node{}, false
	}
	obj, ok := ptr.Interface().(model.Object)
	if !ok {
		return node{}, false
	}
	return node{path: path, v: ptr.Elem(), meta: obj.CWMPObject()}, true
}

// rootNode returns the node of a root object. A multi-instance root is
// addressed with the configured instance number.
func rootNode(root model.Object, o *options) (node, error) {
	if root == nil {
		return node{}, ErrNotPointer
	}
	meta := root.CWMPObject()
	path := meta.Segment() + "."
	if meta.IsMultiInstance() {
		path += strconv.Itoa(o.rootInstance) + "."
	}
	n, ok := objectNode(path, reflect.ValueOf(root))
	if !ok {
		return node{}, fmt.Errorf("%w: %T", ErrNotPointer, root)
	}
	return n, nil
}

func (n node) field(p *model.ParameterMetadata) reflect.Value {
	return n.v.FieldByName(p.Field)
}

// child returns the node of a single-instance child, if present.
func (n node) child(c *model.ChildMetadata) (node, bool) {
	return objectNode(n.path+c.Name+".", n.v.FieldByName(c.Field))
}

func (n node) tableLen(c *model.ChildMetadata) int {
	return n.v.FieldByName(c.Field).Len()
}

// entry returns the table entry with the given instance number.
func (n node) entry(c *model.ChildMetadata, instance int) (node, bool) {
	table := n.v.FieldByName(c.Field)
	if instance < 1 || instance > table.Len() {
		return node{}, false
	}
	return objectNode(n.path+c.Name+"."+strconv.Itoa(instance)+".", table.Index(instance-1))
}

// entries returns the table entries in instance order. Nil entries keep
// their instance number but are skipped.
func (n node) entries(c *model.ChildMetadata) []node {
	count := n.tableLen(c)
	out := make([]node, 0, count)
	for i := 1; i <= count; i++ {
		if e, ok := n.entry(c, i); ok {
			out = append(out, e)
		}
	}
	return out
}

// aliasInstance returns the instance number of the entry whose Alias
// parameter equals alias.
func (n node) aliasInstance(c *model.ChildMetadata, alias string) (int, bool) {
	for _, e := range n.entries(c) {
		p, ok := e.meta.Parameter("Alias")
		if !ok {
			return 0, false
		}
		if e.field(p).String() == alias {
			return instanceOf(e.path), true
		}
	}
	return 0, false
}

// instanceOf returns the trailing instance number of an entry path.
func instanceOf(path string) int {
	p, err := parampath.Parse(path)
	if err != nil {
		return 0
	}
	return p.Last().Instance
}

// tableAccess returns the add/delete access of a table child.
func tableAccess(c *model.ChildMetadata) model.Access {
	meta, err := model.Lookup(c.Path)
	if err != nil {
		return model.AccessReadOnly
	}
	return meta.Access
}

type targetKind uint8

const (
	targetObject targetKind = iota
	targetTable
	targetParameter
	targetCounter
)

// target is the result of resolving a path against a tree.
type target struct {
	kind targetKind
	path string

	// node is the object itself for targetObject and the enclosing object
	// otherwise.
	node node

	// child is the table for targetTable and targetCounter. It is nil for
	// the table of a multi-instance root.
	child *model.ChildMetadata

	param *model.ParameterMetadata
}

// resolve looks up a path in the tree. The empty path names the root.
func resolve(root node, name string) (target, error) {
	if name == "" {
		return target{kind: targetObject, path: root.path, node: root}, nil
	}

	p, err := parampath.Parse(name)
	if err != nil {
		return target{}, fmt.Errorf("%w: %w", ErrInvalidName, err)
	}
	segs := p.Segments()
	partial := p.IsPartial()
	invalid := func(reason string) (target, error) {
		return target{}, fmt.Errorf("%w: %s: %s", ErrInvalidName, name, reason)
	}

	if segs[0].Kind != parampath.SegmentName || segs[0].Name != root.meta.Segment() {
		return invalid("unknown root object")
	}
	i := 1
	if root.meta.IsMultiInstance() {
		if len(segs) == 1 {
			if !partial {
				return invalid("object path must end with '.'")
			}
			return target{kind: targetTable, path: root.meta.Segment() + ".", node: root}, nil
		}
		if !matchesRoot(root, segs[1]) {
			return invalid("no such instance")
		}
		i = 2
	}

	cur := root
	for i < len(segs) {
		seg := segs[i]
		last := i == len(segs)-1
		if seg.Kind != parampath.SegmentName {
			return invalid("unexpected instance " + seg.String())
		}

		if last && !partial {
			if prm, ok := cur.meta.Parameter(seg.Name); ok {
				return target{kind: targetParameter, path: cur.path + seg.Name, node: cur, param: prm}, nil
			}
			if c, ok := cur.meta.ChildByEntriesParameter(seg.Name); ok {
				return target{kind: targetCounter, path: cur.path + seg.Name, node: cur, child: c}, nil
			}
			if _, ok := cur.meta.Child(seg.Name); ok {
				return invalid("object path must end with '.'")
			}
			return invalid("unknown parameter " + seg.Name)
		}

		c, ok := cur.meta.Child(seg.Name)
		if !ok {
			return invalid("unknown object " + seg.Name)
		}

		if !c.Multi {
			next, ok := cur.child(c)
			if !ok {
				return invalid("object " + seg.Name + " not present")
			}
			cur = next
			i++
			continue
		}

		if last {
			return target{kind: targetTable, path: cur.path + c.Name + ".", node: cur, child: c}, nil
		}

		inst := segs[i+1]
		number := inst.Instance
		switch inst.Kind {
		case parampath.SegmentInstance:
		case parampath.SegmentAlias:
			number, ok = cur.aliasInstance(c, inst.Name)
			if !ok {
				return invalid("no instance with alias " + inst.Name)
			}
		default:
			return invalid("placeholder in instance path")
		}
		next, ok := cur.entry(c, number)
		if !ok {
			return invalid("no such instance " + inst.String())
		}
		cur = next
		i += 2
	}

	if !partial {
		return invalid("object path must end with '.'")
	}
	return target{kind: targetObject, path: cur.path, node: cur}, nil
}

func matchesRoot(root node, seg parampath.Segment) bool {
	switch seg.Kind {
	case parampath.SegmentInstance:
		return root.path == root.meta.Segment()+"."+strconv.Itoa(seg.Instance)+"."
	case parampath.SegmentAlias:
		p, ok := root.meta.Parameter("Alias")
		return ok && root.field(p).String() == seg.Name
	default:
		return false
	}
}
