package model

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry errors.
var (
	ErrUnknownObject   = errors.New("unknown object")
	ErrDuplicateObject = errors.New("duplicate object registration")
)

// Factory creates a new object with its default values.
type Factory func() Object

type registration struct {
	meta    *ObjectMetadata
	factory Factory
}

var registry = struct {
	mu     sync.RWMutex
	byPath map[string]registration
	roots  map[string]registration
}{
	byPath: make(map[string]registration),
	roots:  make(map[string]registration),
}

// Register adds an object type to the registry. Generated packages call it
// from init. Registering the same schema path twice panics.
func Register(meta *ObjectMetadata, factory Factory) {
	if err := register(meta, factory); err != nil {
		panic(err)
	}
}

func register(meta *ObjectMetadata, factory Factory) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.byPath[meta.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateObject, meta.Name)
	}

	r := registration{meta: meta, factory: factory}
	registry.byPath[meta.Name] = r
	if meta.IsRoot() {
		registry.roots[meta.Segment()] = r
	}
	return nil
}

// Lookup returns the metadata registered for a schema path.
func Lookup(schemaPath string) (*ObjectMetadata, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	r, exists := registry.byPath[schemaPath]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObject, schemaPath)
	}
	return r.meta, nil
}

// LookupRoot returns the root object metadata for an XML document element,
// e.g. "Device" or "VoiceService".
func LookupRoot(element string) (*ObjectMetadata, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	r, exists := registry.roots[element]
	if !exists {
		return nil, fmt.Errorf("%w: root element %s", ErrUnknownObject, element)
	}
	return r.meta, nil
}

// New creates a new object for a schema path with its default values.
func New(schemaPath string) (Object, error) {
	registry.mu.RLock()
	r, exists := registry.byPath[schemaPath]
	registry.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObject, schemaPath)
	}
	return r.factory(), nil
}

// Registered returns the metadata of all registered objects sorted by path.
func Registered() []*ObjectMetadata {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	result := make([]*ObjectMetadata, 0, len(registry.byPath))
	for _, r := range registry.byPath {
		result = append(result, r.meta)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
