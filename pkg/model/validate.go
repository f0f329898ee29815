package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Constraint errors.
var (
	ErrConstraint = errors.New("constraint violated")
	ErrNotUnique  = errors.New("unique key violated")
	ErrNilObject  = errors.New("nil object")
)

var validate = validator.New()

// Validate evaluates the declared constraints of obj and all objects below it:
// size bounds, ranges and enumerations from the validate struct tags, and the
// unique keys of every table. It returns nil when no constraint is violated,
// otherwise an error joining one error per violation.
func Validate(obj Object) error {
	if obj == nil {
		return ErrNilObject
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Pointer && v.IsNil() {
		return fmt.Errorf("%w: %T", ErrNilObject, obj)
	}

	var errs []error

	if err := validate.Struct(obj); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating %s: %w", obj.CWMPObject().Name, err)
		}
		for _, fe := range verrs {
			errs = append(errs, fmt.Errorf("%w: %s: %s=%s (value %v)",
				ErrConstraint, fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		}
	}

	errs = append(errs, checkUniqueKeys(reflect.ValueOf(obj), obj.CWMPObject().Name)...)

	return errors.Join(errs...)
}

// checkUniqueKeys walks the object tree and reports table entries sharing a
// unique key. Keys whose values are all empty are skipped.
func checkUniqueKeys(v reflect.Value, name string) []error {
	v = reflect.Indirect(v)
	if !v.IsValid() || !v.CanAddr() {
		return nil
	}
	obj, ok := v.Addr().Interface().(Object)
	if !ok {
		return nil
	}
	meta := obj.CWMPObject()

	var errs []error
	for _, child := range meta.Objects {
		fv := v.FieldByName(child.Field)
		if !fv.IsValid() {
			continue
		}
		if !child.Multi {
			if !fv.IsNil() {
				errs = append(errs, checkUniqueKeys(fv, name+child.Name+".")...)
			}
			continue
		}

		var childMeta *ObjectMetadata
		if fv.Len() > 0 {
			if o, ok := fv.Index(0).Interface().(Object); ok {
				childMeta = o.CWMPObject()
			}
		}
		if childMeta != nil {
			errs = append(errs, duplicateKeys(fv, childMeta, name+child.Name+".")...)
		}
		for i := 0; i < fv.Len(); i++ {
			entry := fv.Index(i)
			if entry.IsNil() {
				continue
			}
			errs = append(errs, checkUniqueKeys(entry, fmt.Sprintf("%s%s.%d.", name, child.Name, i+1))...)
		}
	}
	return errs
}

func duplicateKeys(table reflect.Value, meta *ObjectMetadata, name string) []error {
	var errs []error
	for _, key := range meta.UniqueKeys {
		seen := make(map[string]int)
		for i := 0; i < table.Len(); i++ {
			entry := reflect.Indirect(table.Index(i))
			if !entry.IsValid() {
				continue
			}
			k, ok := keyString(entry, meta, key)
			if !ok {
				continue
			}
			if first, dup := seen[k]; dup {
				errs = append(errs, fmt.Errorf("%w: %s%d. and %s%d. share %s=%s",
					ErrNotUnique, name, first, name, i+1, strings.Join(key, "+"), k))
				continue
			}
			seen[k] = i + 1
		}
	}
	return errs
}

func keyString(entry reflect.Value, meta *ObjectMetadata, key []string) (string, bool) {
	parts := make([]string, 0, len(key))
	empty := true
	for _, name := range key {
		p, ok := meta.Parameter(name)
		if !ok {
			return "", false
		}
		fv := entry.FieldByName(p.Field)
		if !fv.IsValid() {
			return "", false
		}
		s := fmt.Sprint(fv.Interface())
		if s != "" {
			empty = false
		}
		parts = append(parts, s)
	}
	if empty {
		return "", false
	}
	return strings.Join(parts, "+"), true
}
