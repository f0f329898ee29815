package modeltest

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cwmp-models/cwmp-go/pkg/model"
	"github.com/cwmp-models/cwmp-go/pkg/params"
)

// Populate fills every parameter of obj and the objects below it with a
// sample value and creates every child object. Tables get the given number
// of entries, capped at their MaxEntries. Sample values satisfy the declared
// bounds and differ between the entries of a table, so a populated tree
// passes model.Validate.
func Populate(obj model.Object, entries int) error {
	return populate(reflect.ValueOf(obj), 1, entries)
}

func populate(ptr reflect.Value, n, entries int) error {
	obj, ok := ptr.Interface().(model.Object)
	if !ok || ptr.IsNil() {
		return fmt.Errorf("populate: %s is not an object", ptr.Type())
	}
	meta := obj.CWMPObject()
	v := ptr.Elem()

	for i := range meta.Parameters {
		p := &meta.Parameters[i]
		value, err := params.ParseValue(p, SampleValue(p, n))
		if err != nil {
			return fmt.Errorf("populate %s%s: %w", meta.Name, p.Name, err)
		}
		v.FieldByName(p.Field).Set(reflect.ValueOf(value))
	}

	for i := range meta.Objects {
		c := &meta.Objects[i]
		field := v.FieldByName(c.Field)

		if !c.Multi {
			child, err := model.New(c.Path)
			if err != nil {
				return err
			}
			cv := reflect.ValueOf(child)
			if err := populate(cv, n, entries); err != nil {
				return err
			}
			field.Set(cv)
			continue
		}

		count := entries
		if childMeta, err := model.Lookup(c.Path); err == nil && childMeta.MaxEntries > 0 {
			count = min(count, childMeta.MaxEntries)
		}
		table := reflect.MakeSlice(field.Type(), 0, count)
		for k := 1; k <= count; k++ {
			entry, err := model.New(c.Path)
			if err != nil {
				return err
			}
			ev := reflect.ValueOf(entry)
			if err := populate(ev, k, entries); err != nil {
				return err
			}
			table = reflect.Append(table, ev)
		}
		field.Set(table)
	}
	return nil
}

// SampleValue returns a value for a parameter that satisfies its declared
// bounds. Values derived from different n differ unless the parameter is
// enumerated, boolean or range-limited to a single value.
func SampleValue(p *model.ParameterMetadata, n int) string {
	if len(p.Enumeration) > 0 {
		return p.Enumeration[0]
	}
	if p.List {
		return fitLength(p, scalarSample(p, n))
	}
	return scalarSample(p, n)
}

func scalarSample(p *model.ParameterMetadata, n int) string {
	switch p.Type {
	case model.TypeBoolean:
		return "true"
	case model.TypeInt, model.TypeDbm1000, model.TypeLong:
		return strconv.FormatInt(clamp(p, int64(n)), 10)
	case model.TypeUnsignedInt, model.TypeStatsCounter32, model.TypeUnsignedLong, model.TypeStatsCounter64:
		return strconv.FormatInt(clamp(p, int64(n)), 10)
	case model.TypeDateTime:
		return fmt.Sprintf("2024-01-%02dT12:00:00Z", n%28+1)
	case model.TypeBase64:
		return base64.StdEncoding.EncodeToString([]byte{byte(n)})
	case model.TypeHexBinary:
		return fmt.Sprintf("%02x", byte(n))
	case model.TypeMACAddress:
		return fmt.Sprintf("02:00:00:00:%02x:%02x", byte(n>>8), byte(n))
	case model.TypeIPAddress, model.TypeIPv4Address:
		return fmt.Sprintf("192.0.2.%d", n%254+1)
	case model.TypeIPv6Address:
		return fmt.Sprintf("2001:db8::%x", n)
	case model.TypeIPPrefix, model.TypeIPv4Prefix:
		return fmt.Sprintf("198.51.%d.0/24", n%256)
	case model.TypeIPv6Prefix:
		return fmt.Sprintf("2001:db8:%x::/48", n)
	case model.TypeUUID:
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(p.Name+strconv.Itoa(n))).String()
	default:
		return fitLength(p, fmt.Sprintf("%s-%d", p.Name, n))
	}
}

// clamp limits n to the declared range.
func clamp(p *model.ParameterMetadata, n int64) int64 {
	if p.MinValue != nil && n < *p.MinValue {
		n = *p.MinValue
	}
	if p.MaxValue != nil && n > *p.MaxValue {
		n = *p.MaxValue
	}
	return n
}

// fitLength trims or pads s to the declared length bounds. Trimming keeps
// the end of s, where the distinguishing number is.
func fitLength(p *model.ParameterMetadata, s string) string {
	if p.MaxLength > 0 && len(s) > p.MaxLength {
		s = s[len(s)-p.MaxLength:]
	}
	if p.MinLength > len(s) {
		s = strings.Repeat("0", p.MinLength-len(s)) + s
	}
	return s
}
