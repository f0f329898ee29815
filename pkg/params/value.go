package params

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/cwmp-models/cwmp-go/pkg/model"
	"github.com/cwmp-models/cwmp-go/pkg/types"
)

// Value errors.
var (
	ErrInvalidValue = errors.New("invalid parameter value")
	ErrOutOfRange   = errors.New("value out of range")
	ErrUnsupported  = errors.New("unsupported value type")
)

// FormatValue returns the string form of a parameter field value as it
// appears in a ParameterValueStruct.
func FormatValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint32:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

// ParseValue parses the string form of a parameter value into the Go type of
// its field. The result can be assigned to the field directly.
func ParseValue(p *model.ParameterMetadata, s string) (any, error) {
	if p.List {
		return types.ParseStringList(s), nil
	}

	switch p.Type {
	case model.TypeString, model.TypeAlias, model.TypeUnknown:
		return s, nil
	case model.TypeBoolean:
		switch s {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return nil, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, s)
	case model.TypeInt, model.TypeDbm1000:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an int", ErrInvalidValue, s)
		}
		return int32(n), nil
	case model.TypeUnsignedInt, model.TypeStatsCounter32:
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an unsignedInt", ErrInvalidValue, s)
		}
		return uint32(n), nil
	case model.TypeLong:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a long", ErrInvalidValue, s)
		}
		return n, nil
	case model.TypeUnsignedLong, model.TypeStatsCounter64:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an unsignedLong", ErrInvalidValue, s)
		}
		return n, nil
	case model.TypeDateTime:
		return wrap(types.ParseDateTime(s))
	case model.TypeBase64:
		return wrap(types.ParseBase64(s))
	case model.TypeHexBinary:
		return wrap(types.ParseHexBinary(s))
	case model.TypeMACAddress:
		return wrap(types.ParseMACAddress(s))
	case model.TypeIPAddress, model.TypeIPv4Address, model.TypeIPv6Address:
		a, err := types.ParseIPAddress(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		if a.IsValid() && (p.Type == model.TypeIPv4Address && !a.Is4() || p.Type == model.TypeIPv6Address && !a.Is6()) {
			return nil, fmt.Errorf("%w: %q is not an %s", ErrInvalidValue, s, p.Type)
		}
		return a, nil
	case model.TypeIPPrefix, model.TypeIPv4Prefix, model.TypeIPv6Prefix:
		pfx, err := types.ParseIPPrefix(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		if pfx.IsValid() {
			addr := pfx.Prefix().Addr()
			if p.Type == model.TypeIPv4Prefix && !addr.Is4() || p.Type == model.TypeIPv6Prefix && !addr.Is6() {
				return nil, fmt.Errorf("%w: %q is not an %s", ErrInvalidValue, s, p.Type)
			}
		}
		return pfx, nil
	case model.TypeUUID:
		return wrap(types.ParseUUID(s))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, p.Type)
	}
}

func wrap[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return v, nil
}

// CheckValue checks a value against the declared bounds of the parameter:
// string length, numeric range and enumeration. Empty strings satisfy the
// length and enumeration bounds. v is the result of ParseValue for s.
func CheckValue(p *model.ParameterMetadata, s string, v any) error {
	if n := utf8.RuneCountInString(s); n > 0 {
		if p.MaxLength > 0 && n > p.MaxLength {
			return fmt.Errorf("%w: length %d exceeds %d", ErrOutOfRange, n, p.MaxLength)
		}
		if p.MinLength > 0 && n < p.MinLength {
			return fmt.Errorf("%w: length %d below %d", ErrOutOfRange, n, p.MinLength)
		}
	}

	if len(p.Enumeration) > 0 {
		items := []string{s}
		if list, ok := v.(types.StringList); ok {
			items = list
		}
		for _, item := range items {
			if item != "" && !p.AllowsValue(item) {
				return fmt.Errorf("%w: %q is not one of %v", ErrInvalidValue, item, p.Enumeration)
			}
		}
	}

	switch n := v.(type) {
	case int32:
		return checkSigned(p, int64(n))
	case int64:
		return checkSigned(p, n)
	case uint32:
		return checkUnsigned(p, uint64(n))
	case uint64:
		return checkUnsigned(p, n)
	}
	return nil
}

func checkSigned(p *model.ParameterMetadata, n int64) error {
	if p.MinValue != nil && n < *p.MinValue {
		return fmt.Errorf("%w: %d below minimum %d", ErrOutOfRange, n, *p.MinValue)
	}
	if p.MaxValue != nil && n > *p.MaxValue {
		return fmt.Errorf("%w: %d above maximum %d", ErrOutOfRange, n, *p.MaxValue)
	}
	return nil
}

func checkUnsigned(p *model.ParameterMetadata, n uint64) error {
	if p.MinValue != nil && *p.MinValue > 0 && n < uint64(*p.MinValue) {
		return fmt.Errorf("%w: %d below minimum %d", ErrOutOfRange, n, *p.MinValue)
	}
	if p.MaxValue != nil && (*p.MaxValue < 0 || n > uint64(*p.MaxValue)) {
		return fmt.Errorf("%w: %d above maximum %d", ErrOutOfRange, n, *p.MaxValue)
	}
	return nil
}
