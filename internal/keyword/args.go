package keyword

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadArgument is returned for missing, unknown or mistyped arguments.
var ErrBadArgument = errors.New("bad argument")

// Args holds the bound arguments of one keyword call, keyed by argument name.
type Args map[string]any

// Value returns the raw value of name and whether it was given.
func (a Args) Value(name string) (any, bool) {
	v, ok := a[name]
	return v, ok
}

// Has reports whether name was given, even as nil.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns name as a string, or def when it was omitted or nil.
// Numbers and booleans are formatted; other types are an ErrBadArgument.
func (a Args) String(name, def string) (string, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return def, nil
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(t), nil
	default:
		return "", fmt.Errorf("%w: %q must be a string, got %T", ErrBadArgument, name, v)
	}
}

// Bool returns name as a bool, or def when it was omitted or nil. Strings
// such as "true", "False", "yes", "0" are accepted, as are integers.
func (a Args) Bool(name string, def bool) (bool, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return def, nil
	}
	switch t := v.(type) {
	case bool:
		return t, nil
	case int:
		return t != 0, nil
	case int64:
		return t != 0, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes", "y", "on":
			return true, nil
		case "no", "n", "off", "none", "":
			return false, nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, fmt.Errorf("%w: %q must be a boolean, got %q", ErrBadArgument, name, t)
		}
		return b, nil
	default:
		return false, fmt.Errorf("%w: %q must be a boolean, got %T", ErrBadArgument, name, v)
	}
}

// OptionalString is like String but returns nil when name was omitted.
func (a Args) OptionalString(name string) (*string, error) {
	if !a.Has(name) {
		return nil, nil
	}
	s, err := a.String(name, "")
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// OptionalBool is like Bool but returns nil when name was omitted.
func (a Args) OptionalBool(name string) (*bool, error) {
	if !a.Has(name) {
		return nil, nil
	}
	b, err := a.Bool(name, false)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
