// Package prettyprint flattens arbitrary structured values into
// human-readable lines tagged with their inferred type.
//
// Scalars render as a single line:
//
//	[STR]  :  'text'
//	[INT]  :  25
//
// Containers prefix every nested line with their type and a
// "(count/position)" counter, maps and structs additionally with the key:
//
//	[LIST] (2/1) > [INT]  :  1
//	[DICT] (1/1) > {name} [STR]  :  'x'
package prettyprint

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// MaxDepth bounds recursion for deeply nested values.
const MaxDepth = 64

const separator = "  :  "

// Type tags used as line prefixes.
const (
	TagString  = "[STR]"
	TagInt     = "[INT]"
	TagFloat   = "[FLOAT]"
	TagBool    = "[BOOL]"
	TagNone    = "[NONE]"
	TagList    = "[LIST]"
	TagArray   = "[ARRAY]"
	TagDict    = "[DICT]"
	TagStruct  = "[STRUCT]"
	TagComplex = "[COMPLEX]"
	TagCycle   = "[CYCLE]"
)

// Render returns the flattened lines for data. It never returns an empty
// slice: nil renders as a single [NONE] line. A pointer, map or slice that
// contains itself renders as a [CYCLE] line where it recurs.
func Render(data any) []string {
	r := renderer{visiting: make(map[visit]bool)}
	r.render(reflect.ValueOf(data), "", 0)
	return r.out
}

// visit identifies a reference value on the current render path.
type visit struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

type renderer struct {
	out      []string
	visiting map[visit]bool
}

func (r *renderer) line(s string) {
	r.out = append(r.out, s)
}

// enter marks v as being rendered. It reports false when v is already on
// the path, in which case nothing is marked.
func (r *renderer) enter(v reflect.Value) (visit, bool) {
	k := visit{ptr: v.Pointer(), typ: v.Type()}
	if v.Kind() == reflect.Slice {
		k.n = v.Len()
	}
	if r.visiting[k] {
		return k, false
	}
	r.visiting[k] = true
	return k, true
}

func (r *renderer) render(v reflect.Value, prefix string, depth int) {
	if depth > MaxDepth {
		r.line(prefix + "[...]" + separator + "max depth reached")
		return
	}

	var entered []visit
	defer func() {
		for _, k := range entered {
			delete(r.visiting, k)
		}
	}()

	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			v = reflect.Value{}
			break
		}
		if v.Kind() == reflect.Pointer {
			k, ok := r.enter(v)
			if !ok {
				r.line(prefix + TagCycle + separator + v.Type().String())
				return
			}
			entered = append(entered, k)
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		r.line(prefix + TagNone + separator + "nil")
		return
	}

	if (v.Kind() == reflect.Map || v.Kind() == reflect.Slice) && !v.IsNil() && v.Len() > 0 {
		k, ok := r.enter(v)
		if !ok {
			r.line(prefix + TagCycle + separator + v.Type().String())
			return
		}
		entered = append(entered, k)
	}

	switch v.Kind() {
	case reflect.String:
		r.line(prefix + TagString + separator + "'" + v.String() + "'")
	case reflect.Bool:
		r.line(fmt.Sprintf("%s%s%s%t", prefix, TagBool, separator, v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		r.line(fmt.Sprintf("%s%s%s%d", prefix, TagInt, separator, v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		r.line(fmt.Sprintf("%s%s%s%d", prefix, TagInt, separator, v.Uint()))
	case reflect.Float32, reflect.Float64:
		r.line(fmt.Sprintf("%s%s%s%v", prefix, TagFloat, separator, v.Float()))
	case reflect.Complex64, reflect.Complex128:
		r.line(fmt.Sprintf("%s%s%s%v", prefix, TagComplex, separator, v.Complex()))
	case reflect.Slice:
		if v.IsNil() {
			r.line(prefix + TagList + separator + "[]")
			return
		}
		r.renderSequence(v, TagList, prefix, depth)
	case reflect.Array:
		r.renderSequence(v, TagArray, prefix, depth)
	case reflect.Map:
		r.renderMap(v, prefix, depth)
	case reflect.Struct:
		if s, ok := stringer(v); ok {
			r.line(prefix + TagStruct + separator + "'" + s + "'")
			return
		}
		r.renderStruct(v, prefix, depth)
	default:
		tag := "[" + strings.ToUpper(v.Kind().String()) + "]"
		r.line(fmt.Sprintf("%s%s%s%v", prefix, tag, separator, v.Interface()))
	}
}

func (r *renderer) renderSequence(v reflect.Value, tag, prefix string, depth int) {
	n := v.Len()
	if n == 0 {
		r.line(prefix + tag + separator + "[]")
		return
	}
	for i := 0; i < n; i++ {
		p := fmt.Sprintf("%s%s (%d/%d) > ", prefix, tag, n, i+1)
		r.render(v.Index(i), p, depth+1)
	}
}

func (r *renderer) renderMap(v reflect.Value, prefix string, depth int) {
	n := v.Len()
	if n == 0 {
		r.line(prefix + TagDict + separator + "{}")
		return
	}

	type entry struct {
		key string
		val reflect.Value
	}
	entries := make([]entry, 0, n)
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: fmt.Sprint(iter.Key().Interface()), val: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	for i, e := range entries {
		p := fmt.Sprintf("%s%s (%d/%d) > {%s} ", prefix, TagDict, n, i+1, e.key)
		r.render(e.val, p, depth+1)
	}
}

func (r *renderer) renderStruct(v reflect.Value, prefix string, depth int) {
	t := v.Type()
	var fields []int
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			fields = append(fields, i)
		}
	}
	n := len(fields)
	if n == 0 {
		r.line(prefix + TagStruct + separator + "{}")
		return
	}
	for pos, i := range fields {
		p := fmt.Sprintf("%s%s (%d/%d) > {%s} ", prefix, TagStruct, n, pos+1, t.Field(i).Name)
		r.render(v.Field(i), p, depth+1)
	}
}

func stringer(v reflect.Value) (string, bool) {
	if !v.CanInterface() {
		return "", false
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String(), true
	}
	return "", false
}
