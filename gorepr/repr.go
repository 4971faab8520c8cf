// Package gorepr renders Go values as human readable block text.
//
// # Usage
//
//	type Point struct{ X, Y int }
//
//	gorepr.Repr(Point{1, 2})
//
// renders
//
//	Point(
//	    X=1,
//	    Y=2,
//	)
//
// Structs render as Name(field=..., ...), maps as map[k=v, ...] with
// sorted keys, slices and arrays as bracketed element lists. Types
// implementing Reprer render themselves.
package gorepr

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/signadot/textblock/lines"
)

type reprOpts struct {
	indent int
}

type Option func(*reprOpts)

// WithIndent sets the spaces per indent level of nested blocks.
func WithIndent(n int) Option {
	return func(o *reprOpts) { o.indent = n }
}

// Reprer lets a type provide its own repr.
type Reprer interface {
	Repr() string
}

func Repr(v any, opts ...Option) string {
	o := &reprOpts{indent: 4}
	for _, f := range opts {
		f(o)
	}
	r := &reprState{opts: o, seen: map[uintptr]bool{}}
	return r.value(reflect.ValueOf(v))
}

type reprState struct {
	opts *reprOpts
	seen map[uintptr]bool
}

func (r *reprState) value(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	if v.CanInterface() {
		if x, ok := v.Interface().(Reprer); ok {
			return x.Repr()
		}
	}
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return "nil"
		}
		p := v.Pointer()
		if r.seen[p] {
			return "..."
		}
		r.seen[p] = true
		defer delete(r.seen, p)
		return "&" + r.value(v.Elem())
	case reflect.Interface:
		if v.IsNil() {
			return "nil"
		}
		return r.value(v.Elem())
	case reflect.Struct:
		return r.structRepr(v)
	case reflect.Map:
		return r.mapRepr(v)
	case reflect.Slice, reflect.Array:
		return r.seqRepr(v)
	case reflect.String:
		return strconv.Quote(v.String())
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (r *reprState) structRepr(v reflect.Value) string {
	t := v.Type()
	name := t.Name()
	if name == "" {
		name = "struct"
	}
	var fields []lines.Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fields = append(fields, lines.Field{
			Key:   sf.Name,
			Value: r.value(v.Field(i)),
		})
	}
	return lines.MustBlock(name, fields, lines.BlockIndent(r.opts.indent))
}

func (r *reprState) mapRepr(v reflect.Value) string {
	keys := v.MapKeys()
	type kv struct {
		text string
		key  reflect.Value
	}
	kvs := make([]kv, len(keys))
	for i, k := range keys {
		kvs[i] = kv{text: keyText(k), key: k}
	}
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].text < kvs[j].text })
	fields := make([]lines.Field, len(kvs))
	for i, e := range kvs {
		fields[i] = lines.Field{
			Key:   e.text,
			Value: r.value(v.MapIndex(e.key)),
		}
	}
	return lines.MustBlock("map", fields,
		lines.Braces('['), lines.BlockIndent(r.opts.indent))
}

func (r *reprState) seqRepr(v reflect.Value) string {
	n := v.Len()
	switch n {
	case 0:
		return "[]"
	case 1:
		return "[" + r.value(v.Index(0)) + "]"
	}
	l := lines.New(lines.WithIndent(r.opts.indent))
	l.Append("[")
	release := l.Indent()
	for i := 0; i < n; i++ {
		l.Append(r.value(v.Index(i)) + ",")
	}
	release()
	l.Append("]")
	return l.Join()
}

// keyText renders a map key without quoting strings, so keys read as
// identifiers in the k=v output.
func keyText(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprintf("%v", k.Interface())
}
