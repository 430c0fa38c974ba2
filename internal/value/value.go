// Package value implements the structural equality, hashing and string
// rendering shared by every request, result and nested model type.
//
// All helpers walk exported fields with reflection, so a field added to a
// model type takes part in Equal, Hash and String without further code.
package value

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Redacted replaces the rendering of fields tagged `sensitive:"true"`.
const Redacted = "*** sensitive data redacted ***"

var timeType = reflect.TypeOf(time.Time{})

// Equal reports whether a and b hold structurally equal values.
// Two nil pointers are equal; a nil and a non-nil pointer are not.
func Equal[T any](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalValue(reflect.ValueOf(a).Elem(), reflect.ValueOf(b).Elem())
}

func equalValue(a, b reflect.Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}

	switch a.Kind() {
	case reflect.Pointer, reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return equalValue(a.Elem(), b.Elem())
	case reflect.Struct:
		if a.Type() != b.Type() {
			return false
		}
		if a.Type() == timeType {
			return timeOf(a).Equal(timeOf(b))
		}
		for i := 0; i < a.NumField(); i++ {
			if !a.Type().Field(i).IsExported() {
				continue
			}
			if !equalValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		fallthrough
	case reflect.Array:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		if a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			other := b.MapIndex(iter.Key())
			if !other.IsValid() || !equalValue(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.String:
		return a.String() == b.String()
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() == b.Float()
	case reflect.Invalid:
		return true
	default:
		panic(fmt.Sprintf("value: unsupported kind %s", a.Kind()))
	}
}

// Hash returns a hash of v derived from the same fields Equal compares,
// so values that are Equal always hash identically.
func Hash(v any) uint64 {
	d := xxhash.New()
	hashValue(d, reflect.ValueOf(v))
	return d.Sum64()
}

func hashValue(d *xxhash.Digest, v reflect.Value) {
	var buf [8]byte
	writeUint := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		_, _ = d.Write(buf[:])
	}
	writeNil := func(isNil bool) bool {
		if isNil {
			_, _ = d.Write([]byte{0})
			return true
		}
		_, _ = d.Write([]byte{1})
		return false
	}

	switch v.Kind() {
	case reflect.Invalid:
		writeNil(true)
	case reflect.Pointer, reflect.Interface:
		if !writeNil(v.IsNil()) {
			hashValue(d, v.Elem())
		}
	case reflect.Struct:
		if v.Type() == timeType {
			writeUint(uint64(timeOf(v).UnixNano()))
			return
		}
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				hashValue(d, v.Field(i))
			}
		}
	case reflect.Slice:
		if writeNil(v.IsNil()) {
			return
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			writeUint(uint64(v.Len()))
			_, _ = d.Write(v.Bytes())
			return
		}
		fallthrough
	case reflect.Array:
		writeUint(uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			hashValue(d, v.Index(i))
		}
	case reflect.Map:
		if writeNil(v.IsNil()) {
			return
		}
		// entry order is random, so combine per-entry digests commutatively
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			e := xxhash.New()
			hashValue(e, iter.Key())
			hashValue(e, iter.Value())
			sum += e.Sum64()
		}
		writeUint(uint64(v.Len()))
		writeUint(sum)
	case reflect.String:
		writeUint(uint64(v.Len()))
		_, _ = d.WriteString(v.String())
	case reflect.Bool:
		if v.Bool() {
			writeUint(1)
		} else {
			writeUint(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(v.Uint())
	case reflect.Float32, reflect.Float64:
		writeUint(math.Float64bits(v.Float()))
	default:
		panic(fmt.Sprintf("value: unsupported kind %s", v.Kind()))
	}
}

// String renders v as "{Field: value, ...}", listing only fields that are set.
// A nil pointer renders as "<nil>".
func String(v any) string {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return "<nil>"
	}
	var sb strings.Builder
	writeString(&sb, rv)
	return sb.String()
}

func writeString(sb *strings.Builder, v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			sb.WriteString("<nil>")
			return
		}
		writeString(sb, v.Elem())
	case reflect.Struct:
		if v.Type() == timeType {
			sb.WriteString(timeOf(v).Format(time.RFC3339Nano))
			return
		}
		sb.WriteByte('{')
		first := true
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			sf := t.Field(i)
			fv := v.Field(i)
			if !sf.IsExported() || fv.IsZero() {
				continue
			}
			if !first {
				sb.WriteString(", ")
			}
			first = false
			sb.WriteString(sf.Name)
			sb.WriteString(": ")
			if sf.Tag.Get("sensitive") == "true" {
				sb.WriteString(Redacted)
				continue
			}
			writeString(sb, fv)
		}
		sb.WriteByte('}')
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			fmt.Fprintf(sb, "<%d bytes>", v.Len())
			return
		}
		sb.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeString(sb, v.Index(i))
		}
		sb.WriteByte(']')
	case reflect.String:
		sb.WriteString(v.String())
	default:
		fmt.Fprint(sb, v.Interface())
	}
}

func timeOf(v reflect.Value) time.Time {
	return v.Interface().(time.Time)
}

// CopySlice returns an owned copy of s. A nil input stays nil.
func CopySlice[E any](s []E) []E {
	if s == nil {
		return nil
	}
	out := make([]E, len(s))
	copy(out, s)
	return out
}

// Append appends copies of items to dst, allocating dst when it is nil so that
// an append with no items still leaves the field set.
func Append[E any](dst []E, items ...E) []E {
	if dst == nil {
		dst = make([]E, 0, len(items))
	}
	return append(dst, items...)
}
