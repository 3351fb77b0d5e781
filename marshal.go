package bencode

import (
	"bytes"
	"fmt"
	"math"
	"reflect"

	intr "github.com/dadrian/bencode/internal"
)

// Marshal returns the canonical bencode encoding of v.
//
// Go values map onto the four bencode kinds: signed and unsigned
// integers onto integers, string and []byte onto byte strings, slices
// and arrays onto lists, and string-keyed maps and structs onto
// dictionaries. Struct fields are named by a `bencode:"<key>[,omitempty]"`
// tag, defaulting to the field name; a "-" tag skips the field. Pointers
// marshal as the value pointed to, a nil pointer as the zero value of
// its element type. A Value is encoded as-is. Booleans, floats and
// other kinds have no bencode representation and return
// UnsupportedTypeError.
func Marshal(v any) ([]byte, error) {
	val, err := valueOf(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	return Encode(val), nil
}

// Unmarshal decodes data into v, which must be a non-nil pointer.
//
// Targets mirror Marshal: integers into int/uint kinds (with range
// checks), byte strings into string or []byte (copied, never aliasing
// data), lists into slices, dictionaries into string-keyed maps or
// tagged structs. Dictionary keys with no matching struct field are
// ignored; struct fields absent from the dictionary keep their prior
// contents. A *Value or *any target receives the decoded tree itself.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &InvalidUnmarshalError{Type: reflect.TypeOf(v)}
	}
	val, err := Decode(data)
	if err != nil {
		return err
	}
	return assign(val, rv.Elem())
}

// UnsupportedTypeError is returned by Marshal for a Go type with no
// bencode representation.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	if e.Type == nil {
		return "bencode: unsupported type: nil"
	}
	return "bencode: unsupported type: " + e.Type.String()
}

// UnsupportedValueError is returned by Marshal for a value of a
// supported type that cannot be represented, such as a uint64 beyond
// the int64 range.
type UnsupportedValueError struct {
	Value reflect.Value
	Str   string
}

func (e *UnsupportedValueError) Error() string {
	return "bencode: unsupported value: " + e.Str
}

// UnmarshalTypeError describes a decoded value that cannot be stored in
// the target Go type.
type UnmarshalTypeError struct {
	Kind Kind
	Type reflect.Type
}

func (e *UnmarshalTypeError) Error() string {
	return fmt.Sprintf("bencode: cannot unmarshal %v into %v", e.Kind, e.Type)
}

// InvalidUnmarshalError describes an invalid Unmarshal target.
type InvalidUnmarshalError struct {
	Type reflect.Type
}

func (e *InvalidUnmarshalError) Error() string {
	if e.Type == nil {
		return "bencode: Unmarshal(nil)"
	}
	if e.Type.Kind() != reflect.Pointer {
		return "bencode: Unmarshal(non-pointer " + e.Type.String() + ")"
	}
	return "bencode: Unmarshal(nil " + e.Type.String() + ")"
}

var valueType = reflect.TypeOf((*Value)(nil)).Elem()

// valueOf builds the Value tree for rv.
func valueOf(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return nil, &UnsupportedTypeError{}
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			// nil pointer marshals as zero value of element
			rv = reflect.Zero(rv.Type().Elem())
			break
		}
		rv = rv.Elem()
	}
	// Dereferenced first: *Dict also satisfies Value, but only the four
	// variant types themselves may enter the tree.
	if rv.Type().Implements(valueType) {
		return rv.Interface().(Value), nil
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Integer(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, &UnsupportedValueError{Value: rv, Str: fmt.Sprintf("%d overflows int64", u)}
		}
		return Integer(u), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return String(rv.Bytes()), nil
		}
		return listOf(rv)
	case reflect.Array:
		return listOf(rv)
	case reflect.Map:
		return dictOfMap(rv)
	case reflect.Struct:
		return dictOfStruct(rv)
	case reflect.Interface:
		if rv.IsNil() {
			return nil, &UnsupportedValueError{Value: rv, Str: "nil interface"}
		}
		return valueOf(rv.Elem())
	default:
		return nil, &UnsupportedTypeError{Type: rv.Type()}
	}
}

func listOf(rv reflect.Value) (Value, error) {
	out := make(List, rv.Len())
	for i := range out {
		v, err := valueOf(rv.Index(i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func dictOfMap(rv reflect.Value) (Value, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, &UnsupportedTypeError{Type: rv.Type()}
	}
	out := make(Dict, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		v, err := valueOf(iter.Value())
		if err != nil {
			return nil, err
		}
		out[iter.Key().String()] = v
	}
	return out, nil
}

func dictOfStruct(rv reflect.Value) (Value, error) {
	rt := rv.Type()
	out := make(Dict, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		key, omitempty, ok := intr.ParseTag(rt.Field(i))
		if !ok {
			continue
		}
		fv := rv.Field(i)
		if omitempty && isZeroValue(fv) {
			continue
		}
		v, err := valueOf(fv)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

// assign stores the decoded value v into dst, allocating through
// pointers as needed.
func assign(v Value, dst reflect.Value) error {
	for dst.Kind() == reflect.Pointer {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		dst = dst.Elem()
	}
	// Value and any targets take the tree itself.
	if dst.Type() == valueType || (dst.Kind() == reflect.Interface && dst.NumMethod() == 0) {
		dst.Set(reflect.ValueOf(v))
		return nil
	}
	switch v := v.(type) {
	case Integer:
		switch dst.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if dst.OverflowInt(int64(v)) {
				return &UnmarshalTypeError{Kind: KindInteger, Type: dst.Type()}
			}
			dst.SetInt(int64(v))
			return nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			if v < 0 || dst.OverflowUint(uint64(v)) {
				return &UnmarshalTypeError{Kind: KindInteger, Type: dst.Type()}
			}
			dst.SetUint(uint64(v))
			return nil
		}
	case String:
		switch {
		case dst.Kind() == reflect.String:
			dst.SetString(string(v))
			return nil
		case dst.Kind() == reflect.Slice && dst.Type().Elem().Kind() == reflect.Uint8:
			// Copy so the target never aliases the decode input.
			dst.SetBytes(bytes.Clone(v))
			return nil
		}
	case List:
		if dst.Kind() == reflect.Slice {
			out := reflect.MakeSlice(dst.Type(), len(v), len(v))
			for i, item := range v {
				if err := assign(item, out.Index(i)); err != nil {
					return err
				}
			}
			dst.Set(out)
			return nil
		}
	case Dict:
		switch dst.Kind() {
		case reflect.Map:
			return assignMap(v, dst)
		case reflect.Struct:
			return assignStruct(v, dst)
		}
	}
	return &UnmarshalTypeError{Kind: v.Kind(), Type: dst.Type()}
}

func assignMap(d Dict, dst reflect.Value) error {
	rt := dst.Type()
	if rt.Key().Kind() != reflect.String {
		return &UnmarshalTypeError{Kind: KindDict, Type: rt}
	}
	out := reflect.MakeMapWithSize(rt, len(d))
	for k, item := range d {
		ev := reflect.New(rt.Elem()).Elem()
		if err := assign(item, ev); err != nil {
			return err
		}
		out.SetMapIndex(reflect.ValueOf(k).Convert(rt.Key()), ev)
	}
	dst.Set(out)
	return nil
}

func assignStruct(d Dict, dst reflect.Value) error {
	rt := dst.Type()
	for i := 0; i < rt.NumField(); i++ {
		key, _, ok := intr.ParseTag(rt.Field(i))
		if !ok {
			continue
		}
		item, present := d[key]
		if !present {
			// absent key: leave the field as-is
			continue
		}
		if err := assign(item, dst.Field(i)); err != nil {
			return err
		}
	}
	return nil
}
