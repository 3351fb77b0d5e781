package bencode

import (
	"reflect"
	"strings"
	"testing"
)

func TestDecodeValid(t *testing.T) {
	cases := []struct {
		in   string
		want Value
	}{
		{"i0e", Integer(0)},
		{"i1e", Integer(1)},
		{"i-42e", Integer(-42)},
		{"i9223372036854775807e", Integer(9223372036854775807)},
		{"i-9223372036854775808e", Integer(-9223372036854775808)},
		{"0:", String{}},
		{"4:spam", String("spam")},
		{"3:i1e", String("i1e")},
		{"le", List{}},
		{"de", Dict{}},
		{"li1e6:wibblee", List{Integer(1), String("wibble")}},
		{"lllleeee", List{List{List{List{}}}}},
		{"d3:bari2e3:fooi1ee", Dict{"bar": Integer(2), "foo": Integer(1)}},
		// decode is permissive about key order; only encode re-sorts
		{"d3:fooi1e3:bari2ee", Dict{"bar": Integer(2), "foo": Integer(1)}},
		{"d4:spaml1:a1:bee", Dict{"spam": List{String("a"), String("b")}}},
		{"d1:dd1:ll1:ai0eeee", Dict{"d": Dict{"l": List{String("a"), Integer(0)}}}},
	}
	for _, c := range cases {
		got, err := Decode([]byte(c.in))
		if err != nil {
			t.Errorf("Decode(%q) failed: %v", c.in, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Decode(%q):\n got: %#v\nwant: %#v", c.in, got, c.want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		in     string
		kind   ErrorKind
		offset int64
	}{
		{"", ErrUnexpectedEOF, -1},
		{"x", ErrUnexpectedChar, 0},
		{"e", ErrUnexpectedChar, 0},

		{"ie", ErrEmptyNumber, 0},
		{"i-0e", ErrNegativeZero, 0},
		{"i01e", ErrLeadingZero, 0},
		{"i-01e", ErrLeadingZero, 0},
		{"i00e", ErrLeadingZero, 0},
		{"i0", ErrLeadingZero, 0},
		{"i-e", ErrUnexpectedChar, 2},
		{"i--1e", ErrUnexpectedChar, 2},
		{"i1x", ErrUnexpectedChar, 2},
		{"i", ErrUnexpectedEOF, -1},
		{"i12", ErrUnexpectedEOF, -1},
		{"i-", ErrUnexpectedEOF, -1},
		{"i9223372036854775808e", ErrIntegerOverflow, 0},
		{"i-9223372036854775809e", ErrIntegerOverflow, 0},
		{"i99999999999999999999999999e", ErrIntegerOverflow, 0},

		{"10:aa", ErrStringTooShort, 0},
		{"1:", ErrStringTooShort, 0},
		{"0", ErrUnexpectedEOF, -1},
		{"0x", ErrUnexpectedChar, 1},
		{"00:", ErrUnexpectedChar, 1},
		{"3x", ErrUnexpectedChar, 1},
		{"3", ErrUnexpectedEOF, -1},

		{"l", ErrUnexpectedEOF, -1},
		{"li1e", ErrUnexpectedEOF, -1},
		{"lxe", ErrUnexpectedChar, 1},

		{"d", ErrUnexpectedEOF, -1},
		{"d3:foo", ErrUnexpectedEOF, -1},
		{"d1:a", ErrUnexpectedEOF, -1},
		{"di1e2:aae", ErrInvalidDictKey, 1},
		{"dlei1ee", ErrInvalidDictKey, 1},
		{"ddei1ee", ErrInvalidDictKey, 1},

		// errors inside nested values keep absolute offsets
		{"lli01eee", ErrLeadingZero, 2},
		{"l3:ab", ErrStringTooShort, 1},
		{"d3:fooi-0ee", ErrNegativeZero, 6},

		{"i1ei2e", ErrExpectingEOF, -1},
		{"lee", ErrExpectingEOF, -1},
		{"0:0:", ErrExpectingEOF, -1},
	}
	for _, c := range cases {
		v, err := Decode([]byte(c.in))
		if err == nil {
			t.Errorf("Decode(%q) = %#v, want error %v", c.in, v, c.kind)
			continue
		}
		e, ok := err.(*Error)
		if !ok {
			t.Errorf("Decode(%q) returned %T, want *Error", c.in, err)
			continue
		}
		if e.Kind != c.kind || e.Offset != c.offset {
			t.Errorf("Decode(%q) = (%v, %d), want (%v, %d)", c.in, e.Kind, e.Offset, c.kind, c.offset)
		}
	}
}

func TestDecodeDuplicateKeysLastWins(t *testing.T) {
	got, err := Decode([]byte("d1:ai1e1:ai2ee"))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := Dict{"a": Integer(2)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestDecodeStringAliasesInput(t *testing.T) {
	data := []byte("3:abc")
	v, err := Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	s := v.(String)
	if &s[0] != &data[2] {
		t.Fatalf("decoded string does not alias the input buffer")
	}
}

func TestDecodeDeepNesting(t *testing.T) {
	const depth = 1000
	in := strings.Repeat("l", depth) + strings.Repeat("e", depth)
	v, err := Decode([]byte(in))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	for i := 0; i < depth-1; i++ {
		l, ok := v.(List)
		if !ok || len(l) != 1 {
			t.Fatalf("level %d: got %#v", i, v)
		}
		v = l[0]
	}
	if l, ok := v.(List); !ok || len(l) != 0 {
		t.Fatalf("innermost value: got %#v", v)
	}
}

func TestErrorMessages(t *testing.T) {
	_, err := Decode([]byte("i-0e"))
	if got, want := err.Error(), "bencode: negative zero at offset 0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	_, err = Decode(nil)
	if got, want := err.Error(), "bencode: unexpected end of input"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := (*Error)(nil).Error(), "<nil>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
