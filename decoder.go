package bencode

import "math"

// Decode parses exactly one bencode value spanning all of data. Trailing
// bytes after a complete value fail with ErrExpectingEOF; producers with
// several top-level values must wrap them in a list.
//
// Decoded String values alias data rather than copying it, so the caller
// must not modify data while the returned tree is in use.
func Decode(data []byte) (Value, error) {
	d := decoder{buf: data}
	v, err := d.value()
	if err != nil {
		return nil, err
	}
	if d.off < len(d.buf) {
		return nil, &Error{Kind: ErrExpectingEOF, Offset: -1}
	}
	return v, nil
}

type decoder struct {
	buf []byte
	off int
}

func (d *decoder) fail(kind ErrorKind, off int) (Value, error) {
	return nil, &Error{Kind: kind, Offset: int64(off)}
}

func (d *decoder) value() (Value, error) {
	if d.off >= len(d.buf) {
		return d.fail(ErrUnexpectedEOF, -1)
	}
	switch b := d.buf[d.off]; {
	case b == 'i':
		return d.integer()
	case b == 'l':
		return d.list()
	case b == 'd':
		return d.dict()
	case b >= '0' && b <= '9':
		return d.str()
	default:
		return d.fail(ErrUnexpectedChar, d.off)
	}
}

// integer parses i<digits>e with the cursor on the 'i'. Errors about the
// literal as a whole (empty body, -0, leading zero, overflow) report the
// position of the 'i'.
func (d *decoder) integer() (Value, error) {
	start := d.off
	d.off++
	neg := false
	if d.off < len(d.buf) && d.buf[d.off] == '-' {
		neg = true
		d.off++
	}
	if d.off < len(d.buf) && d.buf[d.off] == '0' {
		// Only the literal i0e encodes zero; every other body starting
		// with 0 (or -0) is rejected before digit accumulation.
		if d.off+1 < len(d.buf) && d.buf[d.off+1] == 'e' {
			if neg {
				return d.fail(ErrNegativeZero, start)
			}
			d.off += 2
			return Integer(0), nil
		}
		return d.fail(ErrLeadingZero, start)
	}
	var mag uint64
	digits := 0
	for d.off < len(d.buf) {
		c := d.buf[d.off]
		switch {
		case c >= '0' && c <= '9':
			if mag > (math.MaxUint64-uint64(c-'0'))/10 {
				return d.fail(ErrIntegerOverflow, start)
			}
			mag = mag*10 + uint64(c-'0')
			digits++
			d.off++
		case c == 'e':
			if digits == 0 {
				if neg {
					// "i-e": a digit was required after the sign.
					return d.fail(ErrUnexpectedChar, d.off)
				}
				return d.fail(ErrEmptyNumber, start)
			}
			d.off++
			if neg {
				if mag > uint64(math.MaxInt64)+1 {
					return d.fail(ErrIntegerOverflow, start)
				}
				// mag == 1<<63 negates to MinInt64 exactly.
				return Integer(-int64(mag)), nil
			}
			if mag > uint64(math.MaxInt64) {
				return d.fail(ErrIntegerOverflow, start)
			}
			return Integer(mag), nil
		default:
			return d.fail(ErrUnexpectedChar, d.off)
		}
	}
	return d.fail(ErrUnexpectedEOF, -1)
}

// str parses <length>:<bytes> with the cursor on the first length digit.
// The returned String aliases the input buffer.
func (d *decoder) str() (Value, error) {
	start := d.off
	if d.buf[d.off] == '0' {
		// The only legal zero-length form is exactly "0:".
		if d.off+1 >= len(d.buf) {
			return d.fail(ErrUnexpectedEOF, -1)
		}
		if d.buf[d.off+1] != ':' {
			return d.fail(ErrUnexpectedChar, d.off+1)
		}
		d.off += 2
		return String(d.buf[d.off:d.off]), nil
	}
	var n int64
	for d.off < len(d.buf) {
		c := d.buf[d.off]
		switch {
		case c >= '0' && c <= '9':
			// Saturate rather than overflow: any length beyond the
			// buffer reports the same ErrStringTooShort.
			if n <= math.MaxInt64/10-1 {
				n = n*10 + int64(c-'0')
			} else {
				n = math.MaxInt64
			}
			d.off++
		case c == ':':
			d.off++
			if n > int64(len(d.buf)-d.off) {
				return d.fail(ErrStringTooShort, start)
			}
			s := String(d.buf[d.off : d.off+int(n)])
			d.off += int(n)
			return s, nil
		default:
			return d.fail(ErrUnexpectedChar, d.off)
		}
	}
	return d.fail(ErrUnexpectedEOF, -1)
}

func (d *decoder) list() (Value, error) {
	d.off++
	out := List{}
	for {
		if d.off >= len(d.buf) {
			return d.fail(ErrUnexpectedEOF, -1)
		}
		if d.buf[d.off] == 'e' {
			d.off++
			return out, nil
		}
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

func (d *decoder) dict() (Value, error) {
	d.off++
	out := Dict{}
	for {
		if d.off >= len(d.buf) {
			return d.fail(ErrUnexpectedEOF, -1)
		}
		if d.buf[d.off] == 'e' {
			d.off++
			return out, nil
		}
		keyStart := d.off
		kv, err := d.value()
		if err != nil {
			return nil, err
		}
		key, ok := kv.(String)
		if !ok {
			return d.fail(ErrInvalidDictKey, keyStart)
		}
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		// Duplicate keys are legal on decode; the last occurrence wins.
		out[string(key)] = v
	}
}
