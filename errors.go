package bencode

import "fmt"

// ErrorKind classifies decoding errors.
type ErrorKind int

const (
	// ErrExpectingEOF: the top-level value decoded but bytes remain.
	ErrExpectingEOF ErrorKind = iota + 1
	// ErrUnexpectedEOF: input ran out where a value or terminator was
	// expected.
	ErrUnexpectedEOF
	// ErrUnexpectedChar: a byte appeared where no valid token can start.
	ErrUnexpectedChar
	// ErrEmptyNumber: the integer body is empty ("ie").
	ErrEmptyNumber
	// ErrNegativeZero: the integer literal is "-0".
	ErrNegativeZero
	// ErrLeadingZero: an integer has a leading zero other than exactly "0".
	ErrLeadingZero
	// ErrInvalidDictKey: a dictionary key is not a byte string.
	ErrInvalidDictKey
	// ErrStringTooShort: a string's declared length exceeds the
	// remaining input.
	ErrStringTooShort
	// ErrIntegerOverflow: an otherwise well-formed integer literal does
	// not fit in int64.
	ErrIntegerOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case ErrExpectingEOF:
		return "trailing data after value"
	case ErrUnexpectedEOF:
		return "unexpected end of input"
	case ErrUnexpectedChar:
		return "unexpected character"
	case ErrEmptyNumber:
		return "empty integer"
	case ErrNegativeZero:
		return "negative zero"
	case ErrLeadingZero:
		return "leading zero"
	case ErrInvalidDictKey:
		return "dictionary key is not a string"
	case ErrStringTooShort:
		return "string shorter than declared length"
	case ErrIntegerOverflow:
		return "integer out of range"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error reports a malformed encoding. Offset is a zero-based index into
// the input pointing at the first byte of the offending token, or -1
// for kinds that carry no position (ErrExpectingEOF, ErrUnexpectedEOF).
type Error struct {
	Kind   ErrorKind
	Offset int64
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("bencode: %v at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("bencode: %v", e.Kind)
}
