package bencode

import (
	"io"
	"reflect"

	intr "github.com/dadrian/bencode/internal"
)

// Encoder writes bencode-encoded values to an io.Writer.
type Encoder struct {
	w io.Writer
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

// Encode writes the canonical encoding of v, mapping Go values the same
// way Marshal does.
func (e *Encoder) Encode(v any) error {
	val, err := valueOf(reflect.ValueOf(v))
	if err != nil {
		return err
	}
	return e.EncodeValue(val)
}

// EncodeValue writes the canonical encoding of val.
func (e *Encoder) EncodeValue(val Value) error {
	buf := intr.GetBuffer()
	defer intr.PutBuffer(buf)
	*buf = Append(*buf, val)
	_, err := e.w.Write(*buf)
	return err
}

// Decoder reads bencode-encoded values from an io.Reader.
//
// The format is decoded whole-buffer: Decode drains the reader before
// parsing, so the reader must be bounded to a single document.
type Decoder struct {
	r io.Reader
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder { return &Decoder{r: r} }

// Decode reads the remainder of the stream and decodes it into v,
// with Unmarshal's target rules.
func (d *Decoder) Decode(v any) error {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}
	return Unmarshal(data, v)
}

// DecodeValue reads the remainder of the stream and returns the decoded
// tree. Unlike Decode with a *Value target, the returned strings alias
// the drained buffer, which the Decoder does not retain.
func (d *Decoder) DecodeValue() (Value, error) {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
