package bencode

// Kind identifies a bencode value kind.
type Kind int

const (
	KindInteger Kind = iota + 1
	KindString
	KindList
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindDict:
		return "dictionary"
	}
	return "invalid"
}

// Value is a node of a decoded bencode tree. The only implementations
// are Integer, String, List and Dict; the set is closed.
type Value interface {
	Kind() Kind
	// sealed keeps the variant set to the four types in this package.
	sealed()
}

// Integer is a bencode integer (i...e). Magnitudes are limited to the
// int64 range; see ErrIntegerOverflow.
type Integer int64

// String is a bencode byte string. Contents are raw bytes and carry no
// text encoding.
type String []byte

// List is an ordered sequence of values (l...e). Element order is
// preserved exactly through decode and encode.
type List []Value

// Dict maps byte-string keys to values (d...e). Keys are held as Go
// strings, which makes a non-string key unrepresentable; the key bytes
// are arbitrary, not necessarily UTF-8. Decoding a dictionary with a
// repeated key keeps the last occurrence. Iteration order is not
// meaningful: Encode always emits keys in byte-lexicographic order.
type Dict map[string]Value

func (Integer) Kind() Kind { return KindInteger }
func (String) Kind() Kind  { return KindString }
func (List) Kind() Kind    { return KindList }
func (Dict) Kind() Kind    { return KindDict }

func (Integer) sealed() {}
func (String) sealed()  {}
func (List) sealed()    {}
func (Dict) sealed()    {}
