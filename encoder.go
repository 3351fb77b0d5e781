package bencode

import (
	"fmt"
	"sort"
	"strconv"
)

// Encode renders v in canonical form: dictionary keys are emitted in
// byte-lexicographic order regardless of how the map was built, so
// semantically equal trees always produce identical bytes. Encoding is
// total for the four value kinds and never fails.
func Encode(v Value) []byte {
	return Append(nil, v)
}

// Append appends the canonical encoding of v to dst and returns the
// extended slice.
func Append(dst []byte, v Value) []byte {
	switch v := v.(type) {
	case Integer:
		dst = append(dst, 'i')
		dst = strconv.AppendInt(dst, int64(v), 10)
		return append(dst, 'e')
	case String:
		return appendString(dst, string(v))
	case List:
		dst = append(dst, 'l')
		for _, item := range v {
			dst = Append(dst, item)
		}
		return append(dst, 'e')
	case Dict:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		// Go string order is unsigned byte-wise lexicographic with a
		// strict prefix sorting first, which is exactly canonical key
		// order.
		sort.Strings(keys)
		dst = append(dst, 'd')
		for _, k := range keys {
			dst = appendString(dst, k)
			dst = Append(dst, v[k])
		}
		return append(dst, 'e')
	}
	// Unreachable for the sealed Value set; only a nil Value lands here.
	panic(fmt.Sprintf("bencode: cannot encode %T", v))
}

func appendString(dst []byte, s string) []byte {
	dst = strconv.AppendInt(dst, int64(len(s)), 10)
	dst = append(dst, ':')
	return append(dst, s...)
}
