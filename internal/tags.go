package internal

import (
	"reflect"
	"strings"
)

// ParseTag parses `bencode:"<key>[,omitempty]"` into components.
// Returns (key, omitempty, ok). An empty key falls back to the field
// name; a "-" tag or an unexported field returns ok=false.
func ParseTag(f reflect.StructField) (string, bool, bool) {
	if !f.IsExported() {
		return "", false, false
	}
	tag := f.Tag.Get("bencode")
	if tag == "-" {
		return "", false, false
	}
	key, rest, _ := strings.Cut(tag, ",")
	if key == "" {
		key = f.Name
	}
	var omitempty bool
	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		if strings.TrimSpace(opt) == "omitempty" {
			omitempty = true
		}
	}
	return key, omitempty, true
}
