// Package bencode encodes and decodes the bencode serialization format:
// integers, byte strings, lists and dictionaries as nested
// ASCII-delimited tokens.
//
// Decode and Encode work on Value trees and enforce the format's
// malformed-input rules byte-exactly, reporting typed errors with byte
// offsets. Encode always emits the canonical form, with dictionary keys
// in byte-lexicographic order. Marshal and Unmarshal layer a
// reflection-based mapping to plain Go values on top, and
// Encoder/Decoder wrap the codec for io.Writer/io.Reader endpoints.
package bencode
