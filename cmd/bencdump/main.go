// bencdump reads a bencode document from a file or stdin, validates it,
// and writes it back out: canonical bytes by default, hex or a JSON
// rendering of the value tree on request. Because output is always
// re-encoded, piping a document through bencdump canonicalizes its
// dictionary key order.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/dadrian/bencode"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bencdump: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		out      string
		jsonOut  bool
		hexOut   bool
		validate bool
	)
	flagSet := pflag.NewFlagSet("bencdump", pflag.ContinueOnError)
	flagSet.StringVarP(&out, "out", "o", "-", "output file (or - for stdout)")
	flagSet.BoolVar(&jsonOut, "json", false, "write a JSON rendering of the value tree")
	flagSet.BoolVar(&hexOut, "hex", false, "write hex-encoded canonical bytes instead of binary")
	flagSet.BoolVar(&validate, "validate", false, "validate only; no output on success")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: bencdump [flags] [file]\n")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	in := "-"
	if args := flagSet.Args(); len(args) > 0 {
		in = args[0]
	}
	var input []byte
	var err error
	if in == "-" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(in)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	v, err := bencode.Decode(input)
	if err != nil {
		return err
	}
	if validate {
		return nil
	}

	w := io.Writer(os.Stdout)
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch {
	case jsonOut:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonValue(v))
	case hexOut:
		if _, err := fmt.Fprintf(w, "%s\n", hex.EncodeToString(bencode.Encode(v))); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	default:
		if _, err := w.Write(bencode.Encode(v)); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	}
}

// jsonValue maps a value tree onto encoding/json-friendly types. Byte
// strings that are not valid UTF-8 are rendered as 0x-prefixed hex so
// binary payloads survive the trip into JSON text.
func jsonValue(v bencode.Value) any {
	switch v := v.(type) {
	case bencode.Integer:
		return int64(v)
	case bencode.String:
		if utf8.Valid(v) {
			return string(v)
		}
		return "0x" + hex.EncodeToString(v)
	case bencode.List:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = jsonValue(item)
		}
		return out
	case bencode.Dict:
		out := make(map[string]any, len(v))
		for k, item := range v {
			if !utf8.ValidString(k) {
				k = "0x" + hex.EncodeToString([]byte(k))
			}
			out[k] = jsonValue(item)
		}
		return out
	}
	return nil
}
