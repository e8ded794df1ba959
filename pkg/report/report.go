// Package report renders scanned token streams.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/agenthands/suco/pkg/compiler/lexer"
)

var (
	ErrUnknownFormat = errors.New("report: unknown format")
)

// Format selects how tokens are rendered.
type Format uint8

const (
	FormatText Format = iota // one "name: <...>\ttype: <...>" line per token
	FormatJSON
	FormatDump // go-spew dump, for debugging
)

var formatNames = map[string]Format{
	"text": FormatText,
	"json": FormatJSON,
	"dump": FormatDump,
}

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	f, ok := formatNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

func (f Format) String() string {
	for name, v := range formatNames {
		if v == f {
			return name
		}
	}
	return "unknown"
}

// Options tune the text format.
type Options struct {
	// Suggest appends a keyword hint to identifiers that look like typos.
	Suggest bool
}

type jsonToken struct {
	Lexeme string `json:"lexeme"`
	Kind   string `json:"kind"`
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
}

var dumper = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}

// Write renders toks to w in format f.
func Write(w io.Writer, f Format, toks []lexer.Token, opts Options) error {
	switch f {
	case FormatText:
		return writeText(w, toks, opts)
	case FormatJSON:
		out := make([]jsonToken, len(toks))
		for i, t := range toks {
			out[i] = jsonToken{Lexeme: t.Lexeme, Kind: t.Kind.String(), Offset: t.Offset, Line: t.Line}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("report: json encode: %w", err)
		}
		return nil
	case FormatDump:
		dumper.Fdump(w, toks)
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownFormat, f)
}

func writeText(w io.Writer, toks []lexer.Token, opts Options) error {
	for _, t := range toks {
		var err error
		if hint, ok := suggestion(t, opts); ok {
			_, err = fmt.Fprintf(w, "name: <%s>\ttype: <%s>\thint: <%s>\n", t.Lexeme, t.Kind, hint)
		} else {
			_, err = fmt.Fprintf(w, "name: <%s>\ttype: <%s>\n", t.Lexeme, t.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func suggestion(t lexer.Token, opts Options) (string, bool) {
	if !opts.Suggest || t.Kind != lexer.KindIdentifier {
		return "", false
	}
	return lexer.SuggestKeyword(t.Lexeme)
}
