package lexer

import (
	"errors"
	"fmt"
	"log"
)

var (
	ErrNilSource = errors.New("lexer: nil source")
)

// Diagnostic reports a byte that no scanning rule accepts. The scanner skips
// the byte and continues.
type Diagnostic struct {
	Char   byte
	Offset int
	Line   int
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("lexer: unexpected character %q at offset %d (line %d)", d.Char, d.Offset, d.Line)
}

// Scanner performs lexical analysis on suco source. The source is borrowed
// and must not be modified while the scanner is in use. A zero byte, or the
// end of the slice, terminates the input.
type Scanner struct {
	source []byte
	cursor int
	line   int

	tokens []Token
	diags  []Diagnostic
	done   bool

	logger *log.Logger
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) (*Scanner, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	return &Scanner{
		source: source,
		line:   1,
	}, nil
}

// Tokenize scans source in one call. The returned error, if any, joins the
// diagnostics of the scan; the tokens are still valid in that case.
func Tokenize(source []byte) ([]Token, error) {
	s, err := NewScanner(source)
	if err != nil {
		return nil, err
	}
	toks := s.Run()
	return toks, s.Err()
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
	s.line = 1
	s.tokens = nil
	s.diags = nil
	s.done = false
}

// SetLogger makes the scanner log every diagnostic as it is reported.
func (s *Scanner) SetLogger(l *log.Logger) {
	s.logger = l
}

// Run scans the whole source and returns the tokens in source order. Later
// calls return the same tokens without scanning again.
func (s *Scanner) Run() []Token {
	if s.done {
		return s.tokens
	}
	for {
		s.skipWhitespace()
		ch := s.current()
		if ch == 0 {
			break
		}

		switch {
		case isAlpha(ch):
			s.scanIdentifier()
		case isDigit(ch):
			s.scanNumber()
		default:
			s.scanSymbol()
		}
	}
	s.done = true
	return s.tokens
}

// Diagnostics returns the unexpected characters met by Run.
func (s *Scanner) Diagnostics() []Diagnostic {
	return s.diags
}

// Err joins the diagnostics into a single error, or returns nil.
func (s *Scanner) Err() error {
	if len(s.diags) == 0 {
		return nil
	}
	errs := make([]error, len(s.diags))
	for i, d := range s.diags {
		errs[i] = d
	}
	return errors.Join(errs...)
}

func (s *Scanner) skipWhitespace() {
	for {
		switch s.current() {
		case ' ', '\t', '\r':
			s.cursor++
		case '\n':
			s.line++
			s.cursor++
		default:
			return
		}
	}
}

func (s *Scanner) scanIdentifier() {
	start := s.cursor
	for isAlpha(s.current()) {
		s.cursor++
	}

	literal := string(s.source[start:s.cursor])
	kind, ok := LookupKeyword(literal)
	if !ok {
		kind = KindIdentifier
	}
	s.emit(kind, literal, start)
}

// scanNumber consumes a digit run. A single trailing letter is taken along
// only when digits plus letter form a sized type such as 32I.
func (s *Scanner) scanNumber() {
	start := s.cursor
	for isDigit(s.current()) {
		s.cursor++
	}

	if isAlpha(s.current()) {
		candidate := string(s.source[start : s.cursor+1])
		if kind, ok := LookupSuffix(candidate); ok {
			s.cursor++
			s.emit(kind, candidate, start)
			return
		}
	}
	s.emit(KindIntConst, string(s.source[start:s.cursor]), start)
}

func (s *Scanner) scanSymbol() {
	ch := s.current()
	next := s.peek()

	switch ch {
	case '(':
		s.symbol(KindLParen, 1)
	case ')':
		s.symbol(KindRParen, 1)
	case '{':
		s.symbol(KindLBrace, 1)
	case '}':
		s.symbol(KindRBrace, 1)
	case ';':
		s.symbol(KindSemi, 1)
	case ':':
		s.symbol(KindColon, 1)
	case ',':
		s.symbol(KindComma, 1)
	case '*':
		s.symbol(KindMult, 1)
	case '&':
		s.symbol(KindBitAnd, 1)
	case '=':
		switch next {
		case '=':
			s.symbol(KindEqualTo, 2)
		case '>':
			s.symbol(KindEqualArrow, 2)
		default:
			s.symbol(KindEqual, 1)
		}
	case '<':
		if next == '=' {
			s.symbol(KindLArrowEq, 2)
		} else {
			s.symbol(KindLArrow, 1)
		}
	case '>':
		if next == '=' {
			s.symbol(KindRArrowEq, 2)
		} else {
			s.symbol(KindRArrow, 1)
		}
	case '!':
		if next == '=' {
			s.symbol(KindNotEqual, 2)
		} else {
			s.symbol(KindNot, 1)
		}
	case '+':
		switch next {
		case '=', '+':
			s.symbol(KindInc, 2)
		default:
			s.symbol(KindPlus, 1)
		}
	case '-':
		switch next {
		case '>':
			s.symbol(KindArrow, 2)
		case '-', '=':
			s.symbol(KindDec, 2)
		default:
			s.symbol(KindMinus, 1)
		}
	default:
		s.report(ch)
		s.cursor++
	}
}

// symbol emits the n-byte operator at the cursor and advances past it.
func (s *Scanner) symbol(kind Kind, n int) {
	start := s.cursor
	s.cursor += n
	s.emit(kind, string(s.source[start:s.cursor]), start)
}

func (s *Scanner) emit(kind Kind, lexeme string, offset int) {
	s.tokens = append(s.tokens, Token{Kind: kind, Lexeme: lexeme, Offset: offset, Line: s.line})
}

func (s *Scanner) report(ch byte) {
	d := Diagnostic{Char: ch, Offset: s.cursor, Line: s.line}
	s.diags = append(s.diags, d)
	if s.logger != nil {
		s.logger.Print(d.Error())
	}
}

// current returns the byte at the cursor, or 0 at the end of the source.
func (s *Scanner) current() byte {
	if s.cursor >= len(s.source) {
		return 0
	}
	return s.source[s.cursor]
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
