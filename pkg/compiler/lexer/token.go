package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindNone Kind = iota // unrecognized or uninitialized

	// Punctuation
	KindLParen // (
	KindRParen // )
	KindLBrace // {
	KindRBrace // }
	KindColon  // :
	KindSemi   // ;
	KindComma  // ,

	// Comparison and assignment
	KindEqual    // =
	KindEqualTo  // ==
	KindNotEqual // !=
	KindNot      // !
	KindLArrow   // <
	KindLArrowEq // <=
	KindRArrow   // >
	KindRArrowEq // >=

	// Arithmetic
	KindPlus   // +
	KindInc    // ++ or +=
	KindMinus  // -
	KindDec    // -- or -=
	KindMult   // *
	KindBitAnd // &

	// Arrows
	KindArrow      // ->
	KindEqualArrow // =>

	// Keywords
	KindDef
	KindLet
	KindWhile
	KindFor
	KindIf
	KindElif
	KindElse
	KindMatch
	KindReturn

	// Literals
	KindIntConst
	KindFloatConst // reserved, never produced by the scanner

	// Sized type annotations (e.g. 32I)
	KindUint0
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat64

	KindIdentifier

	kindCount
)

var kindNames = [kindCount]string{
	KindNone:       "TOKEN_NONE",
	KindLParen:     "TOKEN_LPAREN",
	KindRParen:     "TOKEN_RPAREN",
	KindLBrace:     "TOKEN_LBRACE",
	KindRBrace:     "TOKEN_RBRACE",
	KindColon:      "TOKEN_COLON",
	KindSemi:       "TOKEN_SEMI",
	KindComma:      "TOKEN_COMMA",
	KindEqual:      "TOKEN_EQUAL",
	KindEqualTo:    "TOKEN_EQUAL_TO",
	KindNotEqual:   "TOKEN_NOT_EQUAL",
	KindNot:        "TOKEN_NOT",
	KindLArrow:     "TOKEN_LARROW",
	KindLArrowEq:   "TOKEN_LARROW_EQ",
	KindRArrow:     "TOKEN_RARROW",
	KindRArrowEq:   "TOKEN_RARROW_EQ",
	KindPlus:       "TOKEN_PLUS",
	KindInc:        "TOKEN_INC",
	KindMinus:      "TOKEN_MINUS",
	KindDec:        "TOKEN_DEC",
	KindMult:       "TOKEN_MULT",
	KindBitAnd:     "TOKEN_BITAND",
	KindArrow:      "TOKEN_ARROW",
	KindEqualArrow: "TOKEN_EQUAL_ARROW",
	KindDef:        "TOKEN_DEF",
	KindLet:        "TOKEN_LET",
	KindWhile:      "TOKEN_WHILE",
	KindFor:        "TOKEN_FOR",
	KindIf:         "TOKEN_IF",
	KindElif:       "TOKEN_ELIF",
	KindElse:       "TOKEN_ELSE",
	KindMatch:      "TOKEN_MATCH",
	KindReturn:     "TOKEN_RETURN",
	KindIntConst:   "TOKEN_INTCONST",
	KindFloatConst: "TOKEN_FLOATCONST",
	KindUint0:      "TOKEN_UINT0",
	KindInt8:       "TOKEN_INT8",
	KindUint8:      "TOKEN_UINT8",
	KindInt16:      "TOKEN_INT16",
	KindUint16:     "TOKEN_UINT16",
	KindInt32:      "TOKEN_INT32",
	KindUint32:     "TOKEN_UINT32",
	KindInt64:      "TOKEN_INT64",
	KindUint64:     "TOKEN_UINT64",
	KindFloat64:    "TOKEN_FLOAT64",
	KindIdentifier: "TOKEN_ID",
}

// String returns the diagnostic name of the kind. Values outside the
// enumeration render as TOKEN_NONE.
func (k Kind) String() string {
	if k >= kindCount {
		return kindNames[KindNone]
	}
	return kindNames[k]
}

// KindName is the function form of Kind.String.
func KindName(k Kind) string {
	return k.String()
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= KindDef && k <= KindReturn
}

// IsSizedType reports whether k is a sized numeric type annotation.
func (k Kind) IsSizedType() bool {
	return k >= KindUint0 && k <= KindFloat64
}

type entry struct {
	text string
	kind Kind
}

var keywords = [...]entry{
	{"def", KindDef},
	{"while", KindWhile},
	{"for", KindFor},
	{"let", KindLet},
	{"return", KindReturn},
	{"if", KindIf},
	{"elif", KindElif},
	{"else", KindElse},
	{"match", KindMatch},
}

var suffixes = [...]entry{
	{"0U", KindUint0},
	{"64I", KindInt64},
	{"64U", KindUint64},
	{"32I", KindInt32},
	{"32U", KindUint32},
	{"16I", KindInt16},
	{"16U", KindUint16},
	{"8I", KindInt8},
	{"8U", KindUint8},
	{"64F", KindFloat64},
}

// LookupKeyword returns the keyword kind for word. The match is exact and
// case-sensitive.
func LookupKeyword(word string) (Kind, bool) {
	return lookup(keywords[:], word)
}

// LookupSuffix returns the sized type kind for a numeral-plus-suffix text
// such as "32I".
func LookupSuffix(text string) (Kind, bool) {
	return lookup(suffixes[:], text)
}

// Keywords returns the reserved words in table order.
func Keywords() []string {
	out := make([]string, len(keywords))
	for i, e := range keywords {
		out[i] = e.text
	}
	return out
}

func lookup(table []entry, text string) (Kind, bool) {
	for _, e := range table {
		if e.text == text {
			return e.kind, true
		}
	}
	return KindNone, false
}

// Token is one classified lexeme. Offset is the byte position of the lexeme
// in the source and Line a best-effort line number starting at 1.
type Token struct {
	Kind   Kind
	Lexeme string
	Offset int
	Line   int
}
