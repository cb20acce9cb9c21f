package calc

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	num := func(text string, pos int) Token { return Token{Kind: TokenNumber, Text: text, Pos: pos} }
	op := func(text string, pos int) Token { return Token{Kind: TokenOperator, Text: text, Pos: pos} }
	un := func(text string, pos int) Token { return Token{Kind: TokenUnaryOperator, Text: text, Pos: pos} }
	paren := func(text string, pos int) Token { return Token{Kind: TokenParen, Text: text, Pos: pos} }
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		// spaces
		{"empty", "", nil},
		{"spaces", " \t \r\n ", nil},
		// numbers
		{"zero", "0", []Token{num("0", 1)}},
		{"digits", "9876543210", []Token{num("9876543210", 1)}},
		{"two", "1 0", []Token{num("1", 1), num("0", 3)}},
		{"decimal", "1.0", []Token{num("1.0", 1)}},
		{"leadingdot", ".5", []Token{num(".5", 1)}},
		{"exp", "1e5", []Token{num("1e5", 1)}},
		{"exp+", "1e+5", []Token{num("1e+5", 1)}},
		{"exp-", "1E-5", []Token{num("1E-5", 1)}},
		{"dotexp", "1.5e3", []Token{num("1.5e3", 1)}},
		{"noexp", "2e", []Token{num("2", 1), num("e", 2)}},
		{"twodots", "1.2.3", []Token{num("1.2", 1), num(".3", 4)}},
		{"floatsuffix", "1.5f", []Token{num("1.5f", 1)}},
		{"intsuffix", "10ul", []Token{num("10ul", 1)}},
		{"longdouble", "2.5L", []Token{num("2.5L", 1)}},
		{"hex", "0x1A", []Token{num("0x1A", 1)}},
		{"hexsuffix", "0XffU", []Token{num("0XffU", 1)}},
		{"binary", "0b101", []Token{num("0b101", 1)}},
		{"binarystop", "0b102", []Token{num("0b10", 1), num("2", 5)}},
		// identifiers and constants
		{"pi", "pi", []Token{num("pi", 1)}},
		{"π", "π", []Token{num("π", 1)}},
		{"ident", "_x1", []Token{num("_x1", 1)}},
		{"√2", "√2", []Token{num("√2", 1)}},
		{"∞", "∞", []Token{num("∞", 1)}},
		{"√", "√", []Token{op("√", 1)}},
		{"numident", "1a", []Token{num("1", 1), num("a", 2)}},
		// operators
		{"sub", "3-4", []Token{num("3", 1), op("-", 2), num("4", 3)}},
		{"neg", "-1", []Token{un("-", 1), num("1", 2)}},
		{"subneg", "3--4", []Token{num("3", 1), op("-", 2), un("-", 3), num("4", 4)}},
		{"negneg", "--3", []Token{un("-", 1), un("-", 2), num("3", 3)}},
		{"addplus", "1++2", []Token{num("1", 1), op("+", 2), un("+", 3), num("2", 4)}},
		{"parenneg", "(-3)", []Token{paren("(", 1), un("-", 2), num("3", 3), paren(")", 4)}},
		{"closesub", "(1)-3", []Token{paren("(", 1), num("1", 2), paren(")", 3), op("-", 4), num("3", 5)}},
		{"le", "a<=b", []Token{num("a", 1), op("<=", 2), num("b", 4)}},
		{"shiftassign", "1<<=2", []Token{num("1", 1), op("<<=", 2), num("2", 5)}},
		{"shift", "1<<2", []Token{num("1", 1), op("<<", 2), num("2", 4)}},
		{"arrow", "x->y", []Token{num("x", 1), op("->", 2), num("y", 4)}},
		{"addassign", "1+=2", []Token{num("1", 1), op("+=", 2), num("2", 4)}},
		{"and", "1&&0", []Token{num("1", 1), op("&&", 2), num("0", 4)}},
		{"addr", "&x", []Token{un("&", 1), num("x", 2)}},
		{"deref", "*x", []Token{un("*", 1), num("x", 2)}},
		{"mod", "%x", []Token{op("%", 1), num("x", 2)}},
		{"unknown", "$", []Token{op("$", 1)}},
		// strings
		{"string", `"a\"b" + 1`, []Token{{Kind: TokenString, Text: `"a\"b"`, Pos: 1}, un("+", 8), num("1", 10)}},
		{"unterminated", "'abc", []Token{{Kind: TokenString, Text: "'abc", Pos: 1}}},
		{"trailingescape", `"a\`, []Token{{Kind: TokenString, Text: `"a\`, Pos: 1}}},
		// full-width input
		{"fullwidth", "１＋２", []Token{num("1", 1), op("+", 2), num("2", 3)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Tokenize(c.src)
			if !reflect.DeepEqual(got, c.tokens) {
				t.Errorf("scanning %q:\n\twant %v\n\tgot  %v", c.src, c.tokens, got)
			}
		})
	}
}

func TestTokenizeFresh(t *testing.T) {
	a := Tokenize("1 + 2")
	b := Tokenize("1 + 2")
	a[0].Text = "9"
	if b[0].Text != "1" {
		t.Errorf("token streams share storage: %v", b)
	}
}
