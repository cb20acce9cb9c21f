package calc

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Token is a lexical token of an expression.
type Token struct {
	Kind TokenKind
	Text string
	// Pos is the 1-based rune column of the start of the token.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the lexical class of a token.
type TokenKind int8

const (
	// TokenNone is the kind of the zero Token.
	TokenNone TokenKind = iota
	// TokenNumber is a numeric literal or an identifier. Identifiers are
	// evaluated as literals, which is how pi and e become values.
	TokenNumber
	// TokenOperator is a binary operator.
	TokenOperator
	// TokenUnaryOperator is an operator in prefix position.
	TokenUnaryOperator
	// TokenParen is ( or ).
	TokenParen
	// TokenString is a quoted string. No expression accepts one.
	TokenString
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenUnaryOperator:
		return "UnaryOperator"
	case TokenParen:
		return "Parenthesis"
	case TokenString:
		return "String"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// unaryCandidates are the operator characters which are unary when they do
// not follow an operand.
const unaryCandidates = "+-*&="

// Tokenize splits src into tokens. It never fails: whitespace is dropped and
// every other rune becomes part of exactly one token. Full-width forms, as
// produced by some input methods, are read as their ASCII equivalents.
func Tokenize(src string) []Token {
	s := scanner{src: []rune(width.Narrow.String(src))}
	s.scan()
	classify(s.toks)
	return s.toks
}

type scanner struct {
	src  []rune
	i    int
	toks []Token
}

// at returns the rune k places after the current one, or 0 past the end.
func (s *scanner) at(k int) rune {
	if s.i+k >= len(s.src) {
		return 0
	}
	return s.src[s.i+k]
}

func (s *scanner) emit(kind TokenKind, start int) {
	s.toks = append(s.toks, Token{Kind: kind, Text: string(s.src[start:s.i]), Pos: start + 1})
}

func (s *scanner) scan() {
	for s.i < len(s.src) {
		start := s.i
		switch r := s.src[s.i]; {
		case unicode.IsSpace(r):
			s.i++
		case r == '"', r == '\'':
			s.scanString(r)
			s.emit(TokenString, start)
		case isDigit(r), r == '.' && isDigit(s.at(1)):
			s.scanNum()
			s.emit(TokenNumber, start)
		case r == '_', unicode.IsLetter(r):
			s.scanIdent()
			s.emit(TokenNumber, start)
		case r == '√' && isDigit(s.at(1)):
			s.i++
			for isDigit(s.at(0)) {
				s.i++
			}
			s.emit(TokenNumber, start)
		case r == '∞':
			s.i++
			s.emit(TokenNumber, start)
		case r == '(', r == ')':
			s.i++
			s.emit(TokenParen, start)
		default:
			s.scanOp()
			s.emit(TokenOperator, start)
		}
	}
}

// scanString scans a quoted string. Backslash escapes are kept as written. An
// unterminated string runs to the end of the input.
func (s *scanner) scanString(quote rune) {
	s.i++
	for s.i < len(s.src) {
		r := s.src[s.i]
		s.i++
		switch r {
		case '\\':
			s.i++
		case quote:
			return
		}
	}
	if s.i > len(s.src) {
		s.i = len(s.src)
	}
}

func (s *scanner) scanNum() {
	switch {
	case s.at(0) == '0' && (s.at(1) == 'x' || s.at(1) == 'X'):
		s.i += 2
		for isHexDigit(s.at(0)) {
			s.i++
		}
	case s.at(0) == '0' && (s.at(1) == 'b' || s.at(1) == 'B'):
		s.i += 2
		for r := s.at(0); r == '0' || r == '1'; r = s.at(0) {
			s.i++
		}
	default:
		var dot, exp bool
	loop:
		for {
			switch r := s.at(0); {
			case isDigit(r):
				s.i++
			case r == '.' && !dot && !exp:
				dot = true
				s.i++
			case (r == 'e' || r == 'E') && !exp && s.exponent():
				exp = true
				s.i++
				if r := s.at(0); r == '+' || r == '-' {
					s.i++
				}
			default:
				break loop
			}
		}
		if strings.ContainsRune("fFlL", s.at(0)) {
			s.i++
		}
	}
	for strings.ContainsRune("uUlL", s.at(0)) {
		s.i++
	}
}

// exponent reports whether the exponent marker at the current position is
// followed by exponent digits.
func (s *scanner) exponent() bool {
	r := s.at(1)
	if r == '+' || r == '-' {
		r = s.at(2)
	}
	return isDigit(r)
}

func (s *scanner) scanIdent() {
	s.i++
	for r := s.at(0); r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r); r = s.at(0) {
		s.i++
	}
}

// scanOp scans the longest operator in the multi-rune operator set, or else a
// single rune.
func (s *scanner) scanOp() {
	for n := maxOpLen; n >= 2; n-- {
		if s.i+n > len(s.src) {
			continue
		}
		if multiOps[string(s.src[s.i:s.i+n])] {
			s.i += n
			return
		}
	}
	s.i++
}

// classify marks operators in prefix position as unary. An operator is in
// infix position when it follows a number or a close parenthesis.
func classify(toks []Token) {
	for i := range toks {
		t := &toks[i]
		if t.Kind != TokenOperator || len(t.Text) != 1 || !strings.Contains(unaryCandidates, t.Text) {
			continue
		}
		if i > 0 {
			if p := toks[i-1]; p.Kind == TokenNumber || p.Kind == TokenParen && p.Text == ")" {
				continue
			}
		}
		t.Kind = TokenUnaryOperator
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}
