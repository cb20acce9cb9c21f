package calc

import "strconv"

// Reason is the cause of a ParseError.
type Reason int8

const (
	// ReasonEOF is an expression ending where an operand is needed.
	ReasonEOF Reason = iota + 1
	// ReasonUnexpected is a token that cannot start an operand.
	ReasonUnexpected
	// ReasonUnclosed is an open parenthesis without its close parenthesis.
	ReasonUnclosed
	// ReasonTrailing is a token left over after a complete expression.
	ReasonTrailing
	// ReasonLiteral is a number token whose text is not a number.
	ReasonLiteral
	// ReasonDepth is nesting deeper than the configured maximum.
	ReasonDepth
)

func (r Reason) String() string {
	switch r {
	case ReasonEOF:
		return "EOF"
	case ReasonUnexpected:
		return "Unexpected"
	case ReasonUnclosed:
		return "Unclosed"
	case ReasonTrailing:
		return "Trailing"
	case ReasonLiteral:
		return "Literal"
	case ReasonDepth:
		return "Depth"
	default:
		return "Reason(" + strconv.Itoa(int(r)) + ")"
	}
}

// ParseError is an error building an expression from its tokens. It
// implements InputError.
type ParseError struct {
	Reason Reason
	// Token is the offending token. It is the zero Token when the input ended.
	Token Token
	// Index is the index of Token in the token sequence, or the number of
	// tokens when the input ended. It is -1 for errors from FromText.
	Index int
	// Col is the column of the error.
	Col int
}

func (err *ParseError) Error() string {
	var msg string
	switch err.Reason {
	case ReasonEOF:
		msg = "unexpected end of input"
	case ReasonUnexpected:
		msg = "unexpected token " + strconv.Quote(err.Token.Text)
	case ReasonUnclosed:
		msg = "expected closing parenthesis"
		if err.Token.Kind != TokenNone {
			msg += ", found " + strconv.Quote(err.Token.Text)
		}
	case ReasonTrailing:
		msg = "unexpected " + strconv.Quote(err.Token.Text) + " after expression"
	case ReasonLiteral:
		msg = "invalid number " + strconv.Quote(err.Token.Text)
	case ReasonDepth:
		msg = "expression nested too deeply"
	default:
		msg = "parse error"
	}
	if err.Index >= 0 {
		msg += " (token " + strconv.Itoa(err.Index) + ")"
	}
	return errpos(err.Col, msg)
}

func (err *ParseError) Pos() int {
	return err.Col
}

// EvalError is an operator that parsed but has no evaluation. It implements
// InputError.
type EvalError struct {
	// Op is the operator text.
	Op string
	// Unary is whether the operator was in prefix position.
	Unary bool
	// Col is the position of the operator.
	Col int
}

func (err *EvalError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unsupported "+s+" operator "+strconv.Quote(err.Op))
}

func (err *EvalError) Pos() int {
	return err.Col
}

// LexError indicates an invalid token. Tokenize currently accepts every
// input, leaving malformed input for the parser to reject, so no function
// returns a LexError yet. It implements InputError.
type LexError struct {
	// Text is the invalid token.
	Text string
	// Col is the position of the token.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*ParseError)(nil)
	_ InputError = (*EvalError)(nil)
	_ InputError = (*LexError)(nil)
)
