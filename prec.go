package calc

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// precedence gives the binding power of each binary operator. Higher binds
// tighter. Many of these parse but have no evaluation.
var precedence = map[string]int{
	"++": 15, "--": 15,
	"*": 14, "/": 14, "%": 14,
	"+": 13, "-": 13,
	"<<": 12, ">>": 12,
	"<": 11, ">": 11, "<=": 11, ">=": 11,
	"==": 10, "!=": 10,
	"&":  9,
	"^":  8,
	"|":  7,
	"&&": 6,
	"||": 5,
	"?": 4, ":": 4,
	"=": 3, "+=": 3, "-=": 3, "*=": 3, "/=": 3, "%=": 3,
	"<<=": 3, ">>=": 3, "&=": 3, "^=": 3, "|=": 3,
	",": 2,
}

// unaryPrec is the precedence of every unary operator, above all binary ones.
const unaryPrec = 16

// multiOps is the set of operators longer than one rune that the lexer
// matches greedily.
var multiOps = map[string]bool{
	"<<=": true, ">>=": true,
	"==": true, "!=": true, "<=": true, ">=": true,
	"&&": true, "||": true, "->": true,
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true,
	"<<": true, ">>": true,
}

// maxOpLen is the length of the longest entry in multiOps.
const maxOpLen = 3

// Precedence returns the binding power of a token in operator position.
// Parentheses and anything which is not an operator have precedence 0, which
// ends an expression.
func Precedence(tok Token) int {
	switch tok.Kind {
	case TokenUnaryOperator:
		return unaryPrec
	case TokenOperator:
		return precedence[tok.Text]
	default:
		return 0
	}
}

// OperatorInfo describes an operator known to the parser.
type OperatorInfo struct {
	Text  string
	Prec  int
	Unary bool
	// Eval is whether expressions using the operator can be evaluated.
	// Others are parsed, then rejected with an *EvalError.
	Eval bool
}

// Operators lists the operators the parser knows, most binding first. Within
// a precedence level, operators are in lexical order.
func Operators() []OperatorInfo {
	un := []string{"+", "-", "*", "&", "="}
	slices.Sort(un)
	r := make([]OperatorInfo, 0, len(un)+len(precedence))
	for _, op := range un {
		r = append(r, OperatorInfo{Text: op, Prec: unaryPrec, Unary: true, Eval: unarySupported(op)})
	}
	ops := maps.Keys(precedence)
	slices.Sort(ops)
	for p := unaryPrec - 1; p > 0; p-- {
		for _, op := range ops {
			if precedence[op] == p {
				r = append(r, OperatorInfo{Text: op, Prec: p, Eval: binarySupported(op)})
			}
		}
	}
	return r
}
