package calc

import "unicode/utf8"

// Expr = Unary | Binary | num | '(' Expr ')'
// Unary = uop Expr      (uop binds tighter than any binary operator)
// Binary = Expr op Expr (left-associative within a precedence level)

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression. The only option used is MaxDepth.
func Parse(src string, opts ...Option) (*Expr, error) {
	cfg := newConfig(opts)
	return parseTokens(Tokenize(src), cfg.depth)
}

// parseTokens parses a complete token sequence. If max is positive, it limits
// the nesting of parentheses and unary operators.
func parseTokens(toks []Token, max int) (*Expr, error) {
	p := parser{toks: toks, max: max}
	n, err := p.expr(1)
	if err != nil {
		return nil, err
	}
	if p.i < len(p.toks) {
		return nil, p.error(ReasonTrailing, p.i)
	}
	return &Expr{n: n}, nil
}

type parser struct {
	toks []Token
	// i is the index of the next token.
	i int
	// depth is the current nesting depth and max is its limit.
	depth, max int
}

// expr parses an expression containing only operators at least as binding as
// min. A unary operator's operand binds tighter than the operator itself, and
// so does the right side of a binary operator, which makes operators at the
// same level left-associative.
func (p *parser) expr(min int) (*node, error) {
	if min == 0 {
		min = 1
	}
	if p.i >= len(p.toks) {
		return nil, p.error(ReasonEOF, p.i)
	}
	var lhs *node
	if tok := p.toks[p.i]; tok.Kind == TokenUnaryOperator {
		p.i++
		if err := p.push(); err != nil {
			return nil, err
		}
		rhs, err := p.expr(Precedence(tok) + 1)
		if err != nil {
			return nil, err
		}
		p.pop()
		lhs = &node{kind: nodeUnary, op: tok.Text, pos: tok.Pos, left: rhs}
	} else {
		n, err := p.primary()
		if err != nil {
			return nil, err
		}
		lhs = n
	}
	for p.i < len(p.toks) {
		tok := p.toks[p.i]
		prec := Precedence(tok)
		if prec < min {
			break
		}
		p.i++
		rhs, err := p.expr(prec + 1)
		if err != nil {
			return nil, err
		}
		lhs = &node{kind: nodeBinary, op: tok.Text, pos: tok.Pos, left: lhs, right: rhs}
	}
	return lhs, nil
}

// primary parses a literal or a parenthesized expression.
func (p *parser) primary() (*node, error) {
	if p.i >= len(p.toks) {
		return nil, p.error(ReasonEOF, p.i)
	}
	tok := p.toks[p.i]
	p.i++
	switch {
	case tok.Kind == TokenNumber:
		v, err := FromText(tok.Text)
		if err != nil {
			return nil, p.error(ReasonLiteral, p.i-1)
		}
		return &node{kind: nodeLit, text: tok.Text, val: v, pos: tok.Pos}, nil
	case tok.Kind == TokenParen && tok.Text == "(":
		if err := p.push(); err != nil {
			return nil, err
		}
		n, err := p.expr(1)
		if err != nil {
			return nil, err
		}
		if p.i >= len(p.toks) || p.toks[p.i].Kind != TokenParen || p.toks[p.i].Text != ")" {
			return nil, p.error(ReasonUnclosed, p.i)
		}
		p.i++
		p.pop()
		return n, nil
	default:
		return nil, p.error(ReasonUnexpected, p.i-1)
	}
}

// push enters a nesting level.
func (p *parser) push() error {
	p.depth++
	if p.max > 0 && p.depth > p.max {
		return p.error(ReasonDepth, p.i-1)
	}
	return nil
}

// pop leaves a nesting level.
func (p *parser) pop() {
	p.depth--
}

// error creates an error for the token at index k, which may be the end of
// the input.
func (p *parser) error(r Reason, k int) *ParseError {
	err := &ParseError{Reason: r, Index: k}
	if k < len(p.toks) {
		err.Token = p.toks[k]
		err.Col = err.Token.Pos
		return err
	}
	// Point just past the last token.
	err.Col = 1
	if len(p.toks) != 0 {
		last := p.toks[len(p.toks)-1]
		err.Col = last.Pos + utf8.RuneCountInString(last.Text)
	}
	return err
}

// Eval evaluates the expression.
func (e *Expr) Eval() (Number, error) {
	return e.n.eval()
}

// String creates a string representation of the parsed expression with
// every term in parentheses.
func (e *Expr) String() string {
	return e.n.String()
}
