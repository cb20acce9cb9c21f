package calc

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Each node
// exclusively owns its children.
type node struct {
	kind nodeKind

	// op is the operator of a unary or binary node.
	op string
	// text is the source text of a literal.
	text string
	val  Number
	// pos is the column of the literal or operator.
	pos int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeLit    // val
	nodeUnary  // evaluate left, apply op
	nodeBinary // evaluate left, evaluate right, apply op
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeLit:
		return "Lit"
	case nodeUnary:
		return "Unary"
	case nodeBinary:
		return "Binary"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes n fully parenthesized, so that the output parses to the same
// tree.
func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeLit:
		b.WriteString(n.text)
	case nodeUnary:
		b.WriteString(n.op)
		n.left.fmt(b)
	case nodeBinary:
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.op)
		b.WriteByte(' ')
		n.right.fmt(b)
	default:
		panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
