package calc

// eval computes the node's value, left operands first.
func (n *node) eval() (Number, error) {
	switch n.kind {
	case nodeLit:
		return n.val, nil
	case nodeUnary:
		v, err := n.left.eval()
		if err != nil {
			return Number{}, err
		}
		switch n.op {
		case "-":
			return v.Neg(), nil
		case "+":
			return v, nil
		}
		return Number{}, &EvalError{Op: n.op, Unary: true, Col: n.pos}
	case nodeBinary:
		l, err := n.left.eval()
		if err != nil {
			return Number{}, err
		}
		r, err := n.right.eval()
		if err != nil {
			return Number{}, err
		}
		if v, ok := binary(n.op, l, r); ok {
			return v, nil
		}
		return Number{}, &EvalError{Op: n.op, Col: n.pos}
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
}

// binary applies a binary operator. The assignment operators overwrite the
// evaluated left operand and yield its new value. Both sides of && and || are
// always evaluated.
func binary(op string, l, r Number) (Number, bool) {
	switch op {
	case "=":
		l = r
		return l, true
	case "+=":
		l = l.Add(r)
		return l, true
	case "-=":
		l = l.Sub(r)
		return l, true
	case "*=":
		l = l.Mul(r)
		return l, true
	case "/=":
		l = l.Quo(r)
		return l, true
	case "+":
		return l.Add(r), true
	case "-":
		return l.Sub(r), true
	case "*":
		return l.Mul(r), true
	case "/":
		return l.Quo(r), true
	case "&&":
		return Bool(l.Truthy() && r.Truthy()), true
	case "||":
		return Bool(l.Truthy() || r.Truthy()), true
	case "==":
		return Bool(l.Equal(r)), true
	case "!=":
		return Bool(!l.Equal(r)), true
	case "<":
		return Bool(l.Less(r)), true
	case "<=":
		return Bool(l.LessEq(r)), true
	case ">":
		return Bool(l.Greater(r)), true
	case ">=":
		return Bool(l.GreaterEq(r)), true
	default:
		return Number{}, false
	}
}

func binarySupported(op string) bool {
	_, ok := binary(op, Number{}, Number{})
	return ok
}

func unarySupported(op string) bool {
	return op == "-" || op == "+"
}
