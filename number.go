package calc

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Tag identifies the symbolic constant that a Number's irrational
// coefficient multiplies.
type Tag int8

const (
	// TagNone marks a pure rational.
	TagNone Tag = iota
	TagPi
	TagE
	TagSqrt2
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return ""
	case TagPi:
		return "π"
	case TagE:
		return "e"
	case TagSqrt2:
		return "√2"
	default:
		return "Tag(" + strconv.Itoa(int(t)) + ")"
	}
}

// value is the float64 approximation of the tagged constant.
func (t Tag) value() float64 {
	switch t {
	case TagPi:
		return math.Pi
	case TagE:
		return math.E
	case TagSqrt2:
		return math.Sqrt2
	default:
		return 0
	}
}

// Number is an exact rational plus a rational multiple of one symbolic
// constant. The zero value is 0.
//
// Numbers are values: no method modifies its receiver or its arguments, and
// the *big.Rat parts are never shared with callers.
type Number struct {
	rat  *big.Rat
	coef *big.Rat
	tag  Tag
	// nf holds the value of a Number that is not finite, i.e. an infinity or
	// NaN produced by the float64 fallback. It is zero for all finite Numbers.
	nf float64
}

// zero is the value of a nil rational part. Never modify it.
var zero = new(big.Rat)

func orZero(x *big.Rat) *big.Rat {
	if x == nil {
		return zero
	}
	return x
}

// mk builds a finite Number, dropping the coefficient of a pure rational so
// that TagNone always implies a zero coefficient.
func mk(rat, coef *big.Rat, tag Tag) Number {
	if tag == TagNone {
		coef = nil
	}
	return Number{rat: rat, coef: coef, tag: tag}
}

// FromInt creates a Number with an integer value.
func FromInt(x int64) Number {
	return Number{rat: new(big.Rat).SetInt64(x)}
}

// FromRat creates a pure rational Number with a copy of x.
func FromRat(x *big.Rat) Number {
	return Number{rat: new(big.Rat).Set(x)}
}

// FromFloat creates a pure rational Number holding the exact binary value of
// x. Infinities and NaN produce Numbers that are not finite.
func FromFloat(x float64) Number {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return Number{nf: x}
	}
	return Number{rat: new(big.Rat).SetFloat64(x)}
}

// Irrational creates the Number coef×tag. With TagNone, the result is 0.
func Irrational(coef *big.Rat, tag Tag) Number {
	return mk(nil, new(big.Rat).Set(coef), tag)
}

// Pi returns π.
func Pi() Number { return mk(nil, big.NewRat(1, 1), TagPi) }

// E returns e.
func E() Number { return mk(nil, big.NewRat(1, 1), TagE) }

// Sqrt2 returns √2.
func Sqrt2() Number { return mk(nil, big.NewRat(1, 1), TagSqrt2) }

// Bool returns 1 if b is true and 0 otherwise.
func Bool(b bool) Number {
	if b {
		return FromInt(1)
	}
	return FromInt(0)
}

// FromText parses a number literal. Constant names must match the whole
// text: pi or π, e, sqrt2, sqrt(2), or √2, and inf, Inf, or ∞ for positive
// infinity. Otherwise, C-style integer and float suffixes are removed, then
// the text is parsed as an exact rational, which may be a decimal with an
// exponent or use a 0x, 0b, or 0o prefix. If that fails, the text is parsed
// as a float64. Text that is neither produces a *ParseError.
func FromText(s string) (Number, error) {
	switch s {
	case "pi", "π":
		return Pi(), nil
	case "e":
		return E(), nil
	case "sqrt2", "sqrt(2)", "√2":
		return Sqrt2(), nil
	case "inf", "Inf", "∞":
		return Number{nf: math.Inf(1)}, nil
	}
	body := trimSuffixes(s)
	if body != "" && strings.ContainsRune("+-.0123456789", rune(body[0])) {
		if r, ok := new(big.Rat).SetString(body); ok {
			return Number{rat: r}, nil
		}
		f, err := strconv.ParseFloat(body, 64)
		if err == nil || err.(*strconv.NumError).Err == strconv.ErrRange {
			return FromFloat(f), nil
		}
	}
	return Number{}, &ParseError{Reason: ReasonLiteral, Token: Token{Kind: TokenNumber, Text: s}, Index: -1}
}

// trimSuffixes removes trailing integer suffixes and, for literals which are
// not hexadecimal, one float suffix.
func trimSuffixes(s string) string {
	s = strings.TrimRight(s, "uUlL")
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s
	}
	return strings.TrimRight(s, "fF")
}

// Rat returns a copy of the rational part of n. If n is not finite, the
// result is 0.
func (n Number) Rat() *big.Rat {
	return new(big.Rat).Set(orZero(n.rat))
}

// Coef returns a copy of the coefficient of n's symbolic constant.
func (n Number) Coef() *big.Rat {
	return new(big.Rat).Set(orZero(n.coef))
}

// Tag returns the symbolic constant of n.
func (n Number) Tag() Tag {
	return n.tag
}

// IsFinite reports whether n is neither an infinity nor NaN.
func (n Number) IsFinite() bool {
	return n.nf == 0
}

// IsPureRational reports whether n has no irrational component.
func (n Number) IsPureRational() bool {
	return n.IsFinite() && (n.tag == TagNone || orZero(n.coef).Sign() == 0)
}

// combine implements addition and subtraction. Matching tags and pairs of
// pure rationals combine exactly; anything else goes through float64.
func (n Number) combine(m Number, op func(z, x, y *big.Rat) *big.Rat, fop func(x, y float64) float64) Number {
	switch {
	case !n.IsFinite() || !m.IsFinite():
		// Fall back to floats below.
	case n.tag == m.tag:
		rat := op(new(big.Rat), orZero(n.rat), orZero(m.rat))
		coef := op(new(big.Rat), orZero(n.coef), orZero(m.coef))
		return mk(rat, coef, n.tag)
	case n.IsPureRational() && m.IsPureRational():
		return Number{rat: op(new(big.Rat), orZero(n.rat), orZero(m.rat))}
	}
	return FromFloat(fop(n.Approx(), m.Approx()))
}

// Add returns n + m.
func (n Number) Add(m Number) Number {
	return n.combine(m, (*big.Rat).Add, func(x, y float64) float64 { return x + y })
}

// Sub returns n - m.
func (n Number) Sub(m Number) Number {
	return n.combine(m, (*big.Rat).Sub, func(x, y float64) float64 { return x - y })
}

// Mul returns n × m. Products are always computed from the float64
// approximations of the operands.
func (n Number) Mul(m Number) Number {
	return FromFloat(n.Approx() * m.Approx())
}

// Quo returns n ÷ m. Quotients are always computed from the float64
// approximations of the operands, so division by zero gives an infinity or
// NaN rather than an error.
func (n Number) Quo(m Number) Number {
	return FromFloat(n.Approx() / m.Approx())
}

// Neg returns -n.
func (n Number) Neg() Number {
	if !n.IsFinite() {
		return Number{nf: -n.nf}
	}
	return mk(new(big.Rat).Neg(orZero(n.rat)), new(big.Rat).Neg(orZero(n.coef)), n.tag)
}

// Approx returns the float64 approximation of n.
func (n Number) Approx() float64 {
	if !n.IsFinite() {
		return n.nf
	}
	r, _ := orZero(n.rat).Float64()
	c, _ := orZero(n.coef).Float64()
	return r + n.tag.value()*c
}

// Equal reports whether n and m have identical tags, rational parts, and
// coefficients. It is not numeric equality: π and its float64 approximation
// are not Equal.
func (n Number) Equal(m Number) bool {
	if !n.IsFinite() || !m.IsFinite() {
		return n.nf == m.nf
	}
	return n.tag == m.tag &&
		orZero(n.rat).Cmp(orZero(m.rat)) == 0 &&
		orZero(n.coef).Cmp(orZero(m.coef)) == 0
}

// Less reports whether n < m, comparing approximations.
func (n Number) Less(m Number) bool { return n.Approx() < m.Approx() }

// LessEq reports whether n <= m, comparing approximations.
func (n Number) LessEq(m Number) bool { return n.Approx() <= m.Approx() }

// Greater reports whether n > m, comparing approximations.
func (n Number) Greater(m Number) bool { return n.Approx() > m.Approx() }

// GreaterEq reports whether n >= m, comparing approximations.
func (n Number) GreaterEq(m Number) bool { return n.Approx() >= m.Approx() }

// Truthy reports whether n is nonzero. Infinities and NaN are truthy.
func (n Number) Truthy() bool {
	return !n.IsFinite() || orZero(n.rat).Sign() != 0 || orZero(n.coef).Sign() != 0
}

// String formats n for display: the rational part, followed by
// " + coef*sym" when n has an irrational component.
func (n Number) String() string {
	if !n.IsFinite() {
		return strconv.FormatFloat(n.nf, 'g', -1, 64)
	}
	s := ratString(orZero(n.rat))
	if n.tag != TagNone && orZero(n.coef).Sign() != 0 {
		s += " + " + ratString(n.coef) + "*" + n.tag.String()
	}
	return s
}

// ratString formats integers exactly, values that came from float64 in
// their shortest form, terminating fractions as exact decimals, and
// anything else as a/b.
func ratString(x *big.Rat) string {
	if x.IsInt() {
		return x.Num().String()
	}
	if f, exact := x.Float64(); exact {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if k, ok := decimalPlaces(x.Denom()); ok {
		return x.FloatString(k)
	}
	return x.String()
}

// decimalPlaces returns the number of decimal places needed to write 1/d
// exactly, if that number is finite.
func decimalPlaces(d *big.Int) (int, bool) {
	d = new(big.Int).Set(d)
	twos := int(d.TrailingZeroBits())
	d.Rsh(d, uint(twos))
	five := big.NewInt(5)
	fives := 0
	var q, m big.Int
	for {
		q.QuoRem(d, five, &m)
		if m.Sign() != 0 {
			break
		}
		d.Set(&q)
		fives++
	}
	if d.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	if fives > twos {
		return fives, true
	}
	return twos, true
}

// Float computes n to prec bits of precision. If prec is 0, it is 64. The
// result is nil if n is NaN.
func (n Number) Float(prec uint) *big.Float {
	if prec == 0 {
		prec = 64
	}
	z := new(big.Float).SetPrec(prec)
	if !n.IsFinite() {
		if math.IsNaN(n.nf) {
			return nil
		}
		return z.SetInf(n.nf < 0)
	}
	z.SetRat(orZero(n.rat))
	if n.tag == TagNone || orZero(n.coef).Sign() == 0 {
		return z
	}
	c := new(big.Float).SetPrec(prec)
	switch n.tag {
	case TagPi:
		bigfloat.Pi(c)
	case TagE:
		bigfloat.Exp(c, new(big.Float).SetPrec(prec).SetInt64(1))
	case TagSqrt2:
		c.Sqrt(new(big.Float).SetPrec(prec).SetInt64(2))
	default:
		panic("calc: invalid tag " + n.tag.String())
	}
	c.Mul(c, new(big.Float).SetPrec(prec).SetRat(n.coef))
	return z.Add(z, c)
}
