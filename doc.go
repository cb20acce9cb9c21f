// Package calc implements a calculator for C-like arithmetic expressions over
// exact numbers.
//
// A Number is an exact rational plus a rational multiple of one of π, e, or
// √2. Addition and subtraction stay exact when the symbolic parts agree, so
// "pi + pi" is exactly 2π and "0.1 + 0.2" is exactly 3/10. Multiplication and
// division always work on float64 approximations, and so does any sum mixing
// a constant with a rational or with a different constant.
// Comparisons use approximations too, but == and != compare exact structure:
// "pi == 3.141592653589793" is false.
//
// Operators bind as in C, with every unary operator binding tighter than
// every binary one: "-2 * 3" is "(-2) * 3", and "10 - 3 - 2" is 5. Number
// literals may be decimal with an exponent, or use 0x or 0b, and may carry C
// suffixes like 10u or 1.5f. The names pi, π, e, sqrt2, and √2 are constants.
//
// Division by zero is not an error: "1 / 0" is +Inf, as in IEEE arithmetic.
package calc
