//go:build go1.18
// +build go1.18

package calc_test

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/zephyrtronium/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("1")
	f.Add("pi + pi")
	f.Add("1Ã—2")
	f.Add("(((1")
	f.Add("0x1Au / 0b0")
	f.Fuzz(func(t *testing.T, s string) {
		calc.EvalString(s, calc.MaxDepth(100))
	})
}

func FuzzTokenize(f *testing.F) {
	f.Add("1 + 2")
	f.Add(`"a\"b" <<= 'c`)
	f.Add("１＋√2∞")
	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			t.Skip()
		}
		var b strings.Builder
		for _, tok := range calc.Tokenize(s) {
			b.WriteString(tok.Text)
		}
		want := strings.Map(dropSpace, width.Narrow.String(s))
		if got := strings.Map(dropSpace, b.String()); got != want {
			t.Errorf("tokens of %q concatenate to %q, want %q", s, got, want)
		}
	})
}

func dropSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return -1
	}
	return r
}
