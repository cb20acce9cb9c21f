package calc

import (
	"unicode"
	"unicode/utf8"
)

// Input is the line a calculator keypad edits. It tidies keystrokes into
// expression text: operators are padded with spaces, and a parenthesis that
// follows an operand implies a multiplication. The zero value is an empty
// line.
type Input struct {
	// Text is the line as displayed.
	Text string
	// Last is the most recently submitted expression.
	Last string

	failed    bool
	processed bool
}

// Key applies a keystroke and reports whether it submitted the line. On
// submission, Last holds the expression to evaluate. Newlines and = submit.
func (in *Input) Key(r rune) bool {
	in.reset()
	if isOperand(r) && in.processed {
		// Typing a number over a result starts a new expression; typing an
		// operator continues from the result.
		in.Text = ""
	}
	in.processed = false
	switch {
	case r == '\r', r == '\n', r == '=':
		in.Last = in.Text
		return true
	case r == '(' || r == ')':
		last, _ := utf8.DecodeLastRuneInString(in.Text)
		switch {
		case in.Text == "" && r == ')':
			return false
		case r == '(' && (isAlnum(last) || last == ')'):
			in.Text += " * "
		}
		in.Text += string(r)
	case r == ' ':
		// Spacing is decided by the other keys.
	case !isOperand(r):
		in.Text += " " + string(r) + " "
	default:
		if last, _ := utf8.DecodeLastRuneInString(in.Text); last == ')' && isAlnum(r) {
			in.Text += " * "
		}
		in.Text += string(r)
	}
	return false
}

// Backspace deletes the last rune. After an error or a result, it clears the
// line instead.
func (in *Input) Backspace() {
	if in.failed || in.processed {
		in.Text = ""
		in.failed, in.processed = false, false
		return
	}
	_, n := utf8.DecodeLastRuneInString(in.Text)
	in.Text = in.Text[:len(in.Text)-n]
}

// Done shows the result of the submitted expression. The next operand key
// replaces it.
func (in *Input) Done(result string) {
	in.Text = result
	in.processed = true
}

// Fail shows an error message. The next key clears it.
func (in *Input) Fail(msg string) {
	in.Text = msg
	in.failed = true
}

// reset clears the line after a failure.
func (in *Input) reset() {
	if in.failed {
		in.Text = ""
		in.failed = false
	}
}

// isOperand reports whether r continues a number or name.
func isOperand(r rune) bool {
	return isAlnum(r) || r == '.' || r == ',' || r == ';'
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
