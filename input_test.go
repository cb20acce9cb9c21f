package calc

import "testing"

func TestInputKeys(t *testing.T) {
	cases := []struct {
		name string
		keys string
		want string
	}{
		{"digits", "12", "12"},
		{"operator", "12+3", "12 + 3"},
		{"spaces", "1 +  2", "1 + 2"},
		{"implicitmul", "2(", "2 * ("},
		{"afterclose", "(1)2", "(1) * 2"},
		{"closeopen", "(1)(", "(1) * ("},
		{"openopen", "((", "(("},
		{"opthenparen", "1-(", "1 - ("},
		{"emptyclose", ")", ""},
		{"decimal", "1.5*2", "1.5 * 2"},
		{"name", "2pi", "2pi"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var in Input
			for _, r := range c.keys {
				if in.Key(r) {
					t.Fatalf("%q submitted at %q", c.keys, r)
				}
			}
			if in.Text != c.want {
				t.Errorf("%q typed %q, want %q", c.keys, in.Text, c.want)
			}
		})
	}
}

func TestInputSubmit(t *testing.T) {
	for _, k := range []rune{'=', '\n', '\r'} {
		var in Input
		for _, r := range "1+2" {
			in.Key(r)
		}
		if !in.Key(k) {
			t.Errorf("%q didn't submit", k)
		}
		if in.Last != "1 + 2" {
			t.Errorf("%q submitted %q", k, in.Last)
		}
	}
}

func TestInputResult(t *testing.T) {
	var in Input
	for _, r := range "1+2=" {
		in.Key(r)
	}
	in.Done("3")
	if in.Text != "3" {
		t.Fatalf("result shown as %q", in.Text)
	}
	for _, r := range "+4" {
		in.Key(r)
	}
	if in.Text != "3 + 4" {
		t.Errorf("operator after result gave %q", in.Text)
	}

	in.Key('=')
	in.Done("7")
	in.Key('5')
	if in.Text != "5" {
		t.Errorf("operand after result gave %q", in.Text)
	}

	in.Key('=')
	in.Done("5")
	in.Backspace()
	if in.Text != "" {
		t.Errorf("backspace after result gave %q", in.Text)
	}
}

func TestInputFail(t *testing.T) {
	var in Input
	for _, r := range "1+=" {
		in.Key(r)
	}
	in.Fail("Error")
	if in.Text != "Error" {
		t.Fatalf("failure shown as %q", in.Text)
	}
	in.Key('+')
	if in.Text != " + " {
		t.Errorf("operator after failure gave %q", in.Text)
	}

	in.Fail("Error")
	in.Backspace()
	if in.Text != "" {
		t.Errorf("backspace after failure gave %q", in.Text)
	}
	in.Key('7')
	if in.Text != "7" {
		t.Errorf("operand after failure gave %q", in.Text)
	}
}

func TestInputBackspace(t *testing.T) {
	var in Input
	in.Backspace()
	if in.Text != "" {
		t.Errorf("backspace on empty line gave %q", in.Text)
	}
	for _, r := range "12√" {
		in.Key(r)
	}
	in.Backspace()
	if in.Text != "12 √" {
		t.Errorf("backspace deleted to %q", in.Text)
	}
	in.Backspace()
	in.Backspace()
	if in.Text != "12" {
		t.Errorf("backspace deleted to %q", in.Text)
	}
}
