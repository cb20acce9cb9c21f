package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/zephyrtronium/calc"
)

var (
	inname  = kingpin.Flag("in", "Input file; - is stdin (default stdin if no expressions given).").String()
	lines   = kingpin.Flag("lines", "Parse separate input lines as separate expressions.").Short('n').Bool()
	prec    = kingpin.Flag("prec", "Print results computed to this many bits instead of in exact form.").Short('p').Uint()
	verb    = kingpin.Flag("fmt", "Formatting verb for results printed with --prec.").Default("%g").String()
	approx  = kingpin.Flag("approx", "Print float64 approximations instead of exact forms.").Bool()
	tokens  = kingpin.Flag("tokens", "Print token streams.").Bool()
	echo    = kingpin.Flag("ast", "Print parse trees.").Bool()
	depth   = kingpin.Flag("max-depth", "Maximum nesting of parentheses and unary operators; 0 is unlimited.").Default("1000").Int()
	ops     = kingpin.Flag("ops", "List operators and their precedences, then exit.").Bool()
	keys    = kingpin.Flag("keys", "Read keypad keystrokes from stdin; = or newline evaluates.").Bool()
	verbose = kingpin.Flag("verbose", "Log each evaluation stage to stderr.").Short('v').Bool()
	exprs   = kingpin.Arg("expression", "Expressions to evaluate.").Strings()
)

func main() {
	kingpin.CommandLine.Help = "An exact-arithmetic expression calculator."
	kingpin.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	}
	opts := []calc.Option{calc.WithLogger(log), calc.MaxDepth(*depth)}

	if *ops {
		listOps(os.Stdout)
		return
	}
	if *keys {
		err := keypad(bufio.NewReader(os.Stdin), os.Stdout, opts)
		kingpin.FatalIfError(err, "reading keys")
		return
	}

	var srcs []string
	f, err := infile(*inname, len(*exprs) == 0)
	kingpin.FatalIfError(err, "opening input")
	if f != nil {
		s, err := readExprs(f, *lines)
		kingpin.FatalIfError(err, "reading input")
		srcs = append(srcs, s...)
	}
	srcs = append(srcs, *exprs...)

	failed := false
	eng := calc.New("", opts...)
	for _, src := range srcs {
		eng.Set(src)
		r, err := eng.Eval()
		if *tokens {
			fmt.Printf("%v : ", eng.Tokens())
		}
		if *echo && eng.Expr() != nil {
			fmt.Printf("%v : ", eng.Expr())
		}
		if err != nil {
			log.Error().Err(err).Str("expression", src).Msg("evaluation failed")
			fmt.Println("error:", err)
			failed = true
			continue
		}
		fmt.Println(format(r))
	}
	if failed {
		os.Exit(1)
	}
}

// format renders a result according to the output flags.
func format(r calc.Number) string {
	switch {
	case *prec > 0:
		f := r.Float(*prec)
		if f == nil {
			return "NaN"
		}
		return fmt.Sprintf(*verb, f)
	case *approx:
		return fmt.Sprint(r.Approx())
	default:
		return r.String()
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

// readExprs reads the whole input as one expression, or one per non-blank
// line if lines is true.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		srcs = append(srcs, sc.Text())
	}
	return srcs, sc.Err()
}

func listOps(w io.Writer) {
	for _, op := range calc.Operators() {
		kind := "binary"
		if op.Unary {
			kind = "unary"
		}
		note := ""
		if !op.Eval {
			note = " (parse only)"
		}
		fmt.Fprintf(w, "%2d  %-6s %-3s%s\n", op.Prec, kind, op.Text, note)
	}
}

// keypad feeds keystrokes through a calculator input line, evaluating each
// submitted expression. Backspace and DEL delete.
func keypad(r io.RuneReader, w io.Writer, opts []calc.Option) error {
	var in calc.Input
	eng := calc.New("", opts...)
	for {
		c, _, err := r.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch c {
		case '\b', 0x7f:
			in.Backspace()
			continue
		}
		if !in.Key(c) {
			continue
		}
		if strings.TrimSpace(in.Last) == "" {
			continue
		}
		eng.Set(in.Last)
		v, err := eng.Eval()
		if err != nil {
			in.Fail("Error")
			fmt.Fprintf(w, "%s = error: %v\n", in.Last, err)
			continue
		}
		in.Done(format(v))
		fmt.Fprintf(w, "%s = %s\n", in.Last, in.Text)
	}
}
