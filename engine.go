package calc

import (
	"github.com/rs/zerolog"
)

// Option is an option for an Engine or for Parse.
type Option interface {
	option(*config)
}

type config struct {
	log   zerolog.Logger
	depth int
}

func newConfig(opts []Option) config {
	cfg := config{log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt.option(&cfg)
		}
	}
	return cfg
}

type (
	logopt   struct{ log zerolog.Logger }
	depthopt int
)

func (o logopt) option(c *config)   { c.log = o.log }
func (o depthopt) option(c *config) { c.depth = int(o) }

// WithLogger sets the logger to which an Engine traces each evaluation at
// debug level. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return logopt{log}
}

// MaxDepth limits the nesting of parentheses and unary operators. Deeper
// expressions fail to parse with ReasonDepth instead of exhausting the stack.
// Zero, the default, means no limit.
func MaxDepth(n int) Option {
	return depthopt(n)
}

// Engine evaluates one expression at a time. Each call to Eval scans and
// parses the current text from scratch, so an Engine holds no state between
// evaluations other than the text and the results of the last one. An Engine
// is not safe for concurrent use; separate Engines are independent.
type Engine struct {
	src  string
	cfg  config
	toks []Token
	expr *Expr
}

// New creates an engine for the expression src.
func New(src string, opts ...Option) *Engine {
	return &Engine{src: src, cfg: newConfig(opts)}
}

// Set replaces the expression text.
func (e *Engine) Set(src string) {
	e.src = src
}

// Source returns the expression text.
func (e *Engine) Source() string {
	return e.src
}

// Eval tokenizes, parses, and evaluates the expression. Any failure ends the
// evaluation; the error is a *ParseError or an *EvalError.
func (e *Engine) Eval() (Number, error) {
	e.toks, e.expr = nil, nil
	log := e.cfg.log
	e.toks = Tokenize(e.src)
	log.Debug().Str("src", e.src).Int("tokens", len(e.toks)).Msg("tokenized")
	x, err := parseTokens(e.toks, e.cfg.depth)
	if err != nil {
		log.Debug().Err(err).Str("src", e.src).Msg("parse failed")
		return Number{}, err
	}
	e.expr = x
	log.Debug().Stringer("ast", x).Msg("parsed")
	r, err := x.Eval()
	if err != nil {
		log.Debug().Err(err).Str("src", e.src).Msg("evaluation failed")
		return Number{}, err
	}
	log.Debug().Stringer("result", r).Msg("evaluated")
	return r, nil
}

// Tokens returns a copy of the tokens from the last call to Eval.
func (e *Engine) Tokens() []Token {
	return append([]Token(nil), e.toks...)
}

// Expr returns the expression parsed by the last call to Eval, or nil if it
// failed to parse.
func (e *Engine) Expr() *Expr {
	return e.expr
}

// EvalString is a shortcut to evaluate an expression with a new Engine.
func EvalString(src string, opts ...Option) (Number, error) {
	return New(src, opts...).Eval()
}
