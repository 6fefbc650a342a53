package polyparse

import (
	"errors"
	"fmt"
	"strings"
)

// SyntaxError reports a malformed polynomial at a rune offset.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Term is one signed summand of the variable notation.
type Term struct {
	// Neg is set when the term is preceded by a minus sign.
	Neg bool
	// Coef is the coefficient text with any enclosing parentheses removed.
	// Empty means an implicit unit coefficient.
	Coef string
	// HasVar reports whether the variable appears in the term.
	HasVar bool
	// Exp is the exponent text, possibly signed. Empty means 1 when HasVar
	// is set and 0 otherwise.
	Exp string
}

// Pair is one (coefficient, degree) entry of the list notation.
type Pair struct {
	Coef string
	Deg  string
}

type parser struct {
	text     []rune
	tokens   []Token
	pos      int
	variable string
}

func newParser(input, variable string) (*parser, error) {
	text := []rune(input)
	tokens, err := Lex(text)
	if err != nil {
		return nil, err
	}
	return &parser{text: text, tokens: tokens, variable: variable}, nil
}

func (p *parser) atEnd() bool { return p.pos >= len(p.tokens) }

func (p *parser) peek() (Token, bool) {
	if p.atEnd() {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) lookingAt(kind uint) bool {
	t, ok := p.peek()
	return ok && t.Kind == kind
}

func (p *parser) offset() int {
	if t, ok := p.peek(); ok {
		return t.Span.Start
	}
	return len(p.text)
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.offset(), Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) textOf(s Span) string { return string(p.text[s.Start:s.End]) }

// matching returns the index of the RPAREN closing the LPAREN at index i,
// or -1 when the parentheses are unbalanced.
func (p *parser) matching(i int) int {
	depth := 0
	for j := i; j < len(p.tokens); j++ {
		switch p.tokens[j].Kind {
		case LPAREN:
			depth++
		case RPAREN:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// group consumes a parenthesised group and returns its inner text.
func (p *parser) group() (string, error) {
	end := p.matching(p.pos)
	if end < 0 {
		return "", p.errorf("unbalanced parenthesis")
	}
	inner := Span{p.tokens[p.pos].Span.End, p.tokens[end].Span.Start}
	p.pos = end + 1
	return strings.TrimSpace(p.textOf(inner)), nil
}

// wrapped reports whether the whole token stream is one parenthesised group.
func (p *parser) wrapped() bool {
	return len(p.tokens) >= 2 && p.tokens[0].Kind == LPAREN && p.matching(0) == len(p.tokens)-1
}

// Terms splits input in variable notation into its summands. The empty
// string (or only whitespace) has no terms. Redundant parentheses around the
// whole input are removed before splitting.
func Terms(input, variable string) ([]Term, error) {
	p, err := newParser(input, variable)
	if err != nil {
		return nil, err
	}
	if p.wrapped() {
		inner := Span{p.tokens[0].Span.End, p.tokens[len(p.tokens)-1].Span.Start}
		terms, err := Terms(p.textOf(inner), variable)
		var se *SyntaxError
		if errors.As(err, &se) {
			se.Offset += inner.Start
		}
		return terms, err
	}
	return p.sum()
}

func (p *parser) sum() ([]Term, error) {
	var terms []Term
	for !p.atEnd() {
		neg := false
		switch {
		case p.lookingAt(PLUS):
			p.pos++
		case p.lookingAt(MINUS):
			neg = true
			p.pos++
		case len(terms) > 0:
			return nil, p.errorf("expected '+' or '-'")
		}
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		t.Neg = neg
		terms = append(terms, t)
	}
	return terms, nil
}

func (p *parser) isVariable(t Token) bool {
	return t.Kind == WORD && p.textOf(t.Span) == p.variable
}

func (p *parser) term() (Term, error) {
	var t Term
	tok, ok := p.peek()
	switch {
	case !ok:
		return t, p.errorf("missing term")
	case p.isVariable(tok):
		return p.power(t)
	case tok.Kind == WORD:
		t.Coef = p.textOf(tok.Span)
		p.pos++
	case tok.Kind == LPAREN:
		inner, err := p.group()
		if err != nil {
			return t, err
		}
		if inner == "" {
			return t, p.errorf("empty coefficient")
		}
		t.Coef = inner
	default:
		return t, p.errorf("unexpected %q", p.textOf(tok.Span))
	}
	if !p.lookingAt(STAR) {
		return t, nil
	}
	p.pos++
	if tok, ok := p.peek(); !ok || !p.isVariable(tok) {
		return t, p.errorf("expected variable %q after '*'", p.variable)
	}
	return p.power(t)
}

// power consumes the variable and an optional exponent.
func (p *parser) power(t Term) (Term, error) {
	p.pos++
	t.HasVar = true
	if !p.lookingAt(CARET) {
		return t, nil
	}
	p.pos++
	sign := ""
	switch {
	case p.lookingAt(MINUS):
		sign = "-"
		p.pos++
	case p.lookingAt(PLUS):
		p.pos++
	}
	tok, ok := p.peek()
	switch {
	case ok && tok.Kind == WORD:
		t.Exp = sign + p.textOf(tok.Span)
		p.pos++
	case ok && tok.Kind == LPAREN:
		inner, err := p.group()
		if err != nil {
			return t, err
		}
		t.Exp = sign + inner
	default:
		return t, p.errorf("missing exponent")
	}
	return t, nil
}

// IsList reports whether input is written in list notation: one
// parenthesised group whose first element is itself a group holding a comma,
// or the empty list "()".
func IsList(input string) bool {
	p, err := newParser(input, "")
	if err != nil || !p.wrapped() {
		return false
	}
	if len(p.tokens) == 2 {
		return true
	}
	if p.tokens[1].Kind != LPAREN {
		return false
	}
	end := p.matching(1)
	depth := 0
	for _, t := range p.tokens[2:end] {
		switch t.Kind {
		case LPAREN:
			depth++
		case RPAREN:
			depth--
		case COMMA:
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

// ListTerms splits list notation "((c0,d0),(c1,d1),...)" into pairs.
// Entries may appear in any order and may repeat degrees.
func ListTerms(input string) ([]Pair, error) {
	p, err := newParser(input, "")
	if err != nil {
		return nil, err
	}
	if !p.wrapped() {
		return nil, p.errorf("expected '('")
	}
	p.pos = 1
	last := len(p.tokens) - 1
	var pairs []Pair
	for p.pos < last {
		if len(pairs) > 0 {
			if !p.lookingAt(COMMA) {
				return nil, p.errorf("expected ','")
			}
			p.pos++
		}
		if !p.lookingAt(LPAREN) {
			return nil, p.errorf("expected '('")
		}
		end := p.matching(p.pos)
		pair, err := p.pair(p.pos+1, end)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
		p.pos = end + 1
	}
	return pairs, nil
}

// pair splits tokens [from, to) at their single top-level comma.
func (p *parser) pair(from, to int) (Pair, error) {
	depth, split := 0, -1
	for i := from; i < to; i++ {
		switch p.tokens[i].Kind {
		case LPAREN:
			depth++
		case RPAREN:
			depth--
		case COMMA:
			if depth == 0 {
				if split >= 0 {
					p.pos = i
					return Pair{}, p.errorf("too many ',' in entry")
				}
				split = i
			}
		}
	}
	if split < 0 || split == from || split == to-1 {
		p.pos = from
		return Pair{}, p.errorf("entry must be (coefficient,degree)")
	}
	coef := Span{p.tokens[from].Span.Start, p.tokens[split-1].Span.End}
	deg := Span{p.tokens[split+1].Span.Start, p.tokens[to-1].Span.End}
	return Pair{Coef: p.textOf(coef), Deg: p.textOf(deg)}, nil
}
