package polyparse

// Token kinds produced by the polynomial lexer.
const (
	WHITESPACE uint = iota
	LPAREN
	RPAREN
	PLUS
	MINUS
	STAR
	CARET
	COMMA
	WORD
)

// Span identifies a half-open range [Start, End) of the input.
type Span struct {
	Start, End int
}

// Token associates a kind with a given range of characters in the string
// being scanned.
type Token struct {
	Kind uint
	Span Span
}

// LexRule associates groups of characters with a given tag.
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a new lexing rule which maps matching characters to a given
// tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer provides a top-level construct for tokenising a given input.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules}
}

// Index returns the current index within the items array.
func (p *Lexer[T]) Index() int { return p.index }

// Next returns the next token and advances the lexer. ok is false at the end
// of input or when no rule matches the remaining items.
func (p *Lexer[T]) Next() (Token, bool) {
	if p.index >= len(p.items) {
		return Token{}, false
	}
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			tok := Token{r.tag, Span{p.index, p.index + int(n)}}
			p.index += int(n)
			return tok, true
		}
	}
	return Token{}, false
}

// Collect scans all remaining tokens. It stops at the first position no rule
// matches; callers compare Index against the input length to detect that.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	for {
		tok, ok := p.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

var (
	whitespace = Many(Or(Unit(' '), Unit('\t'), Unit('\n'), Unit('\r')))
	word       = Many(NoneOf(' ', '\t', '\n', '\r', '(', ')', '+', '-', '*', '^', ','))
	rules      = []LexRule[rune]{
		Rule(whitespace, WHITESPACE),
		Rule(Unit('('), LPAREN),
		Rule(Unit(')'), RPAREN),
		Rule(Unit('+'), PLUS),
		Rule(Unit('-'), MINUS),
		Rule(Unit('*'), STAR),
		Rule(Unit('^'), CARET),
		Rule(Unit(','), COMMA),
		Rule(word, WORD),
	}
)

// Lex splits text into tokens, dropping whitespace.
func Lex(text []rune) ([]Token, error) {
	lexer := NewLexer(text, rules...)
	all := lexer.Collect()
	if lexer.Index() != len(text) {
		return nil, &SyntaxError{Offset: lexer.Index(), Msg: "unexpected character"}
	}
	tokens := all[:0]
	for _, t := range all {
		if t.Kind != WHITESPACE {
			tokens = append(tokens, t)
		}
	}
	return tokens, nil
}
