package parser

import (
	"htms/internal/ast"
	"htms/internal/source"
	"htms/internal/token"
)

type Options struct {
	// MaxErrors caps the number of recorded errors; 0 means unlimited.
	MaxErrors     int
	CurrentErrors int
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// ParseError is a syntax error located at the offending token.
type ParseError struct {
	Message string
	Loc     source.Location
}

func (e ParseError) Error() string {
	return e.Loc.String() + ": " + e.Message
}

// Parser - состояние парсера на один файл
type Parser struct {
	tokens []token.Token
	pos    int
	opts   Options
	errs   []ParseError
}

// Parse parses a token stream terminated by EOF. The returned program is
// never nil, but it is only meaningful when no errors are returned.
func Parse(tokens []token.Token) (*ast.Program, []ParseError) {
	return ParseWithOptions(tokens, Options{})
}

func ParseWithOptions(tokens []token.Token, opts Options) (*ast.Program, []ParseError) {
	p := New(tokens, opts)
	prog := p.ParseProgram()
	return prog, p.Errors()
}

func New(tokens []token.Token, opts Options) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != token.EOF {
		var end source.Location
		if n > 0 {
			last := tokens[n-1].Loc
			end = source.Location{Line: last.Line, Column: last.Column + last.Len(), Start: last.End, End: last.End}
		} else {
			end = source.Location{Line: 1, Column: 1}
		}
		tokens = append(tokens[:n:n], token.Token{Kind: token.EOF, Loc: end})
	}
	return &Parser{tokens: tokens, opts: opts}
}

func (p *Parser) Errors() []ParseError { return p.errs }

// ParseProgram - основной цикл верхнего уровня: пока не EOF - parseDecl.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.peek().Loc
	prog := &ast.Program{}
	for !p.atEnd() {
		declStart := p.pos
		if decl, ok := p.parseDecl(); ok {
			prog.Decls = append(prog.Decls, decl)
		} else {
			p.synchronize(declStart)
		}
	}
	prog.Loc = start.Through(p.peek().Loc)
	return prog
}

func (p *Parser) parseDecl() (ast.Decl, bool) {
	switch p.peek().Kind {
	case token.KwComponent:
		return p.parseComponent()
	case token.KwSection:
		return p.parseSection()
	case token.KwPage:
		return p.parsePage()
	default:
		return nil, p.fail("Expected 'component', 'section', or 'page'")
	}
}

// synchronize skips to the '}' that closes the failed declaration, or
// stops before the next declaration keyword. Brace depth is counted from
// declStart, so a '}' closing an inner block does not end recovery.
func (p *Parser) synchronize(declStart int) {
	depth := 0
	for _, tok := range p.tokens[declStart:p.pos] {
		depth += braceDelta(tok.Kind)
	}
	if p.pos == declStart && !p.atEnd() {
		if p.closes(&depth) {
			return
		}
	}
	for !p.atEnd() && !p.peek().Kind.IsDeclStart() {
		if p.closes(&depth) {
			return
		}
	}
}

// closes consumes one token and reports whether it closed the declaration.
func (p *Parser) closes(depth *int) bool {
	tok := p.advance()
	*depth += braceDelta(tok.Kind)
	return tok.Kind == token.RBrace && *depth <= 0
}

func braceDelta(k token.Kind) int {
	switch k {
	case token.LBrace:
		return 1
	case token.RBrace:
		return -1
	default:
		return 0
	}
}
