package lambda

import (
	"unicode"

	"github.com/pkg/errors"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenLambda
	TokenDot
	TokenEqual
	TokenSemicolon
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenLet
	TokenIn
)

type Token struct {
	Type    TokenType
	Literal string
}

type Parser struct {
	input   string
	pos     int
	current Token
}

func NewParser(input string) *Parser {
	p := &Parser{input: input}
	p.next()
	return p
}

func (p *Parser) next() {
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		p.current = Token{Type: TokenEOF}
		return
	}

	ch := p.input[p.pos]
	switch {
	case isLetter(ch):
		start := p.pos
		for p.pos < len(p.input) && (isLetter(p.input[p.pos]) || isDigit(p.input[p.pos])) {
			p.pos++
		}
		lit := p.input[start:p.pos]
		switch lit {
		case "let":
			p.current = Token{Type: TokenLet, Literal: lit}
		case "in":
			p.current = Token{Type: TokenIn, Literal: lit}
		default:
			p.current = Token{Type: TokenIdent, Literal: lit}
		}
	case ch == '\\':
		p.current = Token{Type: TokenLambda, Literal: "\\"}
		p.pos++
	case ch == '.':
		p.current = Token{Type: TokenDot, Literal: "."}
		p.pos++
	case ch == '=':
		p.current = Token{Type: TokenEqual, Literal: "="}
		p.pos++
	case ch == ';':
		p.current = Token{Type: TokenSemicolon, Literal: ";"}
		p.pos++
	case ch == '(':
		p.current = Token{Type: TokenLParen, Literal: "("}
		p.pos++
	case ch == ')':
		p.current = Token{Type: TokenRParen, Literal: ")"}
		p.pos++
	case ch == '[':
		p.current = Token{Type: TokenLBracket, Literal: "["}
		p.pos++
	case ch == ']':
		p.current = Token{Type: TokenRBracket, Literal: "]"}
		p.pos++
	default:
		// A unicode lambda also marks a binder.
		if r, size := decodeRune(p.input[p.pos:]); r == 'λ' {
			p.current = Token{Type: TokenLambda, Literal: "λ"}
			p.pos += size
			return
		}
		p.current = Token{Type: TokenIdent, Literal: string(ch)}
		p.pos++
	}
}

func decodeRune(s string) (rune, int) {
	for _, r := range s {
		return r, len(string(r))
	}
	return 0, 0
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func (p *Parser) Parse() (Term, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, errors.Errorf("unexpected trailing token %q", p.current.Literal)
	}
	return term, nil
}

// Term ::= Lambda | Let | App
// Lambda ::= '\' Ident '.' Term
// App ::= Atom+                       (left-associative)
// Atom ::= Ident | '(' Term ')' | '[' Operand Operand ']'
// Operand ::= Lambda | Atom
//
// The bracket form is what Render produces for applications, and rendered
// subterms are always atoms (variables are bare, abstractions come
// parenthesized, applications bracketed), so any rendered term parses
// back to a structurally identical tree.
func (p *Parser) parseTerm() (Term, error) {
	switch p.current.Type {
	case TokenLambda:
		return p.parseLambda()
	case TokenLet:
		return p.parseLet()
	}
	return p.parseApp()
}

func (p *Parser) parseLambda() (Term, error) {
	p.next() // consume the binder marker
	if p.current.Type != TokenIdent {
		return nil, errors.Errorf("expected parameter name after lambda, got %q", p.current.Literal)
	}
	param := p.current.Literal
	p.next()
	if p.current.Type != TokenDot {
		return nil, errors.Errorf("expected '.' after parameter %q", param)
	}
	p.next()
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Abs{Param: Var{Name: param}, Body: body}, nil
}

func (p *Parser) parseApp() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current.Type {
		case TokenEOF, TokenRParen, TokenRBracket, TokenSemicolon, TokenIn:
			return left, nil
		case TokenLambda:
			// A lambda extends as far right as possible, so it is the
			// final argument of the application chain.
			arg, err := p.parseLambda()
			if err != nil {
				return nil, err
			}
			return App{Fun: left, Arg: arg}, nil
		}

		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = App{Fun: left, Arg: right}
	}
}

func (p *Parser) parseOperand() (Term, error) {
	if p.current.Type == TokenLambda {
		return p.parseLambda()
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (Term, error) {
	switch p.current.Type {
	case TokenIdent:
		name := p.current.Literal
		p.next()
		return Var{Name: name}, nil
	case TokenLParen:
		p.next()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRParen {
			return nil, errors.New("expected ')'")
		}
		p.next()
		return term, nil
	case TokenLBracket:
		p.next()
		fun, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		arg, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRBracket {
			return nil, errors.New("expected ']'")
		}
		p.next()
		return App{Fun: fun, Arg: arg}, nil
	default:
		return nil, errors.Errorf("unexpected token %q", p.current.Literal)
	}
}

func (p *Parser) parseLet() (Term, error) {
	p.next() // consume 'let'

	type binding struct {
		name string
		val  Term
	}
	var bindings []binding

	for {
		if p.current.Type != TokenIdent {
			return nil, errors.New("expected identifier in let binding")
		}
		name := p.current.Literal
		p.next()

		if p.current.Type != TokenEqual {
			return nil, errors.New("expected '='")
		}
		p.next()

		val, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		bindings = append(bindings, binding{name, val})

		if p.current.Type == TokenSemicolon {
			p.next()
			if p.current.Type == TokenIn {
				p.next()
				break
			}
		} else if p.current.Type == TokenIn {
			p.next()
			break
		} else {
			return nil, errors.New("expected ';' or 'in'")
		}
	}

	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	// Desugar: let x=M; y=N in B -> [(\x.[(\y.B) N]) M]
	term := body
	for i := len(bindings) - 1; i >= 0; i-- {
		b := bindings[i]
		term = App{
			Fun: Abs{Param: Var{Name: b.name}, Body: term},
			Arg: b.val,
		}
	}

	return term, nil
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	p := NewParser(input)
	return p.Parse()
}
