package lambda

import (
	"fmt"
	"strconv"
	"unicode"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenIdent
	tokenNumber
	tokenColon
	tokenEqual
	tokenSemicolon
	tokenLParen
	tokenRParen
	tokenLet
	tokenIn
)

type token struct {
	Type    tokenType
	Literal string
}

// Parser reads the concrete syntax:
//
//	Term ::= Abs | Let | App
//	Abs  ::= ident ':' Term
//	Let  ::= 'let' ident '=' Term (';' ident '=' Term)* (';' | 'in') Term
//	App  ::= Atom Atom*
//	Atom ::= ident | number | '(' Term ')'
//
// Abstractions extend as far right as possible, application is
// left-associative, and a bare number is sugar for the Church numeral of
// that value. '#' comments run to end of line.
type Parser struct {
	input   string
	pos     int
	current token
}

// NewParser returns a parser over input, primed on its first token.
func NewParser(input string) *Parser {
	p := &Parser{input: input}
	p.next()
	return p
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	p := NewParser(input)
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.current.Type != tokenEOF {
		return nil, fmt.Errorf("unexpected trailing input at %q", p.current.Literal)
	}
	return term, nil
}

func (p *Parser) next() {
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		p.current = token{Type: tokenEOF}
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
			p.current = token{Type: tokenLet, Literal: lit}
		case "in":
			p.current = token{Type: tokenIn, Literal: lit}
		default:
			p.current = token{Type: tokenIdent, Literal: lit}
		}
	case isDigit(ch):
		start := p.pos
		for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
			p.pos++
		}
		p.current = token{Type: tokenNumber, Literal: p.input[start:p.pos]}
	case ch == ':':
		p.current = token{Type: tokenColon, Literal: ":"}
		p.pos++
	case ch == '=':
		p.current = token{Type: tokenEqual, Literal: "="}
		p.pos++
	case ch == ';':
		p.current = token{Type: tokenSemicolon, Literal: ";"}
		p.pos++
	case ch == '(':
		p.current = token{Type: tokenLParen, Literal: "("}
		p.pos++
	case ch == ')':
		p.current = token{Type: tokenRParen, Literal: ")"}
		p.pos++
	default:
		p.current = token{Type: tokenIdent, Literal: string(ch)}
		p.pos++
	}
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.input) {
		if p.input[p.pos] == '#' {
			for p.pos < len(p.input) && p.input[p.pos] != '\n' {
				p.pos++
			}
			continue
		}
		if !unicode.IsSpace(rune(p.input[p.pos])) {
			return
		}
		p.pos++
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// save/restore implement one-token lookahead by backtracking the lexer.
func (p *Parser) save() (int, token) {
	return p.pos, p.current
}

func (p *Parser) restore(pos int, tok token) {
	p.pos = pos
	p.current = tok
}

func (p *Parser) parseTerm() (Term, error) {
	if p.current.Type == tokenLet {
		return p.parseLet()
	}

	// "x: ..." is an abstraction; a lone "x" starts an application chain.
	if p.current.Type == tokenIdent {
		pos, tok := p.save()
		p.next()
		if p.current.Type == tokenColon {
			p.next()
			body, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			return Abs{Arg: tok.Literal, Body: body}, nil
		}
		p.restore(pos, tok)
	}

	return p.parseApp()
}

func (p *Parser) parseApp() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current.Type {
		case tokenEOF, tokenRParen, tokenSemicolon, tokenIn:
			return left, nil
		}

		// An abstraction in argument position swallows everything to its
		// right: "f x: y z" is f (x: y z).
		if p.current.Type == tokenIdent {
			pos, tok := p.save()
			p.next()
			if p.current.Type == tokenColon {
				p.next()
				body, err := p.parseTerm()
				if err != nil {
					return nil, err
				}
				return App{Fun: left, Arg: Abs{Arg: tok.Literal, Body: body}}, nil
			}
			p.restore(pos, tok)
		}

		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = App{Fun: left, Arg: right}
	}
}

func (p *Parser) parseAtom() (Term, error) {
	switch p.current.Type {
	case tokenIdent:
		name := p.current.Literal
		p.next()
		return Var{Name: name}, nil
	case tokenNumber:
		n, err := strconv.Atoi(p.current.Literal)
		if err != nil {
			return nil, fmt.Errorf("bad numeral literal %q: %w", p.current.Literal, err)
		}
		p.next()
		return NumeralTerm(n), nil
	case tokenLParen:
		p.next()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.current.Type != tokenRParen {
			return nil, fmt.Errorf("expected ')', found %q", p.current.Literal)
		}
		p.next()
		return term, nil
	default:
		return nil, fmt.Errorf("unexpected token %q", p.current.Literal)
	}
}

// parseLet parses one or more bindings and a body. The body follows 'in',
// or a ';' that is not itself followed by another "name =" binding, so
// "let x = v in b" and "let x = v; b" read the same.
func (p *Parser) parseLet() (Term, error) {
	p.next()

	type binding struct {
		name string
		val  Term
	}
	var bindings []binding

loop:
	for {
		if p.current.Type != tokenIdent {
			return nil, fmt.Errorf("expected name in let binding, found %q", p.current.Literal)
		}
		name := p.current.Literal
		p.next()

		if p.current.Type != tokenEqual {
			return nil, fmt.Errorf("expected '=' after let name %q", name)
		}
		p.next()

		val, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, binding{name, val})

		switch p.current.Type {
		case tokenIn:
			p.next()
			break loop
		case tokenSemicolon:
			p.next()
			if p.current.Type == tokenIdent {
				pos, tok := p.save()
				p.next()
				isBinding := p.current.Type == tokenEqual
				p.restore(pos, tok)
				if isBinding {
					continue
				}
			}
			break loop
		default:
			return nil, fmt.Errorf("expected ';' or 'in' after let binding, found %q", p.current.Literal)
		}
	}

	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	term := body
	for i := len(bindings) - 1; i >= 0; i-- {
		term = Let{Name: bindings[i].name, Val: bindings[i].val, Body: term}
	}
	return term, nil
}

// NumeralTerm builds the Church numeral term for n:
// (f: (x: f (f ... (f x)))) with n applications of f.
// Negative n yields the zero numeral.
func NumeralTerm(n int) Term {
	body := Term(Var{Name: "x"})
	for i := 0; i < n; i++ {
		body = App{Fun: Var{Name: "f"}, Arg: body}
	}
	return Abs{Arg: "f", Body: Abs{Arg: "x", Body: body}}
}
