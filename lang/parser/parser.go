// Package parser implements the recursive-descent parser that turns a token
// stream into a list of statements.
//
// Grammar (operator precedence ascending), validated against
// golang.org/x/exp/ebnf by grammar_test.go:
//
//	program    = { declaration } .
//	declaration = classDecl | funDecl | varDecl | statement .
//	classDecl  = "class" ident [ "<" ident ] "{" { function } "}" .
//	funDecl    = "fun" function .
//	function   = ident "(" [ params ] ")" block .
//	params     = ident { "," ident } .
//	varDecl    = "var" ident [ "=" expression ] ";" .
//	statement  = exprStmt | forStmt | ifStmt | printStmt
//	           | returnStmt | whileStmt | block .
//	block      = "{" { declaration } "}" .
//	exprStmt   = expression ";" .
//	ifStmt     = "if" "(" expression ")" statement [ "else" statement ] .
//	whileStmt  = "while" "(" expression ")" statement .
//	forStmt    = "for" "(" ( varDecl | exprStmt | ";" )
//	             [ expression ] ";" [ expression ] ")" statement .
//	printStmt  = "print" expression ";" .
//	returnStmt = "return" [ expression ] ";" .
//	expression = assignment .
//	assignment = [ call "." ] ident "=" assignment | logicOr .
//	logicOr    = logicAnd { "or" logicAnd } .
//	logicAnd   = equality { "and" equality } .
//	equality   = comparison { ( "!=" | "==" ) comparison } .
//	comparison = term { ( ">" | ">=" | "<" | "<=" ) term } .
//	term       = factor { ( "-" | "+" ) factor } .
//	factor     = unary { ( "/" | "*" ) unary } .
//	unary      = ( "!" | "-" ) unary | call .
//	call       = primary { "(" [ args ] ")" | "." ident } .
//	args       = expression { "," expression } .
//	primary    = "true" | "false" | "nil" | "this"
//	           | number | string | ident
//	           | "(" expression ")"
//	           | "super" "." ident .
package parser

import (
	gotoken "go/token"

	"github.com/loxlang/golox/lang/ast"
	"github.com/loxlang/golox/lang/scanner"
	"github.com/loxlang/golox/lang/token"
)

const maxArgs = 255

// Parser parses a fixed token slice produced by lang/scanner, tracking a
// current position and a scanner.ErrorList so the caller sees every syntax
// error from one source, not just the first.
type Parser struct {
	filename string
	tokens   []token.Token
	current  int
	errors   scanner.ErrorList
}

// New returns a Parser over tokens (as produced by scanner.Scanner.ScanTokens).
// filename labels diagnostics only.
func New(filename string, tokens []token.Token) *Parser {
	return &Parser{filename: filename, tokens: tokens}
}

// Parse parses the token stream into a statement list. It always returns
// the longest prefix of declarations it managed to parse, even when err is
// non-nil (guaranteed to be a scanner.ErrorList), so that a caller reporting
// errors can still inspect what did parse.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.errors.Sort()
	return stmts, p.errors.Err()
}

// --- token cursor ---

func (p *Parser) isAtEnd() bool         { return p.peek().Kind == token.EOF }
func (p *Parser) peek() token.Token     { return p.tokens[p.current] }
func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has the expected kind, or
// records a parse error and returns the zero Token otherwise. The caller can
// keep going with a best-effort (possibly zero) token; synchronize() is what
// actually recovers parser state after a malformed declaration.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.errorAt(p.peek(), message)
	return token.Token{}
}

func (p *Parser) errorAt(tok token.Token, message string) {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}
	p.errors.Add(gotoken.Position{Filename: p.filename, Line: int(tok.Line)}, "Error"+where+": "+message)
}

// synchronize discards tokens until it reaches a likely statement boundary,
// so that parsing can resume and report further errors in the same pass
// (spec: error recovery by synchronizing on a just-consumed semicolon or the
// next statement-starting keyword).
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
