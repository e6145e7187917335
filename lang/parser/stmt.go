package parser

import (
	"github.com/loxlang/golox/lang/ast"
	"github.com/loxlang/golox/lang/token"
)

// declaration parses one top-level-or-block declaration. Unlike the book's
// exception-based recovery, consume() here records the error and returns a
// zero Token instead of unwinding, so a malformed declaration still returns
// a (partially garbage) statement; declaration() notices the error count
// grew and discards that statement, synchronizing to the next one instead
// of letting the garbage reach the resolver or evaluator.
func (p *Parser) declaration() ast.Stmt {
	before := len(p.errors)
	start := p.current
	var stmt ast.Stmt
	switch {
	case p.match(token.CLASS):
		stmt = p.classDeclaration()
	case p.match(token.FUN):
		stmt = p.function("function")
	case p.match(token.VAR):
		stmt = p.varDeclaration()
	default:
		stmt = p.statement()
	}
	if len(p.errors) > before {
		// a malformed statement that still ran to its closing ';' already
		// sits at a declaration boundary; synchronizing would drop the next
		// token.
		if p.current == start || p.previous().Kind != token.SEMICOLON {
			p.synchronize()
		}
		return nil
	}
	return stmt
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "expect class name")

	var superclass *ast.VariableExpr
	if p.match(token.LESS) {
		p.consume(token.IDENTIFIER, "expect superclass name")
		superclass = ast.NewVariable(p.previous())
	}

	p.consume(token.LEFT_BRACE, "expect '{' before class body")
	var methods []*ast.FunctionStmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RIGHT_BRACE, "expect '}' after class body")

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

// function parses `IDENT "(" params? ")" block`, used for both top-level
// function declarations and class methods (kind is only used in error
// messages, following the book's convention).
func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(token.IDENTIFIER, "expect "+kind+" name")
	p.consume(token.LEFT_PAREN, "expect '(' after "+kind+" name")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "can't have more than 255 parameters")
			}
			params = append(params, p.consume(token.IDENTIFIER, "expect parameter name"))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "expect ')' after parameters")

	p.consume(token.LEFT_BRACE, "expect '{' before "+kind+" body")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "expect variable name")

	var initializer ast.Expr = ast.NewLiteral(nil, name.Line)
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}
	p.consume(token.SEMICOLON, "expect ';' after variable declaration")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RIGHT_BRACE, "expect '}' after block")
	return stmts
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "expect '(' after 'if'")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "expect ')' after if condition")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: cond, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.SEMICOLON, "expect ';' after value")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr // left nil for a bare "return;"
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "expect ';' after return value")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "expect '(' after 'while'")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "expect ')' after condition")
	body := p.statement()
	return &ast.WhileStmt{Condition: cond, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` into a Block holding
// the initializer followed by a While loop whose body is a Block of
// { original body; incr }. The increment is omitted when absent; the
// condition defaults to literal true.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "expect '(' after 'for'")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		// no initializer
	case p.check(token.VAR):
		p.advance()
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	semi := p.consume(token.SEMICOLON, "expect ';' after loop condition")

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "expect ')' after for clauses")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = ast.NewLiteral(true, semi.Line)
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "expect ';' after expression")
	return &ast.ExpressionStmt{Expression: expr}
}
