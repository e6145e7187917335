package parser

import (
	"github.com/loxlang/golox/lang/ast"
	"github.com/loxlang/golox/lang/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses the right-associative "target = value" form. Since the
// parser doesn't know yet whether the left side is an lvalue, it parses it
// as a normal expression (or()) and only afterward, on seeing '=', converts
// a VariableExpr into an AssignExpr or a GetExpr into a SetExpr. Any other
// shape is reported as an invalid assignment target without panicking, so
// parsing of the rest of the file can continue.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return ast.NewAssign(target.Name, value)
		case *ast.GetExpr:
			return ast.NewSet(target.Object, target.Name, value)
		default:
			p.errorAt(equals, "invalid assignment target")
			return expr
		}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return ast.NewUnary(op, right)
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENTIFIER, "expect property name after '.'")
			expr = ast.NewGet(expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "can't have more than 255 arguments")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "expect ')' after arguments")
	return ast.NewCall(callee, paren, args)
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteral(false, p.previous().Line)
	case p.match(token.TRUE):
		return ast.NewLiteral(true, p.previous().Line)
	case p.match(token.NIL):
		return ast.NewLiteral(nil, p.previous().Line)
	case p.match(token.NUMBER, token.STRING):
		tok := p.previous()
		return ast.NewLiteral(tok.Literal, tok.Line)
	case p.match(token.SUPER):
		keyword := p.previous()
		p.consume(token.DOT, "expect '.' after 'super'")
		method := p.consume(token.IDENTIFIER, "expect superclass method name")
		return ast.NewSuper(keyword, method)
	case p.match(token.THIS):
		return ast.NewThis(p.previous())
	case p.match(token.IDENTIFIER):
		return ast.NewVariable(p.previous())
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "expect ')' after expression")
		return ast.NewGrouping(expr)
	default:
		p.errorAt(p.peek(), "expect expression")
		// Return a placeholder literal so the caller always gets a non-nil
		// Expr; the recorded error is what actually surfaces to the user,
		// and declaration() discards this subtree during synchronization.
		return ast.NewLiteral(nil, p.peek().Line)
	}
}
