package parser

import (
	"lox/pkg/ast"
	"lox/pkg/token"
)

// expression := comma
func (p *Parser) expression() (ast.Expr, error) {
	return p.comma()
}

// comma := assignment (COMMA assignment)*, left-associative.
func (p *Parser) comma() (ast.Expr, error) {
	expr, err := p.assignment()
	if err != nil {
		return nil, err
	}
	for p.match(token.Comma) {
		op := p.previous()
		right, err := p.assignment()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// assignment := ternary (EQUAL expression)?, right-associative.
//
// The left-hand side is parsed as an ordinary expression first; if an `=`
// follows, the parsed LHS must be a Variable or the assignment target is
// invalid. Either way the `=` and its right-hand side have been consumed,
// so parsing can continue rather than abort.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.ternary()
	if err != nil {
		return nil, err
	}

	if p.match(token.Equal) {
		equals := p.previous()
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}, nil
		}
		p.sink.ReportParseError(equals, "Invalid assignment target.")
		return expr, nil
	}
	return expr, nil
}

// ternary := or (QUESTION ternary COLON ternary)?, right-associative on
// both the "then" and "else" arms.
func (p *Parser) ternary() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.match(token.Question) {
		questionLine := p.previous().Line
		second, err := p.ternary()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.Colon, "Expect ':'"); err != nil {
			return nil, err
		}
		third, err := p.ternary()
		if err != nil {
			return nil, err
		}
		op := token.New(token.Ternary, "?:", nil, questionLine)
		return &ast.Ternary{Op: op, First: expr, Second: second, Third: third}, nil
	}
	return expr, nil
}

// or := and (OR and)*
func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(token.Or) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// and := equality (AND equality)*
func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.And) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// equality := comparison ((BANG_EQUAL | EQUAL_EQUAL) comparison)*
func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssocBinary(p.comparison, token.BangEqual, token.EqualEqual)
}

// comparison := term ((> | >= | < | <=) term)*
func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssocBinary(p.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

// term := factor ((MINUS | PLUS) factor)*
func (p *Parser) term() (ast.Expr, error) {
	return p.leftAssocBinary(p.factor, token.Minus, token.Plus)
}

// factor := unary ((SLASH | STAR) unary)*
func (p *Parser) factor() (ast.Expr, error) {
	return p.leftAssocBinary(p.unary, token.Slash, token.Star)
}

// leftAssocBinary folds a next-tighter-precedence operand parser across a
// run of same-precedence infix operators, left to right.
func (p *Parser) leftAssocBinary(operand func() (ast.Expr, error), kinds ...token.Kind) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// unary := (BANG | MINUS) unary | primary
func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Operand: operand}, nil
	}
	return p.primary()
}

// primary := TRUE | FALSE | NIL | NUMBER | STRING | IDENTIFIER | ( expression )
func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.True):
		return &ast.Literal{Value: true}, nil
	case p.match(token.False):
		return &ast.Literal{Value: false}, nil
	case p.match(token.Nil):
		return &ast.Literal{Value: nil}, nil
	case p.match(token.Number, token.String):
		return &ast.Literal{Value: p.previous().Literal}, nil
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: expr}, nil
	default:
		return nil, p.errorAt(p.peek(), "Expect expression.")
	}
}
