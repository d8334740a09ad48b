/*
File    : lux/parser/parser_expressions.go
Project : Lux language interpreter
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/samjay22/Lux/diag"
	"github.com/samjay22/Lux/lexer"
)

// expression parses an expression at the lowest precedence level.
func (par *Parser) expression() (ExpressionNode, error) {
	return par.assignment()
}

// assignment parses right-associative assignment. The left-hand side
// must be a variable reference, a table access, or a pointer
// dereference; any other target fails with "Invalid assignment target".
func (par *Parser) assignment() (ExpressionNode, error) {
	expr, err := par.logicalOr()
	if err != nil {
		return nil, err
	}

	if par.match(lexer.ASSIGN_OP) {
		location := par.previous().Location
		value, err := par.assignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *IdentifierExpressionNode, *TableAccessExpressionNode:
			return &AssignExpressionNode{Target: expr, Value: value, Location: location}, nil
		case *UnaryExpressionNode:
			// *p = v is admitted here; the evaluator diagnoses it
			if target.Operator == DEREF_UNOP {
				return &AssignExpressionNode{Target: expr, Value: value, Location: location}, nil
			}
		}
		return nil, diag.NewParseError("Invalid assignment target", location)
	}

	return expr, nil
}

// logicalOr parses: a or b or c.
func (par *Parser) logicalOr() (ExpressionNode, error) {
	expr, err := par.logicalAnd()
	if err != nil {
		return nil, err
	}

	for par.matchKeyword(lexer.OR_KEY) {
		location := par.previous().Location
		right, err := par.logicalAnd()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpressionNode{Operator: OR_LOGOP, Left: expr, Right: right, Location: location}
	}

	return expr, nil
}

// logicalAnd parses: a and b and c.
func (par *Parser) logicalAnd() (ExpressionNode, error) {
	expr, err := par.equality()
	if err != nil {
		return nil, err
	}

	for par.matchKeyword(lexer.AND_KEY) {
		location := par.previous().Location
		right, err := par.equality()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpressionNode{Operator: AND_LOGOP, Left: expr, Right: right, Location: location}
	}

	return expr, nil
}

// equality parses == and !=.
func (par *Parser) equality() (ExpressionNode, error) {
	expr, err := par.comparison()
	if err != nil {
		return nil, err
	}

	for par.matchAny(lexer.EQ_OP, lexer.NE_OP) {
		location := par.previous().Location
		operator := EQ_BINOP
		if par.previous().Type == lexer.NE_OP {
			operator = NE_BINOP
		}
		right, err := par.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Operator: operator, Left: expr, Right: right, Location: location}
	}

	return expr, nil
}

// comparison parses <, <=, > and >=.
func (par *Parser) comparison() (ExpressionNode, error) {
	expr, err := par.term()
	if err != nil {
		return nil, err
	}

	for par.matchAny(lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP) {
		location := par.previous().Location
		var operator BinaryOp
		switch par.previous().Type {
		case lexer.LT_OP:
			operator = LT_BINOP
		case lexer.LE_OP:
			operator = LE_BINOP
		case lexer.GT_OP:
			operator = GT_BINOP
		case lexer.GE_OP:
			operator = GE_BINOP
		}
		right, err := par.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Operator: operator, Left: expr, Right: right, Location: location}
	}

	return expr, nil
}

// term parses + and -.
func (par *Parser) term() (ExpressionNode, error) {
	expr, err := par.factor()
	if err != nil {
		return nil, err
	}

	for par.matchAny(lexer.PLUS_OP, lexer.MINUS_OP) {
		location := par.previous().Location
		operator := ADD_BINOP
		if par.previous().Type == lexer.MINUS_OP {
			operator = SUB_BINOP
		}
		right, err := par.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Operator: operator, Left: expr, Right: right, Location: location}
	}

	return expr, nil
}

// factor parses *, / and %.
func (par *Parser) factor() (ExpressionNode, error) {
	expr, err := par.unary()
	if err != nil {
		return nil, err
	}

	for par.matchAny(lexer.STAR_OP, lexer.SLASH_OP, lexer.MOD_OP) {
		location := par.previous().Location
		var operator BinaryOp
		switch par.previous().Type {
		case lexer.STAR_OP:
			operator = MUL_BINOP
		case lexer.SLASH_OP:
			operator = DIV_BINOP
		case lexer.MOD_OP:
			operator = MOD_BINOP
		}
		right, err := par.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Operator: operator, Left: expr, Right: right, Location: location}
	}

	return expr, nil
}

// unary parses the prefix operators: negate, not, length, address-of
// and dereference.
func (par *Parser) unary() (ExpressionNode, error) {
	if par.matchAny(lexer.MINUS_OP, lexer.HASH_OP, lexer.AMP_OP, lexer.STAR_OP) || par.matchKeyword(lexer.NOT_KEY) {
		location := par.previous().Location
		var operator UnaryOp
		switch {
		case par.previous().Type == lexer.MINUS_OP:
			operator = NEGATE_UNOP
		case par.previous().Type == lexer.HASH_OP:
			operator = LENGTH_UNOP
		case par.previous().Type == lexer.AMP_OP:
			operator = ADDR_UNOP
		case par.previous().Type == lexer.STAR_OP:
			operator = DEREF_UNOP
		default:
			operator = NOT_UNOP
		}
		operand, err := par.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpressionNode{Operator: operator, Operand: operand, Location: location}, nil
	}

	return par.call()
}

// call parses call, field-access and index suffixes on a primary
// expression: f(a)(b), t.x, t[k], in any combination.
func (par *Parser) call() (ExpressionNode, error) {
	expr, err := par.primary()
	if err != nil {
		return nil, err
	}

	for {
		if par.match(lexer.LEFT_PAREN) {
			expr, err = par.finishCall(expr)
			if err != nil {
				return nil, err
			}
		} else if par.match(lexer.DOT_OP) {
			location := par.previous().Location
			field, err := par.consumeIdentifier("Expected property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = &TableAccessExpressionNode{
				Table:    expr,
				Key:      &StringLiteralNode{Value: field, Location: location},
				Location: location,
			}
		} else if par.match(lexer.LEFT_BRACKET) {
			location := par.previous().Location
			key, err := par.expression()
			if err != nil {
				return nil, err
			}
			if _, err := par.consume(lexer.RIGHT_BRACKET, "Expected ']' after table index"); err != nil {
				return nil, err
			}
			expr = &TableAccessExpressionNode{Table: expr, Key: key, Location: location}
		} else {
			break
		}
	}

	return expr, nil
}

// finishCall parses the argument list after the opening parenthesis.
func (par *Parser) finishCall(callee ExpressionNode) (ExpressionNode, error) {
	location := par.previous().Location
	arguments := make([]ExpressionNode, 0)

	if !par.check(lexer.RIGHT_PAREN) {
		for {
			arg, err := par.expression()
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, arg)
			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	if _, err := par.consume(lexer.RIGHT_PAREN, "Expected ')' after arguments"); err != nil {
		return nil, err
	}

	return &CallExpressionNode{Callee: callee, Arguments: arguments, Location: location}, nil
}

// primary parses literals, identifiers, grouping, table constructors,
// function expressions, and the spawn/await forms.
func (par *Parser) primary() (ExpressionNode, error) {
	location := par.peek().Location

	if par.check(lexer.INT_LIT) {
		tok := par.advance()
		value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, diag.NewParseError(fmt.Sprintf("Invalid integer literal '%s'", tok.Lexeme), tok.Location)
		}
		return &IntegerLiteralNode{Value: value, Lexeme: tok.Lexeme, Location: location}, nil
	}

	if par.check(lexer.FLOAT_LIT) {
		tok := par.advance()
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, diag.NewParseError(fmt.Sprintf("Invalid float literal '%s'", tok.Lexeme), tok.Location)
		}
		return &FloatLiteralNode{Value: value, Lexeme: tok.Lexeme, Location: location}, nil
	}

	if par.check(lexer.STRING_LIT) {
		tok := par.advance()
		return &StringLiteralNode{Value: tok.Lexeme, Location: location}, nil
	}

	if par.matchKeyword(lexer.TRUE_KEY) {
		return &BooleanLiteralNode{Value: true, Location: location}, nil
	}
	if par.matchKeyword(lexer.FALSE_KEY) {
		return &BooleanLiteralNode{Value: false, Location: location}, nil
	}
	if par.matchKeyword(lexer.NIL_KEY) {
		return &NilLiteralNode{Location: location}, nil
	}

	if par.check(lexer.IDENTIFIER_ID) {
		name := par.advance().Lexeme
		return &IdentifierExpressionNode{Name: name, Location: location}, nil
	}

	if par.match(lexer.LEFT_PAREN) {
		expr, err := par.expression()
		if err != nil {
			return nil, err
		}
		if _, err := par.consume(lexer.RIGHT_PAREN, "Expected ')' after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	}

	if par.match(lexer.LEFT_BRACE) {
		return par.tableLiteral(location)
	}

	if par.matchKeyword(lexer.FN_KEY) {
		return par.functionExpression(location)
	}

	if par.matchKeyword(lexer.SPAWN_KEY) {
		call, err := par.unary()
		if err != nil {
			return nil, err
		}
		return &SpawnExpressionNode{Call: call, Location: location}, nil
	}

	if par.matchKeyword(lexer.AWAIT_KEY) {
		task, err := par.unary()
		if err != nil {
			return nil, err
		}
		return &AwaitExpressionNode{Task: task, Location: location}, nil
	}

	return nil, diag.NewParseError("Expected expression", par.peek().Location)
}

// functionExpression parses an anonymous function after the 'fn'
// keyword: fn (P1 [: T1], ...) [-> T] { BODY }.
func (par *Parser) functionExpression(location diag.SourceLocation) (ExpressionNode, error) {
	if _, err := par.consume(lexer.LEFT_PAREN, "Expected '(' after 'fn'"); err != nil {
		return nil, err
	}
	params, err := par.parameterList()
	if err != nil {
		return nil, err
	}

	var returnType Type
	if par.match(lexer.ARROW_OP) {
		returnType, err = par.parseType()
		if err != nil {
			return nil, err
		}
	}

	if _, err := par.consume(lexer.LEFT_BRACE, "Expected '{' before function body"); err != nil {
		return nil, err
	}
	body, err := par.blockStatements()
	if err != nil {
		return nil, err
	}

	return &FunctionExpressionNode{
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		Location:   location,
	}, nil
}

// tableLiteral parses a brace-delimited table constructor. Entries are
// NAME = EXPR fields, [EXPR] = EXPR computed keys, or positional values
// that receive implicit 1-based integer keys in source order. An
// identifier entry not followed by '=' backtracks one token and is
// treated as a positional expression.
func (par *Parser) tableLiteral(location diag.SourceLocation) (ExpressionNode, error) {
	entries := make([]TableEntry, 0)
	positionalCount := int64(0)

	positional := func(value ExpressionNode) TableEntry {
		positionalCount++
		index := positionalCount
		return TableEntry{
			KeyExpr: &IntegerLiteralNode{
				Value:    index,
				Lexeme:   strconv.FormatInt(index, 10),
				Location: location,
			},
			Value: value,
		}
	}

	if !par.check(lexer.RIGHT_BRACE) {
		for {
			if par.check(lexer.IDENTIFIER_ID) {
				checkpoint := par.Current
				name := par.advance().Lexeme

				if par.match(lexer.ASSIGN_OP) {
					value, err := par.expression()
					if err != nil {
						return nil, err
					}
					entries = append(entries, TableEntry{FieldName: name, Value: value})
				} else {
					// Just a value, backtrack
					par.Current = checkpoint
					value, err := par.expression()
					if err != nil {
						return nil, err
					}
					entries = append(entries, positional(value))
				}
			} else if par.match(lexer.LEFT_BRACKET) {
				keyExpr, err := par.expression()
				if err != nil {
					return nil, err
				}
				if _, err := par.consume(lexer.RIGHT_BRACKET, "Expected ']' after table key"); err != nil {
					return nil, err
				}
				if _, err := par.consume(lexer.ASSIGN_OP, "Expected '=' after table key"); err != nil {
					return nil, err
				}
				value, err := par.expression()
				if err != nil {
					return nil, err
				}
				entries = append(entries, TableEntry{KeyExpr: keyExpr, Value: value})
			} else {
				value, err := par.expression()
				if err != nil {
					return nil, err
				}
				entries = append(entries, positional(value))
			}

			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	if _, err := par.consume(lexer.RIGHT_BRACE, "Expected '}' after table literal"); err != nil {
		return nil, err
	}

	return &TableExpressionNode{Entries: entries, Location: location}, nil
}
