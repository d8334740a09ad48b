/*
File    : lux/parser/parser_statements.go
Project : Lux language interpreter
*/
package parser

import (
	"github.com/samjay22/Lux/diag"
	"github.com/samjay22/Lux/lexer"
)

// declaration parses the declaration forms (import, local, const,
// function) and falls back to statement parsing.
func (par *Parser) declaration() (StatementNode, error) {
	if par.matchKeyword(lexer.IMPORT_KEY) {
		return par.importDeclaration()
	}
	if par.matchKeyword(lexer.LOCAL_KEY) {
		return par.varDeclaration(false)
	}
	if par.matchKeyword(lexer.CONST_KEY) {
		return par.varDeclaration(true)
	}
	if par.checkKeyword(lexer.FN_KEY) || par.checkKeyword(lexer.ASYNC_KEY) {
		return par.functionDeclaration()
	}
	return par.statement()
}

// importDeclaration parses: import "path". The path string is resolved
// against the module search order later, by the checker and evaluator.
func (par *Parser) importDeclaration() (StatementNode, error) {
	location := par.previous().Location

	if !par.check(lexer.STRING_LIT) {
		return nil, diag.NewParseError("Expected string path after 'import'", par.peek().Location)
	}
	path := par.advance().Lexeme

	return &ImportStatementNode{Path: path, Location: location}, nil
}

// varDeclaration parses: (local|const) NAME [: TYPE] [= EXPR].
// The parser accepts both the annotation and the initializer being
// absent; the checker rejects that combination.
func (par *Parser) varDeclaration(isConst bool) (StatementNode, error) {
	location := par.previous().Location

	name, err := par.consumeIdentifier("Expected variable name")
	if err != nil {
		return nil, err
	}

	var annotation Type
	if par.match(lexer.COLON_DELIM) {
		annotation, err = par.parseType()
		if err != nil {
			return nil, err
		}
	}

	var initializer ExpressionNode
	if par.matchAny(lexer.ASSIGN_OP, lexer.COLON_ASSIGN_OP) {
		initializer, err = par.expression()
		if err != nil {
			return nil, err
		}
	}

	return &VarDeclStatementNode{
		Name:           name,
		TypeAnnotation: annotation,
		Initializer:    initializer,
		IsConst:        isConst,
		Location:       location,
	}, nil
}

// functionDeclaration parses: [async] fn NAME (P1 [: T1], ...) [-> T] { BODY }.
// Parameters without a declared type default to the gradual NilType.
func (par *Parser) functionDeclaration() (StatementNode, error) {
	isAsync := par.matchKeyword(lexer.ASYNC_KEY)
	if _, err := par.consumeKeyword(lexer.FN_KEY, "Expected 'fn'"); err != nil {
		return nil, err
	}
	location := par.previous().Location

	name, err := par.consumeIdentifier("Expected function name")
	if err != nil {
		return nil, err
	}

	if _, err := par.consume(lexer.LEFT_PAREN, "Expected '(' after function name"); err != nil {
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

	return &FunctionDeclStatementNode{
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		IsAsync:    isAsync,
		Location:   location,
	}, nil
}

// parameterList parses a comma-separated parameter list up to the
// closing parenthesis, which it consumes.
func (par *Parser) parameterList() ([]Param, error) {
	params := make([]Param, 0)

	if !par.check(lexer.RIGHT_PAREN) {
		for {
			paramName, err := par.consumeIdentifier("Expected parameter name")
			if err != nil {
				return nil, err
			}

			// An omitted annotation means the gradual "any" type
			var paramType Type = NilType
			if par.match(lexer.COLON_DELIM) {
				paramType, err = par.parseType()
				if err != nil {
					return nil, err
				}
			}

			params = append(params, Param{Name: paramName, Type: paramType})

			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	if _, err := par.consume(lexer.RIGHT_PAREN, "Expected ')' after parameters"); err != nil {
		return nil, err
	}
	return params, nil
}

// statement parses the control forms and falls back to an expression
// statement.
func (par *Parser) statement() (StatementNode, error) {
	if par.matchKeyword(lexer.IF_KEY) {
		return par.ifStatement()
	}
	if par.matchKeyword(lexer.WHILE_KEY) {
		return par.whileStatement()
	}
	if par.matchKeyword(lexer.FOR_KEY) {
		return par.forStatement()
	}
	if par.matchKeyword(lexer.RETURN_KEY) {
		return par.returnStatement()
	}
	if par.matchKeyword(lexer.BREAK_KEY) {
		return &BreakStatementNode{Location: par.previous().Location}, nil
	}
	if par.matchKeyword(lexer.CONTINUE_KEY) {
		return &ContinueStatementNode{Location: par.previous().Location}, nil
	}
	if par.match(lexer.LEFT_BRACE) {
		location := par.previous().Location
		statements, err := par.blockStatements()
		if err != nil {
			return nil, err
		}
		return &BlockStatementNode{Statements: statements, Location: location}, nil
	}
	return par.expressionStatement()
}

// ifStatement parses: if EXPR { ... } [else if ...] [else { ... }].
// An else-if chain becomes an else branch holding one nested if.
func (par *Parser) ifStatement() (StatementNode, error) {
	location := par.previous().Location

	condition, err := par.expression()
	if err != nil {
		return nil, err
	}

	if _, err := par.consume(lexer.LEFT_BRACE, "Expected '{' after if condition"); err != nil {
		return nil, err
	}
	thenBranch, err := par.blockStatements()
	if err != nil {
		return nil, err
	}

	var elseBranch []StatementNode
	if par.matchKeyword(lexer.ELSE_KEY) {
		if par.matchKeyword(lexer.IF_KEY) {
			nested, err := par.ifStatement()
			if err != nil {
				return nil, err
			}
			elseBranch = []StatementNode{nested}
		} else {
			if _, err := par.consume(lexer.LEFT_BRACE, "Expected '{' after else"); err != nil {
				return nil, err
			}
			elseBranch, err = par.blockStatements()
			if err != nil {
				return nil, err
			}
		}
	}

	return &IfStatementNode{
		Condition:  condition,
		ThenBranch: thenBranch,
		ElseBranch: elseBranch,
		Location:   location,
	}, nil
}

// whileStatement parses: while EXPR { ... }.
func (par *Parser) whileStatement() (StatementNode, error) {
	location := par.previous().Location

	condition, err := par.expression()
	if err != nil {
		return nil, err
	}

	if _, err := par.consume(lexer.LEFT_BRACE, "Expected '{' after while condition"); err != nil {
		return nil, err
	}
	body, err := par.blockStatements()
	if err != nil {
		return nil, err
	}

	return &WhileStatementNode{Condition: condition, Body: body, Location: location}, nil
}

// forStatement parses: for INIT ; COND ; STEP { ... }. Any of the three
// clauses may be empty.
func (par *Parser) forStatement() (StatementNode, error) {
	location := par.previous().Location

	var initializer StatementNode
	var err error
	if par.matchKeyword(lexer.LOCAL_KEY) {
		initializer, err = par.varDeclaration(false)
		if err != nil {
			return nil, err
		}
	} else if !par.check(lexer.SEMI_DELIM) {
		initializer, err = par.expressionStatement()
		if err != nil {
			return nil, err
		}
	}
	if _, err := par.consume(lexer.SEMI_DELIM, "Expected ';' after for initializer"); err != nil {
		return nil, err
	}

	var condition ExpressionNode
	if !par.check(lexer.SEMI_DELIM) {
		condition, err = par.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := par.consume(lexer.SEMI_DELIM, "Expected ';' after for condition"); err != nil {
		return nil, err
	}

	var increment ExpressionNode
	if !par.check(lexer.LEFT_BRACE) {
		increment, err = par.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := par.consume(lexer.LEFT_BRACE, "Expected '{' after for clauses"); err != nil {
		return nil, err
	}
	body, err := par.blockStatements()
	if err != nil {
		return nil, err
	}

	return &ForStatementNode{
		Initializer: initializer,
		Condition:   condition,
		Increment:   increment,
		Body:        body,
		Location:    location,
	}, nil
}

// returnStatement parses: return [EXPR]. The value is omitted when the
// next token closes the enclosing block or ends the input.
func (par *Parser) returnStatement() (StatementNode, error) {
	location := par.previous().Location

	var value ExpressionNode
	var err error
	if !par.check(lexer.RIGHT_BRACE) && !par.isAtEnd() {
		value, err = par.expression()
		if err != nil {
			return nil, err
		}
	}

	return &ReturnStatementNode{Value: value, Location: location}, nil
}

// expressionStatement wraps an expression used as a statement.
func (par *Parser) expressionStatement() (StatementNode, error) {
	expr, err := par.expression()
	if err != nil {
		return nil, err
	}
	return &ExpressionStatementNode{Expr: expr, Location: expr.Loc()}, nil
}

// blockStatements parses declarations until the closing brace, which it
// consumes.
func (par *Parser) blockStatements() ([]StatementNode, error) {
	statements := make([]StatementNode, 0)

	for !par.check(lexer.RIGHT_BRACE) && !par.isAtEnd() {
		stmt, err := par.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	if _, err := par.consume(lexer.RIGHT_BRACE, "Expected '}' after block"); err != nil {
		return nil, err
	}
	return statements, nil
}
