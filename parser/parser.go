/*
File    : lux/parser/parser.go
Project : Lux language interpreter
*/

/*
Package parser implements a single-pass recursive-descent parser for the
Lux language. It consumes the token vector produced by the lexer through
an index cursor and builds the AST defined in node.go.

Precedence, from lowest to highest: assignment (right-associative),
logical-or, logical-and, equality, comparison, additive, multiplicative,
unary, call/index, primary. Assignment is only permitted when the
left-hand side is a variable reference, a table access, or a pointer
dereference; anything else fails with "Invalid assignment target".

The parser fails on the first error and returns it as a diag.LuxError
carrying the offending token's location.
*/
package parser

import (
	"github.com/samjay22/Lux/diag"
	"github.com/samjay22/Lux/lexer"
)

// Parser holds the token vector and the cursor over it.
type Parser struct {
	Tokens  []lexer.Token // the full token stream, EOF-terminated
	Current int           // index of the next token to consume
}

// NewParser creates a parser over an EOF-terminated token vector.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{Tokens: tokens}
}

// ParseSource tokenizes and parses a source string in one step. This is
// the entry point used by the REPL, the script runner, and the parse_lux
// builtin.
func ParseSource(src string, filename string) (*RootNode, error) {
	tokens, err := lexer.NewLexer(src, filename).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}

// Parse parses the token stream into a program. Statements are consumed
// until the EOF sentinel.
func (par *Parser) Parse() (*RootNode, error) {
	root := &RootNode{Statements: make([]StatementNode, 0)}

	for !par.isAtEnd() {
		stmt, err := par.declaration()
		if err != nil {
			return nil, err
		}
		root.Statements = append(root.Statements, stmt)
	}

	return root, nil
}

// ===== Cursor helpers =====

// peek returns the next token without consuming it.
func (par *Parser) peek() lexer.Token {
	return par.Tokens[par.Current]
}

// previous returns the most recently consumed token.
func (par *Parser) previous() lexer.Token {
	return par.Tokens[par.Current-1]
}

// advance consumes the next token and returns it. The cursor never moves
// past the EOF sentinel.
func (par *Parser) advance() lexer.Token {
	if !par.isAtEnd() {
		par.Current++
	}
	return par.previous()
}

// isAtEnd reports whether the cursor has reached the EOF sentinel.
func (par *Parser) isAtEnd() bool {
	return par.peek().Type == lexer.EOF_TYPE
}

// check reports whether the next token has the given type.
func (par *Parser) check(tokenType lexer.TokenType) bool {
	if par.isAtEnd() {
		return false
	}
	return par.peek().Type == tokenType
}

// checkKeyword reports whether the next token is the given keyword.
func (par *Parser) checkKeyword(kw lexer.Keyword) bool {
	if par.isAtEnd() {
		return false
	}
	tok := par.peek()
	return tok.IsKeyword(kw)
}

// match consumes the next token if it has the given type.
func (par *Parser) match(tokenType lexer.TokenType) bool {
	if par.check(tokenType) {
		par.advance()
		return true
	}
	return false
}

// matchAny consumes the next token if it has any of the given types.
func (par *Parser) matchAny(types ...lexer.TokenType) bool {
	for _, t := range types {
		if par.check(t) {
			par.advance()
			return true
		}
	}
	return false
}

// matchKeyword consumes the next token if it is the given keyword.
func (par *Parser) matchKeyword(kw lexer.Keyword) bool {
	if par.checkKeyword(kw) {
		par.advance()
		return true
	}
	return false
}

// consume requires the next token to have the given type and consumes
// it; otherwise it produces a parse error with the given message.
func (par *Parser) consume(tokenType lexer.TokenType, message string) (lexer.Token, error) {
	if par.check(tokenType) {
		return par.advance(), nil
	}
	return lexer.Token{}, diag.NewParseError(message, par.peek().Location)
}

// consumeKeyword requires the next token to be the given keyword.
func (par *Parser) consumeKeyword(kw lexer.Keyword, message string) (lexer.Token, error) {
	if par.checkKeyword(kw) {
		return par.advance(), nil
	}
	return lexer.Token{}, diag.NewParseError(message, par.peek().Location)
}

// consumeIdentifier requires the next token to be an identifier and
// returns its lexeme.
func (par *Parser) consumeIdentifier(message string) (string, error) {
	if par.check(lexer.IDENTIFIER_ID) {
		return par.advance().Lexeme, nil
	}
	return "", diag.NewParseError(message, par.peek().Location)
}

// ===== Type syntax =====

// parseType parses a type annotation: a primitive keyword form or a *T
// pointer type. Pointer types are right-associative, so **T is a pointer
// to a pointer.
func (par *Parser) parseType() (Type, error) {
	if par.match(lexer.STAR_OP) {
		inner, err := par.parseType()
		if err != nil {
			return nil, err
		}
		return &PointerType{Inner: inner}, nil
	}

	switch {
	case par.matchKeyword(lexer.INT_KEY):
		return IntType, nil
	case par.matchKeyword(lexer.FLOAT_KEY):
		return FloatType, nil
	case par.matchKeyword(lexer.STRING_KEY):
		return StringType, nil
	case par.matchKeyword(lexer.BOOL_KEY):
		return BoolType, nil
	case par.matchKeyword(lexer.NIL_KEY):
		return NilType, nil
	case par.matchKeyword(lexer.TABLE_KEY):
		return TableType, nil
	}

	return nil, diag.NewParseError("Expected type", par.peek().Location)
}
