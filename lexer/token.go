/*
File    : lux/lexer/token.go
Project : Lux language interpreter
*/
package lexer

import (
	"fmt"

	"github.com/samjay22/Lux/diag"
)

// TokenType represents the type of a lexical token in the Lux language.
// It is defined as a string to allow for easy comparison and debugging.
// Each token type corresponds to a specific syntactic element of the
// language: operators, keywords, literals, or structural symbols.
type TokenType string

// TokenType constants. These define every token the scanner can emit,
// grouped for clarity.
const (
	// Special types
	// EOF_TYPE marks the end of the input stream
	EOF_TYPE TokenType = "EOF"

	// Literals
	INT_LIT    TokenType = "IntLiteral"    // Integer literal (e.g., 42)
	FLOAT_LIT  TokenType = "FloatLiteral"  // Floating-point literal (e.g., 3.14)
	STRING_LIT TokenType = "StringLiteral" // String literal (e.g., "hello")

	// Identifiers and keywords
	IDENTIFIER_ID TokenType = "Identifier" // User-defined name
	KEYWORD_ID    TokenType = "Keyword"    // Reserved word (see KEYWORDS_MAP)

	// Arithmetic operators
	PLUS_OP  TokenType = "+" // Addition / string concatenation
	MINUS_OP TokenType = "-" // Subtraction / negation
	STAR_OP  TokenType = "*" // Multiplication / dereference / pointer type
	SLASH_OP TokenType = "/" // Division
	MOD_OP   TokenType = "%" // Modulo

	// Comparison operators
	EQ_OP TokenType = "==" // Equality
	NE_OP TokenType = "!=" // Inequality
	LT_OP TokenType = "<"  // Less than
	LE_OP TokenType = "<=" // Less than or equal
	GT_OP TokenType = ">"  // Greater than
	GE_OP TokenType = ">=" // Greater than or equal

	// Assignment operators
	ASSIGN_OP       TokenType = "="  // Assignment
	COLON_ASSIGN_OP TokenType = ":=" // Declaration-style assignment

	// Unary operators
	HASH_OP TokenType = "#" // Length operator (Lua-style)
	AMP_OP  TokenType = "&" // Address-of operator

	// Delimiters
	LEFT_PAREN    TokenType = "("  // Grouping, calls, parameter lists
	RIGHT_PAREN   TokenType = ")"  //
	LEFT_BRACE    TokenType = "{"  // Blocks, table constructors
	RIGHT_BRACE   TokenType = "}"  //
	LEFT_BRACKET  TokenType = "["  // Table indexing, computed keys
	RIGHT_BRACKET TokenType = "]"  //
	COMMA_DELIM   TokenType = ","  // Separates parameters, table entries
	DOT_OP        TokenType = "."  // Table field access
	COLON_DELIM   TokenType = ":"  // Type annotations
	SEMI_DELIM    TokenType = ";"  // For-clause separator
	ARROW_OP      TokenType = "->" // Return type marker
)

// Keyword is a reserved word of the language, stored as its lexeme.
type Keyword string

// Keyword constants. The alphabet is fixed; anything else that scans as
// an identifier stays an identifier.
const (
	LOCAL_KEY    Keyword = "local"
	CONST_KEY    Keyword = "const"
	FN_KEY       Keyword = "fn"
	RETURN_KEY   Keyword = "return"
	IF_KEY       Keyword = "if"
	ELSE_KEY     Keyword = "else"
	WHILE_KEY    Keyword = "while"
	FOR_KEY      Keyword = "for"
	BREAK_KEY    Keyword = "break"
	CONTINUE_KEY Keyword = "continue"
	INT_KEY      Keyword = "int"
	FLOAT_KEY    Keyword = "float"
	STRING_KEY   Keyword = "string"
	BOOL_KEY     Keyword = "bool"
	NIL_KEY      Keyword = "nil"
	TABLE_KEY    Keyword = "table"
	TRUE_KEY     Keyword = "true"
	FALSE_KEY    Keyword = "false"
	ASYNC_KEY    Keyword = "async"
	AWAIT_KEY    Keyword = "await"
	SPAWN_KEY    Keyword = "spawn"
	AND_KEY      Keyword = "and"
	OR_KEY       Keyword = "or"
	NOT_KEY      Keyword = "not"
	IMPORT_KEY   Keyword = "import"
)

// KEYWORDS_MAP is the lookup table from lexeme to keyword. The lexer
// consults it after scanning an identifier to decide whether the lexeme
// is reserved.
var KEYWORDS_MAP = map[string]Keyword{
	"local":    LOCAL_KEY,
	"const":    CONST_KEY,
	"fn":       FN_KEY,
	"return":   RETURN_KEY,
	"if":       IF_KEY,
	"else":     ELSE_KEY,
	"while":    WHILE_KEY,
	"for":      FOR_KEY,
	"break":    BREAK_KEY,
	"continue": CONTINUE_KEY,
	"int":      INT_KEY,
	"float":    FLOAT_KEY,
	"string":   STRING_KEY,
	"bool":     BOOL_KEY,
	"nil":      NIL_KEY,
	"table":    TABLE_KEY,
	"true":     TRUE_KEY,
	"false":    FALSE_KEY,
	"async":    ASYNC_KEY,
	"await":    AWAIT_KEY,
	"spawn":    SPAWN_KEY,
	"and":      AND_KEY,
	"or":       OR_KEY,
	"not":      NOT_KEY,
	"import":   IMPORT_KEY,
}

// Token represents a single lexical token in Lux source code. It carries
// the token's type, its exact lexeme, the decoded keyword when the type
// is KEYWORD_ID, and the source location where the token starts.
type Token struct {
	Type     TokenType           // The category of this token
	Lexeme   string              // The exact text from the source
	Keyword  Keyword             // Set only when Type == KEYWORD_ID
	Location diag.SourceLocation // Where the token begins (1-indexed)
}

// NewToken creates a token with a type and lexeme but no location.
// Use NewTokenWithLocation during scanning so errors can point at source.
func NewToken(tokenType TokenType, lexeme string) Token {
	return Token{Type: tokenType, Lexeme: lexeme}
}

// NewTokenWithLocation creates a token with full position metadata.
func NewTokenWithLocation(tokenType TokenType, lexeme string, loc diag.SourceLocation) Token {
	return Token{Type: tokenType, Lexeme: lexeme, Location: loc}
}

// NewKeywordToken creates a keyword token carrying its decoded keyword.
func NewKeywordToken(kw Keyword, loc diag.SourceLocation) Token {
	return Token{Type: KEYWORD_ID, Lexeme: string(kw), Keyword: kw, Location: loc}
}

// IsKeyword reports whether the token is the given keyword.
func (tok *Token) IsKeyword(kw Keyword) bool {
	return tok.Type == KEYWORD_ID && tok.Keyword == kw
}

// String returns a "lexeme:type" representation for debugging. The
// token dump mode prints its own listing and does not use it.
func (tok *Token) String() string {
	if tok.Type == EOF_TYPE {
		return "EOF"
	}
	return fmt.Sprintf("%s:%v", tok.Lexeme, tok.Type)
}

// lookupIdent decides whether an identifier lexeme is a reserved word.
// It returns the keyword and true when the lexeme is in KEYWORDS_MAP.
func lookupIdent(ident string) (Keyword, bool) {
	kw, ok := KEYWORDS_MAP[ident]
	return kw, ok
}
