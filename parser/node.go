/*
File    : lux/parser/node.go
Project : Lux language interpreter
*/
package parser

import (
	"strings"

	"github.com/samjay22/Lux/diag"
)

// Node is the base interface for all nodes of the AST.
// Literal() returns a compact source-like rendering of the node and
// Loc() the source location the node starts at. Every error raised while
// checking or evaluating a node points at that location.
type Node interface {
	Literal() string
	Loc() diag.SourceLocation
}

// StatementNode is the base interface for all statement nodes.
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode is the base interface for all expression nodes.
type ExpressionNode interface {
	Node
	Expression()
}

// RootNode represents the root of the AST (the program node).
type RootNode struct {
	Statements []StatementNode // every top-level statement of the program
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	parts := make([]string, 0, len(root.Statements))
	for _, stmt := range root.Statements {
		parts = append(parts, stmt.Literal())
	}
	return strings.Join(parts, "; ")
}

// Loc returns the location of the first statement, or an empty location
// for an empty program.
func (root *RootNode) Loc() diag.SourceLocation {
	if len(root.Statements) > 0 {
		return root.Statements[0].Loc()
	}
	return diag.SourceLocation{}
}

// ===== Binary, unary and logical operators =====

// BinaryOp is a binary operator, stored as its surface lexeme.
type BinaryOp string

const (
	ADD_BINOP BinaryOp = "+"
	SUB_BINOP BinaryOp = "-"
	MUL_BINOP BinaryOp = "*"
	DIV_BINOP BinaryOp = "/"
	MOD_BINOP BinaryOp = "%"
	EQ_BINOP  BinaryOp = "=="
	NE_BINOP  BinaryOp = "!="
	LT_BINOP  BinaryOp = "<"
	LE_BINOP  BinaryOp = "<="
	GT_BINOP  BinaryOp = ">"
	GE_BINOP  BinaryOp = ">="
)

// UnaryOp is a unary operator, stored as its surface lexeme.
type UnaryOp string

const (
	NEGATE_UNOP UnaryOp = "-"
	NOT_UNOP    UnaryOp = "not"
	LENGTH_UNOP UnaryOp = "#"
	ADDR_UNOP   UnaryOp = "&"
	DEREF_UNOP  UnaryOp = "*"
)

// LogicalOp is a short-circuit logical operator.
type LogicalOp string

const (
	AND_LOGOP LogicalOp = "and"
	OR_LOGOP  LogicalOp = "or"
)

// ===== Type terms =====

// Type is the interface for type annotations: the primitive keyword
// forms, function types, and pointer types.
type Type interface {
	String() string
	typeTerm()
}

// BasicType is one of the primitive type keywords. NilType doubles as
// the gradual "unknown" marker in the checker.
type BasicType string

const (
	IntType    BasicType = "int"
	FloatType  BasicType = "float"
	StringType BasicType = "string"
	BoolType   BasicType = "bool"
	NilType    BasicType = "nil"
	TableType  BasicType = "table"
)

func (b BasicType) String() string { return string(b) }
func (b BasicType) typeTerm()      {}

// FunctionType is the type of a function value: parameter types and a
// return type.
type FunctionType struct {
	Params []Type
	Return Type
}

func (f *FunctionType) String() string {
	params := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		params = append(params, p.String())
	}
	return "fn(" + strings.Join(params, ", ") + ") -> " + f.Return.String()
}
func (f *FunctionType) typeTerm() {}

// PointerType is a pointer to an inner type; *T is right-associative so
// **T is a pointer to a pointer.
type PointerType struct {
	Inner Type
}

func (p *PointerType) String() string { return "*" + p.Inner.String() }
func (p *PointerType) typeTerm()      {}

// Param is a declared function parameter. An omitted annotation is
// recorded as NilType, the gradual "any" marker.
type Param struct {
	Name string
	Type Type
}

// ===== Statements =====

// VarDeclStatementNode: local or const declaration.
// Example: local x: int = 42
type VarDeclStatementNode struct {
	Name           string              // declared variable name
	TypeAnnotation Type                // nil when no annotation was written
	Initializer    ExpressionNode      // nil when no initializer was written
	IsConst        bool                // true for const declarations
	Location       diag.SourceLocation // location of the keyword
}

func (node *VarDeclStatementNode) Literal() string {
	kw := "local"
	if node.IsConst {
		kw = "const"
	}
	out := kw + " " + node.Name
	if node.TypeAnnotation != nil {
		out += ": " + node.TypeAnnotation.String()
	}
	if node.Initializer != nil {
		out += " = " + node.Initializer.Literal()
	}
	return out
}
func (node *VarDeclStatementNode) Loc() diag.SourceLocation { return node.Location }
func (node *VarDeclStatementNode) Statement()               {}

// FunctionDeclStatementNode: named function declaration.
// Example: async fn work(k: int) -> int { ... }
type FunctionDeclStatementNode struct {
	Name       string
	Params     []Param
	ReturnType Type // nil when no return annotation was written
	Body       []StatementNode
	IsAsync    bool
	Location   diag.SourceLocation
}

func (node *FunctionDeclStatementNode) Literal() string {
	out := ""
	if node.IsAsync {
		out += "async "
	}
	params := make([]string, 0, len(node.Params))
	for _, p := range node.Params {
		params = append(params, p.Name)
	}
	out += "fn " + node.Name + "(" + strings.Join(params, ", ") + ") {...}"
	return out
}
func (node *FunctionDeclStatementNode) Loc() diag.SourceLocation { return node.Location }
func (node *FunctionDeclStatementNode) Statement()               {}

// ExpressionStatementNode wraps an expression used in statement position.
type ExpressionStatementNode struct {
	Expr     ExpressionNode
	Location diag.SourceLocation
}

func (node *ExpressionStatementNode) Literal() string          { return node.Expr.Literal() }
func (node *ExpressionStatementNode) Loc() diag.SourceLocation { return node.Location }
func (node *ExpressionStatementNode) Statement()               {}

// IfStatementNode: conditional with optional else branch. An else-if
// chain is represented as an else branch holding a single nested if.
type IfStatementNode struct {
	Condition  ExpressionNode
	ThenBranch []StatementNode
	ElseBranch []StatementNode // nil when no else was written
	Location   diag.SourceLocation
}

func (node *IfStatementNode) Literal() string {
	out := "if " + node.Condition.Literal() + " {...}"
	if node.ElseBranch != nil {
		out += " else {...}"
	}
	return out
}
func (node *IfStatementNode) Loc() diag.SourceLocation { return node.Location }
func (node *IfStatementNode) Statement()               {}

// WhileStatementNode: condition-driven loop.
type WhileStatementNode struct {
	Condition ExpressionNode
	Body      []StatementNode
	Location  diag.SourceLocation
}

func (node *WhileStatementNode) Literal() string          { return "while " + node.Condition.Literal() + " {...}" }
func (node *WhileStatementNode) Loc() diag.SourceLocation { return node.Location }
func (node *WhileStatementNode) Statement()               {}

// ForStatementNode: C-style loop. Any of the three clauses may be nil.
type ForStatementNode struct {
	Initializer StatementNode  // nil when the clause is empty
	Condition   ExpressionNode // nil when the clause is empty
	Increment   ExpressionNode // nil when the clause is empty
	Body        []StatementNode
	Location    diag.SourceLocation
}

func (node *ForStatementNode) Literal() string {
	out := "for "
	if node.Initializer != nil {
		out += node.Initializer.Literal()
	}
	out += "; "
	if node.Condition != nil {
		out += node.Condition.Literal()
	}
	out += "; "
	if node.Increment != nil {
		out += node.Increment.Literal()
	}
	return out + " {...}"
}
func (node *ForStatementNode) Loc() diag.SourceLocation { return node.Location }
func (node *ForStatementNode) Statement()               {}

// ReturnStatementNode: return with an optional value.
type ReturnStatementNode struct {
	Value    ExpressionNode // nil for a bare return
	Location diag.SourceLocation
}

func (node *ReturnStatementNode) Literal() string {
	if node.Value != nil {
		return "return " + node.Value.Literal()
	}
	return "return"
}
func (node *ReturnStatementNode) Loc() diag.SourceLocation { return node.Location }
func (node *ReturnStatementNode) Statement()               {}

// BreakStatementNode terminates the innermost loop.
type BreakStatementNode struct {
	Location diag.SourceLocation
}

func (node *BreakStatementNode) Literal() string          { return "break" }
func (node *BreakStatementNode) Loc() diag.SourceLocation { return node.Location }
func (node *BreakStatementNode) Statement()               {}

// ContinueStatementNode skips to the next loop iteration.
type ContinueStatementNode struct {
	Location diag.SourceLocation
}

func (node *ContinueStatementNode) Literal() string          { return "continue" }
func (node *ContinueStatementNode) Loc() diag.SourceLocation { return node.Location }
func (node *ContinueStatementNode) Statement()               {}

// BlockStatementNode: a bare brace-delimited block introducing a scope.
type BlockStatementNode struct {
	Statements []StatementNode
	Location   diag.SourceLocation
}

func (node *BlockStatementNode) Literal() string          { return "{...}" }
func (node *BlockStatementNode) Loc() diag.SourceLocation { return node.Location }
func (node *BlockStatementNode) Statement()               {}

// ImportStatementNode: import "path". The path is resolved against the
// module search order at check and evaluation time.
type ImportStatementNode struct {
	Path     string
	Location diag.SourceLocation
}

func (node *ImportStatementNode) Literal() string          { return "import \"" + node.Path + "\"" }
func (node *ImportStatementNode) Loc() diag.SourceLocation { return node.Location }
func (node *ImportStatementNode) Statement()               {}

// ===== Expressions =====

// IntegerLiteralNode: an integer literal such as 42.
type IntegerLiteralNode struct {
	Value    int64
	Lexeme   string
	Location diag.SourceLocation
}

func (node *IntegerLiteralNode) Literal() string          { return node.Lexeme }
func (node *IntegerLiteralNode) Loc() diag.SourceLocation { return node.Location }
func (node *IntegerLiteralNode) Expression()              {}

// FloatLiteralNode: a float literal such as 3.14.
type FloatLiteralNode struct {
	Value    float64
	Lexeme   string
	Location diag.SourceLocation
}

func (node *FloatLiteralNode) Literal() string          { return node.Lexeme }
func (node *FloatLiteralNode) Loc() diag.SourceLocation { return node.Location }
func (node *FloatLiteralNode) Expression()              {}

// StringLiteralNode: a string literal with escapes already decoded.
type StringLiteralNode struct {
	Value    string
	Location diag.SourceLocation
}

func (node *StringLiteralNode) Literal() string          { return "\"" + node.Value + "\"" }
func (node *StringLiteralNode) Loc() diag.SourceLocation { return node.Location }
func (node *StringLiteralNode) Expression()              {}

// BooleanLiteralNode: true or false.
type BooleanLiteralNode struct {
	Value    bool
	Location diag.SourceLocation
}

func (node *BooleanLiteralNode) Literal() string {
	if node.Value {
		return "true"
	}
	return "false"
}
func (node *BooleanLiteralNode) Loc() diag.SourceLocation { return node.Location }
func (node *BooleanLiteralNode) Expression()              {}

// NilLiteralNode: the nil literal.
type NilLiteralNode struct {
	Location diag.SourceLocation
}

func (node *NilLiteralNode) Literal() string          { return "nil" }
func (node *NilLiteralNode) Loc() diag.SourceLocation { return node.Location }
func (node *NilLiteralNode) Expression()              {}

// IdentifierExpressionNode: a variable reference.
type IdentifierExpressionNode struct {
	Name     string
	Location diag.SourceLocation
}

func (node *IdentifierExpressionNode) Literal() string          { return node.Name }
func (node *IdentifierExpressionNode) Loc() diag.SourceLocation { return node.Location }
func (node *IdentifierExpressionNode) Expression()              {}

// BinaryExpressionNode: a binary operation with two operands.
type BinaryExpressionNode struct {
	Operator BinaryOp
	Left     ExpressionNode
	Right    ExpressionNode
	Location diag.SourceLocation
}

func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + " " + string(node.Operator) + " " + node.Right.Literal()
}
func (node *BinaryExpressionNode) Loc() diag.SourceLocation { return node.Location }
func (node *BinaryExpressionNode) Expression()              {}

// UnaryExpressionNode: a unary operation with one operand.
type UnaryExpressionNode struct {
	Operator UnaryOp
	Operand  ExpressionNode
	Location diag.SourceLocation
}

func (node *UnaryExpressionNode) Literal() string {
	if node.Operator == NOT_UNOP {
		return "not " + node.Operand.Literal()
	}
	return string(node.Operator) + node.Operand.Literal()
}
func (node *UnaryExpressionNode) Loc() diag.SourceLocation { return node.Location }
func (node *UnaryExpressionNode) Expression()              {}

// AssignExpressionNode: assignment to a variable or a table slot.
// The parser guarantees Target is an IdentifierExpressionNode, a
// TableAccessExpressionNode, or a dereference UnaryExpressionNode.
type AssignExpressionNode struct {
	Target   ExpressionNode
	Value    ExpressionNode
	Location diag.SourceLocation
}

func (node *AssignExpressionNode) Literal() string {
	return node.Target.Literal() + " = " + node.Value.Literal()
}
func (node *AssignExpressionNode) Loc() diag.SourceLocation { return node.Location }
func (node *AssignExpressionNode) Expression()              {}

// CallExpressionNode: a function call.
type CallExpressionNode struct {
	Callee    ExpressionNode
	Arguments []ExpressionNode
	Location  diag.SourceLocation
}

func (node *CallExpressionNode) Literal() string {
	args := make([]string, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, arg.Literal())
	}
	return node.Callee.Literal() + "(" + strings.Join(args, ", ") + ")"
}
func (node *CallExpressionNode) Loc() diag.SourceLocation { return node.Location }
func (node *CallExpressionNode) Expression()              {}

// TableEntry is one entry of a table constructor. FieldName is set for
// NAME = EXPR entries; otherwise KeyExpr holds the computed key. The
// parser synthesizes 1-based integer keys for positional entries, so
// KeyExpr is never nil when FieldName is empty.
type TableEntry struct {
	FieldName string
	KeyExpr   ExpressionNode
	Value     ExpressionNode
}

// TableExpressionNode: a brace-delimited table constructor.
type TableExpressionNode struct {
	Entries  []TableEntry
	Location diag.SourceLocation
}

func (node *TableExpressionNode) Literal() string {
	parts := make([]string, 0, len(node.Entries))
	for _, entry := range node.Entries {
		if entry.FieldName != "" {
			parts = append(parts, entry.FieldName+" = "+entry.Value.Literal())
		} else {
			parts = append(parts, entry.Value.Literal())
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (node *TableExpressionNode) Loc() diag.SourceLocation { return node.Location }
func (node *TableExpressionNode) Expression()              {}

// TableAccessExpressionNode: table.field or table[key]. Dot access is
// desugared to a string-literal key by the parser.
type TableAccessExpressionNode struct {
	Table    ExpressionNode
	Key      ExpressionNode
	Location diag.SourceLocation
}

func (node *TableAccessExpressionNode) Literal() string {
	return node.Table.Literal() + "[" + node.Key.Literal() + "]"
}
func (node *TableAccessExpressionNode) Loc() diag.SourceLocation { return node.Location }
func (node *TableAccessExpressionNode) Expression()              {}

// LogicalExpressionNode: short-circuit and/or. The result is the last
// evaluated operand, not a coerced boolean.
type LogicalExpressionNode struct {
	Operator LogicalOp
	Left     ExpressionNode
	Right    ExpressionNode
	Location diag.SourceLocation
}

func (node *LogicalExpressionNode) Literal() string {
	return node.Left.Literal() + " " + string(node.Operator) + " " + node.Right.Literal()
}
func (node *LogicalExpressionNode) Loc() diag.SourceLocation { return node.Location }
func (node *LogicalExpressionNode) Expression()              {}

// FunctionExpressionNode: an anonymous function value.
type FunctionExpressionNode struct {
	Params     []Param
	ReturnType Type // nil when no return annotation was written
	Body       []StatementNode
	Location   diag.SourceLocation
}

func (node *FunctionExpressionNode) Literal() string {
	params := make([]string, 0, len(node.Params))
	for _, p := range node.Params {
		params = append(params, p.Name)
	}
	return "fn(" + strings.Join(params, ", ") + ") {...}"
}
func (node *FunctionExpressionNode) Loc() diag.SourceLocation { return node.Location }
func (node *FunctionExpressionNode) Expression()              {}

// SpawnExpressionNode: spawn f(args). The operand must be a call; the
// checker and evaluator enforce that.
type SpawnExpressionNode struct {
	Call     ExpressionNode
	Location diag.SourceLocation
}

func (node *SpawnExpressionNode) Literal() string          { return "spawn " + node.Call.Literal() }
func (node *SpawnExpressionNode) Loc() diag.SourceLocation { return node.Location }
func (node *SpawnExpressionNode) Expression()              {}

// AwaitExpressionNode: await over a task id or a table of task ids.
type AwaitExpressionNode struct {
	Task     ExpressionNode
	Location diag.SourceLocation
}

func (node *AwaitExpressionNode) Literal() string          { return "await " + node.Task.Literal() }
func (node *AwaitExpressionNode) Loc() diag.SourceLocation { return node.Location }
func (node *AwaitExpressionNode) Expression()              {}
