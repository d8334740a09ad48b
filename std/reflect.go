/*
File    : lux/std/reflect.go
Project : Lux language interpreter
*/

// Package std - reflect.go
// The parse_lux builtin: a reflective hook that feeds a source string
// back through the lexer and parser and returns the AST as a table Lux
// code can traverse.
package std

import (
	"fmt"
	"io"

	"github.com/samjay22/Lux/objects"
	"github.com/samjay22/Lux/parser"
)

var reflectMethods = []*Builtin{
	{Name: "parse_lux", Arity: 1, Fn: parseLux}, // Parses Lux source into an AST table
}

// init registers the reflection builtins.
func init() {
	Register(reflectMethods...)
}

// parseLux tokenizes and parses a source string and converts the AST
// into a table structure. Lexer and parser failures surface as builtin
// errors.
//
// Syntax: parse_lux(source)
func parseLux(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	source, ok := args[0].(*objects.String)
	if !ok {
		return nil, errorf("parse_lux expects a string (source code)")
	}

	root, err := parser.ParseSource(source.Value, "")
	if err != nil {
		return nil, err
	}

	return astToValue(root), nil
}

// astToValue converts a program into a table whose positional entries
// are its statements.
func astToValue(root *parser.RootNode) objects.LuxObject {
	table := objects.NewTable()
	for _, stmt := range root.Statements {
		table.Array = append(table.Array, stmtToValue(stmt))
	}
	return table
}

// stmtToValue converts one statement. The structured kinds carry their
// parts as fields; anything else is represented by its source rendering
// under "type".
func stmtToValue(stmt parser.StatementNode) objects.LuxObject {
	table := objects.NewTable()

	switch n := stmt.(type) {
	case *parser.VarDeclStatementNode:
		table.SetField("type", &objects.String{Value: "VarDecl"})
		table.SetField("name", &objects.String{Value: n.Name})
		if n.TypeAnnotation != nil {
			table.SetField("type_annotation", &objects.String{Value: n.TypeAnnotation.String()})
		}
		if n.Initializer != nil {
			table.SetField("initializer", exprToValue(n.Initializer))
		}

	case *parser.FunctionDeclStatementNode:
		table.SetField("type", &objects.String{Value: "FunctionDecl"})
		table.SetField("name", &objects.String{Value: n.Name})
		table.SetField("is_async", objects.BooleanOf(n.IsAsync))

		paramsTable := objects.NewTable()
		for _, param := range n.Params {
			paramTable := objects.NewTable()
			paramTable.SetField("name", &objects.String{Value: param.Name})
			paramTable.SetField("type", &objects.String{Value: param.Type.String()})
			paramsTable.Array = append(paramsTable.Array, paramTable)
		}
		table.SetField("params", paramsTable)

		if n.ReturnType != nil {
			table.SetField("return_type", &objects.String{Value: n.ReturnType.String()})
		}
		table.SetField("body", stmtsToValue(n.Body))

	case *parser.ReturnStatementNode:
		table.SetField("type", &objects.String{Value: "Return"})
		if n.Value != nil {
			table.SetField("value", exprToValue(n.Value))
		}

	case *parser.ExpressionStatementNode:
		table.SetField("type", &objects.String{Value: "Expression"})
		table.SetField("expr", exprToValue(n.Expr))

	case *parser.IfStatementNode:
		table.SetField("type", &objects.String{Value: "If"})
		table.SetField("condition", exprToValue(n.Condition))
		table.SetField("then_branch", stmtsToValue(n.ThenBranch))
		if n.ElseBranch != nil {
			table.SetField("else_branch", stmtsToValue(n.ElseBranch))
		}

	case *parser.WhileStatementNode:
		table.SetField("type", &objects.String{Value: "While"})
		table.SetField("condition", exprToValue(n.Condition))
		table.SetField("body", stmtsToValue(n.Body))

	case *parser.ForStatementNode:
		table.SetField("type", &objects.String{Value: "For"})
		if n.Initializer != nil {
			table.SetField("initializer", stmtToValue(n.Initializer))
		}
		if n.Condition != nil {
			table.SetField("condition", exprToValue(n.Condition))
		}
		if n.Increment != nil {
			table.SetField("increment", exprToValue(n.Increment))
		}
		table.SetField("body", stmtsToValue(n.Body))

	default:
		table.SetField("type", &objects.String{Value: stmt.Literal()})
	}

	return table
}

// stmtsToValue converts a statement list into a positional table.
func stmtsToValue(stmts []parser.StatementNode) objects.LuxObject {
	table := objects.NewTable()
	for _, s := range stmts {
		table.Array = append(table.Array, stmtToValue(s))
	}
	return table
}

// exprToValue converts one expression. Literals, variables, binary
// operations and calls are structured; anything else is represented by
// its source rendering under "type".
func exprToValue(expr parser.ExpressionNode) objects.LuxObject {
	table := objects.NewTable()

	switch n := expr.(type) {
	case *parser.IntegerLiteralNode:
		table.SetField("type", &objects.String{Value: "Literal"})
		table.SetField("value", &objects.Integer{Value: n.Value})
	case *parser.FloatLiteralNode:
		table.SetField("type", &objects.String{Value: "Literal"})
		table.SetField("value", &objects.Float{Value: n.Value})
	case *parser.StringLiteralNode:
		table.SetField("type", &objects.String{Value: "Literal"})
		table.SetField("value", &objects.String{Value: n.Value})
	case *parser.BooleanLiteralNode:
		table.SetField("type", &objects.String{Value: "Literal"})
		table.SetField("value", objects.BooleanOf(n.Value))
	case *parser.NilLiteralNode:
		table.SetField("type", &objects.String{Value: "Literal"})
		table.SetField("value", objects.NIL)

	case *parser.IdentifierExpressionNode:
		table.SetField("type", &objects.String{Value: "Variable"})
		table.SetField("name", &objects.String{Value: n.Name})

	case *parser.BinaryExpressionNode:
		table.SetField("type", &objects.String{Value: "Binary"})
		table.SetField("operator", &objects.String{Value: fmt.Sprintf("%v", n.Operator)})
		table.SetField("left", exprToValue(n.Left))
		table.SetField("right", exprToValue(n.Right))

	case *parser.CallExpressionNode:
		table.SetField("type", &objects.String{Value: "Call"})
		table.SetField("callee", exprToValue(n.Callee))
		argsTable := objects.NewTable()
		for _, arg := range n.Arguments {
			argsTable.Array = append(argsTable.Array, exprToValue(arg))
		}
		table.SetField("arguments", argsTable)

	default:
		table.SetField("type", &objects.String{Value: expr.Literal()})
	}

	return table
}
