/*
File    : lux/eval/evaluator_test.go
Project : Lux language interpreter
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samjay22/Lux/diag"
	"github.com/samjay22/Lux/objects"
	"github.com/samjay22/Lux/parser"
)

// evalSource parses and interprets a source string, capturing builtin
// output.
func evalSource(t *testing.T, src string) (string, error) {
	t.Helper()
	root, err := parser.ParseSource(src, "")
	require.NoError(t, err)

	var buf bytes.Buffer
	evaluator := NewEvaluator()
	evaluator.SetWriter(&buf)
	err = evaluator.Interpret(root)
	return buf.String(), err
}

// mustEval asserts the program runs cleanly and returns its output.
func mustEval(t *testing.T, src string) string {
	t.Helper()
	out, err := evalSource(t, src)
	require.NoError(t, err)
	return out
}

// requireRuntimeError asserts the program fails with a Runtime error
// containing fragment.
func requireRuntimeError(t *testing.T, src, fragment string) *diag.LuxError {
	t.Helper()
	_, err := evalSource(t, src)
	require.Error(t, err)
	luxErr, ok := err.(*diag.LuxError)
	require.True(t, ok)
	assert.Equal(t, diag.RuntimeError, luxErr.Kind)
	assert.Contains(t, luxErr.Message, fragment)
	return luxErr
}

func TestEval_Arithmetic(t *testing.T) {
	assert.Equal(t, "42\n", mustEval(t, `print(41 + 1)`))
	assert.Equal(t, "6\n", mustEval(t, `print(2 * 3)`))
	assert.Equal(t, "2\n", mustEval(t, `print(7 / 3)`))
	assert.Equal(t, "1\n", mustEval(t, `print(7 % 3)`))
	assert.Equal(t, "-5\n", mustEval(t, `print(-5)`))
	assert.Equal(t, "3.5\n", mustEval(t, `print(1.5 + 2.0)`))
}

func TestEval_DivisionByZero(t *testing.T) {
	luxErr := requireRuntimeError(t, "local y = 1 / 0", "Division by zero")
	// The error points at the operator's location
	require.True(t, luxErr.HasLocation)
	assert.Equal(t, 1, luxErr.Location.Line)
	assert.Equal(t, 13, luxErr.Location.Column)
}

func TestEval_ModuloByZero(t *testing.T) {
	requireRuntimeError(t, `local y = 1 % 0`, "Modulo by zero")
}

func TestEval_FloatDivisionByZeroIsInf(t *testing.T) {
	// Float division follows IEEE semantics, no error
	assert.Equal(t, "+Inf\n", mustEval(t, `print(1.0 / 0.0)`))
}

func TestEval_StringConcatenation(t *testing.T) {
	assert.Equal(t, "hi!\n", mustEval(t, `local s = "hi" + "!" print(s)`))
}

func TestEval_CrossTagComparisons(t *testing.T) {
	assert.Equal(t, "false\n", mustEval(t, `print(1 == "1")`))
	assert.Equal(t, "true\n", mustEval(t, `print(1 != "1")`))
	requireRuntimeError(t, `local x = 1 + "1"`, "Type mismatch")
}

func TestEval_Truthiness(t *testing.T) {
	// Only nil and false choose the else branch
	assert.Equal(t, "then\n", mustEval(t, `if 0 { print("then") } else { print("else") }`))
	assert.Equal(t, "then\n", mustEval(t, `if "" { print("then") } else { print("else") }`))
	assert.Equal(t, "else\n", mustEval(t, `if nil { print("then") } else { print("else") }`))
	assert.Equal(t, "else\n", mustEval(t, `if false { print("then") } else { print("else") }`))
}

func TestEval_LogicalYieldsOperand(t *testing.T) {
	// and/or return the last evaluated operand, not a coerced bool
	assert.Equal(t, "2\n", mustEval(t, `print(1 and 2)`))
	assert.Equal(t, "nil\n", mustEval(t, `print(nil and 2)`))
	assert.Equal(t, "1\n", mustEval(t, `print(1 or 2)`))
	assert.Equal(t, "2\n", mustEval(t, `print(false or 2)`))
}

func TestEval_LogicalShortCircuits(t *testing.T) {
	// The right operand of a short-circuited `and` never evaluates
	out := mustEval(t, `
		fn boom() -> int { print("evaluated") return 1 }
		local r = false and boom()
		print(r)
	`)
	assert.Equal(t, "false\n", out)
}

func TestEval_NotOperator(t *testing.T) {
	assert.Equal(t, "true\n", mustEval(t, `print(not nil)`))
	assert.Equal(t, "false\n", mustEval(t, `print(not 0)`))
}

func TestEval_WhileBreakContinue(t *testing.T) {
	out := mustEval(t, `
		local i = 0
		local total = 0
		while true {
			i = i + 1
			if i == 3 { continue }
			if i > 5 { break }
			total = total + i
		}
		print(total)
	`)
	// 1 + 2 + 4 + 5
	assert.Equal(t, "12\n", out)
}

func TestEval_ForLoop(t *testing.T) {
	out := mustEval(t, `
		local total = 0
		for local i = 1; i <= 4; i = i + 1 { total = total + i }
		print(total)
	`)
	assert.Equal(t, "10\n", out)
}

func TestEval_ForScopeUnwinds(t *testing.T) {
	requireRuntimeError(t, `
		for local i = 0; i < 1; i = i + 1 { }
		print(i)
	`, "Undefined variable 'i'")
}

func TestEval_BlockScopeDiscipline(t *testing.T) {
	requireRuntimeError(t, `{ local inner = 1 } print(inner)`, "Undefined variable 'inner'")
}

func TestEval_ShadowAndRestore(t *testing.T) {
	out := mustEval(t, `
		local x = 1
		{
			local x = 2
			print(x)
		}
		print(x)
	`)
	assert.Equal(t, "2\n1\n", out)
}

func TestEval_AssignmentMutatesEnclosingScope(t *testing.T) {
	out := mustEval(t, `
		local x = 1
		{ x = 5 }
		print(x)
	`)
	assert.Equal(t, "5\n", out)
}

func TestEval_AssignUnboundFails(t *testing.T) {
	requireRuntimeError(t, `ghost = 1`, "Undefined variable 'ghost'")
}

func TestEval_Recursion(t *testing.T) {
	out := mustEval(t, `
		fn f(n) { if n <= 1 { return n } return f(n-1) + f(n-2) }
		print(f(10))
	`)
	assert.Equal(t, "55\n", out)
}

func TestEval_FunctionWithoutReturnYieldsNil(t *testing.T) {
	assert.Equal(t, "nil\n", mustEval(t, `fn f() { } print(f())`))
}

func TestEval_UserFunctionArity(t *testing.T) {
	requireRuntimeError(t, `fn f(a, b) { return a } f(1)`, "Expected 2 arguments but got 1")
}

func TestEval_NativeFunctionArity(t *testing.T) {
	requireRuntimeError(t, `print(1, 2)`, "Expected 1 arguments but got 2")
}

func TestEval_CallingNonFunction(t *testing.T) {
	requireRuntimeError(t, `local x = 3 x(1)`, "Cannot call int")
}

func TestEval_FunctionExpression(t *testing.T) {
	out := mustEval(t, `
		local twice = fn(x) { return x * 2 }
		print(twice(21))
	`)
	assert.Equal(t, "42\n", out)
}

func TestEval_TableConstructorAndAccess(t *testing.T) {
	out := mustEval(t, `
		local t = {10, 20, name = "lux", [5] = 50}
		print(t[1])
		print(t[2])
		print(t.name)
		print(t[5])
		print(t[3])
		print(#t)
	`)
	assert.Equal(t, "10\n20\nlux\n50\nnil\n5\n", out)
}

func TestEval_TableFieldAssignment(t *testing.T) {
	out := mustEval(t, `
		local t = {}
		t.x = 7
		print(#t)
		print(t.x)
	`)
	assert.Equal(t, "0\n7\n", out)
}

func TestEval_TableIndexAssignmentGrows(t *testing.T) {
	out := mustEval(t, `
		local t = {}
		t[3] = 9
		print(#t)
		print(t[1])
		print(t[3])
	`)
	assert.Equal(t, "3\nnil\n9\n", out)
}

func TestEval_MissingKeyYieldsNil(t *testing.T) {
	assert.Equal(t, "nil\n", mustEval(t, `local t = {} print(t.absent)`))
}

func TestEval_IndexingNonTableFails(t *testing.T) {
	requireRuntimeError(t, `local x = 1 print(x[1])`, "Can only index tables")
}

func TestEval_LengthOperator(t *testing.T) {
	assert.Equal(t, "3\n", mustEval(t, `print(#"abc")`))
	assert.Equal(t, "2\n", mustEval(t, `print(#{1, 2})`))
	requireRuntimeError(t, `print(#5)`, "Cannot get length")
}

func TestEval_PointerSnapshot(t *testing.T) {
	assert.Equal(t, "10\n", mustEval(t, `local p = &10 print(*p)`))

	// The cell captured a snapshot; later writes to the variable are
	// not visible through the pointer
	out := mustEval(t, `
		local x = 1
		local p = &x
		x = 2
		print(*p)
		print(x)
	`)
	assert.Equal(t, "1\n2\n", out)
}

func TestEval_DereferenceNonPointerFails(t *testing.T) {
	requireRuntimeError(t, `local x = *5`, "Cannot dereference non-pointer type int")
}

func TestEval_PointerWriteUnsupported(t *testing.T) {
	// The block keeps `*p` from parsing as a multiplication of `&1`
	requireRuntimeError(t, `local p = &1 { *p = 2 }`, "Assignment through a pointer is not supported")
}

func TestEval_Metatables(t *testing.T) {
	out := mustEval(t, `
		local t = {}
		local meta = {kind = "meta"}
		setmetatable(t, meta)
		local m = getmetatable(t)
		print(m.kind)
		print(getmetatable(meta))
	`)
	assert.Equal(t, "meta\nnil\n", out)
}

func TestEval_BuiltinErrorsBecomeRuntimeErrors(t *testing.T) {
	requireRuntimeError(t, `sqrt("nope")`, "sqrt expects a number")
}

func TestEval_ParseLuxReflective(t *testing.T) {
	out := mustEval(t, `
		local ast = parse_lux("local x = 1 + 2")
		print(#ast)
		print(ast[1].type)
		print(ast[1].name)
		print(ast[1].initializer.type)
	`)
	assert.Equal(t, "1\nVarDecl\nx\nBinary\n", out)
}

func TestEval_TopLevelReturnStopsExecution(t *testing.T) {
	out := mustEval(t, `print("before") return 0 print("after")`)
	assert.Equal(t, "before\n", out)
}

func TestEval_ImportMissingModule(t *testing.T) {
	requireRuntimeError(t, `import "definitely_missing_module"`, "Module 'definitely_missing_module' not found")
}

func TestEval_NativeValuesInScope(t *testing.T) {
	evaluator := NewEvaluator()
	value, ok := evaluator.Scp.LookUp("print")
	require.True(t, ok)
	assert.Equal(t, objects.NativeFunctionType, value.GetType())
}
