/*
File    : lux/types/checker_test.go
Project : Lux language interpreter
*/
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samjay22/Lux/diag"
	"github.com/samjay22/Lux/parser"
)

// check runs the type checker over a source string.
func check(t *testing.T, src string) error {
	t.Helper()
	root, err := parser.ParseSource(src, "")
	require.NoError(t, err)
	return NewTypeChecker().Check(root)
}

// requireTypeError asserts the checker rejects the source with a Type
// error mentioning fragment.
func requireTypeError(t *testing.T, src, fragment string) {
	t.Helper()
	err := check(t, src)
	require.Error(t, err)
	luxErr, ok := err.(*diag.LuxError)
	require.True(t, ok)
	assert.Equal(t, diag.TypeError, luxErr.Kind)
	assert.Contains(t, luxErr.Message, fragment)
}

func TestChecker_AcceptsWellTypedPrograms(t *testing.T) {
	sources := []string{
		`local x: int = 41 + 1 print(x)`,
		`local s = "hi" + "!" print(s)`,
		`local f: float = 1.5 * 2.0`,
		`local b: bool = 1 < 2`,
		`const name: string = "lux"`,
		`fn add(a: int, b: int) -> int { return a + b } local r: int = add(1, 2)`,
		`local t: table = {1, 2, x = 3} print(#t)`,
		`local p = &10 print(*p)`,
		`local ok = true and "yes" or nil`,
		`if 0 { print("zero is truthy") } else { print("no") }`,
	}
	for _, src := range sources {
		assert.NoError(t, check(t, src), src)
	}
}

func TestChecker_DeclarationMismatch(t *testing.T) {
	requireTypeError(t, `local x: int = "oops"`, "Type mismatch")
}

func TestChecker_DeclarationNeedsAnnotationOrInitializer(t *testing.T) {
	requireTypeError(t, `local x`, "must have either a type annotation or an initializer")
}

func TestChecker_AnnotationOnlyDeclaration(t *testing.T) {
	assert.NoError(t, check(t, `local x: int x = 5`))
}

func TestChecker_UndefinedVariable(t *testing.T) {
	requireTypeError(t, `print(missing)`, "Undefined variable 'missing'")
}

func TestChecker_ArithmeticRequiresNumbers(t *testing.T) {
	requireTypeError(t, `local x = true - false`, "Cannot apply")
	requireTypeError(t, `local x = "a" * "b"`, "Cannot apply")
}

func TestChecker_MixedNumericTagsRejected(t *testing.T) {
	requireTypeError(t, `local x = 1 + 2.5`, "cannot add")
}

func TestChecker_StringConcatenationOnlyViaPlus(t *testing.T) {
	assert.NoError(t, check(t, `local s = "a" + "b"`))
	requireTypeError(t, `local s = "a" - "b"`, "Cannot apply")
}

func TestChecker_OrderingRequiresNumbers(t *testing.T) {
	requireTypeError(t, `local b = "a" < "b"`, "Cannot compare")
}

func TestChecker_EqualityAcceptsAnything(t *testing.T) {
	assert.NoError(t, check(t, `local b = "a" == 1`))
	assert.NoError(t, check(t, `local b = nil != {1}`))
}

func TestChecker_AssignmentCompatibility(t *testing.T) {
	requireTypeError(t, `local x: int = 1 x = "no"`, "cannot assign")
	assert.NoError(t, check(t, `local x: int = 1 x = 2`))
	// Unknown-typed values assign to anything
	assert.NoError(t, check(t, `local t = {v = 1} local x: int = 0 x = t.v`))
}

func TestChecker_GradualTableAccess(t *testing.T) {
	// Table access yields the unknown type, which participates in any
	// operation and infects arithmetic results
	assert.NoError(t, check(t, `local t = {1} local x = t[1] + 1 local b = t[1] < 2`))
}

func TestChecker_IndexingNonTableRejected(t *testing.T) {
	requireTypeError(t, `local x = 1 local y = x[1]`, "Cannot index")
}

func TestChecker_CallArity(t *testing.T) {
	requireTypeError(t,
		`fn add(a: int, b: int) -> int { return a + b } add(1)`,
		"expects 2 arguments")
}

func TestChecker_CallArgumentTypes(t *testing.T) {
	requireTypeError(t,
		`fn add(a: int, b: int) -> int { return a + b } add(1, "x")`,
		"Argument 2 type mismatch")
}

func TestChecker_VarargsAnySentinel(t *testing.T) {
	// print is declared with a single Nil parameter, the varargs-any
	// sentinel, so any argument list passes the checker
	assert.NoError(t, check(t, `print(1) print("s") print(nil)`))
}

func TestChecker_CallingNonFunctionTolerated(t *testing.T) {
	assert.NoError(t, check(t, `local x = 1 local y = x(2)`))
}

func TestChecker_DirectRecursion(t *testing.T) {
	assert.NoError(t, check(t,
		`fn fib(n: int) -> int { if n <= 1 { return n } return fib(n-1) + fib(n-2) }`))
}

func TestChecker_ReturnTypeMismatch(t *testing.T) {
	requireTypeError(t, `fn f() -> int { return "s" }`, "Return type mismatch")
}

func TestChecker_ReturnUnknownAccepted(t *testing.T) {
	assert.NoError(t, check(t, `fn f(t: table) -> int { return t.v }`))
}

func TestChecker_FunctionWithoutReturnTypeIsNil(t *testing.T) {
	// A missing return annotation means Nil, which matches anything
	assert.NoError(t, check(t, `fn f() { return 1 }`))
}

func TestChecker_NegateRequiresNumeric(t *testing.T) {
	requireTypeError(t, `local x = -"s"`, "Cannot negate")
}

func TestChecker_LengthRequiresStringOrTable(t *testing.T) {
	assert.NoError(t, check(t, `local a = #"abc" local b = #{1, 2}`))
	requireTypeError(t, `local x = #1`, "Cannot get length")
}

func TestChecker_PointerTypes(t *testing.T) {
	assert.NoError(t, check(t, `local x = 10 local p: *int = &x local y: int = *p`))
	requireTypeError(t, `local x = 10 local p: *string = &x`, "Type mismatch")
	requireTypeError(t, `local x = *5`, "Cannot dereference")
}

func TestChecker_FunctionTypesArePermissive(t *testing.T) {
	// Every function type matches every function type
	assert.NoError(t, check(t,
		`fn a() { } fn b(x: int) -> int { return x } local f = a f = b`))
}

func TestChecker_SpawnRequiresCall(t *testing.T) {
	err := check(t, `fn w() { } local id = spawn w`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spawn expects a function call")
}

func TestChecker_SpawnYieldsInt(t *testing.T) {
	assert.NoError(t, check(t, `fn w() { } local id: int = spawn w()`))
}

func TestChecker_AwaitOperandTypes(t *testing.T) {
	assert.NoError(t, check(t, `fn w() { } local a = spawn w() await a await {a}`))
	requireTypeError(t, `await "task"`, "await expects task ID")
}

func TestChecker_AsyncFlagIgnored(t *testing.T) {
	assert.NoError(t, check(t, `async fn w(k: int) -> int { return k } local id = spawn w(1)`))
}

func TestChecker_ScopeDiscipline(t *testing.T) {
	// Names introduced inside a block are not visible outside it
	requireTypeError(t, `{ local inner = 1 } print(inner)`, "Undefined variable 'inner'")
}

func TestChecker_BlockShadowing(t *testing.T) {
	assert.NoError(t, check(t, `local x: int = 1 { local x: string = "s" } x = 2`))
}

func TestChecker_ModuleNotFound(t *testing.T) {
	err := check(t, `import "definitely_missing_module"`)
	require.Error(t, err)
	luxErr, ok := err.(*diag.LuxError)
	require.True(t, ok)
	assert.Equal(t, diag.SemanticError, luxErr.Kind)
	assert.Contains(t, luxErr.Message, "not found")
}
