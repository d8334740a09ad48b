/*
File    : lux/objects/objects_test.go
Project : Lux language interpreter
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthiness(t *testing.T) {
	// Only Nil and false are falsy
	assert.False(t, IsTruthy(NIL))
	assert.False(t, IsTruthy(FALSE))

	assert.True(t, IsTruthy(TRUE))
	assert.True(t, IsTruthy(&Integer{Value: 0}))
	assert.True(t, IsTruthy(&Float{Value: 0.0}))
	assert.True(t, IsTruthy(&String{Value: ""}))
	assert.True(t, IsTruthy(NewTable()))
	assert.True(t, IsTruthy(&Function{Name: "f"}))
	assert.True(t, IsTruthy(NewPointer(NIL)))
}

func TestEquals(t *testing.T) {
	assert.True(t, Equals(&Integer{Value: 3}, &Integer{Value: 3}))
	assert.False(t, Equals(&Integer{Value: 3}, &Integer{Value: 4}))
	assert.True(t, Equals(&String{Value: "a"}, &String{Value: "a"}))
	assert.True(t, Equals(NIL, NIL))

	// Differing tags are never equal
	assert.False(t, Equals(&Integer{Value: 1}, &Float{Value: 1.0}))
	assert.False(t, Equals(&Integer{Value: 0}, FALSE))

	// Tables never compare equal
	assert.False(t, Equals(NewTable(), NewTable()))
}

func TestTable_PositionalKeysAreOneBased(t *testing.T) {
	table := NewTable()
	table.Set(&Integer{Value: 1}, &String{Value: "first"})

	value, ok := table.Get(&Integer{Value: 1})
	require.True(t, ok)
	assert.Equal(t, "first", value.ToString())

	// Index 0 and negatives never resolve
	_, ok = table.Get(&Integer{Value: 0})
	assert.False(t, ok)
	_, ok = table.Get(&Integer{Value: -1})
	assert.False(t, ok)
}

func TestTable_GrowthFillsWithNil(t *testing.T) {
	table := NewTable()
	table.Set(&Integer{Value: 4}, &Integer{Value: 7})

	assert.Equal(t, 4, table.Len())
	for i := int64(1); i <= 3; i++ {
		value, ok := table.Get(&Integer{Value: i})
		require.True(t, ok)
		assert.Equal(t, NilType, value.GetType())
	}
}

func TestTable_StringKeysDoNotAffectLength(t *testing.T) {
	table := NewTable()
	table.SetField("x", &Integer{Value: 7})

	assert.Equal(t, 0, table.Len())
	value, ok := table.Get(&String{Value: "x"})
	require.True(t, ok)
	assert.Equal(t, int64(7), value.(*Integer).Value)

	// Positional storage is untouched by field writes
	_, ok = table.Get(&Integer{Value: 1})
	assert.False(t, ok)
}

func TestTable_MissingKeys(t *testing.T) {
	table := NewTable()
	_, ok := table.Get(&String{Value: "missing"})
	assert.False(t, ok)
	// Non-string, non-integer keys never resolve
	_, ok = table.Get(TRUE)
	assert.False(t, ok)
}

func TestTable_ToString(t *testing.T) {
	table := NewTable()
	assert.Equal(t, "{}", table.ToString())

	table.Array = append(table.Array, &Integer{Value: 1}, &Integer{Value: 2})
	assert.Equal(t, "[1, 2]", table.ToString())

	table.SetField("k", NIL)
	assert.Equal(t, "{...}", table.ToString())
}

func TestPointer_SnapshotSemantics(t *testing.T) {
	table := NewTable()
	table.SetField("n", &Integer{Value: 1})

	pointer := NewPointer(table)

	// Mutating the original after capture is not visible through the cell
	table.SetField("n", &Integer{Value: 99})
	loaded := pointer.Load().(*Table)
	value, _ := loaded.Get(&String{Value: "n"})
	assert.Equal(t, int64(1), value.(*Integer).Value)

	// Mutating a loaded snapshot does not write back into the cell
	loaded.SetField("n", &Integer{Value: 5})
	again := pointer.Load().(*Table)
	value, _ = again.Get(&String{Value: "n"})
	assert.Equal(t, int64(1), value.(*Integer).Value)
}

func TestPointer_Store(t *testing.T) {
	pointer := NewPointer(&Integer{Value: 1})
	pointer.Store(&String{Value: "new"})
	assert.Equal(t, "new", pointer.Load().ToString())
	assert.Equal(t, "<pointer to string>", pointer.ToString())
}

func TestClone_TableIndependence(t *testing.T) {
	table := NewTable()
	inner := NewTable()
	inner.SetField("v", &Integer{Value: 1})
	table.SetField("inner", inner)
	table.Array = append(table.Array, &Integer{Value: 10})

	clone := Clone(table).(*Table)

	// Mutations on the clone stay on the clone, recursively
	clonedInner, _ := clone.Get(&String{Value: "inner"})
	clonedInner.(*Table).SetField("v", &Integer{Value: 2})
	clone.Array[0] = &Integer{Value: 20}

	originalInner, _ := table.Get(&String{Value: "inner"})
	value, _ := originalInner.(*Table).Get(&String{Value: "v"})
	assert.Equal(t, int64(1), value.(*Integer).Value)
	assert.Equal(t, int64(10), table.Array[0].(*Integer).Value)
}

func TestClone_SharesPointerCells(t *testing.T) {
	pointer := NewPointer(&Integer{Value: 1})
	table := NewTable()
	table.SetField("p", pointer)

	clone := Clone(table).(*Table)
	clonedPointer, _ := clone.Get(&String{Value: "p"})
	assert.Same(t, pointer, clonedPointer)
}

func TestClone_PreservesMetatable(t *testing.T) {
	table := NewTable()
	meta := NewTable()
	meta.SetField("__index", &String{Value: "m"})
	table.Metatable = meta

	clone := Clone(table).(*Table)
	require.NotNil(t, clone.Metatable)
	assert.NotSame(t, meta, clone.Metatable)
	value, _ := clone.Metatable.Get(&String{Value: "__index"})
	assert.Equal(t, "m", value.ToString())
}

func TestDisplayForms(t *testing.T) {
	assert.Equal(t, "42", (&Integer{Value: 42}).ToString())
	assert.Equal(t, "3.14", (&Float{Value: 3.14}).ToString())
	assert.Equal(t, "hi", (&String{Value: "hi"}).ToString())
	assert.Equal(t, "true", TRUE.ToString())
	assert.Equal(t, "nil", NIL.ToString())
	assert.Equal(t, "<fn f>", (&Function{Name: "f"}).ToString())
	assert.Equal(t, "<native fn print>", (&NativeFunction{Name: "print"}).ToString())
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "int", TypeName(&Integer{}))
	assert.Equal(t, "function", TypeName(&Function{}))
	// Native functions report as plain functions to user code
	assert.Equal(t, "function", TypeName(&NativeFunction{}))
	assert.Equal(t, "pointer", TypeName(NewPointer(NIL)))
}
