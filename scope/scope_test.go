/*
File    : lux/scope/scope_test.go
Project : Lux language interpreter
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samjay22/Lux/objects"
)

func TestScope_LookUpWalksOutward(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &objects.Integer{Value: 1})

	inner := NewScope(global)
	value, ok := inner.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), value.(*objects.Integer).Value)

	_, ok = inner.LookUp("missing")
	assert.False(t, ok)
}

func TestScope_ShadowAndRestore(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &objects.Integer{Value: 1})

	inner := NewScope(global)
	inner.Bind("x", &objects.String{Value: "shadow"})

	value, _ := inner.LookUp("x")
	assert.Equal(t, "shadow", value.ToString())

	// Leaving the inner scope restores the outer binding exactly
	value, _ = global.LookUp("x")
	assert.Equal(t, int64(1), value.(*objects.Integer).Value)
}

func TestScope_AssignMutatesInnermostBinding(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &objects.Integer{Value: 1})
	inner := NewScope(global)

	ok := inner.Assign("x", &objects.Integer{Value: 2})
	require.True(t, ok)

	// The global binding was the innermost one holding x
	value, _ := global.LookUp("x")
	assert.Equal(t, int64(2), value.(*objects.Integer).Value)
}

func TestScope_AssignPrefersShadowingScope(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &objects.Integer{Value: 1})
	inner := NewScope(global)
	inner.Bind("x", &objects.Integer{Value: 10})

	inner.Assign("x", &objects.Integer{Value: 20})

	innerValue, _ := inner.Variables["x"]
	assert.Equal(t, int64(20), innerValue.(*objects.Integer).Value)
	globalValue, _ := global.LookUp("x")
	assert.Equal(t, int64(1), globalValue.(*objects.Integer).Value)
}

func TestScope_AssignUnboundFails(t *testing.T) {
	global := NewScope(nil)
	assert.False(t, global.Assign("never", objects.NIL))
}

func TestScope_SnapshotIsolatesTables(t *testing.T) {
	global := NewScope(nil)
	table := objects.NewTable()
	table.SetField("n", &objects.Integer{Value: 1})
	global.Bind("t", table)

	inner := NewScope(global)
	snapshot := inner.Snapshot()

	// The snapshot sees the chain
	value, ok := snapshot.LookUp("t")
	require.True(t, ok)

	// Mutations through the snapshot stay invisible to the original
	value.(*objects.Table).SetField("n", &objects.Integer{Value: 99})
	original, _ := global.LookUp("t")
	originalValue, _ := original.(*objects.Table).Get(&objects.String{Value: "n"})
	assert.Equal(t, int64(1), originalValue.(*objects.Integer).Value)
}

func TestScope_SnapshotCopiesWholeChain(t *testing.T) {
	global := NewScope(nil)
	global.Bind("g", &objects.Integer{Value: 1})
	inner := NewScope(global)
	inner.Bind("i", &objects.Integer{Value: 2})

	snapshot := inner.Snapshot()

	// Rebinding in the snapshot does not touch the originals
	snapshot.Bind("i", &objects.Integer{Value: 20})
	snapshot.Parent.Bind("g", &objects.Integer{Value: 10})

	innerValue, _ := inner.LookUp("i")
	assert.Equal(t, int64(2), innerValue.(*objects.Integer).Value)
	globalValue, _ := global.LookUp("g")
	assert.Equal(t, int64(1), globalValue.(*objects.Integer).Value)
}
