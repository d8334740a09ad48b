/*
File    : lux/eval/eval_tasks_test.go
Project : Lux language interpreter
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samjay22/Lux/parser"
	"github.com/samjay22/Lux/tasks"
)

// evalWith interprets a source on a fresh evaluator and returns it for
// registry inspection alongside the captured output.
func evalWith(t *testing.T, src string) (*Evaluator, string, error) {
	t.Helper()
	root, err := parser.ParseSource(src, "")
	require.NoError(t, err)

	var buf bytes.Buffer
	evaluator := NewEvaluator()
	evaluator.SetWriter(&buf)
	err = evaluator.Interpret(root)
	return evaluator, buf.String(), err
}

func TestTasks_SpawnReturnsDenseIDs(t *testing.T) {
	_, out, err := evalWith(t, `
		fn work(k) { return k }
		print(spawn work(1))
		print(spawn work(2))
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n", out)
}

func TestTasks_SpawnDoesNotRun(t *testing.T) {
	evaluator, out, err := evalWith(t, `
		fn work() { print("ran") return 1 }
		local a = spawn work()
	`)
	require.NoError(t, err)
	// Spawning never starts work
	assert.Equal(t, "", out)

	task, ok := evaluator.Executor.GetTask(0)
	require.True(t, ok)
	assert.Equal(t, tasks.Pending, task.State)
}

func TestTasks_SpawnRequiresFunctionCall(t *testing.T) {
	_, _, err := evalWith(t, `local id = spawn print("x")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spawn expects a function call")
}

func TestTasks_SingleAwaitRunsInline(t *testing.T) {
	evaluator, out, err := evalWith(t, `
		fn work(k) { return k * k }
		local a = spawn work(7)
		print(await a)
	`)
	require.NoError(t, err)
	assert.Equal(t, "49\n", out)

	task, _ := evaluator.Executor.GetTask(0)
	assert.Equal(t, tasks.Completed, task.State)
}

func TestTasks_AwaitCompletedPassesThrough(t *testing.T) {
	_, out, err := evalWith(t, `
		fn work() { print("ran") return 5 }
		local a = spawn work()
		print(await a)
		print(await a)
	`)
	require.NoError(t, err)
	// The body ran once; the second await reads the recorded result
	assert.Equal(t, "ran\n5\n5\n", out)
}

func TestTasks_AwaitUnknownTask(t *testing.T) {
	_, _, err := evalWith(t, `await 99`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Task 99 not found")
}

func TestTasks_AwaitWrongType(t *testing.T) {
	_, _, err := evalWith(t, `await "task"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "await expects a task ID")
}

func TestTasks_AwaitFailedTask(t *testing.T) {
	_, _, err := evalWith(t, `
		fn bad() { return 1 / 0 }
		local a = spawn bad()
		await a
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Division by zero")
}

func TestTasks_JoinPreservesPositionalOrder(t *testing.T) {
	_, out, err := evalWith(t, `
		fn work(k) { return k * k }
		local a = spawn work(3)
		local b = spawn work(4)
		local r = await { a, b }
		print(r[1])
		print(r[2])
	`)
	require.NoError(t, err)
	assert.Equal(t, "9\n16\n", out)
}

func TestTasks_JoinResultMirrorsShape(t *testing.T) {
	_, out, err := evalWith(t, `
		fn work(k) { return k + 1 }
		local a = spawn work(1)
		local b = spawn work(2)
		local c = spawn work(3)
		local r = await { a, b, named = c }
		print(#r)
		print(r[1])
		print(r[2])
		print(r.named)
	`)
	require.NoError(t, err)
	assert.Equal(t, "2\n2\n3\n4\n", out)
}

func TestTasks_JoinOverManyTasks(t *testing.T) {
	_, out, err := evalWith(t, `
		fn work(k) { return k * 10 }
		local ids = {}
		for local i = 1; i <= 8; i = i + 1 {
			ids[i] = spawn work(i)
		}
		local r = await ids
		local total = 0
		for local i = 1; i <= 8; i = i + 1 {
			total = total + r[i]
		}
		print(total)
	`)
	require.NoError(t, err)
	assert.Equal(t, "360\n", out)
}

func TestTasks_EmptyJoinReturnsEmptyTable(t *testing.T) {
	_, out, err := evalWith(t, `
		local r = await {}
		print(#r)
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestTasks_JoinAbortsOnFailedTask(t *testing.T) {
	_, _, err := evalWith(t, `
		fn good() { return 1 }
		fn bad() { return 1 / 0 }
		local a = spawn good()
		local b = spawn bad()
		await { a, b }
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed")
}

func TestTasks_JoinRejectsNonIntegerEntries(t *testing.T) {
	_, _, err := evalWith(t, `
		fn work() { return 1 }
		local a = spawn work()
		await { a, "not an id" }
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must contain only task IDs")
}

func TestTasks_JoinIsolatesStoreMutations(t *testing.T) {
	_, out, err := evalWith(t, `
		local shared = {count = 0}
		fn bump() {
			shared.count = shared.count + 1
			return shared.count
		}
		local a = spawn bump()
		local b = spawn bump()
		local r = await { a, b }
		print(shared.count)
		print(r[1])
		print(r[2])
	`)
	require.NoError(t, err)
	// Each task mutated its own snapshot; the parent's table is
	// untouched and both tasks saw count start at zero
	assert.Equal(t, "0\n1\n1\n", out)
}

func TestTasks_NonPendingTasksPassThroughJoin(t *testing.T) {
	_, out, err := evalWith(t, `
		fn work(k) { print("ran") return k }
		local a = spawn work(5)
		print(await a)
		local r = await { a }
		print(r[1])
	`)
	require.NoError(t, err)
	// The body ran once inline; the join reused the completed result
	assert.Equal(t, "ran\n5\n5\n", out)
}

func TestTasks_StateMonotonicity(t *testing.T) {
	evaluator, _, err := evalWith(t, `
		fn work() { return 1 }
		local a = spawn work()
		await a
		await a
	`)
	require.NoError(t, err)

	// The terminal state never transitions further
	task, _ := evaluator.Executor.GetTask(0)
	assert.Equal(t, tasks.Completed, task.State)
}

func TestTasks_AnonymousFunctionTask(t *testing.T) {
	_, out, err := evalWith(t, `
		local f = fn(x) { return x + 100 }
		local a = spawn f(1)
		print(await a)
	`)
	require.NoError(t, err)
	assert.Equal(t, "101\n", out)
}
