/*
File    : lux/eval/eval_tasks.go
Project : Lux language interpreter
*/
package eval

import (
	"fmt"

	"github.com/samjay22/Lux/diag"
	"github.com/samjay22/Lux/objects"
	"github.com/samjay22/Lux/parser"
	"github.com/samjay22/Lux/tasks"
	"github.com/sourcegraph/conc"
)

// evalSpawn registers a new Pending task for a call expression. The
// callee and every argument are evaluated in the current evaluator; the
// task is not queued for execution - work is demand-driven by await.
// The result is the task id as an Int.
func (e *Evaluator) evalSpawn(n *parser.SpawnExpressionNode) (objects.LuxObject, error) {
	call, ok := n.Call.(*parser.CallExpressionNode)
	if !ok {
		return nil, diag.NewRuntimeError("spawn expects a function call expression", n.Location)
	}

	callee, err := e.evalExpr(call.Callee)
	if err != nil {
		return nil, err
	}
	function, ok := callee.(*objects.Function)
	if !ok {
		return nil, diag.NewRuntimeError("spawn expects a function call", n.Location)
	}

	args := make([]objects.LuxObject, 0, len(call.Arguments))
	for _, argExpr := range call.Arguments {
		arg, err := e.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	id := e.Executor.SpawnFunction(function, args)
	return &objects.Integer{Value: int64(id)}, nil
}

// evalAwait resolves a task id or a join set. A single id runs inline
// on the current evaluator; a table of ids fans every pending task out
// onto its own goroutine over a snapshot of the store, joins them all,
// and assembles a result table mirroring the input's shape.
func (e *Evaluator) evalAwait(n *parser.AwaitExpressionNode) (objects.LuxObject, error) {
	taskValue, err := e.evalExpr(n.Task)
	if err != nil {
		return nil, err
	}

	switch v := taskValue.(type) {
	case *objects.Integer:
		return e.awaitSingle(tasks.TaskID(v.Value), n.Location)
	case *objects.Table:
		return e.awaitJoin(v, n.Location)
	}

	return nil, diag.NewRuntimeError(
		"await expects a task ID (integer) or table of task IDs", n.Location)
}

// awaitSingle resolves one task. Completed tasks yield their value,
// failed tasks fail the await, and pending tasks execute inline on this
// evaluator without any thread fan-out.
func (e *Evaluator) awaitSingle(id tasks.TaskID, loc diag.SourceLocation) (objects.LuxObject, error) {
	task, ok := e.Executor.GetTask(id)
	if !ok {
		return nil, diag.NewRuntimeError(fmt.Sprintf("Task %d not found", id), loc)
	}

	switch task.State {
	case tasks.Completed:
		return task.Result, nil
	case tasks.Failed:
		return nil, diag.NewRuntimeError(fmt.Sprintf("Task %d failed: %s", id, task.Failure), loc)
	case tasks.Pending:
		if task.Function == nil {
			return nil, diag.NewRuntimeError(fmt.Sprintf("Task %d has no function to execute", id), loc)
		}
		return e.executeTask(id, task.Function, task.Arguments)
	}

	return nil, diag.NewRuntimeError(fmt.Sprintf("Task %d is in invalid state", id), loc)
}

// awaitJoin runs every pending task of a join set in parallel. Each
// task executes on a fresh evaluator over an independent snapshot of
// this evaluator's store, sharing the executor handle; all goroutines
// are joined before results are collected. The result table mirrors the
// input's shape: positional entries in input order, named entries by
// name. Non-pending tasks pass through without re-execution. Any failed
// task aborts the join with that task's message, as does a panicking
// worker.
func (e *Evaluator) awaitJoin(set *objects.Table, loc diag.SourceLocation) (objects.LuxObject, error) {
	arrayIDs := make([]tasks.TaskID, 0, len(set.Array))
	fieldIDs := make(map[string]tasks.TaskID, len(set.Fields))

	collect := func(value objects.LuxObject) (tasks.TaskID, error) {
		idValue, ok := value.(*objects.Integer)
		if !ok {
			return 0, diag.NewRuntimeError("await table must contain only task IDs (integers)", loc)
		}
		id := tasks.TaskID(idValue.Value)
		if _, ok := e.Executor.GetTask(id); !ok {
			return 0, diag.NewRuntimeError(fmt.Sprintf("Task %d not found", id), loc)
		}
		return id, nil
	}

	for _, value := range set.Array {
		id, err := collect(value)
		if err != nil {
			return nil, err
		}
		arrayIDs = append(arrayIDs, id)
	}
	for name, value := range set.Fields {
		id, err := collect(value)
		if err != nil {
			return nil, err
		}
		fieldIDs[name] = id
	}

	// Fan pending tasks out, one goroutine each, over store snapshots.
	// WaitAndRecover joins them all and hands back the first panic.
	var wg conc.WaitGroup
	dispatch := func(id tasks.TaskID) {
		task, ok := e.Executor.GetTask(id)
		if !ok || task.State != tasks.Pending || task.Function == nil {
			return
		}
		function, arguments := task.Function, task.Arguments
		snapshot := e.Scp.Snapshot()
		wg.Go(func() {
			worker := newTaskEvaluator(snapshot, e.Executor, e.Writer)
			// Failures are recorded on the task registry; collection
			// below surfaces them in input order
			_, _ = worker.executeTask(id, function, arguments)
		})
	}
	for _, id := range arrayIDs {
		dispatch(id)
	}
	for _, id := range fieldIDs {
		dispatch(id)
	}

	if recovered := wg.WaitAndRecover(); recovered != nil {
		return nil, diag.NewRuntimeError(fmt.Sprintf("Task thread panicked: %v", recovered.Value), loc)
	}

	// Collect results into a table mirroring the input's shape
	result := objects.NewTable()
	read := func(id tasks.TaskID) (objects.LuxObject, error) {
		task, _ := e.Executor.GetTask(id)
		switch task.State {
		case tasks.Completed:
			return task.Result, nil
		case tasks.Failed:
			return nil, diag.NewRuntimeError(fmt.Sprintf("Task %d failed: %s", id, task.Failure), loc)
		}
		return nil, diag.NewRuntimeError(fmt.Sprintf("Task %d did not complete", id), loc)
	}

	for _, id := range arrayIDs {
		value, err := read(id)
		if err != nil {
			return nil, err
		}
		result.Array = append(result.Array, value)
	}
	for name, id := range fieldIDs {
		value, err := read(id)
		if err != nil {
			return nil, err
		}
		result.Fields[name] = value
	}

	return result, nil
}

// executeTask runs a task's function on this evaluator, driving the
// state machine: Running while the body executes, then Completed with
// the return value or Failed with the error message. The task's
// parameters bind positionally over a fresh scope.
func (e *Evaluator) executeTask(id tasks.TaskID, function *objects.Function, arguments []objects.LuxObject) (objects.LuxObject, error) {
	e.Executor.MarkRunning(id)

	e.pushScope()
	for i, param := range function.Params {
		if i < len(arguments) {
			e.Scp.Bind(param, arguments[i])
		} else {
			e.Scp.Bind(param, objects.NIL)
		}
	}

	if err := e.execStmts(function.Body); err != nil {
		e.Executor.MarkFailed(id, err.Error())
		e.popScope()
		return nil, err
	}

	result := objects.LuxObject(objects.NIL)
	if e.flow == flowReturn {
		result = e.returnValue
	}
	e.flow = flowNone
	e.returnValue = nil

	e.Executor.MarkCompleted(id, result)
	e.popScope()
	return result, nil
}
