/*
File    : lux/tasks/executor.go
Project : Lux language interpreter
*/
package tasks

import (
	"sync"

	"github.com/gammazero/deque"
	"github.com/samjay22/Lux/objects"
	"github.com/samjay22/Lux/parser"
)

// Executor is the shared task registry. It holds the task vector
// indexed by id, a FIFO ready queue, and the next-id counter, each
// behind its own mutual-exclusion lock so accesses stay fine-grained.
// Critical sections never nest and never hold across user-code
// execution.
//
// Evaluators share one executor through a common pointer: the root
// evaluator creates it and every join-thread evaluator receives the
// same handle.
type Executor struct {
	tasksMu sync.Mutex
	tasks   []*Task

	queueMu    sync.Mutex
	readyQueue deque.Deque[TaskID]

	idMu   sync.Mutex
	nextID TaskID
}

// NewExecutor creates an empty executor.
func NewExecutor() *Executor {
	return &Executor{tasks: make([]*Task, 0)}
}

// allocateID hands out the next dense task id.
func (ex *Executor) allocateID() TaskID {
	ex.idMu.Lock()
	defer ex.idMu.Unlock()
	id := ex.nextID
	ex.nextID++
	return id
}

// Spawn registers a Pending task around a plain statement body and
// enqueues it on the ready queue.
func (ex *Executor) Spawn(name string, body []parser.StatementNode) TaskID {
	id := ex.allocateID()
	task := NewTask(id, name, body)

	ex.tasksMu.Lock()
	ex.tasks = append(ex.tasks, task)
	ex.tasksMu.Unlock()

	ex.queueMu.Lock()
	ex.readyQueue.PushBack(id)
	ex.queueMu.Unlock()

	return id
}

// SpawnFunction registers a Pending task around a resolved function and
// its evaluated arguments. Function tasks are not enqueued: execution
// is demand-driven by await.
func (ex *Executor) SpawnFunction(function *objects.Function, arguments []objects.LuxObject) TaskID {
	id := ex.allocateID()
	task := NewFunctionTask(id, function, arguments)

	ex.tasksMu.Lock()
	ex.tasks = append(ex.tasks, task)
	ex.tasksMu.Unlock()

	return id
}

// GetTask returns a copy of the task with the given id. The copy keeps
// callers from reading registry state without the lock.
func (ex *Executor) GetTask(id TaskID) (Task, bool) {
	ex.tasksMu.Lock()
	defer ex.tasksMu.Unlock()
	for _, task := range ex.tasks {
		if task.ID == id {
			return *task, true
		}
	}
	return Task{}, false
}

// MarkRunning transitions a task to Running.
func (ex *Executor) MarkRunning(id TaskID) {
	ex.tasksMu.Lock()
	defer ex.tasksMu.Unlock()
	for _, task := range ex.tasks {
		if task.ID == id {
			task.State = Running
			return
		}
	}
}

// MarkCompleted transitions a task to Completed with its result value.
func (ex *Executor) MarkCompleted(id TaskID, result objects.LuxObject) {
	ex.tasksMu.Lock()
	defer ex.tasksMu.Unlock()
	for _, task := range ex.tasks {
		if task.ID == id {
			task.State = Completed
			task.Result = result
			return
		}
	}
}

// MarkFailed transitions a task to Failed with its failure message.
func (ex *Executor) MarkFailed(id TaskID, message string) {
	ex.tasksMu.Lock()
	defer ex.tasksMu.Unlock()
	for _, task := range ex.tasks {
		if task.ID == id {
			task.State = Failed
			task.Failure = message
			return
		}
	}
}

// NextReady pops the next id off the ready queue.
func (ex *Executor) NextReady() (TaskID, bool) {
	ex.queueMu.Lock()
	defer ex.queueMu.Unlock()
	if ex.readyQueue.Len() == 0 {
		return 0, false
	}
	return ex.readyQueue.PopFront(), true
}

// AllComplete reports whether the ready queue is drained and every
// registered task has reached a terminal state.
func (ex *Executor) AllComplete() bool {
	ex.queueMu.Lock()
	queued := ex.readyQueue.Len()
	ex.queueMu.Unlock()
	if queued > 0 {
		return false
	}

	ex.tasksMu.Lock()
	defer ex.tasksMu.Unlock()
	for _, task := range ex.tasks {
		if task.State != Completed && task.State != Failed {
			return false
		}
	}
	return true
}

// Clear drops every task and queued id.
func (ex *Executor) Clear() {
	ex.tasksMu.Lock()
	ex.tasks = ex.tasks[:0]
	ex.tasksMu.Unlock()

	ex.queueMu.Lock()
	ex.readyQueue.Clear()
	ex.queueMu.Unlock()
}
