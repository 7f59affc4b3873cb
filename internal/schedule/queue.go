// internal/schedule/queue.go
package schedule

import (
	"container/heap"
)

// Task is a unit of deferred work held by the Queue.
type Task struct {
	fireAt   float64
	interval float64 // > 0 для повторяющихся задач
	seq      uint64
	fn       func()
	canceled bool
	index    int
}

// Cancel prevents the task from firing again. Safe to call from inside
// the task's own callback.
func (t *Task) Cancel() {
	t.canceled = true
}

// taskHeap упорядочивает задачи по времени срабатывания
type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].fireAt != h[j].fireAt {
		return h[i].fireAt < h[j].fireAt
	}
	return h[i].seq < h[j].seq
}
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *taskHeap) Push(x interface{}) {
	task := x.(*Task)
	task.index = len(*h)
	*h = append(*h, task)
}
func (h *taskHeap) Pop() interface{} {
	old := *h
	n := len(old)
	task := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return task
}

// Queue is a simulation-time task queue. Time only moves when Advance is
// called, so a paused game holds every pending task in place.
type Queue struct {
	now   float64
	seq   uint64
	tasks taskHeap
}

// NewQueue — создаёт пустую очередь задач
func NewQueue() *Queue {
	return &Queue{}
}

// Now returns the queue's current simulation time in seconds.
func (q *Queue) Now() float64 {
	return q.now
}

// Len returns the number of pending tasks, including canceled ones that
// have not been drained yet.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// After schedules fn to run once, delay seconds from the current time.
func (q *Queue) After(delay float64, fn func()) *Task {
	return q.push(delay, 0, fn)
}

// Every schedules fn to run repeatedly with the given interval. The first
// run happens one interval from now.
func (q *Queue) Every(interval float64, fn func()) *Task {
	return q.push(interval, interval, fn)
}

func (q *Queue) push(delay, interval float64, fn func()) *Task {
	q.seq++
	task := &Task{
		fireAt:   q.now + delay,
		interval: interval,
		seq:      q.seq,
		fn:       fn,
	}
	heap.Push(&q.tasks, task)
	return task
}

// Advance moves simulation time forward by dt seconds and runs every task
// whose time has come, in firing order. While a task runs, Now reports its
// deadline. Tasks scheduled by a running callback join the same drain if
// they land inside the window.
func (q *Queue) Advance(dt float64) {
	target := q.now + dt
	for len(q.tasks) > 0 && q.tasks[0].fireAt <= target {
		task := heap.Pop(&q.tasks).(*Task)
		if task.canceled {
			continue
		}
		q.now = task.fireAt
		task.fn()
		if task.interval > 0 && !task.canceled {
			task.fireAt += task.interval
			heap.Push(&q.tasks, task)
		}
	}
	q.now = target
}

// Reschedule changes a repeating task's interval. The next firing keeps
// its already-assigned time; the new interval applies after that.
func (q *Queue) Reschedule(task *Task, interval float64) {
	task.interval = interval
}

// Clear drops every pending task.
func (q *Queue) Clear() {
	q.tasks = nil
	q.now = 0
}
