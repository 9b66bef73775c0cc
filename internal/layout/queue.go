package layout

// FrameQueue is a cooperative task queue drained once per animation-style
// scheduling opportunity. Everything runs on the host's single goroutine;
// the queue only defers work until the next drain, it introduces no
// concurrency. Tasks enqueued while a drain is running execute on the next
// drain, which is what bounds batched event delivery to once per cycle.
type FrameQueue struct {
	tasks []func()
}

// Enqueue schedules fn for the next drain.
func (q *FrameQueue) Enqueue(fn func()) {
	q.tasks = append(q.tasks, fn)
}

// Len returns the number of tasks waiting for the next drain.
func (q *FrameQueue) Len() int { return len(q.tasks) }

// Drain runs every task that was queued before the drain started and
// returns how many ran.
func (q *FrameQueue) Drain() int {
	tasks := q.tasks
	q.tasks = nil
	for _, fn := range tasks {
		fn()
	}
	return len(tasks)
}
