package controller

import "time"

// Timer is a scheduled callback that can be canceled. Stop must be safe to
// call more than once and after the callback has run.
type Timer interface {
	Stop() bool
}

// Scheduler runs f on its own goroutine once d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// deletionTimers maps a todo ID to its pending deferred deletion. There is at
// most one live handle per ID. Callers hold the controller's mutex.
type deletionTimers struct {
	seq     uint64
	pending map[string]pendingDeletion
}

type pendingDeletion struct {
	seq   uint64
	timer Timer
}

func newDeletionTimers() deletionTimers {
	return deletionTimers{pending: make(map[string]pendingDeletion)}
}

// schedule replaces any pending deletion for id. fire receives the sequence
// number it must present to claim.
func (d *deletionTimers) schedule(s Scheduler, id string, delay time.Duration, fire func(seq uint64)) {
	d.cancel(id)
	d.seq++
	seq := d.seq
	d.pending[id] = pendingDeletion{seq: seq, timer: s.AfterFunc(delay, func() { fire(seq) })}
}

// cancel stops the pending deletion for id. Canceling an absent or already
// fired timer is a no-op.
func (d *deletionTimers) cancel(id string) {
	if p, ok := d.pending[id]; ok {
		p.timer.Stop()
		delete(d.pending, id)
	}
}

// claim removes the entry for id only if it still belongs to the timer with
// the given sequence number. A replaced or canceled timer loses its claim.
func (d *deletionTimers) claim(id string, seq uint64) bool {
	p, ok := d.pending[id]
	if !ok || p.seq != seq {
		return false
	}
	delete(d.pending, id)
	return true
}

func (d *deletionTimers) ids() map[string]bool {
	out := make(map[string]bool, len(d.pending))
	for id := range d.pending {
		out[id] = true
	}
	return out
}

func (d *deletionTimers) cancelAll() {
	for id := range d.pending {
		d.cancel(id)
	}
}

// undoNotice is the single-slot undo prompt. Opening it for a new todo
// replaces the previous binding.
type undoNotice struct {
	seq   uint64
	id    string
	text  string
	open  bool
	timer Timer
}

// show binds the notice to id and arms its auto-dismiss timer.
func (u *undoNotice) show(s Scheduler, id, text string, timeout time.Duration, dismiss func(seq uint64)) {
	u.close()
	u.seq++
	seq := u.seq
	u.id, u.text, u.open = id, text, true
	u.timer = s.AfterFunc(timeout, func() { dismiss(seq) })
}

func (u *undoNotice) close() {
	if u.timer != nil {
		u.timer.Stop()
		u.timer = nil
	}
	u.id, u.text, u.open = "", "", false
}

// closeIf closes the notice when it is bound to id.
func (u *undoNotice) closeIf(id string) {
	if u.open && u.id == id {
		u.close()
	}
}

// expire closes the notice if the auto-dismiss timer identified by seq is
// still the current one.
func (u *undoNotice) expire(seq uint64) bool {
	if !u.open || u.seq != seq {
		return false
	}
	u.timer = nil
	u.close()
	return true
}
