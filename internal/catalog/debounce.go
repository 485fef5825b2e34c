package catalog

import "time"

// DefaultSearchDelay is the quiet period before a search term is applied.
const DefaultSearchDelay = 300 * time.Millisecond

// Ticket identifies one pushed value of a Debouncer.
type Ticket uint64

// Debouncer holds at most one pending value. Each Push supersedes the
// previous one, so only the latest ticket can ever be taken. The caller
// owns the delay: schedule a wake-up per ticket and call Take when it fires.
type Debouncer[T any] struct {
	seq     Ticket
	pending bool
	value   T
}

// Push replaces any pending value and returns its ticket.
func (d *Debouncer[T]) Push(v T) Ticket {
	d.seq++
	d.value = v
	d.pending = true
	return d.seq
}

// Take returns the pending value if t is the latest ticket and consumes it.
func (d *Debouncer[T]) Take(t Ticket) (T, bool) {
	var zero T
	if !d.pending || t != d.seq {
		return zero, false
	}
	v := d.value
	d.value = zero
	d.pending = false
	return v, true
}

// Cancel drops the pending value; outstanding tickets become stale.
func (d *Debouncer[T]) Cancel() {
	var zero T
	d.seq++
	d.value = zero
	d.pending = false
}

// Pending reports whether a value is waiting.
func (d *Debouncer[T]) Pending() bool {
	return d.pending
}
