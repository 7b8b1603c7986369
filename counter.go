package group

import "sync/atomic"

// CountingOps Wraps another operations type and increases global counters, for
// tests and operation budgeting.
//
// Counting adds cross-goroutine atomic traffic; do not use on hot paths.
type CountingOps[E any, O Ops[E]] struct{}

var (
	counterAdd    atomic.Uint64
	counterDouble atomic.Uint64
	counterNegate atomic.Uint64
	counterSelect atomic.Uint64
	counterEqual  atomic.Uint64
)

func CountingOpsReset() {
	counterAdd.Store(0)
	counterDouble.Store(0)
	counterNegate.Store(0)
	counterSelect.Store(0)
	counterEqual.Store(0)
}

func CountingOpsReport(N int, f func(v float64, metric string)) {
	report := func(v uint64, metric string) {
		if v == 0 {
			return
		}
		if v%uint64(N) == 0 {
			f(float64(v/uint64(N)), metric+"/op")
			return
		}
		f(float64(v)/float64(N), metric+"/op")
	}

	report(counterAdd.Load(), "Add")
	report(counterDouble.Load(), "Double")
	report(counterNegate.Load(), "Negate")
	report(counterSelect.Load(), "Select")
	report(counterEqual.Load(), "Equal")
}

func (e CountingOps[E, O]) SetIdentity(v *E) *E {
	var op O
	return op.SetIdentity(v)
}

func (e CountingOps[E, O]) Set(v, p *E) *E {
	var op O
	return op.Set(v, p)
}

func (e CountingOps[E, O]) Add(v, p, q *E) *E {
	counterAdd.Add(1)
	var op O
	return op.Add(v, p, q)
}

func (e CountingOps[E, O]) Double(v, p *E) *E {
	counterDouble.Add(1)
	var op O
	return op.Double(v, p)
}

func (e CountingOps[E, O]) Negate(v, p *E) *E {
	counterNegate.Add(1)
	var op O
	return op.Negate(v, p)
}

func (e CountingOps[E, O]) ConditionalAssign(v, p *E, choice uint64) *E {
	counterSelect.Add(1)
	var op O
	return op.ConditionalAssign(v, p, choice)
}

func (e CountingOps[E, O]) Equal(p, q *E) uint64 {
	counterEqual.Add(1)
	var op O
	return op.Equal(p, q)
}

func (e CountingOps[E, O]) IsIdentity(p *E) uint64 {
	var op O
	return op.IsIdentity(p)
}

func (e CountingOps[E, O]) ElementSize() uintptr {
	var op O
	return op.ElementSize()
}
