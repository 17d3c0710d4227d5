// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interp

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Tap streams diagnostics to an observer while computations run, without
// waiting for the run to finish. Transport is a bounded lock-free SPSC
// queue: the single producer is the diagnostic sink (under the session
// mutex), the single consumer must be one observer goroutine.
//
// The Tap is lossy: when the observer lags behind the queue capacity,
// further diagnostics are dropped and counted rather than blocking the
// backend's log callback. The authoritative record stays in the session's
// diagnostic buffer.
type Tap struct {
	q       lfq.SPSC[Diagnostic]
	slot    Diagnostic
	dropped atomix.Uint32
}

// newTap creates a Tap with the given queue capacity.
func newTap(capacity int) *Tap {
	t := &Tap{}
	t.q.Init(capacity)
	return t
}

// offer enqueues d without blocking. Producer side only: the caller holds
// the session mutex. Drops d when the queue is full.
func (t *Tap) offer(d Diagnostic) {
	t.slot = d
	if err := t.q.Enqueue(&t.slot); err != nil {
		t.dropped.Add(1)
	}
}

// Next returns the next diagnostic without blocking.
// Returns iox.ErrWouldBlock when no diagnostic is pending.
func (t *Tap) Next() (Diagnostic, error) {
	return t.q.Dequeue()
}

// Wait blocks until a diagnostic arrives, backing off adaptively
// (iox.Backoff) while the queue is empty.
func (t *Tap) Wait() Diagnostic {
	var bo iox.Backoff
	for {
		d, err := t.q.Dequeue()
		if err == nil {
			return d
		}
		bo.Wait()
	}
}

// Dropped reports how many diagnostics were discarded because the observer
// lagged behind the queue capacity.
func (t *Tap) Dropped() uint32 {
	return t.dropped.Load()
}
