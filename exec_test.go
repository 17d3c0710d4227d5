// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interp_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/interp"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// TestRunMutualExclusion proves that computation bodies on one session
// never overlap: a counter incremented on entry and decremented on exit
// must never exceed 1.
func TestRunMutualExclusion(t *testing.T) {
	s, _ := newTestSession(t)

	const workers = 8
	const iters = 25

	var active atomix.Uint32
	var overlaps atomix.Uint32

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				interp.Run(s, interp.LiftEffect(func() struct{} {
					if active.Add(1) > 1 {
						overlaps.Add(1)
					}
					time.Sleep(50 * time.Microsecond)
					active.Add(^uint32(0)) // decrement
					return struct{}{}
				}))
			}
		}()
	}
	wg.Wait()

	if n := overlaps.Load(); n != 0 {
		t.Fatalf("observed %d overlapping run bodies", n)
	}
}

func TestRunBlocksUntilRelease(t *testing.T) {
	s, _ := newTestSession(t)

	hold := make(chan struct{})
	started := make(chan struct{})
	first := make(chan struct{})
	go func() {
		interp.Run(s, interp.LiftEffect(func() struct{} {
			close(started)
			<-hold
			return struct{}{}
		}))
		close(first)
	}()
	<-started

	second := make(chan int, 1)
	go func() {
		v, err := interp.Run(s, kont.Pure(7))
		if err != nil {
			t.Errorf("second run: %v", err)
		}
		second <- v
	}()

	select {
	case <-second:
		t.Fatal("second run completed while first held the session")
	case <-time.After(20 * time.Millisecond):
	}

	close(hold)
	<-first
	if v := <-second; v != 7 {
		t.Fatalf("second run got %d, want 7", v)
	}
}

func TestTryRunWouldBlock(t *testing.T) {
	s, _ := newTestSession(t)

	hold := make(chan struct{})
	started := make(chan struct{})
	first := make(chan struct{})
	go func() {
		interp.Run(s, interp.LiftEffect(func() struct{} {
			close(started)
			<-hold
			return struct{}{}
		}))
		close(first)
	}()
	<-started

	if _, err := interp.TryRun(s, kont.Pure(1)); !errors.Is(err, iox.ErrWouldBlock) {
		t.Fatalf("busy TryRun got %v, want iox.ErrWouldBlock", err)
	}

	close(hold)
	<-first

	v, err := interp.TryRun(s, kont.Pure(1))
	if err != nil {
		t.Fatalf("idle TryRun: %v", err)
	}
	if v != 1 {
		t.Fatalf("idle TryRun got %d, want 1", v)
	}
}

func TestTryRunReportsTypedFailure(t *testing.T) {
	s, _ := newTestSession(t)
	_, err := interp.TryRun(s, interp.Fail[int](&interp.NotAllowed{Detail: "x"}))
	var na *interp.NotAllowed
	if !errors.As(err, &na) {
		t.Fatalf("expected *NotAllowed, got %T: %v", err, err)
	}
}

func TestRunEitherRight(t *testing.T) {
	s, _ := newTestSession(t)
	e := interp.RunEither(s, kont.Pure(5))
	if !e.IsRight() {
		t.Fatal("expected Right")
	}
	v, _ := e.GetRight()
	if v != 5 {
		t.Fatalf("got %d, want 5", v)
	}
}

func TestRunEitherLeft(t *testing.T) {
	s, _ := newTestSession(t)
	e := interp.RunEither(s, interp.Fail[int](&interp.UnknownError{Detail: "d"}))
	ierr, ok := e.GetLeft()
	if !ok {
		t.Fatal("expected Left")
	}
	ue, ok := ierr.(*interp.UnknownError)
	if !ok {
		t.Fatalf("expected *UnknownError, got %T", ierr)
	}
	if ue.Detail != "d" {
		t.Fatalf("detail got %q, want %q", ue.Detail, "d")
	}
}
