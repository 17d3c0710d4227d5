// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interp

import (
	"code.hybscloud.com/kont"
)

// Comp is a session computation: a composable description of session-scoped,
// possibly side-effecting, possibly failing work. It is an alias for
// kont.Eff, so kont.Pure, kont.Bind, kont.Map, and kont.Then compose
// computations directly. Every higher-level engine operation is built from
// Comp values and executed with Run.
type Comp[A any] = kont.Eff[A]

// stateDispatcher is the structural interface for operations evaluated
// against the guarded SessionState. Dispatch is synchronous and never
// blocks; it runs while the session mutex is held.
type stateDispatcher interface {
	DispatchState(st *SessionState) kont.Resumed
}

// attemptDispatcher is the structural interface for operations that run a
// sub-computation with its own error context.
type attemptDispatcher interface {
	DispatchAttempt(st *SessionState) kont.Resumed
}

// Read is the effect operation for projecting a value out of the current
// SessionState without mutating it.
// Perform(Read[A]{Proj: f}) resumes with f applied to the guarded state.
type Read[A any] struct {
	kont.Phantom[A]
	Proj func(*SessionState) A
}

// DispatchState handles Read against the guarded state.
func (r Read[A]) DispatchState(st *SessionState) kont.Resumed {
	return r.Proj(st)
}

// Effect is the effect operation for an arbitrary external side effect.
// Perform(Effect[A]{Action: f}) resumes with f's result. No error handling
// applies here: a panic escaping Action propagates to the executor's
// recover boundary and becomes a *BackendFault.
type Effect[A any] struct {
	kont.Phantom[A]
	Action func() A
}

// DispatchState handles Effect by running the action.
func (e Effect[A]) DispatchState(_ *SessionState) kont.Resumed {
	return e.Action()
}

// Attempt is the effect operation for running Body with a fresh error
// context. It resumes with Either[InterpreterError, A]: Right on
// completion, Left with the first short-circuiting failure. Panics are not
// intercepted; the executor owns the single recover boundary.
type Attempt[A any] struct {
	kont.Phantom[kont.Either[InterpreterError, A]]
	Body Comp[A]
}

// DispatchAttempt handles Attempt by evaluating Body against the same
// guarded state.
func (a Attempt[A]) DispatchAttempt(st *SessionState) kont.Resumed {
	return eval[A](st, a.Body)
}
