// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interp

import (
	"code.hybscloud.com/kont"
)

// ReadState projects a derived value out of the current SessionState.
// Fuses Perform(Read[A]{Proj: proj}).
func ReadState[A any](proj func(*SessionState) A) Comp[A] {
	return kont.Perform(Read[A]{Proj: proj})
}

// LiftEffect runs an arbitrary external side effect and incorporates its
// result. Fuses Perform(Effect[A]{Action: action}).
func LiftEffect[A any](action func() A) Comp[A] {
	return kont.Perform(Effect[A]{Action: action})
}

// Fail short-circuits the remaining steps with the given typed failure.
// Delegates to kont's error effect.
func Fail[A any](err InterpreterError) Comp[A] {
	return kont.ThrowError[InterpreterError, A](err)
}

// Recover runs body and, if it short-circuits, invokes handler with the
// failure to produce a replacement computation to continue from. A body
// that completes normally passes through untouched; the handler is never
// invoked for backend faults, which only the executor intercepts.
// Fuses Perform(Attempt[A]{Body: body}) + Bind + Either branch.
func Recover[A any](body Comp[A], handler func(InterpreterError) Comp[A]) Comp[A] {
	return kont.Bind(kont.Perform(Attempt[A]{Body: body}), func(e kont.Either[InterpreterError, A]) Comp[A] {
		if ierr, ok := e.GetLeft(); ok {
			return handler(ierr)
		}
		v, _ := e.GetRight()
		return kont.Pure(v)
	})
}

// WithEngine lifts an engine action into a session computation.
// Fuses ReadState (engine projection) + LiftEffect.
func WithEngine[A any](action func(Engine) A) Comp[A] {
	return kont.Bind(ReadState(func(st *SessionState) Engine { return st.engine }), func(eng Engine) Comp[A] {
		return LiftEffect(func() A { return action(eng) })
	})
}

// attemptResult carries an engine action's outcome between fused steps.
type attemptResult[A any] struct {
	value A
	ok    bool
}

// MayFail runs an engine action that reports success or failure. The sink
// is cleared before the attempt; on failure the computation short-circuits
// with *CompilationFailed carrying exactly the diagnostics the backend
// reported during that attempt, in report order.
func MayFail[A any](action func(Engine) (A, bool)) Comp[A] {
	return kont.Bind(ReadState(func(st *SessionState) *SessionState { return st }), func(st *SessionState) Comp[A] {
		return kont.Bind(LiftEffect(func() attemptResult[A] {
			st.diags.reset()
			v, ok := action(st.engine)
			return attemptResult[A]{value: v, ok: ok}
		}), func(r attemptResult[A]) Comp[A] {
			if !r.ok {
				return Fail[A](&CompilationFailed{Diagnostics: st.diags.drain()})
			}
			return kont.Pure(r.value)
		})
	})
}
