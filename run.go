// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interp

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// RunEither acquires the session mutex, runs one computation to completion
// against the guarded state, and releases the mutex unconditionally.
// Returns Right on success, Left on typed failure or backend fault.
//
// The diagnostic buffer is drained and cleared at the start of every run,
// so diagnostics never leak between unrelated operations. A panic escaping
// the computation (a backend-level fault) is caught here — the single catch
// boundary in the package — and converted to *BackendFault; the mutex is
// still released. Two RunEither calls on the same Session are fully
// serialized; the order between concurrent callers is unspecified. No
// timeout or cancellation is provided: a computation that never returns
// blocks all future runs on the Session.
func RunEither[A any](s *Session, comp Comp[A]) kont.Either[InterpreterError, A] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return runLocked(&s.state, comp)
}

// Run is RunEither with the result collapsed to Go's (value, error) form.
// The returned error, when non-nil, is always an InterpreterError variant.
func Run[A any](s *Session, comp Comp[A]) (A, error) {
	return collapse(RunEither(s, comp))
}

// TryRunEither is RunEither without blocking: when the session mutex is
// already held it returns iox.ErrWouldBlock instead of waiting.
func TryRunEither[A any](s *Session, comp Comp[A]) (kont.Either[InterpreterError, A], error) {
	if !s.mu.TryLock() {
		var zero kont.Either[InterpreterError, A]
		return zero, iox.ErrWouldBlock
	}
	defer s.mu.Unlock()
	return runLocked(&s.state, comp), nil
}

// TryRun is TryRunEither collapsed to (value, error) form. The returned
// error is iox.ErrWouldBlock when the session is busy, otherwise nil or an
// InterpreterError variant.
func TryRun[A any](s *Session, comp Comp[A]) (A, error) {
	e, err := TryRunEither(s, comp)
	if err != nil {
		var zero A
		return zero, err
	}
	return collapse(e)
}

// RunEitherExpr is RunEither for Expr-world computations, evaluated with
// the defunctionalized trampoline under the same lock discipline.
func RunEitherExpr[A any](s *Session, comp kont.Expr[A]) kont.Either[InterpreterError, A] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return runLockedExpr(&s.state, comp)
}

// RunExpr is RunEitherExpr collapsed to (value, error) form.
func RunExpr[A any](s *Session, comp kont.Expr[A]) (A, error) {
	return collapse(RunEitherExpr(s, comp))
}

// runLocked evaluates comp with the mutex already held, converting escaped
// panics to *BackendFault. Internal unhandled-effect panics are re-raised:
// they are bugs in this package, not backend conditions.
func runLocked[A any](st *SessionState, comp Comp[A]) (result kont.Either[InterpreterError, A]) {
	st.diags.reset()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if ue, ok := r.(unhandledEffect); ok {
			panic(ue)
		}
		result = kont.Left[InterpreterError, A](&BackendFault{Description: describeFault(r)})
	}()
	return eval(st, comp)
}

// runLockedExpr is runLocked for Expr-world computations.
func runLockedExpr[A any](st *SessionState, comp kont.Expr[A]) (result kont.Either[InterpreterError, A]) {
	st.diags.reset()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if ue, ok := r.(unhandledEffect); ok {
			panic(ue)
		}
		result = kont.Left[InterpreterError, A](&BackendFault{Description: describeFault(r)})
	}()
	return evalExpr(st, comp)
}

// collapse maps Right to (value, nil) and Left to (zero, error).
func collapse[A any](e kont.Either[InterpreterError, A]) (A, error) {
	if ierr, ok := e.GetLeft(); ok {
		var zero A
		return zero, ierr
	}
	v, _ := e.GetRight()
	return v, nil
}
