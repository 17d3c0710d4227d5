// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interp

import (
	"fmt"

	"code.hybscloud.com/kont"
)

// unhandledEffect marks a programming error inside this package: a
// performed operation no handler clause recognizes. The executor re-raises
// it instead of reporting a backend fault.
type unhandledEffect string

// stateErrorHandler handles state, attempt, and error effects.
// State ops project from or act on the guarded SessionState. Attempt ops
// evaluate a sub-computation with a fresh error context. Error ops
// short-circuit on Throw, making the first failure the whole computation's
// result.
type stateErrorHandler[A any] struct {
	st     *SessionState
	errCtx *kont.ErrorContext[InterpreterError]
}

// Dispatch implements kont.Handler for the composed handler.
// Dispatch order: State → Attempt → Error.
func (h stateErrorHandler[A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if sop, ok := op.(stateDispatcher); ok {
		return sop.DispatchState(h.st), true
	}
	if aop, ok := op.(attemptDispatcher); ok {
		return aop.DispatchAttempt(h.st), true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[InterpreterError]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[InterpreterError, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic(unhandledEffect("interp: unhandled effect in stateErrorHandler"))
}

// eval runs one Cont-world computation against st, mapping completion to
// Right and the first Throw to Left. Panics are not intercepted here: the
// executor owns the single recover boundary.
func eval[A any](st *SessionState, comp Comp[A]) kont.Either[InterpreterError, A] {
	wrapped := kont.Map[kont.Resumed, A, kont.Either[InterpreterError, A]](comp, func(a A) kont.Either[InterpreterError, A] {
		return kont.Right[InterpreterError, A](a)
	})
	var errCtx kont.ErrorContext[InterpreterError]
	h := stateErrorHandler[A]{st: st, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// evalExpr is eval for Expr-world computations.
func evalExpr[A any](st *SessionState, comp kont.Expr[A]) kont.Either[InterpreterError, A] {
	wrapped := kont.ExprMap(comp, func(a A) kont.Either[InterpreterError, A] {
		return kont.Right[InterpreterError, A](a)
	})
	var errCtx kont.ErrorContext[InterpreterError]
	h := stateErrorHandler[A]{st: st, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}

// describeFault renders a recovered panic value as backend fault text.
func describeFault(r any) string {
	switch v := r.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
