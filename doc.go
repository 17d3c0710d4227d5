// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package interp provides a thread-safe session abstraction for driving an
// external compiler engine programmatically, via algebraic effects on
// [code.hybscloud.com/kont].
//
// A session is one isolated instance of the backend engine plus its
// configuration and diagnostic state. Work against a session is described
// as a composable [Comp] and executed exclusively by [Run].
//
// # Architecture
//
//   - Session: [New] constructs an engine session through a [Backend],
//     installs the diagnostic sink as the engine's log handler, and wraps
//     the state in a mutex. The [Session] is the unit of mutual exclusion.
//   - Computation: [Comp] combines read-only state access ([ReadState]),
//     external side effects ([LiftEffect]), and short-circuiting typed
//     failure ([Fail], recovered with [Recover]) in a single effect type.
//   - Execution: [Run] and [RunEither] acquire the mutex, evaluate one
//     computation to completion, translate escaped backend panics into
//     [*BackendFault], and release the mutex unconditionally. [TryRun]
//     returns [code.hybscloud.com/iox.ErrWouldBlock] instead of waiting.
//   - Error Handling: failures form the closed [InterpreterError] taxonomy
//     ([*UnknownError], [*CompilationFailed], [*NotAllowed],
//     [*BackendFault]); callers never see raw backend panics.
//   - Diagnostics: messages the engine reports through its log callback are
//     buffered per run in report order; [MayFail] attributes them to the
//     failing attempt as [*CompilationFailed]. [Session.AttachTap] streams
//     them live over a bounded lock-free queue via [code.hybscloud.com/lfq].
//
// # API Topologies
//
//   - Primitives: [ReadState], [LiftEffect], [Fail], [Recover]; composition
//     via kont.Pure, kont.Bind, kont.Map, kont.Then; [Loop] for recursion.
//   - Engine helpers: [WithEngine], [MayFail], [SetOptions], [SetOption],
//     [CurrentFlags].
//   - Dual-world: [Reify] and [Reflect] bridge Cont-world and Expr-world;
//     [RunExpr] and [RunEitherExpr] evaluate defunctionalized computations.
//
// # Concurrency
//
// Two runs on the same Session are fully serialized in some order; their
// bodies never interleave. No timeout or cancellation is provided: a
// computation that never returns blocks all future runs on that Session.
// The diagnostic buffer inherits the mutex's safety; only the Tap crosses
// goroutines, on its own lock-free transport.
//
// # Example
//
//	s, err := interp.New(backend, "/usr/lib/engine")
//	if err != nil {
//		return err
//	}
//	_, err = interp.Run(s, interp.SetOptions("-v0"))
//	if err != nil {
//		var cf *interp.CompilationFailed
//		if errors.As(err, &cf) {
//			for _, d := range cf.Diagnostics {
//				fmt.Println(d.Message)
//			}
//		}
//		return err
//	}
package interp
