// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interp

import "strings"

// InterpreterError is the closed set of typed failures a session
// computation can produce. Exactly one variant is active per value:
// *UnknownError, *CompilationFailed, *NotAllowed, or *BackendFault.
// Variants are immutable once constructed.
//
// Callers of Run receive either a value or exactly one InterpreterError;
// raw backend panics never cross the Run boundary.
type InterpreterError interface {
	error
	interpreterError()
}

// UnknownError is a generic, unclassified failure with free-text detail.
// Used when no more specific variant applies (e.g. invalid configuration).
type UnknownError struct {
	Detail string
}

func (e *UnknownError) Error() string { return "unknown error: " + e.Detail }

func (*UnknownError) interpreterError() {}

// CompilationFailed reports that a compilation or evaluation attempt
// failed. Diagnostics holds every message the backend reported during that
// attempt, in report order.
type CompilationFailed struct {
	Diagnostics []Diagnostic
}

func (e *CompilationFailed) Error() string {
	if len(e.Diagnostics) == 0 {
		return "compilation failed"
	}
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = d.Message
	}
	return strings.Join(msgs, "\n")
}

func (*CompilationFailed) interpreterError() {}

// NotAllowed reports an operation rejected by policy before any backend
// call was attempted.
type NotAllowed struct {
	Detail string
}

func (e *NotAllowed) Error() string { return "not allowed: " + e.Detail }

func (*NotAllowed) interpreterError() {}

// BackendFault reports a panic that escaped the backend engine itself,
// distinct from a diagnostic reported through the log channel.
type BackendFault struct {
	Description string
}

func (e *BackendFault) Error() string { return "backend fault: " + e.Description }

func (*BackendFault) interpreterError() {}
