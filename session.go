// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interp

import (
	"sync"
)

// SessionState is the state bundle guarded by a Session: the backend engine
// handle plus the diagnostic sink its log callback feeds. One SessionState
// exists per active session. It is reached only through Read operations
// evaluated while the session mutex is held; the raw engine handle never
// leaves the guarded region except through values a computation chooses to
// return.
type SessionState struct {
	engine Engine
	diags  *diagnosticSink
}

// Engine returns the backend engine handle.
func (st *SessionState) Engine() Engine {
	return st.engine
}

// Diagnostics returns a copy of the diagnostics recorded so far in the
// current run, in report order.
func (st *SessionState) Diagnostics() []Diagnostic {
	return st.diags.snapshot()
}

// Session is the unit of mutual exclusion: a mutex wrapping one
// SessionState. At most one computation runs against a Session at a time;
// all engine operations anywhere in the package happen while the mutex is
// held. A Session remains usable after any run outcome, including typed
// failures and backend faults.
type Session struct {
	mu     sync.Mutex
	state  SessionState
	serial Serial
}

// Serial returns the serial number assigned to this session.
func (s *Session) Serial() Serial {
	return s.serial
}

// AttachTap installs a diagnostic Tap with the given queue capacity and
// returns it. Diagnostics recorded from then on are also offered to the
// Tap. Waits for any in-flight run to finish before installing.
func (s *Session) AttachTap(capacity int) *Tap {
	t := newTap(capacity)
	s.mu.Lock()
	s.state.diags.tap = t
	s.mu.Unlock()
	return t
}

// New creates an isolated engine session through the backend, installs the
// diagnostic sink's callback as the backend's log handler, and wraps the
// resulting state in a Session.
//
// Returns *BackendFault when backend construction fails, whether by
// returned error or by panic.
func New(b Backend, installPath string) (s *Session, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, &BackendFault{Description: describeFault(r)}
		}
	}()
	engine, cerr := b.CreateSession(installPath)
	if cerr != nil {
		return nil, &BackendFault{Description: cerr.Error()}
	}
	s = &Session{
		state:  SessionState{engine: engine, diags: newDiagnosticSink()},
		serial: nextSerial(),
	}
	engine.InstallLogHandler(s.state.diags.record)
	return s, nil
}
