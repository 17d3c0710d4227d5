// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interp_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/interp"
)

// fakeFlags is the backend configuration used by tests: the ordered list
// of option strings applied so far.
type fakeFlags struct {
	applied []string
}

// fakeEngine implements interp.Engine. ParseFlags recognizes options
// starting with "-X" or "-v"; everything else is reported unrecognized.
type fakeEngine struct {
	flags   fakeFlags
	handler interp.LogHandler
}

func (e *fakeEngine) Flags() interp.Flags { return e.flags }

func (e *fakeEngine) ParseFlags(current interp.Flags, options []string) (interp.Flags, []string) {
	cur := current.(fakeFlags)
	next := fakeFlags{applied: append([]string(nil), cur.applied...)}
	var unrecognized []string
	for _, opt := range options {
		if strings.HasPrefix(opt, "-X") || strings.HasPrefix(opt, "-v") {
			next.applied = append(next.applied, opt)
		} else {
			unrecognized = append(unrecognized, opt)
		}
	}
	return next, unrecognized
}

func (e *fakeEngine) SetFlags(next interp.Flags) { e.flags = next.(fakeFlags) }

func (e *fakeEngine) InstallLogHandler(handler interp.LogHandler) { e.handler = handler }

// report emits a diagnostic through the installed log handler, as the
// backend would while compiling.
func (e *fakeEngine) report(sev interp.Severity, location, message string) {
	e.handler(sev, location, interp.StyleDefault, message)
}

// fakeBackend implements interp.Backend.
type fakeBackend struct {
	failWith  error // CreateSession returns this when set
	panicWith any   // CreateSession panics with this when set
	created   *fakeEngine
}

func (b *fakeBackend) CreateSession(string) (interp.Engine, error) {
	if b.panicWith != nil {
		panic(b.panicWith)
	}
	if b.failWith != nil {
		return nil, b.failWith
	}
	b.created = &fakeEngine{}
	return b.created, nil
}

// newTestSession creates a session over a fresh fake backend.
func newTestSession(tb testing.TB) (*interp.Session, *fakeEngine) {
	tb.Helper()
	b := &fakeBackend{}
	s, err := interp.New(b, "/opt/engine")
	if err != nil {
		tb.Fatalf("New: %v", err)
	}
	return s, b.created
}
