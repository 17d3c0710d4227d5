// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interp

// Flags is the backend's opaque configuration value. The package never
// inspects it; it only moves Flags between Engine.Flags, Engine.ParseFlags,
// and Engine.SetFlags.
type Flags = any

// Style is an opaque pretty-printer hint forwarded verbatim from the
// backend's log callback. The diagnostic sink ignores it.
type Style uint8

// StyleDefault is the zero Style, used when the backend reports no hint.
const StyleDefault Style = 0

// LogHandler is the backend's log-handler contract. The backend invokes it
// zero or more times per call, synchronously, on the calling goroutine,
// whenever it wants to report a diagnostic. location is an already formatted
// source location, or empty when none is available.
type LogHandler func(sev Severity, location string, style Style, message string)

// Backend constructs engine sessions.
//
// Implementations wrap an external compiler/runtime installation. Faults
// during construction surface as a returned error or a panic; New converts
// both into *BackendFault.
type Backend interface {
	// CreateSession constructs an isolated engine session rooted at the
	// given installation path.
	CreateSession(installPath string) (Engine, error)
}

// Engine is one isolated backend session: configuration plus the log
// channel. All methods are called only while the owning Session's mutex is
// held; implementations need not be safe for concurrent use.
//
// Panics escaping any Engine method are caught at the executor boundary and
// reported as *BackendFault.
type Engine interface {
	// Flags returns the current configuration.
	Flags() Flags

	// ParseFlags interprets option strings against the given configuration,
	// returning the new configuration and the options it did not recognize.
	// ParseFlags must be pure: no side effects beyond computing the result.
	ParseFlags(current Flags, options []string) (next Flags, unrecognized []string)

	// SetFlags installs a configuration previously produced by ParseFlags.
	SetFlags(next Flags)

	// InstallLogHandler registers the callback the engine reports
	// diagnostics through.
	InstallLogHandler(handler LogHandler)
}
