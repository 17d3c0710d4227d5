// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interp

// Severity classifies a diagnostic reported by the backend.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	// SevError is for error diagnostics.
	SevError
	// SevFatal is for diagnostics after which the backend cannot continue.
	SevFatal
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevFatal:
		return "FATAL"
	}
	return "UNKNOWN"
}

// Diagnostic is one captured backend message, immutable once created.
// Message is fully formatted: "<location>: <message>" when the backend
// supplied a location, the bare message otherwise.
type Diagnostic struct {
	Message string
}

// formatDiagnostic builds the Diagnostic message text from the raw
// callback arguments.
func formatDiagnostic(location, message string) string {
	if location == "" {
		return message
	}
	return location + ": " + message
}

// diagnosticSink buffers backend-reported messages in chronological order
// (insertion order = report order). The buffer is owned by the guarded
// SessionState: record runs only while the backend executes under the
// session mutex, and drain/snapshot/reset run under the same mutex, so no
// synchronization beyond the mutex boundary is needed.
type diagnosticSink struct {
	buf []Diagnostic
	tap *Tap
}

func newDiagnosticSink() *diagnosticSink {
	return &diagnosticSink{}
}

// record conforms to LogHandler and is installed as the backend's log
// callback. Its sole effect is appending a Diagnostic to the buffer (and
// forwarding it to an attached Tap). It never panics, however many times
// the backend invokes it per operation, including zero.
func (k *diagnosticSink) record(_ Severity, location string, _ Style, message string) {
	d := Diagnostic{Message: formatDiagnostic(location, message)}
	k.buf = append(k.buf, d)
	if k.tap != nil {
		k.tap.offer(d)
	}
}

// drain returns everything recorded since the last drain or reset, in
// report order, and clears the buffer. The returned slice is not aliased
// by subsequent records.
func (k *diagnosticSink) drain() []Diagnostic {
	out := k.buf
	k.buf = nil
	return out
}

// snapshot copies the current buffer contents in report order.
func (k *diagnosticSink) snapshot() []Diagnostic {
	out := make([]Diagnostic, len(k.buf))
	copy(out, k.buf)
	return out
}

// reset discards everything recorded so far.
func (k *diagnosticSink) reset() {
	k.buf = k.buf[:0]
}
