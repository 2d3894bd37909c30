// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/exp/slog"
)

// DebugSource is the GL_DEBUG_SOURCE_* of a debug message.
type DebugSource uint32

// DebugType is the GL_DEBUG_TYPE_* of a debug message.
type DebugType uint32

// DebugSeverity is the GL_DEBUG_SEVERITY_* of a debug message.
type DebugSeverity uint32

const (
	DebugSourceAPI            DebugSource = 0x8246
	DebugSourceWindowSystem   DebugSource = 0x8247
	DebugSourceShaderCompiler DebugSource = 0x8248
	DebugSourceThirdParty     DebugSource = 0x8249
	DebugSourceApplication    DebugSource = 0x824a
	DebugSourceOther          DebugSource = 0x824b

	DebugTypeError              DebugType = 0x824c
	DebugTypeDeprecatedBehavior DebugType = 0x824d
	DebugTypeUndefinedBehavior  DebugType = 0x824e
	DebugTypePortability        DebugType = 0x824f
	DebugTypePerformance        DebugType = 0x8250
	DebugTypeOther              DebugType = 0x8251
	DebugTypeMarker             DebugType = 0x8268
	DebugTypePushGroup          DebugType = 0x8269
	DebugTypePopGroup           DebugType = 0x826a

	DebugSeverityHigh         DebugSeverity = 0x9146
	DebugSeverityMedium       DebugSeverity = 0x9147
	DebugSeverityLow          DebugSeverity = 0x9148
	DebugSeverityNotification DebugSeverity = 0x826b
)

func (s DebugSource) String() string {
	switch s {
	case DebugSourceAPI:
		return "API"
	case DebugSourceWindowSystem:
		return "WINDOW_SYSTEM"
	case DebugSourceShaderCompiler:
		return "SHADER_COMPILER"
	case DebugSourceThirdParty:
		return "THIRD_PARTY"
	case DebugSourceApplication:
		return "APPLICATION"
	case DebugSourceOther:
		return "OTHER"
	default:
		return "unknown"
	}
}

func (t DebugType) String() string {
	switch t {
	case DebugTypeError:
		return "ERROR"
	case DebugTypeDeprecatedBehavior:
		return "DEPRECATED_BEHAVIOR"
	case DebugTypeUndefinedBehavior:
		return "UNDEFINED_BEHAVIOR"
	case DebugTypePortability:
		return "PORTABILITY"
	case DebugTypePerformance:
		return "PERFORMANCE"
	case DebugTypeMarker:
		return "MARKER"
	case DebugTypePushGroup:
		return "PUSH_GROUP"
	case DebugTypePopGroup:
		return "POP_GROUP"
	case DebugTypeOther:
		return "OTHER"
	default:
		return "unknown"
	}
}

func (s DebugSeverity) String() string {
	switch s {
	case DebugSeverityHigh:
		return "HIGH"
	case DebugSeverityMedium:
		return "MEDIUM"
	case DebugSeverityLow:
		return "LOW"
	case DebugSeverityNotification:
		return "NOTIFICATION"
	default:
		return "unknown"
	}
}

// Level maps s to a log level. Unknown severities log at debug level.
func (s DebugSeverity) Level() slog.Level {
	switch s {
	case DebugSeverityHigh:
		return slog.LevelError
	case DebugSeverityMedium:
		return slog.LevelWarn
	case DebugSeverityLow:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// DebugMessage is one message reported by the driver.
type DebugMessage struct {
	Source   DebugSource
	Type     DebugType
	ID       uint32
	Severity DebugSeverity
	Text     string
}

func (m DebugMessage) String() string {
	return fmt.Sprintf("DEBUG: %s: severity=%s source=%s type=%s id=%d",
		m.Text, m.Severity, m.Source, m.Type, m.ID)
}

// DebugCallback receives driver debug messages. It may be called from
// driver threads when synchronous debug output is not enabled.
type DebugCallback func(m DebugMessage)

// NewDebugPrinter returns a callback writing one formatted line per
// message to w.
func NewDebugPrinter(w io.Writer) DebugCallback {
	var mu sync.Mutex
	return func(m DebugMessage) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(w, m.String())
	}
}

// NewDebugLogger returns a callback logging messages to l at the
// level derived from their severity.
func NewDebugLogger(l *slog.Logger) DebugCallback {
	return func(m DebugMessage) {
		l.Log(context.Background(), m.Severity.Level(), m.Text,
			slog.String("severity", m.Severity.String()),
			slog.String("source", m.Source.String()),
			slog.String("type", m.Type.String()),
			slog.Uint64("id", uint64(m.ID)),
		)
	}
}

// DefaultDebugCallback prints messages to standard output.
var DefaultDebugCallback = NewDebugPrinter(os.Stdout)
