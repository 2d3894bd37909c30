// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestDebugMessageString(t *testing.T) {
	m := DebugMessage{
		Source:   DebugSourceShaderCompiler,
		Type:     DebugTypePerformance,
		ID:       7,
		Severity: DebugSeverityMedium,
		Text:     "slow path",
	}
	assert.Equal(t, "DEBUG: slow path: severity=MEDIUM source=SHADER_COMPILER type=PERFORMANCE id=7", m.String())
}

func TestDebugMessageUnknownCodes(t *testing.T) {
	m := DebugMessage{
		Source:   DebugSource(1),
		Type:     DebugType(0xffffffff),
		ID:       3,
		Severity: DebugSeverity(0x1234),
		Text:     "odd",
	}
	var s string
	require.NotPanics(t, func() { s = m.String() })
	assert.Equal(t, "DEBUG: odd: severity=unknown source=unknown type=unknown id=3", s)
}

func TestDebugNames(t *testing.T) {
	sources := map[DebugSource]string{
		DebugSourceAPI:            "API",
		DebugSourceWindowSystem:   "WINDOW_SYSTEM",
		DebugSourceShaderCompiler: "SHADER_COMPILER",
		DebugSourceThirdParty:     "THIRD_PARTY",
		DebugSourceApplication:    "APPLICATION",
		DebugSourceOther:          "OTHER",
	}
	for s, want := range sources {
		assert.Equal(t, want, s.String())
	}
	types := map[DebugType]string{
		DebugTypeError:              "ERROR",
		DebugTypeDeprecatedBehavior: "DEPRECATED_BEHAVIOR",
		DebugTypeUndefinedBehavior:  "UNDEFINED_BEHAVIOR",
		DebugTypePortability:        "PORTABILITY",
		DebugTypePerformance:        "PERFORMANCE",
		DebugTypeMarker:             "MARKER",
		DebugTypePushGroup:          "PUSH_GROUP",
		DebugTypePopGroup:           "POP_GROUP",
		DebugTypeOther:              "OTHER",
	}
	for ty, want := range types {
		assert.Equal(t, want, ty.String())
	}
	severities := map[DebugSeverity]string{
		DebugSeverityHigh:         "HIGH",
		DebugSeverityMedium:       "MEDIUM",
		DebugSeverityLow:          "LOW",
		DebugSeverityNotification: "NOTIFICATION",
	}
	for s, want := range severities {
		assert.Equal(t, want, s.String())
	}
}

func TestDebugPrinter(t *testing.T) {
	var buf bytes.Buffer
	cb := NewDebugPrinter(&buf)
	cb(DebugMessage{Source: DebugSourceAPI, Type: DebugTypeError, ID: 1, Severity: DebugSeverityHigh, Text: "bad enum"})
	cb(DebugMessage{Text: "zero"})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"DEBUG: bad enum: severity=HIGH source=API type=ERROR id=1",
		"DEBUG: zero: severity=unknown source=unknown type=unknown id=0",
	}, lines)
}

func TestDebugLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cb := NewDebugLogger(l)

	cb(DebugMessage{Source: DebugSourceAPI, Type: DebugTypeError, ID: 9, Severity: DebugSeverityHigh, Text: "bad enum"})
	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `msg="bad enum"`)
	assert.Contains(t, out, "severity=HIGH")
	assert.Contains(t, out, "source=API")
	assert.Contains(t, out, "type=ERROR")
	assert.Contains(t, out, "id=9")

	buf.Reset()
	cb(DebugMessage{Severity: 0x42, Text: "mystery"})
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "severity=unknown")
}

func TestDebugSeverityLevel(t *testing.T) {
	assert.Equal(t, slog.LevelError, DebugSeverityHigh.Level())
	assert.Equal(t, slog.LevelWarn, DebugSeverityMedium.Level())
	assert.Equal(t, slog.LevelInfo, DebugSeverityLow.Level())
	assert.Equal(t, slog.LevelDebug, DebugSeverityNotification.Level())
	assert.Equal(t, slog.LevelDebug, DebugSeverity(0).Level())
}
