package utils

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

type stackFrame struct {
	Func   string `json:"func"`
	Source string `json:"source"`
	Line   int    `json:"line"`
}

// GetLogger returns a JSON slog logger that expands errors carrying a
// stack trace (go-xerrors) into structured frames.
func GetLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		ReplaceAttr: replaceAttr,
	})
	return slog.New(handler)
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindAny {
		if err, ok := a.Value.Any().(error); ok {
			a.Value = fmtErr(err)
		}
	}
	return a
}

// fmtErr renders an error as a group value with its message and, when
// available, the innermost recorded stack trace.
func fmtErr(err error) slog.Value {
	groupValues := []slog.Attr{
		slog.String("msg", err.Error()),
	}

	type stackTracer interface {
		StackTrace() []uintptr
	}

	var st stackTracer
	for e := err; e != nil; e = errors.Unwrap(e) {
		if t, ok := e.(stackTracer); ok {
			st = t
		}
	}

	if st != nil {
		groupValues = append(groupValues, slog.Any("trace", traceLines(st.StackTrace())))
	}

	return slog.GroupValue(groupValues...)
}

func traceLines(pcs []uintptr) []stackFrame {
	frames := runtime.CallersFrames(pcs)
	lines := make([]stackFrame, 0, len(pcs))
	for {
		frame, more := frames.Next()
		lines = append(lines, stackFrame{
			Func:   filepath.Base(frame.Function),
			Source: filepath.Join(filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File)),
			Line:   frame.Line,
		})
		if !more {
			break
		}
	}
	return lines
}
