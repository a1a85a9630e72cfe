package roslog

import (
	"fmt"
	"runtime"
)

// Logger is a named front end that renders messages and captures call
// sites before handing them to Log. The zero value emits under the empty
// logger name, which the native subsystem treats as the root logger.
type Logger struct {
	name string
}

// Named returns a logger emitting under the given name.
func Named(name string) Logger {
	return Logger{name: name}
}

// Name returns the logger's full dotted name.
func (l Logger) Name() string {
	return l.name
}

// Child returns a logger named under l, using the native dotted hierarchy
// separator.
func (l Logger) Child(suffix string) Logger {
	if l.name == "" {
		return Logger{name: suffix}
	}
	return Logger{name: l.name + "." + suffix}
}

// SetLevel sets the native severity threshold for this logger's name.
func (l Logger) SetLevel(severity Severity) error {
	return SetLoggerLevel(l.name, severity)
}

// Logf renders the message and emits it at the given severity, attributed
// to the caller's function, file and line.
func (l Logger) Logf(severity Severity, format string, args ...any) {
	l.logf(severity, format, args...)
}

func (l Logger) Debugf(format string, args ...any) { l.logf(SeverityDebug, format, args...) }
func (l Logger) Infof(format string, args ...any)  { l.logf(SeverityInfo, format, args...) }
func (l Logger) Warnf(format string, args ...any)  { l.logf(SeverityWarn, format, args...) }
func (l Logger) Errorf(format string, args ...any) { l.logf(SeverityError, format, args...) }

// Fatalf emits at SeverityFatal. Unlike the standard library convention it
// does not exit the process; fatal is only the native subsystem's highest
// severity.
func (l Logger) Fatalf(format string, args ...any) { l.logf(SeverityFatal, format, args...) }

// logf sits exactly one frame below every exported emitter so the caller
// lookup depth stays constant.
func (l Logger) logf(severity Severity, format string, args ...any) {
	function, file, line := callSite(3)
	Log(function, file, line, l.name, severity, fmt.Sprintf(format, args...))
}

// callSite resolves the emitting call site; skip counts frames the same
// way runtime.Caller does, with 0 meaning callSite itself.
func callSite(skip int) (function, file string, line int) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", "", 0
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
	}
	return function, file, line
}
