package trace

import (
	"fmt"
	"time"
)

// Log emits a log event. kv holds alternating keys and values for Extra;
// a trailing odd key is dropped.
func Log(t Tracer, level Level, scope Scope, name, detail string, kv ...string) {
	if t == nil || !t.Level().Allows(level) {
		return
	}
	var extra map[string]string
	if len(kv) >= 2 {
		extra = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			extra[kv[i]] = kv[i+1]
		}
	}
	t.Emit(&Event{
		Time:   time.Now(),
		Kind:   KindLog,
		Level:  level,
		Scope:  scope,
		Name:   name,
		Detail: detail,
		Extra:  extra,
	})
}

func logf(t Tracer, level Level, scope Scope, name, format string, args []any) {
	if t == nil || !t.Level().Allows(level) {
		return
	}
	Log(t, level, scope, name, fmt.Sprintf(format, args...))
}

// Errorf logs at LevelError.
func Errorf(t Tracer, scope Scope, name, format string, args ...any) {
	logf(t, LevelError, scope, name, format, args)
}

// Warnf logs at LevelWarn.
func Warnf(t Tracer, scope Scope, name, format string, args ...any) {
	logf(t, LevelWarn, scope, name, format, args)
}

// Infof logs at LevelInfo.
func Infof(t Tracer, scope Scope, name, format string, args ...any) {
	logf(t, LevelInfo, scope, name, format, args)
}

// Debugf logs at LevelDebug.
func Debugf(t Tracer, scope Scope, name, format string, args ...any) {
	logf(t, LevelDebug, scope, name, format, args)
}

// Tracef logs at LevelTrace.
func Tracef(t Tracer, scope Scope, name, format string, args ...any) {
	logf(t, LevelTrace, scope, name, format, args)
}
