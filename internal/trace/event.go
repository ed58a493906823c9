package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd
	// KindLog is a leveled log message.
	KindLog
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindLog:
		return "log"
	default:
		return "unknown"
	}
}

// Scope names the component an event comes from.
// Lower values are coarser.
type Scope uint8

const (
	ScopeDriver   Scope = iota + 1 // CLI commands
	ScopeFolder                    // workspace folder index
	ScopeDocument                  // one document parse
	ScopeLine                      // one line
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopeFolder:
		return "folder"
	case ScopeDocument:
		return "document"
	case ScopeLine:
		return "line"
	default:
		return "unknown"
	}
}

// SpanLevel is the level at which spans of this scope are emitted.
func (s Scope) SpanLevel() Level {
	switch s {
	case ScopeDriver:
		return LevelInfo
	case ScopeFolder, ScopeDocument:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time         // wall-clock timestamp
	Seq      uint64            // global sequence number (monotonic)
	Kind     Kind              // event kind
	Level    Level             // severity
	Scope    Scope             // emitting component
	SpanID   uint64            // span identifier, 0 for log events
	ParentID uint64            // parent span (0 if root)
	Name     string            // stable name, e.g. "folder.scan-reference"
	Detail   string            // human readable message
	Extra    map[string]string // keyed context such as uri and reason
}
