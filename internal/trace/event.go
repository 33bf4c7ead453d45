package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of an operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of an operation.
	KindSpanEnd
	// KindPoint is an instant event.
	KindPoint
	KindHeartbeat // periodic liveness signal
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	case KindHeartbeat:
		return "heartbeat"
	default:
		return "unknown"
	}
}

// Scope is the granularity of an event. Lower values are coarser.
type Scope uint8

const (
	// ScopeCommand covers a whole CLI command.
	ScopeCommand Scope = iota + 1
	// ScopeJob covers one batch item or one evaluated expression.
	ScopeJob
	// ScopeOp covers a single bignum operation (mul, divmod, fact...).
	ScopeOp
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeCommand:
		return "command"
	case ScopeJob:
		return "job"
	case ScopeOp:
		return "op"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time         // wall-clock timestamp
	Seq      uint64            // global sequence number (monotonic)
	Kind     Kind              // event kind
	Scope    Scope             // granularity level
	SpanID   uint64            // unique span identifier
	ParentID uint64            // parent span (0 if root)
	GID      uint64            // goroutine ID
	Name     string            // e.g. "eval", "job:3", "op:mul"
	Detail   string            // optional detail message
	Extra    map[string]string // operand sizes, error text
}
