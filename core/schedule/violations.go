package schedule

import "fmt"

// Violation records one rule the engine could not satisfy, with enough
// context to diagnose it.
type Violation struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// ViolationLog accumulates violations in discovery order. Entries are
// append-only and intentionally never deduplicated: the assigners and the
// validator may both report the same underlying problem.
type ViolationLog struct {
	entries []Violation
}

// Addf appends a formatted violation for the given stage.
func (l *ViolationLog) Addf(stage, format string, args ...any) {
	l.entries = append(l.entries, Violation{Stage: stage, Message: fmt.Sprintf(format, args...)})
}

// Entries returns the recorded violations in order.
func (l *ViolationLog) Entries() []Violation { return l.entries }

// Messages returns the violation messages in order.
func (l *ViolationLog) Messages() []string {
	msgs := make([]string, 0, len(l.entries))
	for _, v := range l.entries {
		msgs = append(msgs, v.Message)
	}
	return msgs
}

// Len returns the number of recorded violations.
func (l *ViolationLog) Len() int { return len(l.entries) }

// Empty reports whether no violation has been recorded.
func (l *ViolationLog) Empty() bool { return len(l.entries) == 0 }
