// Package message provides the append-only game message log.
package message

import "fmt"

// Severity classifies a message for display.
type Severity int

const (
	SeverityInfo   Severity = iota // Neutral events
	SeverityCombat                 // Attacks and damage
	SeverityDanger                 // Deaths and warnings
	SeverityGood                   // Healing, pickups, wins
)

var severityNames = []string{"info", "combat", "danger", "good"}

// String returns the severity name.
func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(severityNames) {
		return nil, fmt.Errorf("unknown severity %d", int(s))
	}
	return []byte(severityNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	for i, name := range severityNames {
		if name == string(text) {
			*s = Severity(i)
			return nil
		}
	}
	return fmt.Errorf("unknown severity %q", string(text))
}

// Entry is a single logged message.
type Entry struct {
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// Log is an append-only message history.
type Log struct {
	entries []Entry
}

// NewLog creates a log, optionally seeded with earlier entries.
func NewLog(entries ...Entry) *Log {
	l := &Log{}
	l.entries = append(l.entries, entries...)
	return l
}

// Add appends a message.
func (l *Log) Add(text string, sev Severity) {
	l.entries = append(l.entries, Entry{Text: text, Severity: sev})
}

// Addf appends a formatted message.
func (l *Log) Addf(sev Severity, format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...), sev)
}

// Len returns the number of messages logged.
func (l *Log) Len() int {
	return len(l.entries)
}

// Recent returns up to n of the newest messages, oldest first.
func (l *Log) Recent(n int) []Entry {
	if n <= 0 {
		return nil
	}
	start := len(l.entries) - n
	if start < 0 {
		start = 0
	}
	out := make([]Entry, len(l.entries)-start)
	copy(out, l.entries[start:])
	return out
}

// Last returns the newest message, if any.
func (l *Log) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Entries returns a copy of the whole history.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Since returns the messages logged after the first n.
func (l *Log) Since(n int) []Entry {
	if n < 0 {
		n = 0
	}
	if n >= len(l.entries) {
		return nil
	}
	out := make([]Entry, len(l.entries)-n)
	copy(out, l.entries[n:])
	return out
}
