package entity

// MaxLogEntries caps the log; older entries are dropped.
const MaxLogEntries = 12

// LogCategory tags a log entry for display.
type LogCategory string

const (
	LogSystem  LogCategory = "system"
	LogEvent   LogCategory = "event"
	LogAlert   LogCategory = "alert"
	LogWarning LogCategory = "warning"
)

// LogEntry is one line of the player-facing journal.
type LogEntry struct {
	Category LogCategory
	Text     string
}

// PrependLog returns a new log with entry first, truncated to MaxLogEntries.
// The input slice is never modified.
func PrependLog(log []LogEntry, entry LogEntry) []LogEntry {
	n := len(log) + 1
	if n > MaxLogEntries {
		n = MaxLogEntries
	}
	next := make([]LogEntry, 0, n)
	next = append(next, entry)
	for _, e := range log {
		if len(next) == n {
			break
		}
		next = append(next, e)
	}
	return next
}
