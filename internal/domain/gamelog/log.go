package gamelog

import "time"

// MaxEntries caps the log; older entries fall off the front. The log
// is display-only, but it is preserved verbatim in snapshots.
const MaxEntries = 150

// EntryType classifies a log entry for presentation
type EntryType string

const (
	TypeNarration EntryType = "narration"
	TypeAction    EntryType = "action"
	TypeChoice    EntryType = "choice"
	TypeRoll      EntryType = "roll"
	TypeSystem    EntryType = "system"
	TypeEffect    EntryType = "effect"
)

// Entry is one line of the game log
type Entry struct {
	ID        string    `json:"id"`
	Type      EntryType `json:"type"`
	Label     string    `json:"label"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Log is an append-only ring buffer of entries
type Log struct {
	entries []Entry
}

// New creates an empty log
func New() *Log {
	return &Log{}
}

// Restore creates a log seeded with previously persisted entries,
// trimming to the cap if the stored payload somehow grew past it.
func Restore(entries []Entry) *Log {
	l := &Log{entries: append([]Entry(nil), entries...)}
	l.trim()
	return l
}

// Append adds an entry, evicting the oldest once the cap is reached
func (l *Log) Append(entry Entry) {
	l.entries = append(l.entries, entry)
	l.trim()
}

// Entries returns a copy of the retained entries, oldest first
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained entries
func (l *Log) Len() int {
	return len(l.entries)
}

// Clear drops every entry
func (l *Log) Clear() {
	l.entries = nil
}

func (l *Log) trim() {
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[len(l.entries)-MaxEntries:]
	}
}
