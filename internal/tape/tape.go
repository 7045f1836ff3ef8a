// Package tape implements the calculator's interaction log: every
// command executed and number submitted is appended as one entry. Two
// recorders are provided: an unbounded in-memory tape, and a SQLite
// store that groups entries under per-process sessions so a tape
// survives restarts.
package tape

// Entry is one logged interaction.
type Entry struct {
	Seq  int
	Kind string // "command" or "number"
	Text string
}

// Recorder is the tape surface the engine writes to and the tape
// command reads back.
type Recorder interface {
	Record(kind, text string) error
	Entries() ([]Entry, error)
	Close() error
}

// Memory is a slice-backed Recorder, the engine default.
type Memory struct {
	entries []Entry
}

// NewMemory builds an empty in-memory tape.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Record(kind, text string) error {
	m.entries = append(m.entries, Entry{
		Seq:  len(m.entries) + 1,
		Kind: kind,
		Text: text,
	})
	return nil
}

func (m *Memory) Entries() ([]Entry, error) {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *Memory) Close() error { return nil }

// Len reports the number of recorded entries.
func (m *Memory) Len() int { return len(m.entries) }
