package domain

// Announcement is the structured form of a wager table message.
// It is transient: consumed once to create a Wager, never persisted.
type Announcement struct {
	Participants []string // handles in order of first appearance, deduplicated
	Stake        int64    // per-participant stake in minor units
	RawText      string
	Source       SourceRef
}

// WinnerMark is one marked handle in an edited announcement, with the
// number of times the marker glyph appeared next to it.
type WinnerMark struct {
	Handle string
	Count  int
}

// WinnerMarks is the structured form of an edited message carrying
// winner marks. Transient, like Announcement.
type WinnerMarks struct {
	Source SourceRef
	Marks  []WinnerMark // order of first appearance
}

// Handles returns the marked handles in order.
func (m WinnerMarks) Handles() []string {
	out := make([]string, 0, len(m.Marks))
	for _, mark := range m.Marks {
		out = append(out, mark.Handle)
	}
	return out
}
