// Package extract turns free-form chat text into structured wager data.
// Both entry points are pure: identical input always yields identical
// output, and malformed input is a non-match, never an error.
package extract

import (
	"strings"

	"group-wager-ledger/internal/core/domain"
)

// Extractor holds the configured announcement keyword and winner marker.
type Extractor struct {
	keyword string // lowercased terminal keyword, e.g. "full"
	marker  string // winner marker glyph, e.g. "✅"
}

// New creates an Extractor. keyword is matched case-insensitively.
func New(keyword, marker string) *Extractor {
	return &Extractor{
		keyword: strings.ToLower(keyword),
		marker:  marker,
	}
}

// stopwords are tokens that look like bare handles but never are.
var stopwords = map[string]bool{
	"table": true,
	"game":  true,
	"vs":    true,
}

// Announcement parses a wager table message. It requires the terminal
// keyword, at least two participant handles and a positive stake; any of
// those missing means no match. Mention-style and bare-name handles mix
// freely because real announcements are inconsistent; both feed the same
// ordered, deduplicated participant list.
func (e *Extractor) Announcement(text string, source domain.SourceRef) (domain.Announcement, bool) {
	if !strings.Contains(strings.ToLower(text), e.keyword) {
		return domain.Announcement{}, false
	}

	var (
		participants []string
		seen         = map[string]bool{}
		stake        int64
		stakeFound   bool
	)

	addParticipant := func(handle string) {
		key := domain.NormalizeHandle(handle)
		if seen[key] {
			return
		}
		seen[key] = true
		participants = append(participants, handle)
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, tok := range strings.Fields(line) {
			if !stakeFound {
				if n, ok := parseInteger(tok); ok {
					stake = n
					stakeFound = true
					continue
				}
			}
			if h, ok := mentionHandle(tok); ok {
				addParticipant(h)
			}
		}

		// A line that is nothing but a single name counts as a bare
		// handle even without the mention sigil.
		if h, ok := bareHandleLine(line, e.keyword); ok {
			addParticipant(h)
		}
	}

	if len(participants) < 2 || stake <= 0 {
		return domain.Announcement{}, false
	}

	return domain.Announcement{
		Participants: participants,
		Stake:        stake,
		RawText:      text,
		Source:       source,
	}, true
}

// Handles returns every handle visible in the text, mention-style or
// bare-line, ordered by first appearance and deduplicated. It does not
// care about the terminal keyword or the winner marker.
func (e *Extractor) Handles(text string) []string {
	var (
		handles []string
		seen    = map[string]bool{}
	)

	add := func(handle string) {
		key := domain.NormalizeHandle(handle)
		if seen[key] {
			return
		}
		seen[key] = true
		handles = append(handles, handle)
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, tok := range strings.Fields(line) {
			if h, ok := mentionHandle(tok); ok {
				add(h)
			}
		}
		if h, ok := bareHandleLine(line, e.keyword); ok {
			add(h)
		}
	}
	return handles
}

// WinnerMarks finds handles marked with the winner glyph in an edited
// message. A mark is valid only when the glyph sits directly next to a
// handle token, separated by at most spaces; a decorative glyph elsewhere
// is ignored. Repeated marks on the same handle accumulate a count.
func (e *Extractor) WinnerMarks(text string, source domain.SourceRef) (domain.WinnerMarks, bool) {
	var (
		marks []domain.WinnerMark
		index = map[string]int{} // normalized handle -> position in marks
	)

	record := func(handle string) {
		key := domain.NormalizeHandle(handle)
		if i, ok := index[key]; ok {
			marks[i].Count++
			return
		}
		index[key] = len(marks)
		marks = append(marks, domain.WinnerMark{Handle: handle, Count: 1})
	}

	for pos := 0; ; {
		i := strings.Index(text[pos:], e.marker)
		if i < 0 {
			break
		}
		at := pos + i
		if h, ok := handleBefore(text, at, e.marker); ok {
			record(h)
		} else if h, ok := handleAfter(text, at+len(e.marker), e.marker); ok {
			record(h)
		}
		pos = at + len(e.marker)
	}

	if len(marks) == 0 {
		return domain.WinnerMarks{}, false
	}
	return domain.WinnerMarks{Source: source, Marks: marks}, true
}

// handleBefore scans backwards from a marker occurrence for an adjacent
// handle token, skipping spaces and earlier marker glyphs so a run like
// "@p1 ✅✅" attributes every glyph to p1.
func handleBefore(text string, markerAt int, marker string) (string, bool) {
	i := markerAt
	for i > 0 {
		if text[i-1] == ' ' || text[i-1] == '\t' {
			i--
			continue
		}
		if i >= len(marker) && text[i-len(marker):i] == marker {
			i -= len(marker)
			continue
		}
		break
	}
	end := i
	for i > 0 && isHandleChar(text[i-1]) {
		i--
	}
	tok := text[i:end]
	if !validHandle(tok) {
		return "", false
	}
	return tok, true
}

// handleAfter scans forwards from a marker occurrence for an adjacent
// mention or bare handle token.
func handleAfter(text string, from int, marker string) (string, bool) {
	i := from
	for i < len(text) {
		if text[i] == ' ' || text[i] == '\t' {
			i++
			continue
		}
		if strings.HasPrefix(text[i:], marker) {
			i += len(marker)
			continue
		}
		break
	}
	if i < len(text) && text[i] == '@' {
		i++
	}
	start := i
	for i < len(text) && isHandleChar(text[i]) {
		i++
	}
	tok := text[start:i]
	if !validHandle(tok) {
		return "", false
	}
	return tok, true
}

// mentionHandle extracts the handle from a sigil-prefixed token like
// "@player1" or "@player1," (trailing punctuation tolerated).
func mentionHandle(tok string) (string, bool) {
	if !strings.HasPrefix(tok, "@") {
		return "", false
	}
	h := strings.TrimLeft(tok[1:], "@")
	end := 0
	for end < len(h) && isHandleChar(h[end]) {
		end++
	}
	h = h[:end]
	if !validHandle(h) {
		return "", false
	}
	return h, true
}

// bareHandleLine reports whether a line is a single bare-name token.
func bareHandleLine(line, keyword string) (string, bool) {
	if strings.Contains(strings.ToLower(line), keyword) {
		return "", false
	}
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return "", false
	}
	tok := strings.TrimPrefix(fields[0], "@")
	if len(tok) < 3 || !validHandle(tok) {
		return "", false
	}
	if stopwords[strings.ToLower(tok)] {
		return "", false
	}
	return tok, true
}

// parseInteger parses a token that is entirely digits, within int64 range.
func parseInteger(tok string) (int64, bool) {
	if tok == "" {
		return 0, false
	}
	var n int64
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		if n > (1<<62)/10 {
			return 0, false
		}
		n = n*10 + int64(c-'0')
	}
	return n, true
}

func isHandleChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// validHandle rejects empty tokens and pure numbers, which are stakes,
// not names.
func validHandle(tok string) bool {
	if tok == "" {
		return false
	}
	if _, isNumber := parseInteger(tok); isNumber {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if !isHandleChar(tok[i]) {
			return false
		}
	}
	return true
}
