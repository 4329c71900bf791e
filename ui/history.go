package ui

// History is the list of prompts sent from the composer, oldest first. It
// supports walking backwards and forwards while remembering the unsent draft.
type History struct {
	entries []string
	limit   int

	// cursor indexes entries while browsing; len(entries) means not browsing.
	cursor int
	draft  string
}

// NewHistory creates a history holding at most limit entries. A limit <= 0
// keeps everything.
func NewHistory(limit int, entries []string) *History {
	h := &History{limit: limit}
	for _, e := range entries {
		h.push(e)
	}
	h.cursor = len(h.entries)
	return h
}

func (h *History) push(entry string) {
	if entry == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return
	}
	h.entries = append(h.entries, entry)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Add records a sent prompt and stops browsing. Empty prompts and immediate
// repeats are not recorded.
func (h *History) Add(entry string) {
	h.push(entry)
	h.Reset()
}

// Reset stops browsing and forgets the draft.
func (h *History) Reset() {
	h.cursor = len(h.entries)
	h.draft = ""
}

// Browsing reports whether Prev has moved the cursor into the history.
func (h *History) Browsing() bool {
	return h.cursor < len(h.entries)
}

// Prev moves one entry back. current is the composer's text, saved as the
// draft when browsing starts. ok is false at the oldest entry.
func (h *History) Prev(current string) (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	if !h.Browsing() {
		h.draft = current
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves one entry forward, returning the saved draft after the newest
// entry. ok is false when not browsing.
func (h *History) Next() (string, bool) {
	if !h.Browsing() {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		draft := h.draft
		h.draft = ""
		return draft, true
	}
	return h.entries[h.cursor], true
}

// Entries returns a copy of the recorded prompts, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

func (h *History) Len() int {
	return len(h.entries)
}
