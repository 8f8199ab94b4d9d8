package guard

import "errors"

var ErrRedirectLoop = errors.New("too many redirects")

const maxRedirects = 8

// History is the navigation back stack.
type History struct {
	guard   *Guard
	entries []Match
}

func NewHistory(g *Guard) *History {
	return &History{guard: g}
}

// Navigate resolves path and follows redirects. An allowed destination is
// pushed; a redirect replaces the entry that triggered it, so going back
// never lands on a gated page.
func (h *History) Navigate(path string) (Match, error) {
	return h.follow(path, false)
}

// Replace is Navigate that overwrites the current entry.
func (h *History) Replace(path string) (Match, error) {
	return h.follow(path, true)
}

func (h *History) follow(path string, replace bool) (Match, error) {
	for i := 0; i < maxRedirects; i++ {
		d := h.guard.Resolve(path)
		if d.Allowed() {
			h.put(d.Match, replace)
			return d.Match, nil
		}
		// the gated entry is never committed; its redirect target takes
		// its place
		path = d.Redirect
	}
	return Match{}, ErrRedirectLoop
}

func (h *History) put(m Match, replace bool) {
	if replace && len(h.entries) > 0 {
		h.entries[len(h.entries)-1] = m
		return
	}
	h.entries = append(h.entries, m)
}

// Back pops the current entry and re-resolves the previous one, since the
// session may have changed since it was visited. It reports false at the
// start of history.
func (h *History) Back() (Match, bool, error) {
	if len(h.entries) < 2 {
		return Match{}, false, nil
	}
	h.entries = h.entries[:len(h.entries)-1]
	prev := h.entries[len(h.entries)-1]
	m, err := h.follow(prev.Path, true)
	return m, true, err
}

// Current is the entry on top of the stack.
func (h *History) Current() (Match, bool) {
	if len(h.entries) == 0 {
		return Match{}, false
	}
	return h.entries[len(h.entries)-1], true
}

func (h *History) Len() int { return len(h.entries) }
