package guard

import (
	"sync"

	"github.com/dmitrijs2005/gophblog/internal/client/models"
)

// State is the guard's two-state machine.
type State int

const (
	// Guarded: no session, protected pages redirect to login.
	Guarded State = iota
	// Open: a session is present, every page renders.
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "guarded"
}

// Decision is the outcome of resolving a navigation request.
type Decision struct {
	Match Match
	// Redirect is the path to go to instead, "" when allowed.
	Redirect string
	// Replace means the redirect must replace the current history entry.
	Replace bool
}

func (d Decision) Allowed() bool { return d.Redirect == "" }

// SessionSource is the part of the session store the guard observes.
type SessionSource interface {
	Current() models.Session
	Subscribe(fn func(models.Session)) (unsubscribe func())
}

type Guard struct {
	router *Router

	mu    sync.RWMutex
	state State

	unsubscribe func()
}

// New starts in the state matching the source's current session and tracks
// it from then on. The token is never checked with the server here.
func New(router *Router, src SessionSource) *Guard {
	g := &Guard{router: router, state: stateOf(src.Current())}
	g.unsubscribe = src.Subscribe(func(s models.Session) {
		g.mu.Lock()
		g.state = stateOf(s)
		g.mu.Unlock()
	})
	return g
}

func stateOf(s models.Session) State {
	if s.Token != "" {
		return Open
	}
	return Guarded
}

func (g *Guard) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Resolve decides what happens when the user navigates to path.
func (g *Guard) Resolve(path string) Decision {
	m := g.router.Lookup(path)

	if !m.Route.Public && g.State() == Guarded {
		return Decision{Match: m, Redirect: LoginPath, Replace: true}
	}
	if m.Route.RedirectTo != "" {
		return Decision{Match: m, Redirect: m.Route.RedirectTo, Replace: true}
	}
	return Decision{Match: m}
}

// Close stops tracking the session.
func (g *Guard) Close() {
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
}
