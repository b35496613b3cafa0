package http

import (
	"sync"
	"time"
)

// pendingGoogleLinks remembers which user started a Google link, keyed by OAuth state.
type pendingGoogleLinks struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]pendingGoogleLink
}

type pendingGoogleLink struct {
	userID    string
	expiresAt time.Time
}

func newPendingGoogleLinks(ttl time.Duration) *pendingGoogleLinks {
	return &pendingGoogleLinks{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]pendingGoogleLink),
	}
}

func (p *pendingGoogleLinks) add(state, userID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	for key, entry := range p.entries {
		if now.After(entry.expiresAt) {
			delete(p.entries, key)
		}
	}
	p.entries[state] = pendingGoogleLink{userID: userID, expiresAt: now.Add(p.ttl)}
}

// take removes the entry for state and returns its user if it has not expired.
func (p *pendingGoogleLinks) take(state string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.entries[state]
	if !ok {
		return "", false
	}
	delete(p.entries, state)
	if p.now().After(entry.expiresAt) {
		return "", false
	}
	return entry.userID, true
}
