package newsletter

import (
	"strings"
	"sync"
	"time"
)

// RecentWindow is how long a duplicate subscription for the same email is
// suppressed after a successful welcome send.
const RecentWindow = time.Minute

// RecentStore suppresses duplicate welcome sends. Keys are normalized email
// addresses; entries expire after the store's window.
type RecentStore interface {
	Seen(email string) bool
	Mark(email string)
}

// NormalizeEmail lowercases and trims an address for use as an idempotency
// key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MemoryRecentStore is the in-process best-effort implementation. It is not
// shared across instances; expired entries are pruned lazily on lookup.
type MemoryRecentStore struct {
	window  time.Duration
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryRecentStore(window time.Duration) *MemoryRecentStore {
	if window <= 0 {
		window = RecentWindow
	}
	return &MemoryRecentStore{
		window:  window,
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryRecentStore) Seen(email string) bool {
	key := NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	at, ok := s.entries[key]
	if !ok {
		return false
	}
	if s.now().Sub(at) > s.window {
		delete(s.entries, key)
		return false
	}
	return true
}

func (s *MemoryRecentStore) Mark(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[NormalizeEmail(email)] = s.now()
}
