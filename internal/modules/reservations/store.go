package reservations

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/farays/internal/reservation"
)

// DefaultIdleTTL is how long a panel survives without requests.
const DefaultIdleTTL = 30 * time.Minute

// PanelFactory builds the panel for a new visitor.
type PanelFactory func(id string) *reservation.Panel

type entry struct {
	panel    *reservation.Panel
	lastSeen time.Time
}

// Store keeps one reservation panel per visitor, keyed by the id stored in
// the visitor's session. Idle panels are disposed by Sweep.
type Store struct {
	mu      sync.Mutex
	panels  map[string]*entry
	factory PanelFactory
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

// NewStore creates an empty store.
func NewStore(factory PanelFactory, ttl time.Duration, logger *slog.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		panels:  make(map[string]*entry),
		factory: factory,
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
	}
}

// Get returns the panel for id and marks it as used.
func (s *Store) Get(id string) (*reservation.Panel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.panels[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.panel, true
}

// GetOrCreate returns the panel for id, creating one under a fresh id when id
// is empty or unknown. The returned id is the one to keep in the session.
func (s *Store) GetOrCreate(id string) (string, *reservation.Panel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.panels[id]; ok {
		e.lastSeen = s.now()
		return id, e.panel
	}
	id = uuid.NewString()
	p := s.factory(id)
	s.panels[id] = &entry{panel: p, lastSeen: s.now()}
	return id, p
}

// Len returns the number of live panels.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.panels)
}

// Sweep disposes panels idle for longer than the TTL and returns how many it removed.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)
	var expired []*reservation.Panel

	s.mu.Lock()
	for id, e := range s.panels {
		if e.lastSeen.Before(cutoff) {
			expired = append(expired, e.panel)
			delete(s.panels, id)
		}
	}
	s.mu.Unlock()

	for _, p := range expired {
		p.Dispose()
	}
	if len(expired) > 0 {
		s.logger.Debug("Expired idle reservation panels", "count", len(expired))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Close disposes every panel. Pending resets are cancelled.
func (s *Store) Close() {
	s.mu.Lock()
	panels := s.panels
	s.panels = make(map[string]*entry)
	s.mu.Unlock()

	for _, e := range panels {
		e.panel.Dispose()
	}
}
