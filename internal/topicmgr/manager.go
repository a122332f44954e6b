package topicmgr

import (
	"regexp"
	"sort"
	"sync"
)

// topicName is dot-separated lowercase segments with at least two segments.
var topicName = regexp.MustCompile(`^[a-z0-9_]+(\.[a-z0-9_]+)+$`)

// Manager holds the registered topics.
type Manager struct {
	mu     sync.RWMutex
	topics map[string]Topic
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{topics: make(map[string]Topic)}
}

// Register adds a topic. Names must be unique and well formed.
func (m *Manager) Register(topic Topic) error {
	if !topicName.MatchString(topic.Name()) {
		return &TopicError{Type: ErrorInvalidName, Topic: topic.Name(), Message: "name must be dot-separated lowercase segments"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.topics[topic.Name()]; exists {
		return &TopicError{Type: ErrorDuplicateRegistration, Topic: topic.Name(), Message: "already registered"}
	}
	m.topics[topic.Name()] = topic
	return nil
}

// MustRegister is Register for package-level declarations, where a failure is
// a programming error.
func (m *Manager) MustRegister(topic Topic) {
	if err := m.Register(topic); err != nil {
		panic(err)
	}
}

// Get retrieves a topic by name.
func (m *Manager) Get(name string) (Topic, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.topics[name]
	return t, ok
}

// Lookup is Get with a typed error for unknown names.
func (m *Manager) Lookup(name string) (Topic, error) {
	if t, ok := m.Get(name); ok {
		return t, nil
	}
	return Topic{}, &TopicError{Type: ErrorTopicNotFound, Topic: name, Message: "not registered"}
}

// List returns all topics sorted by name.
func (m *Manager) List() []Topic {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Topic, 0, len(m.topics))
	for _, t := range m.topics {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// ListByModule returns the topics owned by module, sorted by name.
func (m *Manager) ListByModule(module string) []Topic {
	var out []Topic
	for _, t := range m.List() {
		if t.Module() == module {
			out = append(out, t)
		}
	}
	return out
}

// ListModules returns the distinct owning modules, sorted.
func (m *Manager) ListModules() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range m.List() {
		if t.Module() != "" && !seen[t.Module()] {
			seen[t.Module()] = true
			out = append(out, t.Module())
		}
	}
	sort.Strings(out)
	return out
}

// Count returns the number of registered topics.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.topics)
}

var defaultManager = NewManager()

// Default returns the process-wide manager that typed events register with.
func Default() *Manager {
	return defaultManager
}
