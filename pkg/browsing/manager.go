package browsing

import (
	"sync"
)

// Manager tracks the browsing contexts of one remote end.
type Manager struct {
	mu       sync.Mutex
	contexts map[string]*Context
}

// NewManager creates an empty context manager.
func NewManager() *Manager {
	return &Manager{contexts: make(map[string]*Context)}
}

// Add registers a context.
func (m *Manager) Add(c *Context) {
	m.mu.Lock()
	m.contexts[c.ID()] = c
	m.mu.Unlock()
}

// Get returns a context by ID.
func (m *Manager) Get(id string) (*Context, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.contexts[id]
	return c, ok
}

// List returns all registered context IDs.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.contexts))
	for id := range m.contexts {
		ids = append(ids, id)
	}
	return ids
}

// CloseContext closes and removes a context.
func (m *Manager) CloseContext(id string) error {
	m.mu.Lock()
	c, ok := m.contexts[id]
	if ok {
		delete(m.contexts, id)
	}
	m.mu.Unlock()
	if !ok {
		return ErrContextClosed
	}
	c.Close()
	return nil
}

// Close closes every context.
func (m *Manager) Close() {
	m.mu.Lock()
	contexts := make([]*Context, 0, len(m.contexts))
	for _, c := range m.contexts {
		contexts = append(contexts, c)
	}
	m.contexts = make(map[string]*Context)
	m.mu.Unlock()

	for _, c := range contexts {
		c.Close()
	}
}
