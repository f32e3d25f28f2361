package annotations

import (
	"sync"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Manager tracks live annotations for one map view. All mutation happens
// on the application thread, but the store tolerates interleaved reads
// from event decoding.
type Manager struct {
	mu   sync.RWMutex
	byID map[string]Annotation
}

// NewManager creates an empty annotation store.
func NewManager() *Manager {
	return &Manager{byID: make(map[string]Annotation)}
}

// Add registers an annotation, assigning a generated id when the
// application supplied none, and returns the effective id.
func (m *Manager) Add(a Annotation) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID() == "" {
		a.setID(uuid.NewString())
	}
	m.byID[a.ID()] = a
	return a.ID()
}

// Get returns the annotation with the given id.
func (m *Manager) Get(id string) (Annotation, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.byID[id]
	return a, ok
}

// Remove forgets the annotation with the given id.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return false
	}
	delete(m.byID, id)
	return true
}

// UpdateGeometry moves an annotation, typically in response to a native
// drag event. Returns false for unknown ids or mismatched geometry.
func (m *Manager) UpdateGeometry(id string, g orb.Geometry) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return false
	}
	return a.SetGeometry(g)
}

// All returns the live annotations in unspecified order.
func (m *Manager) All() []Annotation {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Annotation, 0, len(m.byID))
	for _, a := range m.byID {
		out = append(out, a)
	}
	return out
}

// Len returns the number of live annotations.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}

// Clear forgets all annotations.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID = make(map[string]Annotation)
}
