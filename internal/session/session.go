// Package session keeps uploaded tables and their classification
// results in memory between the upload, column-selection, and download
// steps of the HTTP flow.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/sells-group/colsense/internal/classify"
	"github.com/sells-group/colsense/internal/dataset"
)

// Session holds one uploaded file's state.
type Session struct {
	ID         string
	Filename   string
	Table      dataset.Table
	Results    []classify.Result
	FileSizeMB float64
	CreatedAt  time.Time

	// Set by the process step.
	Processed *ProcessedView
}

// ProcessedView is the cleaned projection of a session's table: the
// selected columns with their classified headers.
type ProcessedView struct {
	Headers   map[string]string // original column name → export header
	Selected  []string          // original column names, table order
	Processed time.Time
}

// Manager is a TTL-bounded in-memory session store.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewManager creates a manager; sessions expire after ttl.
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create registers a new session and returns it with a fresh id.
func (m *Manager) Create(filename string, table dataset.Table, results []classify.Result, sizeMB float64) *Session {
	s := &Session{
		ID:         uuid.New().String(),
		Filename:   filename,
		Table:      table,
		Results:    results,
		FileSizeMB: sizeMB,
		CreatedAt:  time.Now().UTC(),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session by id, or an error when absent or expired.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, eris.Errorf("session: %s not found", id)
	}
	if time.Since(s.CreatedAt) > m.ttl {
		m.Delete(id)
		return nil, eris.Errorf("session: %s expired", id)
	}
	return s, nil
}

// Delete removes a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// PurgeExpired removes all expired sessions and reports how many.
func (m *Manager) PurgeExpired() int {
	cutoff := time.Now().Add(-m.ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.CreatedAt.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// Len reports the live session count.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
