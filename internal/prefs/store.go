// Package prefs defines the key/value store the app persists its flags in.
//
// fyne.Preferences satisfies Store directly, so production code passes
// app.Preferences() while tests use Memory.
package prefs

import "sync"

// Store is the subset of fyne.Preferences the app relies on.
type Store interface {
	BoolWithFallback(key string, fallback bool) bool
	SetBool(key string, value bool)
	StringWithFallback(key, fallback string) string
	SetString(key, value string)
	RemoveValue(key string)
}

// Namespaced prefixes every key with "<namespace>." before delegating.
type Namespaced struct {
	store     Store
	namespace string
}

// NewNamespaced wraps store so all keys live under namespace.
func NewNamespaced(store Store, namespace string) *Namespaced {
	return &Namespaced{store: store, namespace: namespace}
}

// Key returns the fully qualified key as written to the underlying store.
func (n *Namespaced) Key(key string) string {
	if n.namespace == "" {
		return key
	}
	return n.namespace + "." + key
}

func (n *Namespaced) BoolWithFallback(key string, fallback bool) bool {
	return n.store.BoolWithFallback(n.Key(key), fallback)
}

func (n *Namespaced) SetBool(key string, value bool) {
	n.store.SetBool(n.Key(key), value)
}

func (n *Namespaced) StringWithFallback(key, fallback string) string {
	return n.store.StringWithFallback(n.Key(key), fallback)
}

func (n *Namespaced) SetString(key, value string) {
	n.store.SetString(n.Key(key), value)
}

func (n *Namespaced) RemoveValue(key string) {
	n.store.RemoveValue(n.Key(key))
}

// Memory is an in-process Store. The zero value is not usable; call NewMemory.
type Memory struct {
	mu     sync.RWMutex
	values map[string]interface{}
	writes int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]interface{})}
}

func (m *Memory) BoolWithFallback(key string, fallback bool) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key].(bool); ok {
		return v
	}
	return fallback
}

func (m *Memory) SetBool(key string, value bool) {
	m.set(key, value)
}

func (m *Memory) StringWithFallback(key, fallback string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key].(string); ok {
		return v
	}
	return fallback
}

func (m *Memory) SetString(key, value string) {
	m.set(key, value)
}

func (m *Memory) RemoveValue(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	m.writes++
}

// Has reports whether key holds a value.
func (m *Memory) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.values[key]
	return ok
}

// Writes returns how many mutating calls the store has seen.
func (m *Memory) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

func (m *Memory) set(key string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.writes++
}
