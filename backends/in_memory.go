/*
Package backends provides different storage back ends for the content records
of a publishing node. Backends need only be k/v stores. The in-memory store is
the default and useful for testing.
*/
package backends

import (
	"encoding/json"
	"errors"
	"sync"

	logger "github.com/pyopensci/site-backend/log"
)

var log = logger.Get()
var inMemLogger = log.WithField("prefix", "IN-MEMORY STORE")

// InMemoryBackend implements content.Store with a mutex-guarded map
type InMemoryBackend struct {
	mu sync.RWMutex
	kv map[string]interface{}
}

// Init will create the initial in-memory store structures
func (m *InMemoryBackend) Init(config interface{}) error {
	m.kv = make(map[string]interface{})
	return nil
}

// SetKey will set the value of a key in the map
func (m *InMemoryBackend) SetKey(key string, val interface{}) error {
	if m.kv == nil {
		return errors.New("store not initialised")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[key] = val
	return nil
}

// GetKey decodes the value stored under key into target
func (m *InMemoryBackend) GetKey(key string, target interface{}) error {
	m.mu.RLock()
	v, ok := m.kv[key]
	m.mu.RUnlock()

	if !ok {
		return errors.New("not found")
	}

	// round-trip so callers always get the same decode behaviour as the
	// network-backed stores
	asJSON, err := json.Marshal(v)
	if err != nil {
		inMemLogger.WithField("error", err).Error("Couldn't encode stored value")
		return err
	}
	return json.Unmarshal(asJSON, target)
}

// GetAll returns every value in the store
func (m *InMemoryBackend) GetAll() []interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	target := make([]interface{}, 0, len(m.kv))
	for _, v := range m.kv {
		target = append(target, v)
	}
	return target
}

// DeleteKey removes a key from the map
func (m *InMemoryBackend) DeleteKey(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.kv[key]; !ok {
		return errors.New("not found")
	}

	delete(m.kv, key)
	return nil
}
