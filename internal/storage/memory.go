package storage

import (
	"context"
	"sync"
)

// Memory keeps values in process memory.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, ErrClosed
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.values[key] = value
	return nil
}

func (m *Memory) SetMany(_ context.Context, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	for k, v := range values {
		m.values[k] = v
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

func (m *Memory) Has(ctx context.Context, key string) (bool, error) {
	_, ok, err := m.Get(ctx, key)
	return ok, err
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
