package registration

import (
	"context"
	"sync"
)

// Store keeps accepted registrations.
type Store interface {
	Insert(ctx context.Context, r *Registration) error
	FindByID(ctx context.Context, id string) (*Registration, error)
	List(ctx context.Context) ([]*Registration, error)
}

// MemoryStore keeps registrations for the life of the process only.
type MemoryStore struct {
	mu   sync.RWMutex
	regs []*Registration
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Insert(_ context.Context, r *Registration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.regs = append(m.regs, &cp)
	return nil
}

func (m *MemoryStore) FindByID(_ context.Context, id string) (*Registration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.regs {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrRegistrationNotFound
}

// List returns registrations in insertion order.
func (m *MemoryStore) List(_ context.Context) ([]*Registration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Registration, len(m.regs))
	for i, r := range m.regs {
		cp := *r
		out[i] = &cp
	}
	return out, nil
}
