// Package repository provides key store implementations.
//
// Two stores are included: an in-memory store for tests and embedded use, and
// a SQLite-backed store for desktop and CLI deployments where key material is
// wrapped at rest by a KMS keeper. On the phones the platform secure store
// (Keychain/Keystore) takes this role; both implementations satisfy the same
// KeyProvider interface consumed by the vault use case.
package repository

import (
	"context"
	"sync"

	keystoreDomain "github.com/AnakAmira/amira-vault/internal/keystore/domain"
)

// MemoryKeyRepository is a thread-safe in-memory key store.
type MemoryKeyRepository struct {
	mu   sync.RWMutex
	keys map[string]*keystoreDomain.Key
}

// NewMemoryKeyRepository creates an empty in-memory key store.
func NewMemoryKeyRepository() *MemoryKeyRepository {
	return &MemoryKeyRepository{
		keys: make(map[string]*keystoreDomain.Key),
	}
}

// Resolve returns the key for the given identifier with Material populated.
// Returns ErrKeyNotFound if no key exists for the identifier.
func (m *MemoryKeyRepository) Resolve(
	ctx context.Context,
	identifier string,
) (*keystoreDomain.Key, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	key, ok := m.keys[identifier]
	if !ok {
		return nil, keystoreDomain.ErrKeyNotFound
	}

	// Copy so callers can zero Material without mutating the store.
	out := *key
	out.Material = make([]byte, len(key.Material))
	copy(out.Material, key.Material)
	return &out, nil
}

// Store saves the key, replacing any existing key with the same identifier
// (last write wins).
func (m *MemoryKeyRepository) Store(ctx context.Context, key *keystoreDomain.Key) error {
	if err := keystoreDomain.ValidateIdentifier(key.Identifier); err != nil {
		return err
	}

	stored := *key
	stored.Material = make([]byte, len(key.Material))
	copy(stored.Material, key.Material)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[key.Identifier] = &stored
	return nil
}

// Delete removes the key for the identifier. Deleting an absent identifier is
// not an error.
func (m *MemoryKeyRepository) Delete(ctx context.Context, identifier string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, identifier)
	return nil
}
