// internal/store/memory.go
//
// In-memory store for rounds played over HTTP.
//
// Characteristics:
//   - Stores *game.Round values keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs the caller's mutation under the write lock, so two guesses
//     for the same round are applied one after the other.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/hangman/internal/game"
)

// ErrNotFound is returned for unknown round IDs.
var ErrNotFound = errors.New("not found")

// Store defines how front ends keep rounds between requests.
type Store interface {
	// Save persists or replaces a round.
	Save(ctx context.Context, r *game.Round) error

	// Get returns a copy of the round with the given ID.
	Get(ctx context.Context, id string) (game.Round, error)

	// Update loads the round, applies fn, and keeps the result if fn succeeds.
	Update(ctx context.Context, id string, fn func(*game.Round) error) (game.Round, error)

	// Delete forgets a round. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Len reports how many rounds are held.
	Len() int
}

type memory struct {
	mu     sync.RWMutex
	rounds map[string]game.Round
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]game.Round)}
}

func (m *memory) Save(ctx context.Context, r *game.Round) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[r.ID] = *r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (game.Round, error) {
	if err := ctx.Err(); err != nil {
		return game.Round{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rounds[id]
	if !ok {
		return game.Round{}, ErrNotFound
	}
	return r, nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Round) error) (game.Round, error) {
	if err := ctx.Err(); err != nil {
		return game.Round{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rounds[id]
	if !ok {
		return game.Round{}, ErrNotFound
	}
	if err := fn(&r); err != nil {
		return m.rounds[id], err
	}
	m.rounds[id] = r
	return r, nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rounds)
}
