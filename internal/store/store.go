// SPDX-License-Identifier: MIT
// Package: lvseq/internal/store

// Package store keeps the history of generated sequences saved with
// `lvseq gen --save`.
package store

import (
	"context"
	"errors"
	"math/big"
	"time"
)

// ErrNotFound is returned by Get and Delete for an unknown run id.
var ErrNotFound = errors.New("store: run not found")

// Run is one saved generation.
type Run struct {
	ID        string // ULID, assigned by Save
	Name      string // registry name
	Count     int    // requested number of terms
	Terms     []*big.Int
	MaxSteps  int64         // budget in effect, 0 = none
	Timeout   time.Duration // budget in effect, 0 = none
	Elapsed   time.Duration
	CreatedAt time.Time // UTC, assigned by Save
}

// Store defines the run history interface.
type Store interface {
	// Save assigns ID and CreatedAt and persists r.
	Save(ctx context.Context, r Run) (Run, error)

	// Get returns the run with the given id.
	Get(ctx context.Context, id string) (Run, error)

	// List returns up to limit runs, newest first. limit ≤ 0 means all.
	List(ctx context.Context, limit int) ([]Run, error)

	// Delete removes one run.
	Delete(ctx context.Context, id string) error

	// Close releases the underlying database.
	Close() error
}
