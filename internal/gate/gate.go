// Package gate persists the manual test-sign-off checklist: a fixed vector
// of ten booleans that gates the "ready to ship" state. It lives in its own
// slot, separate from analysis history.
package gate

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/placement-readiness/internal/store"
)

// Length is the fixed checklist size.
const Length = 10

// Slot is the default slot name for the gate vector.
const Slot = "prp_test_checklist"

// Gate reads and writes the sign-off vector. Corrupt or missing content
// degrades to all-false, never to an error.
type Gate struct {
	slot store.Slot
}

// New builds a Gate over the given slot.
func New(slot store.Slot) *Gate {
	return &Gate{slot: slot}
}

func defaultVector() []bool {
	return make([]bool, Length)
}

// Get returns the current vector, all false when unset or unreadable.
func (g *Gate) Get(ctx context.Context) []bool {
	payload, err := g.slot.Read(ctx)
	if err != nil {
		log.Printf("gate: read failed, using defaults: %v", err)
		return defaultVector()
	}
	if len(payload) == 0 {
		return defaultVector()
	}

	var vector []bool
	if err := json.Unmarshal(payload, &vector); err != nil || len(vector) != Length {
		return defaultVector()
	}
	return vector
}

// Set persists the vector, coerced to exactly ten entries (missing items
// become false, extras are dropped). The coerced vector is returned even
// when persisting fails.
func (g *Gate) Set(ctx context.Context, vector []bool) []bool {
	normalized := defaultVector()
	for i := 0; i < Length && i < len(vector); i++ {
		normalized[i] = vector[i]
	}

	payload, err := json.Marshal(normalized)
	if err != nil {
		log.Printf("gate: failed to marshal vector: %v", err)
		return normalized
	}
	if err := g.slot.Write(ctx, payload); err != nil {
		log.Printf("gate: write failed, vector kept in memory only: %v", err)
	}
	return normalized
}

// Reset clears every item.
func (g *Gate) Reset(ctx context.Context) []bool {
	return g.Set(ctx, defaultVector())
}

// IsComplete reports whether all ten items are checked.
func (g *Gate) IsComplete(ctx context.Context) bool {
	for _, checked := range g.Get(ctx) {
		if !checked {
			return false
		}
	}
	return true
}
