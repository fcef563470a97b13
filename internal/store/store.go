// Package store persists analysis entries as one serialized
// most-recent-first list under a named slot. The slot backend is
// pluggable (file, Postgres, memory); the list semantics live here.
//
// The store is scoped to a single client: updates are whole-list
// read-modify-write with last-writer-wins, by design.
package store

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/jonathan/placement-readiness/internal/schema"
)

// now is stubbed in tests.
var now = func() time.Time { return time.Now().UTC() }

// HistorySlot is the default slot name for analysis history.
const HistorySlot = "placement_readiness_history"

// Slot is a single named durable byte payload. Read returns nil when the
// slot has never been written.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, payload []byte) error
}

// Store is the history contract consumed by the CLI and server. Lookups
// signal not-found with a nil entry and nil error; write failures degrade
// to the in-memory entry rather than propagating.
type Store interface {
	Create(ctx context.Context, entry *schema.AnalysisEntry) (*schema.AnalysisEntry, error)
	Update(ctx context.Context, id string, apply func(*schema.AnalysisEntry)) (*schema.AnalysisEntry, error)
	ListAll(ctx context.Context) ([]*schema.AnalysisEntry, int, error)
	GetByID(ctx context.Context, id string) (*schema.AnalysisEntry, error)
	GetLatest(ctx context.Context) (*schema.AnalysisEntry, error)
}

// listStore implements Store over any Slot.
type listStore struct {
	slot Slot
}

// New builds a Store over the given slot.
func New(slot Slot) Store {
	return &listStore{slot: slot}
}

// readList loads and decodes the full list. Corrupt slot content or
// unreadable records degrade to fewer entries, never to an error; the
// second return is how many records were dropped.
func (s *listStore) readList(ctx context.Context) ([]*schema.AnalysisEntry, int) {
	payload, err := s.slot.Read(ctx)
	if err != nil {
		log.Printf("store: read failed, treating as empty: %v", err)
		return []*schema.AnalysisEntry{}, 0
	}
	if len(payload) == 0 {
		return []*schema.AnalysisEntry{}, 0
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(payload, &raws); err != nil {
		log.Printf("store: corrupt slot payload, treating as empty: %v", err)
		return []*schema.AnalysisEntry{}, 0
	}

	entries := make([]*schema.AnalysisEntry, 0, len(raws))
	corrupted := 0
	for _, raw := range raws {
		if !schema.IsValidEntry(raw) {
			corrupted++
			continue
		}
		entry, err := schema.DecodeEntry(raw)
		if err != nil {
			corrupted++
			continue
		}
		entries = append(entries, entry)
	}
	return entries, corrupted
}

// writeList persists the full list. Failure is logged, not returned; the
// caller keeps its in-memory copy.
func (s *listStore) writeList(ctx context.Context, entries []*schema.AnalysisEntry) {
	payload, err := json.Marshal(entries)
	if err != nil {
		log.Printf("store: failed to marshal list: %v", err)
		return
	}
	if err := s.slot.Write(ctx, payload); err != nil {
		log.Printf("store: write failed, entry kept in memory only: %v", err)
	}
}

// Create prepends the entry (most-recent-first) and persists the list.
func (s *listStore) Create(ctx context.Context, entry *schema.AnalysisEntry) (*schema.AnalysisEntry, error) {
	entries, _ := s.readList(ctx)
	entries = append([]*schema.AnalysisEntry{entry}, entries...)
	s.writeList(ctx, entries)
	return entry, nil
}

// Update applies a mutation to the entry with the given id, bumps
// updatedAt, and persists. Returns (nil, nil) when the id is absent.
func (s *listStore) Update(ctx context.Context, id string, apply func(*schema.AnalysisEntry)) (*schema.AnalysisEntry, error) {
	entries, _ := s.readList(ctx)
	for i, entry := range entries {
		if entry.ID != id {
			continue
		}
		apply(entry)
		entry.UpdatedAt = now()
		entries[i] = entry
		s.writeList(ctx, entries)
		return entry, nil
	}
	return nil, nil
}

// ListAll returns every valid entry most-recent-first, plus the count of
// corrupted records that were filtered out.
func (s *listStore) ListAll(ctx context.Context) ([]*schema.AnalysisEntry, int, error) {
	entries, corrupted := s.readList(ctx)
	return entries, corrupted, nil
}

// GetByID returns the entry, or (nil, nil) when absent.
func (s *listStore) GetByID(ctx context.Context, id string) (*schema.AnalysisEntry, error) {
	entries, _ := s.readList(ctx)
	for _, entry := range entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return nil, nil
}

// GetLatest returns the most recent entry, or (nil, nil) when empty.
func (s *listStore) GetLatest(ctx context.Context) (*schema.AnalysisEntry, error) {
	entries, _ := s.readList(ctx)
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0], nil
}
