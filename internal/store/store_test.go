package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jonathan/placement-readiness/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(id, jd string) *schema.AnalysisEntry {
	return schema.BuildEntry(schema.BuildParams{ID: id, JDText: jd, BaseScore: 50})
}

func TestStore_CreateIsMostRecentFirst(t *testing.T) {
	s := New(NewMemorySlot())
	ctx := context.Background()

	for _, id := range []string{"first", "second", "third"} {
		_, err := s.Create(ctx, testEntry(id, "jd"))
		require.NoError(t, err)
	}

	entries, corrupted, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, corrupted)
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].ID)
	assert.Equal(t, "second", entries[1].ID)
	assert.Equal(t, "first", entries[2].ID)

	latest, err := s.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "third", latest.ID)
}

func TestStore_EmptySlot(t *testing.T) {
	s := New(NewMemorySlot())
	ctx := context.Background()

	entries, corrupted, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Zero(t, corrupted)

	latest, err := s.GetLatest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestStore_GetByID(t *testing.T) {
	s := New(NewMemorySlot())
	ctx := context.Background()

	_, err := s.Create(ctx, testEntry("known", "jd"))
	require.NoError(t, err)

	got, err := s.GetByID(ctx, "known")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "known", got.ID)

	// Absent ids are not an error.
	got, err = s.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Update(t *testing.T) {
	restore := now
	defer func() { now = restore }()
	frozen := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return frozen }

	s := New(NewMemorySlot())
	ctx := context.Background()

	_, err := s.Create(ctx, testEntry("e1", "jd"))
	require.NoError(t, err)

	updated, err := s.Update(ctx, "e1", func(e *schema.AnalysisEntry) {
		e.FinalScore = 77
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 77, updated.FinalScore)
	assert.Equal(t, frozen, updated.UpdatedAt)

	// The mutation persisted.
	got, err := s.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 77, got.FinalScore)

	missing, err := s.Update(ctx, "nope", func(e *schema.AnalysisEntry) {})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_CorruptedRecordsFilteredAndCounted(t *testing.T) {
	slot := NewMemorySlot()
	good, err := json.Marshal(testEntry("good", "jd"))
	require.NoError(t, err)

	payload := []byte(`[` + string(good) + `, {"noId": true}, 42, {"id": "x"}]`)
	slot.Seed(payload)

	s := New(slot)
	entries, corrupted, err := s.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "good", entries[0].ID)
	assert.Equal(t, 3, corrupted)
}

func TestStore_CorruptSlotPayloadTreatedAsEmpty(t *testing.T) {
	slot := NewMemorySlot()
	slot.Seed([]byte(`{not json at all`))

	s := New(slot)
	entries, corrupted, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Zero(t, corrupted)
}

func TestStore_ReadFailureTreatedAsEmpty(t *testing.T) {
	slot := NewMemorySlot()
	slot.FailReads = true

	s := New(slot)
	entries, corrupted, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Zero(t, corrupted)
}

func TestStore_WriteFailureKeepsEntryInMemory(t *testing.T) {
	slot := NewMemorySlot()
	slot.FailWrites = true

	s := New(slot)
	entry, err := s.Create(context.Background(), testEntry("volatile", "jd"))
	require.NoError(t, err)
	assert.Equal(t, "volatile", entry.ID)

	// Nothing was persisted; a fresh read sees an empty history.
	entries, _, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_LegacyRecordsDecodeOnRead(t *testing.T) {
	slot := NewMemorySlot()
	slot.Seed([]byte(`[{
		"id": "legacy",
		"jdText": "React role",
		"extractedSkills": {"categories": {"Web": ["React"]}},
		"readinessScore": 61
	}]`))

	s := New(slot)
	entries, corrupted, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, corrupted)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"React"}, entries[0].ExtractedSkills.Web)
	assert.Equal(t, 61, entries[0].FinalScore)
}
