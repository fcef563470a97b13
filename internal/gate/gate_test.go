package gate

import (
	"context"
	"testing"

	"github.com/jonathan/placement-readiness/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_DefaultsToAllFalse(t *testing.T) {
	g := New(store.NewMemorySlot())

	got := g.Get(context.Background())
	require.Len(t, got, Length)
	for _, checked := range got {
		assert.False(t, checked)
	}
	assert.False(t, g.IsComplete(context.Background()))
}

func TestGate_SetPersists(t *testing.T) {
	slot := store.NewMemorySlot()
	g := New(slot)
	ctx := context.Background()

	vector := make([]bool, Length)
	vector[0] = true
	vector[9] = true
	g.Set(ctx, vector)

	got := New(slot).Get(ctx)
	assert.Equal(t, vector, got)
}

func TestGate_SetCoercesLength(t *testing.T) {
	g := New(store.NewMemorySlot())
	ctx := context.Background()

	// Short input pads with false.
	got := g.Set(ctx, []bool{true, true})
	require.Len(t, got, Length)
	assert.True(t, got[0])
	assert.True(t, got[1])
	assert.False(t, got[2])

	// Long input drops the extras.
	long := make([]bool, Length+5)
	for i := range long {
		long[i] = true
	}
	got = g.Set(ctx, long)
	require.Len(t, got, Length)
}

func TestGate_CorruptPayloadDegradesToDefaults(t *testing.T) {
	cases := map[string]string{
		"not json":     `{{{`,
		"wrong type":   `{"a": 1}`,
		"wrong length": `[true, false]`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			slot := store.NewMemorySlot()
			slot.Seed([]byte(payload))

			got := New(slot).Get(context.Background())
			assert.Equal(t, make([]bool, Length), got)
		})
	}
}

func TestGate_ReadFailureDegradesToDefaults(t *testing.T) {
	slot := store.NewMemorySlot()
	slot.FailReads = true

	got := New(slot).Get(context.Background())
	assert.Equal(t, make([]bool, Length), got)
}

func TestGate_WriteFailureStillReturnsCoercedVector(t *testing.T) {
	slot := store.NewMemorySlot()
	slot.FailWrites = true
	g := New(slot)

	got := g.Set(context.Background(), []bool{true})
	require.Len(t, got, Length)
	assert.True(t, got[0])
}

func TestGate_IsCompleteOnlyWhenAllChecked(t *testing.T) {
	g := New(store.NewMemorySlot())
	ctx := context.Background()

	all := make([]bool, Length)
	for i := range all {
		all[i] = true
	}
	g.Set(ctx, all)
	assert.True(t, g.IsComplete(ctx))

	all[4] = false
	g.Set(ctx, all)
	assert.False(t, g.IsComplete(ctx))
}

func TestGate_Reset(t *testing.T) {
	g := New(store.NewMemorySlot())
	ctx := context.Background()

	all := make([]bool, Length)
	for i := range all {
		all[i] = true
	}
	g.Set(ctx, all)

	got := g.Reset(ctx)
	assert.Equal(t, make([]bool, Length), got)
	assert.Equal(t, make([]bool, Length), g.Get(ctx))
}
