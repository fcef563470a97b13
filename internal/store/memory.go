package store

import "context"

// MemorySlot is a volatile slot for tests and throwaway runs.
type MemorySlot struct {
	payload []byte

	// FailWrites makes Write return an error, for exercising the
	// degrade-to-memory path.
	FailWrites bool
	// FailReads makes Read return an error.
	FailReads bool
}

// NewMemorySlot returns an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Read returns the current payload (nil until first write).
func (s *MemorySlot) Read(_ context.Context) ([]byte, error) {
	if s.FailReads {
		return nil, errSlotUnavailable
	}
	if s.payload == nil {
		return nil, nil
	}
	return append([]byte{}, s.payload...), nil
}

// Write replaces the payload.
func (s *MemorySlot) Write(_ context.Context, payload []byte) error {
	if s.FailWrites {
		return errSlotUnavailable
	}
	s.payload = append([]byte{}, payload...)
	return nil
}

// Seed replaces the payload directly, bypassing failure flags. Test helper.
func (s *MemorySlot) Seed(payload []byte) {
	s.payload = append([]byte{}, payload...)
}
