package store

import "errors"

// errSlotUnavailable simulates a backing-store outage in tests.
var errSlotUnavailable = errors.New("slot unavailable")
