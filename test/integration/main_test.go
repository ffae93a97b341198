package integration

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies that no goroutines leak across the integration suite.
// Hashing and token generation are synchronous, so any leftover goroutine
// points at a real cleanup bug.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
