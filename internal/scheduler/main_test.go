package scheduler

import (
	"testing"

	"go.uber.org/goleak"
)

// Every loop in this package must exit when its context is cancelled.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
