package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDateOrToday_Internal tests the default day bucket used by LogTime
func TestDateOrToday_Internal(t *testing.T) {
	// 01:30 on the 16th at UTC+2 is still the 15th in UTC
	local := time.Date(2024, 3, 16, 1, 30, 0, 0, time.FixedZone("UTC+2", 2*60*60))
	ledger := &TimeLedger{store: &EventStore{now: func() time.Time { return local }}}

	assert.Equal(t, "2024-03-15", ledger.dateOrToday(""))
	assert.Equal(t, "2024-03-20", ledger.dateOrToday("2024-03-20"))
}
