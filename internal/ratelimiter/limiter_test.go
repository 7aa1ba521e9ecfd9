package ratelimiter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fulfilmenthub/notify-adapter/internal/ratelimiter"
)

func TestLimiter_Allow(t *testing.T) {
	l := ratelimiter.New(2)

	// Burst equals the rate: two immediate requests pass, the third is shed.
	assert.True(t, l.Allow())
	assert.True(t, l.Allow())
	assert.False(t, l.Allow())
}
