package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		s := New()
		require.False(t, seen[s], "duplicate id %s", s)
		seen[s] = true
	}
}

func TestNew_NonEmpty(t *testing.T) {
	assert.NotEmpty(t, New())
}
