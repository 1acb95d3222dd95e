package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBusinessID(t *testing.T) {
	id := NewBusinessID("V")
	assert.True(t, strings.HasPrefix(id, "V-"))
	assert.Len(t, id, 10)

	// Different calls produce different ids
	other := NewBusinessID("V")
	assert.NotEqual(t, id, other)

	campaign := NewBusinessID("C")
	assert.True(t, strings.HasPrefix(campaign, "C-"))
}
