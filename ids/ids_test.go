package ids_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/securevoice/securevoice-core/ids"
)

func TestNewComplaintIDFormat(t *testing.T) {
	id := ids.NewComplaintID()
	assert.True(t, strings.HasPrefix(id, "C"))
	// millisecond timestamp plus 5 suffix characters
	assert.GreaterOrEqual(t, len(id), 1+13+5)
}

func TestNewComplaintIDPracticallyUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := ids.NewComplaintID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewID(t *testing.T) {
	assert.NotEqual(t, ids.NewID(), ids.NewID())
}
