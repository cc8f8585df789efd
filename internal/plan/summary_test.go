package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bulkrenamer/internal/engine"
)

func TestSummarize(t *testing.T) {
	_, entries := dirWith(t, "Photo 1.JPG", "Photo 2.JPG", "photo 1.jpg", "lower.txt")
	rules := []engine.Rule{
		{Op: engine.OpLowercase},
		{Op: engine.OpSpacesToUnderscores},
	}

	sum := Summarize(Build(entries, rules))

	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 1, sum.Renamable)
	assert.Equal(t, 1, sum.Unchanged)
	assert.Len(t, sum.Duplicates, 2)
	assert.Empty(t, sum.Illegal)
	assert.Empty(t, sum.Exists)
}
