package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDictionary_Ranking: 1-based ranks in input order, first
// occurrence wins, input is folded and trimmed.
func TestNewDictionary_Ranking(t *testing.T) {
	d := NewDictionary("t", []string{"Alpha", "beta", " alpha ", "", "gamma"}, false)

	assert.Equal(t, 1, d.Rank("alpha"))
	assert.Equal(t, 2, d.Rank("beta"))
	assert.Equal(t, 5, d.Rank("gamma")) // blanks still consume a slot
	assert.Equal(t, 0, d.Rank("delta"))
	assert.False(t, d.Exclusion)
}

// TestDefaultDictionaries sanity-checks the embedded lists and that the
// well-known heads rank first.
func TestDefaultDictionaries(t *testing.T) {
	dicts := DefaultDictionaries()
	require.Len(t, dicts, 3)

	byName := map[string]Dictionary{}
	for _, d := range dicts {
		byName[d.Name] = d
	}
	require.Contains(t, byName, "passwords")
	require.Contains(t, byName, "english")
	require.Contains(t, byName, "names")

	assert.Equal(t, 1, byName["passwords"].Rank("123456"))
	assert.Equal(t, 2, byName["passwords"].Rank("password"))
	assert.Positive(t, byName["passwords"].Rank("qwerty"))
	assert.Positive(t, byName["english"].Rank("horse"))
	assert.Positive(t, byName["english"].Rank("battery"))
	assert.Positive(t, byName["names"].Rank("james"))

	// Comment lines never become words.
	assert.Zero(t, byName["english"].Rank("# frequent english words, frequency-ranked."))
}
