package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/entropass/conf"
	"github.com/katalvlaran/entropass/match"
)

func spatialConfig() *conf.Configuration { return conf.New() }

// TestSpatialMatcher_Walk: a straight QWERTY walk.
func TestSpatialMatcher_Walk(t *testing.T) {
	ms, err := SpatialMatcher{}.Match(spatialConfig(), "qwerty")
	require.NoError(t, err)

	require.Len(t, ms, 1)
	m := ms[0]
	assert.Equal(t, match.KindSpatial, m.Kind)
	assert.Equal(t, 0, m.Start)
	assert.Equal(t, 5, m.End)
	assert.Equal(t, "qwerty", m.Detail)
	assert.Positive(t, m.Entropy)
}

// TestSpatialMatcher_BrokenWalk: non-adjacent keys split the walk; pieces
// shorter than three keys are dropped.
func TestSpatialMatcher_BrokenWalk(t *testing.T) {
	ms, err := SpatialMatcher{}.Match(spatialConfig(), "qazwsx")
	require.NoError(t, err)

	require.Len(t, ms, 2)
	assert.Equal(t, "qaz", ms[0].Token)
	assert.Equal(t, 0, ms[0].Start)
	assert.Equal(t, "wsx", ms[1].Token)
	assert.Equal(t, 3, ms[1].Start)

	ms, err = SpatialMatcher{}.Match(spatialConfig(), "qwxp")
	require.NoError(t, err)
	assert.Empty(t, ms)
}

// TestSpatialMatcher_TurnsCostMore: a walk that changes direction must be
// more expensive than a straight walk of the same length.
func TestSpatialMatcher_TurnsCostMore(t *testing.T) {
	straight, err := SpatialMatcher{}.Match(spatialConfig(), "qwert")
	require.NoError(t, err)
	require.Len(t, straight, 1)

	turning, err := SpatialMatcher{}.Match(spatialConfig(), "qwsxc")
	require.NoError(t, err)
	require.Len(t, turning, 1)
	require.Equal(t, straight[0].Length(), turning[0].Length())

	assert.Greater(t, turning[0].Entropy, straight[0].Entropy)
}

// TestSpatialMatcher_ShiftedFaces: shifted faces walk the same keys at a
// surcharge.
func TestSpatialMatcher_ShiftedFaces(t *testing.T) {
	plain, err := SpatialMatcher{}.Match(spatialConfig(), "qwerty")
	require.NoError(t, err)
	require.Len(t, plain, 1)

	mixed, err := SpatialMatcher{}.Match(spatialConfig(), "QwErTy")
	require.NoError(t, err)
	require.Len(t, mixed, 1)
	assert.Equal(t, 0, mixed[0].Start)
	assert.Equal(t, 5, mixed[0].End)
	assert.Greater(t, mixed[0].Entropy, plain[0].Entropy)
}

// TestSpatialMatcher_Keypad: digit walks are found on the keypad graph.
func TestSpatialMatcher_Keypad(t *testing.T) {
	ms, err := SpatialMatcher{}.Match(spatialConfig(), "7412")
	require.NoError(t, err)

	var keypad []match.Match
	for _, m := range ms {
		if m.Detail == "keypad" {
			keypad = append(keypad, m)
		}
	}
	require.Len(t, keypad, 1)
	assert.Equal(t, 0, keypad[0].Start)
	assert.Equal(t, 3, keypad[0].End)
}
