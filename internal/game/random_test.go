package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapPool map[string][]string

func (p mapPool) Words(category string) []string {
	return p[category]
}

func TestSelectImpostorsCount(t *testing.T) {
	players := []string{"p1", "p2", "p3", "p4", "p5"}

	for count := 1; count <= 3; count++ {
		selected, err := SelectImpostors(players, count)
		require.NoError(t, err)
		require.Len(t, selected, count)

		seen := make(map[string]struct{})
		for _, id := range selected {
			assert.Contains(t, players, id)
			_, dup := seen[id]
			assert.False(t, dup, "duplicate impostor %s", id)
			seen[id] = struct{}{}
		}
	}
}

func TestSelectImpostorsInvalidCount(t *testing.T) {
	players := []string{"p1", "p2"}

	_, err := SelectImpostors(players, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = SelectImpostors(players, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = SelectImpostors(nil, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSelectImpostorsUniform(t *testing.T) {
	players := []string{"p1", "p2", "p3", "p4", "p5"}
	const trials = 10000

	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		selected, err := SelectImpostors(players, 1)
		require.NoError(t, err)
		counts[selected[0]]++
	}

	// Expected 2000 per player; sigma is ~40, so a 400 band only fails
	// on a genuinely biased selector.
	for _, id := range players {
		assert.InDelta(t, trials/len(players), counts[id], 400,
			"selection frequency for %s", id)
	}
}

func TestSelectSecretWord(t *testing.T) {
	pool := mapPool{
		"animals": {"Gato", "Perro"},
		"foods":   {"Pan"},
	}

	word, category, err := SelectSecretWord(pool, []string{"animals", "foods"})
	require.NoError(t, err)
	assert.NotEmpty(t, word)
	assert.Contains(t, []string{"animals", "foods"}, category)

	// Unknown categories are skipped, not fatal.
	word, category, err = SelectSecretWord(pool, []string{"missing", "foods"})
	require.NoError(t, err)
	assert.Equal(t, "Pan", word)
	assert.Equal(t, "foods", category)
}

func TestSelectSecretWordEmptyPool(t *testing.T) {
	_, _, err := SelectSecretWord(mapPool{}, []string{"missing"})
	assert.ErrorIs(t, err, ErrNoWordsAvailable)

	_, _, err = SelectSecretWord(mapPool{"animals": {"Gato"}}, nil)
	assert.ErrorIs(t, err, ErrNoWordsAvailable)
}
