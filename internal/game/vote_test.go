package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyVotesEmpty(t *testing.T) {
	result := TallyVotes(map[string]string{})

	assert.Empty(t, result.EliminatedID)
	assert.True(t, result.Tie)
	assert.Zero(t, result.SkipVotes)
	assert.False(t, result.MajoritySkipped)
	assert.False(t, result.Decisive())
}

func TestTallyVotesClearMajority(t *testing.T) {
	result := TallyVotes(map[string]string{
		"a": "x",
		"b": "x",
		"c": "y",
	})

	assert.Equal(t, "x", result.EliminatedID)
	assert.False(t, result.Tie)
	assert.Equal(t, map[string]int{"x": 2, "y": 1}, result.VoteCounts)
	assert.True(t, result.Decisive())
}

func TestTallyVotesTwoWayTie(t *testing.T) {
	result := TallyVotes(map[string]string{
		"a": "x",
		"b": "y",
	})

	assert.True(t, result.Tie)
	assert.Empty(t, result.EliminatedID)
	assert.False(t, result.Decisive())
}

func TestTallyVotesMajoritySkip(t *testing.T) {
	result := TallyVotes(map[string]string{
		"a": SkipVote,
		"b": SkipVote,
		"c": "x",
	})

	assert.True(t, result.MajoritySkipped)
	assert.Equal(t, 2, result.SkipVotes)
	// x still tops the counts but the round is not decisive.
	assert.Equal(t, "x", result.EliminatedID)
	assert.False(t, result.Decisive())
}

func TestTallyVotesAllSkipped(t *testing.T) {
	result := TallyVotes(map[string]string{
		"a": SkipVote,
		"b": SkipVote,
	})

	assert.True(t, result.Tie)
	assert.True(t, result.MajoritySkipped)
	assert.Empty(t, result.EliminatedID)
	assert.Equal(t, 2, result.SkipVotes)
}

func TestTallyVotesHalfSkippedIsNotMajority(t *testing.T) {
	result := TallyVotes(map[string]string{
		"a": SkipVote,
		"b": SkipVote,
		"c": "x",
		"d": "x",
	})

	assert.False(t, result.MajoritySkipped)
	assert.Equal(t, "x", result.EliminatedID)
	assert.True(t, result.Decisive())
}
