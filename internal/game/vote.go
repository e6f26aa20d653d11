package game

// SkipVote is the sentinel target for a vote cast against no one.
const SkipVote = ""

// TallyResult is the outcome of counting one voting round.
type TallyResult struct {
	EliminatedID    string
	VoteCounts      map[string]int
	Tie             bool
	SkipVotes       int
	MajoritySkipped bool
}

// Decisive reports whether the round produced a clean elimination.
// Ties and majority skips return the room to discussion instead.
func (r TallyResult) Decisive() bool {
	return r.EliminatedID != "" && !r.Tie && !r.MajoritySkipped
}

// TallyVotes counts a round's votes (voter id -> target id, empty
// target = skip) and selects the elimination target. A round with no
// non-skip votes, or with more than one top target, is a tie.
func TallyVotes(votes map[string]string) TallyResult {
	voteCounts := make(map[string]int)
	skipVotes := 0
	for _, targetID := range votes {
		if targetID == SkipVote {
			skipVotes++
			continue
		}
		voteCounts[targetID]++
	}

	result := TallyResult{
		VoteCounts:      voteCounts,
		SkipVotes:       skipVotes,
		MajoritySkipped: skipVotes*2 > len(votes),
	}

	if len(voteCounts) == 0 {
		result.Tie = true
		return result
	}

	maxVotes := 0
	for _, count := range voteCounts {
		if count > maxVotes {
			maxVotes = count
		}
	}
	var topTargets []string
	for targetID, count := range voteCounts {
		if count == maxVotes {
			topTargets = append(topTargets, targetID)
		}
	}

	if len(topTargets) > 1 {
		result.Tie = true
		return result
	}
	result.EliminatedID = topTargets[0]
	return result
}
