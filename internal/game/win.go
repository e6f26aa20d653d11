package game

import "time"

// Result names the winning side of a finished game.
type Result string

const (
	WinnerNone      Result = ""
	WinnerPlayers   Result = "players"
	WinnerImpostors Result = "impostors"
)

// CheckWinCondition decides whether the game is over. Rules apply in
// order: crew wins once no impostor is active while crew remains;
// impostors win by matching the active crew count; impostors also win
// when the time limit has elapsed. elapsed is ignored when timeLimit
// is zero (game not started).
func CheckWinCondition(activeIDs, impostorIDs []string, elapsed, timeLimit time.Duration) Result {
	impostors := make(map[string]struct{}, len(impostorIDs))
	for _, id := range impostorIDs {
		impostors[id] = struct{}{}
	}

	activeImpostors := 0
	activeCrew := 0
	for _, id := range activeIDs {
		if _, ok := impostors[id]; ok {
			activeImpostors++
		} else {
			activeCrew++
		}
	}

	if activeImpostors == 0 && activeCrew > 0 {
		return WinnerPlayers
	}
	if activeImpostors >= activeCrew {
		return WinnerImpostors
	}
	if timeLimit > 0 && elapsed >= timeLimit {
		return WinnerImpostors
	}
	return WinnerNone
}
