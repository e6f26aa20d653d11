package game

// Phase is a room's position in the game state machine.
type Phase string

const (
	PhaseWaiting    Phase = "waiting"
	PhaseRoleReveal Phase = "role_reveal"
	PhaseDiscussion Phase = "discussion"
	PhaseVoting     Phase = "voting"
	PhaseEnded      Phase = "ended"
)

func (p Phase) String() string {
	return string(p)
}

var phaseTransitions = map[Phase][]Phase{
	PhaseWaiting:    {PhaseRoleReveal},
	PhaseRoleReveal: {PhaseDiscussion},
	PhaseDiscussion: {PhaseVoting},
	PhaseVoting:     {PhaseDiscussion, PhaseEnded},
}

// CanTransitionTo reports whether moving from p to target is a legal
// step. waiting and ended have no outgoing transitions besides the
// table above; a new game requires a new room.
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, next := range phaseTransitions[p] {
		if next == target {
			return true
		}
	}
	return false
}

// InProgress reports whether a game is running in this phase.
func (p Phase) InProgress() bool {
	switch p {
	case PhaseRoleReveal, PhaseDiscussion, PhaseVoting:
		return true
	}
	return false
}
