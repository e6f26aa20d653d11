package server

import (
	"encoding/json"
	"time"
)

// Client command types. The websocket read loop dispatches on these
// and answers anything outside the set with an error event.
const (
	cmdJoinRoom        = "join_room"
	cmdLeaveRoom       = "leave_room"
	cmdPlayerReady     = "player_ready"
	cmdStartGame       = "start_game"
	cmdCallVote        = "call_vote"
	cmdCastVote        = "cast_vote"
	cmdTransitionPhase = "transition_phase"
	cmdPing            = "ping"
)

// Server event types.
const (
	eventConnect      = "connect"
	eventReconnect    = "reconnect"
	eventRoomUpdate   = "room_update"
	eventRoleAssigned = "role_assigned"
	eventPhaseChange  = "phase_change"
	eventVoteUpdate   = "vote_update"
	eventVoteResults  = "vote_results"
	eventGameOver     = "game_over"
	eventError        = "error"
	eventPong         = "pong"
)

type clientCommand struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type joinRoomPayload struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
	PlayerID   string `json:"playerId,omitempty"`
}

type castVotePayload struct {
	TargetID *string `json:"targetId"`
}

type transitionPhasePayload struct {
	Phase string `json:"phase"`
}

type serverEvent struct {
	Type      string `json:"type"`
	Payload   any    `json:"payload"`
	Timestamp int64  `json:"timestamp"`
}

func newEvent(eventType string, payload any) serverEvent {
	return serverEvent{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UnixMilli(),
	}
}

type connectPayload struct {
	PlayerID string `json:"playerId"`
	RoomID   string `json:"roomId"`
}

type roomUpdatePayload struct {
	Room clientRoomInfo `json:"room"`
}

type roleAssignedPayload struct {
	Role string  `json:"role"`
	Word *string `json:"word"`
}

type phaseChangePayload struct {
	Phase     string `json:"phase"`
	VoteRound int    `json:"voteRound,omitempty"`
}

type voteUpdatePayload struct {
	Votes    map[string]string `json:"votes"`
	VoterID  string            `json:"voterId"`
	TargetID *string           `json:"targetId"`
}

type voteResultsPayload struct {
	EliminatedID *string        `json:"eliminatedId"`
	WasImpostor  bool           `json:"wasImpostor"`
	VoteCounts   map[string]int `json:"voteCounts"`
	Tie          bool           `json:"tie"`
	SkipVotes    int            `json:"skipVotes"`
	VoteRound    int            `json:"voteRound"`
}

type gameOverPayload struct {
	Winner      string   `json:"winner"`
	SecretWord  string   `json:"secretWord"`
	ImpostorIDs []string `json:"impostorIds"`
	Players     []Player `json:"players"`
}

type errorPayload struct {
	Message string `json:"message"`
}
