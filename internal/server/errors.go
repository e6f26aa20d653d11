package server

import "errors"

// Validation failures surfaced to the acting client. None of these
// leave partial state behind and none are retried.
var (
	ErrRoomFull               = errors.New("room is full")
	ErrAlreadyActive          = errors.New("player is already active in this room")
	ErrNotHost                = errors.New("only the host can do that")
	ErrPlayersNotReady        = errors.New("all players must be ready")
	ErrNotEnoughPlayers       = errors.New("not enough players to start")
	ErrNotActivePlayer        = errors.New("player is not active in this game")
	ErrInvalidVoteTarget      = errors.New("vote target is not an active player")
	ErrInvalidPhaseTransition = errors.New("invalid phase transition")
)

// errStale marks a deferred action that found the room already moved
// on. It is swallowed by timer callbacks, never surfaced.
var errStale = errors.New("room state changed")
