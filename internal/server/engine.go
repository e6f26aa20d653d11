package server

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/bbauti/impostor/internal/game"
)

// createRoom registers a new room in waiting phase. The creator id is
// handed back to the caller; whoever joins with it becomes (or stays)
// host across reconnects.
func (s *Server) createRoom(settings Settings, isPublic bool) *Room {
	now := time.Now().UTC()
	room := &Room{
		ID:           newRoomCode(),
		CreatorID:    "creator_" + uuid.NewString(),
		IsPublic:     isPublic,
		Settings:     settings,
		Phase:        game.PhaseWaiting,
		Votes:        make(map[string]string),
		CreatedAt:    now,
		LastActivity: now,
	}
	s.store.Put(room)
	return room
}

// joinRoom adds a player, or reactivates a disconnected one when the
// supplied id matches. A non-disconnected id match is rejected so a
// second tab cannot hijack a live seat.
func (s *Server) joinRoom(roomID, playerName, existingID string) (string, bool, error) {
	var joinedID string
	var reconnected bool

	room, err := s.store.Update(roomID, func(room *Room) error {
		if existingID != "" {
			if player := room.FindPlayer(existingID); player != nil {
				if player.Status != statusDisconnected {
					return ErrAlreadyActive
				}
				switch {
				case room.Phase == game.PhaseWaiting:
					player.Status = statusWaiting
				case room.Phase.InProgress():
					player.Status = statusPlaying
				default:
					return ErrInvalidPhaseTransition
				}
				joinedID = existingID
				reconnected = true
				return nil
			}
		}

		if len(room.Players) >= room.Settings.MaxPlayers {
			return ErrRoomFull
		}

		id := uuid.NewString()
		if existingID != "" && existingID == room.CreatorID {
			id = existingID
		}
		isHost := len(room.Players) == 0 || id == room.CreatorID
		if isHost {
			for i := range room.Players {
				room.Players[i].IsHost = false
			}
			room.HostID = id
		}
		room.Players = append(room.Players, Player{
			ID:       id,
			Name:     playerName,
			Status:   statusWaiting,
			IsHost:   isHost,
			JoinedAt: time.Now().UTC(),
		})
		joinedID = id
		return nil
	})
	if err != nil {
		return "", false, err
	}

	s.cancelTimer(roomID + "/leave/" + joinedID)
	s.broadcastRoomUpdate(room)
	if reconnected {
		log.Printf("player reconnected room_id=%s player_id=%s", roomID, joinedID)
	} else {
		log.Printf("player joined room_id=%s player_id=%s name=%s", roomID, joinedID, playerName)
		if err := s.persistEvent(room, "player_joined", map[string]any{
			"playerId": joinedID,
			"name":     playerName,
		}); err != nil {
			log.Printf("persist player_joined failed room_id=%s error=%v", roomID, err)
		}
	}
	return joinedID, reconnected, nil
}

// leaveRoom removes a player. The host role falls to the creator when
// still present, otherwise to the earliest-joined remaining player.
// Empty rooms are left for the cleanup sweep.
func (s *Server) leaveRoom(roomID, playerID string) error {
	room, err := s.store.Update(roomID, func(room *Room) error {
		index := -1
		for i := range room.Players {
			if room.Players[i].ID == playerID {
				index = i
				break
			}
		}
		if index < 0 {
			return ErrNotActivePlayer
		}
		wasHost := room.Players[index].IsHost
		room.Players = append(room.Players[:index], room.Players[index+1:]...)
		delete(room.Votes, playerID)
		if wasHost {
			room.reassignHost()
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cancelTimer(roomID + "/leave/" + playerID)
	log.Printf("player left room_id=%s player_id=%s remaining=%d", roomID, playerID, len(room.Players))
	if len(room.Players) > 0 {
		s.broadcastRoomUpdate(room)
	}
	if err := s.persistEvent(room, "player_left", map[string]any{"playerId": playerID}); err != nil {
		log.Printf("persist player_left failed room_id=%s error=%v", roomID, err)
	}
	return nil
}

// markReady flips a waiting player to ready. Hosts and players in any
// other status are ignored, which makes the operation idempotent.
func (s *Server) markReady(roomID, playerID string) error {
	room, err := s.store.Update(roomID, func(room *Room) error {
		player := room.FindPlayer(playerID)
		if player == nil || player.IsHost || player.Status != statusWaiting {
			return nil
		}
		player.Status = statusReady
		return nil
	})
	if err != nil {
		return err
	}
	s.broadcastRoomUpdate(room)
	return nil
}

// startGame assigns roles and the secret word and opens the reveal
// phase. Only the host may start, every non-host player must be
// ready, and the hard minimum of players applies regardless of the
// room's configured maximum.
func (s *Server) startGame(roomID, playerID string) error {
	type assignment struct {
		playerID string
		impostor bool
	}
	var assignments []assignment
	var secretWord string

	room, err := s.store.Update(roomID, func(room *Room) error {
		if room.Phase != game.PhaseWaiting {
			return ErrInvalidPhaseTransition
		}
		if room.HostID != playerID {
			return ErrNotHost
		}
		if len(room.Players) < s.cfg.MinPlayers {
			return ErrNotEnoughPlayers
		}
		for _, player := range room.Players {
			if !player.IsHost && player.Status != statusReady {
				return ErrPlayersNotReady
			}
		}

		word, _, err := game.SelectSecretWord(s.pool, room.Settings.Categories)
		if err != nil {
			return err
		}
		playerIDs := make([]string, len(room.Players))
		for i, player := range room.Players {
			playerIDs[i] = player.ID
		}
		impostorIDs, err := game.SelectImpostors(playerIDs, room.Settings.ImpostorCount)
		if err != nil {
			return err
		}

		room.SecretWord = word
		room.ImpostorIDs = impostorIDs
		room.Phase = game.PhaseRoleReveal
		room.TimeStarted = time.Now().UTC()
		for i := range room.Players {
			room.Players[i].Status = statusPlaying
		}
		secretWord = word
		for _, player := range room.Players {
			assignments = append(assignments, assignment{
				playerID: player.ID,
				impostor: room.IsImpostor(player.ID),
			})
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Private role assignments first, then the public updates.
	for _, a := range assignments {
		payload := roleAssignedPayload{Role: rolePlayer, Word: &secretWord}
		if a.impostor {
			payload = roleAssignedPayload{Role: roleImpostor, Word: nil}
		}
		s.hub.SendToPlayer(a.playerID, newEvent(eventRoleAssigned, payload))
	}
	s.broadcastRoomUpdate(room)
	s.broadcastPhaseChange(room)

	s.scheduleTimer(roomID+"/phase", s.cfg.RoleRevealDuration(), func() {
		s.advanceToDiscussion(roomID)
	})
	if room.Settings.TimeLimit > 0 {
		timeLimit := time.Duration(room.Settings.TimeLimit) * time.Second
		s.scheduleTimer(roomID+"/clock", timeLimit, func() {
			s.timeExpired(roomID)
		})
	}

	log.Printf("game started room_id=%s players=%d impostors=%d", roomID, len(room.Players), len(room.ImpostorIDs))
	if err := s.persistPhase(room, "game_started", map[string]any{"phase": room.Phase.String()}); err != nil {
		log.Printf("persist game_started failed room_id=%s error=%v", roomID, err)
	}
	return nil
}

// advanceToDiscussion is the scheduled reveal-to-discussion step. It
// is a no-op when the room moved on or disappeared while the timer
// was pending.
func (s *Server) advanceToDiscussion(roomID string) {
	room, err := s.store.Update(roomID, func(room *Room) error {
		if room.Phase != game.PhaseRoleReveal {
			return errStale
		}
		room.Phase = game.PhaseDiscussion
		return nil
	})
	if err != nil {
		return
	}
	s.broadcastPhaseChange(room)
	log.Printf("discussion started room_id=%s", roomID)
	if err := s.persistPhase(room, "phase_change", map[string]any{"phase": room.Phase.String()}); err != nil {
		log.Printf("persist phase_change failed room_id=%s error=%v", roomID, err)
	}
}

// callVote opens a voting round. Any active player may call it; the
// accusation is deliberately not host-gated.
func (s *Server) callVote(roomID, playerID string) error {
	room, err := s.store.Update(roomID, func(room *Room) error {
		if room.Phase != game.PhaseDiscussion {
			return ErrInvalidPhaseTransition
		}
		if !room.IsActivePlayer(playerID) {
			return ErrNotActivePlayer
		}
		room.Phase = game.PhaseVoting
		room.Votes = make(map[string]string)
		room.VoteRound++
		room.tallying = false
		return nil
	})
	if err != nil {
		return err
	}
	s.broadcastPhaseChange(room)
	log.Printf("voting started room_id=%s vote_round=%d", roomID, room.VoteRound)
	if err := s.persistPhase(room, "vote_called", map[string]any{
		"phase":     room.Phase.String(),
		"voteRound": room.VoteRound,
	}); err != nil {
		log.Printf("persist vote_called failed room_id=%s error=%v", roomID, err)
	}
	return nil
}

// castVote records one player's vote; a nil target is a skip. Votes
// are public, so the full map is broadcast after every cast. The
// closure that records the final missing vote is also the only place
// the tally can be triggered, which keeps a double submission from
// counting a round twice.
func (s *Server) castVote(roomID, voterID string, targetID *string) error {
	var complete bool
	var votes map[string]string

	room, err := s.store.Update(roomID, func(room *Room) error {
		if room.Phase != game.PhaseVoting || room.tallying {
			return ErrInvalidPhaseTransition
		}
		if !room.IsActivePlayer(voterID) {
			return ErrNotActivePlayer
		}
		target := game.SkipVote
		if targetID != nil && *targetID != "" {
			if !room.IsActivePlayer(*targetID) {
				return ErrInvalidVoteTarget
			}
			target = *targetID
		}
		room.Votes[voterID] = target
		// The broadcast below runs outside the store lock while other
		// casts keep writing room.Votes, so it gets its own copy.
		votes = make(map[string]string, len(room.Votes))
		for id, t := range room.Votes {
			votes[id] = t
		}
		if room.AllVotesCast() {
			room.tallying = true
			complete = true
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.hub.Broadcast(room.ID, newEvent(eventVoteUpdate, voteUpdatePayload{
		Votes:    votes,
		VoterID:  voterID,
		TargetID: targetID,
	}))
	if complete {
		s.processVotes(roomID)
	}
	return nil
}

// processVotes tallies a completed round, applies a decisive
// elimination and evaluates the win condition. The outcome is shown
// for a short delay before the room either ends or returns to
// discussion.
func (s *Server) processVotes(roomID string) {
	var result game.TallyResult
	var wasImpostor bool
	winner := game.WinnerNone

	room, err := s.store.Update(roomID, func(room *Room) error {
		if room.Phase != game.PhaseVoting || !room.tallying {
			return errStale
		}
		result = game.TallyVotes(room.Votes)
		if !result.Decisive() {
			return nil
		}
		player := room.FindPlayer(result.EliminatedID)
		if player == nil {
			return nil
		}
		player.Status = statusSpectating
		wasImpostor = room.IsImpostor(player.ID)
		timeLimit := time.Duration(room.Settings.TimeLimit) * time.Second
		winner = game.CheckWinCondition(room.ActivePlayerIDs(), room.ImpostorIDs,
			time.Since(room.TimeStarted), timeLimit)
		return nil
	})
	if err != nil {
		return
	}

	payload := voteResultsPayload{
		WasImpostor: wasImpostor,
		VoteCounts:  result.VoteCounts,
		Tie:         result.Tie,
		SkipVotes:   result.SkipVotes,
		VoteRound:   room.VoteRound,
	}
	if result.EliminatedID != "" {
		eliminated := result.EliminatedID
		payload.EliminatedID = &eliminated
	}
	s.hub.Broadcast(room.ID, newEvent(eventVoteResults, payload))
	log.Printf("vote round finished room_id=%s vote_round=%d eliminated=%q tie=%t skips=%d",
		roomID, room.VoteRound, result.EliminatedID, result.Tie, result.SkipVotes)
	if err := s.persistEvent(room, "vote_results", payload); err != nil {
		log.Printf("persist vote_results failed room_id=%s error=%v", roomID, err)
	}

	if winner != game.WinnerNone {
		s.scheduleTimer(roomID+"/phase", s.cfg.VoteResultDuration(), func() {
			s.endGame(roomID, winner)
		})
		return
	}
	s.scheduleTimer(roomID+"/phase", s.cfg.VoteResultDuration(), func() {
		s.returnToDiscussion(roomID)
	})
}

// returnToDiscussion closes a non-decisive round after the result
// display delay.
func (s *Server) returnToDiscussion(roomID string) {
	room, err := s.store.Update(roomID, func(room *Room) error {
		if room.Phase != game.PhaseVoting || !room.tallying {
			return errStale
		}
		room.Phase = game.PhaseDiscussion
		room.Votes = make(map[string]string)
		room.tallying = false
		return nil
	})
	if err != nil {
		return
	}
	s.broadcastPhaseChange(room)
	log.Printf("discussion resumed room_id=%s vote_round=%d", roomID, room.VoteRound)
	if err := s.persistPhase(room, "phase_change", map[string]any{"phase": room.Phase.String()}); err != nil {
		log.Printf("persist phase_change failed room_id=%s error=%v", roomID, err)
	}
}

// endGame finishes an in-progress game and reveals everything.
func (s *Server) endGame(roomID string, winner game.Result) {
	var payload gameOverPayload

	room, err := s.store.Update(roomID, func(room *Room) error {
		if !room.Phase.InProgress() {
			return errStale
		}
		room.Phase = game.PhaseEnded
		players := make([]Player, len(room.Players))
		copy(players, room.Players)
		payload = gameOverPayload{
			Winner:      string(winner),
			SecretWord:  room.SecretWord,
			ImpostorIDs: room.ImpostorIDs,
			Players:     players,
		}
		return nil
	})
	if err != nil {
		return
	}

	s.cancelTimer(roomID + "/clock")
	s.broadcastPhaseChange(room)
	s.hub.Broadcast(room.ID, newEvent(eventGameOver, payload))
	log.Printf("game ended room_id=%s winner=%s", roomID, winner)
	if err := s.persistPhase(room, "game_over", payload); err != nil {
		log.Printf("persist game_over failed room_id=%s error=%v", roomID, err)
	}
}

// timeExpired is the scheduled game-clock callback: the crew failed
// to find the impostors in time.
func (s *Server) timeExpired(roomID string) {
	if room, ok := s.store.Get(roomID); !ok || !room.Phase.InProgress() {
		return
	}
	log.Printf("time limit reached room_id=%s", roomID)
	s.endGame(roomID, game.WinnerImpostors)
}

// transitionPhase is the host-only escape hatch. It is mapped onto
// the specific operations rather than setting the phase directly, so
// it cannot bypass their validation; tally-owned transitions out of
// voting are not reachable from here at all.
func (s *Server) transitionPhase(roomID, playerID string, target game.Phase) error {
	room, ok := s.store.Get(roomID)
	if !ok {
		return ErrRoomNotFound
	}
	if room.HostID != playerID {
		return ErrNotHost
	}
	if !room.Phase.CanTransitionTo(target) {
		return ErrInvalidPhaseTransition
	}
	switch target {
	case game.PhaseRoleReveal:
		return s.startGame(roomID, playerID)
	case game.PhaseDiscussion:
		// voting -> discussion belongs to the tally alone.
		if room.Phase != game.PhaseRoleReveal {
			return ErrInvalidPhaseTransition
		}
		s.advanceToDiscussion(roomID)
		return nil
	case game.PhaseVoting:
		return s.callVote(roomID, playerID)
	default:
		return ErrInvalidPhaseTransition
	}
}

// handleDisconnect marks a player disconnected and schedules their
// removal after the grace period. A reconnect inside the window
// cancels the pending removal; a stale removal firing anyway finds
// the player no longer disconnected and does nothing.
func (s *Server) handleDisconnect(roomID, playerID string) {
	room, err := s.store.Update(roomID, func(room *Room) error {
		player := room.FindPlayer(playerID)
		if player == nil {
			return errStale
		}
		player.Status = statusDisconnected
		return nil
	})
	if err != nil {
		return
	}
	s.broadcastRoomUpdate(room)
	log.Printf("player disconnected room_id=%s player_id=%s", roomID, playerID)

	s.scheduleTimer(roomID+"/leave/"+playerID, s.cfg.DisconnectGrace(), func() {
		current, ok := s.store.Get(roomID)
		if !ok {
			return
		}
		player := current.FindPlayer(playerID)
		if player == nil || player.Status != statusDisconnected {
			return
		}
		if err := s.leaveRoom(roomID, playerID); err != nil && !errors.Is(err, ErrRoomNotFound) {
			log.Printf("disconnect removal failed room_id=%s player_id=%s error=%v", roomID, playerID, err)
		}
	})
}

func (s *Server) broadcastRoomUpdate(room *Room) {
	s.hub.Broadcast(room.ID, newEvent(eventRoomUpdate, roomUpdatePayload{Room: snapshotRoom(room)}))
}

func (s *Server) broadcastPhaseChange(room *Room) {
	payload := phaseChangePayload{Phase: room.Phase.String()}
	if room.Phase == game.PhaseVoting {
		payload.VoteRound = room.VoteRound
	}
	s.hub.Broadcast(room.ID, newEvent(eventPhaseChange, payload))
}
