package server

import (
	"log"
	"time"

	"github.com/bbauti/impostor/internal/game"
)

// StartCleanup runs the periodic room sweep for the life of the
// process.
func (s *Server) StartCleanup() {
	interval := time.Duration(s.cfg.CleanupSweepSeconds) * time.Second
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			s.sweepRooms(time.Now().UTC())
		}
	}()
}

// sweepRooms deletes rooms nobody will come back to: ended rooms
// past their grace, and empty rooms past a grace that is short for
// abandoned games and longer for waiting lobbies someone may still
// share a link to.
func (s *Server) sweepRooms(now time.Time) {
	for _, room := range s.store.ListByActivity() {
		idle := now.Sub(room.LastActivity)
		var grace time.Duration
		switch {
		case room.Phase == game.PhaseEnded:
			grace = time.Duration(s.cfg.EndedGraceSeconds) * time.Second
		case len(room.Players) == 0 && room.Phase == game.PhaseWaiting:
			grace = time.Duration(s.cfg.EmptyWaitingGraceSeconds) * time.Second
		case len(room.Players) == 0:
			grace = time.Duration(s.cfg.EmptyPlayingGraceSeconds) * time.Second
		default:
			continue
		}
		if idle < grace {
			continue
		}
		s.removeRoom(room.ID)
		log.Printf("room swept room_id=%s phase=%s idle=%s", room.ID, room.Phase, idle.Round(time.Second))
	}
}

// removeRoom drops a room and every timer still pending for it.
func (s *Server) removeRoom(roomID string) {
	s.cancelRoomTimers(roomID)
	s.store.Delete(roomID)
}
