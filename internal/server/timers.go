package server

import (
	"strings"
	"time"
)

// scheduleTimer arms a named deferred action, replacing any pending
// action under the same key. Callbacks re-validate room state before
// acting, so a timer that outlives its reason fires as a no-op.
func (s *Server) scheduleTimer(key string, d time.Duration, fn func()) {
	if d <= 0 {
		fn()
		return
	}
	s.timersMu.Lock()
	if existing, ok := s.timers[key]; ok {
		existing.Stop()
	}
	s.timers[key] = time.AfterFunc(d, func() {
		s.clearTimer(key)
		fn()
	})
	s.timersMu.Unlock()
}

func (s *Server) cancelTimer(key string) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	if timer, ok := s.timers[key]; ok {
		timer.Stop()
		delete(s.timers, key)
	}
}

// cancelRoomTimers drops every pending action for a room: the phase
// timer, the game clock and any disconnect removals.
func (s *Server) cancelRoomTimers(roomID string) {
	prefix := roomID + "/"
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	for key, timer := range s.timers {
		if strings.HasPrefix(key, prefix) {
			timer.Stop()
			delete(s.timers, key)
		}
	}
}

func (s *Server) clearTimer(key string) {
	s.timersMu.Lock()
	delete(s.timers, key)
	s.timersMu.Unlock()
}
