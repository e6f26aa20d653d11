package server

import (
	"fmt"
	"strings"

	"github.com/bbauti/impostor/internal/words"
)

const maxNameLength = 20

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("player name is required")
	}
	if len(trimmed) > maxNameLength {
		return fmt.Errorf("player name must be at most %d characters", maxNameLength)
	}
	return nil
}

// validateSettings checks a room's requested configuration against
// the server bounds. TimeLimit arrives in seconds; zero means no
// game clock.
func (s *Server) validateSettings(settings Settings) error {
	if settings.MaxPlayers < s.cfg.MinPlayers || settings.MaxPlayers > s.cfg.MaxPlayers {
		return fmt.Errorf("maxPlayers must be between %d and %d", s.cfg.MinPlayers, s.cfg.MaxPlayers)
	}
	if settings.ImpostorCount < s.cfg.MinImpostors || settings.ImpostorCount > s.cfg.MaxImpostors {
		return fmt.Errorf("impostorCount must be between %d and %d", s.cfg.MinImpostors, s.cfg.MaxImpostors)
	}
	if settings.ImpostorCount*2 >= settings.MaxPlayers {
		return fmt.Errorf("impostorCount must be less than half of maxPlayers")
	}
	if len(settings.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	for _, category := range settings.Categories {
		if !words.ValidCategory(category) {
			return fmt.Errorf("unknown category %q", category)
		}
	}
	if settings.TimeLimit != 0 {
		min := s.cfg.MinTimeLimitMins * 60
		max := s.cfg.MaxTimeLimitMins * 60
		if settings.TimeLimit < min || settings.TimeLimit > max {
			return fmt.Errorf("timeLimit must be between %d and %d seconds", min, max)
		}
	}
	return nil
}
