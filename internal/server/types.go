package server

import (
	"time"

	"github.com/bbauti/impostor/internal/game"
)

const (
	statusWaiting      = "waiting"
	statusReady        = "ready"
	statusPlaying      = "playing"
	statusSpectating   = "spectating"
	statusDisconnected = "disconnected"
)

const (
	roleImpostor = "impostor"
	rolePlayer   = "player"
)

type Settings struct {
	MaxPlayers    int      `json:"maxPlayers"`
	ImpostorCount int      `json:"impostorCount"`
	Categories    []string `json:"categories"`
	TimeLimit     int      `json:"timeLimit"` // seconds
}

type Player struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	IsHost   bool      `json:"isHost"`
	JoinedAt time.Time `json:"-"`
}

// Room is the aggregate for one game session. It is only mutated
// inside RoomStore.Update closures.
type Room struct {
	ID           string
	DBID         uint
	CreatorID    string
	HostID       string
	IsPublic     bool
	Players      []Player
	Settings     Settings
	Phase        game.Phase
	SecretWord   string
	ImpostorIDs  []string
	Votes        map[string]string
	VoteRound    int
	CreatedAt    time.Time
	LastActivity time.Time
	TimeStarted  time.Time

	// tallying is set while a finished vote round waits for its
	// result delay, so a re-cast vote cannot trigger a second tally.
	tallying bool
}

type RoomSummary struct {
	RoomID        string    `json:"roomId"`
	PlayerCount   int       `json:"playerCount"`
	MaxPlayers    int       `json:"maxPlayers"`
	ImpostorCount int       `json:"impostorCount"`
	Categories    []string  `json:"categories"`
	TimeLimit     int       `json:"timeLimit"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *Room) FindPlayer(playerID string) *Player {
	for i := range r.Players {
		if r.Players[i].ID == playerID {
			return &r.Players[i]
		}
	}
	return nil
}

// ActivePlayerIDs returns the ids of players still in the game.
func (r *Room) ActivePlayerIDs() []string {
	ids := make([]string, 0, len(r.Players))
	for _, player := range r.Players {
		if player.Status == statusPlaying {
			ids = append(ids, player.ID)
		}
	}
	return ids
}

func (r *Room) IsActivePlayer(playerID string) bool {
	player := r.FindPlayer(playerID)
	return player != nil && player.Status == statusPlaying
}

// AllVotesCast reports whether every active player has voted this round.
func (r *Room) AllVotesCast() bool {
	for _, player := range r.Players {
		if player.Status != statusPlaying {
			continue
		}
		if _, ok := r.Votes[player.ID]; !ok {
			return false
		}
	}
	return true
}

func (r *Room) IsImpostor(playerID string) bool {
	for _, id := range r.ImpostorIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// reassignHost promotes the creator when still present, otherwise the
// earliest-joined remaining player.
func (r *Room) reassignHost() {
	for i := range r.Players {
		r.Players[i].IsHost = false
	}
	if len(r.Players) == 0 {
		r.HostID = ""
		return
	}
	next := 0
	for i := range r.Players {
		if r.Players[i].ID == r.CreatorID {
			next = i
			break
		}
		if r.Players[i].JoinedAt.Before(r.Players[next].JoinedAt) {
			next = i
		}
	}
	r.Players[next].IsHost = true
	r.HostID = r.Players[next].ID
}
