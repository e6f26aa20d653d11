package server

import (
	"testing"
	"time"

	"github.com/bbauti/impostor/internal/game"
)

func TestSweepRooms(t *testing.T) {
	srv := New(nil, testConfig())
	now := time.Now().UTC()

	ended := srv.createRoom(testSettings(), false)
	endedRoom := mustGetRoom(t, srv, ended.ID)
	endedRoom.Phase = game.PhaseEnded
	endedRoom.LastActivity = now

	staleLobby := srv.createRoom(testSettings(), false)
	mustGetRoom(t, srv, staleLobby.ID).LastActivity = now.Add(-10 * time.Minute)

	abandoned := srv.createRoom(testSettings(), false)
	abandonedRoom := mustGetRoom(t, srv, abandoned.ID)
	abandonedRoom.Phase = game.PhaseDiscussion
	abandonedRoom.LastActivity = now.Add(-time.Minute)

	freshLobby := srv.createRoom(testSettings(), false)

	occupied := srv.createRoom(testSettings(), false)
	if _, _, err := srv.joinRoom(occupied.ID, "Ada", ""); err != nil {
		t.Fatalf("join: %v", err)
	}
	mustGetRoom(t, srv, occupied.ID).LastActivity = now.Add(-time.Hour)

	srv.sweepRooms(now)

	for _, id := range []string{ended.ID, staleLobby.ID, abandoned.ID} {
		if _, ok := srv.store.Get(id); ok {
			t.Fatalf("expected room %s swept", id)
		}
	}
	for _, id := range []string{freshLobby.ID, occupied.ID} {
		if _, ok := srv.store.Get(id); !ok {
			t.Fatalf("expected room %s kept", id)
		}
	}
}
