package server

import (
	"net/http"
	"testing"
)

func TestCreateRoomEndpoint(t *testing.T) {
	srv := New(nil, testConfig())
	ts := newTestServer(t, srv.Handler())
	t.Cleanup(ts.Close)

	resp := doRequest(t, ts, http.MethodPost, "/api/rooms", createRoomRequest{
		Settings: testSettings(),
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	var created struct {
		RoomID    string `json:"roomId"`
		CreatorID string `json:"creatorId"`
	}
	decodeBody(t, resp, &created)
	if len(created.RoomID) != 6 {
		t.Fatalf("expected 6-char room code, got %q", created.RoomID)
	}
	if created.CreatorID == "" {
		t.Fatalf("expected creator id")
	}
	if _, ok := srv.store.Get(created.RoomID); !ok {
		t.Fatalf("room not registered")
	}
}

func TestCreateRoomRejectsBadSettings(t *testing.T) {
	srv := New(nil, testConfig())
	ts := newTestServer(t, srv.Handler())
	t.Cleanup(ts.Close)

	bad := []Settings{
		{MaxPlayers: 2, ImpostorCount: 1, Categories: []string{"animals"}},
		{MaxPlayers: 6, ImpostorCount: 3, Categories: []string{"animals"}},
		{MaxPlayers: 6, ImpostorCount: 1},
		{MaxPlayers: 6, ImpostorCount: 1, Categories: []string{"spaceships"}},
		{MaxPlayers: 6, ImpostorCount: 1, Categories: []string{"animals"}, TimeLimit: 60},
	}
	for _, settings := range bad {
		resp := doRequest(t, ts, http.MethodPost, "/api/rooms", createRoomRequest{Settings: settings})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for %+v, got %d", settings, resp.StatusCode)
		}
	}
}

func TestGetRoomEndpoint(t *testing.T) {
	srv := New(nil, testConfig())
	ts := newTestServer(t, srv.Handler())
	t.Cleanup(ts.Close)

	resp := doRequest(t, ts, http.MethodGet, "/api/rooms/NOSUCH", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	roomID, _ := setupRoom(t, srv, "Ada")
	resp = doRequest(t, ts, http.MethodGet, "/api/rooms/"+roomID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Room map[string]any `json:"room"`
	}
	decodeBody(t, resp, &body)
	if body.Room["phase"] != "waiting" {
		t.Fatalf("expected waiting phase, got %v", body.Room["phase"])
	}
	// The client view never carries the secret word or the impostor set.
	for _, key := range []string{"secretWord", "impostorIds"} {
		if _, found := body.Room[key]; found {
			t.Fatalf("room snapshot leaked %s", key)
		}
	}
}

func TestPublicRoomListing(t *testing.T) {
	srv := New(nil, testConfig())
	ts := newTestServer(t, srv.Handler())
	t.Cleanup(ts.Close)

	populated := srv.createRoom(testSettings(), true)
	if _, _, err := srv.joinRoom(populated.ID, "Ada", ""); err != nil {
		t.Fatalf("join: %v", err)
	}
	srv.createRoom(testSettings(), true)  // empty, hidden
	srv.createRoom(testSettings(), false) // private, hidden

	resp := doRequest(t, ts, http.MethodGet, "/api/rooms/public", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Rooms []RoomSummary `json:"rooms"`
		Total int           `json:"total"`
	}
	decodeBody(t, resp, &body)
	if body.Total != 1 || len(body.Rooms) != 1 {
		t.Fatalf("expected exactly the populated public room, got %d", body.Total)
	}
	if body.Rooms[0].RoomID != populated.ID {
		t.Fatalf("expected room %s, got %s", populated.ID, body.Rooms[0].RoomID)
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	srv := New(nil, testConfig())
	ts := newTestServer(t, srv.Handler())
	t.Cleanup(ts.Close)

	resp := doRequest(t, ts, http.MethodGet, "/api/categories", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Categories []map[string]string `json:"categories"`
	}
	decodeBody(t, resp, &body)
	if len(body.Categories) == 0 {
		t.Fatalf("expected categories")
	}
	for _, category := range body.Categories {
		if category["id"] == "" || category["name"] == "" {
			t.Fatalf("incomplete category %+v", category)
		}
	}
}
