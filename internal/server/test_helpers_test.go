package server

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bbauti/impostor/internal/config"
)

// testConfig collapses the reveal and result delays so scheduled
// transitions run synchronously in tests.
func testConfig() config.Config {
	cfg := config.Default()
	cfg.RoleRevealSeconds = 0
	cfg.VoteResultSeconds = 0
	return cfg
}

func testSettings() Settings {
	return Settings{
		MaxPlayers:    8,
		ImpostorCount: 1,
		Categories:    []string{"animals"},
		TimeLimit:     0,
	}
}

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping test; listen unavailable: %v", err)
	}
	ts := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	ts.Start()
	return ts
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// setupRoom creates a room and joins the given players. The first
// name joins first and therefore holds the host role.
func setupRoom(t *testing.T, srv *Server, names ...string) (string, []string) {
	t.Helper()
	room := srv.createRoom(testSettings(), false)
	ids := make([]string, 0, len(names))
	for _, name := range names {
		id, _, err := srv.joinRoom(room.ID, name, "")
		if err != nil {
			t.Fatalf("join %s: %v", name, err)
		}
		ids = append(ids, id)
	}
	return room.ID, ids
}

// startRoom readies every non-host player and starts the game. With
// the zero reveal delay of testConfig the room lands in discussion.
func startRoom(t *testing.T, srv *Server, roomID string, ids []string) {
	t.Helper()
	for _, id := range ids[1:] {
		if err := srv.markReady(roomID, id); err != nil {
			t.Fatalf("mark ready: %v", err)
		}
	}
	if err := srv.startGame(roomID, ids[0]); err != nil {
		t.Fatalf("start game: %v", err)
	}
}

func mustGetRoom(t *testing.T, srv *Server, roomID string) *Room {
	t.Helper()
	room, ok := srv.store.Get(roomID)
	if !ok {
		t.Fatalf("room %s not found", roomID)
	}
	return room
}
