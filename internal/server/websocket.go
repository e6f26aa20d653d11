package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/bbauti/impostor/internal/game"
)

// wsHub tracks every live connection per room plus a per-player index
// for private messages like role assignments.
type wsHub struct {
	mu      sync.Mutex
	rooms   map[string]map[*websocket.Conn]struct{}
	players map[string]*websocket.Conn
}

func newWSHub() *wsHub {
	return &wsHub{
		rooms:   make(map[string]map[*websocket.Conn]struct{}),
		players: make(map[string]*websocket.Conn),
	}
}

func (h *wsHub) Add(roomID, playerID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group := h.rooms[roomID]
	if group == nil {
		group = make(map[*websocket.Conn]struct{})
		h.rooms[roomID] = group
	}
	group[conn] = struct{}{}
	h.players[playerID] = conn
}

func (h *wsHub) Remove(roomID, playerID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group := h.rooms[roomID]
	if group != nil {
		delete(group, conn)
		if len(group) == 0 {
			delete(h.rooms, roomID)
		}
	}
	if h.players[playerID] == conn {
		delete(h.players, playerID)
	}
	_ = conn.Close()
}

func (h *wsHub) Send(conn *websocket.Conn, event serverEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	_ = conn.WriteMessage(websocket.TextMessage, data)
}

func (h *wsHub) SendToPlayer(playerID string, event serverEvent) {
	h.mu.Lock()
	conn, ok := h.players[playerID]
	h.mu.Unlock()
	if !ok {
		return
	}
	h.Send(conn, event)
}

func (h *wsHub) Broadcast(roomID string, event serverEvent) {
	h.mu.Lock()
	group := h.rooms[roomID]
	conns := make([]*websocket.Conn, 0, len(group))
	for conn := range group {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			_ = conn.Close()
		}
	}
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	log.Printf("ws connected remote=%s", r.RemoteAddr)
	go s.readWS(conn)
}

// readWS is the per-connection loop. A connection is anonymous until
// a successful join_room binds it to a room and player; every other
// command is rejected until then. Command errors go back to the
// acting connection only.
func (s *Server) readWS(conn *websocket.Conn) {
	var roomID, playerID string
	defer func() {
		if playerID != "" {
			s.hub.Remove(roomID, playerID, conn)
			s.handleDisconnect(roomID, playerID)
		} else {
			_ = conn.Close()
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Printf("ws disconnected room_id=%s player_id=%s error=%v", roomID, playerID, err)
			return
		}
		var cmd clientCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			s.sendError(conn, "malformed command")
			continue
		}

		if cmd.Type == cmdPing {
			s.hub.Send(conn, newEvent(eventPong, nil))
			continue
		}
		if cmd.Type == cmdJoinRoom {
			if playerID != "" {
				s.sendError(conn, "already in a room")
				continue
			}
			roomID, playerID = s.handleJoin(conn, cmd.Payload)
			continue
		}
		if playerID == "" {
			s.sendError(conn, "join a room first")
			continue
		}

		switch cmd.Type {
		case cmdLeaveRoom:
			if err := s.leaveRoom(roomID, playerID); err != nil {
				s.sendError(conn, err.Error())
				continue
			}
			s.hub.Remove(roomID, playerID, conn)
			return
		case cmdPlayerReady:
			if err := s.markReady(roomID, playerID); err != nil {
				s.sendError(conn, err.Error())
			}
		case cmdStartGame:
			if err := s.startGame(roomID, playerID); err != nil {
				s.sendError(conn, err.Error())
			}
		case cmdCallVote:
			if err := s.callVote(roomID, playerID); err != nil {
				s.sendError(conn, err.Error())
			}
		case cmdCastVote:
			var payload castVotePayload
			if err := json.Unmarshal(cmd.Payload, &payload); err != nil {
				s.sendError(conn, "malformed command")
				continue
			}
			if err := s.castVote(roomID, playerID, payload.TargetID); err != nil {
				s.sendError(conn, err.Error())
			}
		case cmdTransitionPhase:
			var payload transitionPhasePayload
			if err := json.Unmarshal(cmd.Payload, &payload); err != nil {
				s.sendError(conn, "malformed command")
				continue
			}
			if err := s.transitionPhase(roomID, playerID, game.Phase(payload.Phase)); err != nil {
				s.sendError(conn, err.Error())
			}
		default:
			s.sendError(conn, "unknown command type")
		}
	}
}

// handleJoin binds a connection to a room. The connection is only
// added to the hub after the join succeeds, so a rejected join never
// receives room broadcasts.
func (s *Server) handleJoin(conn *websocket.Conn, raw json.RawMessage) (string, string) {
	var payload joinRoomPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		s.sendError(conn, "malformed command")
		return "", ""
	}
	if err := validateName(payload.PlayerName); err != nil && payload.PlayerID == "" {
		s.sendError(conn, err.Error())
		return "", ""
	}

	playerID, reconnected, err := s.joinRoom(payload.RoomID, payload.PlayerName, payload.PlayerID)
	if err != nil {
		s.sendError(conn, err.Error())
		return "", ""
	}
	s.hub.Add(payload.RoomID, playerID, conn)

	eventType := eventConnect
	if reconnected {
		eventType = eventReconnect
	}
	s.hub.Send(conn, newEvent(eventType, connectPayload{
		PlayerID: playerID,
		RoomID:   payload.RoomID,
	}))

	room, ok := s.store.Get(payload.RoomID)
	if !ok {
		return payload.RoomID, playerID
	}
	s.hub.Send(conn, newEvent(eventRoomUpdate, roomUpdatePayload{Room: snapshotRoom(room)}))
	if reconnected && room.Phase.InProgress() {
		role := roleAssignedPayload{Role: rolePlayer, Word: &room.SecretWord}
		if room.IsImpostor(playerID) {
			role = roleAssignedPayload{Role: roleImpostor}
		}
		s.hub.Send(conn, newEvent(eventRoleAssigned, role))
	}
	return payload.RoomID, playerID
}

func (s *Server) sendError(conn *websocket.Conn, message string) {
	s.hub.Send(conn, newEvent(eventError, errorPayload{Message: message}))
}
