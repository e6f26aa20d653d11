package server

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/bbauti/impostor/internal/game"
	"github.com/bbauti/impostor/internal/words"
)

type createRoomRequest struct {
	Settings Settings `json:"settings"`
	IsPublic bool     `json:"isPublic"`
}

const publicRoomsPerPage = 10

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	if !s.enforceRateLimit(w, r, "create") {
		return
	}
	var req createRoomRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validateSettings(req.Settings); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	room := s.createRoom(req.Settings, req.IsPublic)
	if err := s.persistRoomCreated(room); err != nil {
		log.Printf("persist room_created failed room_id=%s error=%v", room.ID, err)
	}
	log.Printf("room created room_id=%s public=%t max_players=%d", room.ID, room.IsPublic, room.Settings.MaxPlayers)
	writeJSON(w, http.StatusCreated, map[string]any{
		"roomId":    room.ID,
		"creatorId": room.CreatorID,
		"settings":  room.Settings,
	})
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	room, ok := s.store.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "room not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"room": snapshotRoom(room),
	})
}

// handlePublicRooms lists joinable public lobbies, most recently
// active first. Rooms past the waiting phase or not yet holding a
// player are not shown.
func (s *Server) handlePublicRooms(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r.URL.Query().Get("page"))

	summaries := make([]RoomSummary, 0)
	for _, room := range s.store.ListByActivity() {
		if !room.IsPublic || room.Phase != game.PhaseWaiting {
			continue
		}
		if len(room.Players) == 0 || len(room.Players) >= room.Settings.MaxPlayers {
			continue
		}
		summaries = append(summaries, summarizeRoom(room))
	}

	total := len(summaries)
	start := (page - 1) * publicRoomsPerPage
	if start > total {
		start = total
	}
	end := start + publicRoomsPerPage
	if end > total {
		end = total
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"rooms": summaries[start:end],
		"page":  page,
		"total": total,
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories := make([]map[string]string, 0)
	for _, category := range words.Categories() {
		categories = append(categories, map[string]string{
			"id":          category.ID,
			"name":        category.Name,
			"description": category.Description,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": categories,
	})
}

func parsePage(raw string) int {
	page := 1
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		if value, err := strconv.Atoi(trimmed); err == nil && value > 0 {
			page = value
		}
	}
	return page
}
