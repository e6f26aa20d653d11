package server

import (
	"encoding/json"
	"errors"

	"github.com/jackc/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"

	"github.com/bbauti/impostor/internal/db"
)

// The persistence layer is an event log on top of the in-memory
// store, never the source of truth. Every helper is a no-op without
// a database, and callers only log failures.

func (s *Server) persistRoomCreated(room *Room) error {
	if s.db == nil {
		return nil
	}
	settings, err := json.Marshal(room.Settings)
	if err != nil {
		return err
	}
	record := db.Room{
		Code:      room.ID,
		CreatorID: room.CreatorID,
		Phase:     room.Phase.String(),
		IsPublic:  room.IsPublic,
		Settings:  datatypes.JSON(settings),
	}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		if isUniqueViolation(err) {
			return s.ensureRoomDBID(room)
		}
		return err
	}
	room.DBID = record.ID
	return s.persistEvent(room, "room_created", map[string]any{
		"code":     room.ID,
		"isPublic": room.IsPublic,
	})
}

// persistPhase mirrors the room's phase, vote round and player count
// into its row, then appends the event.
func (s *Server) persistPhase(room *Room, eventType string, payload any) error {
	if s.db == nil {
		return nil
	}
	if err := s.ensureRoomDBID(room); err != nil {
		return err
	}
	if room.DBID == 0 {
		return errors.New("room not found")
	}
	updates := map[string]any{
		"phase":        room.Phase.String(),
		"vote_round":   room.VoteRound,
		"player_count": len(room.Players),
	}
	if err := s.db.Model(&db.Room{}).Where("id = ?", room.DBID).Updates(updates).Error; err != nil {
		return err
	}
	return s.persistEvent(room, eventType, payload)
}

func (s *Server) persistEvent(room *Room, eventType string, payload any) error {
	if s.db == nil {
		return nil
	}
	if err := s.ensureRoomDBID(room); err != nil {
		return err
	}
	if room.DBID == 0 {
		return errors.New("room not found")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	event := db.Event{
		RoomID:  room.DBID,
		Type:    eventType,
		Payload: datatypes.JSON(data),
	}
	return s.db.Create(&event).Error
}

func (s *Server) ensureRoomDBID(room *Room) error {
	if s.db == nil || room.DBID != 0 {
		return nil
	}
	var record db.Room
	if err := s.db.Where("code = ?", room.ID).First(&record).Error; err != nil {
		return nil
	}
	room.DBID = record.ID
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
