package server

import (
	"errors"
	"sort"
	"sync"
	"time"
)

var ErrRoomNotFound = errors.New("room not found")

// RoomStore is the room registry. Update serializes all mutations of
// a room behind the store lock: operations validate inside the
// closure and return an error before touching anything, so a failed
// operation leaves the room unchanged.
type RoomStore interface {
	Put(room *Room)
	Get(id string) (*Room, bool)
	Update(id string, update func(room *Room) error) (*Room, error)
	Delete(id string)
	ListByActivity() []*Room
}

type memoryStore struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func NewMemoryStore() RoomStore {
	return &memoryStore{
		rooms: make(map[string]*Room),
	}
}

func (s *memoryStore) Put(room *Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = room
}

func (s *memoryStore) Get(id string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	return room, ok
}

func (s *memoryStore) Update(id string, update func(room *Room) error) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if err := update(room); err != nil {
		return nil, err
	}
	room.LastActivity = time.Now().UTC()
	return room, nil
}

func (s *memoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
}

func (s *memoryStore) ListByActivity() []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		list = append(list, room)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].LastActivity.After(list[j].LastActivity)
	})
	return list
}
