package server

import (
	"net/http"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/bbauti/impostor/internal/config"
	"github.com/bbauti/impostor/internal/game"
	"github.com/bbauti/impostor/internal/words"
)

type Server struct {
	store    RoomStore
	db       *gorm.DB
	hub      *wsHub
	cfg      config.Config
	pool     game.WordPool
	limiter  *rateLimiter
	timersMu sync.Mutex
	timers   map[string]*time.Timer
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	return &Server{
		store:   NewMemoryStore(),
		db:      conn,
		hub:     newWSHub(),
		cfg:     cfg,
		pool:    words.Pool{},
		limiter: newRateLimiter(),
		timers:  make(map[string]*time.Timer),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/rooms", s.handleCreateRoom)
	mux.HandleFunc("GET /api/rooms/public", s.handlePublicRooms)
	mux.HandleFunc("GET /api/rooms/{id}", s.handleGetRoom)
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /ws", s.handleWebsocket)
	return mux
}
