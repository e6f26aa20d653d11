package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	MinPlayers       int
	MaxPlayers       int
	MinImpostors     int
	MaxImpostors     int
	MinTimeLimitMins int
	MaxTimeLimitMins int

	RoleRevealSeconds   int
	VoteResultSeconds   int
	DisconnectSeconds   int
	CleanupSweepSeconds int

	// Grace periods before an eligible room is deleted.
	EndedGraceSeconds        int
	EmptyWaitingGraceSeconds int
	EmptyPlayingGraceSeconds int

	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeSeconds int
	DBConnMaxIdleTimeSeconds int
}

func Default() Config {
	return Config{
		MinPlayers:       3,
		MaxPlayers:       10,
		MinImpostors:     1,
		MaxImpostors:     3,
		MinTimeLimitMins: 5,
		MaxTimeLimitMins: 30,

		RoleRevealSeconds:   10,
		VoteResultSeconds:   3,
		DisconnectSeconds:   5,
		CleanupSweepSeconds: 60,

		EndedGraceSeconds:        0,
		EmptyWaitingGraceSeconds: 300,
		EmptyPlayingGraceSeconds: 30,

		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
	}
}

func Load() Config {
	cfg := Default()
	loadInt("MIN_PLAYERS", &cfg.MinPlayers)
	loadInt("MAX_PLAYERS", &cfg.MaxPlayers)
	loadInt("MIN_IMPOSTORS", &cfg.MinImpostors)
	loadInt("MAX_IMPOSTORS", &cfg.MaxImpostors)
	loadInt("MIN_TIME_LIMIT_MINUTES", &cfg.MinTimeLimitMins)
	loadInt("MAX_TIME_LIMIT_MINUTES", &cfg.MaxTimeLimitMins)
	loadInt("ROLE_REVEAL_SECONDS", &cfg.RoleRevealSeconds)
	loadInt("VOTE_RESULT_SECONDS", &cfg.VoteResultSeconds)
	loadInt("DISCONNECT_GRACE_SECONDS", &cfg.DisconnectSeconds)
	loadInt("CLEANUP_SWEEP_SECONDS", &cfg.CleanupSweepSeconds)
	loadInt("ENDED_GRACE_SECONDS", &cfg.EndedGraceSeconds)
	loadInt("EMPTY_WAITING_GRACE_SECONDS", &cfg.EmptyWaitingGraceSeconds)
	loadInt("EMPTY_PLAYING_GRACE_SECONDS", &cfg.EmptyPlayingGraceSeconds)
	loadInt("DB_MAX_OPEN_CONNS", &cfg.DBMaxOpenConns)
	loadInt("DB_MAX_IDLE_CONNS", &cfg.DBMaxIdleConns)
	loadInt("DB_CONN_MAX_LIFETIME_SECONDS", &cfg.DBConnMaxLifetimeSeconds)
	loadInt("DB_CONN_MAX_IDLE_TIME_SECONDS", &cfg.DBConnMaxIdleTimeSeconds)
	return cfg
}

func loadInt(name string, dest *int) {
	raw := os.Getenv(name)
	if raw == "" {
		return
	}
	if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
		*dest = value
	}
}

func (c Config) RoleRevealDuration() time.Duration {
	return time.Duration(c.RoleRevealSeconds) * time.Second
}

func (c Config) VoteResultDuration() time.Duration {
	return time.Duration(c.VoteResultSeconds) * time.Second
}

func (c Config) DisconnectGrace() time.Duration {
	return time.Duration(c.DisconnectSeconds) * time.Second
}
