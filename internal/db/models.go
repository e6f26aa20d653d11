package db

import (
	"time"

	"gorm.io/datatypes"
)

type Room struct {
	ID          uint           `gorm:"primaryKey"`
	Code        string         `gorm:"size:12;uniqueIndex;not null"`
	CreatorID   string         `gorm:"size:64;not null"`
	Phase       string         `gorm:"size:32;not null"`
	IsPublic    bool           `gorm:"not null;default:false"`
	Settings    datatypes.JSON `gorm:"type:jsonb;not null"`
	PlayerCount int            `gorm:"not null;default:0"`
	VoteRound   int            `gorm:"not null;default:0"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	Events      []Event
}

type Event struct {
	ID        uint           `gorm:"primaryKey"`
	RoomID    uint           `gorm:"index;not null"`
	Type      string         `gorm:"size:64;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"not null"`
}
