package server

// clientRoomInfo is the room view sent to clients. The secret word
// and impostor set never leave the server through this path.
type clientRoomInfo struct {
	ID          string   `json:"id"`
	HostID      string   `json:"hostId"`
	Players     []Player `json:"players"`
	Settings    Settings `json:"settings"`
	Phase       string   `json:"phase"`
	VoteRound   int      `json:"voteRound"`
	TimeStarted *int64   `json:"timeStarted"`
}

func snapshotRoom(room *Room) clientRoomInfo {
	players := make([]Player, len(room.Players))
	copy(players, room.Players)

	info := clientRoomInfo{
		ID:        room.ID,
		HostID:    room.HostID,
		Players:   players,
		Settings:  room.Settings,
		Phase:     room.Phase.String(),
		VoteRound: room.VoteRound,
	}
	if !room.TimeStarted.IsZero() {
		started := room.TimeStarted.UnixMilli()
		info.TimeStarted = &started
	}
	return info
}

func summarizeRoom(room *Room) RoomSummary {
	return RoomSummary{
		RoomID:        room.ID,
		PlayerCount:   len(room.Players),
		MaxPlayers:    room.Settings.MaxPlayers,
		ImpostorCount: room.Settings.ImpostorCount,
		Categories:    room.Settings.Categories,
		TimeLimit:     room.Settings.TimeLimit,
		CreatedAt:     room.CreatedAt,
	}
}
