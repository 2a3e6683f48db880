// internal/models/room.go
package models

import (
	"time"

	"github.com/tidraft/tidraft/internal/draft"
)

// Status is the room lifecycle state. Transitions only move forward:
// lobby -> drafting -> closed.
type Status string

const (
	StatusLobby    Status = "lobby"
	StatusDrafting Status = "drafting"
	StatusClosed   Status = "closed"
)

// Player is a roster entry. Created at room creation (the host) or on a
// successful join; never mutated afterwards.
type Player struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Room is the aggregate persisted under its code. The JSON shape is the
// store serialization format, shared by every backend.
type Room struct {
	Code      string           `json:"code"`
	HostID    string           `json:"hostId"`
	Status    Status           `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	Mode      draft.ModeConfig `json:"mode"`

	// Players is in join order; the host is always first.
	Players []Player `json:"players"`

	// OptionsByPlayer maps player id to that player's two private options.
	// Empty until the draft starts, then fixed.
	OptionsByPlayer map[string][]draft.Faction `json:"optionsByPlayer"`

	// PicksByPlayer maps player id to the faction that player locked in.
	// A pick, once recorded, never changes.
	PicksByPlayer map[string]draft.Faction `json:"picksByPlayer"`
}

// HasPlayer reports whether id belongs to the roster.
func (r *Room) HasPlayer(id string) bool {
	for _, p := range r.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Clone deep-copies the room so store callers never alias shared state.
func (r *Room) Clone() *Room {
	c := *r

	c.Players = make([]Player, len(r.Players))
	copy(c.Players, r.Players)

	c.OptionsByPlayer = make(map[string][]draft.Faction, len(r.OptionsByPlayer))
	for id, opts := range r.OptionsByPlayer {
		dup := make([]draft.Faction, len(opts))
		copy(dup, opts)
		c.OptionsByPlayer[id] = dup
	}

	c.PicksByPlayer = make(map[string]draft.Faction, len(r.PicksByPlayer))
	for id, f := range r.PicksByPlayer {
		c.PicksByPlayer[id] = f
	}

	return &c
}
