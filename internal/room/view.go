// internal/room/view.go
package room

import (
	"github.com/tidraft/tidraft/internal/draft"
	"github.com/tidraft/tidraft/internal/models"
)

// StatusView is what a polling player sees: the public room summary plus
// that player's own private slice of the draft. It never carries another
// player's options or picks.
type StatusView struct {
	Room RoomSummary `json:"room"`
	Self SelfView    `json:"self"`
}

// RoomSummary is the public portion of a status response. Pick progress is
// exposed only as an aggregate count.
type RoomSummary struct {
	Code           string           `json:"code"`
	HostID         string           `json:"hostId"`
	Status         models.Status    `json:"status"`
	Players        []models.Player  `json:"players"`
	Mode           draft.ModeConfig `json:"mode"`
	SubmittedCount int              `json:"submittedCount"`
	TotalCount     int              `json:"totalCount"`
}

// SelfView is the caller's private portion. Options is empty before the
// draft starts and again once the caller has picked.
type SelfView struct {
	PlayerID string          `json:"playerId"`
	Options  []draft.Faction `json:"options"`
	Picked   *draft.Faction  `json:"picked"`
}
