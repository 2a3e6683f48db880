// internal/handlers/room.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tidraft/tidraft/internal/draft"
	"github.com/tidraft/tidraft/internal/room"
)

type createRoomRequest struct {
	HostName string           `json:"hostName"`
	Mode     draft.ModeConfig `json:"mode"`
}

type joinRoomRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type startDraftRequest struct {
	Code   string `json:"code"`
	HostID string `json:"hostId"`
}

type submitPickRequest struct {
	Code      string `json:"code"`
	PlayerID  string `json:"playerId"`
	FactionID string `json:"factionId"`
}

// roomCredentials is the response to both create and join: everything a
// client needs to poll and act on the room.
type roomCredentials struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
	HostID   string `json:"hostId"`
}

type draftProgress struct {
	Status         string `json:"status"`
	SubmittedCount int    `json:"submittedCount,omitempty"`
	TotalCount     int    `json:"totalCount,omitempty"`
}

// CreateRoomHandler handles POST /rooms/create.
func CreateRoomHandler(svc *room.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req createRoomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "bad request payload")
			return
		}

		created, host, err := svc.Create(r.Context(), req.HostName, req.Mode)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, roomCredentials{
			RoomCode: created.Code,
			PlayerID: host.ID,
			HostID:   created.HostID,
		})
	}
}

// JoinRoomHandler handles POST /rooms/join.
func JoinRoomHandler(svc *room.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req joinRoomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "bad request payload")
			return
		}

		joined, player, err := svc.Join(r.Context(), req.Code, req.Name)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, roomCredentials{
			RoomCode: joined.Code,
			PlayerID: player.ID,
			HostID:   joined.HostID,
		})
	}
}

// StartDraftHandler handles POST /rooms/start.
func StartDraftHandler(svc *room.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req startDraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "bad request payload")
			return
		}

		started, err := svc.Start(r.Context(), req.Code, req.HostID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, draftProgress{Status: string(started.Status)})
	}
}

// SubmitPickHandler handles POST /rooms/select.
func SubmitPickHandler(svc *room.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req submitPickRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "bad request payload")
			return
		}

		updated, err := svc.SubmitPick(r.Context(), req.Code, req.PlayerID, req.FactionID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, draftProgress{
			Status:         string(updated.Status),
			SubmittedCount: len(updated.PicksByPlayer),
			TotalCount:     len(updated.Players),
		})
	}
}

// RoomStatusHandler handles GET /rooms/status?code=&playerId=. This is the
// polling endpoint; it only ever returns the caller's own private view.
func RoomStatusHandler(svc *room.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		code := r.URL.Query().Get("code")
		playerID := r.URL.Query().Get("playerId")
		if code == "" || playerID == "" {
			writeErrorMessage(w, http.StatusBadRequest, "code and playerId are required")
			return
		}

		view, err := svc.GetStatus(r.Context(), code, playerID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// FactionsHandler handles GET /factions: the catalog filtered by mode flags
// passed as query parameters. Clients use it to build the mode screen.
func FactionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := r.URL.Query()
		mode := draft.ModeConfig{
			IncludeBase:   q.Get("includeBase") != "false",
			IncludePok:    q.Get("includePok") == "true",
			IncludeCodex1: q.Get("includeCodex1") == "true",
			IncludeCodex2: q.Get("includeCodex2") == "true",
		}

		pool, err := draft.BuildPool(mode)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pool)
	}
}

// HealthzHandler reports process liveness.
func HealthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
