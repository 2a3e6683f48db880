package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tidraft/tidraft/internal/apperr"
)

type errorBody struct {
	Error string `json:"error"`
}

// kindStatus maps every rejection kind to an HTTP status. There are no
// server-fault kinds in the taxonomy; anything outside it becomes a 500.
var kindStatus = map[apperr.Kind]int{
	apperr.Validation:       http.StatusBadRequest,
	apperr.Configuration:    http.StatusBadRequest,
	apperr.NotFound:         http.StatusNotFound,
	apperr.Forbidden:        http.StatusForbidden,
	apperr.InvalidState:     http.StatusConflict,
	apperr.Conflict:         http.StatusConflict,
	apperr.InsufficientPool: http.StatusUnprocessableEntity,
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status, ok := kindStatus[apperr.KindOf(err)]
	if !ok {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}
