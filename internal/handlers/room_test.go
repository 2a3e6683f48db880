// internal/handlers/room_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/tidraft/tidraft/internal/room"
	"github.com/tidraft/tidraft/internal/store"
)

func newTestService() *room.Service {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return room.NewService(store.NewMemoryStore(), logger, rand.New(rand.NewSource(1)))
}

func postJSON(t *testing.T, h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// TestRoomFlow drives the whole draft over the HTTP surface: create, join,
// start, poll, pick, close.
func TestRoomFlow(t *testing.T) {
	svc := newTestService()

	// create
	w := postJSON(t, CreateRoomHandler(svc), "/rooms/create",
		`{"hostName":"Alice","mode":{"includeBase":true,"includePok":true}}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 created, got %d, body=%s", w.Code, w.Body.String())
	}
	var created struct {
		RoomCode string `json:"roomCode"`
		PlayerID string `json:"playerId"`
		HostID   string `json:"hostId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	if created.RoomCode == "" || created.PlayerID != created.HostID {
		t.Fatalf("bad create response: %+v", created)
	}

	// join
	w = postJSON(t, JoinRoomHandler(svc), "/rooms/join",
		`{"code":"`+created.RoomCode+`","name":"Bob"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 ok, got %d, body=%s", w.Code, w.Body.String())
	}
	var joined struct {
		PlayerID string `json:"playerId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &joined); err != nil {
		t.Fatalf("failed to decode join response: %v", err)
	}

	// start
	w = postJSON(t, StartDraftHandler(svc), "/rooms/start",
		`{"code":"`+created.RoomCode+`","hostId":"`+created.HostID+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 ok, got %d, body=%s", w.Code, w.Body.String())
	}

	// each player polls then picks
	for _, pid := range []string{created.PlayerID, joined.PlayerID} {
		req := httptest.NewRequest("GET", "/rooms/status?code="+created.RoomCode+"&playerId="+pid, nil)
		rw := httptest.NewRecorder()
		RoomStatusHandler(svc).ServeHTTP(rw, req)
		if rw.Code != http.StatusOK {
			t.Fatalf("status poll failed: %d, body=%s", rw.Code, rw.Body.String())
		}
		var view room.StatusView
		if err := json.Unmarshal(rw.Body.Bytes(), &view); err != nil {
			t.Fatalf("failed to decode status view: %v", err)
		}
		if len(view.Self.Options) != 2 {
			t.Fatalf("player %s expected 2 options, got %d", pid, len(view.Self.Options))
		}

		pw := postJSON(t, SubmitPickHandler(svc), "/rooms/select",
			`{"code":"`+created.RoomCode+`","playerId":"`+pid+`","factionId":"`+view.Self.Options[0].ID+`"}`)
		if pw.Code != http.StatusOK {
			t.Fatalf("pick failed: %d, body=%s", pw.Code, pw.Body.String())
		}
	}

	// last pick closed the room
	w = postJSON(t, SubmitPickHandler(svc), "/rooms/select",
		`{"code":"`+created.RoomCode+`","playerId":"`+created.PlayerID+`","factionId":"arborec"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on room no longer drafting, got %d", w.Code)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	svc := newTestService()

	cases := []struct {
		name string
		run  func() *httptest.ResponseRecorder
		want int
	}{
		{
			name: "empty host name",
			run: func() *httptest.ResponseRecorder {
				return postJSON(t, CreateRoomHandler(svc), "/rooms/create",
					`{"hostName":"  ","mode":{"includeBase":true}}`)
			},
			want: http.StatusBadRequest,
		},
		{
			name: "mode without base",
			run: func() *httptest.ResponseRecorder {
				return postJSON(t, CreateRoomHandler(svc), "/rooms/create",
					`{"hostName":"Alice","mode":{"includePok":true}}`)
			},
			want: http.StatusBadRequest,
		},
		{
			name: "unknown room",
			run: func() *httptest.ResponseRecorder {
				return postJSON(t, JoinRoomHandler(svc), "/rooms/join",
					`{"code":"ZZZZZZ","name":"Bob"}`)
			},
			want: http.StatusNotFound,
		},
		{
			name: "malformed body",
			run: func() *httptest.ResponseRecorder {
				return postJSON(t, CreateRoomHandler(svc), "/rooms/create", `{`)
			},
			want: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		w := tc.run()
		if w.Code != tc.want {
			t.Errorf("%s: expected %d, got %d, body=%s", tc.name, tc.want, w.Code, w.Body.String())
		}
		var body struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Error == "" {
			t.Errorf("%s: expected error body, got %s", tc.name, w.Body.String())
		}
	}
}

func TestStatusHandlerNeverLeaksOtherOptions(t *testing.T) {
	svc := newTestService()

	w := postJSON(t, CreateRoomHandler(svc), "/rooms/create",
		`{"hostName":"Alice","mode":{"includeBase":true}}`)
	var created struct {
		RoomCode string `json:"roomCode"`
		HostID   string `json:"hostId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create: %v", err)
	}

	w = postJSON(t, JoinRoomHandler(svc), "/rooms/join",
		`{"code":"`+created.RoomCode+`","name":"Bob"}`)
	var joined struct {
		PlayerID string `json:"playerId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &joined); err != nil {
		t.Fatalf("decode join: %v", err)
	}

	postJSON(t, StartDraftHandler(svc), "/rooms/start",
		`{"code":"`+created.RoomCode+`","hostId":"`+created.HostID+`"}`)

	req := httptest.NewRequest("GET", "/rooms/status?code="+created.RoomCode+"&playerId="+joined.PlayerID, nil)
	rw := httptest.NewRecorder()
	RoomStatusHandler(svc).ServeHTTP(rw, req)

	// The raw response must not contain any map of per-player options, only
	// the caller's own flat list.
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(rw.Body.Bytes(), &generic); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	roomPart := string(generic["room"])
	if bytes.Contains([]byte(roomPart), []byte("optionsByPlayer")) ||
		bytes.Contains([]byte(roomPart), []byte("picksByPlayer")) {
		t.Fatalf("room summary leaks per-player draft state: %s", roomPart)
	}
}
