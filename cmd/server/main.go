// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/tidraft/tidraft/internal/handlers"
	"github.com/tidraft/tidraft/internal/middleware"
	"github.com/tidraft/tidraft/internal/room"
	"github.com/tidraft/tidraft/internal/store"
)

// newStore picks the room store backend from STORE_BACKEND:
// "memory" (default), "postgres", or "redis".
func newStore(ctx context.Context) (store.RoomStore, error) {
	switch backend := os.Getenv("STORE_BACKEND"); backend {
	case "postgres":
		return store.NewPostgresStore(ctx)
	case "redis":
		return store.NewRedisStore(ctx)
	case "", "memory":
		return store.NewMemoryStore(), nil
	default:
		log.Fatalf("unknown STORE_BACKEND %q", backend)
		return nil, nil
	}
}

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	st, err := newStore(context.Background())
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	svc := room.NewService(st, logger, nil)

	withLog := middleware.LogMiddleware(logger)

	mux := http.NewServeMux()

	// room endpoints
	mux.Handle("/rooms/create", withLog(handlers.CreateRoomHandler(svc)))
	mux.Handle("/rooms/join", withLog(handlers.JoinRoomHandler(svc)))
	mux.Handle("/rooms/start", withLog(handlers.StartDraftHandler(svc)))
	mux.Handle("/rooms/select", withLog(handlers.SubmitPickHandler(svc)))
	mux.Handle("/rooms/status", withLog(handlers.RoomStatusHandler(svc)))

	// catalog + liveness
	mux.Handle("/factions", withLog(handlers.FactionsHandler()))
	mux.HandleFunc("/healthz", handlers.HealthzHandler)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
