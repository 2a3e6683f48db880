// Package store provides the keyed room store: a mapping from room code to
// the serialized Room record, with interchangeable backends (in-memory for
// tests and single-node deploys, Postgres or Redis for durable/networked
// deploys).
package store

import (
	"context"
	"errors"

	"github.com/tidraft/tidraft/internal/models"
)

// ErrNotFound is returned by Get when no room exists under the code.
var ErrNotFound = errors.New("room not found")

// RoomStore is the persistence contract the room service is written against.
// Codes are canonicalized (upper case) by the caller before reaching a store.
type RoomStore interface {
	// Get fetches the room stored under code, or ErrNotFound.
	Get(ctx context.Context, code string) (*models.Room, error)
	// Put upserts the room under code.
	Put(ctx context.Context, code string, room *models.Room) error
	// Exists reports whether a room is stored under code. Used for
	// collision-checking freshly generated codes.
	Exists(ctx context.Context, code string) (bool, error)
}
