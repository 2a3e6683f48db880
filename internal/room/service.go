// Package room implements the room lifecycle state machine: create, join,
// start, pick submission, and the per-player status view. It is written
// against the abstract room store so backends stay interchangeable.
package room

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/tidraft/tidraft/internal/apperr"
	"github.com/tidraft/tidraft/internal/draft"
	"github.com/tidraft/tidraft/internal/models"
	"github.com/tidraft/tidraft/internal/store"
)

// maxCodeAttempts bounds collision-retry during code generation. With a
// 32-char alphabet and 6 positions the space is ~10^9 codes, so hitting the
// bound means the rng is broken, not the store full.
const maxCodeAttempts = 50

// Service owns the room state machine. Every mutating operation takes a
// per-room lock so its read-modify-write cycle on one room is atomic;
// operations on different rooms proceed in parallel.
type Service struct {
	store  store.RoomStore
	logger *log.Logger

	rngMu sync.Mutex // rand.Rand is not safe for concurrent use
	rng   *rand.Rand

	mu    sync.Mutex // Protects access to the locks map.
	locks map[string]*sync.Mutex
}

// NewService builds a Service over the given store. rng is the injected
// randomness for code generation and option shuffling; pass nil for a
// time-seeded source.
func NewService(st store.RoomStore, logger *log.Logger, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = log.New()
	}
	return &Service{
		store:  st,
		logger: logger,
		rng:    rng,
		locks:  make(map[string]*sync.Mutex),
	}
}

// lockRoom acquires the mutex scoped to one room code and returns the
// release func. Lock entries are never removed; rooms have no expiry either.
func (s *Service) lockRoom(code string) func() {
	s.mu.Lock()
	m, ok := s.locks[code]
	if !ok {
		m = &sync.Mutex{}
		s.locks[code] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// getRoom loads a room or maps the store miss into the request taxonomy.
func (s *Service) getRoom(ctx context.Context, code string) (*models.Room, error) {
	r, err := s.store.Get(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "room not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load room %s: %w", code, err)
	}
	return r, nil
}

// Create validates the host name and mode, generates a fresh collision-free
// room code, and persists a new lobby with the host as sole player.
func (s *Service) Create(ctx context.Context, hostName string, mode draft.ModeConfig) (*models.Room, models.Player, error) {
	name := strings.TrimSpace(hostName)
	if name == "" {
		return nil, models.Player{}, apperr.New(apperr.Validation, "host name is required")
	}
	if !mode.IncludeBase {
		return nil, models.Player{}, apperr.New(apperr.Configuration, "base game must be included")
	}

	var code string
	for attempt := 0; ; attempt++ {
		if attempt == maxCodeAttempts {
			return nil, models.Player{}, fmt.Errorf("no unique room code after %d attempts", maxCodeAttempts)
		}
		c := s.randomCode()
		taken, err := s.store.Exists(ctx, c)
		if err != nil {
			return nil, models.Player{}, fmt.Errorf("check code %s: %w", c, err)
		}
		if !taken {
			code = c
			break
		}
	}

	host := models.Player{
		ID:       uuid.NewString(),
		Name:     name,
		JoinedAt: time.Now(),
	}
	room := &models.Room{
		Code:            code,
		HostID:          host.ID,
		Status:          models.StatusLobby,
		CreatedAt:       time.Now(),
		Mode:            mode,
		Players:         []models.Player{host},
		OptionsByPlayer: map[string][]draft.Faction{},
		PicksByPlayer:   map[string]draft.Faction{},
	}

	unlock := s.lockRoom(code)
	defer unlock()

	if err := s.store.Put(ctx, code, room); err != nil {
		return nil, models.Player{}, fmt.Errorf("persist room %s: %w", code, err)
	}

	s.logger.WithFields(log.Fields{
		"room": code,
		"host": host.ID,
	}).Info("room created")

	return room, host, nil
}

// Join appends a new player to a lobby-status room.
func (s *Service) Join(ctx context.Context, code, playerName string) (*models.Room, models.Player, error) {
	code = NormalizeCode(code)

	unlock := s.lockRoom(code)
	defer unlock()

	room, err := s.getRoom(ctx, code)
	if err != nil {
		return nil, models.Player{}, err
	}
	if room.Status != models.StatusLobby {
		return nil, models.Player{}, apperr.New(apperr.InvalidState, "room is not open for joining")
	}

	name := strings.TrimSpace(playerName)
	if name == "" {
		return nil, models.Player{}, apperr.New(apperr.Validation, "player name is required")
	}

	player := models.Player{
		ID:       uuid.NewString(),
		Name:     name,
		JoinedAt: time.Now(),
	}
	room.Players = append(room.Players, player)

	if err := s.store.Put(ctx, code, room); err != nil {
		return nil, models.Player{}, fmt.Errorf("persist room %s: %w", code, err)
	}

	s.logger.WithFields(log.Fields{
		"room":    code,
		"player":  player.ID,
		"players": len(room.Players),
	}).Info("player joined")

	return room, player, nil
}

// GetStatus returns the public room summary plus the caller's private self
// view. Read-only: it never persists and never reveals other players'
// options, or who has picked beyond the aggregate count.
func (s *Service) GetStatus(ctx context.Context, code, playerID string) (*StatusView, error) {
	code = NormalizeCode(code)

	room, err := s.getRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if !room.HasPlayer(playerID) {
		return nil, apperr.New(apperr.Forbidden, "player not in room")
	}

	self := SelfView{
		PlayerID: playerID,
		Options:  []draft.Faction{},
	}
	if picked, ok := room.PicksByPlayer[playerID]; ok {
		f := picked
		self.Picked = &f
	} else if opts, ok := room.OptionsByPlayer[playerID]; ok {
		self.Options = append(self.Options, opts...)
	}

	return &StatusView{
		Room: RoomSummary{
			Code:           room.Code,
			HostID:         room.HostID,
			Status:         room.Status,
			Players:        room.Players,
			Mode:           room.Mode,
			SubmittedCount: len(room.PicksByPlayer),
			TotalCount:     len(room.Players),
		},
		Self: self,
	}, nil
}

// Start moves a lobby to drafting: builds the eligible pool, assigns each
// rostered player two private options, and persists the transition. Only
// the host may start, and only once.
func (s *Service) Start(ctx context.Context, code, hostID string) (*models.Room, error) {
	code = NormalizeCode(code)

	unlock := s.lockRoom(code)
	defer unlock()

	room, err := s.getRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.HostID != hostID {
		return nil, apperr.New(apperr.Forbidden, "only the host can start the draft")
	}
	if room.Status != models.StatusLobby {
		return nil, apperr.New(apperr.InvalidState, "draft already started or room closed")
	}

	pool, err := draft.BuildPool(room.Mode)
	if err != nil {
		return nil, err
	}

	roster := make([]string, len(room.Players))
	for i, p := range room.Players {
		roster[i] = p.ID
	}

	s.rngMu.Lock()
	options, err := draft.Assign(roster, pool, s.rng)
	s.rngMu.Unlock()
	if err != nil {
		return nil, err
	}

	room.OptionsByPlayer = options
	room.Status = models.StatusDrafting

	if err := s.store.Put(ctx, code, room); err != nil {
		return nil, fmt.Errorf("persist room %s: %w", code, err)
	}

	s.logger.WithFields(log.Fields{
		"room":    code,
		"players": len(room.Players),
		"pool":    len(pool),
	}).Info("draft started")

	return room, nil
}

// SubmitPick records a player's hidden pick. The pick must come from the
// player's own two options; a second submission is rejected. When the last
// rostered player picks, the room closes in the same write.
func (s *Service) SubmitPick(ctx context.Context, code, playerID, factionID string) (*models.Room, error) {
	code = NormalizeCode(code)

	unlock := s.lockRoom(code)
	defer unlock()

	room, err := s.getRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.Status != models.StatusDrafting {
		return nil, apperr.New(apperr.InvalidState, "draft is not active")
	}
	if _, picked := room.PicksByPlayer[playerID]; picked {
		return nil, apperr.New(apperr.Conflict, "pick already submitted")
	}

	options, ok := room.OptionsByPlayer[playerID]
	if !ok {
		return nil, apperr.New(apperr.Forbidden, "no options assigned for this player")
	}

	var pick *draft.Faction
	for i := range options {
		if options[i].ID == factionID {
			pick = &options[i]
			break
		}
	}
	if pick == nil {
		return nil, apperr.New(apperr.Validation, "selected faction is not in your private options")
	}

	room.PicksByPlayer[playerID] = *pick
	if len(room.PicksByPlayer) == len(room.Players) {
		room.Status = models.StatusClosed
	}

	if err := s.store.Put(ctx, code, room); err != nil {
		return nil, fmt.Errorf("persist room %s: %w", code, err)
	}

	fields := log.Fields{
		"room":      code,
		"player":    playerID,
		"submitted": len(room.PicksByPlayer),
		"total":     len(room.Players),
	}
	if room.Status == models.StatusClosed {
		s.logger.WithFields(fields).Info("draft closed")
	} else {
		s.logger.WithFields(fields).Info("pick submitted")
	}

	return room, nil
}
