// service/game_manager.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/benbeisheim/chessbot-backend/internal/model"
	"golang.org/x/exp/maps"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

// GameManager owns every live game, keyed by ID.
type GameManager struct {
	games map[string]*model.Game
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
	}
}

func (gm *GameManager) CreateGame(gameID string, opts model.Options) (*model.Game, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return nil, fmt.Errorf("%w: %s", ErrGameExists, gameID)
	}

	game := model.NewGame(gameID, opts)
	gm.games[gameID] = game
	log.Printf("created %s game %s", opts.Mode, gameID)
	return game, nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	return game, nil
}

func (gm *GameManager) RemoveGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	delete(gm.games, gameID)
	return nil
}

// ListGames returns summaries ordered by creation time, oldest first.
func (gm *GameManager) ListGames() []model.GameSummary {
	gm.mu.RLock()
	games := maps.Values(gm.games)
	gm.mu.RUnlock()

	out := make([]model.GameSummary, 0, len(games))
	for _, g := range games {
		out = append(out, g.Summary())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// GameIDs lists the IDs of all live games in no particular order.
func (gm *GameManager) GameIDs() []string {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return maps.Keys(gm.games)
}

// Sweep removes every game that Abandoned reports idle since before now-idle.
// It returns how many were removed.
func (gm *GameManager) Sweep(now time.Time, idle time.Duration) int {
	removed := 0
	for _, id := range gm.GameIDs() {
		game, err := gm.GetGame(id)
		if err != nil || !game.Abandoned(now, idle) {
			continue
		}
		if err := gm.RemoveGame(id); err == nil {
			log.Printf("removed abandoned game %s", id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (gm *GameManager) RunSweeper(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			gm.Sweep(now, idle)
		}
	}
}
