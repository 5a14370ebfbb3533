package game

import (
	"fmt"
	"sync"
	"time"

	"htmx-tictactoe/models"

	"github.com/google/uuid"
)

// Store keeps games in process memory. Games are lost on restart.
type Store struct {
	mu    sync.RWMutex
	games map[string]*models.Game
}

func NewStore() *Store {
	return &Store{games: make(map[string]*models.Game)}
}

// generateGameID creates a unique game identifier
func generateGameID() string {
	return uuid.NewString()
}

// CreateGame creates a new game and stores it
func (s *Store) CreateGame() *models.Game {
	g := NewGame(generateGameID())
	g.CreatedAt = time.Now()

	s.mu.Lock()
	s.games[g.ID] = g
	s.mu.Unlock()

	return g.Clone()
}

// GetGame retrieves a copy of the game, or nil if the id is unknown
func (s *Store) GetGame(id string) *models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return nil
	}
	return g.Clone()
}

// Update runs fn on the stored game while holding the write lock and
// returns a copy of the game as fn left it.
func (s *Store) Update(id string, fn func(g *models.Game) error) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	if err := fn(g); err != nil {
		return g.Clone(), err
	}
	return g.Clone(), nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
