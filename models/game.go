package models

import (
	"context"
	"time"
)

type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize

	// NoMove marks the initial snapshot, which no move produced.
	NoMove = -1
)

type Board [CellCount]Mark

// Snapshot is one immutable board configuration in a game's history.
type Snapshot struct {
	Squares      Board
	MovePosition int // cell index of the move that produced it, or NoMove
}

func (s Snapshot) HasMove() bool {
	return s.MovePosition != NoMove
}

type Game struct {
	ID             string
	History        []Snapshot // History[0] is always the empty board
	StepNumber     int        // index into History of the viewed snapshot
	SortDescending bool       // move list newest-first
	CreatedAt      time.Time
}

// Clone returns a deep copy so callers can read a game outside the store lock.
func (g *Game) Clone() *Game {
	c := *g
	c.History = append([]Snapshot(nil), g.History...)
	return &c
}

type WinInfo struct {
	Winner Mark
	Line   []int // nil unless there is a winner
	IsDraw bool
}

type MoveEntry struct {
	Step        int
	Description string
	IsCurrent   bool
}

type CellView struct {
	Index      int
	Mark       Mark
	IsWinning  bool
	IsSelected bool
}

type GameEvent struct {
	Type   string      `json:"type"`
	GameID string      `json:"gameId"`
	Data   interface{} `json:"data"`
}

type GameSubscriber struct {
	ID      string
	GameID  string
	Channel chan GameEvent
	Context context.Context
}
