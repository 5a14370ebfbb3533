package game

import (
	"errors"
	"fmt"

	"htmx-tictactoe/models"
)

var (
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidStep  = errors.New("invalid history step")
	ErrGameNotFound = errors.New("game not found")
)

// WinningLines lists rows, then columns, then diagonals.
var WinningLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// CalculateWinner reports the first completed line of the board, or whether
// the board is a draw when none is complete. Mark counts are not validated.
func CalculateWinner(board models.Board) models.WinInfo {
	for _, line := range WinningLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != models.MarkEmpty && a == b && a == c {
			return models.WinInfo{
				Winner: a,
				Line:   []int{line[0], line[1], line[2]},
			}
		}
	}

	for _, cell := range board {
		if cell == models.MarkEmpty {
			return models.WinInfo{}
		}
	}
	return models.WinInfo{IsDraw: true}
}

// NewGame returns a game whose history holds only the empty board.
func NewGame(id string) *models.Game {
	return &models.Game{
		ID:         id,
		History:    []models.Snapshot{{MovePosition: models.NoMove}},
		StepNumber: 0,
	}
}

// Current returns the snapshot being viewed.
func Current(g *models.Game) models.Snapshot {
	return g.History[g.StepNumber]
}

// XIsNext is derived from the parity of the viewed step.
func XIsNext(g *models.Game) bool {
	return g.StepNumber%2 == 0
}

func NextMark(g *models.Game) models.Mark {
	if XIsNext(g) {
		return models.MarkX
	}
	return models.MarkO
}

// ApplyMove places the next mark on cell. It reports false without changing
// the game when the viewed board already has a winner or the cell is taken.
// Moves made after rewinding discard the snapshots past the viewed step.
func ApplyMove(g *models.Game, cell int) (bool, error) {
	if cell < 0 || cell >= models.CellCount {
		return false, fmt.Errorf("%w: %d", ErrInvalidCell, cell)
	}

	current := Current(g)
	if CalculateWinner(current.Squares).Winner != models.MarkEmpty || current.Squares[cell] != models.MarkEmpty {
		return false, nil
	}

	next := models.Snapshot{Squares: current.Squares, MovePosition: cell}
	next.Squares[cell] = NextMark(g)

	history := g.History[:g.StepNumber+1:g.StepNumber+1]
	g.History = append(history, next)
	g.StepNumber = len(g.History) - 1
	return true, nil
}

// JumpTo views an earlier (or later) step without touching history.
func JumpTo(g *models.Game, step int) error {
	if step < 0 || step >= len(g.History) {
		return fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}
	g.StepNumber = step
	return nil
}

func ToggleSort(g *models.Game) {
	g.SortDescending = !g.SortDescending
}

// Status is the line shown above the move list.
func Status(g *models.Game) string {
	info := CalculateWinner(Current(g).Squares)
	switch {
	case info.Winner != models.MarkEmpty:
		return "Winner: " + string(info.Winner)
	case info.IsDraw:
		return "Draw"
	default:
		return "Next player: " + string(NextMark(g))
	}
}

// IsGameFinished returns true if the viewed snapshot is won or drawn
func IsGameFinished(g *models.Game) bool {
	info := CalculateWinner(Current(g).Squares)
	return info.Winner != models.MarkEmpty || info.IsDraw
}

// MoveList describes every history step in display order.
func MoveList(g *models.Game) []models.MoveEntry {
	entries := make([]models.MoveEntry, 0, len(g.History))
	for step, snap := range g.History {
		desc := "Go to game start"
		if step > 0 && snap.HasMove() {
			col := snap.MovePosition % models.BoardSize
			row := snap.MovePosition / models.BoardSize
			desc = fmt.Sprintf("Go to move #%d (%d,%d)", step, col, row)
		}
		entries = append(entries, models.MoveEntry{
			Step:        step,
			Description: desc,
			IsCurrent:   step == g.StepNumber,
		})
	}

	if g.SortDescending {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
	return entries
}

// Cells returns the viewed board with winning and last-move highlights.
// A winning cell is never reported as selected.
func Cells(g *models.Game) []models.CellView {
	current := Current(g)
	info := CalculateWinner(current.Squares)

	winning := make(map[int]bool, len(info.Line))
	for _, idx := range info.Line {
		winning[idx] = true
	}

	cells := make([]models.CellView, models.CellCount)
	for i, mark := range current.Squares {
		cells[i] = models.CellView{
			Index:      i,
			Mark:       mark,
			IsWinning:  winning[i],
			IsSelected: i == current.MovePosition && !winning[i],
		}
	}
	return cells
}
