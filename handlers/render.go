package handlers

import (
	"fmt"
	"html"
	"strings"

	"htmx-tictactoe/game"
	"htmx-tictactoe/models"
)

// renderGameHTML renders the #game fragment: board, status, sort toggle and
// move list. htmx swaps it in after every action and on every SSE event.
func renderGameHTML(g *models.Game) string {
	var b strings.Builder

	b.WriteString(`<div id="game" class="game" hx-target="#game" hx-swap="outerHTML">`)
	b.WriteString(renderBoardHTML(g))

	b.WriteString(`<div class="game-info">`)
	fmt.Fprintf(&b, `<div id="game-status" class="status">%s</div>`, html.EscapeString(game.Status(g)))
	fmt.Fprintf(&b, `<button class="sort-toggle" hx-post="/api/game/%s/sort">%s</button>`, g.ID, sortLabel(g))
	b.WriteString(renderMoveListHTML(g))
	b.WriteString(`</div>`)

	b.WriteString(`</div>`)
	return b.String()
}

func renderBoardHTML(g *models.Game) string {
	var b strings.Builder
	cells := game.Cells(g)

	b.WriteString(`<div id="game-board" class="game-board">`)
	for row := 0; row < models.BoardSize; row++ {
		b.WriteString(`<div class="board-row">`)
		for col := 0; col < models.BoardSize; col++ {
			cell := cells[row*models.BoardSize+col]
			fmt.Fprintf(&b, `<button class="%s" data-cell="%d" hx-post="/api/game/%s/move/%d">%s</button>`,
				cellClass(cell), cell.Index, g.ID, cell.Index, html.EscapeString(string(cell.Mark)))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func renderMoveListHTML(g *models.Game) string {
	var b strings.Builder

	b.WriteString(`<ol class="moves">`)
	for _, entry := range game.MoveList(g) {
		class := ""
		if entry.IsCurrent {
			class = ` class="bold-selected-item"`
		}
		fmt.Fprintf(&b, `<li><button%s data-step="%d" hx-post="/api/game/%s/jump/%d">%s</button></li>`,
			class, entry.Step, g.ID, entry.Step, html.EscapeString(entry.Description))
	}
	b.WriteString(`</ol>`)
	return b.String()
}

func cellClass(cell models.CellView) string {
	class := "square"
	if cell.IsSelected {
		class += " highlight-selected"
	}
	if cell.IsWinning {
		class += " winning"
	}
	return class
}

// sortLabel names the order currently shown: "Asc" while the list is
// chronological, "Desc" once it is reversed.
func sortLabel(g *models.Game) string {
	if g.SortDescending {
		return "Desc"
	}
	return "Asc"
}
