package e2e

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnAlternation(t *testing.T) {
	browser := setupBrowser(t)
	server := httptest.NewServer(setupRouter())
	defer server.Close()

	page := newPage(t, browser)
	startGame(t, page, server.URL)

	t.Run("X starts, then O", func(t *testing.T) {
		assert.Equal(t, "Next player: X", statusText(t, page))

		playCells(t, page, 4)
		waitForStatus(t, page, "Next player: O")

		playCells(t, page, 0)
		waitForStatus(t, page, "Next player: X")
	})

	t.Run("Occupied cell is ignored", func(t *testing.T) {
		clickCell(t, page, 4)

		// Wait a bit and verify nothing changed
		time.Sleep(300 * time.Millisecond)
		assert.Equal(t, "Next player: X", statusText(t, page))

		moves, err := page.Locator("ol.moves li").Count()
		require.NoError(t, err)
		assert.Equal(t, 3, moves)
	})

	t.Run("Last move is highlighted", func(t *testing.T) {
		class, err := page.Locator(".square").Nth(0).GetAttribute("class")
		require.NoError(t, err)
		assert.Contains(t, class, "highlight-selected")

		class, err = page.Locator(".square").Nth(4).GetAttribute("class")
		require.NoError(t, err)
		assert.NotContains(t, class, "highlight-selected")
	})
}
