package e2e

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleGameSetup(t *testing.T) {
	browser := setupBrowser(t)
	server := httptest.NewServer(setupRouter())
	defer server.Close()

	t.Run("Basic game setup works", func(t *testing.T) {
		page := newPage(t, browser)

		gameURL := startGame(t, page, server.URL)
		assert.NotEmpty(t, extractGameID(gameURL))

		cells, err := page.Locator(".square").Count()
		require.NoError(t, err)
		assert.Equal(t, 9, cells)

		assert.Equal(t, "Next player: X", statusText(t, page))

		moves, err := page.Locator("ol.moves li").Count()
		require.NoError(t, err)
		assert.Equal(t, 1, moves)

		sortLabel, err := page.Locator(".sort-toggle").TextContent()
		require.NoError(t, err)
		assert.Equal(t, "Asc", sortLabel)
	})

	t.Run("Unknown game shows not found page", func(t *testing.T) {
		page := newPage(t, browser)

		resp, err := page.Goto(server.URL + "/game/does-not-exist")
		require.NoError(t, err)
		assert.Equal(t, 404, resp.Status())

		heading, err := page.Locator("h2").TextContent()
		require.NoError(t, err)
		assert.Equal(t, "Game Not Found", heading)
	})
}
