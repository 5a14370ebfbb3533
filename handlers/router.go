package handlers

import (
	"path/filepath"

	"htmx-tictactoe/config"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func createMyRender(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	base := filepath.Join(templatesDir, "layouts", "base.html")
	for _, page := range []string{"home.html", "game.html", "404.html"} {
		r.AddFromFiles(page, base, filepath.Join(templatesDir, "pages", page))
	}

	return r
}

// NewRouter wires every page and API route onto a gin engine.
func NewRouter(cfg *config.Config, h *Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(RequestLogger(logger), gin.Recovery())

	r.HTMLRender = createMyRender(cfg.TemplatesDir)
	r.Static("/static", cfg.StaticDir)

	// Main pages
	r.GET("/", h.HomeHandler)
	r.GET("/new-game", h.NewGameHandler)
	r.GET("/game/:id", h.GamePageHandler)
	r.GET("/healthz", h.HealthHandler)

	// Game API endpoints
	api := r.Group("/api/game/:id")
	api.POST("/move/:cell", h.GameMoveHandler)
	api.POST("/jump/:step", h.GameJumpHandler)
	api.POST("/sort", h.GameSortHandler)
	api.GET("/events", h.GameSSEHandler)

	r.NoRoute(h.NotFoundHandler)

	return r
}
