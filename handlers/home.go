package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) HomeHandler(c *gin.Context) {
	data := gin.H{
		"Title": "Tic-Tac-Toe Game",
	}

	c.HTML(http.StatusOK, "home.html", data)
}

func (h *Handler) NewGameHandler(c *gin.Context) {
	newGame := h.store.CreateGame()
	h.logger.Info("game created", zap.String("game_id", newGame.ID))
	c.Redirect(http.StatusSeeOther, "/game/"+newGame.ID)
}

func (h *Handler) NotFoundHandler(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"Title": "Page Not Found",
	})
}

func (h *Handler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"games":  h.store.Len(),
	})
}
