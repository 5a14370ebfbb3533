package handlers

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"htmx-tictactoe/events"
	"htmx-tictactoe/game"
	"htmx-tictactoe/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	eventState = "state"
)

type Handler struct {
	store  *game.Store
	broker *events.Broker
	logger *zap.Logger
}

func New(store *game.Store, broker *events.Broker, logger *zap.Logger) *Handler {
	return &Handler{
		store:  store,
		broker: broker,
		logger: logger,
	}
}

func (h *Handler) GamePageHandler(c *gin.Context) {
	gameID := c.Param("id")
	gameData := h.store.GetGame(gameID)

	if gameData == nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{
			"Title": "Game Not Found",
		})
		return
	}

	data := gin.H{
		"Title":  "Tic-Tac-Toe",
		"GameID": gameID,
		"Game":   template.HTML(renderGameHTML(gameData)),
	}

	c.HTML(http.StatusOK, "game.html", data)
}

func (h *Handler) GameMoveHandler(c *gin.Context) {
	if !requireHTMX(c) {
		return
	}

	cell, err := strconv.Atoi(c.Param("cell"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cell"})
		return
	}

	var applied bool
	gameData, err := h.store.Update(c.Param("id"), func(g *models.Game) error {
		var err error
		applied, err = game.ApplyMove(g, cell)
		return err
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	if applied {
		h.logger.Debug("move applied",
			zap.String("game_id", gameData.ID),
			zap.Int("cell", cell),
			zap.Int("step", gameData.StepNumber),
			zap.String("status", game.Status(gameData)),
		)
		if game.IsGameFinished(gameData) {
			h.logger.Info("game finished", zap.String("game_id", gameData.ID), zap.String("result", game.Status(gameData)))
		}
		h.broadcastState(gameData)
	}

	renderGame(c, gameData)
}

func (h *Handler) GameJumpHandler(c *gin.Context) {
	if !requireHTMX(c) {
		return
	}

	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid step"})
		return
	}

	gameData, err := h.store.Update(c.Param("id"), func(g *models.Game) error {
		return game.JumpTo(g, step)
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.broadcastState(gameData)
	renderGame(c, gameData)
}

func (h *Handler) GameSortHandler(c *gin.Context) {
	if !requireHTMX(c) {
		return
	}

	gameData, err := h.store.Update(c.Param("id"), func(g *models.Game) error {
		game.ToggleSort(g)
		return nil
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.broadcastState(gameData)
	renderGame(c, gameData)
}

func (h *Handler) GameSSEHandler(c *gin.Context) {
	gameID := c.Param("id")

	subscriber, gameData := h.subscribe(c.Request.Context(), gameID)
	if subscriber == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	defer h.broker.Unsubscribe(subscriber)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	sendSSEEvent(c, models.GameEvent{
		Type:   eventState,
		GameID: gameID,
		Data:   renderGameHTML(gameData),
	})

	for {
		select {
		case event, ok := <-subscriber.Channel:
			if !ok {
				return
			}
			sendSSEEvent(c, event)
		case <-subscriber.Context.Done():
			return
		}
	}
}

// subscribe registers the viewer before reading the game, so a move made in
// between is either in the initial state or delivered as an event.
func (h *Handler) subscribe(ctx context.Context, gameID string) (*models.GameSubscriber, *models.Game) {
	subscriber := h.broker.Subscribe(ctx, gameID)

	gameData := h.store.GetGame(gameID)
	if gameData == nil {
		h.broker.Unsubscribe(subscriber)
		return nil, nil
	}
	return subscriber, gameData
}

func (h *Handler) broadcastState(g *models.Game) {
	h.broker.Broadcast(g.ID, models.GameEvent{
		Type:   eventState,
		GameID: g.ID,
		Data:   renderGameHTML(g),
	})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
	case errors.Is(err, game.ErrInvalidCell), errors.Is(err, game.ErrInvalidStep):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("game update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

func requireHTMX(c *gin.Context) bool {
	if c.GetHeader("HX-Request") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "HTMX request required"})
		return false
	}
	return true
}

func renderGame(c *gin.Context, g *models.Game) {
	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, renderGameHTML(g))
}

func sendSSEEvent(c *gin.Context, event models.GameEvent) {
	c.SSEvent(event.Type, event.Data)
	c.Writer.Flush()
}
