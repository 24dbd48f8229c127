package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	"batepapo-uol-api/internal/pkg/room/application/usecase"
	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
)

// StatusController handles the heartbeat endpoint. The caller identifies
// themselves with the User header; no body.
type StatusController struct {
	UC *usecase.HeartbeatUseCase
}

func NewStatusController(repo repository.RoomRepository) *StatusController {
	return &StatusController{UC: usecase.NewHeartbeatUseCase(repo)}
}

func (h *StatusController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.GetHeader("User")
		if user == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User header is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, usecase.HeartbeatInput{Name: user}); err != nil {
			if errors.Is(err, room.ErrUnknownParticipant) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Status(http.StatusOK)
	}
}
