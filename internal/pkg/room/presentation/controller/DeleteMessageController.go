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

// DeleteMessageController handles removing a message. Only the original
// sender, named in the User header, may delete.
type DeleteMessageController struct {
	UC *usecase.DeleteMessageUseCase
}

func NewDeleteMessageController(repo repository.RoomRepository) *DeleteMessageController {
	return &DeleteMessageController{UC: usecase.NewDeleteMessageUseCase(repo)}
}

func (h *DeleteMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.GetHeader("User")
		if user == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{"User header is required"}})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		in := usecase.DeleteMessageInput{ID: c.Param("id"), Requester: user}
		if err := h.UC.Execute(ctx, in); err != nil {
			switch {
			case errors.Is(err, room.ErrMessageNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, room.ErrNotMessageOwner):
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.Status(http.StatusOK)
	}
}
