package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	"batepapo-uol-api/internal/pkg/room/application/usecase"
	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
)

// GetMessagesController handles listing the messages visible to the caller.
type GetMessagesController struct {
	UC *usecase.ListMessagesUseCase
}

func NewGetMessagesController(repo repository.RoomRepository) *GetMessagesController {
	return &GetMessagesController{UC: usecase.NewListMessagesUseCase(repo)}
}

func (h *GetMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		// limit applies only when it parses as a positive integer; anything
		// else falls back to the full visible log.
		limit := 0
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		in := usecase.ListMessagesInput{Viewer: c.GetHeader("User"), Limit: limit}
		msgs, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if msgs == nil {
			msgs = []room.Message{}
		}
		c.JSON(http.StatusOK, msgs)
	}
}
