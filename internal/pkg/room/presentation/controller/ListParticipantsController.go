package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	"batepapo-uol-api/internal/pkg/room/application/usecase"
	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
)

// ListParticipantsController handles listing current participants.
type ListParticipantsController struct {
	UC *usecase.ListParticipantsUseCase
}

func NewListParticipantsController(repo repository.RoomRepository) *ListParticipantsController {
	return &ListParticipantsController{UC: usecase.NewListParticipantsUseCase(repo)}
}

func (h *ListParticipantsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		ps, err := h.UC.Execute(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if ps == nil {
			ps = []room.Participant{}
		}
		c.JSON(http.StatusOK, ps)
	}
}
