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

// JoinRoomController handles the join endpoint only (one controller per endpoint)
type JoinRoomController struct {
	UC *usecase.JoinRoomUseCase
}

func NewJoinRoomController(repo repository.RoomRepository) *JoinRoomController {
	return &JoinRoomController{UC: usecase.NewJoinRoomUseCase(repo)}
}

// joinRequest is the DTO for the HTTP request body
type joinRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *JoinRoomController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req joinRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{"invalid request body"}})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationReasons(err)})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, usecase.JoinRoomInput{Name: req.Name}); err != nil {
			if errors.Is(err, room.ErrNameTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Status(http.StatusCreated)
	}
}
