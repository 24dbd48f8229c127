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

// EditMessageController handles rewriting a message's mutable fields. Only the
// original sender, named in the User header, may edit.
type EditMessageController struct {
	UC *usecase.EditMessageUseCase
}

func NewEditMessageController(repo repository.RoomRepository) *EditMessageController {
	return &EditMessageController{UC: usecase.NewEditMessageUseCase(repo)}
}

func (h *EditMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.GetHeader("User")
		if user == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{"User header is required"}})
			return
		}

		var req messageRequest
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

		in := usecase.EditMessageInput{ID: c.Param("id"), Editor: user, Fields: req.fields()}
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
