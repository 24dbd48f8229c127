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

// messageRequest is the DTO for message creation and edits
type messageRequest struct {
	To   string `json:"to" validate:"required"`
	Text string `json:"text" validate:"required"`
	Type string `json:"type" validate:"required,oneof=message private_message"`
}

func (r messageRequest) fields() room.MessageFields {
	return room.MessageFields{To: r.To, Text: r.Text, Type: r.Type}
}

// PostMessageController handles posting a new message. The sender comes from
// the User header and must be a current participant.
type PostMessageController struct {
	UC *usecase.PostMessageUseCase
}

func NewPostMessageController(repo repository.RoomRepository) *PostMessageController {
	return &PostMessageController{UC: usecase.NewPostMessageUseCase(repo)}
}

func (h *PostMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
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

		in := usecase.PostMessageInput{From: c.GetHeader("User"), Fields: req.fields()}
		msg, err := h.UC.Execute(ctx, in)
		if err != nil {
			if errors.Is(err, room.ErrUnknownParticipant) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{"sender is not in the room"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, msg)
	}
}
