package http

import (
	"github.com/gin-gonic/gin"

	"batepapo-uol-api/internal/pkg/room/presentation/controller"
	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
)

// RegisterRoutes registers room-related HTTP endpoints under the given router group
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, repo repository.RoomRepository) {
	joinCtl := controller.NewJoinRoomController(repo)
	listCtl := controller.NewListParticipantsController(repo)
	statusCtl := controller.NewStatusController(repo)
	postMsgCtl := controller.NewPostMessageController(repo)
	getMsgCtl := controller.NewGetMessagesController(repo)
	editMsgCtl := controller.NewEditMessageController(repo)
	delMsgCtl := controller.NewDeleteMessageController(repo)

	// POST /participants -> enter the room
	g.POST("/participants", joinCtl.Handle())

	// GET /participants -> list everyone currently present
	g.GET("/participants", listCtl.Handle())

	// POST /status -> heartbeat for the User header identity
	g.POST("/status", statusCtl.Handle())

	// POST /messages -> post a broadcast or private message
	g.POST("/messages", postMsgCtl.Handle())

	// GET /messages -> messages visible to the caller, optionally limited
	g.GET("/messages", getMsgCtl.Handle())

	// PUT /messages/:id -> edit an owned message
	g.PUT("/messages/:id", editMsgCtl.Handle())

	// DELETE /messages/:id -> delete an owned message
	g.DELETE("/messages/:id", delMsgCtl.Handle())
}
