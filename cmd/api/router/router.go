package router

import (
	"github.com/gin-gonic/gin"

	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
	httpHandler "batepapo-uol-api/internal/pkg/room/presentation/http"
)

// RegisterRoutes mounts the whole API surface at the engine root.
func RegisterRoutes(r *gin.Engine, repo repository.RoomRepository) {
	root := r.Group("")
	// Pass the store repository down to the HTTP layer
	httpHandler.RegisterRoutes(root, repo)
}
