package timestamps

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
)

// RegisterVideoRoutes registers the timestamp routes nested under a video
func RegisterVideoRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/videos/:id/timestamps - List a video's bookmarks
	router.GET("/:id/timestamps", GetByVideo(deps))

	// POST /api/v1/videos/:id/timestamps - Bookmark a moment
	router.POST("/:id/timestamps", Post(deps))
}

// RegisterRoutes registers the standalone timestamp routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// PUT /api/v1/timestamps/:id - Edit a bookmark
	router.PUT("/:id", Put(deps))

	// DELETE /api/v1/timestamps/:id - Remove a bookmark
	router.DELETE("/:id", Delete(deps))
}
