package videos

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
)

// RegisterRoutes registers video routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/videos/youtube-info - Preview a URL without persisting
	router.GET("/youtube-info", GetYouTubeInfo(deps))

	// GET /api/v1/videos/stats/summary - Aggregate catalog counts
	router.GET("/stats/summary", GetStats(deps))

	// GET /api/v1/videos - Paginated, filtered catalog listing
	router.GET("", GetAll(deps))

	// POST /api/v1/videos - Register a video by URL
	router.POST("", Post(deps))

	// GET /api/v1/videos/:id - Get video details
	router.GET("/:id", GetByID(deps))

	// PUT /api/v1/videos/:id - Edit metadata and tags
	router.PUT("/:id", Put(deps))

	// DELETE /api/v1/videos/:id - Remove a video and its annotations
	router.DELETE("/:id", Delete(deps))

	// PUT /api/v1/videos/:id/playback - Persist playback state
	router.PUT("/:id/playback", PutPlayback(deps))
}
