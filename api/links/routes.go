package links

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
)

// RegisterVideoRoutes registers the link routes nested under a video
func RegisterVideoRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/videos/:id/links - List a video's shareable links
	router.GET("/:id/links", GetByVideo(deps))

	// POST /api/v1/videos/:id/links - Create a shareable link
	router.POST("/:id/links", Post(deps))
}

// RegisterRoutes registers the standalone link routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/links/shared/:token - Resolve a share token
	router.GET("/shared/:token", GetShared(deps))

	// GET /api/v1/links/:id - Get a link
	router.GET("/:id", GetByID(deps))

	// GET /api/v1/links/:id/share - Share URL and embed code for a link
	router.GET("/:id/share", GetShareAssets(deps))

	// PUT /api/v1/links/:id - Edit a link
	router.PUT("/:id", Put(deps))

	// DELETE /api/v1/links/:id - Remove a link
	router.DELETE("/:id", Delete(deps))
}
