package videos

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
)

// GetByID returns a single cataloged video
// @Summary      Get video
// @Description  Get a cataloged video by its ID
// @Tags         videos
// @Produce      json
// @Param        id path int true "Video ID"
// @Success      200 {object} types.DataResponse "Video details"
// @Failure      400 {object} types.ErrorResponse "Invalid ID"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		video, err := deps.VideoService.GetVideo(c.Request.Context(), id)
		if err != nil {
			log.Printf("[WARN] Failed to fetch video %d: %v", id, err)
			types.SendServiceError(c, err, "Video not found", "Failed to fetch video")
			return
		}

		types.SendData(c, video)
	}
}
