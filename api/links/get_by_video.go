package links

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
)

// GetByVideo lists a video's shareable links
// @Summary      List links
// @Description  Lists a video's shareable timestamp links ordered by start time
// @Tags         links
// @Produce      json
// @Param        id path int true "Video ID"
// @Success      200 {object} types.DataResponse "Links ordered by start time"
// @Failure      400 {object} types.ErrorResponse "Invalid ID"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id}/links [get]
func GetByVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if _, err := deps.VideoService.GetVideo(c.Request.Context(), videoID); err != nil {
			types.SendServiceError(c, err, "Video not found", "Failed to fetch video")
			return
		}

		links, err := deps.LinkService.ListByVideo(c.Request.Context(), videoID)
		if err != nil {
			log.Printf("[ERROR] Failed to list links for video %d: %v", videoID, err)
			types.SendInternalError(c, "Failed to list links")
			return
		}

		types.SendData(c, links)
	}
}
