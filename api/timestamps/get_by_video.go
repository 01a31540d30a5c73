package timestamps

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
)

// GetByVideo lists a video's bookmarks, ordered by time
// @Summary      List timestamps
// @Description  Lists a video's bookmarks ordered by time ascending
// @Tags         timestamps
// @Produce      json
// @Param        id path int true "Video ID"
// @Success      200 {object} types.DataResponse "Bookmarks ordered by time"
// @Failure      400 {object} types.ErrorResponse "Invalid ID"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id}/timestamps [get]
func GetByVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		// The video must exist even when it has no bookmarks yet
		if _, err := deps.VideoService.GetVideo(c.Request.Context(), videoID); err != nil {
			types.SendServiceError(c, err, "Video not found", "Failed to fetch video")
			return
		}

		timestamps, err := deps.TimestampService.ListByVideo(c.Request.Context(), videoID)
		if err != nil {
			log.Printf("[ERROR] Failed to list timestamps for video %d: %v", videoID, err)
			types.SendInternalError(c, "Failed to list timestamps")
			return
		}

		types.SendData(c, timestamps)
	}
}
