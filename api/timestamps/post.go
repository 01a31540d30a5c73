package timestamps

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/services/timestamps"
)

// Post bookmarks a moment on the video's timeline
// @Summary      Create timestamp
// @Description  Bookmarks a moment; defaults to the caller's current playback position when no time is given
// @Tags         timestamps
// @Accept       json
// @Produce      json
// @Param        id path int true "Video ID"
// @Param        request body CreateTimestampRequest true "Bookmark request"
// @Success      201 {object} types.DataResponse "Created bookmark"
// @Failure      400 {object} types.ErrorResponse "Empty label, negative time or invalid body"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id}/timestamps [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req CreateTimestampRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		video, err := deps.VideoService.GetVideo(c.Request.Context(), videoID)
		if err != nil {
			types.SendServiceError(c, err, "Video not found", "Failed to fetch video")
			return
		}

		timestamp, err := deps.TimestampService.CreateTimestamp(c.Request.Context(), video, timestamps.CreateParams{
			Time:            req.Time,
			CurrentPosition: req.CurrentPosition,
			Label:           req.Label,
			Description:     req.Description,
			Category:        req.Category,
			Color:           req.Color,
		})
		if err != nil {
			log.Printf("[ERROR] Failed to create timestamp on video %d: %v", videoID, err)
			types.SendServiceError(c, err, "Timestamp not found", "Failed to create timestamp")
			return
		}

		types.SendCreated(c, timestamp)
	}
}
