package videos

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
)

// PutPlayback updates playback position and played status
// @Summary      Update playback state
// @Description  Persists the last playback position and watched flag for a video
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        id path int true "Video ID"
// @Param        request body PlaybackUpdateRequest true "Playback state"
// @Success      200 {object} types.DataResponse "Stored playback state"
// @Failure      400 {object} types.ErrorResponse "Invalid ID, position or request body"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id}/playback [put]
func PutPlayback(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req PlaybackUpdateRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := deps.VideoService.UpdatePlaybackState(c.Request.Context(), id, req.Position, req.Played); err != nil {
			log.Printf("[ERROR] Failed to update playback state for video %d: %v", id, err)
			types.SendServiceError(c, err, "Video not found", "Failed to update playback state")
			return
		}

		types.SendData(c, gin.H{
			"video_id": id,
			"position": req.Position,
			"played":   req.Played,
		})
	}
}
