package videos

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/services/videos"
)

// Put edits a video's metadata and tags. Source identity fields are fixed at
// registration and silently ignored here.
// @Summary      Update video metadata
// @Description  Updates the cataloging metadata and tags of a video; identity fields never change
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        id path int true "Video ID"
// @Param        request body UpdateVideoRequest true "Metadata update request"
// @Success      200 {object} types.DataResponse "Updated video"
// @Failure      400 {object} types.ErrorResponse "Invalid ID, tags or request body"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req UpdateVideoRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		video, err := deps.VideoService.UpdateVideo(c.Request.Context(), id, videos.UpdateParams{
			Metadata: req.Metadata,
			Tags:     req.Tags,
		})
		if err != nil {
			log.Printf("[ERROR] Failed to update video %d: %v", id, err)
			types.SendServiceError(c, err, "Video not found", "Failed to update video")
			return
		}

		types.SendData(c, video)
	}
}
