package videos

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
)

// Post registers a new video in the catalog
// @Summary      Register a video
// @Description  Registers a YouTube video by URL, canonicalizing it and fetching source metadata
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request body CreateVideoRequest true "Video registration request"
// @Success      201 {object} types.DataResponse "Created video"
// @Failure      400 {object} types.ErrorResponse "Invalid URL, tags or request body"
// @Failure      409 {object} types.ErrorResponse "Video already registered"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/videos [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateVideoRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		video, err := deps.VideoService.CreateVideo(c.Request.Context(), req.YouTubeURL, req.Metadata, req.Tags)
		if err != nil {
			log.Printf("[ERROR] Failed to register video from %q: %v", req.YouTubeURL, err)
			types.SendServiceError(c, err, "Video not found", "Failed to register video")
			return
		}

		types.SendCreated(c, video)
	}
}
