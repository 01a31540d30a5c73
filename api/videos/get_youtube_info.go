package videos

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/services/youtube"
)

// GetYouTubeInfo previews a pasted URL: canonical form plus source metadata.
// Nothing is persisted; registration is a separate POST.
// @Summary      Preview a YouTube URL
// @Description  Resolves a pasted URL to its canonical form and source metadata without registering it
// @Tags         videos
// @Produce      json
// @Param        url query string true "YouTube video URL in any supported form"
// @Success      200 {object} types.DataResponse "Source video metadata"
// @Failure      400 {object} types.ErrorResponse "Missing or unrecognized URL"
// @Failure      500 {object} types.ErrorResponse "Metadata fetch failed"
// @Router       /api/v1/videos/youtube-info [get]
func GetYouTubeInfo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawURL := c.Query("url")
		if rawURL == "" {
			types.SendBadRequest(c, "url query parameter is required")
			return
		}

		info, err := deps.VideoService.PreviewVideo(c.Request.Context(), rawURL)
		if err != nil {
			if errors.Is(err, youtube.ErrVideoNotFound) {
				types.SendNotFound(c, "Video not found")
				return
			}
			log.Printf("[ERROR] Failed to preview URL %q: %v", rawURL, err)
			types.SendServiceError(c, err, "Video not found", "Failed to fetch video information")
			return
		}

		types.SendData(c, info)
	}
}
