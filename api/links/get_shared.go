package links

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
)

// GetShared resolves a share token to its link and counts the view. Private
// links resolve to 404 so the token space leaks nothing.
// @Summary      Resolve share token
// @Description  Resolves a public share token to its link, incrementing the view count
// @Tags         links
// @Produce      json
// @Param        token path string true "Share token"
// @Success      200 {object} types.DataResponse "Link with its video"
// @Failure      404 {object} types.ErrorResponse "Unknown or private token"
// @Router       /api/v1/links/shared/{token} [get]
func GetShared(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")

		link, err := deps.LinkService.ResolveShareToken(c.Request.Context(), token)
		if err != nil {
			types.SendServiceError(c, err, "Link not found", "Failed to resolve share token")
			return
		}

		// Shared views also need the video for playback
		video, err := deps.VideoService.GetVideo(c.Request.Context(), link.VideoID)
		if err != nil {
			log.Printf("[ERROR] Link %d resolved but its video %d did not: %v", link.ID, link.VideoID, err)
			types.SendServiceError(c, err, "Link not found", "Failed to resolve share token")
			return
		}

		types.SendData(c, gin.H{
			"link":  link,
			"video": video,
		})
	}
}
