package links

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/services/links"
)

// GetShareAssets returns the share URL and embed code for a link. Both are
// derived strings; nothing is fetched or stored.
// @Summary      Share assets
// @Description  Returns the share URL and iframe embed code for a link
// @Tags         links
// @Produce      json
// @Param        id path int true "Link ID"
// @Success      200 {object} types.DataResponse "Share URL and embed code"
// @Failure      400 {object} types.ErrorResponse "Invalid ID"
// @Failure      404 {object} types.ErrorResponse "Link not found"
// @Router       /api/v1/links/{id}/share [get]
func GetShareAssets(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		link, err := deps.LinkService.GetLink(c.Request.Context(), id)
		if err != nil {
			types.SendServiceError(c, err, "Link not found", "Failed to fetch link")
			return
		}

		video, err := deps.VideoService.GetVideo(c.Request.Context(), link.VideoID)
		if err != nil {
			log.Printf("[ERROR] Link %d has no video %d: %v", link.ID, link.VideoID, err)
			types.SendInternalError(c, "Failed to build share assets")
			return
		}

		types.SendData(c, links.BuildShareAssets(deps.ShareBaseURL, video, link))
	}
}
