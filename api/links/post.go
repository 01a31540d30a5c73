package links

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/services/links"
)

// Post creates a shareable link on a video
// @Summary      Create link
// @Description  Creates a shareable timestamp link; a present end time makes it a highlight range
// @Tags         links
// @Accept       json
// @Produce      json
// @Param        id path int true "Video ID"
// @Param        request body CreateLinkRequest true "Link request"
// @Success      201 {object} types.DataResponse "Created link with its share token"
// @Failure      400 {object} types.ErrorResponse "Missing title, bad time range or invalid body"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id}/links [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req CreateLinkRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		video, err := deps.VideoService.GetVideo(c.Request.Context(), videoID)
		if err != nil {
			types.SendServiceError(c, err, "Video not found", "Failed to fetch video")
			return
		}

		link, err := deps.LinkService.CreateLink(c.Request.Context(), video, links.CreateParams{
			Title:       req.Title,
			Description: req.Description,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Tags:        req.Tags,
			IsPublic:    req.IsPublic,
		})
		if err != nil {
			log.Printf("[ERROR] Failed to create link on video %d: %v", videoID, err)
			types.SendServiceError(c, err, "Link not found", "Failed to create link")
			return
		}

		types.SendCreated(c, link)
	}
}
