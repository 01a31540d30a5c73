package links

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/services/links"
)

// Put edits a link
// @Summary      Update link
// @Description  Edits a link's fields; the merged time range must stay valid
// @Tags         links
// @Accept       json
// @Produce      json
// @Param        id path int true "Link ID"
// @Param        request body UpdateLinkRequest true "Link update"
// @Success      200 {object} types.DataResponse "Updated link"
// @Failure      400 {object} types.ErrorResponse "Invalid ID, range or request body"
// @Failure      404 {object} types.ErrorResponse "Link not found"
// @Router       /api/v1/links/{id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req UpdateLinkRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		link, err := deps.LinkService.UpdateLink(c.Request.Context(), id, links.UpdateParams{
			Title:        req.Title,
			Description:  req.Description,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			ClearEndTime: req.ClearEndTime,
			Tags:         req.Tags,
			IsPublic:     req.IsPublic,
		})
		if err != nil {
			log.Printf("[ERROR] Failed to update link %d: %v", id, err)
			types.SendServiceError(c, err, "Link not found", "Failed to update link")
			return
		}

		types.SendData(c, link)
	}
}
