package links

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
)

// GetByID returns a single link
// @Summary      Get link
// @Description  Get a shareable timestamp link by its ID
// @Tags         links
// @Produce      json
// @Param        id path int true "Link ID"
// @Success      200 {object} types.DataResponse "Link details"
// @Failure      400 {object} types.ErrorResponse "Invalid ID"
// @Failure      404 {object} types.ErrorResponse "Link not found"
// @Router       /api/v1/links/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		link, err := deps.LinkService.GetLink(c.Request.Context(), id)
		if err != nil {
			log.Printf("[WARN] Failed to fetch link %d: %v", id, err)
			types.SendServiceError(c, err, "Link not found", "Failed to fetch link")
			return
		}

		types.SendData(c, link)
	}
}
