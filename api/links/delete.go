package links

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
)

// Delete removes a link
// @Summary      Delete link
// @Description  Removes a shareable link; its token stops resolving
// @Tags         links
// @Produce      json
// @Param        id path int true "Link ID"
// @Success      200 {object} types.DataResponse "Deletion confirmation"
// @Failure      400 {object} types.ErrorResponse "Invalid ID"
// @Failure      404 {object} types.ErrorResponse "Link not found"
// @Router       /api/v1/links/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.LinkService.DeleteLink(c.Request.Context(), id); err != nil {
			log.Printf("[ERROR] Failed to delete link %d: %v", id, err)
			types.SendServiceError(c, err, "Link not found", "Failed to delete link")
			return
		}

		types.SendData(c, gin.H{"deleted": id})
	}
}
