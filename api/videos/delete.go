package videos

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
)

// Delete removes a video together with its timestamps and links
// @Summary      Delete video
// @Description  Removes a video and all of its annotations from the catalog
// @Tags         videos
// @Produce      json
// @Param        id path int true "Video ID"
// @Success      200 {object} types.DataResponse "Deletion confirmation"
// @Failure      400 {object} types.ErrorResponse "Invalid ID"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.VideoService.DeleteVideo(c.Request.Context(), id); err != nil {
			log.Printf("[ERROR] Failed to delete video %d: %v", id, err)
			types.SendServiceError(c, err, "Video not found", "Failed to delete video")
			return
		}

		types.SendData(c, gin.H{"deleted": id})
	}
}
