package timestamps

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
)

// Delete removes a bookmark
// @Summary      Delete timestamp
// @Description  Removes a bookmark from its video's timeline
// @Tags         timestamps
// @Produce      json
// @Param        id path int true "Timestamp ID"
// @Success      200 {object} types.DataResponse "Deletion confirmation"
// @Failure      400 {object} types.ErrorResponse "Invalid ID"
// @Failure      404 {object} types.ErrorResponse "Timestamp not found"
// @Router       /api/v1/timestamps/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.TimestampService.DeleteTimestamp(c.Request.Context(), id); err != nil {
			log.Printf("[ERROR] Failed to delete timestamp %d: %v", id, err)
			types.SendServiceError(c, err, "Timestamp not found", "Failed to delete timestamp")
			return
		}

		types.SendData(c, gin.H{"deleted": id})
	}
}
