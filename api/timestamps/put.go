package timestamps

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/services/timestamps"
)

// Put edits a bookmark
// @Summary      Update timestamp
// @Description  Edits a bookmark's time, label, description, category or color
// @Tags         timestamps
// @Accept       json
// @Produce      json
// @Param        id path int true "Timestamp ID"
// @Param        request body UpdateTimestampRequest true "Bookmark update"
// @Success      200 {object} types.DataResponse "Updated bookmark"
// @Failure      400 {object} types.ErrorResponse "Invalid ID, time or request body"
// @Failure      404 {object} types.ErrorResponse "Timestamp not found"
// @Router       /api/v1/timestamps/{id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req UpdateTimestampRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		timestamp, err := deps.TimestampService.UpdateTimestamp(c.Request.Context(), id, timestamps.UpdateParams{
			Time:        req.Time,
			Label:       req.Label,
			Description: req.Description,
			Category:    req.Category,
			Color:       req.Color,
		})
		if err != nil {
			log.Printf("[ERROR] Failed to update timestamp %d: %v", id, err)
			types.SendServiceError(c, err, "Timestamp not found", "Failed to update timestamp")
			return
		}

		types.SendData(c, timestamp)
	}
}
