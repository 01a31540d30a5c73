package videos

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
)

// GetStats returns the aggregate catalog summary
// @Summary      Catalog statistics
// @Description  Aggregate video counts grouped by year, team and event
// @Tags         videos
// @Produce      json
// @Success      200 {object} types.DataResponse "Aggregate counts"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/videos/stats/summary [get]
func GetStats(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := deps.VideoService.GetStats(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to compute catalog stats: %v", err)
			types.SendInternalError(c, "Failed to compute catalog statistics")
			return
		}

		types.SendData(c, stats)
	}
}
