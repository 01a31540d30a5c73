package videos

import (
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/services/videos"
)

// GetAll returns one page of the catalog, filtered
// @Summary      List videos
// @Description  Paginated catalog listing with optional search and metadata filters
// @Tags         videos
// @Produce      json
// @Param        page     query int    false "Page number" default(1)
// @Param        limit    query int    false "Page size" default(20) maximum(100)
// @Param        search   query string false "Matches title, channel and performance name"
// @Param        teamName query string false "Exact team name"
// @Param        eventName query string false "Exact event name"
// @Param        year     query int    false "Exact year"
// @Param        tags     query string false "Comma-separated tags; videos must carry all of them"
// @Success      200 {object} types.DataResponse "Page of videos with pagination bookkeeping"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/videos [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := videos.ListParams{
			Search:    c.Query("search"),
			TeamName:  c.Query("teamName"),
			EventName: c.Query("eventName"),
		}
		params.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
		params.Year, _ = strconv.Atoi(c.Query("year"))
		params.Tags = splitTags(c.Query("tags"))

		result, err := deps.VideoService.ListVideos(c.Request.Context(), params)
		if err != nil {
			log.Printf("[ERROR] Failed to list videos: %v", err)
			types.SendInternalError(c, "Failed to list videos")
			return
		}

		types.SendData(c, result)
	}
}

// splitTags parses a comma-separated tag filter, dropping empty entries
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
