package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
// @Summary      Service version
// @Description  Returns the service name and version
// @Tags         version
// @Produce      json
// @Success      200 {object} object{name=string,version=string,description=string,status=string}
// @Router       /version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Video Catalog API",
			"version":     "1.0.0",
			"description": "API for cataloging and annotating YouTube videos",
			"status":      "running",
		})
	}
}
