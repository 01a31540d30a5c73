package types

import (
	"github.com/killallgit/catalog-api/internal/database"
	"github.com/killallgit/catalog-api/internal/services/links"
	"github.com/killallgit/catalog-api/internal/services/timestamps"
	"github.com/killallgit/catalog-api/internal/services/videos"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB               *database.DB
	VideoService     videos.Service
	TimestampService timestamps.Service
	LinkService      links.Service

	// ShareBaseURL is the public base used when building share URLs
	ShareBaseURL string
}
