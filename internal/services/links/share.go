package links

import (
	"fmt"
	"strings"

	"github.com/killallgit/catalog-api/internal/models"
	ytpkg "github.com/killallgit/catalog-api/pkg/youtube"
)

// ShareAssets are the derived share strings for a link. Building them is
// string templating only, never a network call.
type ShareAssets struct {
	ShareURL  string `json:"shareUrl"`
	EmbedCode string `json:"embedCode"`
}

// BuildShareAssets derives the share URL and iframe embed code for a link
func BuildShareAssets(baseURL string, video *models.Video, link *models.TimestampLink) ShareAssets {
	baseURL = strings.TrimRight(baseURL, "/")

	start := int(link.StartTime)
	end := 0
	if link.EndTime != nil {
		end = int(*link.EndTime)
	}
	embedURL := ytpkg.EmbedURL(video.YouTubeID, start, end)

	return ShareAssets{
		ShareURL: fmt.Sprintf("%s/shared/%s", baseURL, link.ShareToken),
		EmbedCode: fmt.Sprintf(
			`<iframe width="560" height="315" src="%s" title="%s" frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen></iframe>`,
			embedURL, htmlEscape(link.Title)),
	}
}

// htmlEscape covers the characters that would break out of the title attribute
func htmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(s)
}
