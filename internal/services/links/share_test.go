package links

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/killallgit/catalog-api/internal/models"
)

func TestBuildShareAssets(t *testing.T) {
	video := &models.Video{YouTubeID: "dQw4w9WgXcQ"}

	t.Run("point link", func(t *testing.T) {
		link := &models.TimestampLink{
			Title:      "The Drop",
			StartTime:  62,
			ShareToken: "tok123",
		}
		assets := BuildShareAssets("https://catalog.example.com/", video, link)

		assert.Equal(t, "https://catalog.example.com/shared/tok123", assets.ShareURL)
		assert.Contains(t, assets.EmbedCode, "https://www.youtube.com/embed/dQw4w9WgXcQ?start=62")
		assert.Contains(t, assets.EmbedCode, `title="The Drop"`)
	})

	t.Run("highlight range includes end", func(t *testing.T) {
		end := 90.0
		link := &models.TimestampLink{
			Title:      "Full Run",
			StartTime:  30,
			EndTime:    &end,
			ShareToken: "tok456",
		}
		assets := BuildShareAssets("https://catalog.example.com", video, link)
		assert.Contains(t, assets.EmbedCode, "end=90")
		assert.Contains(t, assets.EmbedCode, "start=30")
	})

	t.Run("title is escaped", func(t *testing.T) {
		link := &models.TimestampLink{
			Title:      `"Best" <clip> & more`,
			StartTime:  0,
			ShareToken: "tok789",
		}
		assets := BuildShareAssets("https://catalog.example.com", video, link)
		assert.NotContains(t, assets.EmbedCode, `<clip>`)
		assert.Contains(t, assets.EmbedCode, "&quot;Best&quot; &lt;clip&gt; &amp; more")
	})
}
