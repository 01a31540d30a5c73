package links

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/database"
	"github.com/killallgit/catalog-api/internal/models"
	linksService "github.com/killallgit/catalog-api/internal/services/links"
	"github.com/killallgit/catalog-api/internal/services/videos"
	"github.com/killallgit/catalog-api/internal/services/youtube"
)

type stubVideoService struct {
	videos map[uint]*models.Video
}

func (s *stubVideoService) GetVideo(ctx context.Context, id uint) (*models.Video, error) {
	if v, ok := s.videos[id]; ok {
		return v, nil
	}
	return nil, videos.ErrNotFound
}

func (s *stubVideoService) PreviewVideo(context.Context, string) (*youtube.VideoInfo, error) {
	panic("not used")
}
func (s *stubVideoService) CreateVideo(context.Context, string, *models.VideoMetadata, []string) (*models.Video, error) {
	panic("not used")
}
func (s *stubVideoService) ListVideos(context.Context, videos.ListParams) (*videos.ListResult, error) {
	panic("not used")
}
func (s *stubVideoService) UpdateVideo(context.Context, uint, videos.UpdateParams) (*models.Video, error) {
	panic("not used")
}
func (s *stubVideoService) DeleteVideo(context.Context, uint) error { panic("not used") }
func (s *stubVideoService) UpdatePlaybackState(context.Context, uint, int, bool) error {
	panic("not used")
}
func (s *stubVideoService) GetStats(context.Context) (*videos.Stats, error) { panic("not used") }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	video := &models.Video{
		YouTubeID: "dQw4w9WgXcQ",
		URL:       "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Title:     "Test Video",
	}
	require.NoError(t, db.DB.Create(video).Error)

	deps := &types.Dependencies{
		DB:           db,
		VideoService: &stubVideoService{videos: map[uint]*models.Video{video.ID: video}},
		LinkService:  linksService.NewService(linksService.NewRepository(db.DB)),
		ShareBaseURL: "https://catalog.example.com",
	}

	router := gin.New()
	RegisterVideoRoutes(router.Group("/api/v1/videos"), deps)
	RegisterRoutes(router.Group("/api/v1/links"), deps)
	return router
}

func createLink(t *testing.T, router *gin.Engine, body string) models.TimestampLink {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos/1/links", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var response struct {
		Data models.TimestampLink `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Data
}

func TestPostLink(t *testing.T) {
	router := newTestRouter(t)

	t.Run("point link gets a share token", func(t *testing.T) {
		link := createLink(t, router, `{"title": "The Drop", "startTime": 62}`)
		assert.NotEmpty(t, link.ShareToken)
		assert.False(t, link.IsHighlight)
	})

	t.Run("range link becomes a highlight", func(t *testing.T) {
		link := createLink(t, router, `{"title": "Full Run", "startTime": 30, "endTime": 90}`)
		assert.True(t, link.IsHighlight)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/videos/1/links",
			strings.NewReader(`{"title": "Backwards", "startTime": 90, "endTime": 30}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var response types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response.Message, "validation")
	})

	t.Run("missing title rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/videos/1/links",
			strings.NewReader(`{"startTime": 10}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetShared(t *testing.T) {
	router := newTestRouter(t)

	t.Run("public token resolves with the video", func(t *testing.T) {
		link := createLink(t, router, `{"title": "The Drop", "startTime": 62}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/links/shared/"+link.ShareToken, nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Data struct {
				Link  models.TimestampLink `json:"link"`
				Video models.Video         `json:"video"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, link.ID, response.Data.Link.ID)
		assert.Equal(t, "dQw4w9WgXcQ", response.Data.Video.YouTubeID)
		assert.Equal(t, int64(1), response.Data.Link.ViewCount)
	})

	t.Run("private token resolves to 404", func(t *testing.T) {
		link := createLink(t, router, `{"title": "Internal", "startTime": 5, "isPublic": false}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/links/shared/"+link.ShareToken, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown token resolves to 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/links/shared/nope", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetShareAssets(t *testing.T) {
	router := newTestRouter(t)
	link := createLink(t, router, `{"title": "Full Run", "startTime": 30, "endTime": 90}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/links/1/share", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data linksService.ShareAssets `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "https://catalog.example.com/shared/"+link.ShareToken, response.Data.ShareURL)
	assert.Contains(t, response.Data.EmbedCode, "youtube.com/embed/dQw4w9WgXcQ")
}

func TestPutAndDeleteLink(t *testing.T) {
	router := newTestRouter(t)
	link := createLink(t, router, `{"title": "Full Run", "startTime": 30, "endTime": 90}`)

	// Clearing the end time demotes the highlight to a point link
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/links/1",
		strings.NewReader(`{"clearEndTime": true}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Data models.TimestampLink `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.False(t, updated.Data.IsHighlight)
	assert.Nil(t, updated.Data.EndTime)
	assert.Equal(t, link.ID, updated.Data.ID)

	// Delete stops the token from resolving
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/links/1", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/links/shared/"+link.ShareToken, nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
