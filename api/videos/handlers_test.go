package videos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/videos"
	"github.com/killallgit/catalog-api/internal/services/youtube"
)

// MockVideoService mocks the video service for handler tests
type MockVideoService struct {
	mock.Mock
}

func (m *MockVideoService) PreviewVideo(ctx context.Context, rawURL string) (*youtube.VideoInfo, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*youtube.VideoInfo), args.Error(1)
}

func (m *MockVideoService) CreateVideo(ctx context.Context, rawURL string, metadata *models.VideoMetadata, tags []string) (*models.Video, error) {
	args := m.Called(ctx, rawURL, metadata, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideoService) ListVideos(ctx context.Context, params videos.ListParams) (*videos.ListResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*videos.ListResult), args.Error(1)
}

func (m *MockVideoService) GetVideo(ctx context.Context, id uint) (*models.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideoService) UpdateVideo(ctx context.Context, id uint, params videos.UpdateParams) (*models.Video, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideoService) DeleteVideo(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVideoService) UpdatePlaybackState(ctx context.Context, id uint, position int, played bool) error {
	return m.Called(ctx, id, position, played).Error(0)
}

func (m *MockVideoService) GetStats(ctx context.Context) (*videos.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*videos.Stats), args.Error(1)
}

func newTestRouter(service videos.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/v1/videos")
	RegisterRoutes(group, &types.Dependencies{VideoService: service})
	return router
}

func TestPost(t *testing.T) {
	t.Run("registers video and returns 201", func(t *testing.T) {
		service := new(MockVideoService)
		service.On("CreateVideo", mock.Anything, "https://youtu.be/dQw4w9WgXcQ", (*models.VideoMetadata)(nil), []string(nil)).
			Return(&models.Video{
				YouTubeID: "dQw4w9WgXcQ",
				URL:       "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				Title:     "Test Video",
			}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/videos",
			strings.NewReader(`{"youtubeUrl": "https://youtu.be/dQw4w9WgXcQ"}`))
		req.Header.Set("Content-Type", "application/json")
		newTestRouter(service).ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var response struct {
			Data models.Video `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", response.Data.URL)
		service.AssertExpectations(t)
	})

	t.Run("missing url is rejected before the service", func(t *testing.T) {
		service := new(MockVideoService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/videos", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		newTestRouter(service).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		service.AssertNotCalled(t, "CreateVideo")
	})

	t.Run("validation error carries the message envelope", func(t *testing.T) {
		service := new(MockVideoService)
		service.On("CreateVideo", mock.Anything, "not-a-url", (*models.VideoMetadata)(nil), []string(nil)).
			Return(nil, videos.ErrValidation)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/videos",
			strings.NewReader(`{"youtubeUrl": "not-a-url"}`))
		req.Header.Set("Content-Type", "application/json")
		newTestRouter(service).ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var response types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response.Message, "validation")
		assert.NotEmpty(t, response.Errors)
	})

	t.Run("duplicate registration returns 409", func(t *testing.T) {
		service := new(MockVideoService)
		service.On("CreateVideo", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, videos.ErrAlreadyExists)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/videos",
			strings.NewReader(`{"youtubeUrl": "https://youtu.be/dQw4w9WgXcQ"}`))
		req.Header.Set("Content-Type", "application/json")
		newTestRouter(service).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestGetAll(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		service := new(MockVideoService)
		service.On("ListVideos", mock.Anything, videos.ListParams{
			Page:     2,
			Limit:    10,
			TeamName: "Example Team",
			Year:     2023,
			Tags:     []string{"regional", "finals"},
		}).Return(&videos.ListResult{Videos: []models.Video{}, Page: 2, Limit: 10}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/videos?page=2&limit=10&teamName=Example+Team&year=2023&tags=regional,finals", nil)
		newTestRouter(service).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		service.AssertExpectations(t)
	})

	t.Run("unset filters stay zero-valued", func(t *testing.T) {
		service := new(MockVideoService)
		service.On("ListVideos", mock.Anything, videos.ListParams{Page: 1, Limit: 20}).
			Return(&videos.ListResult{Videos: []models.Video{}, Page: 1, Limit: 20}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil)
		newTestRouter(service).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		service.AssertExpectations(t)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("unknown video returns 404", func(t *testing.T) {
		service := new(MockVideoService)
		service.On("GetVideo", mock.Anything, uint(42)).Return(nil, videos.ErrNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/42", nil)
		newTestRouter(service).ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)

		var response types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response.Message, "not found")
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		service := new(MockVideoService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/abc", nil)
		newTestRouter(service).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		service.AssertNotCalled(t, "GetVideo")
	})
}

func TestPutPlayback(t *testing.T) {
	service := new(MockVideoService)
	service.On("UpdatePlaybackState", mock.Anything, uint(7), 125, true).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/videos/7/playback",
		strings.NewReader(`{"position": 125, "played": true}`))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestGetYouTubeInfo(t *testing.T) {
	t.Run("missing url parameter", func(t *testing.T) {
		service := new(MockVideoService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/youtube-info", nil)
		newTestRouter(service).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		service.AssertNotCalled(t, "PreviewVideo")
	})

	t.Run("previews without persisting", func(t *testing.T) {
		service := new(MockVideoService)
		service.On("PreviewVideo", mock.Anything, "https://youtu.be/dQw4w9WgXcQ").
			Return(&youtube.VideoInfo{
				VideoID: "dQw4w9WgXcQ",
				URL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				Title:   "Test Video",
			}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/videos/youtube-info?url=https%3A%2F%2Fyoutu.be%2FdQw4w9WgXcQ", nil)
		newTestRouter(service).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		service.AssertNotCalled(t, "CreateVideo")
	})
}

func TestGetStats(t *testing.T) {
	service := new(MockVideoService)
	service.On("GetStats", mock.Anything).Return(&videos.Stats{
		TotalVideos: 3,
		ByYear:      []videos.CountBucket{{Key: "2023", Count: 2}, {Key: "2024", Count: 1}},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/stats/summary", nil)
	newTestRouter(service).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data videos.Stats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(3), response.Data.TotalVideos)
}
