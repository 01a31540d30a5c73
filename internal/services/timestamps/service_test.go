package timestamps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/killallgit/catalog-api/internal/models"
)

func newDatabaseStore(t *testing.T) Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Timestamp{}))
	return NewRepository(db)
}

// Both persistence strategies must satisfy the same behavior
func eachStore(t *testing.T, test func(t *testing.T, store Store)) {
	t.Run("database", func(t *testing.T) { test(t, newDatabaseStore(t)) })
	t.Run("memory", func(t *testing.T) { test(t, NewMemoryStore()) })
}

func ptr[T any](v T) *T { return &v }

func testVideo() *models.Video {
	video := &models.Video{YouTubeID: "dQw4w9WgXcQ", Title: "v"}
	video.ID = 1
	return video
}

func TestCreateTimestamp(t *testing.T) {
	ctx := context.Background()

	eachStore(t, func(t *testing.T, store Store) {
		service := NewService(store)

		t.Run("rejects empty label", func(t *testing.T) {
			_, err := service.CreateTimestamp(ctx, testVideo(), CreateParams{Time: ptr(10.0)})
			assert.ErrorIs(t, err, ErrValidation)
		})

		t.Run("rejects negative time", func(t *testing.T) {
			_, err := service.CreateTimestamp(ctx, testVideo(), CreateParams{
				Time: ptr(-1.0), Label: "bad",
			})
			assert.ErrorIs(t, err, ErrValidation)
		})

		t.Run("defaults time to current playback position", func(t *testing.T) {
			ts, err := service.CreateTimestamp(ctx, testVideo(), CreateParams{
				CurrentPosition: 73.2,
				Label:           "from player",
			})
			require.NoError(t, err)
			assert.Equal(t, 73.2, ts.Time)
			assert.NotZero(t, ts.ID)
			assert.NotEmpty(t, ts.UUID)
		})

		t.Run("clamps to known duration", func(t *testing.T) {
			video := testVideo()
			video.Duration = 200
			ts, err := service.CreateTimestamp(ctx, video, CreateParams{
				Time: ptr(500.0), Label: "past the end",
			})
			require.NoError(t, err)
			assert.Equal(t, 200.0, ts.Time)
		})
	})
}

func TestListByVideoOrdering(t *testing.T) {
	ctx := context.Background()

	eachStore(t, func(t *testing.T, store Store) {
		service := NewService(store)
		video := testVideo()

		// Insert out of order
		for _, at := range []float64{42, 7, 90, 7, 0} {
			_, err := service.CreateTimestamp(ctx, video, CreateParams{
				Time: ptr(at), Label: "mark",
			})
			require.NoError(t, err)
		}

		listed, err := service.ListByVideo(ctx, video.ID)
		require.NoError(t, err)
		require.Len(t, listed, 5)

		for i := 1; i < len(listed); i++ {
			assert.LessOrEqual(t, listed[i-1].Time, listed[i].Time,
				"timestamps must be non-decreasing by time")
		}
	})
}

func TestUpdateTimestamp(t *testing.T) {
	ctx := context.Background()

	eachStore(t, func(t *testing.T, store Store) {
		service := NewService(store)

		created, err := service.CreateTimestamp(ctx, testVideo(), CreateParams{
			Time: ptr(10.0), Label: "original", Category: models.CategoryGeneral,
		})
		require.NoError(t, err)

		t.Run("partial update leaves other fields alone", func(t *testing.T) {
			updated, err := service.UpdateTimestamp(ctx, created.ID, UpdateParams{
				Label: ptr("renamed"),
			})
			require.NoError(t, err)
			assert.Equal(t, "renamed", updated.Label)
			assert.Equal(t, 10.0, updated.Time)
			assert.Equal(t, models.CategoryGeneral, updated.Category)
		})

		t.Run("rejects clearing the label", func(t *testing.T) {
			_, err := service.UpdateTimestamp(ctx, created.ID, UpdateParams{Label: ptr("")})
			assert.ErrorIs(t, err, ErrValidation)
		})

		t.Run("unknown id", func(t *testing.T) {
			_, err := service.UpdateTimestamp(ctx, 9999, UpdateParams{Label: ptr("x")})
			assert.ErrorIs(t, err, ErrNotFound)
		})
	})
}

func TestUpdateTimestampClampsToDuration(t *testing.T) {
	ctx := context.Background()

	eachStore(t, func(t *testing.T, store Store) {
		service := NewService(store, WithVideoDuration(func(ctx context.Context, videoID uint) (int, error) {
			return 120, nil
		}))

		video := testVideo()
		video.Duration = 120
		created, err := service.CreateTimestamp(ctx, video, CreateParams{
			Time: ptr(30.0), Label: "mark",
		})
		require.NoError(t, err)

		t.Run("moving past the end clamps to the duration", func(t *testing.T) {
			updated, err := service.UpdateTimestamp(ctx, created.ID, UpdateParams{
				Time: ptr(500.0),
			})
			require.NoError(t, err)
			assert.Equal(t, 120.0, updated.Time)
		})

		t.Run("rejects negative time", func(t *testing.T) {
			_, err := service.UpdateTimestamp(ctx, created.ID, UpdateParams{
				Time: ptr(-5.0),
			})
			assert.ErrorIs(t, err, ErrValidation)
		})
	})
}

func TestDeleteTimestamp(t *testing.T) {
	ctx := context.Background()

	eachStore(t, func(t *testing.T, store Store) {
		service := NewService(store)

		created, err := service.CreateTimestamp(ctx, testVideo(), CreateParams{
			Time: ptr(5.0), Label: "to delete",
		})
		require.NoError(t, err)

		require.NoError(t, service.DeleteTimestamp(ctx, created.ID))
		assert.ErrorIs(t, service.DeleteTimestamp(ctx, created.ID), ErrNotFound)

		listed, err := service.ListByVideo(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, listed)
	})
}
