package db

import (
	"context"
	"os"
	"testing"
	"time"

	"ViewTube.com/cmd/model"
	"ViewTube.com/pkg/constants"
	"ViewTube.com/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set, skipping database integration test")
	}

	var err error
	DB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	require.NoError(t, err)
	require.NoError(t, DB.AutoMigrate(&model.Video{}, &model.View{}))
}

func createTestVideo(t *testing.T, ctx context.Context) *model.Video {
	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId:     utils.GenerateID(),
		UserId:      utils.GenerateID(),
		Title:       "integration test video",
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, CreateVideo(ctx, video))
	t.Cleanup(func() {
		DB.Where("video_id = ?", video.VideoId).Delete(&model.Video{})
	})
	return video
}

// Anonymous viewing counts every request; there is no dedupe row.
func TestIncrementVisitCount(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	video := createTestVideo(t, ctx)

	require.NoError(t, IncrementVisitCount(ctx, video.VideoId))
	require.NoError(t, IncrementVisitCount(ctx, video.VideoId))

	updated, err := GetVideoInfo(ctx, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.VisitCount)
}

// Authenticated viewing counts once per user through the dedupe row.
func TestRecordViewCountsOncePerUser(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	video := createTestVideo(t, ctx)
	viewerId := utils.GenerateID()

	viewed, err := HasView(ctx, video.VideoId, viewerId)
	require.NoError(t, err)
	assert.False(t, viewed)

	view := &model.View{
		ViewId:    utils.GenerateID(),
		VideoId:   video.VideoId,
		UserId:    viewerId,
		CreatedAt: time.Now().Format(constants.DataFormate),
	}
	require.NoError(t, RecordView(ctx, view))
	t.Cleanup(func() {
		DB.Where("view_id = ?", view.ViewId).Delete(&model.View{})
	})

	viewed, err = HasView(ctx, video.VideoId, viewerId)
	require.NoError(t, err)
	assert.True(t, viewed)

	updated, err := GetVideoInfo(ctx, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.VisitCount)
}
