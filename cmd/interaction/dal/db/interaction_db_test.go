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

// Integration tests run against a real MySQL. They skip in short mode
// and when MYSQL_TEST_DSN is not set.
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
	require.NoError(t, DB.AutoMigrate(&model.Comment{}, &model.Reaction{}, &model.Video{}, &model.View{}))
}

func newTestComment(videoId, parentId int64) *model.Comment {
	now := time.Now().Format(constants.DataFormate)
	return &model.Comment{
		CommentId: utils.GenerateID(),
		VideoId:   videoId,
		UserId:    utils.GenerateID(),
		ParentId:  parentId,
		Content:   "integration test comment",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// A reply chain three levels below the root must be discovered and
// removed in full, not just the direct children.
func TestCascadeDeleteRemovesDeepDescendants(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	videoId := utils.GenerateID()

	root := newTestComment(videoId, 0)
	child := newTestComment(videoId, root.CommentId)
	grandchild := newTestComment(videoId, child.CommentId)
	greatGrandchild := newTestComment(videoId, grandchild.CommentId)

	all := []*model.Comment{root, child, grandchild, greatGrandchild}
	for _, comment := range all {
		require.NoError(t, CreateComment(ctx, comment))
	}
	defer func() {
		ids := make([]int64, 0, len(all))
		for _, comment := range all {
			ids = append(ids, comment.CommentId)
		}
		DB.Where("comment_id IN ?", ids).Delete(&model.Comment{})
	}()

	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		descendants, err := CollectDescendantIDs(tx, root.CommentId)
		require.NoError(t, err)
		assert.ElementsMatch(t,
			[]int64{child.CommentId, grandchild.CommentId, greatGrandchild.CommentId},
			descendants)

		targets := append([]int64{root.CommentId}, descendants...)
		if err := DeleteReactionsByCommentIDsTx(tx, targets); err != nil {
			return err
		}
		return DeleteCommentsTx(tx, targets)
	})
	require.NoError(t, err)

	for _, comment := range all {
		_, err := GetCommentInfo(ctx, comment.CommentId)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	}
}

// Decrementing past zero must clamp, never wrap negative.
func TestReactionCounterNeverGoesNegative(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	now := time.Now().Format(constants.DataFormate)

	video := &model.Video{
		VideoId:     utils.GenerateID(),
		UserId:      utils.GenerateID(),
		Title:       "integration test video",
		IsPublished: true,
		Likes:       1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, DB.WithContext(ctx).Create(video).Error)
	defer DB.Where("video_id = ?", video.VideoId).Delete(&model.Video{})

	comment := newTestComment(video.VideoId, 0)
	require.NoError(t, CreateComment(ctx, comment))
	defer DB.Where("comment_id = ?", comment.CommentId).Delete(&model.Comment{})

	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := 0; i < 2; i++ {
			if err := AddVideoReactionCountTx(tx, video.VideoId, constants.ReactionLike, -1); err != nil {
				return err
			}
			if err := AddCommentReactionCountTx(tx, comment.CommentId, constants.ReactionDislike, -1); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	updatedVideo, err := GetVideoInfo(ctx, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updatedVideo.Likes)

	updatedComment, err := GetCommentInfo(ctx, comment.CommentId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updatedComment.Dislikes)
}
