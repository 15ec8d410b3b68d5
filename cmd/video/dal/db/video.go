package db

import (
	"context"
	"errors"

	"ViewTube.com/cmd/model"
	"gorm.io/gorm"
)

func CreateVideo(ctx context.Context, video *model.Video) error {
	return DB.WithContext(ctx).Create(video).Error
}

func GetVideoInfo(ctx context.Context, videoId int64) (*model.Video, error) {
	video := &model.Video{}
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

func ListUserVideos(ctx context.Context, userId int64, pageNum, pageSize int64) ([]*model.Video, error) {
	list := make([]*model.Video, 0)
	err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ? AND is_published = ?", userId, true).
		Order("created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).
		Limit(int(pageSize)).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// HasView reports whether the viewer already counted against this
// video's visit counter.
func HasView(ctx context.Context, videoId, userId int64) (bool, error) {
	view := &model.View{}
	err := DB.WithContext(ctx).Model(&model.View{}).
		Where("video_id = ? AND user_id = ?", videoId, userId).
		First(view).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IncrementVisitCount bumps the counter without a dedupe row, the
// anonymous viewing path.
func IncrementVisitCount(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		UpdateColumn("visit_count", gorm.Expr("visit_count + ?", 1)).Error
}

// RecordView writes the dedupe row and bumps the visit counter in one
// transaction.
func RecordView(ctx context.Context, view *model.View) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(view).Error; err != nil {
			return err
		}
		return tx.Model(&model.Video{}).Where("video_id = ?", view.VideoId).
			UpdateColumn("visit_count", gorm.Expr("visit_count + ?", 1)).Error
	})
}
