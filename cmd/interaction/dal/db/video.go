package db

import (
	"context"

	"ViewTube.com/cmd/model"
	"gorm.io/gorm"
)

func GetVideoInfo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func GetVideoInfoTx(tx *gorm.DB, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := tx.Model(&model.Video{}).Where("video_id = ?", videoId).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func GetVideosByIDs(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	list := make([]*model.Video, 0)
	if len(videoIds) == 0 {
		return list, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id IN ?", videoIds).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
