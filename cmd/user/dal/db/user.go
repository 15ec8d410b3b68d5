package db

import (
	"context"
	"errors"

	"ViewTube.com/cmd/model"
	"gorm.io/gorm"
)

func CreateUser(ctx context.Context, user *model.User) error {
	return DB.WithContext(ctx).Create(user).Error
}

func GetUserInfo(ctx context.Context, userId int64) (*model.User, error) {
	user := &model.User{}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByName resolves a login name; nil when it is unclaimed.
func GetUserByName(ctx context.Context, userName string) (*model.User, error) {
	user := &model.User{}
	err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", userName).First(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func GetUsersByIDs(ctx context.Context, userIds []int64) ([]*model.User, error) {
	list := make([]*model.User, 0)
	if len(userIds) == 0 {
		return list, nil
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id IN ?", userIds).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
