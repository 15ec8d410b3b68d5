package db

import (
	"context"
	"errors"

	"ViewTube.com/cmd/model"
	"gorm.io/gorm"
)

// GetSubscription resolves the unique (subscriber, channel) edge; nil
// when none exists.
func GetSubscription(ctx context.Context, subscriberId, channelId int64) (*model.Subscription, error) {
	sub := &model.Subscription{}
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		First(sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sub, nil
}

func CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	return DB.WithContext(ctx).Create(sub).Error
}

func DeleteSubscription(ctx context.Context, subscriptionId int64) error {
	return DB.WithContext(ctx).Where("subscription_id = ?", subscriptionId).
		Delete(&model.Subscription{}).Error
}

// GetSubscriberIDs lists every user subscribed to a channel, the
// fan-out source set for publish notifications.
func GetSubscriberIDs(ctx context.Context, channelId int64) ([]int64, error) {
	list := make([]int64, 0)
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).
		Select("subscriber_id").Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func GetSubscriberCount(ctx context.Context, channelId int64) (count int64, err error) {
	if err = DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetSubscribedChannelIDs lists the channels the user follows.
func GetSubscribedChannelIDs(ctx context.Context, subscriberId int64) ([]int64, error) {
	list := make([]int64, 0)
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).
		Select("channel_id").Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
