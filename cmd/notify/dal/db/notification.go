package db

import (
	"context"
	"time"

	"ViewTube.com/cmd/model"
)

func CreateNotification(ctx context.Context, notification *model.Notification) error {
	return DB.WithContext(ctx).Create(notification).Error
}

// ListNotifications pages a receiver's feed, newest first. Empty filter
// values match everything.
func ListNotifications(ctx context.Context, receiverId int64, typeFilter, entityTypeFilter string, pageNum, pageSize int64) ([]*model.Notification, error) {
	list := make([]*model.Notification, 0)
	query := DB.WithContext(ctx).Model(&model.Notification{}).Where("receiver_id = ?", receiverId)
	if typeFilter != "" {
		query = query.Where("type = ?", typeFilter)
	}
	if entityTypeFilter != "" {
		query = query.Where("entity_type = ?", entityTypeFilter)
	}
	err := query.Order("created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).
		Limit(int(pageSize)).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func CountNotifications(ctx context.Context, receiverId int64, typeFilter, entityTypeFilter string) (count int64, err error) {
	query := DB.WithContext(ctx).Model(&model.Notification{}).Where("receiver_id = ?", receiverId)
	if typeFilter != "" {
		query = query.Where("type = ?", typeFilter)
	}
	if entityTypeFilter != "" {
		query = query.Where("entity_type = ?", entityTypeFilter)
	}
	if err = query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func CountUnread(ctx context.Context, receiverId int64) (count int64, err error) {
	if err = DB.WithContext(ctx).Model(&model.Notification{}).
		Where("receiver_id = ? AND is_read = ?", receiverId, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkAsRead flips one notification owned by the receiver. The owner
// filter stops cross-user reads.
func MarkAsRead(ctx context.Context, receiverId, notificationId int64) error {
	return DB.WithContext(ctx).Model(&model.Notification{}).
		Where("notification_id = ? AND receiver_id = ?", notificationId, receiverId).
		Update("is_read", true).Error
}

// MarkEntityRead flips every notification the receiver has about one
// entity, driven by viewing events.
func MarkEntityRead(ctx context.Context, receiverId, entityId int64, entityType string) error {
	return DB.WithContext(ctx).Model(&model.Notification{}).
		Where("receiver_id = ? AND entity_id = ? AND entity_type = ? AND is_read = ?",
			receiverId, entityId, entityType, false).
		Update("is_read", true).Error
}

// PurgeExpired removes notifications older than the retention window.
// Run from a background ticker, never from request paths.
func PurgeExpired(ctx context.Context, retention time.Duration) error {
	cutoff := time.Now().Add(-retention)
	return DB.WithContext(ctx).Where("created_at < ?", cutoff).
		Delete(&model.Notification{}).Error
}
