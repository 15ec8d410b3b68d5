package service

import (
	"context"
	"math"
	"time"

	"ViewTube.com/cmd/model"
	"ViewTube.com/cmd/notify/dal/db"
	relationdb "ViewTube.com/cmd/relation/dal/db"
	userdb "ViewTube.com/cmd/user/dal/db"
	"ViewTube.com/pkg/constants"
	"ViewTube.com/pkg/errno"
	"ViewTube.com/pkg/mq"
	"ViewTube.com/pkg/utils"
	"ViewTube.com/pkg/ws"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	pkgerrors "github.com/pkg/errors"
)

// NotificationRetention bounds how long records stay before the purge
// ticker removes them.
const NotificationRetention = 30 * 24 * time.Hour

type NotifyService struct {
	ctx context.Context
	hub *ws.Hub
}

func NewNotifyService(ctx context.Context, hub *ws.Hub) *NotifyService {
	return &NotifyService{ctx: ctx, hub: hub}
}

func notificationPayload(n *model.Notification) map[string]interface{} {
	return map[string]interface{}{
		"message":      n.Message,
		"sender":       n.SenderId,
		"type":         n.Type,
		"entityId":     n.EntityId,
		"entityType":   n.EntityType,
		"title":        n.Title,
		"thumbnail":    n.Thumbnail,
		"senderAvatar": n.SenderAvatar,
		"isRead":       n.IsRead,
	}
}

// HandleNotificationEvent persists one targeted notification and pushes
// it to the receiver's feed room. A returned error requeues the event.
func (service *NotifyService) HandleNotificationEvent(ctx context.Context, event *mq.NotificationEvent) error {
	senderAvatar := event.SenderAvatar
	if senderAvatar == "" {
		if sender, err := userdb.GetUserInfo(ctx, event.SenderID); err == nil {
			senderAvatar = sender.AvatarUrl
		}
	}

	notification := &model.Notification{
		NotificationId: utils.GenerateID(),
		ReceiverId:     event.ReceiverID,
		SenderId:       event.SenderID,
		Type:           event.Type,
		EntityId:       event.EntityID,
		EntityType:     event.EntityType,
		Title:          event.Title,
		Message:        event.Message,
		Thumbnail:      event.Thumbnail,
		SenderAvatar:   senderAvatar,
		CreatedAt:      time.Unix(event.Timestamp, 0),
	}
	if err := db.CreateNotification(ctx, notification); err != nil {
		return pkgerrors.WithMessage(err, "Failed to persist notification")
	}

	service.hub.Publish(ws.NotificationRoom(event.ReceiverID), "notification:new", notificationPayload(notification))
	return nil
}

// HandleVideoPublishEvent fans a publish event out to every subscriber
// of the publishing channel. Each subscriber's record is created
// independently; one failure is logged and does not stop the rest.
func (service *NotifyService) HandleVideoPublishEvent(ctx context.Context, event *mq.VideoPublishEvent) error {
	subscriberIds, err := relationdb.GetSubscriberIDs(ctx, event.SenderID)
	if err != nil {
		return pkgerrors.WithMessage(err, "Failed to resolve subscribers")
	}

	for _, subscriberId := range subscriberIds {
		notification := &model.Notification{
			NotificationId: utils.GenerateID(),
			ReceiverId:     subscriberId,
			SenderId:       event.SenderID,
			Type:           constants.NotifyTypeUpload,
			EntityId:       event.VideoID,
			EntityType:     constants.EntityTypeVideo,
			Title:          event.Title,
			Message:        event.Message,
			Thumbnail:      event.Thumbnail,
			SenderAvatar:   event.SenderAvatar,
			CreatedAt:      time.Unix(event.Timestamp, 0),
		}
		if err := db.CreateNotification(ctx, notification); err != nil {
			hlog.Errorf("Failed to persist publish notification for subscriber %d: %v", subscriberId, err)
			continue
		}
		service.hub.Publish(ws.NotificationRoom(subscriberId), "notification:newVideo", notificationPayload(notification))
	}
	return nil
}

type ListNotificationRequest struct {
	ReceiverId int64
	Type       string
	EntityType string
	PageNum    int64
	PageSize   int64
}

type ListNotificationResponse struct {
	Notifications []*model.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	TotalPages    int64                 `json:"total_pages"`
	CurrentPage   int64                 `json:"current_page"`
	UnreadCount   int64                 `json:"unread_count"`
}

// ListNotifications pages the receiver's feed with optional type and
// entity-type filters, plus the unread counter for the badge.
func (service *NotifyService) ListNotifications(ctx context.Context, req *ListNotificationRequest) (*ListNotificationResponse, error) {
	if req.PageNum <= 0 {
		req.PageNum = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = constants.DefaultLimit
	}
	if req.PageSize > constants.MaxLimit {
		req.PageSize = constants.MaxLimit
	}

	notifications, err := db.ListNotifications(ctx, req.ReceiverId, req.Type, req.EntityType, req.PageNum, req.PageSize)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to list notifications")
	}
	total, err := db.CountNotifications(ctx, req.ReceiverId, req.Type, req.EntityType)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to count notifications")
	}
	unread, err := db.CountUnread(ctx, req.ReceiverId)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to count unread notifications")
	}

	return &ListNotificationResponse{
		Notifications: notifications,
		Total:         total,
		TotalPages:    int64(math.Ceil(float64(total) / float64(req.PageSize))),
		CurrentPage:   req.PageNum,
		UnreadCount:   unread,
	}, nil
}

// MarkAsRead flips one notification of the caller.
func (service *NotifyService) MarkAsRead(ctx context.Context, receiverId, notificationId int64) error {
	if notificationId == 0 {
		return errno.RequestErr.WithMessage("NotificationId must be provided")
	}
	if err := db.MarkAsRead(ctx, receiverId, notificationId); err != nil {
		return pkgerrors.WithMessage(err, "Failed to mark notification as read")
	}
	return nil
}

// MarkEntityRead clears the caller's notifications about one entity.
// Invoked from viewing paths such as opening a video from the feed.
func (service *NotifyService) MarkEntityRead(ctx context.Context, receiverId, entityId int64, entityType string) error {
	if err := db.MarkEntityRead(ctx, receiverId, entityId, entityType); err != nil {
		return pkgerrors.WithMessage(err, "Failed to mark entity notifications as read")
	}
	return nil
}

// StartRetentionLoop purges expired notifications once a day until the
// context ends.
func (service *NotifyService) StartRetentionLoop(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := db.PurgeExpired(ctx, NotificationRetention); err != nil {
					hlog.Errorf("Failed to purge expired notifications: %v", err)
				}
			}
		}
	}()
}
