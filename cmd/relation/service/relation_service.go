package service

import (
	"context"
	"errors"
	"time"

	"ViewTube.com/cmd/model"
	"ViewTube.com/cmd/relation/dal/db"
	userdb "ViewTube.com/cmd/user/dal/db"
	"ViewTube.com/pkg/constants"
	"ViewTube.com/pkg/errno"
	"ViewTube.com/pkg/mq"
	"ViewTube.com/pkg/utils"
	"ViewTube.com/pkg/ws"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

type RelationService struct {
	ctx      context.Context
	hub      *ws.Hub
	producer *mq.Producer
}

func NewRelationService(ctx context.Context, hub *ws.Hub, producer *mq.Producer) *RelationService {
	return &RelationService{ctx: ctx, hub: hub, producer: producer}
}

type ToggleSubscriptionResponse struct {
	Action          string `json:"action"`
	SubscriberCount int64  `json:"subscriberCount"`
}

// ToggleSubscription subscribes the caller to a channel, or removes
// the existing edge. Both sides of the relation get a room event.
func (service *RelationService) ToggleSubscription(ctx context.Context, subscriberId, channelId int64) (*ToggleSubscriptionResponse, error) {
	if channelId == 0 {
		return nil, errno.RequestErr.WithMessage("ChannelId must be provided")
	}
	if subscriberId == channelId {
		return nil, errno.RequestErr.WithMessage("You cannot subscribe to your own channel")
	}

	channel, err := userdb.GetUserInfo(ctx, channelId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Channel not found")
		}
		return nil, pkgerrors.WithMessage(err, "Failed to resolve channel")
	}

	existing, err := db.GetSubscription(ctx, subscriberId, channelId)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to look up subscription")
	}

	action := constants.ActionSubscribe
	if existing != nil {
		if err := db.DeleteSubscription(ctx, existing.SubscriptionId); err != nil {
			return nil, pkgerrors.WithMessage(err, "Failed to unsubscribe")
		}
		action = constants.ActionUnsubscribe
	} else {
		sub := &model.Subscription{
			SubscriptionId: utils.GenerateID(),
			SubscriberId:   subscriberId,
			ChannelId:      channelId,
			CreatedAt:      time.Now().Format(constants.DataFormate),
		}
		if err := db.CreateSubscription(ctx, sub); err != nil {
			return nil, pkgerrors.WithMessage(err, "Failed to subscribe")
		}
	}

	service.publishToggleEvents(subscriberId, channelId, action)

	if action == constants.ActionSubscribe {
		service.notifyChannelOwner(ctx, subscriberId, channel)
	}

	count, err := db.GetSubscriberCount(ctx, channelId)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to count subscribers")
	}

	return &ToggleSubscriptionResponse{Action: action, SubscriberCount: count}, nil
}

// subscriptionAction maps the channel-side action to the counter
// action carried on the subscriber's own feed event.
func subscriptionAction(action string) string {
	if action == constants.ActionSubscribe {
		return constants.ActionIncrement
	}
	return constants.ActionDecrement
}

// publishToggleEvents tells the channel who moved and tells the
// subscriber which way their subscription count went.
func (service *RelationService) publishToggleEvents(subscriberId, channelId int64, action string) {
	service.hub.Publish(ws.UserRoom(channelId), "subscriber:update", map[string]interface{}{
		"subscriberId": subscriberId,
		"action":       action,
	})
	service.hub.Publish(ws.UserRoom(subscriberId), "subscription:update", map[string]interface{}{
		"channelId": channelId,
		"action":    subscriptionAction(action),
	})
}

func (service *RelationService) notifyChannelOwner(ctx context.Context, subscriberId int64, channel *model.User) {
	if service.producer == nil {
		return
	}
	event := &mq.NotificationEvent{
		ReceiverID: channel.UserId,
		SenderID:   subscriberId,
		Type:       constants.NotifyTypeSubscribe,
		EntityID:   channel.UserId,
		EntityType: constants.EntityTypeChannel,
		Timestamp:  time.Now().Unix(),
		EventID:    uuid.New().String(),
	}
	if err := service.producer.PublishNotificationEvent(ctx, event); err != nil {
		hlog.Errorf("Failed to publish subscribe notification event: %v", err)
	}
}

// GetSubscriptionStatus reports whether the caller follows the channel.
func (service *RelationService) GetSubscriptionStatus(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	existing, err := db.GetSubscription(ctx, subscriberId, channelId)
	if err != nil {
		return false, pkgerrors.WithMessage(err, "Failed to look up subscription")
	}
	return existing != nil, nil
}

// GetSubscribedChannels lists the channels the caller follows.
func (service *RelationService) GetSubscribedChannels(ctx context.Context, subscriberId int64) ([]*model.User, error) {
	channelIds, err := db.GetSubscribedChannelIDs(ctx, subscriberId)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to load subscriptions")
	}
	channels, err := userdb.GetUsersByIDs(ctx, channelIds)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to load channels")
	}
	return channels, nil
}
