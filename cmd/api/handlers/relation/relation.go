package handlers

import (
	"context"

	interaction "ViewTube.com/cmd/api/handlers/interaction"
	"ViewTube.com/cmd/relation/service"
	"ViewTube.com/pkg/errno"
	"ViewTube.com/pkg/jwt"
	"ViewTube.com/pkg/mq"
	"ViewTube.com/pkg/ws"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var (
	hub      *ws.Hub
	producer *mq.Producer
)

func Init(h *ws.Hub, p *mq.Producer) {
	hub = h
	producer = p
}

type SubscriptionParam struct {
	ChannelId int64 `form:"channel_id" json:"channel_id" query:"channel_id"`
}

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	var param SubscriptionParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := jwt.GetUserId(ctx, c)

	resp, err := service.NewRelationService(ctx, hub, producer).ToggleSubscription(ctx, userId, param.ChannelId)
	if err != nil {
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	interaction.SendResponse(c, errno.Success, resp)
}

func SubscriptionStatus(ctx context.Context, c *app.RequestContext) {
	var param SubscriptionParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := jwt.GetUserId(ctx, c)

	subscribed, err := service.NewRelationService(ctx, hub, producer).GetSubscriptionStatus(ctx, userId, param.ChannelId)
	if err != nil {
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	interaction.SendResponse(c, errno.Success, map[string]interface{}{"subscribed": subscribed})
}

func GetSubscribedChannels(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserId(ctx, c)

	channels, err := service.NewRelationService(ctx, hub, producer).GetSubscribedChannels(ctx, userId)
	if err != nil {
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	interaction.SendResponse(c, errno.Success, channels)
}
