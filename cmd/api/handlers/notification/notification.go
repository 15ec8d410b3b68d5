package handlers

import (
	"context"

	interaction "ViewTube.com/cmd/api/handlers/interaction"
	"ViewTube.com/cmd/notify/service"
	"ViewTube.com/pkg/errno"
	"ViewTube.com/pkg/jwt"
	"ViewTube.com/pkg/ws"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var hub *ws.Hub

func Init(h *ws.Hub) {
	hub = h
}

type ListNotificationParam struct {
	Type       string `form:"type" query:"type"`
	EntityType string `form:"entity_type" query:"entity_type"`
	PageNum    int64  `form:"page_num" query:"page_num"`
	PageSize   int64  `form:"page_size" query:"page_size"`
}

type MarkReadParam struct {
	NotificationId int64 `form:"notification_id" json:"notification_id"`
}

func ListNotifications(ctx context.Context, c *app.RequestContext) {
	var param ListNotificationParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := jwt.GetUserId(ctx, c)

	resp, err := service.NewNotifyService(ctx, hub).ListNotifications(ctx, &service.ListNotificationRequest{
		ReceiverId: userId,
		Type:       param.Type,
		EntityType: param.EntityType,
		PageNum:    param.PageNum,
		PageSize:   param.PageSize,
	})
	if err != nil {
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	interaction.SendResponse(c, errno.Success, resp)
}

func MarkNotificationRead(ctx context.Context, c *app.RequestContext) {
	var param MarkReadParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := jwt.GetUserId(ctx, c)

	if err := service.NewNotifyService(ctx, hub).MarkAsRead(ctx, userId, param.NotificationId); err != nil {
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	interaction.SendResponse(c, errno.Success, nil)
}
