package handlers

import (
	"context"

	interaction "ViewTube.com/cmd/api/handlers/interaction"
	"ViewTube.com/cmd/video/service"
	"ViewTube.com/pkg/errno"
	"ViewTube.com/pkg/jwt"
	"ViewTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var producer *mq.Producer

func Init(p *mq.Producer) {
	producer = p
}

type PublishVideoParam struct {
	Title        string `form:"title" json:"title"`
	Description  string `form:"description" json:"description"`
	ThumbnailUrl string `form:"thumbnail_url" json:"thumbnail_url"`
	Category     string `form:"category" json:"category"`
	Duration     string `form:"duration" json:"duration"`
}

type GetVideoParam struct {
	VideoId int64  `form:"video_id" query:"video_id" path:"video_id"`
	Signal  string `form:"signal" query:"signal"`
}

type ListVideoParam struct {
	UserId   int64 `form:"user_id" query:"user_id"`
	PageNum  int64 `form:"page_num" query:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size"`
}

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var param PublishVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := jwt.GetUserId(ctx, c)

	video, err := service.NewVideoService(ctx, producer).PublishVideo(ctx, &service.PublishVideoRequest{
		UserId:       userId,
		Title:        param.Title,
		Description:  param.Description,
		ThumbnailUrl: param.ThumbnailUrl,
		Category:     param.Category,
		Duration:     param.Duration,
	})
	if err != nil {
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	interaction.SendResponse(c, errno.Success, video)
}

func GetVideo(ctx context.Context, c *app.RequestContext) {
	var param GetVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := jwt.GetUserId(ctx, c)

	video, err := service.NewVideoService(ctx, producer).GetVideoById(ctx, &service.GetVideoRequest{
		VideoId:  param.VideoId,
		ViewerId: userId,
		Signal:   param.Signal,
	})
	if err != nil {
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	interaction.SendResponse(c, errno.Success, video)
}

func ListUserVideos(ctx context.Context, c *app.RequestContext) {
	var param ListVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	videos, err := service.NewVideoService(ctx, producer).ListUserVideos(ctx, param.UserId, param.PageNum, param.PageSize)
	if err != nil {
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	interaction.SendResponse(c, errno.Success, videos)
}
