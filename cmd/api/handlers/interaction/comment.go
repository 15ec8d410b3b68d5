package handlers

import (
	"context"

	"ViewTube.com/cmd/interaction/service"
	"ViewTube.com/pkg/errno"
	"ViewTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreateComment(ctx context.Context, c *app.RequestContext) {
	var param CreateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := jwt.GetUserId(ctx, c)

	detail, err := service.NewCommentService(ctx, hub, producer).CreateComment(ctx, &service.CreateCommentRequest{
		VideoId:  param.VideoId,
		ParentId: param.ParentId,
		UserId:   userId,
		Content:  param.Content,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	var param UpdateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := jwt.GetUserId(ctx, c)

	comment, err := service.NewCommentService(ctx, hub, producer).UpdateComment(ctx, &service.UpdateCommentRequest{
		CommentId: param.CommentId,
		VideoId:   param.VideoId,
		UserId:    userId,
		Content:   param.Content,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	var param DeleteCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := jwt.GetUserId(ctx, c)

	err := service.NewCommentService(ctx, hub, producer).DeleteComment(ctx, &service.DeleteCommentRequest{
		CommentId: param.CommentId,
		VideoId:   param.VideoId,
		UserId:    userId,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func ListComments(ctx context.Context, c *app.RequestContext) {
	var param ListCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	resp, err := service.NewCommentService(ctx, hub, producer).ListComments(ctx, &service.ListCommentRequest{
		VideoId:  param.VideoId,
		PageNum:  param.PageNum,
		PageSize: param.PageSize,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
