package handlers

import (
	"context"

	"ViewTube.com/cmd/interaction/service"
	"ViewTube.com/pkg/errno"
	"ViewTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ReactionAction toggles a like or dislike. A comment_id targets the
// comment; otherwise the video is the target.
func ReactionAction(ctx context.Context, c *app.RequestContext) {
	var param ReactionParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := jwt.GetUserId(ctx, c)

	reactionService := service.NewReactionService(ctx, producer)
	var (
		result string
		err    error
	)
	if param.CommentId != 0 {
		result, err = reactionService.ToggleCommentReaction(ctx, param.CommentId, userId, param.ActionType)
	} else {
		result, err = reactionService.ToggleVideoReaction(ctx, param.VideoId, userId, param.ActionType)
	}
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"result": result})
}

// ReactionStatus reports the caller's reaction on a video plus the
// per-comment reaction map for that video.
func ReactionStatus(ctx context.Context, c *app.RequestContext) {
	var param ReactionStatusParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := jwt.GetUserId(ctx, c)

	reactionService := service.NewReactionService(ctx, producer)
	videoReaction, err := reactionService.GetVideoReactionStatus(ctx, param.VideoId, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	commentReactions, err := reactionService.GetCommentReactionMap(ctx, param.VideoId, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"video_reaction":    videoReaction,
		"comment_reactions": commentReactions,
	})
}

func GetLikedVideos(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserId(ctx, c)

	videos, err := service.NewReactionService(ctx, producer).GetLikedVideos(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}
