package handlers

import (
	"ViewTube.com/pkg/errno"
	"ViewTube.com/pkg/mq"
	"ViewTube.com/pkg/ws"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

var (
	hub      *ws.Hub
	producer *mq.Producer
)

// Init wires the shared hub and producer before routes are served.
func Init(h *ws.Hub, p *mq.Producer) {
	hub = h
	producer = p
}

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type CreateCommentParam struct {
	VideoId  int64  `form:"video_id" json:"video_id"`
	ParentId int64  `form:"parent_id" json:"parent_id"`
	Content  string `form:"content" json:"content"`
}

type UpdateCommentParam struct {
	VideoId   int64  `form:"video_id" json:"video_id"`
	CommentId int64  `form:"comment_id" json:"comment_id"`
	Content   string `form:"content" json:"content"`
}

type ListCommentParam struct {
	VideoId  int64 `form:"video_id" query:"video_id"`
	PageNum  int64 `form:"page_num" query:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size"`
}

type DeleteCommentParam struct {
	VideoId   int64 `form:"video_id" json:"video_id"`
	CommentId int64 `form:"comment_id" json:"comment_id"`
}

type ReactionParam struct {
	VideoId    int64  `form:"video_id" json:"video_id"`
	CommentId  int64  `form:"comment_id" json:"comment_id"`
	ActionType string `form:"action_type" json:"action_type"`
}

type ReactionStatusParam struct {
	VideoId int64 `form:"video_id" query:"video_id"`
}
