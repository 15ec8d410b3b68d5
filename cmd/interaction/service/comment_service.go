package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"ViewTube.com/cmd/interaction/dal/db"
	"ViewTube.com/cmd/interaction/infras/redis"
	"ViewTube.com/cmd/model"
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

type CommentService struct {
	ctx      context.Context
	hub      *ws.Hub
	producer *mq.Producer
}

func NewCommentService(ctx context.Context, hub *ws.Hub, producer *mq.Producer) *CommentService {
	return &CommentService{ctx: ctx, hub: hub, producer: producer}
}

type CreateCommentRequest struct {
	VideoId  int64
	ParentId int64 // 0 = top level
	UserId   int64
	Content  string
}

type UpdateCommentRequest struct {
	CommentId int64
	VideoId   int64
	UserId    int64
	Content   string
}

type ListCommentRequest struct {
	VideoId  int64
	PageNum  int64
	PageSize int64
}

type ListCommentResponse struct {
	Comments      []*model.CommentDetail
	TotalComments int64
	TotalPages    int64
	CurrentPage   int64
}

func (service *CommentService) validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.RequestErr.WithMessage("Comment content cannot be empty")
	}
	if utf8.RuneCountInString(content) > constants.MaxCommentLength {
		return errno.RequestErr.WithMessage("Comment too long, maximum 500 characters allowed")
	}
	return nil
}

// checkRateLimit validates user comment frequency. Redis being down
// does not block the user.
func (service *CommentService) checkRateLimit(ctx context.Context, userId int64) error {
	key := redis.RateLimitKey(userId)
	count, err := redis.GetCommentRateLimit(ctx, key)
	if err != nil {
		hlog.Warnf("Failed to check rate limit for user %d: %v", userId, err)
	} else if count >= constants.CommentRateLimit {
		return errno.RequestErr.WithMessage("Comment rate limit exceeded, please try again later")
	}
	return nil
}

func (service *CommentService) checkDuplicateComment(ctx context.Context, userId int64, content string) error {
	isDuplicate, err := redis.CheckDuplicateComment(ctx, userId, content)
	if err != nil {
		hlog.Warnf("Failed to check duplicate comment for user %d: %v", userId, err)
		return nil
	}
	if isDuplicate {
		return errno.RequestErr.WithMessage("Duplicate comment detected, please wait before posting similar content")
	}
	return nil
}

// CreateComment validates, persists and broadcasts a new comment. The
// optional parent must be an existing comment on the same video.
func (service *CommentService) CreateComment(ctx context.Context, req *CreateCommentRequest) (*model.CommentDetail, error) {
	if err := service.validateCommentContent(req.Content); err != nil {
		return nil, err
	}
	if req.VideoId == 0 {
		return nil, errno.RequestErr.WithMessage("VideoId must be provided")
	}

	if err := service.checkRateLimit(ctx, req.UserId); err != nil {
		return nil, err
	}
	if err := service.checkDuplicateComment(ctx, req.UserId, req.Content); err != nil {
		return nil, err
	}

	video, err := db.GetVideoInfo(ctx, req.VideoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Video not found")
		}
		return nil, pkgerrors.WithMessage(err, "Failed to resolve video")
	}

	if req.ParentId != 0 {
		parent, err := db.GetCommentInfo(ctx, req.ParentId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errno.NotFoundErr.WithMessage("Parent comment not found")
			}
			return nil, pkgerrors.WithMessage(err, "Failed to resolve parent comment")
		}
		if parent.VideoId != req.VideoId {
			return nil, errno.RequestErr.WithMessage("Parent comment belongs to a different video")
		}
	}

	now := time.Now().Format(constants.DataFormate)
	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		VideoId:   req.VideoId,
		UserId:    req.UserId,
		ParentId:  req.ParentId,
		Content:   strings.TrimSpace(req.Content),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := db.CreateComment(ctx, comment); err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to create comment")
	}

	go func() {
		if err := redis.IncrementCommentRateLimit(context.Background(), redis.RateLimitKey(req.UserId), 60); err != nil {
			hlog.Warnf("Failed to update rate limit for user %d: %v", req.UserId, err)
		}
		if err := redis.StoreCommentHash(context.Background(), req.UserId, req.Content, constants.DuplicateTimeWindow); err != nil {
			hlog.Warnf("Failed to store comment hash for user %d: %v", req.UserId, err)
		}
	}()

	detail, err := db.GetCommentDetail(ctx, comment.CommentId)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to load created comment")
	}

	service.hub.Publish(ws.VideoRoom(req.VideoId), "newComment", detail)

	if video.UserId != req.UserId {
		service.notifyCommentOwner(ctx, video, comment)
	}

	return detail, nil
}

func (service *CommentService) notifyCommentOwner(ctx context.Context, video *model.Video, comment *model.Comment) {
	if service.producer == nil {
		return
	}
	event := &mq.NotificationEvent{
		ReceiverID: video.UserId,
		SenderID:   comment.UserId,
		Type:       constants.NotifyTypeComment,
		EntityID:   video.VideoId,
		EntityType: constants.EntityTypeVideo,
		Title:      video.Title,
		Message:    comment.Content,
		Thumbnail:  video.ThumbnailUrl,
		Timestamp:  time.Now().Unix(),
		EventID:    uuid.New().String(),
	}
	if err := service.producer.PublishNotificationEvent(ctx, event); err != nil {
		hlog.Errorf("Failed to publish comment notification event: %v", err)
	}
}

// UpdateComment replaces the content in place. Only the author may
// edit their comment.
func (service *CommentService) UpdateComment(ctx context.Context, req *UpdateCommentRequest) (*model.Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, errno.RequestErr.WithMessage("Content is required")
	}
	if req.CommentId == 0 || req.VideoId == 0 {
		return nil, errno.RequestErr.WithMessage("CommentId and VideoId are required for updating the comment")
	}

	comment, err := db.GetCommentInfo(ctx, req.CommentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Comment can not be found")
		}
		return nil, pkgerrors.WithMessage(err, "Failed to resolve comment")
	}
	if comment.UserId != req.UserId {
		return nil, errno.ForbiddenErr.WithMessage("You are not allowed to edit this comment")
	}

	now := time.Now().Format(constants.DataFormate)
	if err := db.UpdateCommentContent(ctx, req.CommentId, strings.TrimSpace(req.Content), now); err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to update comment")
	}
	comment.Content = strings.TrimSpace(req.Content)
	comment.UpdatedAt = now

	service.hub.Publish(ws.VideoRoom(req.VideoId), "update-comment", map[string]interface{}{
		"content":   comment.Content,
		"commentId": comment.CommentId,
	})

	return comment, nil
}

// ListComments is a pure read path, no transaction required.
func (service *CommentService) ListComments(ctx context.Context, req *ListCommentRequest) (*ListCommentResponse, error) {
	if req.VideoId == 0 {
		return nil, errno.RequestErr.WithMessage("VideoId must be provided")
	}
	if req.PageNum <= 0 {
		req.PageNum = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = constants.DefaultLimit
	}
	if req.PageSize > constants.MaxLimit {
		req.PageSize = constants.MaxLimit
	}

	comments, err := db.ListVideoComments(ctx, req.VideoId, req.PageNum, req.PageSize)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to list comments")
	}
	total, err := db.GetVideoCommentCount(ctx, req.VideoId)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to count comments")
	}

	return &ListCommentResponse{
		Comments:      comments,
		TotalComments: total,
		TotalPages:    int64(math.Ceil(float64(total) / float64(req.PageSize))),
		CurrentPage:   req.PageNum,
	}, nil
}
