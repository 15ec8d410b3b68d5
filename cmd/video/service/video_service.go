package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"ViewTube.com/cmd/model"
	notifydb "ViewTube.com/cmd/notify/dal/db"
	userdb "ViewTube.com/cmd/user/dal/db"
	"ViewTube.com/cmd/video/dal/db"
	"ViewTube.com/pkg/constants"
	"ViewTube.com/pkg/errno"
	"ViewTube.com/pkg/mq"
	"ViewTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// SignalNotificationVideo marks the viewer's notifications about the
// video as read when it is opened from the feed.
const SignalNotificationVideo = "notificationVideo"

type VideoService struct {
	ctx      context.Context
	producer *mq.Producer
}

func NewVideoService(ctx context.Context, producer *mq.Producer) *VideoService {
	return &VideoService{ctx: ctx, producer: producer}
}

type PublishVideoRequest struct {
	UserId       int64
	Title        string
	Description  string
	ThumbnailUrl string
	Category     string
	Duration     string
}

// PublishVideo persists the metadata row and queues the fan-out event
// for the channel's subscribers. Media upload happens elsewhere.
func (service *VideoService) PublishVideo(ctx context.Context, req *PublishVideoRequest) (*model.Video, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errno.RequestErr.WithMessage("Title is required")
	}

	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId:      utils.GenerateID(),
		UserId:       req.UserId,
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		ThumbnailUrl: req.ThumbnailUrl,
		Category:     req.Category,
		Duration:     req.Duration,
		IsPublished:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.CreateVideo(ctx, video); err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to create video")
	}

	service.announcePublish(ctx, video)
	return video, nil
}

func (service *VideoService) announcePublish(ctx context.Context, video *model.Video) {
	if service.producer == nil {
		return
	}

	senderAvatar := ""
	if owner, err := userdb.GetUserInfo(ctx, video.UserId); err == nil {
		senderAvatar = owner.AvatarUrl
	}

	event := &mq.VideoPublishEvent{
		SenderID:     video.UserId,
		VideoID:      video.VideoId,
		Title:        video.Title,
		Message:      "uploaded a new video",
		Thumbnail:    video.ThumbnailUrl,
		SenderAvatar: senderAvatar,
		Timestamp:    time.Now().Unix(),
		EventID:      uuid.New().String(),
	}
	if err := service.producer.PublishVideoPublishEvent(ctx, event); err != nil {
		hlog.Errorf("Failed to publish video publish event: %v", err)
	}
}

type GetVideoRequest struct {
	VideoId  int64
	ViewerId int64  // 0 = anonymous
	Signal   string // optional, SignalNotificationVideo
}

// GetVideoById resolves a video, counts the visit (once per
// authenticated viewer, every time for anonymous ones) and honors the
// notification signal from the feed.
func (service *VideoService) GetVideoById(ctx context.Context, req *GetVideoRequest) (*model.Video, error) {
	if req.VideoId == 0 {
		return nil, errno.RequestErr.WithMessage("VideoId must be provided")
	}

	video, err := db.GetVideoInfo(ctx, req.VideoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Video not found")
		}
		return nil, pkgerrors.WithMessage(err, "Failed to load video")
	}

	if req.ViewerId == 0 {
		// anonymous views count every time, there is no identity to
		// dedupe on
		if err := db.IncrementVisitCount(ctx, req.VideoId); err != nil {
			return nil, pkgerrors.WithMessage(err, "Failed to count view")
		}
		video.VisitCount++
	} else {
		viewed, err := db.HasView(ctx, req.VideoId, req.ViewerId)
		if err != nil {
			return nil, pkgerrors.WithMessage(err, "Failed to check view history")
		}
		if !viewed {
			view := &model.View{
				ViewId:    utils.GenerateID(),
				VideoId:   req.VideoId,
				UserId:    req.ViewerId,
				CreatedAt: time.Now().Format(constants.DataFormate),
			}
			if err := db.RecordView(ctx, view); err != nil {
				return nil, pkgerrors.WithMessage(err, "Failed to record view")
			}
			video.VisitCount++
		}

		if req.Signal == SignalNotificationVideo {
			if err := notifydb.MarkEntityRead(ctx, req.ViewerId, req.VideoId, constants.EntityTypeVideo); err != nil {
				hlog.Warnf("Failed to mark video notifications read for user %d: %v", req.ViewerId, err)
			}
		}
	}

	return video, nil
}

// ListUserVideos pages a channel's published videos.
func (service *VideoService) ListUserVideos(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Video, error) {
	if userId == 0 {
		return nil, errno.RequestErr.WithMessage("UserId must be provided")
	}
	if pageNum <= 0 {
		pageNum = 1
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultLimit
	}
	if pageSize > constants.MaxLimit {
		pageSize = constants.MaxLimit
	}
	videos, err := db.ListUserVideos(ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to list videos")
	}
	return videos, nil
}
