package service

import (
	"context"
	"errors"
	"time"

	"ViewTube.com/cmd/interaction/dal/db"
	"ViewTube.com/cmd/model"
	"ViewTube.com/pkg/constants"
	"ViewTube.com/pkg/errno"
	"ViewTube.com/pkg/mq"
	"ViewTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	ToggleResultCreated  = "created"
	ToggleResultSwitched = "switched"
	ToggleResultRemoved  = "removed"
)

type ReactionService struct {
	ctx      context.Context
	producer *mq.Producer
}

func NewReactionService(ctx context.Context, producer *mq.Producer) *ReactionService {
	return &ReactionService{ctx: ctx, producer: producer}
}

type togglePlan struct {
	result       string
	likeDelta    int64
	dislikeDelta int64
}

// planToggle decides remove/switch/create from the existing reaction
// kind ("" = none) and the requested one. Pure, covers every branch of
// the toggle engine.
func planToggle(existingKind, requestedKind string) togglePlan {
	plan := togglePlan{}
	switch {
	case existingKind == requestedKind:
		plan.result = ToggleResultRemoved
		if requestedKind == constants.ReactionLike {
			plan.likeDelta = -1
		} else {
			plan.dislikeDelta = -1
		}
	case existingKind != "":
		plan.result = ToggleResultSwitched
		if requestedKind == constants.ReactionLike {
			plan.likeDelta, plan.dislikeDelta = 1, -1
		} else {
			plan.likeDelta, plan.dislikeDelta = -1, 1
		}
	default:
		plan.result = ToggleResultCreated
		if requestedKind == constants.ReactionLike {
			plan.likeDelta = 1
		} else {
			plan.dislikeDelta = 1
		}
	}
	return plan
}

func validateReactionKind(kind string) error {
	if kind != constants.ReactionLike && kind != constants.ReactionDislike {
		return errno.RequestErr.WithMessage("Reaction must be like or dislike")
	}
	return nil
}

// ToggleVideoReaction toggles the caller's reaction on a video. The
// reaction row and both counters move in the same transaction; the
// uniqueness of (user, video) is enforced by the lookup inside it.
func (service *ReactionService) ToggleVideoReaction(ctx context.Context, videoId, userId int64, requestedKind string) (string, error) {
	if err := validateReactionKind(requestedKind); err != nil {
		return "", err
	}

	var (
		plan       togglePlan
		ownerId    int64
		videoTitle string
	)

	err := db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		video, err := db.GetVideoInfoTx(tx, videoId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errno.NotFoundErr.WithMessage("Video not found")
			}
			return pkgerrors.WithMessage(err, "Failed to resolve video")
		}
		ownerId, videoTitle = video.UserId, video.Title

		existing, err := db.GetVideoReactionTx(tx, videoId, userId)
		if err != nil {
			return pkgerrors.WithMessage(err, "Failed to look up reaction")
		}

		existingKind := ""
		if existing != nil {
			existingKind = existing.Kind
		}
		plan = planToggle(existingKind, requestedKind)

		switch plan.result {
		case ToggleResultRemoved:
			if err := db.DeleteReactionTx(tx, existing.ReactionId); err != nil {
				return pkgerrors.WithMessage(err, "Failed to delete reaction")
			}
		case ToggleResultSwitched:
			if err := db.UpdateReactionKindTx(tx, existing.ReactionId, requestedKind); err != nil {
				return pkgerrors.WithMessage(err, "Failed to switch reaction")
			}
		default:
			reaction := &model.Reaction{
				ReactionId: utils.GenerateID(),
				VideoId:    videoId,
				UserId:     userId,
				Kind:       requestedKind,
				CreatedAt:  time.Now().Format(constants.DataFormate),
			}
			if err := db.CreateReactionTx(tx, reaction); err != nil {
				return pkgerrors.WithMessage(err, "Failed to create reaction")
			}
		}

		if plan.likeDelta != 0 {
			if err := db.AddVideoReactionCountTx(tx, videoId, constants.ReactionLike, plan.likeDelta); err != nil {
				return pkgerrors.WithMessage(err, "Failed to update like counter")
			}
		}
		if plan.dislikeDelta != 0 {
			if err := db.AddVideoReactionCountTx(tx, videoId, constants.ReactionDislike, plan.dislikeDelta); err != nil {
				return pkgerrors.WithMessage(err, "Failed to update dislike counter")
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if plan.result == ToggleResultCreated && requestedKind == constants.ReactionLike && ownerId != userId {
		service.sendLikeNotification(ctx, userId, ownerId, videoId, constants.EntityTypeVideo, videoTitle)
	}

	return plan.result, nil
}

// ToggleCommentReaction is the same engine shape against a comment
// target; counters live on the comment row.
func (service *ReactionService) ToggleCommentReaction(ctx context.Context, commentId, userId int64, requestedKind string) (string, error) {
	if err := validateReactionKind(requestedKind); err != nil {
		return "", err
	}

	var (
		plan    togglePlan
		ownerId int64
	)

	err := db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comment, err := db.GetCommentInfoTx(tx, commentId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errno.NotFoundErr.WithMessage("Comment not found")
			}
			return pkgerrors.WithMessage(err, "Failed to resolve comment")
		}
		ownerId = comment.UserId

		existing, err := db.GetCommentReactionTx(tx, commentId, userId)
		if err != nil {
			return pkgerrors.WithMessage(err, "Failed to look up reaction")
		}

		existingKind := ""
		if existing != nil {
			existingKind = existing.Kind
		}
		plan = planToggle(existingKind, requestedKind)

		switch plan.result {
		case ToggleResultRemoved:
			if err := db.DeleteReactionTx(tx, existing.ReactionId); err != nil {
				return pkgerrors.WithMessage(err, "Failed to delete reaction")
			}
		case ToggleResultSwitched:
			if err := db.UpdateReactionKindTx(tx, existing.ReactionId, requestedKind); err != nil {
				return pkgerrors.WithMessage(err, "Failed to switch reaction")
			}
		default:
			reaction := &model.Reaction{
				ReactionId: utils.GenerateID(),
				CommentId:  commentId,
				UserId:     userId,
				Kind:       requestedKind,
				CreatedAt:  time.Now().Format(constants.DataFormate),
			}
			if err := db.CreateReactionTx(tx, reaction); err != nil {
				return pkgerrors.WithMessage(err, "Failed to create reaction")
			}
		}

		if plan.likeDelta != 0 {
			if err := db.AddCommentReactionCountTx(tx, commentId, constants.ReactionLike, plan.likeDelta); err != nil {
				return pkgerrors.WithMessage(err, "Failed to update like counter")
			}
		}
		if plan.dislikeDelta != 0 {
			if err := db.AddCommentReactionCountTx(tx, commentId, constants.ReactionDislike, plan.dislikeDelta); err != nil {
				return pkgerrors.WithMessage(err, "Failed to update dislike counter")
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if plan.result == ToggleResultCreated && requestedKind == constants.ReactionLike && ownerId != userId {
		service.sendLikeNotification(ctx, userId, ownerId, commentId, constants.EntityTypeComment, "")
	}

	return plan.result, nil
}

func (service *ReactionService) sendLikeNotification(ctx context.Context, fromUserId, toUserId, entityId int64, entityType, title string) {
	if service.producer == nil {
		return
	}
	event := &mq.NotificationEvent{
		ReceiverID: toUserId,
		SenderID:   fromUserId,
		Type:       constants.NotifyTypeLike,
		EntityID:   entityId,
		EntityType: entityType,
		Title:      title,
		Timestamp:  time.Now().Unix(),
		EventID:    uuid.New().String(),
	}
	if err := service.producer.PublishNotificationEvent(ctx, event); err != nil {
		hlog.Errorf("Failed to publish like notification event: %v", err)
	}
}

// GetVideoReactionStatus reports the caller's current reaction kind on
// a video, empty when none. Read-only.
func (service *ReactionService) GetVideoReactionStatus(ctx context.Context, videoId, userId int64) (string, error) {
	reaction, err := db.GetUserVideoReaction(ctx, videoId, userId)
	if err != nil {
		return "", pkgerrors.WithMessage(err, "Failed to look up reaction status")
	}
	if reaction == nil {
		return "", nil
	}
	return reaction.Kind, nil
}

// GetCommentReactionMap returns the caller's reaction kind for every
// comment under a video as one map, avoiding a query per comment.
func (service *ReactionService) GetCommentReactionMap(ctx context.Context, videoId, userId int64) (map[int64]string, error) {
	reactions, err := db.GetUserReactionsForVideoComments(ctx, videoId, userId)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to load comment reactions")
	}
	result := make(map[int64]string, len(reactions))
	for _, reaction := range reactions {
		result[reaction.CommentId] = reaction.Kind
	}
	return result, nil
}

// GetLikedVideos lists the videos the caller currently likes.
func (service *ReactionService) GetLikedVideos(ctx context.Context, userId int64) ([]*model.Video, error) {
	videoIds, err := db.GetLikedVideoIDs(ctx, userId)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to load liked video ids")
	}
	videos, err := db.GetVideosByIDs(ctx, videoIds)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to load liked videos")
	}
	return videos, nil
}
