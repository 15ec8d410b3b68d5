package service

import (
	"context"
	"errors"

	"ViewTube.com/cmd/interaction/dal/db"
	"ViewTube.com/pkg/constants"
	"ViewTube.com/pkg/errno"
	"ViewTube.com/pkg/ws"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

type DeleteCommentRequest struct {
	CommentId int64
	VideoId   int64
	UserId    int64
}

type deleteBranch int

const (
	// video owner: remove the whole subtree and its reactions
	branchHardCascade deleteBranch = iota
	// comment owner with replies: tombstone, keep the subtree
	branchSoft
	// comment owner without replies: remove the single comment
	branchHardSingle
	branchForbidden
)

// selectDeleteBranch is the pure branch selection over
// (isVideoOwner, hasReplies, isCommentOwner).
func selectDeleteBranch(isVideoOwner, hasReplies, isCommentOwner bool) deleteBranch {
	if isVideoOwner {
		return branchHardCascade
	}
	if !isCommentOwner {
		return branchForbidden
	}
	if hasReplies {
		return branchSoft
	}
	return branchHardSingle
}

// DeleteComment runs the delete state machine inside one transaction:
// descendant discovery, reaction cleanup and comment removal are
// atomic. The room event is emitted only after the commit.
func (service *CommentService) DeleteComment(ctx context.Context, req *DeleteCommentRequest) error {
	if req.CommentId == 0 || req.VideoId == 0 {
		return errno.RequestErr.WithMessage("Please take the commentId and videoId")
	}

	var (
		eventName    string
		eventPayload map[string]interface{}
	)

	err := db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comment, err := db.GetCommentInfoTx(tx, req.CommentId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errno.NotFoundErr.WithMessage("Comment can not be found")
			}
			return pkgerrors.WithMessage(err, "Failed to resolve comment")
		}

		video, err := db.GetVideoInfoTx(tx, req.VideoId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errno.NotFoundErr.WithMessage("Video can not be found")
			}
			return pkgerrors.WithMessage(err, "Failed to resolve video")
		}

		childCount, err := db.GetChildCommentCountTx(tx, req.CommentId)
		if err != nil {
			return pkgerrors.WithMessage(err, "Failed to count replies")
		}

		branch := selectDeleteBranch(
			video.UserId == req.UserId,
			childCount > 0,
			comment.UserId == req.UserId,
		)

		switch branch {
		case branchHardCascade:
			descendants, err := db.CollectDescendantIDs(tx, req.CommentId)
			if err != nil {
				return pkgerrors.WithMessage(err, "Failed to collect descendant comments")
			}
			targets := append([]int64{req.CommentId}, descendants...)
			if err := db.DeleteReactionsByCommentIDsTx(tx, targets); err != nil {
				return pkgerrors.WithMessage(err, "Failed to delete reactions of subtree")
			}
			if err := db.DeleteCommentsTx(tx, targets); err != nil {
				return pkgerrors.WithMessage(err, "Failed to delete comment subtree")
			}
			eventName = "hard-delete-comment"
			eventPayload = map[string]interface{}{"commentId": req.CommentId}

		case branchSoft:
			if err := db.DeleteReactionsByCommentIDsTx(tx, []int64{req.CommentId}); err != nil {
				return pkgerrors.WithMessage(err, "Failed to delete comment reactions")
			}
			if err := db.SoftDeleteCommentTx(tx, req.CommentId, constants.DeletedCommentContent); err != nil {
				return pkgerrors.WithMessage(err, "Failed to soft delete comment")
			}
			eventName = "soft-delete-comment"
			eventPayload = map[string]interface{}{
				"commentId": req.CommentId,
				"content":   constants.DeletedCommentContent,
				"isDeleted": true,
			}

		case branchHardSingle:
			if err := db.DeleteReactionsByCommentIDsTx(tx, []int64{req.CommentId}); err != nil {
				return pkgerrors.WithMessage(err, "Failed to delete comment reactions")
			}
			if err := db.DeleteCommentsTx(tx, []int64{req.CommentId}); err != nil {
				return pkgerrors.WithMessage(err, "Failed to delete comment")
			}
			eventName = "hard-delete-comment"
			eventPayload = map[string]interface{}{"commentId": req.CommentId}

		default:
			return errno.ForbiddenErr.WithMessage("You are not allowed to delete this comment")
		}

		return nil
	})
	if err != nil {
		return err
	}

	service.hub.Publish(ws.VideoRoom(req.VideoId), eventName, eventPayload)
	return nil
}
