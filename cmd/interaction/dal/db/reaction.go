package db

import (
	"context"
	"errors"

	"ViewTube.com/cmd/model"
	"ViewTube.com/pkg/constants"
	"gorm.io/gorm"
)

// GetVideoReactionTx looks up the unique reaction of one user on one
// video; nil when none exists.
func GetVideoReactionTx(tx *gorm.DB, videoId, userId int64) (*model.Reaction, error) {
	reaction := &model.Reaction{}
	err := tx.Model(&model.Reaction{}).Where("video_id = ? AND user_id = ?", videoId, userId).First(reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return reaction, nil
}

func GetCommentReactionTx(tx *gorm.DB, commentId, userId int64) (*model.Reaction, error) {
	reaction := &model.Reaction{}
	err := tx.Model(&model.Reaction{}).Where("comment_id = ? AND user_id = ?", commentId, userId).First(reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return reaction, nil
}

func CreateReactionTx(tx *gorm.DB, reaction *model.Reaction) error {
	return tx.Create(reaction).Error
}

func UpdateReactionKindTx(tx *gorm.DB, reactionId int64, kind string) error {
	return tx.Model(&model.Reaction{}).Where("reaction_id = ?", reactionId).Update("kind", kind).Error
}

func DeleteReactionTx(tx *gorm.DB, reactionId int64) error {
	return tx.Where("reaction_id = ?", reactionId).Delete(&model.Reaction{}).Error
}

func DeleteReactionsByCommentIDsTx(tx *gorm.DB, commentIds []int64) error {
	if len(commentIds) == 0 {
		return nil
	}
	return tx.Where("comment_id IN ?", commentIds).Delete(&model.Reaction{}).Error
}

// counterColumn maps a reaction kind to its denormalized column.
func counterColumn(kind string) string {
	if kind == constants.ReactionDislike {
		return "dislikes"
	}
	return "likes"
}

// AddVideoReactionCountTx applies a counter delta on the video row,
// floored at zero. Must run in the same transaction as the reaction
// row mutation that justifies it.
func AddVideoReactionCountTx(tx *gorm.DB, videoId int64, kind string, delta int64) error {
	col := counterColumn(kind)
	return tx.Model(&model.Video{}).Where("video_id = ?", videoId).
		UpdateColumn(col, gorm.Expr("GREATEST(CAST("+col+" AS SIGNED) + ?, 0)", delta)).Error
}

func AddCommentReactionCountTx(tx *gorm.DB, commentId int64, kind string, delta int64) error {
	col := counterColumn(kind)
	return tx.Model(&model.Comment{}).Where("comment_id = ?", commentId).
		UpdateColumn(col, gorm.Expr("GREATEST(CAST("+col+" AS SIGNED) + ?, 0)", delta)).Error
}

// ---- read-only status queries ----

func GetUserVideoReaction(ctx context.Context, videoId, userId int64) (*model.Reaction, error) {
	return GetVideoReactionTx(DB.WithContext(ctx), videoId, userId)
}

// GetUserReactionsForVideoComments returns the caller's reactions on
// every comment under one video in a single query.
func GetUserReactionsForVideoComments(ctx context.Context, videoId, userId int64) ([]*model.Reaction, error) {
	list := make([]*model.Reaction, 0)
	err := DB.WithContext(ctx).Model(&model.Reaction{}).
		Joins("join comments on comments.comment_id = reactions.comment_id").
		Where("comments.video_id = ? AND reactions.user_id = ?", videoId, userId).
		Select("reactions.*").
		Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// GetLikedVideoIDs lists ids of videos the user currently likes.
func GetLikedVideoIDs(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	err := DB.WithContext(ctx).Model(&model.Reaction{}).
		Where("user_id = ? AND video_id != 0 AND kind = ?", userId, constants.ReactionLike).
		Select("video_id").Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
