package db

import (
	"context"

	"ViewTube.com/cmd/model"
	"gorm.io/gorm"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

// GetCommentInfo resolves one comment; gorm.ErrRecordNotFound when the
// id does not exist.
func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	comment := &model.Comment{}
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content string, updatedAt string) error {
	return DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).
		Updates(map[string]interface{}{"content": content, "updated_at": updatedAt}).Error
}

func GetVideoCommentCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListVideoComments returns one page of a video's comments joined with
// the author projection, newest first.
func ListVideoComments(ctx context.Context, videoId, pageNum, pageSize int64) ([]*model.CommentDetail, error) {
	list := make([]*model.CommentDetail, 0)
	err := DB.WithContext(ctx).Model(&model.Comment{}).
		Select("comments.*, users.user_name as owner_name, users.avatar_url as owner_avatar").
		Joins("left join users on users.user_id = comments.user_id").
		Where("comments.video_id = ?", videoId).
		Order("comments.created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).
		Limit(int(pageSize)).
		Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func GetCommentDetail(ctx context.Context, commentId int64) (*model.CommentDetail, error) {
	detail := &model.CommentDetail{}
	err := DB.WithContext(ctx).Model(&model.Comment{}).
		Select("comments.*, users.user_name as owner_name, users.avatar_url as owner_avatar").
		Joins("left join users on users.user_id = comments.user_id").
		Where("comments.comment_id = ?", commentId).
		First(detail).Error
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// ---- transaction-scoped operations ----

func GetCommentInfoTx(tx *gorm.DB, commentId int64) (*model.Comment, error) {
	comment := &model.Comment{}
	if err := tx.Model(&model.Comment{}).Where("comment_id = ?", commentId).First(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func GetChildCommentCountTx(tx *gorm.DB, commentId int64) (int64, error) {
	var count int64
	if err := tx.Model(&model.Comment{}).Where("parent_id = ?", commentId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CollectDescendantIDs walks the reply tree below rootId with a
// worklist over the parent_id index, unbounded depth, bounded stack.
// Must run inside the deleting transaction so concurrent replies cannot
// slip under the cascade.
func CollectDescendantIDs(tx *gorm.DB, rootId int64) ([]int64, error) {
	descendants := make([]int64, 0)
	frontier := []int64{rootId}

	for len(frontier) > 0 {
		children := make([]int64, 0)
		if err := tx.Model(&model.Comment{}).Where("parent_id IN ?", frontier).
			Select("comment_id").Scan(&children).Error; err != nil {
			return nil, err
		}
		descendants = append(descendants, children...)
		frontier = children
	}

	return descendants, nil
}

func DeleteCommentsTx(tx *gorm.DB, commentIds []int64) error {
	if len(commentIds) == 0 {
		return nil
	}
	return tx.Where("comment_id IN ?", commentIds).Delete(&model.Comment{}).Error
}

// SoftDeleteCommentTx flags the comment and replaces its content with
// the tombstone, keeping the subtree anchored.
func SoftDeleteCommentTx(tx *gorm.DB, commentId int64, tombstone string) error {
	return tx.Model(&model.Comment{}).Where("comment_id = ?", commentId).
		Updates(map[string]interface{}{"is_deleted": true, "content": tombstone}).Error
}
