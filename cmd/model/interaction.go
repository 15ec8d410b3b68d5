package model

type Comment struct {
	CommentId int64  `json:"comment_id" gorm:"primaryKey"`
	VideoId   int64  `json:"video_id" gorm:"index"`
	UserId    int64  `json:"user_id"`
	ParentId  int64  `json:"parent_id" gorm:"index"` // 0 = top level comment
	Content   string `json:"content"`
	Likes     int64  `json:"likes"`
	Dislikes  int64  `json:"dislikes"`
	IsDeleted bool   `json:"is_deleted"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Reaction holds exactly one of VideoId/CommentId. At most one row may
// exist per (user, target) pair; the engine enforces this inside its
// transaction since there is no unique constraint.
type Reaction struct {
	ReactionId int64  `json:"reaction_id" gorm:"primaryKey"`
	VideoId    int64  `json:"video_id" gorm:"index"`
	CommentId  int64  `json:"comment_id" gorm:"index"`
	UserId     int64  `json:"user_id"`
	Kind       string `json:"reaction"` // "like" or "dislike"
	CreatedAt  string `json:"created_at"`
}

// CommentDetail is the listing projection joining the author.
type CommentDetail struct {
	Comment
	OwnerName   string `json:"owner_name"`
	OwnerAvatar string `json:"owner_avatar"`
}
