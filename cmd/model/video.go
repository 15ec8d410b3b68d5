package model

type Video struct {
	VideoId      int64  `json:"video_id" gorm:"primaryKey"`
	UserId       int64  `json:"user_id" gorm:"index"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailUrl string `json:"thumbnail_url"`
	Category     string `json:"category"`
	Duration     string `json:"duration"`
	IsPublished  bool   `json:"is_published"`
	VisitCount   int64  `json:"views"`
	// Denormalized counters. Must stay equal to the count of reaction
	// rows of each kind referencing this video.
	Likes     int64  `json:"likes"`
	Dislikes  int64  `json:"dislike"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// View dedupes visit counting per user.
type View struct {
	ViewId    int64  `json:"view_id" gorm:"primaryKey"`
	VideoId   int64  `json:"video_id" gorm:"index"`
	UserId    int64  `json:"user_id"`
	CreatedAt string `json:"created_at"`
}
