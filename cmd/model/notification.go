package model

import "time"

// Notification rows are written only by the fan-out service, one per
// (event, subscriber). They expire passively after the retention window
// and are never hard-deleted by application code.
type Notification struct {
	NotificationId int64     `json:"notification_id" gorm:"primaryKey"`
	ReceiverId     int64     `json:"receiver" gorm:"index"`
	SenderId       int64     `json:"sender"`
	Type           string    `json:"type" gorm:"index"` // LIKE COMMENT SUBSCRIBE UPLOAD POST
	EntityId       int64     `json:"entity_id"`
	EntityType     string    `json:"entity_type"` // VIDEO COMMENT CHANNEL POST
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Thumbnail      string    `json:"thumbnail"`
	SenderAvatar   string    `json:"sender_avatar"`
	IsRead         bool      `json:"is_read" gorm:"index"`
	CreatedAt      time.Time `json:"created_at"`
}
