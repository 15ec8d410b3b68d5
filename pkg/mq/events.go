package mq

// NotificationEvent targets a single receiver: likes, replies and
// subscription notices resolved by the producer side.
type NotificationEvent struct {
	ReceiverID   int64  `json:"receiver_id"`
	SenderID     int64  `json:"sender_id"`
	Type         string `json:"type"` // LIKE, COMMENT, SUBSCRIBE
	EntityID     int64  `json:"entity_id"`
	EntityType   string `json:"entity_type"` // VIDEO, COMMENT, CHANNEL
	Title        string `json:"title"`
	Message      string `json:"message"`
	Thumbnail    string `json:"thumbnail"`
	SenderAvatar string `json:"sender_avatar"`
	Timestamp    int64  `json:"timestamp"`
	EventID      string `json:"event_id"`
}

// VideoPublishEvent is fanned out by the consumer to every subscriber
// of the publishing channel.
type VideoPublishEvent struct {
	SenderID     int64  `json:"sender_id"`
	VideoID      int64  `json:"video_id"`
	Title        string `json:"title"`
	Message      string `json:"message"`
	Thumbnail    string `json:"thumbnail"`
	SenderAvatar string `json:"sender_avatar"`
	Timestamp    int64  `json:"timestamp"`
	EventID      string `json:"event_id"`
}

const (
	NotificationEventExchange = "notification_events"
	VideoPublishExchange      = "video_publish_events"

	NotificationEventQueue = "notification_event_queue"
	VideoPublishQueue      = "video_publish_queue"
)
