package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultLimit = int64(10)
	MaxLimit     = int64(100)

	// Content written over a comment when it is soft deleted so the
	// reply tree below it keeps its anchor.
	DeletedCommentContent = "This comment was deleted"

	MaxCommentLength = 500
	MinCommentLength = 1

	// Max comments per user per minute, enforced through redis.
	CommentRateLimit    = 10
	DuplicateTimeWindow = 300

	ApiServiceAddr = "0.0.0.0:8888"
)

// Reaction kinds persisted on a reaction record.
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// Notification type enum.
const (
	NotifyTypeLike      = "LIKE"
	NotifyTypeComment   = "COMMENT"
	NotifyTypeSubscribe = "SUBSCRIBE"
	NotifyTypeUpload    = "UPLOAD"
	NotifyTypePost      = "POST"
)

// Notification entity type enum.
const (
	EntityTypeVideo   = "VIDEO"
	EntityTypeComment = "COMMENT"
	EntityTypeChannel = "CHANNEL"
	EntityTypePost    = "POST"
)

// Subscription room event actions. The channel side hears
// SUBSCRIBE/UNSUBSCRIBE; the subscriber's own feed hears the counter
// actions INCREMENT/DECREMENT.
const (
	ActionSubscribe   = "SUBSCRIBE"
	ActionUnsubscribe = "UNSUBSCRIBE"
	ActionIncrement   = "INCREMENT"
	ActionDecrement   = "DECREMENT"
)
