package model

// Subscription links a subscriber to a channel owner. Read-only from
// the interaction core; used to resolve the fan-out audience.
type Subscription struct {
	SubscriptionId int64  `json:"subscription_id" gorm:"primaryKey"`
	SubscriberId   int64  `json:"subscriber_id" gorm:"index"`
	ChannelId      int64  `json:"channel_id" gorm:"index"`
	CreatedAt      string `json:"created_at"`
}
