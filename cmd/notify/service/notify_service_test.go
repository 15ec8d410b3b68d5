package service

import (
	"testing"
	"time"

	"ViewTube.com/cmd/model"
	"ViewTube.com/pkg/constants"
	"github.com/stretchr/testify/assert"
)

// Feed consumers key on these exact field names.
func TestNotificationPayloadShape(t *testing.T) {
	payload := notificationPayload(&model.Notification{
		NotificationId: 1,
		ReceiverId:     2,
		SenderId:       3,
		Type:           constants.NotifyTypeUpload,
		EntityId:       4,
		EntityType:     constants.EntityTypeVideo,
		Title:          "a title",
		Message:        "uploaded a new video",
		Thumbnail:      "thumb.jpg",
		SenderAvatar:   "avatar.jpg",
		CreatedAt:      time.Now(),
	})

	for _, key := range []string{
		"message", "sender", "type", "entityId", "entityType",
		"title", "thumbnail", "senderAvatar", "isRead",
	} {
		assert.Contains(t, payload, key)
	}
	assert.Equal(t, false, payload["isRead"])
	assert.Equal(t, int64(3), payload["sender"])
	assert.Equal(t, constants.NotifyTypeUpload, payload["type"])
	assert.NotContains(t, payload, "receiver", "receiver is implied by the room")
}
