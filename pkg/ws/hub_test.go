package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	failing  bool
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errors.New("write failed")
	}
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeConn) received() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.messages))
	copy(out, f.messages)
	return out
}

func TestRegisterJoinsPersonalRooms(t *testing.T) {
	hub := NewHub()
	client := hub.Register(&fakeConn{}, 7)

	assert.Equal(t, 1, hub.RoomSize(UserRoom(7)))
	assert.Equal(t, 1, hub.RoomSize(NotificationRoom(7)))
	assert.Equal(t, int64(7), client.UserId())
}

func TestPublishReachesOnlyRoomMembers(t *testing.T) {
	hub := NewHub()
	watcher := &fakeConn{}
	bystander := &fakeConn{}

	watcherClient := hub.Register(watcher, 1)
	hub.Register(bystander, 2)
	watcherClient.JoinVideo(42)

	hub.Publish(VideoRoom(42), "newComment", map[string]interface{}{"commentId": 9})

	require.Len(t, watcher.received(), 1)
	assert.Empty(t, bystander.received())

	var envelope Event
	require.NoError(t, json.Unmarshal(watcher.received()[0], &envelope))
	assert.Equal(t, "newComment", envelope.Event)
}

func TestPublishToEmptyRoomIsNoop(t *testing.T) {
	hub := NewHub()
	hub.Publish(VideoRoom(1), "newComment", nil)
	assert.Equal(t, 0, hub.RoomSize(VideoRoom(1)))
}

func TestLeaveVideoStopsDelivery(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}
	client := hub.Register(conn, 3)

	client.JoinVideo(5)
	client.LeaveVideo(5)
	hub.Publish(VideoRoom(5), "update-comment", map[string]interface{}{"commentId": 1})

	assert.Empty(t, conn.received())
}

func TestUnregisterRemovesEveryMembership(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}
	client := hub.Register(conn, 4)
	client.JoinVideo(10)
	client.JoinVideo(11)

	hub.Unregister(client)

	assert.Equal(t, 0, hub.RoomSize(UserRoom(4)))
	assert.Equal(t, 0, hub.RoomSize(NotificationRoom(4)))
	assert.Equal(t, 0, hub.RoomSize(VideoRoom(10)))
	assert.Equal(t, 0, hub.RoomSize(VideoRoom(11)))

	hub.Publish(UserRoom(4), "subscriber:update", nil)
	assert.Empty(t, conn.received())
}

func TestFailedWriteDoesNotStopOthers(t *testing.T) {
	hub := NewHub()
	broken := &fakeConn{failing: true}
	healthy := &fakeConn{}

	brokenClient := hub.Register(broken, 1)
	healthyClient := hub.Register(healthy, 2)
	brokenClient.JoinVideo(8)
	healthyClient.JoinVideo(8)

	hub.Publish(VideoRoom(8), "hard-delete-comment", map[string]interface{}{"commentId": 3})

	assert.Len(t, healthy.received(), 1)
}

func TestConcurrentJoinAndPublish(t *testing.T) {
	hub := NewHub()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(userId int64) {
			defer wg.Done()
			client := hub.Register(&fakeConn{}, userId)
			client.JoinVideo(99)
			hub.Publish(VideoRoom(99), "newComment", map[string]interface{}{"n": userId})
			hub.Unregister(client)
		}(int64(i + 1))
	}
	wg.Wait()

	assert.Equal(t, 0, hub.RoomSize(VideoRoom(99)))
}
