package service

import (
	"encoding/json"
	"sync"
	"testing"

	"ViewTube.com/pkg/constants"
	"ViewTube.com/pkg/ws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeConn) events(t *testing.T) []ws.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ws.Event, 0, len(f.messages))
	for _, raw := range f.messages {
		var event ws.Event
		require.NoError(t, json.Unmarshal(raw, &event))
		out = append(out, event)
	}
	return out
}

func TestSubscriptionAction(t *testing.T) {
	assert.Equal(t, constants.ActionIncrement, subscriptionAction(constants.ActionSubscribe))
	assert.Equal(t, constants.ActionDecrement, subscriptionAction(constants.ActionUnsubscribe))
}

// The channel hears who moved; the subscriber's own feed hears which
// way their subscription count went.
func TestPublishToggleEventsActionPairing(t *testing.T) {
	hub := ws.NewHub()
	channelConn := &fakeConn{}
	subscriberConn := &fakeConn{}
	hub.Register(channelConn, 10)
	hub.Register(subscriberConn, 20)

	service := &RelationService{hub: hub}

	service.publishToggleEvents(20, 10, constants.ActionSubscribe)
	service.publishToggleEvents(20, 10, constants.ActionUnsubscribe)

	channelEvents := channelConn.events(t)
	require.Len(t, channelEvents, 2)
	for _, event := range channelEvents {
		assert.Equal(t, "subscriber:update", event.Event)
	}
	channelData := channelEvents[0].Data.(map[string]interface{})
	assert.Equal(t, constants.ActionSubscribe, channelData["action"])
	assert.Equal(t, constants.ActionUnsubscribe,
		channelEvents[1].Data.(map[string]interface{})["action"])

	subscriberEvents := subscriberConn.events(t)
	require.Len(t, subscriberEvents, 2)
	for _, event := range subscriberEvents {
		assert.Equal(t, "subscription:update", event.Event)
	}
	assert.Equal(t, constants.ActionIncrement,
		subscriberEvents[0].Data.(map[string]interface{})["action"])
	assert.Equal(t, constants.ActionDecrement,
		subscriberEvents[1].Data.(map[string]interface{})["action"])
}
