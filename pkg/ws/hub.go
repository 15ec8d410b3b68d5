package ws

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/websocket"
)

// Conn is the write half of a websocket connection. Narrowed to an
// interface so room tests can run without a network.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
}

// Event is the wire envelope for every room broadcast.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

func VideoRoom(videoId int64) string       { return fmt.Sprintf("video_%d", videoId) }
func UserRoom(userId int64) string         { return fmt.Sprintf("user_%d", userId) }
func NotificationRoom(userId int64) string { return fmt.Sprintf("notification_%d", userId) }

// Client is one connected session and the set of rooms it joined.
type Client struct {
	hub    *Hub
	conn   Conn
	userId int64

	writeMu sync.Mutex
	rooms   map[string]struct{}
}

func (c *Client) UserId() int64 { return c.userId }

// JoinVideo subscribes the session to a video room. Personal rooms are
// joined at registration time from the authenticated identity.
func (c *Client) JoinVideo(videoId int64) {
	c.hub.join(c, VideoRoom(videoId))
}

func (c *Client) LeaveVideo(videoId int64) {
	c.hub.leave(c, VideoRoom(videoId))
}

func (c *Client) send(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub maps logical rooms to connected sessions. It is constructed once
// in main and passed by reference to handlers and services; membership
// is mutated only by the owning connection's handshake, join and
// disconnect events.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]struct{})}
}

// Register attaches an authenticated connection and joins its personal
// and notification rooms.
func (h *Hub) Register(conn Conn, userId int64) *Client {
	c := &Client{
		hub:    h,
		conn:   conn,
		userId: userId,
		rooms:  make(map[string]struct{}),
	}
	h.join(c, UserRoom(userId))
	h.join(c, NotificationRoom(userId))
	return c
}

// Unregister removes the session from every room it joined.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room := range c.rooms {
		h.removeLocked(c, room)
	}
}

func (h *Hub) join(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
	c.rooms[room] = struct{}{}
}

func (h *Hub) leave(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c, room)
}

func (h *Hub) removeLocked(c *Client, room string) {
	if members, ok := h.rooms[room]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(c.rooms, room)
}

// RoomSize reports current membership, used by tests and diagnostics.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Publish broadcasts an event to all current members of a room. Best
// effort: a failed write is logged and does not stop the others.
func (h *Hub) Publish(room string, event string, payload interface{}) {
	body, err := json.Marshal(Event{Event: event, Data: payload})
	if err != nil {
		hlog.Errorf("Failed to marshal event %s for room %s: %v", event, room, err)
		return
	}

	h.mu.RLock()
	members := make([]*Client, 0, len(h.rooms[room]))
	for c := range h.rooms[room] {
		members = append(members, c)
	}
	h.mu.RUnlock()

	for _, c := range members {
		if err := c.send(body); err != nil {
			hlog.Warnf("Failed to deliver event %s to user %d: %v", event, c.userId, err)
		}
	}
}
