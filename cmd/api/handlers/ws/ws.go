package ws

import (
	"context"
	"encoding/json"

	"ViewTube.com/pkg/jwt"
	wshub "ViewTube.com/pkg/ws"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/websocket"
)

var hub *wshub.Hub

func Init(h *wshub.Hub) {
	hub = h
}

var upgrader = websocket.HertzUpgrader{
	CheckOrigin: func(ctx *app.RequestContext) bool {
		return true
	},
}

type inboundMessage struct {
	Event string `json:"event"`
	Data  struct {
		VideoId int64 `json:"videoId"`
	} `json:"data"`
}

// Auth rejects the handshake before the upgrade when no valid token is
// present.
func Auth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !jwt.IsAccessTokenAvailable(ctx, c) {
			c.AbortWithStatus(consts.StatusUnauthorized)
			return
		}
		c.Next(ctx)
	}
}

// Handler upgrades the authenticated connection, registers it on the
// hub and serves join-video and leave-video requests until the peer
// disconnects.
func Handler(ctx context.Context, c *app.RequestContext) {
	userId, exists := c.Get(jwt.IdentityKey)
	if !exists {
		c.AbortWithStatus(consts.StatusUnauthorized)
		return
	}
	uid, ok := userId.(int64)
	if !ok || uid <= 0 {
		c.AbortWithStatus(consts.StatusUnauthorized)
		return
	}

	err := upgrader.Upgrade(c, func(conn *websocket.Conn) {
		client := hub.Register(conn, uid)
		defer hub.Unregister(client)

		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var msg inboundMessage
			if err := json.Unmarshal(message, &msg); err != nil {
				hlog.Warnf("Failed to parse message from user %d: %v", uid, err)
				continue
			}

			switch msg.Event {
			case "join-video":
				if msg.Data.VideoId != 0 {
					client.JoinVideo(msg.Data.VideoId)
				}
			case "leave-video":
				if msg.Data.VideoId != 0 {
					client.LeaveVideo(msg.Data.VideoId)
				}
			default:
				hlog.Infof("Unhandled message event %q from user %d", msg.Event, uid)
			}
		}
	})
	if err != nil {
		hlog.Errorf("Failed to upgrade websocket connection: %v", err)
	}
}
