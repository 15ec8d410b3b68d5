package router

import (
	"context"

	interaction "ViewTube.com/cmd/api/handlers/interaction"
	notification "ViewTube.com/cmd/api/handlers/notification"
	relation "ViewTube.com/cmd/api/handlers/relation"
	user "ViewTube.com/cmd/api/handlers/user"
	video "ViewTube.com/cmd/api/handlers/video"
	wshandler "ViewTube.com/cmd/api/handlers/ws"
	"ViewTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// optionalAuth resolves the caller identity when a token is present but
// lets anonymous requests through.
func optionalAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		jwt.IsAccessTokenAvailable(ctx, c)
		c.Next(ctx)
	}
}

// Register wires every route. Mutation routes sit behind the access
// token middleware; read routes that personalize their response use the
// optional variant.
func Register(h *server.Hertz) {
	auth := jwt.AuthMiddleware.MiddlewareFunc()

	v1 := h.Group("/v1")

	userGroup := v1.Group("/user")
	userGroup.POST("/register", user.Register)
	userGroup.POST("/login", jwt.AuthMiddleware.LoginHandler)
	userGroup.GET("/:user_id", user.GetUserInfo)

	commentGroup := v1.Group("/comment")
	commentGroup.GET("/list", interaction.ListComments)
	commentGroup.POST("/create", auth, interaction.CreateComment)
	commentGroup.POST("/update", auth, interaction.UpdateComment)
	commentGroup.POST("/delete", auth, interaction.DeleteComment)

	reactionGroup := v1.Group("/reaction", auth)
	reactionGroup.POST("/action", interaction.ReactionAction)
	reactionGroup.GET("/status", interaction.ReactionStatus)
	reactionGroup.GET("/liked", interaction.GetLikedVideos)

	relationGroup := v1.Group("/relation", auth)
	relationGroup.POST("/action", relation.ToggleSubscription)
	relationGroup.GET("/status", relation.SubscriptionStatus)
	relationGroup.GET("/following", relation.GetSubscribedChannels)

	notificationGroup := v1.Group("/notification", auth)
	notificationGroup.GET("/list", notification.ListNotifications)
	notificationGroup.POST("/read", notification.MarkNotificationRead)

	videoGroup := v1.Group("/video")
	videoGroup.POST("/publish", auth, video.PublishVideo)
	videoGroup.GET("/get", optionalAuth(), video.GetVideo)
	videoGroup.GET("/list", video.ListUserVideos)

	h.GET("/ws", wshandler.Auth(), wshandler.Handler)
}
