package main

import (
	"context"
	"fmt"

	interactionhandlers "ViewTube.com/cmd/api/handlers/interaction"
	notificationhandlers "ViewTube.com/cmd/api/handlers/notification"
	relationhandlers "ViewTube.com/cmd/api/handlers/relation"
	videohandlers "ViewTube.com/cmd/api/handlers/video"
	wshandlers "ViewTube.com/cmd/api/handlers/ws"
	"ViewTube.com/cmd/api/router"
	interactiondb "ViewTube.com/cmd/interaction/dal/db"
	"ViewTube.com/cmd/interaction/infras/redis"
	notifydb "ViewTube.com/cmd/notify/dal/db"
	notifyservice "ViewTube.com/cmd/notify/service"
	relationdb "ViewTube.com/cmd/relation/dal/db"
	userdb "ViewTube.com/cmd/user/dal/db"
	userservice "ViewTube.com/cmd/user/service"
	videodb "ViewTube.com/cmd/video/dal/db"
	"ViewTube.com/config"
	"ViewTube.com/pkg/constants"
	"ViewTube.com/pkg/errno"
	"ViewTube.com/pkg/jwt"
	"ViewTube.com/pkg/mq"
	"ViewTube.com/pkg/utils"
	"ViewTube.com/pkg/ws"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	config.Init()
	if err := utils.InitSnowflake(1, 1); err != nil {
		logrus.Fatalf("Failed to init snowflake: %v", err)
	}

	interactiondb.Init()
	userdb.Init()
	relationdb.Init()
	notifydb.Init()
	videodb.Init()
	redis.Load()

	hub := ws.NewHub()

	producer, err := mq.NewProducer(utils.GetRabbitMqUrl())
	if err != nil {
		logrus.Fatalf("Failed to connect producer to RabbitMQ: %v", err)
	}
	defer producer.Close()

	consumer, err := mq.NewConsumer(utils.GetRabbitMqUrl())
	if err != nil {
		logrus.Fatalf("Failed to connect consumer to RabbitMQ: %v", err)
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := notifyservice.NewNotifyService(ctx, hub)
	if err := consumer.ConsumeNotificationEvents(ctx, notifier); err != nil {
		logrus.Fatalf("Failed to start notification consumer: %v", err)
	}
	if err := consumer.ConsumeVideoPublishEvents(ctx, notifier); err != nil {
		logrus.Fatalf("Failed to start video publish consumer: %v", err)
	}
	notifier.StartRetentionLoop(ctx)

	jwt.Init(func(ctx context.Context, userName, password string) (int64, error) {
		user, err := userservice.NewUserService(ctx).CheckUser(ctx, &userservice.LoginRequest{
			UserName: userName,
			Password: password,
		})
		if err != nil {
			return 0, err
		}
		return user.UserId, nil
	})

	interactionhandlers.Init(hub, producer)
	relationhandlers.Init(hub, producer)
	notificationhandlers.Init(hub)
	videohandlers.Init(producer)
	wshandlers.Init(hub)

	addr := config.ConfigInfo.Server.Addr
	if addr == "" {
		addr = constants.ApiServiceAddr
	}

	h := server.New(
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
	)
	h.NoHijackConnPool = true

	h.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	h.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErr.ErrCode,
				"message": fmt.Sprintf("internal error: %v", err),
			})
		})))

	router.Register(h)

	h.Spin()
}
