package handlers

import (
	"context"

	interaction "ViewTube.com/cmd/api/handlers/interaction"
	"ViewTube.com/cmd/user/service"
	"ViewTube.com/pkg/errno"
	"ViewTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type RegisterParam struct {
	UserName string `form:"user_name" json:"user_name"`
	FullName string `form:"full_name" json:"full_name"`
	Password string `form:"password" json:"password"`
}

func Register(ctx context.Context, c *app.RequestContext) {
	var param RegisterParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	user, err := service.NewUserService(ctx).Register(ctx, &service.RegisterRequest{
		UserName: param.UserName,
		FullName: param.FullName,
		Password: param.Password,
	})
	if err != nil {
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	interaction.SendResponse(c, errno.Success, user)
}

func GetUserInfo(ctx context.Context, c *app.RequestContext) {
	userId, err := utils.ConvertStringToInt64(c.Param("user_id"))
	if err != nil {
		interaction.SendResponse(c, errno.RequestErr.WithMessage("Invalid user id"), nil)
		return
	}

	user, err := service.NewUserService(ctx).GetUser(ctx, userId)
	if err != nil {
		interaction.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	interaction.SendResponse(c, errno.Success, user)
}
