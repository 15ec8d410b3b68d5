package jwt

import (
	"context"
	"time"

	"ViewTube.com/config"
	"ViewTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	hertzutils "github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	hjwt "github.com/hertz-contrib/jwt"
)

const IdentityKey = "user_id"

var AuthMiddleware *hjwt.HertzJWTMiddleware

// Authenticator verifies login credentials and returns the user id.
type Authenticator func(ctx context.Context, userName, password string) (int64, error)

type loginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// Init builds the access-token middleware. The token is read from the
// Authorization header or, for websocket handshakes, the token query
// parameter.
func Init(authenticate Authenticator) {
	expire := time.Duration(config.ConfigInfo.Jwt.ExpireHours) * time.Hour
	if expire <= 0 {
		expire = 24 * time.Hour
	}

	var err error
	AuthMiddleware, err = hjwt.New(&hjwt.HertzJWTMiddleware{
		Realm:         "ViewTube",
		Key:           []byte(config.ConfigInfo.Jwt.AccessSecret),
		Timeout:       expire,
		MaxRefresh:    expire,
		IdentityKey:   IdentityKey,
		TokenLookup:   "header: Authorization, query: token",
		TokenHeadName: "Bearer",
		PayloadFunc: func(data interface{}) hjwt.MapClaims {
			return hjwt.MapClaims{IdentityKey: data}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := hjwt.ExtractClaims(ctx, c)
			return utils.Transfer(claims[IdentityKey])
		},
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var req loginRequest
			if err := c.BindAndValidate(&req); err != nil {
				return nil, hjwt.ErrMissingLoginValues
			}
			userId, err := authenticate(ctx, req.UserName, req.Password)
			if err != nil {
				return nil, err
			}
			return userId, nil
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.JSON(consts.StatusOK, hertzutils.H{
				"code":   0,
				"token":  token,
				"expire": expire.Format(time.RFC3339),
			})
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, hertzutils.H{
				"code":    code,
				"message": message,
			})
		},
	})
	if err != nil {
		panic(err)
	}
}

// GetUserId reads the authenticated user id set by the middleware.
// Zero means no authenticated identity on this request.
func GetUserId(ctx context.Context, c *app.RequestContext) int64 {
	if value, ok := c.Get(IdentityKey); ok {
		if userId := utils.Transfer(value); userId > 0 {
			return userId
		}
	}
	claims := hjwt.ExtractClaims(ctx, c)
	value, ok := claims[IdentityKey]
	if !ok {
		return 0
	}
	userId := utils.Transfer(value)
	if userId < 0 {
		return 0
	}
	return userId
}

// IsAccessTokenAvailable parses and validates the token without
// aborting, caching the identity on the request context on success.
func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	claims, err := AuthMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok || int64(exp) < time.Now().Unix() {
		return false
	}
	c.Set(IdentityKey, utils.Transfer(claims[IdentityKey]))
	return true
}
