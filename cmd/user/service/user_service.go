package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"ViewTube.com/cmd/model"
	"ViewTube.com/cmd/user/dal/db"
	"ViewTube.com/pkg/constants"
	"ViewTube.com/pkg/errno"
	"ViewTube.com/pkg/utils"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	ctx context.Context
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx}
}

type RegisterRequest struct {
	UserName string `json:"user_name"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// Register creates a new account with a bcrypt-hashed password.
func (service *UserService) Register(ctx context.Context, req *RegisterRequest) (*model.User, error) {
	userName := strings.TrimSpace(req.UserName)
	if userName == "" || req.Password == "" {
		return nil, errno.RequestErr.WithMessage("Username and password are required")
	}

	existing, err := db.GetUserByName(ctx, userName)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to look up username")
	}
	if existing != nil {
		return nil, errno.ConflictErr.WithMessage("Username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to hash password")
	}

	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserId:    utils.GenerateID(),
		UserName:  userName,
		FullName:  strings.TrimSpace(req.FullName),
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateUser(ctx, user); err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to create user")
	}
	return user, nil
}

// CheckUser verifies login credentials and returns the account. Used by
// the token middleware's authenticator.
func (service *UserService) CheckUser(ctx context.Context, req *LoginRequest) (*model.User, error) {
	user, err := db.GetUserByName(ctx, strings.TrimSpace(req.UserName))
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "Failed to look up user")
	}
	if user == nil {
		return nil, errno.RequestErr.WithMessage("Invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errno.RequestErr.WithMessage("Invalid username or password")
	}
	return user, nil
}

// GetUser resolves one account's public profile.
func (service *UserService) GetUser(ctx context.Context, userId int64) (*model.User, error) {
	user, err := db.GetUserInfo(ctx, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("User not found")
		}
		return nil, pkgerrors.WithMessage(err, "Failed to load user")
	}
	return user, nil
}
