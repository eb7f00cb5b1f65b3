package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/model"
	"github.com/Maca31/IFPhub/internal/repository"
	"github.com/Maca31/IFPhub/pkg/hashid"
	"github.com/Maca31/IFPhub/pkg/storage"
)

// ── Users module errors ──

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidImageKind = errors.New("image kind must be avatar or header")
)

// Profile image kinds.
const (
	ImageKindAvatar = "avatar"
	ImageKindHeader = "header"
)

// UserService handles profiles.
type UserService interface {
	GetByID(ctx context.Context, id int64) (*dto.UserResponse, error)
	GetBasicByID(ctx context.Context, id int64) (*dto.UserBasicResponse, error)
	List(ctx context.Context) ([]dto.UserBasicResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	UploadImage(ctx context.Context, id int64, kind, filename, contentType string, file io.Reader) (string, error)
}

type userService struct {
	repo   *repository.Repository
	store  storage.Uploader
	codec  *hashid.Codec
	logger *zap.Logger
}

// NewUserService creates the UserService.
func NewUserService(repo *repository.Repository, store storage.Uploader, codec *hashid.Codec, logger *zap.Logger) UserService {
	return &userService{repo: repo, store: store, codec: codec, logger: logger}
}

func (s *userService) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("loading user", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return s.toUserResponse(user), nil
}

func (s *userService) GetBasicByID(ctx context.Context, id int64) (*dto.UserBasicResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.toUserBasic(user), nil
}

func (s *userService) List(ctx context.Context) ([]dto.UserBasicResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("listing users", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserBasicResponse, 0, len(users))
	for i := range users {
		result = append(result, *s.toUserBasic(&users[i]))
	}
	return result, nil
}

func (s *userService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if req.HeaderURL != nil {
		user.HeaderURL = req.HeaderURL
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.AllowNotifications != nil {
		user.AllowNotifications = *req.AllowNotifications
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("updating user", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return s.toUserResponse(user), nil
}

// UploadImage stores an avatar or header image under <id>/<kind>.<ext> and
// persists the public URL on the matching column.
func (s *userService) UploadImage(ctx context.Context, id int64, kind, filename, contentType string, file io.Reader) (string, error) {
	if kind != ImageKindAvatar && kind != ImageKindHeader {
		return "", ErrInvalidImageKind
	}
	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	objectPath := fmt.Sprintf("%d/%s.%s", id, kind, ext)

	if err := s.store.Upload(ctx, storage.BucketUsers, objectPath, contentType, file); err != nil {
		s.logger.Error("uploading profile image", zap.Int64("id", id), zap.Error(err))
		return "", err
	}

	url := s.store.PublicURL(storage.BucketUsers, objectPath)

	column := "avatar_url"
	if kind == ImageKindHeader {
		column = "header_url"
	}
	if err := s.repo.User.UpdateImageURL(ctx, id, column, url); err != nil {
		s.logger.Error("persisting image url", zap.Int64("id", id), zap.Error(err))
		return "", err
	}

	return url, nil
}

// ── Internal helpers ──

func (s *userService) toUserResponse(user *model.User) *dto.UserResponse {
	publicID, _ := s.codec.Encode(hashid.KindUser, user.ID)

	resp := &dto.UserResponse{
		ID:                 user.ID,
		PublicID:           publicID,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Email:              user.Email,
		BirthDate:          user.BirthDate,
		CourseID:           user.CourseID,
		AvatarURL:          user.AvatarURL,
		HeaderURL:          user.HeaderURL,
		Phone:              user.Phone,
		Bio:                user.Bio,
		Gender:             user.Gender,
		AllowNotifications: user.AllowNotifications,
	}
	if user.Course != nil {
		resp.CourseName = user.Course.Name
	}
	return resp
}

func (s *userService) toUserBasic(user *model.User) *dto.UserBasicResponse {
	publicID, _ := s.codec.Encode(hashid.KindUser, user.ID)
	return &dto.UserBasicResponse{
		ID:        user.ID,
		PublicID:  publicID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		AvatarURL: user.AvatarURL,
	}
}
