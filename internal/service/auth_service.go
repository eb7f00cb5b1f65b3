package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/model"
	"github.com/Maca31/IFPhub/internal/repository"
	"github.com/Maca31/IFPhub/pkg/jwt"
	"github.com/Maca31/IFPhub/pkg/redis"
)

// ── Auth module errors ──

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCourseNotFound     = errors.New("course not found")
)

// AuthService handles registration, login and logout.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*model.User, *dto.TokenPair, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	GetUser(ctx context.Context, userID int64) (*model.User, error)
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates the AuthService.
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error) {
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.repo.Course.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		PasswordHash:       string(hash),
		CourseID:           &req.CourseID,
		AllowNotifications: true,
	}
	if req.BirthDate != "" {
		user.BirthDate = &req.BirthDate
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("creating user", zap.Error(err))
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*model.User, *dto.TokenPair, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	access, err := s.jwtMgr.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, nil, err
	}
	refresh, err := s.jwtMgr.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, &dto.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Logout revokes the presented access token via the Redis blacklist.
// Without Redis, logout is a client-side-only operation.
func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return s.rdb.BlacklistToken(ctx, claims.ID, ttl)
}

func (s *authService) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
