package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Maca31/IFPhub/internal/model"
	"github.com/Maca31/IFPhub/internal/repository"
)

// CourseService serves the course catalog.
type CourseService interface {
	List(ctx context.Context) ([]model.Course, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService creates the CourseService.
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("listing courses", zap.Error(err))
		return nil, err
	}
	return courses, nil
}
