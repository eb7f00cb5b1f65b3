package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/model"
	"github.com/Maca31/IFPhub/internal/repository"
	"github.com/Maca31/IFPhub/pkg/hashid"
	"github.com/Maca31/IFPhub/pkg/storage"
)

// ── Projects module errors ──

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrBadProjectID    = errors.New("invalid project id")
)

// ProjectService handles the project showcase.
//
// Public project IDs are always the obfuscated form; GetByPublicID accepts
// only strings minted by the codec's project keyspace.
type ProjectService interface {
	List(ctx context.Context) ([]dto.ProjectResponse, error)
	GetByPublicID(ctx context.Context, publicID string) (*dto.ProjectResponse, error)
	Create(ctx context.Context, form *dto.CreateProjectForm, coverName, coverType string, cover io.Reader) (*dto.CreateProjectResponse, error)
	Comments(ctx context.Context, publicID string) ([]dto.CommentResponse, error)
}

type projectService struct {
	repo   *repository.Repository
	store  storage.Uploader
	codec  *hashid.Codec
	logger *zap.Logger
}

// NewProjectService creates the ProjectService.
func NewProjectService(repo *repository.Repository, store storage.Uploader, codec *hashid.Codec, logger *zap.Logger) ProjectService {
	return &projectService{repo: repo, store: store, codec: codec, logger: logger}
}

func (s *projectService) List(ctx context.Context) ([]dto.ProjectResponse, error) {
	projects, err := s.repo.Project.List(ctx)
	if err != nil {
		s.logger.Error("listing projects", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		result = append(result, *s.toProjectResponse(&projects[i]))
	}
	return result, nil
}

func (s *projectService) GetByPublicID(ctx context.Context, publicID string) (*dto.ProjectResponse, error) {
	id, ok := s.codec.Decode(hashid.KindProject, publicID)
	if !ok {
		return nil, ErrBadProjectID
	}

	project, err := s.repo.Project.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		s.logger.Error("loading project", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return s.toProjectResponse(project), nil
}

// Create persists the project, then uploads the cover (if any) and assigns
// its public URL. Cover upload failures roll nothing back: the project
// exists without a cover, matching the two-step flow of the storage layer.
func (s *projectService) Create(ctx context.Context, form *dto.CreateProjectForm, coverName, coverType string, cover io.Reader) (*dto.CreateProjectResponse, error) {
	if _, err := s.repo.Course.GetByID(ctx, form.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	visibility := form.Visibility
	if visibility == "" {
		visibility = model.VisibilityPublic
	}

	project := &model.Project{
		Title:       form.Title,
		Description: form.Description,
		Visibility:  visibility,
		CourseID:    form.CourseID,
		OwnerID:     form.OwnerID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.Project.Create(ctx, project); err != nil {
		s.logger.Error("creating project", zap.Error(err))
		return nil, err
	}

	resp := &dto.CreateProjectResponse{}
	resp.PublicID, _ = s.codec.Encode(hashid.KindProject, project.ID)

	if cover != nil {
		ext := strings.TrimPrefix(path.Ext(coverName), ".")
		if ext == "" {
			ext = "bin"
		}
		objectPath := fmt.Sprintf("%d/portada.%s", project.ID, ext)

		if err := s.store.Upload(ctx, storage.BucketProjects, objectPath, coverType, cover); err != nil {
			s.logger.Error("uploading project cover", zap.Int64("id", project.ID), zap.Error(err))
			return nil, err
		}

		url := s.store.PublicURL(storage.BucketProjects, objectPath)
		if err := s.repo.Project.UpdateCoverURL(ctx, project.ID, url); err != nil {
			s.logger.Error("assigning project cover", zap.Int64("id", project.ID), zap.Error(err))
			return nil, err
		}
		resp.CoverURL = &url
	}

	return resp, nil
}

func (s *projectService) Comments(ctx context.Context, publicID string) ([]dto.CommentResponse, error) {
	id, ok := s.codec.Decode(hashid.KindProject, publicID)
	if !ok {
		return nil, ErrBadProjectID
	}

	comments, err := s.repo.Comment.ListByEntity(ctx, model.CommentEntityProject, id)
	if err != nil {
		s.logger.Error("listing project comments", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	result := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		result = append(result, *toCommentResponse(&comments[i], s.codec))
	}
	return result, nil
}

// ── Internal helpers ──

func (s *projectService) toProjectResponse(project *model.Project) *dto.ProjectResponse {
	publicID, _ := s.codec.Encode(hashid.KindProject, project.ID)

	resp := &dto.ProjectResponse{
		PublicID:    publicID,
		Title:       project.Title,
		Description: project.Description,
		Visibility:  project.Visibility,
		CoverURL:    project.CoverURL,
		CourseID:    project.CourseID,
		CreatedAt:   project.CreatedAt.Format(time.RFC3339),
	}
	if project.Course != nil {
		resp.CourseName = project.Course.Name
	}
	if project.Owner != nil {
		ownerPublicID, _ := s.codec.Encode(hashid.KindUser, project.Owner.ID)
		resp.Owner = &dto.UserBasicResponse{
			ID:        project.Owner.ID,
			PublicID:  ownerPublicID,
			FirstName: project.Owner.FirstName,
			LastName:  project.Owner.LastName,
			AvatarURL: project.Owner.AvatarURL,
		}
	}
	return resp
}
