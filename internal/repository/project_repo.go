package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Maca31/IFPhub/internal/model"
)

// ProjectRepository is the projects data-access interface.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	UpdateCoverURL(ctx context.Context, id int64, url string) error
}

type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepo creates the GORM-backed ProjectRepository.
func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Owner").
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Owner").
		Where("visibility = ?", model.VisibilityPublic).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepo) UpdateCoverURL(ctx context.Context, id int64, url string) error {
	return r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("id = ?", id).
		Update("cover_url", url).Error
}
