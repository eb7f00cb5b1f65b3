package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Maca31/IFPhub/internal/model"
)

// CommentRepository is the comments data-access interface.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	List(ctx context.Context) ([]model.Comment, error)
	ListByEntity(ctx context.Context, entityType string, entityID int64) ([]model.Comment, error)
}

type commentRepo struct {
	db *gorm.DB
}

// NewCommentRepo creates the GORM-backed CommentRepository.
func NewCommentRepo(db *gorm.DB) CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepo) List(ctx context.Context) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepo) ListByEntity(ctx context.Context, entityType string, entityID int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
