package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/model"
	"github.com/Maca31/IFPhub/internal/repository"
	"github.com/Maca31/IFPhub/pkg/hashid"
)

// CommentService handles the project comment feed.
type CommentService interface {
	Add(ctx context.Context, req *dto.AddCommentRequest) (*dto.CommentResponse, error)
	List(ctx context.Context) ([]dto.CommentResponse, error)
}

type commentService struct {
	repo   *repository.Repository
	codec  *hashid.Codec
	logger *zap.Logger
}

// NewCommentService creates the CommentService.
func NewCommentService(repo *repository.Repository, codec *hashid.Codec, logger *zap.Logger) CommentService {
	return &commentService{repo: repo, codec: codec, logger: logger}
}

func (s *commentService) Add(ctx context.Context, req *dto.AddCommentRequest) (*dto.CommentResponse, error) {
	projectID, ok := s.codec.Decode(hashid.KindProject, req.ProjectID)
	if !ok {
		return nil, ErrBadProjectID
	}

	if _, err := s.repo.Project.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		UserID:     req.UserID,
		EntityType: model.CommentEntityProject,
		EntityID:   projectID,
		Body:       req.Body,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.logger.Error("creating comment", zap.Error(err))
		return nil, err
	}
	return toCommentResponse(comment, s.codec), nil
}

func (s *commentService) List(ctx context.Context) ([]dto.CommentResponse, error) {
	comments, err := s.repo.Comment.List(ctx)
	if err != nil {
		s.logger.Error("listing comments", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		result = append(result, *toCommentResponse(&comments[i], s.codec))
	}
	return result, nil
}

func toCommentResponse(comment *model.Comment, codec *hashid.Codec) *dto.CommentResponse {
	resp := &dto.CommentResponse{
		ID:        comment.ID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
	if comment.User != nil {
		publicID, _ := codec.Encode(hashid.KindUser, comment.User.ID)
		resp.User = &dto.UserBasicResponse{
			ID:        comment.User.ID,
			PublicID:  publicID,
			FirstName: comment.User.FirstName,
			LastName:  comment.User.LastName,
			AvatarURL: comment.User.AvatarURL,
		}
	}
	return resp
}
