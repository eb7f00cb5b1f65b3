package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/model"
	"github.com/Maca31/IFPhub/internal/repository"
	"github.com/Maca31/IFPhub/pkg/hashid"
)

// DefaultCourseID is the seeded catch-all programme.
const DefaultCourseID int64 = 1

// OfferService handles the job board.
type OfferService interface {
	Create(ctx context.Context, req *dto.CreateOfferRequest) (*dto.OfferResponse, error)
	List(ctx context.Context) ([]dto.OfferResponse, error)
}

type offerService struct {
	repo   *repository.Repository
	codec  *hashid.Codec
	logger *zap.Logger
}

// NewOfferService creates the OfferService.
func NewOfferService(repo *repository.Repository, codec *hashid.Codec, logger *zap.Logger) OfferService {
	return &offerService{repo: repo, codec: codec, logger: logger}
}

func (s *offerService) Create(ctx context.Context, req *dto.CreateOfferRequest) (*dto.OfferResponse, error) {
	offer := &model.Offer{
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		CourseID:    DefaultCourseID,
		OwnerID:     req.OwnerID,
		CreatedAt:   time.Now(),
	}
	if req.Deadline != "" {
		deadline := req.Deadline
		offer.Deadline = &deadline
	}

	if err := s.repo.Offer.Create(ctx, offer); err != nil {
		s.logger.Error("creating offer", zap.Error(err))
		return nil, err
	}
	return s.toOfferResponse(offer), nil
}

func (s *offerService) List(ctx context.Context) ([]dto.OfferResponse, error) {
	offers, err := s.repo.Offer.List(ctx)
	if err != nil {
		s.logger.Error("listing offers", zap.Error(err))
		return nil, err
	}

	result := make([]dto.OfferResponse, 0, len(offers))
	for i := range offers {
		result = append(result, *s.toOfferResponse(&offers[i]))
	}
	return result, nil
}

func (s *offerService) toOfferResponse(offer *model.Offer) *dto.OfferResponse {
	resp := &dto.OfferResponse{
		ID:          offer.ID,
		Title:       offer.Title,
		Description: offer.Description,
		Salary:      offer.Salary,
		Deadline:    offer.Deadline,
		CreatedAt:   offer.CreatedAt.Format(time.RFC3339),
	}
	if offer.Owner != nil {
		publicID, _ := s.codec.Encode(hashid.KindUser, offer.Owner.ID)
		resp.Owner = &dto.UserBasicResponse{
			ID:        offer.Owner.ID,
			PublicID:  publicID,
			FirstName: offer.Owner.FirstName,
			LastName:  offer.Owner.LastName,
			AvatarURL: offer.Owner.AvatarURL,
		}
	}
	return resp
}
