package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Maca31/IFPhub/internal/model"
)

// OfferRepository is the job-offers data-access interface.
type OfferRepository interface {
	Create(ctx context.Context, offer *model.Offer) error
	List(ctx context.Context) ([]model.Offer, error)
}

type offerRepo struct {
	db *gorm.DB
}

// NewOfferRepo creates the GORM-backed OfferRepository.
func NewOfferRepo(db *gorm.DB) OfferRepository {
	return &offerRepo{db: db}
}

func (r *offerRepo) Create(ctx context.Context, offer *model.Offer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

func (r *offerRepo) List(ctx context.Context) ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at DESC").
		Find(&offers).Error
	return offers, err
}
