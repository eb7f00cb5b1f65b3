package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Maca31/IFPhub/internal/model"
)

// AppointmentRepository is the appointments data-access interface.
//
// Create relies on the unique index over (day, start_time): a duplicate
// booking comes back as gorm.ErrDuplicatedKey, which is the authoritative
// conflict signal for the whole scheduling feature.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	GetByID(ctx context.Context, id int64) (*model.Appointment, error)
	List(ctx context.Context, day string) ([]model.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

type appointmentRepo struct {
	db *gorm.DB
}

// NewAppointmentRepo creates the GORM-backed AppointmentRepository.
func NewAppointmentRepo(db *gorm.DB) AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepo) GetByID(ctx context.Context, id int64) (*model.Appointment, error) {
	var appointment model.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// List returns appointments, optionally filtered to one day.
func (r *appointmentRepo) List(ctx context.Context, day string) ([]model.Appointment, error) {
	var appointments []model.Appointment
	db := r.db.WithContext(ctx)
	if day != "" {
		db = db.Where("day = ?", day)
	}
	err := db.Order("day ASC, start_time ASC").Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Appointment{}, id).Error
}
