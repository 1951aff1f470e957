package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/clinica/appointments-api/internal/domain/appointment"
	"github.com/clinica/appointments-api/internal/httperr"
	"github.com/clinica/appointments-api/internal/models"
)

type AppointmentGormRepository struct {
	db      *gorm.DB
	centers *CenterGormRepository
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db, centers: NewCenterGormRepository(db)}
}

// --------------------------------------------------
// Center
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCenterByName(
	ctx context.Context,
	name string,
) (*models.Center, error) {
	return r.centers.GetCenterByName(ctx, name)
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) FindActiveBySlot(
	ctx context.Context,
	slot domain.Slot,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where(
			"day = ? AND hour = ? AND center = ? AND cancel = ?",
			slot.Day, slot.Hour, slot.Center, models.Active,
		).
		First(&ap).Error
	if err != nil {
		return nil, notFound(err, httperr.CodeAppointmentNotFound)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ap).Error; err != nil {
		return nil, notFound(err, httperr.CodeAppointmentNotFound)
	}
	return &ap, nil
}

// --------------------------------------------------
// Appointment (Cancel)
// --------------------------------------------------

// CancelAppointment only touches active rows, so two concurrent cancels of
// the same appointment cannot both succeed.
func (r *AppointmentGormRepository) CancelAppointment(
	ctx context.Context,
	id string,
	at time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND cancel = ?", id, models.Active).
		Updates(map[string]any{
			"cancel":       models.Cancelled,
			"cancelled_at": at,
		})
	if res.Error != nil {
		return fmt.Errorf("cancel appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActive(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Where("cancel = ?", models.Active)

	if filter.Username != "" {
		q = q.Where("username = ?", filter.Username)
	}
	if filter.Day != "" {
		q = q.Where("day = ?", filter.Day)
	}

	var apps []models.Appointment
	if err := q.Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return apps, nil
}

func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return fmt.Errorf("query: %w", err)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
