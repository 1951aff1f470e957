package appointment

import (
	"context"
	"time"

	"github.com/clinica/appointments-api/internal/models"
)

// ListFilter narrows ListActive. Empty fields do not filter.
type ListFilter struct {
	Username string
	Day      string
}

type Repository interface {
	// -------- Center --------
	GetCenterByName(
		ctx context.Context,
		name string,
	) (*models.Center, error)

	// -------- Appointment (create) --------

	// CreateAppointment must fail with a slot_taken business error when an
	// active appointment already holds the same (day, hour, center).
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (lookup) --------
	FindActiveBySlot(
		ctx context.Context,
		slot Slot,
	) (*models.Appointment, error)

	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// -------- Appointment (state change) --------
	CancelAppointment(
		ctx context.Context,
		id string,
		at time.Time,
	) error

	// -------- Listing --------
	ListActive(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)
}
