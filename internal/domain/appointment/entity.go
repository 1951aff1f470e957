package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinica/appointments-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// New builds an active appointment for slot with a fresh identifier.
func New(username string, slot Slot, now time.Time) *models.Appointment {
	return &models.Appointment{
		ID:        uuid.NewString(),
		Username:  username,
		Day:       slot.Day,
		Hour:      slot.Hour,
		Center:    slot.Center,
		Cancel:    models.Active,
		CreatedAt: now,
	}
}

// Cancel soft-deletes ap on behalf of username.
func Cancel(ap *models.Appointment, username string, now time.Time) error {
	if err := CanCancel(ap, username); err != nil {
		return err
	}

	ap.Cancel = models.Cancelled
	ap.CancelledAt = &now
	return nil
}
