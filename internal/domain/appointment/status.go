package appointment

import (
	"github.com/clinica/appointments-api/internal/httperr"
	"github.com/clinica/appointments-api/internal/models"
)

// CanCancel checks that ap is still active and owned by username.
func CanCancel(ap *models.Appointment, username string) error {
	if ap == nil || ap.IsCancelled() {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	if ap.Username != username {
		return httperr.ErrBusiness(httperr.CodeUnauthorized)
	}
	return nil
}
