package dto

import (
	domain "github.com/clinica/appointments-api/internal/domain/appointment"
	"github.com/clinica/appointments-api/internal/models"
)

// AppointmentDTO is the external shape of an appointment: day and hour are
// collapsed into a single DD/MM/YYYY HH:00:00 date.
type AppointmentDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Center    string `json:"center"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
	Cancel    int    `json:"cancel"`
}

func FromAppointment(ap models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:        ap.ID,
		Username:  ap.Username,
		Center:    ap.Center,
		Date:      domain.DateTime(ap.Day, ap.Hour),
		CreatedAt: ap.CreatedAt.Local().Format(domain.CreatedAtLayout),
		Cancel:    ap.Cancel,
	}
}

// FromAppointments reshapes and sorts ascending by date. Never returns nil.
func FromAppointments(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	domain.SortByDateTime(out, func(d AppointmentDTO) string { return d.Date })
	return out
}
