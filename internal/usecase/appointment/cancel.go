package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/clinica/appointments-api/internal/domain/appointment"
	"github.com/clinica/appointments-api/internal/httperr"
	"github.com/clinica/appointments-api/internal/models"
)

type CancelAppointmentInput struct {
	Username string

	// Either ID, or Center together with Date.
	ID     string
	Center string
	Date   string
}

type CancelAppointment struct {
	repo domain.Repository
	now  func() time.Time
}

func NewCancelAppointment(repo domain.Repository) *CancelAppointment {
	return &CancelAppointment{repo: repo, now: time.Now}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.lookup(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, in.Username, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.CancelAppointment(ctx, ap.ID, *ap.CancelledAt); err != nil {
		return nil, err
	}

	return ap, nil
}

// lookup finds the active appointment regardless of owner; ownership is
// checked afterwards so a foreign slot reports unauthorized, not not-found.
func (uc *CancelAppointment) lookup(
	ctx context.Context,
	in CancelAppointmentInput,
) (*models.Appointment, error) {

	if id := strings.TrimSpace(in.ID); id != "" {
		return uc.repo.GetAppointmentByID(ctx, id)
	}

	center := strings.TrimSpace(in.Center)
	if center == "" || strings.TrimSpace(in.Date) == "" {
		return nil, httperr.ErrBusiness(httperr.CodeBadRequest)
	}

	slot, err := domain.ParseSlot(center, in.Date)
	if err != nil {
		return nil, err
	}

	return uc.repo.FindActiveBySlot(ctx, slot)
}
