package appointment

import (
	"context"

	domain "github.com/clinica/appointments-api/internal/domain/appointment"
	"github.com/clinica/appointments-api/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

func (uc *ListAppointments) ByUser(
	ctx context.Context,
	username string,
) ([]dto.AppointmentDTO, error) {
	return uc.list(ctx, domain.ListFilter{Username: username})
}

// ByDay expects a DD/MM/YYYY day.
func (uc *ListAppointments) ByDay(
	ctx context.Context,
	day string,
) ([]dto.AppointmentDTO, error) {

	normalized, err := domain.ParseDay(day)
	if err != nil {
		return nil, err
	}
	return uc.list(ctx, domain.ListFilter{Day: normalized})
}

func (uc *ListAppointments) All(
	ctx context.Context,
) ([]dto.AppointmentDTO, error) {
	return uc.list(ctx, domain.ListFilter{})
}

func (uc *ListAppointments) list(
	ctx context.Context,
	filter domain.ListFilter,
) ([]dto.AppointmentDTO, error) {

	appointments, err := uc.repo.ListActive(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(appointments), nil
}
