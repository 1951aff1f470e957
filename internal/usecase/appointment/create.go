package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/clinica/appointments-api/internal/domain/appointment"
	"github.com/clinica/appointments-api/internal/httperr"
	"github.com/clinica/appointments-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Username string
	Center   string
	Date     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo domain.Repository
	now  func() time.Time
}

func NewCreateAppointment(repo domain.Repository) *CreateAppointment {
	return &CreateAppointment{repo: repo, now: time.Now}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	center := strings.TrimSpace(in.Center)
	if center == "" || strings.TrimSpace(in.Date) == "" {
		return nil, httperr.ErrBusiness(httperr.CodeBadRequest)
	}

	// --------------------------------------------------
	// 1️⃣ Centro
	// --------------------------------------------------
	if _, err := uc.repo.GetCenterByName(ctx, center); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora (DD/MM/YYYY HH:00:00)
	// --------------------------------------------------
	slot, err := domain.ParseSlot(center, in.Date)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Inserção: o índice único decide se o horário está livre
	// --------------------------------------------------
	ap := domain.New(in.Username, slot, uc.now())
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
