package center

import (
	"context"

	"github.com/clinica/appointments-api/internal/models"
)

type Repository interface {
	ListCenters(ctx context.Context) ([]models.Center, error)

	// GetCenterByName fails with a center_not_found business error when no
	// center has that exact name.
	GetCenterByName(ctx context.Context, name string) (*models.Center, error)

	// SeedCenters inserts centers only when the registry is empty and
	// reports whether it did.
	SeedCenters(ctx context.Context, centers []models.Center) (bool, error)
}

// Defaults is the registry shipped with a fresh install.
var Defaults = []models.Center{
	{Name: "Centro de Salud Joyfe", Address: "Calle Vitalaza, 50, Madrid"},
	{Name: "Centro Médico Arturo Soria", Address: "Calle Arturo Soria, 456, Madrid"},
	{Name: "Centro de Salud Madrid Norte", Address: "Calle Alcalá 123, Madrid"},
}
