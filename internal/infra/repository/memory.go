package repository

import (
	"context"
	"sync"
	"time"

	domain "github.com/clinica/appointments-api/internal/domain/appointment"
	"github.com/clinica/appointments-api/internal/domain/center"
	"github.com/clinica/appointments-api/internal/domain/user"
	"github.com/clinica/appointments-api/internal/httperr"
	"github.com/clinica/appointments-api/internal/models"
)

// MemoryStore keeps users, centers and appointments in process memory. It
// enforces the same uniqueness rules as the database indexes and is used for
// local runs (STORE_DRIVER=memory) and tests.
type MemoryStore struct {
	mu sync.RWMutex

	users        map[string]models.User
	centers      []models.Center
	appointments map[string]models.Appointment
	order        []string
	activeSlots  map[domain.Slot]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[string]models.User),
		appointments: make(map[string]models.Appointment),
		activeSlots:  make(map[domain.Slot]string),
	}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (s *MemoryStore) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.Username]; exists {
		return httperr.ErrBusiness(httperr.CodeUserExists)
	}
	u.ID = uint(len(s.users) + 1)
	s.users[u.Username] = *u
	return nil
}

func (s *MemoryStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeUserNotFound)
	}
	return &u, nil
}

// --------------------------------------------------
// Centers
// --------------------------------------------------

func (s *MemoryStore) ListCenters(_ context.Context) ([]models.Center, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Center, len(s.centers))
	copy(out, s.centers)
	return out, nil
}

func (s *MemoryStore) GetCenterByName(_ context.Context, name string) (*models.Center, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.centers {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeCenterNotFound)
}

func (s *MemoryStore) SeedCenters(_ context.Context, centers []models.Center) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.centers) > 0 || len(centers) == 0 {
		return false, nil
	}
	for i, c := range centers {
		c.ID = uint(i + 1)
		s.centers = append(s.centers, c)
	}
	return true, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (s *MemoryStore) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := slotOf(ap)
	if _, taken := s.activeSlots[slot]; taken && !ap.IsCancelled() {
		return httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	s.appointments[ap.ID] = *ap
	s.order = append(s.order, ap.ID)
	if !ap.IsCancelled() {
		s.activeSlots[slot] = ap.ID
	}
	return nil
}

func (s *MemoryStore) FindActiveBySlot(_ context.Context, slot domain.Slot) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.activeSlots[slot]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	ap := s.appointments[id]
	return &ap, nil
}

func (s *MemoryStore) GetAppointmentByID(_ context.Context, id string) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	return &ap, nil
}

func (s *MemoryStore) CancelAppointment(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.appointments[id]
	if !ok || ap.IsCancelled() {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	ap.Cancel = models.Cancelled
	ap.CancelledAt = &at
	s.appointments[id] = ap
	delete(s.activeSlots, slotOf(&ap))
	return nil
}

// ListActive returns matches in insertion order.
func (s *MemoryStore) ListActive(_ context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	for _, id := range s.order {
		ap := s.appointments[id]
		if ap.IsCancelled() {
			continue
		}
		if filter.Username != "" && ap.Username != filter.Username {
			continue
		}
		if filter.Day != "" && ap.Day != filter.Day {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func slotOf(ap *models.Appointment) domain.Slot {
	return domain.Slot{Day: ap.Day, Hour: ap.Hour, Center: ap.Center}
}

var (
	_ domain.Repository = (*MemoryStore)(nil)
	_ center.Repository = (*MemoryStore)(nil)
	_ user.Repository   = (*MemoryStore)(nil)
)
