package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	domain "github.com/clinica/appointments-api/internal/domain/appointment"
	"github.com/clinica/appointments-api/internal/domain/center"
	"github.com/clinica/appointments-api/internal/domain/user"
	"github.com/clinica/appointments-api/internal/httperr"
	"github.com/clinica/appointments-api/internal/models"
)

// runStoreContract exercises behaviour every backend must share. The stores
// must start empty.
func runStoreContract(
	t *testing.T,
	appointments domain.Repository,
	centers center.Repository,
	users user.Repository,
) {
	ctx := context.Background()
	now := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)

	t.Run("seed centers once", func(t *testing.T) {
		seeded, err := centers.SeedCenters(ctx, center.Defaults)
		if err != nil || !seeded {
			t.Fatalf("first seed: seeded=%v err=%v", seeded, err)
		}
		seeded, err = centers.SeedCenters(ctx, center.Defaults)
		if err != nil || seeded {
			t.Fatalf("second seed: seeded=%v err=%v", seeded, err)
		}

		list, err := centers.ListCenters(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != len(center.Defaults) {
			t.Fatalf("expected %d centers, got %d", len(center.Defaults), len(list))
		}

		if _, err := centers.GetCenterByName(ctx, "Nope"); !httperr.IsBusiness(err, httperr.CodeCenterNotFound) {
			t.Fatalf("expected center_not_found, got %v", err)
		}
	})

	t.Run("users", func(t *testing.T) {
		u := &models.User{Username: "alice", Password: "hash", Name: "Alice"}
		if err := users.CreateUser(ctx, u); err != nil {
			t.Fatalf("create: %v", err)
		}
		err := users.CreateUser(ctx, &models.User{Username: "alice", Password: "other"})
		if !httperr.IsBusiness(err, httperr.CodeUserExists) {
			t.Fatalf("expected user_exists, got %v", err)
		}

		got, err := users.GetByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Password != "hash" || got.Name != "Alice" {
			t.Fatalf("stored user was modified: %+v", got)
		}

		if _, err := users.GetByUsername(ctx, "ghost"); !httperr.IsBusiness(err, httperr.CodeUserNotFound) {
			t.Fatalf("expected user_not_found, got %v", err)
		}
	})

	joyfe := center.Defaults[0].Name
	slot := domain.Slot{Day: "25/12/2025", Hour: "14", Center: joyfe}

	t.Run("one active appointment per slot", func(t *testing.T) {
		first := domain.New("alice", slot, now)
		if err := appointments.CreateAppointment(ctx, first); err != nil {
			t.Fatalf("create: %v", err)
		}

		err := appointments.CreateAppointment(ctx, domain.New("bob", slot, now))
		if !httperr.IsBusiness(err, httperr.CodeSlotTaken) {
			t.Fatalf("expected slot_taken, got %v", err)
		}

		found, err := appointments.FindActiveBySlot(ctx, slot)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if found.ID != first.ID || found.Username != "alice" {
			t.Fatalf("unexpected appointment: %+v", found)
		}

		if err := appointments.CancelAppointment(ctx, first.ID, now); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		if err := appointments.CancelAppointment(ctx, first.ID, now); !httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
			t.Fatalf("second cancel: expected appointment_not_found, got %v", err)
		}
		if _, err := appointments.FindActiveBySlot(ctx, slot); !httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
			t.Fatalf("expected no active appointment, got %v", err)
		}

		kept, err := appointments.GetAppointmentByID(ctx, first.ID)
		if err != nil {
			t.Fatalf("cancelled record must remain: %v", err)
		}
		if !kept.IsCancelled() {
			t.Fatalf("expected cancelled record, got %+v", kept)
		}

		if err := appointments.CreateAppointment(ctx, domain.New("bob", slot, now)); err != nil {
			t.Fatalf("rebook after cancel: %v", err)
		}
	})

	t.Run("concurrent creates", func(t *testing.T) {
		contested := domain.Slot{Day: "26/12/2025", Hour: "09", Center: joyfe}

		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			wins  int
			taken int
		)
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := appointments.CreateAppointment(ctx, domain.New("racer", contested, now))
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					wins++
				case httperr.IsBusiness(err, httperr.CodeSlotTaken):
					taken++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		if wins != 1 || taken != 7 {
			t.Fatalf("expected exactly one winner, got wins=%d taken=%d", wins, taken)
		}
	})

	t.Run("list active with filters", func(t *testing.T) {
		other := domain.Slot{Day: "25/12/2025", Hour: "10", Center: center.Defaults[1].Name}
		if err := appointments.CreateAppointment(ctx, domain.New("alice", other, now)); err != nil {
			t.Fatalf("create: %v", err)
		}

		all, err := appointments.ListActive(ctx, domain.ListFilter{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		// bob 25/12 14, racer 26/12 09, alice 25/12 10
		if len(all) != 3 {
			t.Fatalf("expected 3 active, got %d", len(all))
		}

		alice, err := appointments.ListActive(ctx, domain.ListFilter{Username: "alice"})
		if err != nil {
			t.Fatalf("list alice: %v", err)
		}
		if len(alice) != 1 || alice[0].Hour != "10" {
			t.Fatalf("unexpected alice listing: %+v", alice)
		}

		day, err := appointments.ListActive(ctx, domain.ListFilter{Day: "25/12/2025"})
		if err != nil {
			t.Fatalf("list day: %v", err)
		}
		if len(day) != 2 {
			t.Fatalf("expected 2 on 25/12/2025, got %d", len(day))
		}

		none, err := appointments.ListActive(ctx, domain.ListFilter{Username: "ghost"})
		if err != nil {
			t.Fatalf("list ghost: %v", err)
		}
		if len(none) != 0 {
			t.Fatalf("expected nothing, got %+v", none)
		}
	})
}
