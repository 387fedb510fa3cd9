package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/petscare/petscare_backend/internal/repo"
	"github.com/petscare/petscare_backend/internal/repo/enttest"
	"github.com/petscare/petscare_backend/pkg/schedule"
)

func newTestService(t *testing.T) (*repo.Client, Service) {
	t.Helper()
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })
	return db, New(db)
}

func TestCreateAndGet(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateRequest{
		Name:           "Dana",
		Email:          "dana@petscare.app",
		Specialization: "general",
		Availability:   "Mon evenings",
		Schedule: schedule.Weekly{
			{DayOfWeek: 1, StartTime: "18:00", EndTime: "20:00"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Dana" || len(got.Schedule) != 1 {
		t.Errorf("got %+v", got)
	}

	if _, err := svc.GetByID(ctx, uuid.Must(uuid.NewV7())); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateRejectsInvalidSchedule(t *testing.T) {
	_, svc := newTestService(t)

	_, err := svc.Create(context.Background(), CreateRequest{
		Name:           "Kim",
		Email:          "kim@petscare.app",
		Specialization: "surgery",
		Schedule: schedule.Weekly{
			{DayOfWeek: 9, StartTime: "18:00", EndTime: "20:00"},
		},
	})
	var se *schedule.SlotError
	if !errors.As(err, &se) {
		t.Errorf("err = %v, want SlotError", err)
	}
}

func TestListFiltersBySpecialization(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	for _, d := range []CreateRequest{
		{Name: "Dana", Email: "dana@petscare.app", Specialization: "general"},
		{Name: "Kim", Email: "kim@petscare.app", Specialization: "surgery"},
		{Name: "Priya", Email: "priya@petscare.app", Specialization: "general"},
	} {
		if _, err := svc.Create(ctx, d); err != nil {
			t.Fatal(err)
		}
	}

	all, err := svc.List(ctx, ListRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("all = %d, want 3", len(all))
	}
	if all[0].Name != "Dana" {
		t.Errorf("expected name ordering, got %s first", all[0].Name)
	}

	general := "general"
	filtered, err := svc.List(ctx, ListRequest{Specialization: &general})
	if err != nil {
		t.Fatal(err)
	}
	if len(filtered) != 2 {
		t.Errorf("filtered = %d, want 2", len(filtered))
	}
}

func TestUpdateSchedule(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateRequest{
		Name: "Dana", Email: "dana@petscare.app", Specialization: "general",
	})
	if err != nil {
		t.Fatal(err)
	}

	weekly := schedule.Weekly{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 3, StartTime: "14:00", EndTime: "18:00"},
	}
	updated, err := svc.UpdateSchedule(ctx, d.ID, weekly)
	if err != nil {
		t.Fatal(err)
	}
	if len(updated.Schedule) != 2 {
		t.Errorf("schedule = %v", updated.Schedule)
	}

	// Invalid replacement leaves the stored schedule untouched.
	_, err = svc.UpdateSchedule(ctx, d.ID, schedule.Weekly{
		{DayOfWeek: 1, StartTime: "12:00", EndTime: "09:00"},
	})
	if err == nil {
		t.Fatal("inverted slot accepted")
	}
	got, err := svc.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Schedule) != 2 {
		t.Error("failed update modified the schedule")
	}
}
