package appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/petscare/petscare_backend/internal/repo"
	entappt "github.com/petscare/petscare_backend/internal/repo/appointment"
	"github.com/petscare/petscare_backend/internal/repo/enttest"
	entuser "github.com/petscare/petscare_backend/internal/repo/user"
	"github.com/petscare/petscare_backend/internal/service/fanout"
	"github.com/petscare/petscare_backend/pkg/schedule"
)

type stubDispatcher struct {
	mu     sync.Mutex
	events []fanout.ResponseEvent
}

func (d *stubDispatcher) Dispatch(ev fanout.ResponseEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, ev)
}

func (d *stubDispatcher) last(t *testing.T) fanout.ResponseEvent {
	t.Helper()
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.events) == 0 {
		t.Fatal("no event dispatched")
	}
	return d.events[len(d.events)-1]
}

type fixture struct {
	db     *repo.Client
	svc    Service
	events *stubDispatcher

	owner      *repo.User
	doctorUser *repo.User
	doctor     *repo.Doctor
	pet        *repo.Pet
}

// mondayEvening is Dr. Dana's only availability in the fixture.
var mondaySchedule = schedule.Weekly{
	{DayOfWeek: 1, StartTime: "18:00", EndTime: "20:00"},
}

// mondayAt returns 2025-06-02 (a Monday) at the given clock time.
func mondayAt(h, m int) time.Time {
	return time.Date(2025, 6, 2, h, m, 0, 0, time.UTC)
}

// monday is mondayAt rendered the way clients send timestamps.
func monday(h, m int) string {
	return mondayAt(h, m).Format(time.RFC3339)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()

	owner, err := db.User.Create().
		SetName("Jamie").
		SetEmail("jamie@example.com").
		SetRole(entuser.RolePetOwner).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	doctorUser, err := db.User.Create().
		SetName("Dana").
		SetEmail("dana@petscare.app").
		SetRole(entuser.RoleDoctor).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	doctor, err := db.Doctor.Create().
		SetName("Dana").
		SetEmail("dana@petscare.app").
		SetSpecialization("general").
		SetSchedule(mondaySchedule).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	pet, err := db.Pet.Create().
		SetOwnerID(owner.ID).
		SetName("Max").
		SetType("dog").
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	events := &stubDispatcher{}
	return &fixture{
		db:         db,
		svc:        New(db, events, nil),
		events:     events,
		owner:      owner,
		doctorUser: doctorUser,
		doctor:     doctor,
		pet:        pet,
	}
}

func (f *fixture) ownerActor() Actor {
	return Actor{ID: f.owner.ID, Role: "petOwner", Name: f.owner.Name, Email: f.owner.Email}
}

func (f *fixture) doctorActor() Actor {
	return Actor{ID: f.doctorUser.ID, Role: "doctor", Name: f.doctorUser.Name, Email: f.doctorUser.Email}
}

func (f *fixture) adminActor() Actor {
	return Actor{ID: uuid.Must(uuid.NewV7()), Role: "admin", Name: "Root", Email: "root@petscare.app"}
}

func (f *fixture) book(t *testing.T) *repo.Appointment {
	t.Helper()
	query := "limping on the left front leg"
	appt, err := f.svc.Book(context.Background(), f.ownerActor(), BookRequest{
		PetID:           f.pet.ID,
		DoctorID:        f.doctor.ID,
		AppointmentDate: monday(18, 30),
		Query:           &query,
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	return appt
}

func TestBookCreatesPendingAppointment(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t)

	if appt.Status != entappt.StatusPending {
		t.Errorf("status = %s, want pending", appt.Status)
	}
	if appt.OwnerID != f.owner.ID || appt.DoctorID != f.doctor.ID || appt.PetID != f.pet.ID {
		t.Error("appointment references wrong entities")
	}
	if appt.Query == nil || *appt.Query != "limping on the left front leg" {
		t.Errorf("query = %v", appt.Query)
	}
	if appt.RespondedAt != nil || appt.ActedBy != nil {
		t.Error("fresh appointment must carry no response fields")
	}
}

func TestBookOutsideSchedulePersistsNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []string{
		monday(20, 0),  // end is exclusive
		monday(17, 59), // just before opening
		mondayAt(18, 30).AddDate(0, 0, 1).Format(time.RFC3339), // Tuesday
	}
	for _, when := range cases {
		_, err := f.svc.Book(ctx, f.ownerActor(), BookRequest{
			PetID:           f.pet.ID,
			DoctorID:        f.doctor.ID,
			AppointmentDate: when,
		})
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("book at %v: err = %v, want ValidationError", when, err)
		}
	}

	n, err := f.db.Appointment.Query().Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("rejected bookings persisted %d rows", n)
	}
}

func TestBookBoundaryTimes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, when := range []string{monday(18, 0), monday(19, 59)} {
		if _, err := f.svc.Book(ctx, f.ownerActor(), BookRequest{
			PetID:           f.pet.ID,
			DoctorID:        f.doctor.ID,
			AppointmentDate: when,
		}); err != nil {
			t.Errorf("book at %v: %v", when, err)
		}
	}
}

func TestBookValidationOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Missing fields beat everything else.
	_, err := f.svc.Book(ctx, f.ownerActor(), BookRequest{})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("missing fields: err = %v, want ValidationError", err)
	}

	// Unknown doctor is reported before schedule checks.
	_, err = f.svc.Book(ctx, f.ownerActor(), BookRequest{
		PetID:           f.pet.ID,
		DoctorID:        uuid.Must(uuid.NewV7()),
		AppointmentDate: monday(3, 0),
	})
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("unknown doctor: err = %v, want ErrDoctorNotFound", err)
	}

	// An unknown doctor wins even when the date is garbage.
	_, err = f.svc.Book(ctx, f.ownerActor(), BookRequest{
		PetID:           f.pet.ID,
		DoctorID:        uuid.Must(uuid.NewV7()),
		AppointmentDate: "next tuesday-ish",
	})
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("unknown doctor with bad date: err = %v, want ErrDoctorNotFound", err)
	}

	// With a real doctor, the same garbage date is a validation error.
	_, err = f.svc.Book(ctx, f.ownerActor(), BookRequest{
		PetID:           f.pet.ID,
		DoctorID:        f.doctor.ID,
		AppointmentDate: "next tuesday-ish",
	})
	if !errors.As(err, &ve) {
		t.Errorf("malformed date: err = %v, want ValidationError", err)
	} else if ve.Reason != "invalid date" {
		t.Errorf("malformed date reason = %q, want %q", ve.Reason, "invalid date")
	}
}

func TestBookRejectsForeignPet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stranger, err := f.db.User.Create().
		SetName("Sam").
		SetEmail("sam@example.com").
		SetRole(entuser.RolePetOwner).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	_, err = f.svc.Book(ctx, Actor{ID: stranger.ID, Role: "petOwner"}, BookRequest{
		PetID:           f.pet.ID,
		DoctorID:        f.doctor.ID,
		AppointmentDate: monday(18, 30),
	})
	if !errors.Is(err, ErrPetNotFound) {
		t.Errorf("err = %v, want ErrPetNotFound", err)
	}
}

func TestBookRequiresOwnerRole(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Book(context.Background(), f.doctorActor(), BookRequest{
		PetID:           f.pet.ID,
		DoctorID:        f.doctor.ID,
		AppointmentDate: monday(18, 30),
	})
	if !errors.Is(err, ErrOwnerOnly) {
		t.Errorf("err = %v, want ErrOwnerOnly", err)
	}
}

func TestEmptyScheduleAdmitsAnyTime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	openDoc, err := f.db.Doctor.Create().
		SetName("Priya").
		SetEmail("priya@petscare.app").
		SetSpecialization("exotics").
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.svc.Book(ctx, f.ownerActor(), BookRequest{
		PetID:           f.pet.ID,
		DoctorID:        openDoc.ID,
		AppointmentDate: monday(3, 0),
	}); err != nil {
		t.Errorf("booking against an empty schedule: %v", err)
	}
}

func TestRespondAcceptByAssignedDoctor(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t)

	updated, err := f.svc.Respond(context.Background(), f.doctorActor(), appt.ID, RespondRequest{
		Response: "Accepted",
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != entappt.StatusAccepted {
		t.Errorf("status = %s, want accepted", updated.Status)
	}
	if updated.ActedBy == nil || *updated.ActedBy != "Dana" {
		t.Errorf("acted_by = %v, want Dana", updated.ActedBy)
	}
	if updated.RespondedAt == nil {
		t.Error("responded_at not set")
	}

	ev := f.events.last(t)
	if ev.AppointmentID != appt.ID || ev.Status != "accepted" {
		t.Errorf("event = %+v", ev)
	}
	if ev.OwnerEmail != "jamie@example.com" || ev.PetName != "Max" || ev.DoctorName != "Dana" {
		t.Errorf("event missing details: %+v", ev)
	}
}

func TestRespondRejectStoresReason(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t)

	reason := "fully booked that evening"
	updated, err := f.svc.Respond(context.Background(), f.doctorActor(), appt.ID, RespondRequest{
		Response:        "rejected",
		RejectionReason: &reason,
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.RejectionReason == nil || *updated.RejectionReason != reason {
		t.Errorf("rejection_reason = %v", updated.RejectionReason)
	}
	if ev := f.events.last(t); ev.RejectionReason != reason {
		t.Errorf("event reason = %q", ev.RejectionReason)
	}
}

func TestRespondRejectsUnassignedDoctor(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t)

	other := Actor{ID: uuid.Must(uuid.NewV7()), Role: "doctor", Name: "Kim", Email: "kim@petscare.app"}
	_, err := f.svc.Respond(context.Background(), other, appt.ID, RespondRequest{Response: "accepted"})
	if !errors.Is(err, ErrNotAssigned) {
		t.Errorf("err = %v, want ErrNotAssigned", err)
	}

	// The appointment must stay pending and no event may leak out.
	got, err := f.svc.GetByID(context.Background(), appt.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != entappt.StatusPending {
		t.Errorf("status = %s, want pending", got.Status)
	}
	if len(f.events.events) != 0 {
		t.Error("event dispatched for a forbidden response")
	}
}

func TestRespondAdminOverride(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t)

	updated, err := f.svc.Respond(context.Background(), f.adminActor(), appt.ID, RespondRequest{
		Response: "cancelled",
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != entappt.StatusCancelled {
		t.Errorf("status = %s, want cancelled", updated.Status)
	}
	if updated.ActedBy == nil || *updated.ActedBy != "Admin" {
		t.Errorf("acted_by = %v, want Admin", updated.ActedBy)
	}
}

func TestRespondInvalidValue(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t)

	_, err := f.svc.Respond(context.Background(), f.doctorActor(), appt.ID, RespondRequest{Response: "maybe"})
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestRespondUnknownAppointment(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Respond(context.Background(), f.adminActor(), uuid.Must(uuid.NewV7()), RespondRequest{Response: "accepted"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRespondToSettledAppointmentIsCorrection(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t)
	ctx := context.Background()

	if _, err := f.svc.Respond(ctx, f.doctorActor(), appt.ID, RespondRequest{Response: "rejected"}); err != nil {
		t.Fatal(err)
	}
	updated, err := f.svc.Respond(ctx, f.adminActor(), appt.ID, RespondRequest{Response: "accepted"})
	if err != nil {
		t.Fatalf("correction rejected: %v", err)
	}
	if updated.Status != entappt.StatusAccepted {
		t.Errorf("status = %s, want accepted", updated.Status)
	}
	if updated.RejectionReason != nil {
		t.Error("stale rejection reason survived the correction")
	}
}

func TestListForOwnerAndDoctor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	appt := f.book(t)

	mine, err := f.svc.ListForOwner(ctx, f.owner.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].ID != appt.ID {
		t.Errorf("ListForOwner = %d entries", len(mine))
	}

	queue, err := f.svc.ListForDoctor(ctx, f.doctor.ID, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(queue) != 1 {
		t.Errorf("ListForDoctor = %d entries", len(queue))
	}

	accepted := "accepted"
	queue, err = f.svc.ListForDoctor(ctx, f.doctor.ID, &accepted)
	if err != nil {
		t.Fatal(err)
	}
	if len(queue) != 0 {
		t.Errorf("status filter leaked %d pending entries", len(queue))
	}

	none, err := f.svc.ListForOwner(ctx, uuid.Must(uuid.NewV7()))
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Error("foreign owner sees appointments")
	}
}

func TestListForActingDoctor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	appt := f.book(t)

	queue, err := f.svc.ListForActingDoctor(ctx, f.doctorActor(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(queue) != 1 || queue[0].ID != appt.ID {
		t.Errorf("ListForActingDoctor = %d entries", len(queue))
	}

	stranger := Actor{ID: uuid.Must(uuid.NewV7()), Role: "doctor", Name: "Sam", Email: "sam@elsewhere.example"}
	if _, err := f.svc.ListForActingDoctor(ctx, stranger, nil); !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("doctor without directory entry: got %v, want ErrDoctorNotFound", err)
	}
}
