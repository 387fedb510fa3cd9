package appointment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/petscare/petscare_backend/internal/repo"
	entappt "github.com/petscare/petscare_backend/internal/repo/appointment"
	entdoc "github.com/petscare/petscare_backend/internal/repo/doctor"
	entpet "github.com/petscare/petscare_backend/internal/repo/pet"
	entuser "github.com/petscare/petscare_backend/internal/repo/user"
	"github.com/petscare/petscare_backend/internal/service/fanout"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Actor is the authenticated principal performing an operation, taken from
// the verified token claims.
type Actor struct {
	ID    uuid.UUID
	Role  string // petOwner | doctor | admin
	Name  string
	Email string
}

type BookRequest struct {
	PetID    uuid.UUID
	DoctorID uuid.UUID
	// AppointmentDate is the raw timestamp from the client. It is parsed
	// only after the doctor lookup so a bad date on an unknown doctor
	// still reads as not-found.
	AppointmentDate string
	Query           *string
}

type RespondRequest struct {
	Response        string // accepted | rejected | cancelled, case-insensitive
	RejectionReason *string
}

type ListRequest struct {
	DoctorID *uuid.UUID
	OwnerID  *uuid.UUID
	Status   *string
	Page     int
	PerPage  int
}

// EventDispatcher receives the response event after the transition has been
// persisted. Dispatch must not block.
type EventDispatcher interface {
	Dispatch(ev fanout.ResponseEvent)
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Book(ctx context.Context, actor Actor, req BookRequest) (*repo.Appointment, error)
	Respond(ctx context.Context, actor Actor, apptID uuid.UUID, req RespondRequest) (*repo.Appointment, error)
	GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)
	OwnerContact(ctx context.Context, apptID uuid.UUID) (name, email string, err error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*repo.Appointment, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID, status *string) ([]*repo.Appointment, error)
	ListForActingDoctor(ctx context.Context, actor Actor, status *string) ([]*repo.Appointment, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db     *repo.Client
	events EventDispatcher
	log    *slog.Logger
}

func New(db *repo.Client, events EventDispatcher, log *slog.Logger) Service {
	if log == nil {
		log = slog.Default()
	}
	return &appointmentService{db: db, events: events, log: log}
}

// Book validates and creates a pending appointment. Checks run in a fixed
// order so clients get stable error shapes: required fields, doctor
// existence, pet ownership, then schedule admissibility. Nothing is
// persisted unless every check passes.
func (s *appointmentService) Book(ctx context.Context, actor Actor, req BookRequest) (*repo.Appointment, error) {
	if actor.Role != "petOwner" {
		return nil, ErrOwnerOnly
	}

	if req.PetID == uuid.Nil {
		return nil, &ValidationError{Reason: "petId is required"}
	}
	if req.DoctorID == uuid.Nil {
		return nil, &ValidationError{Reason: "doctorId is required"}
	}
	if req.AppointmentDate == "" {
		return nil, &ValidationError{Reason: "appointmentDate is required"}
	}

	doc, err := s.db.Doctor.Query().
		Where(entdoc.ID(req.DoctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}

	date, err := parseDate(req.AppointmentDate)
	if err != nil {
		return nil, &ValidationError{Reason: "invalid date"}
	}

	pet, err := s.db.Pet.Query().
		Where(entpet.ID(req.PetID), entpet.OwnerID(actor.ID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("get pet: %w", err)
	}

	if !doc.Schedule.Admissible(date) {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("Dr. %s is not available at the requested time", doc.Name),
		}
	}

	c := s.db.Appointment.Create().
		SetOwnerID(actor.ID).
		SetPetID(pet.ID).
		SetDoctorID(doc.ID).
		SetAppointmentDate(date).
		SetStatus(entappt.StatusPending)

	if req.Query != nil {
		c = c.SetQuery(*req.Query)
	}

	appt, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.log.Info("appointment booked",
		"appointment_id", appt.ID,
		"owner_id", actor.ID,
		"doctor_id", doc.ID,
		"date", date,
	)
	return appt, nil
}

// dateLayouts are the accepted timestamp shapes, RFC 3339 first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// Respond records an accept/reject/cancel decision and fans the result out
// to the owner. Doctors may only respond to appointments assigned to them;
// admins may respond to any.
func (s *appointmentService) Respond(ctx context.Context, actor Actor, apptID uuid.UUID, req RespondRequest) (*repo.Appointment, error) {
	status, err := ParseResponse(req.Response)
	if err != nil {
		return nil, err
	}

	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	doc, err := s.db.Doctor.Query().
		Where(entdoc.ID(appt.DoctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}

	actedBy, err := s.authorizeResponse(actor, doc)
	if err != nil {
		return nil, err
	}

	if IsTerminal(string(appt.Status)) {
		// Allowed as an administrative correction, but it is unusual
		// enough to be worth a trace.
		s.log.Warn("re-responding to a settled appointment",
			"appointment_id", appt.ID,
			"previous_status", appt.Status,
			"new_status", status,
			"acted_by", actedBy,
		)
	}

	now := time.Now()
	u := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.Status(status)).
		SetActedBy(actedBy).
		SetRespondedAt(now)

	if status == StatusRejected && req.RejectionReason != nil {
		u = u.SetRejectionReason(*req.RejectionReason)
	} else {
		u = u.ClearRejectionReason()
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	s.log.Info("appointment responded",
		"appointment_id", updated.ID,
		"status", status,
		"acted_by", actedBy,
	)

	s.dispatchResponse(ctx, updated, doc, actedBy)
	return updated, nil
}

// authorizeResponse decides whether actor may respond to an appointment
// assigned to doc, and returns the acted-by label recorded on the row.
func (s *appointmentService) authorizeResponse(actor Actor, doc *repo.Doctor) (string, error) {
	switch actor.Role {
	case "admin":
		return "Admin", nil
	case "doctor":
		if actor.Email != doc.Email {
			return "", ErrNotAssigned
		}
		return doc.Name, nil
	default:
		return "", ErrNotAssigned
	}
}

// dispatchResponse assembles the fan-out event. Lookup failures here only
// degrade the event; the persisted transition already succeeded.
func (s *appointmentService) dispatchResponse(ctx context.Context, appt *repo.Appointment, doc *repo.Doctor, actedBy string) {
	if s.events == nil {
		return
	}

	ev := fanout.ResponseEvent{
		AppointmentID:   appt.ID,
		Status:          string(appt.Status),
		OwnerID:         appt.OwnerID,
		DoctorName:      doc.Name,
		AppointmentDate: appt.AppointmentDate,
		ActedBy:         actedBy,
	}
	if appt.RejectionReason != nil {
		ev.RejectionReason = *appt.RejectionReason
	}

	if owner, err := s.db.User.Query().Where(entuser.ID(appt.OwnerID)).Only(ctx); err == nil {
		ev.OwnerName = owner.Name
		ev.OwnerEmail = owner.Email
	} else {
		s.log.Warn("fanout event without owner details", "appointment_id", appt.ID, "err", err)
	}
	if pet, err := s.db.Pet.Query().Where(entpet.ID(appt.PetID)).Only(ctx); err == nil {
		ev.PetName = pet.Name
	}

	s.events.Dispatch(ev)
}

func (s *appointmentService) GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

// OwnerContact resolves the booking owner's name and email address, used
// when an admin emails the owner about a specific appointment.
func (s *appointmentService) OwnerContact(ctx context.Context, apptID uuid.UUID) (string, string, error) {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return "", "", err
	}
	owner, err := s.db.User.Query().
		Where(entuser.ID(appt.OwnerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return "", "", ErrNotFound
		}
		return "", "", fmt.Errorf("get owner: %w", err)
	}
	return owner.Name, owner.Email, nil
}

func (s *appointmentService) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*repo.Appointment, error) {
	appts, err := s.db.Appointment.Query().
		Where(entappt.OwnerID(ownerID)).
		Order(entappt.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments for owner: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) ListForDoctor(ctx context.Context, doctorID uuid.UUID, status *string) ([]*repo.Appointment, error) {
	q := s.db.Appointment.Query().
		Where(entappt.DoctorID(doctorID))
	if status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*status)))
	}
	appts, err := q.
		Order(entappt.ByAppointmentDate(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments for doctor: %w", err)
	}
	return appts, nil
}

// ListForActingDoctor resolves the caller's directory entry by email, the
// same link used to authorize responses, and lists its appointments.
func (s *appointmentService) ListForActingDoctor(ctx context.Context, actor Actor, status *string) ([]*repo.Appointment, error) {
	doc, err := s.db.Doctor.Query().
		Where(entdoc.Email(actor.Email)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor by email: %w", err)
	}
	return s.ListForDoctor(ctx, doc.ID, status)
}

func (s *appointmentService) List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query()

	if req.DoctorID != nil {
		q = q.Where(entappt.DoctorID(*req.DoctorID))
	}
	if req.OwnerID != nil {
		q = q.Where(entappt.OwnerID(*req.OwnerID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}

	appts, err := q.
		Order(entappt.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}
