package doctor

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/petscare/petscare_backend/internal/repo"
	entdoc "github.com/petscare/petscare_backend/internal/repo/doctor"
	"github.com/petscare/petscare_backend/pkg/schedule"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name           string
	Email          string
	Specialization string
	ContactNumber  string
	Notes          *string
	Availability   string
	Schedule       schedule.Weekly
}

type ListRequest struct {
	Specialization *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Doctor, error)
	GetByID(ctx context.Context, doctorID uuid.UUID) (*repo.Doctor, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Doctor, error)
	UpdateSchedule(ctx context.Context, doctorID uuid.UUID, weekly schedule.Weekly) (*repo.Doctor, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type doctorService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &doctorService{db: db}
}

func (s *doctorService) Create(ctx context.Context, req CreateRequest) (*repo.Doctor, error) {
	if err := req.Schedule.Validate(); err != nil {
		return nil, err
	}

	c := s.db.Doctor.Create().
		SetName(req.Name).
		SetEmail(req.Email).
		SetSpecialization(req.Specialization).
		SetContactNumber(req.ContactNumber).
		SetAvailability(req.Availability).
		SetSchedule(req.Schedule)

	if req.Notes != nil {
		c = c.SetNotes(*req.Notes)
	}

	d, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) GetByID(ctx context.Context, doctorID uuid.UUID) (*repo.Doctor, error) {
	d, err := s.db.Doctor.Query().
		Where(entdoc.ID(doctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) List(ctx context.Context, req ListRequest) ([]*repo.Doctor, error) {
	q := s.db.Doctor.Query()
	if req.Specialization != nil {
		q = q.Where(entdoc.Specialization(*req.Specialization))
	}
	docs, err := q.
		Order(entdoc.ByName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return docs, nil
}

// UpdateSchedule replaces the doctor's weekly schedule. The schedule is
// validated strictly here even though booking degrades malformed slots;
// writes should never introduce garbage.
func (s *doctorService) UpdateSchedule(ctx context.Context, doctorID uuid.UUID, weekly schedule.Weekly) (*repo.Doctor, error) {
	if err := weekly.Validate(); err != nil {
		return nil, err
	}

	d, err := s.db.Doctor.Query().
		Where(entdoc.ID(doctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}

	updated, err := s.db.Doctor.UpdateOne(d).
		SetSchedule(weekly).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update doctor schedule: %w", err)
	}
	return updated, nil
}
