package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/petscare/petscare_backend/internal/service/doctor"
	"github.com/petscare/petscare_backend/pkg/schedule"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

func mapDoctorError(c fiber.Ctx, err error) error {
	var se *schedule.SlotError
	switch {
	case errors.Is(err, doctor.ErrNotFound):
		return notFound(c, err.Error())
	case errors.As(err, &se):
		return badRequest(c, se.Error())
	default:
		return internalError(c)
	}
}

// GET /doctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
	var q struct {
		Specialization *string `query:"specialization"`
	}
	_ = c.Bind().Query(&q)

	docs, err := h.svc.List(c.Context(), doctor.ListRequest{Specialization: q.Specialization})
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, docs)
}

// GET /doctors/:id
func (h *DoctorHandler) Get(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	d, err := h.svc.GetByID(c.Context(), doctorID)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, d)
}

// POST /doctors
func (h *DoctorHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name           string          `json:"name"`
		Email          string          `json:"email"`
		Specialization string          `json:"specialization"`
		ContactNumber  string          `json:"contactNumber"`
		Notes          *string         `json:"notes"`
		Availability   string          `json:"availability"`
		Schedule       schedule.Weekly `json:"schedule"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" || body.Email == "" {
		return badRequest(c, "name and email are required")
	}

	d, err := h.svc.Create(c.Context(), doctor.CreateRequest{
		Name:           body.Name,
		Email:          body.Email,
		Specialization: body.Specialization,
		ContactNumber:  body.ContactNumber,
		Notes:          body.Notes,
		Availability:   body.Availability,
		Schedule:       body.Schedule,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}
	return created(c, d)
}

// PUT /doctors/:id/schedule
func (h *DoctorHandler) UpdateSchedule(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		Schedule schedule.Weekly `json:"schedule"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	d, err := h.svc.UpdateSchedule(c.Context(), doctorID, body.Schedule)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, d)
}
