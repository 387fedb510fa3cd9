package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/petscare/petscare_backend/internal/service/appointment"
	"github.com/petscare/petscare_backend/pkg/email"
	jwttoken "github.com/petscare/petscare_backend/pkg/token"
)

type AppointmentHandler struct {
	svc  appointment.Service
	mail *email.Client
}

func NewAppointmentHandler(svc appointment.Service, mail *email.Client) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, mail: mail}
}

func actorFromClaims(claims *jwttoken.Claims) appointment.Actor {
	return appointment.Actor{
		ID:    claims.UserID,
		Role:  claims.Role,
		Name:  claims.Name,
		Email: claims.Email,
	}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound),
		errors.Is(err, appointment.ErrDoctorNotFound),
		errors.Is(err, appointment.ErrPetNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrNotAssigned),
		errors.Is(err, appointment.ErrOwnerOnly):
		return forbidden(c)
	case appointment.IsValidation(err):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	claims, claimsOK := jwttoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		PetID    uuid.UUID `json:"petId"`
		DoctorID uuid.UUID `json:"doctorId"`
		// Raw string so the service controls validation ordering; a
		// malformed date must not short-circuit the doctor lookup.
		AppointmentDate string  `json:"appointmentDate"`
		Query           *string `json:"query"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.Book(c.Context(), actorFromClaims(claims), appointment.BookRequest{
		PetID:           body.PetID,
		DoctorID:        body.DoctorID,
		AppointmentDate: body.AppointmentDate,
		Query:           body.Query,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// PATCH /appointments/:id/respond
func (h *AppointmentHandler) Respond(c fiber.Ctx) error {
	claims, claimsOK := jwttoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Response        string  `json:"response"`
		RejectionReason *string `json:"rejectionReason"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.Respond(c.Context(), actorFromClaims(claims), apptID, appointment.RespondRequest{
		Response:        body.Response,
		RejectionReason: body.RejectionReason,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// GET /appointments/mine
func (h *AppointmentHandler) ListMine(c fiber.Ctx) error {
	claims, claimsOK := jwttoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	appts, err := h.svc.ListForOwner(c.Context(), claims.UserID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appts)
}

// GET /appointments/doctor
//
// Lists appointments assigned to the calling doctor, resolved through the
// doctor directory by the caller's email.
func (h *AppointmentHandler) ListForDoctor(c fiber.Ctx) error {
	claims, claimsOK := jwttoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var q struct {
		Status *string `query:"status"`
	}
	_ = c.Bind().Query(&q)

	appts, err := h.svc.ListForActingDoctor(c.Context(), actorFromClaims(claims), q.Status)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appts)
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	var q struct {
		DoctorID *uuid.UUID `query:"doctor_id"`
		OwnerID  *uuid.UUID `query:"owner_id"`
		Status   *string    `query:"status"`
		Page     int        `query:"page"`
		PerPage  int        `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	appts, err := h.svc.List(c.Context(), appointment.ListRequest{
		DoctorID: q.DoctorID,
		OwnerID:  q.OwnerID,
		Status:   q.Status,
		Page:     q.Page,
		PerPage:  q.PerPage,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appts)
}

// GET /appointments/:id
func (h *AppointmentHandler) Get(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// POST /appointments/:id/email
//
// Sends a free-form email from an admin to the booking owner. Transport
// failure is a soft result, not an HTTP error: the booking state is
// unaffected and the admin sees what went wrong.
func (h *AppointmentHandler) SendEmail(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Subject == "" || body.Message == "" {
		return badRequest(c, "subject and message are required")
	}

	name, addr, err := h.svc.OwnerContact(c.Context(), apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	msg := email.BuildAdminMessageEmail(addr, name, body.Subject, body.Message)
	if err := h.mail.Send(c.Context(), msg); err != nil {
		return ok(c, fiber.Map{"sent": false, "error": err.Error()})
	}
	return ok(c, fiber.Map{"sent": true})
}
