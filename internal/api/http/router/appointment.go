package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/petscare/petscare_backend/internal/api/http/handler"
	"github.com/petscare/petscare_backend/internal/api/http/middleware"
	"github.com/petscare/petscare_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	// Admin-wide listing; owners and doctors use the scoped routes below.
	appts.Get("/", middleware.RequireRole("admin"), ah.List)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), ah.Book)

	appts.Get("/mine", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.ListMine)
	appts.Get("/doctor", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.ListForDoctor)

	a := appts.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.Get)
	a.Patch("/respond", requirePerm(authorize.ResourceAppointment, authorize.ActionRespond), ah.Respond)
	a.Post("/email", requirePerm(authorize.ResourceEmail, authorize.ActionCreate), ah.SendEmail)
}
