package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/petscare/petscare_backend/internal/api/http/handler"
	"github.com/petscare/petscare_backend/internal/api/http/middleware"
	"github.com/petscare/petscare_backend/pkg/authorize"
)

func (r *Router) registerDoctorRoutes(
	api fiber.Router,
	dh *handler.DoctorHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	docs := api.Group("/doctors", authRequired)

	docs.Get("/", requirePerm(authorize.ResourceDoctor, authorize.ActionList), dh.List)
	docs.Post("/", middleware.RequireRole("admin"), dh.Create)
	docs.Get("/:id", requirePerm(authorize.ResourceDoctor, authorize.ActionRead), dh.Get)
	docs.Put("/:id/schedule", requirePerm(authorize.ResourceSchedule, authorize.ActionUpdate), dh.UpdateSchedule)
}
