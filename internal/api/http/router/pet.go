package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/petscare/petscare_backend/internal/api/http/handler"
	"github.com/petscare/petscare_backend/pkg/authorize"
)

func (r *Router) registerPetRoutes(
	api fiber.Router,
	ph *handler.PetHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	pets := api.Group("/pets", authRequired)

	pets.Get("/mine", requirePerm(authorize.ResourcePet, authorize.ActionList), ph.ListMine)
	pets.Post("/", requirePerm(authorize.ResourcePet, authorize.ActionCreate), ph.Create)
	pets.Get("/:id", requirePerm(authorize.ResourcePet, authorize.ActionRead), ph.Get)
}
