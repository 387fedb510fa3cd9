package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/petscare/petscare_backend/internal/service/pet"
	jwttoken "github.com/petscare/petscare_backend/pkg/token"
)

type PetHandler struct {
	svc pet.Service
}

func NewPetHandler(svc pet.Service) *PetHandler {
	return &PetHandler{svc: svc}
}

func mapPetError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, pet.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /pets/mine
func (h *PetHandler) ListMine(c fiber.Ctx) error {
	claims, claimsOK := jwttoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	pets, err := h.svc.ListForOwner(c.Context(), claims.UserID)
	if err != nil {
		return mapPetError(c, err)
	}
	return ok(c, pets)
}

// GET /pets/:id
func (h *PetHandler) Get(c fiber.Ctx) error {
	claims, claimsOK := jwttoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	petID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid pet id")
	}

	p, err := h.svc.GetByID(c.Context(), petID, claims.UserID)
	if err != nil {
		return mapPetError(c, err)
	}
	return ok(c, p)
}

// POST /pets
func (h *PetHandler) Create(c fiber.Ctx) error {
	claims, claimsOK := jwttoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		Name  string `json:"name"`
		Type  string `json:"type"`
		Breed string `json:"breed"`
		Age   *int   `json:"age"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	p, err := h.svc.Create(c.Context(), pet.CreateRequest{
		OwnerID: claims.UserID,
		Name:    body.Name,
		Type:    body.Type,
		Breed:   body.Breed,
		Age:     body.Age,
	})
	if err != nil {
		return mapPetError(c, err)
	}
	return created(c, p)
}
