package pet

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/petscare/petscare_backend/internal/repo"
	entpet "github.com/petscare/petscare_backend/internal/repo/pet"
)

type CreateRequest struct {
	OwnerID uuid.UUID
	Name    string
	Type    string
	Breed   string
	Age     *int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Pet, error)
	GetByID(ctx context.Context, petID, ownerID uuid.UUID) (*repo.Pet, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*repo.Pet, error)
}

type petService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &petService{db: db}
}

func (s *petService) Create(ctx context.Context, req CreateRequest) (*repo.Pet, error) {
	c := s.db.Pet.Create().
		SetOwnerID(req.OwnerID).
		SetName(req.Name).
		SetType(req.Type).
		SetBreed(req.Breed)

	if req.Age != nil {
		c = c.SetAge(*req.Age)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create pet: %w", err)
	}
	return p, nil
}

// GetByID is owner-scoped: a pet is only visible to its owner.
func (s *petService) GetByID(ctx context.Context, petID, ownerID uuid.UUID) (*repo.Pet, error) {
	p, err := s.db.Pet.Query().
		Where(entpet.ID(petID), entpet.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get pet: %w", err)
	}
	return p, nil
}

func (s *petService) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*repo.Pet, error) {
	pets, err := s.db.Pet.Query().
		Where(entpet.OwnerID(ownerID)).
		Order(entpet.ByName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	return pets, nil
}
