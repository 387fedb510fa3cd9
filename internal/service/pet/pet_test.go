package pet

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/petscare/petscare_backend/internal/repo/enttest"
)

func TestOwnerScoping(t *testing.T) {
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })
	svc := New(db)
	ctx := context.Background()

	alice := uuid.Must(uuid.NewV7())
	bob := uuid.Must(uuid.NewV7())

	age := 3
	max, err := svc.Create(ctx, CreateRequest{OwnerID: alice, Name: "Max", Type: "dog", Breed: "beagle", Age: &age})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, CreateRequest{OwnerID: alice, Name: "Whiskers", Type: "cat"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, CreateRequest{OwnerID: bob, Name: "Rex", Type: "dog"}); err != nil {
		t.Fatal(err)
	}

	pets, err := svc.ListForOwner(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if len(pets) != 2 {
		t.Fatalf("alice owns %d pets, want 2", len(pets))
	}
	if pets[0].Name != "Max" {
		t.Errorf("expected name ordering, got %s first", pets[0].Name)
	}

	got, err := svc.GetByID(ctx, max.ID, alice)
	if err != nil {
		t.Fatal(err)
	}
	if got.Age != 3 {
		t.Errorf("age = %d", got.Age)
	}

	// Bob cannot read Alice's pet.
	if _, err := svc.GetByID(ctx, max.ID, bob); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
