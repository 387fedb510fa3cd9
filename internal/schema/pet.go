package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Pet belongs to a pet-owner account. Full pet management is plumbing
// outside the booking core; bookings reference pets by id.
type Pet struct {
	ent.Schema
}

func (Pet) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Pet) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("owner_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("type").
			MaxLen(64).
			Optional().
			Comment("dog, cat, bird, ..."),

		field.String("breed").
			MaxLen(128).
			Optional(),

		field.Int("age").
			Optional().
			Min(0),
	}
}

func (Pet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
	}
}
