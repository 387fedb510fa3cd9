package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/petscare/petscare_backend/pkg/schedule"
)

// Doctor is an entry in the clinic's doctor directory. Booking consults
// its weekly schedule; an empty schedule means the doctor accepts any time.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("email").
			MaxLen(255).
			Unique(),

		field.String("specialization").
			MaxLen(255),

		field.String("contact_number").
			MaxLen(64).
			Optional(),

		field.Text("notes").
			Optional().
			Nillable(),

		field.String("availability").
			MaxLen(255).
			Optional().
			Comment("Human-readable summary shown in the directory; not used for validation"),

		field.JSON("schedule", schedule.Weekly{}).
			Optional().
			Comment("Structured weekly slots used to validate bookings"),
	}
}

func (Doctor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("specialization"),
	}
}
