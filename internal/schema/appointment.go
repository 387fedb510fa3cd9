package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booking of a pet against a doctor's availability.
// Created pending by the owner; resolved exactly once by the assigned
// doctor (or an admin acting on their behalf).
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("owner_id", uuid.UUID{}).
			Comment("FK → users.id (the pet owner)"),

		field.UUID("pet_id", uuid.UUID{}).
			Comment("FK → pets.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.Time("appointment_date").
			Comment("Requested date and time, local clock"),

		field.Text("query").
			Optional().
			Nillable().
			Comment("Free-text note from the owner"),

		field.Enum("status").
			Values("pending", "accepted", "rejected", "cancelled").
			Default("pending"),

		field.String("acted_by").
			MaxLen(255).
			Optional().
			Nillable().
			Comment("Display name of whoever resolved the appointment (doctor name or \"Admin\")"),

		field.Time("responded_at").
			Optional().
			Nillable(),

		field.Text("rejection_reason").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
		index.Fields("doctor_id", "status", "appointment_date"),
	}
}
