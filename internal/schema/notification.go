package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Notification is a persisted in-app notification for a pet owner,
// produced by the appointment response fan-out.
type Notification struct {
	ent.Schema
}

func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("recipient_id", uuid.UUID{}).
			Comment("Target user (pet owner)"),

		field.UUID("appointment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Triggering appointment"),

		field.Enum("type").
			Values("appointment_accepted", "appointment_rejected", "appointment_cancelled", "appointment_updated", "appointment_reminder"),

		field.String("title").
			MaxLen(255),

		field.Text("message"),

		field.String("acted_by").
			MaxLen(255).
			Default("").
			Comment("Doctor name or \"Admin\""),

		field.Bool("is_read").
			Default(false),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient_id", "is_read", "created_at"),
	}
}
