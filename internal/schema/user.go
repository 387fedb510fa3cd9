package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User is a pet-owner or admin account. Registration and credentials are
// owned by the identity service; this table exists so the booking core can
// resolve owner names and email addresses for notifications.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("email").
			MaxLen(255).
			Unique(),

		field.Enum("role").
			Values("petOwner", "doctor", "admin").
			Default("petOwner"),
	}
}
