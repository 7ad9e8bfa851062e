package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Account is a local login identity. Usernames are stored lowercased so
// lookups are case-insensitive.
type Account struct {
	ent.Schema
}

func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			Unique().
			Immutable().
			Comment("Lowercased login name"),
		field.String("password_hash").
			Sensitive().
			Comment("bcrypt hash of the password"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
