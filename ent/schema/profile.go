package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile holds one account's learning state as a versioned JSON document.
// The document is stored as text rather than a typed JSON field so the
// store can detect corrupt or newer-versioned documents before decoding.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			Unique().
			Immutable().
			Comment("Owning account, lowercased"),
		field.Int("version").
			Comment("Document schema version at write time"),
		field.Text("data").
			Comment("Profile document as JSON text"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username"),
	}
}
