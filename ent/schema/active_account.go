package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ActiveAccount is the single-row pointer to whichever account is signed
// in, so a restart lands back in the same session.
type ActiveAccount struct {
	ent.Schema
}

func (ActiveAccount) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			Comment("Signed-in account, lowercased"),
	}
}
