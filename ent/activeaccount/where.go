// Code generated by ent, DO NOT EDIT.

package activeaccount

import (
	"entgo.io/ent/dialect/sql"
	"github.com/parlolabs/parlo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldLTE(FieldID, id))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldEQ(FieldUsername, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.FieldContainsFold(FieldUsername, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActiveAccount) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActiveAccount) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActiveAccount) predicate.ActiveAccount {
	return predicate.ActiveAccount(sql.NotPredicates(p))
}
