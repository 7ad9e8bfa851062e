// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// ActiveAccount is the predicate function for activeaccount builders.
type ActiveAccount func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)
