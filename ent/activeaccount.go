// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/parlolabs/parlo/ent/activeaccount"
)

// ActiveAccount is the model entity for the ActiveAccount schema.
type ActiveAccount struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Signed-in account, lowercased
	Username     string `json:"username,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActiveAccount) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case activeaccount.FieldID:
			values[i] = new(sql.NullInt64)
		case activeaccount.FieldUsername:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActiveAccount fields.
func (_m *ActiveAccount) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case activeaccount.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case activeaccount.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActiveAccount.
// This includes values selected through modifiers, order, etc.
func (_m *ActiveAccount) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ActiveAccount.
// Note that you need to call ActiveAccount.Unwrap() before calling this method if this ActiveAccount
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActiveAccount) Update() *ActiveAccountUpdateOne {
	return NewActiveAccountClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActiveAccount entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActiveAccount) Unwrap() *ActiveAccount {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActiveAccount is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActiveAccount) String() string {
	var builder strings.Builder
	builder.WriteString("ActiveAccount(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteByte(')')
	return builder.String()
}

// ActiveAccounts is a parsable slice of ActiveAccount.
type ActiveAccounts []*ActiveAccount
