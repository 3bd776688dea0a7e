// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/zubairatha/CalBridge/ent/eventmap"
)

// EventMap is the model entity for the EventMap schema.
type EventMap struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CalendarID holds the value of the "calendar_id" field.
	CalendarID string `json:"calendar_id,omitempty"`
	// Event ID returned by the calendar bridge
	CalendarEventID string `json:"calendar_event_id,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EventMap) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case eventmap.FieldID, eventmap.FieldCalendarID, eventmap.FieldCalendarEventID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EventMap fields.
func (_m *EventMap) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case eventmap.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case eventmap.FieldCalendarID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field calendar_id", values[i])
			} else if value.Valid {
				_m.CalendarID = value.String
			}
		case eventmap.FieldCalendarEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field calendar_event_id", values[i])
			} else if value.Valid {
				_m.CalendarEventID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EventMap.
// This includes values selected through modifiers, order, etc.
func (_m *EventMap) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EventMap.
// Note that you need to call EventMap.Unwrap() before calling this method if this EventMap
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EventMap) Update() *EventMapUpdateOne {
	return NewEventMapClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EventMap entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EventMap) Unwrap() *EventMap {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EventMap is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EventMap) String() string {
	var builder strings.Builder
	builder.WriteString("EventMap(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("calendar_id=")
	builder.WriteString(_m.CalendarID)
	builder.WriteString(", ")
	builder.WriteString("calendar_event_id=")
	builder.WriteString(_m.CalendarEventID)
	builder.WriteByte(')')
	return builder.String()
}

// EventMaps is a parsable slice of EventMap.
type EventMaps []*EventMap
