// Code generated by ent, DO NOT EDIT.

package eventmap

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the eventmap type in the database.
	Label = "event_map"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldCalendarID holds the string denoting the calendar_id field in the database.
	FieldCalendarID = "calendar_id"
	// FieldCalendarEventID holds the string denoting the calendar_event_id field in the database.
	FieldCalendarEventID = "calendar_event_id"
	// Table holds the table name of the eventmap in the database.
	Table = "event_maps"
)

// Columns holds all SQL columns for eventmap fields.
var Columns = []string{
	FieldID,
	FieldCalendarID,
	FieldCalendarEventID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CalendarIDValidator is a validator for the "calendar_id" field. It is called by the builders before save.
	CalendarIDValidator func(string) error
	// CalendarEventIDValidator is a validator for the "calendar_event_id" field. It is called by the builders before save.
	CalendarEventIDValidator func(string) error
)

// OrderOption defines the ordering options for the EventMap queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCalendarID orders the results by the calendar_id field.
func ByCalendarID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalendarID, opts...).ToFunc()
}

// ByCalendarEventID orders the results by the calendar_event_id field.
func ByCalendarEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalendarEventID, opts...).ToFunc()
}
