// Code generated by ent, DO NOT EDIT.

package eventmap

import (
	"entgo.io/ent/dialect/sql"
	"github.com/zubairatha/CalBridge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EventMap {
	return predicate.EventMap(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EventMap {
	return predicate.EventMap(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EventMap {
	return predicate.EventMap(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EventMap {
	return predicate.EventMap(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EventMap {
	return predicate.EventMap(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EventMap {
	return predicate.EventMap(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EventMap {
	return predicate.EventMap(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EventMap {
	return predicate.EventMap(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EventMap {
	return predicate.EventMap(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EventMap {
	return predicate.EventMap(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EventMap {
	return predicate.EventMap(sql.FieldContainsFold(FieldID, id))
}

// CalendarID applies equality check predicate on the "calendar_id" field. It's identical to CalendarIDEQ.
func CalendarID(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldEQ(FieldCalendarID, v))
}

// CalendarEventID applies equality check predicate on the "calendar_event_id" field. It's identical to CalendarEventIDEQ.
func CalendarEventID(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldEQ(FieldCalendarEventID, v))
}

// CalendarIDEQ applies the EQ predicate on the "calendar_id" field.
func CalendarIDEQ(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldEQ(FieldCalendarID, v))
}

// CalendarIDNEQ applies the NEQ predicate on the "calendar_id" field.
func CalendarIDNEQ(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldNEQ(FieldCalendarID, v))
}

// CalendarIDIn applies the In predicate on the "calendar_id" field.
func CalendarIDIn(vs ...string) predicate.EventMap {
	return predicate.EventMap(sql.FieldIn(FieldCalendarID, vs...))
}

// CalendarIDNotIn applies the NotIn predicate on the "calendar_id" field.
func CalendarIDNotIn(vs ...string) predicate.EventMap {
	return predicate.EventMap(sql.FieldNotIn(FieldCalendarID, vs...))
}

// CalendarIDGT applies the GT predicate on the "calendar_id" field.
func CalendarIDGT(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldGT(FieldCalendarID, v))
}

// CalendarIDGTE applies the GTE predicate on the "calendar_id" field.
func CalendarIDGTE(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldGTE(FieldCalendarID, v))
}

// CalendarIDLT applies the LT predicate on the "calendar_id" field.
func CalendarIDLT(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldLT(FieldCalendarID, v))
}

// CalendarIDLTE applies the LTE predicate on the "calendar_id" field.
func CalendarIDLTE(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldLTE(FieldCalendarID, v))
}

// CalendarIDContains applies the Contains predicate on the "calendar_id" field.
func CalendarIDContains(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldContains(FieldCalendarID, v))
}

// CalendarIDHasPrefix applies the HasPrefix predicate on the "calendar_id" field.
func CalendarIDHasPrefix(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldHasPrefix(FieldCalendarID, v))
}

// CalendarIDHasSuffix applies the HasSuffix predicate on the "calendar_id" field.
func CalendarIDHasSuffix(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldHasSuffix(FieldCalendarID, v))
}

// CalendarIDEqualFold applies the EqualFold predicate on the "calendar_id" field.
func CalendarIDEqualFold(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldEqualFold(FieldCalendarID, v))
}

// CalendarIDContainsFold applies the ContainsFold predicate on the "calendar_id" field.
func CalendarIDContainsFold(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldContainsFold(FieldCalendarID, v))
}

// CalendarEventIDEQ applies the EQ predicate on the "calendar_event_id" field.
func CalendarEventIDEQ(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldEQ(FieldCalendarEventID, v))
}

// CalendarEventIDNEQ applies the NEQ predicate on the "calendar_event_id" field.
func CalendarEventIDNEQ(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldNEQ(FieldCalendarEventID, v))
}

// CalendarEventIDIn applies the In predicate on the "calendar_event_id" field.
func CalendarEventIDIn(vs ...string) predicate.EventMap {
	return predicate.EventMap(sql.FieldIn(FieldCalendarEventID, vs...))
}

// CalendarEventIDNotIn applies the NotIn predicate on the "calendar_event_id" field.
func CalendarEventIDNotIn(vs ...string) predicate.EventMap {
	return predicate.EventMap(sql.FieldNotIn(FieldCalendarEventID, vs...))
}

// CalendarEventIDGT applies the GT predicate on the "calendar_event_id" field.
func CalendarEventIDGT(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldGT(FieldCalendarEventID, v))
}

// CalendarEventIDGTE applies the GTE predicate on the "calendar_event_id" field.
func CalendarEventIDGTE(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldGTE(FieldCalendarEventID, v))
}

// CalendarEventIDLT applies the LT predicate on the "calendar_event_id" field.
func CalendarEventIDLT(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldLT(FieldCalendarEventID, v))
}

// CalendarEventIDLTE applies the LTE predicate on the "calendar_event_id" field.
func CalendarEventIDLTE(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldLTE(FieldCalendarEventID, v))
}

// CalendarEventIDContains applies the Contains predicate on the "calendar_event_id" field.
func CalendarEventIDContains(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldContains(FieldCalendarEventID, v))
}

// CalendarEventIDHasPrefix applies the HasPrefix predicate on the "calendar_event_id" field.
func CalendarEventIDHasPrefix(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldHasPrefix(FieldCalendarEventID, v))
}

// CalendarEventIDHasSuffix applies the HasSuffix predicate on the "calendar_event_id" field.
func CalendarEventIDHasSuffix(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldHasSuffix(FieldCalendarEventID, v))
}

// CalendarEventIDEqualFold applies the EqualFold predicate on the "calendar_event_id" field.
func CalendarEventIDEqualFold(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldEqualFold(FieldCalendarEventID, v))
}

// CalendarEventIDContainsFold applies the ContainsFold predicate on the "calendar_event_id" field.
func CalendarEventIDContainsFold(v string) predicate.EventMap {
	return predicate.EventMap(sql.FieldContainsFold(FieldCalendarEventID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EventMap) predicate.EventMap {
	return predicate.EventMap(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EventMap) predicate.EventMap {
	return predicate.EventMap(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EventMap) predicate.EventMap {
	return predicate.EventMap(sql.NotPredicates(p))
}
