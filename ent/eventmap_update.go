// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/zubairatha/CalBridge/ent/eventmap"
	"github.com/zubairatha/CalBridge/ent/predicate"
)

// EventMapUpdate is the builder for updating EventMap entities.
type EventMapUpdate struct {
	config
	hooks    []Hook
	mutation *EventMapMutation
}

// Where appends a list predicates to the EventMapUpdate builder.
func (_u *EventMapUpdate) Where(ps ...predicate.EventMap) *EventMapUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCalendarID sets the "calendar_id" field.
func (_u *EventMapUpdate) SetCalendarID(v string) *EventMapUpdate {
	_u.mutation.SetCalendarID(v)
	return _u
}

// SetNillableCalendarID sets the "calendar_id" field if the given value is not nil.
func (_u *EventMapUpdate) SetNillableCalendarID(v *string) *EventMapUpdate {
	if v != nil {
		_u.SetCalendarID(*v)
	}
	return _u
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_u *EventMapUpdate) SetCalendarEventID(v string) *EventMapUpdate {
	_u.mutation.SetCalendarEventID(v)
	return _u
}

// SetNillableCalendarEventID sets the "calendar_event_id" field if the given value is not nil.
func (_u *EventMapUpdate) SetNillableCalendarEventID(v *string) *EventMapUpdate {
	if v != nil {
		_u.SetCalendarEventID(*v)
	}
	return _u
}

// Mutation returns the EventMapMutation object of the builder.
func (_u *EventMapUpdate) Mutation() *EventMapMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventMapUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventMapUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventMapUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventMapUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventMapUpdate) check() error {
	if v, ok := _u.mutation.CalendarID(); ok {
		if err := eventmap.CalendarIDValidator(v); err != nil {
			return &ValidationError{Name: "calendar_id", err: fmt.Errorf(`ent: validator failed for field "EventMap.calendar_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CalendarEventID(); ok {
		if err := eventmap.CalendarEventIDValidator(v); err != nil {
			return &ValidationError{Name: "calendar_event_id", err: fmt.Errorf(`ent: validator failed for field "EventMap.calendar_event_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EventMapUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventmap.Table, eventmap.Columns, sqlgraph.NewFieldSpec(eventmap.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CalendarID(); ok {
		_spec.SetField(eventmap.FieldCalendarID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CalendarEventID(); ok {
		_spec.SetField(eventmap.FieldCalendarEventID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventmap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventMapUpdateOne is the builder for updating a single EventMap entity.
type EventMapUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMapMutation
}

// SetCalendarID sets the "calendar_id" field.
func (_u *EventMapUpdateOne) SetCalendarID(v string) *EventMapUpdateOne {
	_u.mutation.SetCalendarID(v)
	return _u
}

// SetNillableCalendarID sets the "calendar_id" field if the given value is not nil.
func (_u *EventMapUpdateOne) SetNillableCalendarID(v *string) *EventMapUpdateOne {
	if v != nil {
		_u.SetCalendarID(*v)
	}
	return _u
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_u *EventMapUpdateOne) SetCalendarEventID(v string) *EventMapUpdateOne {
	_u.mutation.SetCalendarEventID(v)
	return _u
}

// SetNillableCalendarEventID sets the "calendar_event_id" field if the given value is not nil.
func (_u *EventMapUpdateOne) SetNillableCalendarEventID(v *string) *EventMapUpdateOne {
	if v != nil {
		_u.SetCalendarEventID(*v)
	}
	return _u
}

// Mutation returns the EventMapMutation object of the builder.
func (_u *EventMapUpdateOne) Mutation() *EventMapMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventMapUpdate builder.
func (_u *EventMapUpdateOne) Where(ps ...predicate.EventMap) *EventMapUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventMapUpdateOne) Select(field string, fields ...string) *EventMapUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventMap entity.
func (_u *EventMapUpdateOne) Save(ctx context.Context) (*EventMap, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventMapUpdateOne) SaveX(ctx context.Context) *EventMap {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventMapUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventMapUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventMapUpdateOne) check() error {
	if v, ok := _u.mutation.CalendarID(); ok {
		if err := eventmap.CalendarIDValidator(v); err != nil {
			return &ValidationError{Name: "calendar_id", err: fmt.Errorf(`ent: validator failed for field "EventMap.calendar_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CalendarEventID(); ok {
		if err := eventmap.CalendarEventIDValidator(v); err != nil {
			return &ValidationError{Name: "calendar_event_id", err: fmt.Errorf(`ent: validator failed for field "EventMap.calendar_event_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EventMapUpdateOne) sqlSave(ctx context.Context) (_node *EventMap, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventmap.Table, eventmap.Columns, sqlgraph.NewFieldSpec(eventmap.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventMap.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventmap.FieldID)
		for _, f := range fields {
			if !eventmap.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventmap.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CalendarID(); ok {
		_spec.SetField(eventmap.FieldCalendarID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CalendarEventID(); ok {
		_spec.SetField(eventmap.FieldCalendarEventID, field.TypeString, value)
	}
	_node = &EventMap{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventmap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
