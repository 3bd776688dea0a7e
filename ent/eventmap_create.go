// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/zubairatha/CalBridge/ent/eventmap"
)

// EventMapCreate is the builder for creating a EventMap entity.
type EventMapCreate struct {
	config
	mutation *EventMapMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCalendarID sets the "calendar_id" field.
func (_c *EventMapCreate) SetCalendarID(v string) *EventMapCreate {
	_c.mutation.SetCalendarID(v)
	return _c
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_c *EventMapCreate) SetCalendarEventID(v string) *EventMapCreate {
	_c.mutation.SetCalendarEventID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EventMapCreate) SetID(v string) *EventMapCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EventMapMutation object of the builder.
func (_c *EventMapCreate) Mutation() *EventMapMutation {
	return _c.mutation
}

// Save creates the EventMap in the database.
func (_c *EventMapCreate) Save(ctx context.Context) (*EventMap, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventMapCreate) SaveX(ctx context.Context) *EventMap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventMapCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventMapCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventMapCreate) check() error {
	if _, ok := _c.mutation.CalendarID(); !ok {
		return &ValidationError{Name: "calendar_id", err: errors.New(`ent: missing required field "EventMap.calendar_id"`)}
	}
	if v, ok := _c.mutation.CalendarID(); ok {
		if err := eventmap.CalendarIDValidator(v); err != nil {
			return &ValidationError{Name: "calendar_id", err: fmt.Errorf(`ent: validator failed for field "EventMap.calendar_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CalendarEventID(); !ok {
		return &ValidationError{Name: "calendar_event_id", err: errors.New(`ent: missing required field "EventMap.calendar_event_id"`)}
	}
	if v, ok := _c.mutation.CalendarEventID(); ok {
		if err := eventmap.CalendarEventIDValidator(v); err != nil {
			return &ValidationError{Name: "calendar_event_id", err: fmt.Errorf(`ent: validator failed for field "EventMap.calendar_event_id": %w`, err)}
		}
	}
	return nil
}

func (_c *EventMapCreate) sqlSave(ctx context.Context) (*EventMap, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected EventMap.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventMapCreate) createSpec() (*EventMap, *sqlgraph.CreateSpec) {
	var (
		_node = &EventMap{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventmap.Table, sqlgraph.NewFieldSpec(eventmap.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CalendarID(); ok {
		_spec.SetField(eventmap.FieldCalendarID, field.TypeString, value)
		_node.CalendarID = value
	}
	if value, ok := _c.mutation.CalendarEventID(); ok {
		_spec.SetField(eventmap.FieldCalendarEventID, field.TypeString, value)
		_node.CalendarEventID = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventMap.Create().
//		SetCalendarID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventMapUpsert) {
//			SetCalendarID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventMapCreate) OnConflict(opts ...sql.ConflictOption) *EventMapUpsertOne {
	_c.conflict = opts
	return &EventMapUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventMap.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventMapCreate) OnConflictColumns(columns ...string) *EventMapUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventMapUpsertOne{
		create: _c,
	}
}

type (
	// EventMapUpsertOne is the builder for "upsert"-ing
	//  one EventMap node.
	EventMapUpsertOne struct {
		create *EventMapCreate
	}

	// EventMapUpsert is the "OnConflict" setter.
	EventMapUpsert struct {
		*sql.UpdateSet
	}
)

// SetCalendarID sets the "calendar_id" field.
func (u *EventMapUpsert) SetCalendarID(v string) *EventMapUpsert {
	u.Set(eventmap.FieldCalendarID, v)
	return u
}

// UpdateCalendarID sets the "calendar_id" field to the value that was provided on create.
func (u *EventMapUpsert) UpdateCalendarID() *EventMapUpsert {
	u.SetExcluded(eventmap.FieldCalendarID)
	return u
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (u *EventMapUpsert) SetCalendarEventID(v string) *EventMapUpsert {
	u.Set(eventmap.FieldCalendarEventID, v)
	return u
}

// UpdateCalendarEventID sets the "calendar_event_id" field to the value that was provided on create.
func (u *EventMapUpsert) UpdateCalendarEventID() *EventMapUpsert {
	u.SetExcluded(eventmap.FieldCalendarEventID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EventMap.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(eventmap.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventMapUpsertOne) UpdateNewValues() *EventMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(eventmap.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventMap.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventMapUpsertOne) Ignore() *EventMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventMapUpsertOne) DoNothing() *EventMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventMapCreate.OnConflict
// documentation for more info.
func (u *EventMapUpsertOne) Update(set func(*EventMapUpsert)) *EventMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventMapUpsert{UpdateSet: update})
	}))
	return u
}

// SetCalendarID sets the "calendar_id" field.
func (u *EventMapUpsertOne) SetCalendarID(v string) *EventMapUpsertOne {
	return u.Update(func(s *EventMapUpsert) {
		s.SetCalendarID(v)
	})
}

// UpdateCalendarID sets the "calendar_id" field to the value that was provided on create.
func (u *EventMapUpsertOne) UpdateCalendarID() *EventMapUpsertOne {
	return u.Update(func(s *EventMapUpsert) {
		s.UpdateCalendarID()
	})
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (u *EventMapUpsertOne) SetCalendarEventID(v string) *EventMapUpsertOne {
	return u.Update(func(s *EventMapUpsert) {
		s.SetCalendarEventID(v)
	})
}

// UpdateCalendarEventID sets the "calendar_event_id" field to the value that was provided on create.
func (u *EventMapUpsertOne) UpdateCalendarEventID() *EventMapUpsertOne {
	return u.Update(func(s *EventMapUpsert) {
		s.UpdateCalendarEventID()
	})
}

// Exec executes the query.
func (u *EventMapUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventMapCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventMapUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventMapUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EventMapUpsertOne.ID is not supported by MySQL driver. Use EventMapUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventMapUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventMapCreateBulk is the builder for creating many EventMap entities in bulk.
type EventMapCreateBulk struct {
	config
	err      error
	builders []*EventMapCreate
	conflict []sql.ConflictOption
}

// Save creates the EventMap entities in the database.
func (_c *EventMapCreateBulk) Save(ctx context.Context) ([]*EventMap, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventMap, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMapMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EventMapCreateBulk) SaveX(ctx context.Context) []*EventMap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventMapCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventMapCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventMap.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventMapUpsert) {
//			SetCalendarID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventMapCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventMapUpsertBulk {
	_c.conflict = opts
	return &EventMapUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventMap.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventMapCreateBulk) OnConflictColumns(columns ...string) *EventMapUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventMapUpsertBulk{
		create: _c,
	}
}

// EventMapUpsertBulk is the builder for "upsert"-ing
// a bulk of EventMap nodes.
type EventMapUpsertBulk struct {
	create *EventMapCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EventMap.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(eventmap.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventMapUpsertBulk) UpdateNewValues() *EventMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(eventmap.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventMap.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventMapUpsertBulk) Ignore() *EventMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventMapUpsertBulk) DoNothing() *EventMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventMapCreateBulk.OnConflict
// documentation for more info.
func (u *EventMapUpsertBulk) Update(set func(*EventMapUpsert)) *EventMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventMapUpsert{UpdateSet: update})
	}))
	return u
}

// SetCalendarID sets the "calendar_id" field.
func (u *EventMapUpsertBulk) SetCalendarID(v string) *EventMapUpsertBulk {
	return u.Update(func(s *EventMapUpsert) {
		s.SetCalendarID(v)
	})
}

// UpdateCalendarID sets the "calendar_id" field to the value that was provided on create.
func (u *EventMapUpsertBulk) UpdateCalendarID() *EventMapUpsertBulk {
	return u.Update(func(s *EventMapUpsert) {
		s.UpdateCalendarID()
	})
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (u *EventMapUpsertBulk) SetCalendarEventID(v string) *EventMapUpsertBulk {
	return u.Update(func(s *EventMapUpsert) {
		s.SetCalendarEventID(v)
	})
}

// UpdateCalendarEventID sets the "calendar_event_id" field to the value that was provided on create.
func (u *EventMapUpsertBulk) UpdateCalendarEventID() *EventMapUpsertBulk {
	return u.Update(func(s *EventMapUpsert) {
		s.UpdateCalendarEventID()
	})
}

// Exec executes the query.
func (u *EventMapUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventMapCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventMapCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventMapUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
