package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EventMap links a leaf task to the external calendar event created for it.
// The entity ID is the owning task's ID (stored as task_id); parent tasks
// never have an EventMap row. The foreign key to tasks lives in the
// migration SQL — cascade deletion is explicit in the event creator, which
// must delete the external event before the rows.
type EventMap struct {
	ent.Schema
}

// Fields of the EventMap.
func (EventMap) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("calendar_id").
			NotEmpty(),
		field.String("calendar_event_id").
			NotEmpty().
			Comment("Event ID returned by the calendar bridge"),
	}
}

// Indexes of the EventMap.
func (EventMap) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("calendar_id", "calendar_event_id").
			Unique(),
	}
}
