package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// A task is either a leaf (simple task or subtask, backed by exactly one
// calendar event) or a parent of a complex decomposition (no event of its own).
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID generated by the time allotment agent"),
		field.String("title").
			NotEmpty(),
		field.String("parent_id").
			Optional().
			Nillable().
			Comment("Set for subtasks; null for simple tasks and parents"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("children", Task.Type).
			From("parent").
			Field("parent_id").
			Unique(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Cascade deletes look children up by parent
		index.Fields("parent_id"),
	}
}
