// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventMapsColumns holds the columns for the "event_maps" table.
	EventMapsColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "calendar_id", Type: field.TypeString},
		{Name: "calendar_event_id", Type: field.TypeString},
	}
	// EventMapsTable holds the schema information for the "event_maps" table.
	EventMapsTable = &schema.Table{
		Name:       "event_maps",
		Columns:    EventMapsColumns,
		PrimaryKey: []*schema.Column{EventMapsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "eventmap_calendar_id_calendar_event_id",
				Unique:  true,
				Columns: []*schema.Column{EventMapsColumns[1], EventMapsColumns[2]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_tasks_children",
				Columns:    []*schema.Column{TasksColumns[2]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_parent_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventMapsTable,
		TasksTable,
	}
)

func init() {
	TasksTable.ForeignKeys[0].RefTable = TasksTable
}
