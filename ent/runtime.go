// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/zubairatha/CalBridge/ent/eventmap"
	"github.com/zubairatha/CalBridge/ent/schema"
	"github.com/zubairatha/CalBridge/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventmapFields := schema.EventMap{}.Fields()
	_ = eventmapFields
	// eventmapDescCalendarID is the schema descriptor for calendar_id field.
	eventmapDescCalendarID := eventmapFields[1].Descriptor()
	// eventmap.CalendarIDValidator is a validator for the "calendar_id" field. It is called by the builders before save.
	eventmap.CalendarIDValidator = eventmapDescCalendarID.Validators[0].(func(string) error)
	// eventmapDescCalendarEventID is the schema descriptor for calendar_event_id field.
	eventmapDescCalendarEventID := eventmapFields[2].Descriptor()
	// eventmap.CalendarEventIDValidator is a validator for the "calendar_event_id" field. It is called by the builders before save.
	eventmap.CalendarEventIDValidator = eventmapDescCalendarEventID.Validators[0].(func(string) error)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[1].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
}
