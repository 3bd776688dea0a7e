// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EventMap is the predicate function for eventmap builders.
type EventMap func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
