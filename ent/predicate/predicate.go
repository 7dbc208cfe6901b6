// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// QARecord is the predicate function for qarecord builders.
type QARecord func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
