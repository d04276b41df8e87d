// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ThrowDraft is the predicate function for throwdraft builders.
type ThrowDraft func(*sql.Selector)

// ThrowRecord is the predicate function for throwrecord builders.
type ThrowRecord func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
