// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/molkkylog/ent/schema"
	"github.com/abhisek/molkkylog/ent/throwdraft"
	"github.com/abhisek/molkkylog/ent/throwrecord"
	"github.com/abhisek/molkkylog/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	throwdraftFields := schema.ThrowDraft{}.Fields()
	_ = throwdraftFields
	// throwdraftDescSessionID is the schema descriptor for session_id field.
	throwdraftDescSessionID := throwdraftFields[1].Descriptor()
	// throwdraft.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	throwdraft.SessionIDValidator = throwdraftDescSessionID.Validators[0].(func(string) error)
	// throwdraftDescDistance is the schema descriptor for distance field.
	throwdraftDescDistance := throwdraftFields[2].Descriptor()
	// throwdraft.DistanceValidator is a validator for the "distance" field. It is called by the builders before save.
	throwdraft.DistanceValidator = throwdraftDescDistance.Validators[0].(func(float64) error)
	throwrecordFields := schema.ThrowRecord{}.Fields()
	_ = throwrecordFields
	// throwrecordDescDistance is the schema descriptor for distance field.
	throwrecordDescDistance := throwrecordFields[1].Descriptor()
	// throwrecord.DistanceValidator is a validator for the "distance" field. It is called by the builders before save.
	throwrecord.DistanceValidator = throwrecordDescDistance.Validators[0].(func(float64) error)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[1].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
