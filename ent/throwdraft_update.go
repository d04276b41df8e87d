// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/molkkylog/ent/predicate"
	"github.com/abhisek/molkkylog/ent/throwdraft"
	"github.com/abhisek/molkkylog/ent/user"
)

// ThrowDraftUpdate is the builder for updating ThrowDraft entities.
type ThrowDraftUpdate struct {
	config
	hooks    []Hook
	mutation *ThrowDraftMutation
}

// Where appends a list predicates to the ThrowDraftUpdate builder.
func (_u *ThrowDraftUpdate) Where(ps ...predicate.ThrowDraft) *ThrowDraftUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ThrowDraftUpdate) SetUserID(v int) *ThrowDraftUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ThrowDraftUpdate) SetNillableUserID(v *int) *ThrowDraftUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ThrowDraftUpdate) SetSessionID(v string) *ThrowDraftUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ThrowDraftUpdate) SetNillableSessionID(v *string) *ThrowDraftUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDistance sets the "distance" field.
func (_u *ThrowDraftUpdate) SetDistance(v float64) *ThrowDraftUpdate {
	_u.mutation.ResetDistance()
	_u.mutation.SetDistance(v)
	return _u
}

// SetNillableDistance sets the "distance" field if the given value is not nil.
func (_u *ThrowDraftUpdate) SetNillableDistance(v *float64) *ThrowDraftUpdate {
	if v != nil {
		_u.SetDistance(*v)
	}
	return _u
}

// AddDistance adds value to the "distance" field.
func (_u *ThrowDraftUpdate) AddDistance(v float64) *ThrowDraftUpdate {
	_u.mutation.AddDistance(v)
	return _u
}

// SetAngle sets the "angle" field.
func (_u *ThrowDraftUpdate) SetAngle(v throwdraft.Angle) *ThrowDraftUpdate {
	_u.mutation.SetAngle(v)
	return _u
}

// SetNillableAngle sets the "angle" field if the given value is not nil.
func (_u *ThrowDraftUpdate) SetNillableAngle(v *throwdraft.Angle) *ThrowDraftUpdate {
	if v != nil {
		_u.SetAngle(*v)
	}
	return _u
}

// SetWeather sets the "weather" field.
func (_u *ThrowDraftUpdate) SetWeather(v string) *ThrowDraftUpdate {
	_u.mutation.SetWeather(v)
	return _u
}

// SetNillableWeather sets the "weather" field if the given value is not nil.
func (_u *ThrowDraftUpdate) SetNillableWeather(v *string) *ThrowDraftUpdate {
	if v != nil {
		_u.SetWeather(*v)
	}
	return _u
}

// ClearWeather clears the value of the "weather" field.
func (_u *ThrowDraftUpdate) ClearWeather() *ThrowDraftUpdate {
	_u.mutation.ClearWeather()
	return _u
}

// SetHumidity sets the "humidity" field.
func (_u *ThrowDraftUpdate) SetHumidity(v float64) *ThrowDraftUpdate {
	_u.mutation.ResetHumidity()
	_u.mutation.SetHumidity(v)
	return _u
}

// SetNillableHumidity sets the "humidity" field if the given value is not nil.
func (_u *ThrowDraftUpdate) SetNillableHumidity(v *float64) *ThrowDraftUpdate {
	if v != nil {
		_u.SetHumidity(*v)
	}
	return _u
}

// AddHumidity adds value to the "humidity" field.
func (_u *ThrowDraftUpdate) AddHumidity(v float64) *ThrowDraftUpdate {
	_u.mutation.AddHumidity(v)
	return _u
}

// ClearHumidity clears the value of the "humidity" field.
func (_u *ThrowDraftUpdate) ClearHumidity() *ThrowDraftUpdate {
	_u.mutation.ClearHumidity()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *ThrowDraftUpdate) SetTemperature(v float64) *ThrowDraftUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *ThrowDraftUpdate) SetNillableTemperature(v *float64) *ThrowDraftUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *ThrowDraftUpdate) AddTemperature(v float64) *ThrowDraftUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *ThrowDraftUpdate) ClearTemperature() *ThrowDraftUpdate {
	_u.mutation.ClearTemperature()
	return _u
}

// SetSoil sets the "soil" field.
func (_u *ThrowDraftUpdate) SetSoil(v string) *ThrowDraftUpdate {
	_u.mutation.SetSoil(v)
	return _u
}

// SetNillableSoil sets the "soil" field if the given value is not nil.
func (_u *ThrowDraftUpdate) SetNillableSoil(v *string) *ThrowDraftUpdate {
	if v != nil {
		_u.SetSoil(*v)
	}
	return _u
}

// ClearSoil clears the value of the "soil" field.
func (_u *ThrowDraftUpdate) ClearSoil() *ThrowDraftUpdate {
	_u.mutation.ClearSoil()
	return _u
}

// SetMolkkyWeight sets the "molkky_weight" field.
func (_u *ThrowDraftUpdate) SetMolkkyWeight(v float64) *ThrowDraftUpdate {
	_u.mutation.ResetMolkkyWeight()
	_u.mutation.SetMolkkyWeight(v)
	return _u
}

// SetNillableMolkkyWeight sets the "molkky_weight" field if the given value is not nil.
func (_u *ThrowDraftUpdate) SetNillableMolkkyWeight(v *float64) *ThrowDraftUpdate {
	if v != nil {
		_u.SetMolkkyWeight(*v)
	}
	return _u
}

// AddMolkkyWeight adds value to the "molkky_weight" field.
func (_u *ThrowDraftUpdate) AddMolkkyWeight(v float64) *ThrowDraftUpdate {
	_u.mutation.AddMolkkyWeight(v)
	return _u
}

// ClearMolkkyWeight clears the value of the "molkky_weight" field.
func (_u *ThrowDraftUpdate) ClearMolkkyWeight() *ThrowDraftUpdate {
	_u.mutation.ClearMolkkyWeight()
	return _u
}

// SetIsSuccess sets the "is_success" field.
func (_u *ThrowDraftUpdate) SetIsSuccess(v bool) *ThrowDraftUpdate {
	_u.mutation.SetIsSuccess(v)
	return _u
}

// SetNillableIsSuccess sets the "is_success" field if the given value is not nil.
func (_u *ThrowDraftUpdate) SetNillableIsSuccess(v *bool) *ThrowDraftUpdate {
	if v != nil {
		_u.SetIsSuccess(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ThrowDraftUpdate) SetTimestamp(v time.Time) *ThrowDraftUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ThrowDraftUpdate) SetNillableTimestamp(v *time.Time) *ThrowDraftUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *ThrowDraftUpdate) SetOwnerID(id int) *ThrowDraftUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *ThrowDraftUpdate) SetOwner(v *User) *ThrowDraftUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the ThrowDraftMutation object of the builder.
func (_u *ThrowDraftUpdate) Mutation() *ThrowDraftMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *ThrowDraftUpdate) ClearOwner() *ThrowDraftUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ThrowDraftUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThrowDraftUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ThrowDraftUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThrowDraftUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThrowDraftUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := throwdraft.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ThrowDraft.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Distance(); ok {
		if err := throwdraft.DistanceValidator(v); err != nil {
			return &ValidationError{Name: "distance", err: fmt.Errorf(`ent: validator failed for field "ThrowDraft.distance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Angle(); ok {
		if err := throwdraft.AngleValidator(v); err != nil {
			return &ValidationError{Name: "angle", err: fmt.Errorf(`ent: validator failed for field "ThrowDraft.angle": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ThrowDraft.owner"`)
	}
	return nil
}

func (_u *ThrowDraftUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(throwdraft.Table, throwdraft.Columns, sqlgraph.NewFieldSpec(throwdraft.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(throwdraft.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Distance(); ok {
		_spec.SetField(throwdraft.FieldDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistance(); ok {
		_spec.AddField(throwdraft.FieldDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Angle(); ok {
		_spec.SetField(throwdraft.FieldAngle, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Weather(); ok {
		_spec.SetField(throwdraft.FieldWeather, field.TypeString, value)
	}
	if _u.mutation.WeatherCleared() {
		_spec.ClearField(throwdraft.FieldWeather, field.TypeString)
	}
	if value, ok := _u.mutation.Humidity(); ok {
		_spec.SetField(throwdraft.FieldHumidity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHumidity(); ok {
		_spec.AddField(throwdraft.FieldHumidity, field.TypeFloat64, value)
	}
	if _u.mutation.HumidityCleared() {
		_spec.ClearField(throwdraft.FieldHumidity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(throwdraft.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(throwdraft.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(throwdraft.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Soil(); ok {
		_spec.SetField(throwdraft.FieldSoil, field.TypeString, value)
	}
	if _u.mutation.SoilCleared() {
		_spec.ClearField(throwdraft.FieldSoil, field.TypeString)
	}
	if value, ok := _u.mutation.MolkkyWeight(); ok {
		_spec.SetField(throwdraft.FieldMolkkyWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMolkkyWeight(); ok {
		_spec.AddField(throwdraft.FieldMolkkyWeight, field.TypeFloat64, value)
	}
	if _u.mutation.MolkkyWeightCleared() {
		_spec.ClearField(throwdraft.FieldMolkkyWeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsSuccess(); ok {
		_spec.SetField(throwdraft.FieldIsSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(throwdraft.FieldTimestamp, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   throwdraft.OwnerTable,
			Columns: []string{throwdraft.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   throwdraft.OwnerTable,
			Columns: []string{throwdraft.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{throwdraft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ThrowDraftUpdateOne is the builder for updating a single ThrowDraft entity.
type ThrowDraftUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ThrowDraftMutation
}

// SetUserID sets the "user_id" field.
func (_u *ThrowDraftUpdateOne) SetUserID(v int) *ThrowDraftUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ThrowDraftUpdateOne) SetNillableUserID(v *int) *ThrowDraftUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ThrowDraftUpdateOne) SetSessionID(v string) *ThrowDraftUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ThrowDraftUpdateOne) SetNillableSessionID(v *string) *ThrowDraftUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDistance sets the "distance" field.
func (_u *ThrowDraftUpdateOne) SetDistance(v float64) *ThrowDraftUpdateOne {
	_u.mutation.ResetDistance()
	_u.mutation.SetDistance(v)
	return _u
}

// SetNillableDistance sets the "distance" field if the given value is not nil.
func (_u *ThrowDraftUpdateOne) SetNillableDistance(v *float64) *ThrowDraftUpdateOne {
	if v != nil {
		_u.SetDistance(*v)
	}
	return _u
}

// AddDistance adds value to the "distance" field.
func (_u *ThrowDraftUpdateOne) AddDistance(v float64) *ThrowDraftUpdateOne {
	_u.mutation.AddDistance(v)
	return _u
}

// SetAngle sets the "angle" field.
func (_u *ThrowDraftUpdateOne) SetAngle(v throwdraft.Angle) *ThrowDraftUpdateOne {
	_u.mutation.SetAngle(v)
	return _u
}

// SetNillableAngle sets the "angle" field if the given value is not nil.
func (_u *ThrowDraftUpdateOne) SetNillableAngle(v *throwdraft.Angle) *ThrowDraftUpdateOne {
	if v != nil {
		_u.SetAngle(*v)
	}
	return _u
}

// SetWeather sets the "weather" field.
func (_u *ThrowDraftUpdateOne) SetWeather(v string) *ThrowDraftUpdateOne {
	_u.mutation.SetWeather(v)
	return _u
}

// SetNillableWeather sets the "weather" field if the given value is not nil.
func (_u *ThrowDraftUpdateOne) SetNillableWeather(v *string) *ThrowDraftUpdateOne {
	if v != nil {
		_u.SetWeather(*v)
	}
	return _u
}

// ClearWeather clears the value of the "weather" field.
func (_u *ThrowDraftUpdateOne) ClearWeather() *ThrowDraftUpdateOne {
	_u.mutation.ClearWeather()
	return _u
}

// SetHumidity sets the "humidity" field.
func (_u *ThrowDraftUpdateOne) SetHumidity(v float64) *ThrowDraftUpdateOne {
	_u.mutation.ResetHumidity()
	_u.mutation.SetHumidity(v)
	return _u
}

// SetNillableHumidity sets the "humidity" field if the given value is not nil.
func (_u *ThrowDraftUpdateOne) SetNillableHumidity(v *float64) *ThrowDraftUpdateOne {
	if v != nil {
		_u.SetHumidity(*v)
	}
	return _u
}

// AddHumidity adds value to the "humidity" field.
func (_u *ThrowDraftUpdateOne) AddHumidity(v float64) *ThrowDraftUpdateOne {
	_u.mutation.AddHumidity(v)
	return _u
}

// ClearHumidity clears the value of the "humidity" field.
func (_u *ThrowDraftUpdateOne) ClearHumidity() *ThrowDraftUpdateOne {
	_u.mutation.ClearHumidity()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *ThrowDraftUpdateOne) SetTemperature(v float64) *ThrowDraftUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *ThrowDraftUpdateOne) SetNillableTemperature(v *float64) *ThrowDraftUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *ThrowDraftUpdateOne) AddTemperature(v float64) *ThrowDraftUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *ThrowDraftUpdateOne) ClearTemperature() *ThrowDraftUpdateOne {
	_u.mutation.ClearTemperature()
	return _u
}

// SetSoil sets the "soil" field.
func (_u *ThrowDraftUpdateOne) SetSoil(v string) *ThrowDraftUpdateOne {
	_u.mutation.SetSoil(v)
	return _u
}

// SetNillableSoil sets the "soil" field if the given value is not nil.
func (_u *ThrowDraftUpdateOne) SetNillableSoil(v *string) *ThrowDraftUpdateOne {
	if v != nil {
		_u.SetSoil(*v)
	}
	return _u
}

// ClearSoil clears the value of the "soil" field.
func (_u *ThrowDraftUpdateOne) ClearSoil() *ThrowDraftUpdateOne {
	_u.mutation.ClearSoil()
	return _u
}

// SetMolkkyWeight sets the "molkky_weight" field.
func (_u *ThrowDraftUpdateOne) SetMolkkyWeight(v float64) *ThrowDraftUpdateOne {
	_u.mutation.ResetMolkkyWeight()
	_u.mutation.SetMolkkyWeight(v)
	return _u
}

// SetNillableMolkkyWeight sets the "molkky_weight" field if the given value is not nil.
func (_u *ThrowDraftUpdateOne) SetNillableMolkkyWeight(v *float64) *ThrowDraftUpdateOne {
	if v != nil {
		_u.SetMolkkyWeight(*v)
	}
	return _u
}

// AddMolkkyWeight adds value to the "molkky_weight" field.
func (_u *ThrowDraftUpdateOne) AddMolkkyWeight(v float64) *ThrowDraftUpdateOne {
	_u.mutation.AddMolkkyWeight(v)
	return _u
}

// ClearMolkkyWeight clears the value of the "molkky_weight" field.
func (_u *ThrowDraftUpdateOne) ClearMolkkyWeight() *ThrowDraftUpdateOne {
	_u.mutation.ClearMolkkyWeight()
	return _u
}

// SetIsSuccess sets the "is_success" field.
func (_u *ThrowDraftUpdateOne) SetIsSuccess(v bool) *ThrowDraftUpdateOne {
	_u.mutation.SetIsSuccess(v)
	return _u
}

// SetNillableIsSuccess sets the "is_success" field if the given value is not nil.
func (_u *ThrowDraftUpdateOne) SetNillableIsSuccess(v *bool) *ThrowDraftUpdateOne {
	if v != nil {
		_u.SetIsSuccess(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ThrowDraftUpdateOne) SetTimestamp(v time.Time) *ThrowDraftUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ThrowDraftUpdateOne) SetNillableTimestamp(v *time.Time) *ThrowDraftUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *ThrowDraftUpdateOne) SetOwnerID(id int) *ThrowDraftUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *ThrowDraftUpdateOne) SetOwner(v *User) *ThrowDraftUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the ThrowDraftMutation object of the builder.
func (_u *ThrowDraftUpdateOne) Mutation() *ThrowDraftMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *ThrowDraftUpdateOne) ClearOwner() *ThrowDraftUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the ThrowDraftUpdate builder.
func (_u *ThrowDraftUpdateOne) Where(ps ...predicate.ThrowDraft) *ThrowDraftUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ThrowDraftUpdateOne) Select(field string, fields ...string) *ThrowDraftUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ThrowDraft entity.
func (_u *ThrowDraftUpdateOne) Save(ctx context.Context) (*ThrowDraft, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThrowDraftUpdateOne) SaveX(ctx context.Context) *ThrowDraft {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ThrowDraftUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThrowDraftUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThrowDraftUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := throwdraft.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ThrowDraft.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Distance(); ok {
		if err := throwdraft.DistanceValidator(v); err != nil {
			return &ValidationError{Name: "distance", err: fmt.Errorf(`ent: validator failed for field "ThrowDraft.distance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Angle(); ok {
		if err := throwdraft.AngleValidator(v); err != nil {
			return &ValidationError{Name: "angle", err: fmt.Errorf(`ent: validator failed for field "ThrowDraft.angle": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ThrowDraft.owner"`)
	}
	return nil
}

func (_u *ThrowDraftUpdateOne) sqlSave(ctx context.Context) (_node *ThrowDraft, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(throwdraft.Table, throwdraft.Columns, sqlgraph.NewFieldSpec(throwdraft.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ThrowDraft.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, throwdraft.FieldID)
		for _, f := range fields {
			if !throwdraft.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != throwdraft.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(throwdraft.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Distance(); ok {
		_spec.SetField(throwdraft.FieldDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistance(); ok {
		_spec.AddField(throwdraft.FieldDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Angle(); ok {
		_spec.SetField(throwdraft.FieldAngle, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Weather(); ok {
		_spec.SetField(throwdraft.FieldWeather, field.TypeString, value)
	}
	if _u.mutation.WeatherCleared() {
		_spec.ClearField(throwdraft.FieldWeather, field.TypeString)
	}
	if value, ok := _u.mutation.Humidity(); ok {
		_spec.SetField(throwdraft.FieldHumidity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHumidity(); ok {
		_spec.AddField(throwdraft.FieldHumidity, field.TypeFloat64, value)
	}
	if _u.mutation.HumidityCleared() {
		_spec.ClearField(throwdraft.FieldHumidity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(throwdraft.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(throwdraft.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(throwdraft.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Soil(); ok {
		_spec.SetField(throwdraft.FieldSoil, field.TypeString, value)
	}
	if _u.mutation.SoilCleared() {
		_spec.ClearField(throwdraft.FieldSoil, field.TypeString)
	}
	if value, ok := _u.mutation.MolkkyWeight(); ok {
		_spec.SetField(throwdraft.FieldMolkkyWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMolkkyWeight(); ok {
		_spec.AddField(throwdraft.FieldMolkkyWeight, field.TypeFloat64, value)
	}
	if _u.mutation.MolkkyWeightCleared() {
		_spec.ClearField(throwdraft.FieldMolkkyWeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsSuccess(); ok {
		_spec.SetField(throwdraft.FieldIsSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(throwdraft.FieldTimestamp, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   throwdraft.OwnerTable,
			Columns: []string{throwdraft.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   throwdraft.OwnerTable,
			Columns: []string{throwdraft.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ThrowDraft{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{throwdraft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
