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
	"github.com/abhisek/molkkylog/ent/throwrecord"
	"github.com/abhisek/molkkylog/ent/user"
)

// ThrowRecordUpdate is the builder for updating ThrowRecord entities.
type ThrowRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ThrowRecordMutation
}

// Where appends a list predicates to the ThrowRecordUpdate builder.
func (_u *ThrowRecordUpdate) Where(ps ...predicate.ThrowRecord) *ThrowRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ThrowRecordUpdate) SetUserID(v int) *ThrowRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ThrowRecordUpdate) SetNillableUserID(v *int) *ThrowRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDistance sets the "distance" field.
func (_u *ThrowRecordUpdate) SetDistance(v float64) *ThrowRecordUpdate {
	_u.mutation.ResetDistance()
	_u.mutation.SetDistance(v)
	return _u
}

// SetNillableDistance sets the "distance" field if the given value is not nil.
func (_u *ThrowRecordUpdate) SetNillableDistance(v *float64) *ThrowRecordUpdate {
	if v != nil {
		_u.SetDistance(*v)
	}
	return _u
}

// AddDistance adds value to the "distance" field.
func (_u *ThrowRecordUpdate) AddDistance(v float64) *ThrowRecordUpdate {
	_u.mutation.AddDistance(v)
	return _u
}

// SetAngle sets the "angle" field.
func (_u *ThrowRecordUpdate) SetAngle(v throwrecord.Angle) *ThrowRecordUpdate {
	_u.mutation.SetAngle(v)
	return _u
}

// SetNillableAngle sets the "angle" field if the given value is not nil.
func (_u *ThrowRecordUpdate) SetNillableAngle(v *throwrecord.Angle) *ThrowRecordUpdate {
	if v != nil {
		_u.SetAngle(*v)
	}
	return _u
}

// SetWeather sets the "weather" field.
func (_u *ThrowRecordUpdate) SetWeather(v string) *ThrowRecordUpdate {
	_u.mutation.SetWeather(v)
	return _u
}

// SetNillableWeather sets the "weather" field if the given value is not nil.
func (_u *ThrowRecordUpdate) SetNillableWeather(v *string) *ThrowRecordUpdate {
	if v != nil {
		_u.SetWeather(*v)
	}
	return _u
}

// ClearWeather clears the value of the "weather" field.
func (_u *ThrowRecordUpdate) ClearWeather() *ThrowRecordUpdate {
	_u.mutation.ClearWeather()
	return _u
}

// SetHumidity sets the "humidity" field.
func (_u *ThrowRecordUpdate) SetHumidity(v float64) *ThrowRecordUpdate {
	_u.mutation.ResetHumidity()
	_u.mutation.SetHumidity(v)
	return _u
}

// SetNillableHumidity sets the "humidity" field if the given value is not nil.
func (_u *ThrowRecordUpdate) SetNillableHumidity(v *float64) *ThrowRecordUpdate {
	if v != nil {
		_u.SetHumidity(*v)
	}
	return _u
}

// AddHumidity adds value to the "humidity" field.
func (_u *ThrowRecordUpdate) AddHumidity(v float64) *ThrowRecordUpdate {
	_u.mutation.AddHumidity(v)
	return _u
}

// ClearHumidity clears the value of the "humidity" field.
func (_u *ThrowRecordUpdate) ClearHumidity() *ThrowRecordUpdate {
	_u.mutation.ClearHumidity()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *ThrowRecordUpdate) SetTemperature(v float64) *ThrowRecordUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *ThrowRecordUpdate) SetNillableTemperature(v *float64) *ThrowRecordUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *ThrowRecordUpdate) AddTemperature(v float64) *ThrowRecordUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *ThrowRecordUpdate) ClearTemperature() *ThrowRecordUpdate {
	_u.mutation.ClearTemperature()
	return _u
}

// SetSoil sets the "soil" field.
func (_u *ThrowRecordUpdate) SetSoil(v string) *ThrowRecordUpdate {
	_u.mutation.SetSoil(v)
	return _u
}

// SetNillableSoil sets the "soil" field if the given value is not nil.
func (_u *ThrowRecordUpdate) SetNillableSoil(v *string) *ThrowRecordUpdate {
	if v != nil {
		_u.SetSoil(*v)
	}
	return _u
}

// ClearSoil clears the value of the "soil" field.
func (_u *ThrowRecordUpdate) ClearSoil() *ThrowRecordUpdate {
	_u.mutation.ClearSoil()
	return _u
}

// SetMolkkyWeight sets the "molkky_weight" field.
func (_u *ThrowRecordUpdate) SetMolkkyWeight(v float64) *ThrowRecordUpdate {
	_u.mutation.ResetMolkkyWeight()
	_u.mutation.SetMolkkyWeight(v)
	return _u
}

// SetNillableMolkkyWeight sets the "molkky_weight" field if the given value is not nil.
func (_u *ThrowRecordUpdate) SetNillableMolkkyWeight(v *float64) *ThrowRecordUpdate {
	if v != nil {
		_u.SetMolkkyWeight(*v)
	}
	return _u
}

// AddMolkkyWeight adds value to the "molkky_weight" field.
func (_u *ThrowRecordUpdate) AddMolkkyWeight(v float64) *ThrowRecordUpdate {
	_u.mutation.AddMolkkyWeight(v)
	return _u
}

// ClearMolkkyWeight clears the value of the "molkky_weight" field.
func (_u *ThrowRecordUpdate) ClearMolkkyWeight() *ThrowRecordUpdate {
	_u.mutation.ClearMolkkyWeight()
	return _u
}

// SetIsSuccess sets the "is_success" field.
func (_u *ThrowRecordUpdate) SetIsSuccess(v bool) *ThrowRecordUpdate {
	_u.mutation.SetIsSuccess(v)
	return _u
}

// SetNillableIsSuccess sets the "is_success" field if the given value is not nil.
func (_u *ThrowRecordUpdate) SetNillableIsSuccess(v *bool) *ThrowRecordUpdate {
	if v != nil {
		_u.SetIsSuccess(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ThrowRecordUpdate) SetTimestamp(v time.Time) *ThrowRecordUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ThrowRecordUpdate) SetNillableTimestamp(v *time.Time) *ThrowRecordUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *ThrowRecordUpdate) SetOwnerID(id int) *ThrowRecordUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *ThrowRecordUpdate) SetOwner(v *User) *ThrowRecordUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the ThrowRecordMutation object of the builder.
func (_u *ThrowRecordUpdate) Mutation() *ThrowRecordMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *ThrowRecordUpdate) ClearOwner() *ThrowRecordUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ThrowRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThrowRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ThrowRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThrowRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThrowRecordUpdate) check() error {
	if v, ok := _u.mutation.Distance(); ok {
		if err := throwrecord.DistanceValidator(v); err != nil {
			return &ValidationError{Name: "distance", err: fmt.Errorf(`ent: validator failed for field "ThrowRecord.distance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Angle(); ok {
		if err := throwrecord.AngleValidator(v); err != nil {
			return &ValidationError{Name: "angle", err: fmt.Errorf(`ent: validator failed for field "ThrowRecord.angle": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ThrowRecord.owner"`)
	}
	return nil
}

func (_u *ThrowRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(throwrecord.Table, throwrecord.Columns, sqlgraph.NewFieldSpec(throwrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Distance(); ok {
		_spec.SetField(throwrecord.FieldDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistance(); ok {
		_spec.AddField(throwrecord.FieldDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Angle(); ok {
		_spec.SetField(throwrecord.FieldAngle, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Weather(); ok {
		_spec.SetField(throwrecord.FieldWeather, field.TypeString, value)
	}
	if _u.mutation.WeatherCleared() {
		_spec.ClearField(throwrecord.FieldWeather, field.TypeString)
	}
	if value, ok := _u.mutation.Humidity(); ok {
		_spec.SetField(throwrecord.FieldHumidity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHumidity(); ok {
		_spec.AddField(throwrecord.FieldHumidity, field.TypeFloat64, value)
	}
	if _u.mutation.HumidityCleared() {
		_spec.ClearField(throwrecord.FieldHumidity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(throwrecord.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(throwrecord.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(throwrecord.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Soil(); ok {
		_spec.SetField(throwrecord.FieldSoil, field.TypeString, value)
	}
	if _u.mutation.SoilCleared() {
		_spec.ClearField(throwrecord.FieldSoil, field.TypeString)
	}
	if value, ok := _u.mutation.MolkkyWeight(); ok {
		_spec.SetField(throwrecord.FieldMolkkyWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMolkkyWeight(); ok {
		_spec.AddField(throwrecord.FieldMolkkyWeight, field.TypeFloat64, value)
	}
	if _u.mutation.MolkkyWeightCleared() {
		_spec.ClearField(throwrecord.FieldMolkkyWeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsSuccess(); ok {
		_spec.SetField(throwrecord.FieldIsSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(throwrecord.FieldTimestamp, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   throwrecord.OwnerTable,
			Columns: []string{throwrecord.OwnerColumn},
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
			Table:   throwrecord.OwnerTable,
			Columns: []string{throwrecord.OwnerColumn},
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
			err = &NotFoundError{throwrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ThrowRecordUpdateOne is the builder for updating a single ThrowRecord entity.
type ThrowRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ThrowRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *ThrowRecordUpdateOne) SetUserID(v int) *ThrowRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ThrowRecordUpdateOne) SetNillableUserID(v *int) *ThrowRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDistance sets the "distance" field.
func (_u *ThrowRecordUpdateOne) SetDistance(v float64) *ThrowRecordUpdateOne {
	_u.mutation.ResetDistance()
	_u.mutation.SetDistance(v)
	return _u
}

// SetNillableDistance sets the "distance" field if the given value is not nil.
func (_u *ThrowRecordUpdateOne) SetNillableDistance(v *float64) *ThrowRecordUpdateOne {
	if v != nil {
		_u.SetDistance(*v)
	}
	return _u
}

// AddDistance adds value to the "distance" field.
func (_u *ThrowRecordUpdateOne) AddDistance(v float64) *ThrowRecordUpdateOne {
	_u.mutation.AddDistance(v)
	return _u
}

// SetAngle sets the "angle" field.
func (_u *ThrowRecordUpdateOne) SetAngle(v throwrecord.Angle) *ThrowRecordUpdateOne {
	_u.mutation.SetAngle(v)
	return _u
}

// SetNillableAngle sets the "angle" field if the given value is not nil.
func (_u *ThrowRecordUpdateOne) SetNillableAngle(v *throwrecord.Angle) *ThrowRecordUpdateOne {
	if v != nil {
		_u.SetAngle(*v)
	}
	return _u
}

// SetWeather sets the "weather" field.
func (_u *ThrowRecordUpdateOne) SetWeather(v string) *ThrowRecordUpdateOne {
	_u.mutation.SetWeather(v)
	return _u
}

// SetNillableWeather sets the "weather" field if the given value is not nil.
func (_u *ThrowRecordUpdateOne) SetNillableWeather(v *string) *ThrowRecordUpdateOne {
	if v != nil {
		_u.SetWeather(*v)
	}
	return _u
}

// ClearWeather clears the value of the "weather" field.
func (_u *ThrowRecordUpdateOne) ClearWeather() *ThrowRecordUpdateOne {
	_u.mutation.ClearWeather()
	return _u
}

// SetHumidity sets the "humidity" field.
func (_u *ThrowRecordUpdateOne) SetHumidity(v float64) *ThrowRecordUpdateOne {
	_u.mutation.ResetHumidity()
	_u.mutation.SetHumidity(v)
	return _u
}

// SetNillableHumidity sets the "humidity" field if the given value is not nil.
func (_u *ThrowRecordUpdateOne) SetNillableHumidity(v *float64) *ThrowRecordUpdateOne {
	if v != nil {
		_u.SetHumidity(*v)
	}
	return _u
}

// AddHumidity adds value to the "humidity" field.
func (_u *ThrowRecordUpdateOne) AddHumidity(v float64) *ThrowRecordUpdateOne {
	_u.mutation.AddHumidity(v)
	return _u
}

// ClearHumidity clears the value of the "humidity" field.
func (_u *ThrowRecordUpdateOne) ClearHumidity() *ThrowRecordUpdateOne {
	_u.mutation.ClearHumidity()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *ThrowRecordUpdateOne) SetTemperature(v float64) *ThrowRecordUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *ThrowRecordUpdateOne) SetNillableTemperature(v *float64) *ThrowRecordUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *ThrowRecordUpdateOne) AddTemperature(v float64) *ThrowRecordUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *ThrowRecordUpdateOne) ClearTemperature() *ThrowRecordUpdateOne {
	_u.mutation.ClearTemperature()
	return _u
}

// SetSoil sets the "soil" field.
func (_u *ThrowRecordUpdateOne) SetSoil(v string) *ThrowRecordUpdateOne {
	_u.mutation.SetSoil(v)
	return _u
}

// SetNillableSoil sets the "soil" field if the given value is not nil.
func (_u *ThrowRecordUpdateOne) SetNillableSoil(v *string) *ThrowRecordUpdateOne {
	if v != nil {
		_u.SetSoil(*v)
	}
	return _u
}

// ClearSoil clears the value of the "soil" field.
func (_u *ThrowRecordUpdateOne) ClearSoil() *ThrowRecordUpdateOne {
	_u.mutation.ClearSoil()
	return _u
}

// SetMolkkyWeight sets the "molkky_weight" field.
func (_u *ThrowRecordUpdateOne) SetMolkkyWeight(v float64) *ThrowRecordUpdateOne {
	_u.mutation.ResetMolkkyWeight()
	_u.mutation.SetMolkkyWeight(v)
	return _u
}

// SetNillableMolkkyWeight sets the "molkky_weight" field if the given value is not nil.
func (_u *ThrowRecordUpdateOne) SetNillableMolkkyWeight(v *float64) *ThrowRecordUpdateOne {
	if v != nil {
		_u.SetMolkkyWeight(*v)
	}
	return _u
}

// AddMolkkyWeight adds value to the "molkky_weight" field.
func (_u *ThrowRecordUpdateOne) AddMolkkyWeight(v float64) *ThrowRecordUpdateOne {
	_u.mutation.AddMolkkyWeight(v)
	return _u
}

// ClearMolkkyWeight clears the value of the "molkky_weight" field.
func (_u *ThrowRecordUpdateOne) ClearMolkkyWeight() *ThrowRecordUpdateOne {
	_u.mutation.ClearMolkkyWeight()
	return _u
}

// SetIsSuccess sets the "is_success" field.
func (_u *ThrowRecordUpdateOne) SetIsSuccess(v bool) *ThrowRecordUpdateOne {
	_u.mutation.SetIsSuccess(v)
	return _u
}

// SetNillableIsSuccess sets the "is_success" field if the given value is not nil.
func (_u *ThrowRecordUpdateOne) SetNillableIsSuccess(v *bool) *ThrowRecordUpdateOne {
	if v != nil {
		_u.SetIsSuccess(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ThrowRecordUpdateOne) SetTimestamp(v time.Time) *ThrowRecordUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ThrowRecordUpdateOne) SetNillableTimestamp(v *time.Time) *ThrowRecordUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *ThrowRecordUpdateOne) SetOwnerID(id int) *ThrowRecordUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *ThrowRecordUpdateOne) SetOwner(v *User) *ThrowRecordUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the ThrowRecordMutation object of the builder.
func (_u *ThrowRecordUpdateOne) Mutation() *ThrowRecordMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *ThrowRecordUpdateOne) ClearOwner() *ThrowRecordUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the ThrowRecordUpdate builder.
func (_u *ThrowRecordUpdateOne) Where(ps ...predicate.ThrowRecord) *ThrowRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ThrowRecordUpdateOne) Select(field string, fields ...string) *ThrowRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ThrowRecord entity.
func (_u *ThrowRecordUpdateOne) Save(ctx context.Context) (*ThrowRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThrowRecordUpdateOne) SaveX(ctx context.Context) *ThrowRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ThrowRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThrowRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThrowRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Distance(); ok {
		if err := throwrecord.DistanceValidator(v); err != nil {
			return &ValidationError{Name: "distance", err: fmt.Errorf(`ent: validator failed for field "ThrowRecord.distance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Angle(); ok {
		if err := throwrecord.AngleValidator(v); err != nil {
			return &ValidationError{Name: "angle", err: fmt.Errorf(`ent: validator failed for field "ThrowRecord.angle": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ThrowRecord.owner"`)
	}
	return nil
}

func (_u *ThrowRecordUpdateOne) sqlSave(ctx context.Context) (_node *ThrowRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(throwrecord.Table, throwrecord.Columns, sqlgraph.NewFieldSpec(throwrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ThrowRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, throwrecord.FieldID)
		for _, f := range fields {
			if !throwrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != throwrecord.FieldID {
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
	if value, ok := _u.mutation.Distance(); ok {
		_spec.SetField(throwrecord.FieldDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistance(); ok {
		_spec.AddField(throwrecord.FieldDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Angle(); ok {
		_spec.SetField(throwrecord.FieldAngle, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Weather(); ok {
		_spec.SetField(throwrecord.FieldWeather, field.TypeString, value)
	}
	if _u.mutation.WeatherCleared() {
		_spec.ClearField(throwrecord.FieldWeather, field.TypeString)
	}
	if value, ok := _u.mutation.Humidity(); ok {
		_spec.SetField(throwrecord.FieldHumidity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHumidity(); ok {
		_spec.AddField(throwrecord.FieldHumidity, field.TypeFloat64, value)
	}
	if _u.mutation.HumidityCleared() {
		_spec.ClearField(throwrecord.FieldHumidity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(throwrecord.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(throwrecord.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(throwrecord.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Soil(); ok {
		_spec.SetField(throwrecord.FieldSoil, field.TypeString, value)
	}
	if _u.mutation.SoilCleared() {
		_spec.ClearField(throwrecord.FieldSoil, field.TypeString)
	}
	if value, ok := _u.mutation.MolkkyWeight(); ok {
		_spec.SetField(throwrecord.FieldMolkkyWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMolkkyWeight(); ok {
		_spec.AddField(throwrecord.FieldMolkkyWeight, field.TypeFloat64, value)
	}
	if _u.mutation.MolkkyWeightCleared() {
		_spec.ClearField(throwrecord.FieldMolkkyWeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsSuccess(); ok {
		_spec.SetField(throwrecord.FieldIsSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(throwrecord.FieldTimestamp, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   throwrecord.OwnerTable,
			Columns: []string{throwrecord.OwnerColumn},
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
			Table:   throwrecord.OwnerTable,
			Columns: []string{throwrecord.OwnerColumn},
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
	_node = &ThrowRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{throwrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
