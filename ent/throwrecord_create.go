// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/molkkylog/ent/throwrecord"
	"github.com/abhisek/molkkylog/ent/user"
)

// ThrowRecordCreate is the builder for creating a ThrowRecord entity.
type ThrowRecordCreate struct {
	config
	mutation *ThrowRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ThrowRecordCreate) SetUserID(v int) *ThrowRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDistance sets the "distance" field.
func (_c *ThrowRecordCreate) SetDistance(v float64) *ThrowRecordCreate {
	_c.mutation.SetDistance(v)
	return _c
}

// SetAngle sets the "angle" field.
func (_c *ThrowRecordCreate) SetAngle(v throwrecord.Angle) *ThrowRecordCreate {
	_c.mutation.SetAngle(v)
	return _c
}

// SetWeather sets the "weather" field.
func (_c *ThrowRecordCreate) SetWeather(v string) *ThrowRecordCreate {
	_c.mutation.SetWeather(v)
	return _c
}

// SetNillableWeather sets the "weather" field if the given value is not nil.
func (_c *ThrowRecordCreate) SetNillableWeather(v *string) *ThrowRecordCreate {
	if v != nil {
		_c.SetWeather(*v)
	}
	return _c
}

// SetHumidity sets the "humidity" field.
func (_c *ThrowRecordCreate) SetHumidity(v float64) *ThrowRecordCreate {
	_c.mutation.SetHumidity(v)
	return _c
}

// SetNillableHumidity sets the "humidity" field if the given value is not nil.
func (_c *ThrowRecordCreate) SetNillableHumidity(v *float64) *ThrowRecordCreate {
	if v != nil {
		_c.SetHumidity(*v)
	}
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *ThrowRecordCreate) SetTemperature(v float64) *ThrowRecordCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *ThrowRecordCreate) SetNillableTemperature(v *float64) *ThrowRecordCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetSoil sets the "soil" field.
func (_c *ThrowRecordCreate) SetSoil(v string) *ThrowRecordCreate {
	_c.mutation.SetSoil(v)
	return _c
}

// SetNillableSoil sets the "soil" field if the given value is not nil.
func (_c *ThrowRecordCreate) SetNillableSoil(v *string) *ThrowRecordCreate {
	if v != nil {
		_c.SetSoil(*v)
	}
	return _c
}

// SetMolkkyWeight sets the "molkky_weight" field.
func (_c *ThrowRecordCreate) SetMolkkyWeight(v float64) *ThrowRecordCreate {
	_c.mutation.SetMolkkyWeight(v)
	return _c
}

// SetNillableMolkkyWeight sets the "molkky_weight" field if the given value is not nil.
func (_c *ThrowRecordCreate) SetNillableMolkkyWeight(v *float64) *ThrowRecordCreate {
	if v != nil {
		_c.SetMolkkyWeight(*v)
	}
	return _c
}

// SetIsSuccess sets the "is_success" field.
func (_c *ThrowRecordCreate) SetIsSuccess(v bool) *ThrowRecordCreate {
	_c.mutation.SetIsSuccess(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ThrowRecordCreate) SetTimestamp(v time.Time) *ThrowRecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *ThrowRecordCreate) SetOwnerID(id int) *ThrowRecordCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *ThrowRecordCreate) SetOwner(v *User) *ThrowRecordCreate {
	return _c.SetOwnerID(v.ID)
}

// Mutation returns the ThrowRecordMutation object of the builder.
func (_c *ThrowRecordCreate) Mutation() *ThrowRecordMutation {
	return _c.mutation
}

// Save creates the ThrowRecord in the database.
func (_c *ThrowRecordCreate) Save(ctx context.Context) (*ThrowRecord, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ThrowRecordCreate) SaveX(ctx context.Context) *ThrowRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThrowRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThrowRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ThrowRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ThrowRecord.user_id"`)}
	}
	if _, ok := _c.mutation.Distance(); !ok {
		return &ValidationError{Name: "distance", err: errors.New(`ent: missing required field "ThrowRecord.distance"`)}
	}
	if v, ok := _c.mutation.Distance(); ok {
		if err := throwrecord.DistanceValidator(v); err != nil {
			return &ValidationError{Name: "distance", err: fmt.Errorf(`ent: validator failed for field "ThrowRecord.distance": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Angle(); !ok {
		return &ValidationError{Name: "angle", err: errors.New(`ent: missing required field "ThrowRecord.angle"`)}
	}
	if v, ok := _c.mutation.Angle(); ok {
		if err := throwrecord.AngleValidator(v); err != nil {
			return &ValidationError{Name: "angle", err: fmt.Errorf(`ent: validator failed for field "ThrowRecord.angle": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsSuccess(); !ok {
		return &ValidationError{Name: "is_success", err: errors.New(`ent: missing required field "ThrowRecord.is_success"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ThrowRecord.timestamp"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "ThrowRecord.owner"`)}
	}
	return nil
}

func (_c *ThrowRecordCreate) sqlSave(ctx context.Context) (*ThrowRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ThrowRecordCreate) createSpec() (*ThrowRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ThrowRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(throwrecord.Table, sqlgraph.NewFieldSpec(throwrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Distance(); ok {
		_spec.SetField(throwrecord.FieldDistance, field.TypeFloat64, value)
		_node.Distance = value
	}
	if value, ok := _c.mutation.Angle(); ok {
		_spec.SetField(throwrecord.FieldAngle, field.TypeEnum, value)
		_node.Angle = value
	}
	if value, ok := _c.mutation.Weather(); ok {
		_spec.SetField(throwrecord.FieldWeather, field.TypeString, value)
		_node.Weather = &value
	}
	if value, ok := _c.mutation.Humidity(); ok {
		_spec.SetField(throwrecord.FieldHumidity, field.TypeFloat64, value)
		_node.Humidity = &value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(throwrecord.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = &value
	}
	if value, ok := _c.mutation.Soil(); ok {
		_spec.SetField(throwrecord.FieldSoil, field.TypeString, value)
		_node.Soil = &value
	}
	if value, ok := _c.mutation.MolkkyWeight(); ok {
		_spec.SetField(throwrecord.FieldMolkkyWeight, field.TypeFloat64, value)
		_node.MolkkyWeight = &value
	}
	if value, ok := _c.mutation.IsSuccess(); ok {
		_spec.SetField(throwrecord.FieldIsSuccess, field.TypeBool, value)
		_node.IsSuccess = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(throwrecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ThrowRecordCreateBulk is the builder for creating many ThrowRecord entities in bulk.
type ThrowRecordCreateBulk struct {
	config
	err      error
	builders []*ThrowRecordCreate
}

// Save creates the ThrowRecord entities in the database.
func (_c *ThrowRecordCreateBulk) Save(ctx context.Context) ([]*ThrowRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ThrowRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ThrowRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ThrowRecordCreateBulk) SaveX(ctx context.Context) []*ThrowRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThrowRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThrowRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
