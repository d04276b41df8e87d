// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/molkkylog/ent/throwdraft"
	"github.com/abhisek/molkkylog/ent/user"
)

// ThrowDraftCreate is the builder for creating a ThrowDraft entity.
type ThrowDraftCreate struct {
	config
	mutation *ThrowDraftMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ThrowDraftCreate) SetUserID(v int) *ThrowDraftCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ThrowDraftCreate) SetSessionID(v string) *ThrowDraftCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDistance sets the "distance" field.
func (_c *ThrowDraftCreate) SetDistance(v float64) *ThrowDraftCreate {
	_c.mutation.SetDistance(v)
	return _c
}

// SetAngle sets the "angle" field.
func (_c *ThrowDraftCreate) SetAngle(v throwdraft.Angle) *ThrowDraftCreate {
	_c.mutation.SetAngle(v)
	return _c
}

// SetWeather sets the "weather" field.
func (_c *ThrowDraftCreate) SetWeather(v string) *ThrowDraftCreate {
	_c.mutation.SetWeather(v)
	return _c
}

// SetNillableWeather sets the "weather" field if the given value is not nil.
func (_c *ThrowDraftCreate) SetNillableWeather(v *string) *ThrowDraftCreate {
	if v != nil {
		_c.SetWeather(*v)
	}
	return _c
}

// SetHumidity sets the "humidity" field.
func (_c *ThrowDraftCreate) SetHumidity(v float64) *ThrowDraftCreate {
	_c.mutation.SetHumidity(v)
	return _c
}

// SetNillableHumidity sets the "humidity" field if the given value is not nil.
func (_c *ThrowDraftCreate) SetNillableHumidity(v *float64) *ThrowDraftCreate {
	if v != nil {
		_c.SetHumidity(*v)
	}
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *ThrowDraftCreate) SetTemperature(v float64) *ThrowDraftCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *ThrowDraftCreate) SetNillableTemperature(v *float64) *ThrowDraftCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetSoil sets the "soil" field.
func (_c *ThrowDraftCreate) SetSoil(v string) *ThrowDraftCreate {
	_c.mutation.SetSoil(v)
	return _c
}

// SetNillableSoil sets the "soil" field if the given value is not nil.
func (_c *ThrowDraftCreate) SetNillableSoil(v *string) *ThrowDraftCreate {
	if v != nil {
		_c.SetSoil(*v)
	}
	return _c
}

// SetMolkkyWeight sets the "molkky_weight" field.
func (_c *ThrowDraftCreate) SetMolkkyWeight(v float64) *ThrowDraftCreate {
	_c.mutation.SetMolkkyWeight(v)
	return _c
}

// SetNillableMolkkyWeight sets the "molkky_weight" field if the given value is not nil.
func (_c *ThrowDraftCreate) SetNillableMolkkyWeight(v *float64) *ThrowDraftCreate {
	if v != nil {
		_c.SetMolkkyWeight(*v)
	}
	return _c
}

// SetIsSuccess sets the "is_success" field.
func (_c *ThrowDraftCreate) SetIsSuccess(v bool) *ThrowDraftCreate {
	_c.mutation.SetIsSuccess(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ThrowDraftCreate) SetTimestamp(v time.Time) *ThrowDraftCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *ThrowDraftCreate) SetOwnerID(id int) *ThrowDraftCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *ThrowDraftCreate) SetOwner(v *User) *ThrowDraftCreate {
	return _c.SetOwnerID(v.ID)
}

// Mutation returns the ThrowDraftMutation object of the builder.
func (_c *ThrowDraftCreate) Mutation() *ThrowDraftMutation {
	return _c.mutation
}

// Save creates the ThrowDraft in the database.
func (_c *ThrowDraftCreate) Save(ctx context.Context) (*ThrowDraft, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ThrowDraftCreate) SaveX(ctx context.Context) *ThrowDraft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThrowDraftCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThrowDraftCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ThrowDraftCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ThrowDraft.user_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ThrowDraft.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := throwdraft.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ThrowDraft.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Distance(); !ok {
		return &ValidationError{Name: "distance", err: errors.New(`ent: missing required field "ThrowDraft.distance"`)}
	}
	if v, ok := _c.mutation.Distance(); ok {
		if err := throwdraft.DistanceValidator(v); err != nil {
			return &ValidationError{Name: "distance", err: fmt.Errorf(`ent: validator failed for field "ThrowDraft.distance": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Angle(); !ok {
		return &ValidationError{Name: "angle", err: errors.New(`ent: missing required field "ThrowDraft.angle"`)}
	}
	if v, ok := _c.mutation.Angle(); ok {
		if err := throwdraft.AngleValidator(v); err != nil {
			return &ValidationError{Name: "angle", err: fmt.Errorf(`ent: validator failed for field "ThrowDraft.angle": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsSuccess(); !ok {
		return &ValidationError{Name: "is_success", err: errors.New(`ent: missing required field "ThrowDraft.is_success"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ThrowDraft.timestamp"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "ThrowDraft.owner"`)}
	}
	return nil
}

func (_c *ThrowDraftCreate) sqlSave(ctx context.Context) (*ThrowDraft, error) {
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

func (_c *ThrowDraftCreate) createSpec() (*ThrowDraft, *sqlgraph.CreateSpec) {
	var (
		_node = &ThrowDraft{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(throwdraft.Table, sqlgraph.NewFieldSpec(throwdraft.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(throwdraft.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Distance(); ok {
		_spec.SetField(throwdraft.FieldDistance, field.TypeFloat64, value)
		_node.Distance = value
	}
	if value, ok := _c.mutation.Angle(); ok {
		_spec.SetField(throwdraft.FieldAngle, field.TypeEnum, value)
		_node.Angle = value
	}
	if value, ok := _c.mutation.Weather(); ok {
		_spec.SetField(throwdraft.FieldWeather, field.TypeString, value)
		_node.Weather = &value
	}
	if value, ok := _c.mutation.Humidity(); ok {
		_spec.SetField(throwdraft.FieldHumidity, field.TypeFloat64, value)
		_node.Humidity = &value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(throwdraft.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = &value
	}
	if value, ok := _c.mutation.Soil(); ok {
		_spec.SetField(throwdraft.FieldSoil, field.TypeString, value)
		_node.Soil = &value
	}
	if value, ok := _c.mutation.MolkkyWeight(); ok {
		_spec.SetField(throwdraft.FieldMolkkyWeight, field.TypeFloat64, value)
		_node.MolkkyWeight = &value
	}
	if value, ok := _c.mutation.IsSuccess(); ok {
		_spec.SetField(throwdraft.FieldIsSuccess, field.TypeBool, value)
		_node.IsSuccess = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(throwdraft.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ThrowDraftCreateBulk is the builder for creating many ThrowDraft entities in bulk.
type ThrowDraftCreateBulk struct {
	config
	err      error
	builders []*ThrowDraftCreate
}

// Save creates the ThrowDraft entities in the database.
func (_c *ThrowDraftCreateBulk) Save(ctx context.Context) ([]*ThrowDraft, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ThrowDraft, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ThrowDraftMutation)
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
func (_c *ThrowDraftCreateBulk) SaveX(ctx context.Context) []*ThrowDraft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThrowDraftCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThrowDraftCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
