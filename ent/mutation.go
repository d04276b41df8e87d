// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/molkkylog/ent/predicate"
	"github.com/abhisek/molkkylog/ent/throwdraft"
	"github.com/abhisek/molkkylog/ent/throwrecord"
	"github.com/abhisek/molkkylog/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeThrowDraft  = "ThrowDraft"
	TypeThrowRecord = "ThrowRecord"
	TypeUser        = "User"
)

// ThrowDraftMutation represents an operation that mutates the ThrowDraft nodes in the graph.
type ThrowDraftMutation struct {
	config
	op               Op
	typ              string
	id               *int
	session_id       *string
	distance         *float64
	adddistance      *float64
	angle            *throwdraft.Angle
	weather          *string
	humidity         *float64
	addhumidity      *float64
	temperature      *float64
	addtemperature   *float64
	soil             *string
	molkky_weight    *float64
	addmolkky_weight *float64
	is_success       *bool
	timestamp        *time.Time
	clearedFields    map[string]struct{}
	owner            *int
	clearedowner     bool
	done             bool
	oldValue         func(context.Context) (*ThrowDraft, error)
	predicates       []predicate.ThrowDraft
}

var _ ent.Mutation = (*ThrowDraftMutation)(nil)

// throwdraftOption allows management of the mutation configuration using functional options.
type throwdraftOption func(*ThrowDraftMutation)

// newThrowDraftMutation creates new mutation for the ThrowDraft entity.
func newThrowDraftMutation(c config, op Op, opts ...throwdraftOption) *ThrowDraftMutation {
	m := &ThrowDraftMutation{
		config:        c,
		op:            op,
		typ:           TypeThrowDraft,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThrowDraftID sets the ID field of the mutation.
func withThrowDraftID(id int) throwdraftOption {
	return func(m *ThrowDraftMutation) {
		var (
			err   error
			once  sync.Once
			value *ThrowDraft
		)
		m.oldValue = func(ctx context.Context) (*ThrowDraft, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ThrowDraft.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThrowDraft sets the old ThrowDraft of the mutation.
func withThrowDraft(node *ThrowDraft) throwdraftOption {
	return func(m *ThrowDraftMutation) {
		m.oldValue = func(context.Context) (*ThrowDraft, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThrowDraftMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThrowDraftMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThrowDraftMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThrowDraftMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ThrowDraft.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ThrowDraftMutation) SetUserID(i int) {
	m.owner = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ThrowDraftMutation) UserID() (r int, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ThrowDraft entity.
// If the ThrowDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowDraftMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ThrowDraftMutation) ResetUserID() {
	m.owner = nil
}

// SetSessionID sets the "session_id" field.
func (m *ThrowDraftMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ThrowDraftMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ThrowDraft entity.
// If the ThrowDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowDraftMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ThrowDraftMutation) ResetSessionID() {
	m.session_id = nil
}

// SetDistance sets the "distance" field.
func (m *ThrowDraftMutation) SetDistance(f float64) {
	m.distance = &f
	m.adddistance = nil
}

// Distance returns the value of the "distance" field in the mutation.
func (m *ThrowDraftMutation) Distance() (r float64, exists bool) {
	v := m.distance
	if v == nil {
		return
	}
	return *v, true
}

// OldDistance returns the old "distance" field's value of the ThrowDraft entity.
// If the ThrowDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowDraftMutation) OldDistance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistance: %w", err)
	}
	return oldValue.Distance, nil
}

// AddDistance adds f to the "distance" field.
func (m *ThrowDraftMutation) AddDistance(f float64) {
	if m.adddistance != nil {
		*m.adddistance += f
	} else {
		m.adddistance = &f
	}
}

// AddedDistance returns the value that was added to the "distance" field in this mutation.
func (m *ThrowDraftMutation) AddedDistance() (r float64, exists bool) {
	v := m.adddistance
	if v == nil {
		return
	}
	return *v, true
}

// ResetDistance resets all changes to the "distance" field.
func (m *ThrowDraftMutation) ResetDistance() {
	m.distance = nil
	m.adddistance = nil
}

// SetAngle sets the "angle" field.
func (m *ThrowDraftMutation) SetAngle(t throwdraft.Angle) {
	m.angle = &t
}

// Angle returns the value of the "angle" field in the mutation.
func (m *ThrowDraftMutation) Angle() (r throwdraft.Angle, exists bool) {
	v := m.angle
	if v == nil {
		return
	}
	return *v, true
}

// OldAngle returns the old "angle" field's value of the ThrowDraft entity.
// If the ThrowDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowDraftMutation) OldAngle(ctx context.Context) (v throwdraft.Angle, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAngle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAngle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAngle: %w", err)
	}
	return oldValue.Angle, nil
}

// ResetAngle resets all changes to the "angle" field.
func (m *ThrowDraftMutation) ResetAngle() {
	m.angle = nil
}

// SetWeather sets the "weather" field.
func (m *ThrowDraftMutation) SetWeather(s string) {
	m.weather = &s
}

// Weather returns the value of the "weather" field in the mutation.
func (m *ThrowDraftMutation) Weather() (r string, exists bool) {
	v := m.weather
	if v == nil {
		return
	}
	return *v, true
}

// OldWeather returns the old "weather" field's value of the ThrowDraft entity.
// If the ThrowDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowDraftMutation) OldWeather(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeather is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeather requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeather: %w", err)
	}
	return oldValue.Weather, nil
}

// ClearWeather clears the value of the "weather" field.
func (m *ThrowDraftMutation) ClearWeather() {
	m.weather = nil
	m.clearedFields[throwdraft.FieldWeather] = struct{}{}
}

// WeatherCleared returns if the "weather" field was cleared in this mutation.
func (m *ThrowDraftMutation) WeatherCleared() bool {
	_, ok := m.clearedFields[throwdraft.FieldWeather]
	return ok
}

// ResetWeather resets all changes to the "weather" field.
func (m *ThrowDraftMutation) ResetWeather() {
	m.weather = nil
	delete(m.clearedFields, throwdraft.FieldWeather)
}

// SetHumidity sets the "humidity" field.
func (m *ThrowDraftMutation) SetHumidity(f float64) {
	m.humidity = &f
	m.addhumidity = nil
}

// Humidity returns the value of the "humidity" field in the mutation.
func (m *ThrowDraftMutation) Humidity() (r float64, exists bool) {
	v := m.humidity
	if v == nil {
		return
	}
	return *v, true
}

// OldHumidity returns the old "humidity" field's value of the ThrowDraft entity.
// If the ThrowDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowDraftMutation) OldHumidity(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumidity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumidity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumidity: %w", err)
	}
	return oldValue.Humidity, nil
}

// AddHumidity adds f to the "humidity" field.
func (m *ThrowDraftMutation) AddHumidity(f float64) {
	if m.addhumidity != nil {
		*m.addhumidity += f
	} else {
		m.addhumidity = &f
	}
}

// AddedHumidity returns the value that was added to the "humidity" field in this mutation.
func (m *ThrowDraftMutation) AddedHumidity() (r float64, exists bool) {
	v := m.addhumidity
	if v == nil {
		return
	}
	return *v, true
}

// ClearHumidity clears the value of the "humidity" field.
func (m *ThrowDraftMutation) ClearHumidity() {
	m.humidity = nil
	m.addhumidity = nil
	m.clearedFields[throwdraft.FieldHumidity] = struct{}{}
}

// HumidityCleared returns if the "humidity" field was cleared in this mutation.
func (m *ThrowDraftMutation) HumidityCleared() bool {
	_, ok := m.clearedFields[throwdraft.FieldHumidity]
	return ok
}

// ResetHumidity resets all changes to the "humidity" field.
func (m *ThrowDraftMutation) ResetHumidity() {
	m.humidity = nil
	m.addhumidity = nil
	delete(m.clearedFields, throwdraft.FieldHumidity)
}

// SetTemperature sets the "temperature" field.
func (m *ThrowDraftMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *ThrowDraftMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the ThrowDraft entity.
// If the ThrowDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowDraftMutation) OldTemperature(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *ThrowDraftMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *ThrowDraftMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ClearTemperature clears the value of the "temperature" field.
func (m *ThrowDraftMutation) ClearTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	m.clearedFields[throwdraft.FieldTemperature] = struct{}{}
}

// TemperatureCleared returns if the "temperature" field was cleared in this mutation.
func (m *ThrowDraftMutation) TemperatureCleared() bool {
	_, ok := m.clearedFields[throwdraft.FieldTemperature]
	return ok
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *ThrowDraftMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	delete(m.clearedFields, throwdraft.FieldTemperature)
}

// SetSoil sets the "soil" field.
func (m *ThrowDraftMutation) SetSoil(s string) {
	m.soil = &s
}

// Soil returns the value of the "soil" field in the mutation.
func (m *ThrowDraftMutation) Soil() (r string, exists bool) {
	v := m.soil
	if v == nil {
		return
	}
	return *v, true
}

// OldSoil returns the old "soil" field's value of the ThrowDraft entity.
// If the ThrowDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowDraftMutation) OldSoil(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoil: %w", err)
	}
	return oldValue.Soil, nil
}

// ClearSoil clears the value of the "soil" field.
func (m *ThrowDraftMutation) ClearSoil() {
	m.soil = nil
	m.clearedFields[throwdraft.FieldSoil] = struct{}{}
}

// SoilCleared returns if the "soil" field was cleared in this mutation.
func (m *ThrowDraftMutation) SoilCleared() bool {
	_, ok := m.clearedFields[throwdraft.FieldSoil]
	return ok
}

// ResetSoil resets all changes to the "soil" field.
func (m *ThrowDraftMutation) ResetSoil() {
	m.soil = nil
	delete(m.clearedFields, throwdraft.FieldSoil)
}

// SetMolkkyWeight sets the "molkky_weight" field.
func (m *ThrowDraftMutation) SetMolkkyWeight(f float64) {
	m.molkky_weight = &f
	m.addmolkky_weight = nil
}

// MolkkyWeight returns the value of the "molkky_weight" field in the mutation.
func (m *ThrowDraftMutation) MolkkyWeight() (r float64, exists bool) {
	v := m.molkky_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldMolkkyWeight returns the old "molkky_weight" field's value of the ThrowDraft entity.
// If the ThrowDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowDraftMutation) OldMolkkyWeight(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMolkkyWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMolkkyWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMolkkyWeight: %w", err)
	}
	return oldValue.MolkkyWeight, nil
}

// AddMolkkyWeight adds f to the "molkky_weight" field.
func (m *ThrowDraftMutation) AddMolkkyWeight(f float64) {
	if m.addmolkky_weight != nil {
		*m.addmolkky_weight += f
	} else {
		m.addmolkky_weight = &f
	}
}

// AddedMolkkyWeight returns the value that was added to the "molkky_weight" field in this mutation.
func (m *ThrowDraftMutation) AddedMolkkyWeight() (r float64, exists bool) {
	v := m.addmolkky_weight
	if v == nil {
		return
	}
	return *v, true
}

// ClearMolkkyWeight clears the value of the "molkky_weight" field.
func (m *ThrowDraftMutation) ClearMolkkyWeight() {
	m.molkky_weight = nil
	m.addmolkky_weight = nil
	m.clearedFields[throwdraft.FieldMolkkyWeight] = struct{}{}
}

// MolkkyWeightCleared returns if the "molkky_weight" field was cleared in this mutation.
func (m *ThrowDraftMutation) MolkkyWeightCleared() bool {
	_, ok := m.clearedFields[throwdraft.FieldMolkkyWeight]
	return ok
}

// ResetMolkkyWeight resets all changes to the "molkky_weight" field.
func (m *ThrowDraftMutation) ResetMolkkyWeight() {
	m.molkky_weight = nil
	m.addmolkky_weight = nil
	delete(m.clearedFields, throwdraft.FieldMolkkyWeight)
}

// SetIsSuccess sets the "is_success" field.
func (m *ThrowDraftMutation) SetIsSuccess(b bool) {
	m.is_success = &b
}

// IsSuccess returns the value of the "is_success" field in the mutation.
func (m *ThrowDraftMutation) IsSuccess() (r bool, exists bool) {
	v := m.is_success
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSuccess returns the old "is_success" field's value of the ThrowDraft entity.
// If the ThrowDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowDraftMutation) OldIsSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSuccess: %w", err)
	}
	return oldValue.IsSuccess, nil
}

// ResetIsSuccess resets all changes to the "is_success" field.
func (m *ThrowDraftMutation) ResetIsSuccess() {
	m.is_success = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ThrowDraftMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ThrowDraftMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ThrowDraft entity.
// If the ThrowDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowDraftMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ThrowDraftMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *ThrowDraftMutation) SetOwnerID(id int) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *ThrowDraftMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[throwdraft.FieldUserID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *ThrowDraftMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *ThrowDraftMutation) OwnerID() (id int, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *ThrowDraftMutation) OwnerIDs() (ids []int) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *ThrowDraftMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the ThrowDraftMutation builder.
func (m *ThrowDraftMutation) Where(ps ...predicate.ThrowDraft) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThrowDraftMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThrowDraftMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ThrowDraft, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThrowDraftMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThrowDraftMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ThrowDraft).
func (m *ThrowDraftMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThrowDraftMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.owner != nil {
		fields = append(fields, throwdraft.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, throwdraft.FieldSessionID)
	}
	if m.distance != nil {
		fields = append(fields, throwdraft.FieldDistance)
	}
	if m.angle != nil {
		fields = append(fields, throwdraft.FieldAngle)
	}
	if m.weather != nil {
		fields = append(fields, throwdraft.FieldWeather)
	}
	if m.humidity != nil {
		fields = append(fields, throwdraft.FieldHumidity)
	}
	if m.temperature != nil {
		fields = append(fields, throwdraft.FieldTemperature)
	}
	if m.soil != nil {
		fields = append(fields, throwdraft.FieldSoil)
	}
	if m.molkky_weight != nil {
		fields = append(fields, throwdraft.FieldMolkkyWeight)
	}
	if m.is_success != nil {
		fields = append(fields, throwdraft.FieldIsSuccess)
	}
	if m.timestamp != nil {
		fields = append(fields, throwdraft.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThrowDraftMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case throwdraft.FieldUserID:
		return m.UserID()
	case throwdraft.FieldSessionID:
		return m.SessionID()
	case throwdraft.FieldDistance:
		return m.Distance()
	case throwdraft.FieldAngle:
		return m.Angle()
	case throwdraft.FieldWeather:
		return m.Weather()
	case throwdraft.FieldHumidity:
		return m.Humidity()
	case throwdraft.FieldTemperature:
		return m.Temperature()
	case throwdraft.FieldSoil:
		return m.Soil()
	case throwdraft.FieldMolkkyWeight:
		return m.MolkkyWeight()
	case throwdraft.FieldIsSuccess:
		return m.IsSuccess()
	case throwdraft.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThrowDraftMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case throwdraft.FieldUserID:
		return m.OldUserID(ctx)
	case throwdraft.FieldSessionID:
		return m.OldSessionID(ctx)
	case throwdraft.FieldDistance:
		return m.OldDistance(ctx)
	case throwdraft.FieldAngle:
		return m.OldAngle(ctx)
	case throwdraft.FieldWeather:
		return m.OldWeather(ctx)
	case throwdraft.FieldHumidity:
		return m.OldHumidity(ctx)
	case throwdraft.FieldTemperature:
		return m.OldTemperature(ctx)
	case throwdraft.FieldSoil:
		return m.OldSoil(ctx)
	case throwdraft.FieldMolkkyWeight:
		return m.OldMolkkyWeight(ctx)
	case throwdraft.FieldIsSuccess:
		return m.OldIsSuccess(ctx)
	case throwdraft.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown ThrowDraft field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThrowDraftMutation) SetField(name string, value ent.Value) error {
	switch name {
	case throwdraft.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case throwdraft.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case throwdraft.FieldDistance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistance(v)
		return nil
	case throwdraft.FieldAngle:
		v, ok := value.(throwdraft.Angle)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAngle(v)
		return nil
	case throwdraft.FieldWeather:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeather(v)
		return nil
	case throwdraft.FieldHumidity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumidity(v)
		return nil
	case throwdraft.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case throwdraft.FieldSoil:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoil(v)
		return nil
	case throwdraft.FieldMolkkyWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMolkkyWeight(v)
		return nil
	case throwdraft.FieldIsSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSuccess(v)
		return nil
	case throwdraft.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown ThrowDraft field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThrowDraftMutation) AddedFields() []string {
	var fields []string
	if m.adddistance != nil {
		fields = append(fields, throwdraft.FieldDistance)
	}
	if m.addhumidity != nil {
		fields = append(fields, throwdraft.FieldHumidity)
	}
	if m.addtemperature != nil {
		fields = append(fields, throwdraft.FieldTemperature)
	}
	if m.addmolkky_weight != nil {
		fields = append(fields, throwdraft.FieldMolkkyWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThrowDraftMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case throwdraft.FieldDistance:
		return m.AddedDistance()
	case throwdraft.FieldHumidity:
		return m.AddedHumidity()
	case throwdraft.FieldTemperature:
		return m.AddedTemperature()
	case throwdraft.FieldMolkkyWeight:
		return m.AddedMolkkyWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThrowDraftMutation) AddField(name string, value ent.Value) error {
	switch name {
	case throwdraft.FieldDistance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistance(v)
		return nil
	case throwdraft.FieldHumidity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHumidity(v)
		return nil
	case throwdraft.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case throwdraft.FieldMolkkyWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMolkkyWeight(v)
		return nil
	}
	return fmt.Errorf("unknown ThrowDraft numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThrowDraftMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(throwdraft.FieldWeather) {
		fields = append(fields, throwdraft.FieldWeather)
	}
	if m.FieldCleared(throwdraft.FieldHumidity) {
		fields = append(fields, throwdraft.FieldHumidity)
	}
	if m.FieldCleared(throwdraft.FieldTemperature) {
		fields = append(fields, throwdraft.FieldTemperature)
	}
	if m.FieldCleared(throwdraft.FieldSoil) {
		fields = append(fields, throwdraft.FieldSoil)
	}
	if m.FieldCleared(throwdraft.FieldMolkkyWeight) {
		fields = append(fields, throwdraft.FieldMolkkyWeight)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThrowDraftMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThrowDraftMutation) ClearField(name string) error {
	switch name {
	case throwdraft.FieldWeather:
		m.ClearWeather()
		return nil
	case throwdraft.FieldHumidity:
		m.ClearHumidity()
		return nil
	case throwdraft.FieldTemperature:
		m.ClearTemperature()
		return nil
	case throwdraft.FieldSoil:
		m.ClearSoil()
		return nil
	case throwdraft.FieldMolkkyWeight:
		m.ClearMolkkyWeight()
		return nil
	}
	return fmt.Errorf("unknown ThrowDraft nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThrowDraftMutation) ResetField(name string) error {
	switch name {
	case throwdraft.FieldUserID:
		m.ResetUserID()
		return nil
	case throwdraft.FieldSessionID:
		m.ResetSessionID()
		return nil
	case throwdraft.FieldDistance:
		m.ResetDistance()
		return nil
	case throwdraft.FieldAngle:
		m.ResetAngle()
		return nil
	case throwdraft.FieldWeather:
		m.ResetWeather()
		return nil
	case throwdraft.FieldHumidity:
		m.ResetHumidity()
		return nil
	case throwdraft.FieldTemperature:
		m.ResetTemperature()
		return nil
	case throwdraft.FieldSoil:
		m.ResetSoil()
		return nil
	case throwdraft.FieldMolkkyWeight:
		m.ResetMolkkyWeight()
		return nil
	case throwdraft.FieldIsSuccess:
		m.ResetIsSuccess()
		return nil
	case throwdraft.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown ThrowDraft field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThrowDraftMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owner != nil {
		edges = append(edges, throwdraft.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThrowDraftMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case throwdraft.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThrowDraftMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThrowDraftMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThrowDraftMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowner {
		edges = append(edges, throwdraft.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThrowDraftMutation) EdgeCleared(name string) bool {
	switch name {
	case throwdraft.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThrowDraftMutation) ClearEdge(name string) error {
	switch name {
	case throwdraft.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown ThrowDraft unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThrowDraftMutation) ResetEdge(name string) error {
	switch name {
	case throwdraft.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown ThrowDraft edge %s", name)
}

// ThrowRecordMutation represents an operation that mutates the ThrowRecord nodes in the graph.
type ThrowRecordMutation struct {
	config
	op               Op
	typ              string
	id               *int
	distance         *float64
	adddistance      *float64
	angle            *throwrecord.Angle
	weather          *string
	humidity         *float64
	addhumidity      *float64
	temperature      *float64
	addtemperature   *float64
	soil             *string
	molkky_weight    *float64
	addmolkky_weight *float64
	is_success       *bool
	timestamp        *time.Time
	clearedFields    map[string]struct{}
	owner            *int
	clearedowner     bool
	done             bool
	oldValue         func(context.Context) (*ThrowRecord, error)
	predicates       []predicate.ThrowRecord
}

var _ ent.Mutation = (*ThrowRecordMutation)(nil)

// throwrecordOption allows management of the mutation configuration using functional options.
type throwrecordOption func(*ThrowRecordMutation)

// newThrowRecordMutation creates new mutation for the ThrowRecord entity.
func newThrowRecordMutation(c config, op Op, opts ...throwrecordOption) *ThrowRecordMutation {
	m := &ThrowRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeThrowRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThrowRecordID sets the ID field of the mutation.
func withThrowRecordID(id int) throwrecordOption {
	return func(m *ThrowRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ThrowRecord
		)
		m.oldValue = func(ctx context.Context) (*ThrowRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ThrowRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThrowRecord sets the old ThrowRecord of the mutation.
func withThrowRecord(node *ThrowRecord) throwrecordOption {
	return func(m *ThrowRecordMutation) {
		m.oldValue = func(context.Context) (*ThrowRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThrowRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThrowRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThrowRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThrowRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ThrowRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ThrowRecordMutation) SetUserID(i int) {
	m.owner = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ThrowRecordMutation) UserID() (r int, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ThrowRecord entity.
// If the ThrowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowRecordMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ThrowRecordMutation) ResetUserID() {
	m.owner = nil
}

// SetDistance sets the "distance" field.
func (m *ThrowRecordMutation) SetDistance(f float64) {
	m.distance = &f
	m.adddistance = nil
}

// Distance returns the value of the "distance" field in the mutation.
func (m *ThrowRecordMutation) Distance() (r float64, exists bool) {
	v := m.distance
	if v == nil {
		return
	}
	return *v, true
}

// OldDistance returns the old "distance" field's value of the ThrowRecord entity.
// If the ThrowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowRecordMutation) OldDistance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistance: %w", err)
	}
	return oldValue.Distance, nil
}

// AddDistance adds f to the "distance" field.
func (m *ThrowRecordMutation) AddDistance(f float64) {
	if m.adddistance != nil {
		*m.adddistance += f
	} else {
		m.adddistance = &f
	}
}

// AddedDistance returns the value that was added to the "distance" field in this mutation.
func (m *ThrowRecordMutation) AddedDistance() (r float64, exists bool) {
	v := m.adddistance
	if v == nil {
		return
	}
	return *v, true
}

// ResetDistance resets all changes to the "distance" field.
func (m *ThrowRecordMutation) ResetDistance() {
	m.distance = nil
	m.adddistance = nil
}

// SetAngle sets the "angle" field.
func (m *ThrowRecordMutation) SetAngle(t throwrecord.Angle) {
	m.angle = &t
}

// Angle returns the value of the "angle" field in the mutation.
func (m *ThrowRecordMutation) Angle() (r throwrecord.Angle, exists bool) {
	v := m.angle
	if v == nil {
		return
	}
	return *v, true
}

// OldAngle returns the old "angle" field's value of the ThrowRecord entity.
// If the ThrowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowRecordMutation) OldAngle(ctx context.Context) (v throwrecord.Angle, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAngle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAngle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAngle: %w", err)
	}
	return oldValue.Angle, nil
}

// ResetAngle resets all changes to the "angle" field.
func (m *ThrowRecordMutation) ResetAngle() {
	m.angle = nil
}

// SetWeather sets the "weather" field.
func (m *ThrowRecordMutation) SetWeather(s string) {
	m.weather = &s
}

// Weather returns the value of the "weather" field in the mutation.
func (m *ThrowRecordMutation) Weather() (r string, exists bool) {
	v := m.weather
	if v == nil {
		return
	}
	return *v, true
}

// OldWeather returns the old "weather" field's value of the ThrowRecord entity.
// If the ThrowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowRecordMutation) OldWeather(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeather is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeather requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeather: %w", err)
	}
	return oldValue.Weather, nil
}

// ClearWeather clears the value of the "weather" field.
func (m *ThrowRecordMutation) ClearWeather() {
	m.weather = nil
	m.clearedFields[throwrecord.FieldWeather] = struct{}{}
}

// WeatherCleared returns if the "weather" field was cleared in this mutation.
func (m *ThrowRecordMutation) WeatherCleared() bool {
	_, ok := m.clearedFields[throwrecord.FieldWeather]
	return ok
}

// ResetWeather resets all changes to the "weather" field.
func (m *ThrowRecordMutation) ResetWeather() {
	m.weather = nil
	delete(m.clearedFields, throwrecord.FieldWeather)
}

// SetHumidity sets the "humidity" field.
func (m *ThrowRecordMutation) SetHumidity(f float64) {
	m.humidity = &f
	m.addhumidity = nil
}

// Humidity returns the value of the "humidity" field in the mutation.
func (m *ThrowRecordMutation) Humidity() (r float64, exists bool) {
	v := m.humidity
	if v == nil {
		return
	}
	return *v, true
}

// OldHumidity returns the old "humidity" field's value of the ThrowRecord entity.
// If the ThrowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowRecordMutation) OldHumidity(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumidity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumidity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumidity: %w", err)
	}
	return oldValue.Humidity, nil
}

// AddHumidity adds f to the "humidity" field.
func (m *ThrowRecordMutation) AddHumidity(f float64) {
	if m.addhumidity != nil {
		*m.addhumidity += f
	} else {
		m.addhumidity = &f
	}
}

// AddedHumidity returns the value that was added to the "humidity" field in this mutation.
func (m *ThrowRecordMutation) AddedHumidity() (r float64, exists bool) {
	v := m.addhumidity
	if v == nil {
		return
	}
	return *v, true
}

// ClearHumidity clears the value of the "humidity" field.
func (m *ThrowRecordMutation) ClearHumidity() {
	m.humidity = nil
	m.addhumidity = nil
	m.clearedFields[throwrecord.FieldHumidity] = struct{}{}
}

// HumidityCleared returns if the "humidity" field was cleared in this mutation.
func (m *ThrowRecordMutation) HumidityCleared() bool {
	_, ok := m.clearedFields[throwrecord.FieldHumidity]
	return ok
}

// ResetHumidity resets all changes to the "humidity" field.
func (m *ThrowRecordMutation) ResetHumidity() {
	m.humidity = nil
	m.addhumidity = nil
	delete(m.clearedFields, throwrecord.FieldHumidity)
}

// SetTemperature sets the "temperature" field.
func (m *ThrowRecordMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *ThrowRecordMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the ThrowRecord entity.
// If the ThrowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowRecordMutation) OldTemperature(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *ThrowRecordMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *ThrowRecordMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ClearTemperature clears the value of the "temperature" field.
func (m *ThrowRecordMutation) ClearTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	m.clearedFields[throwrecord.FieldTemperature] = struct{}{}
}

// TemperatureCleared returns if the "temperature" field was cleared in this mutation.
func (m *ThrowRecordMutation) TemperatureCleared() bool {
	_, ok := m.clearedFields[throwrecord.FieldTemperature]
	return ok
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *ThrowRecordMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	delete(m.clearedFields, throwrecord.FieldTemperature)
}

// SetSoil sets the "soil" field.
func (m *ThrowRecordMutation) SetSoil(s string) {
	m.soil = &s
}

// Soil returns the value of the "soil" field in the mutation.
func (m *ThrowRecordMutation) Soil() (r string, exists bool) {
	v := m.soil
	if v == nil {
		return
	}
	return *v, true
}

// OldSoil returns the old "soil" field's value of the ThrowRecord entity.
// If the ThrowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowRecordMutation) OldSoil(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoil: %w", err)
	}
	return oldValue.Soil, nil
}

// ClearSoil clears the value of the "soil" field.
func (m *ThrowRecordMutation) ClearSoil() {
	m.soil = nil
	m.clearedFields[throwrecord.FieldSoil] = struct{}{}
}

// SoilCleared returns if the "soil" field was cleared in this mutation.
func (m *ThrowRecordMutation) SoilCleared() bool {
	_, ok := m.clearedFields[throwrecord.FieldSoil]
	return ok
}

// ResetSoil resets all changes to the "soil" field.
func (m *ThrowRecordMutation) ResetSoil() {
	m.soil = nil
	delete(m.clearedFields, throwrecord.FieldSoil)
}

// SetMolkkyWeight sets the "molkky_weight" field.
func (m *ThrowRecordMutation) SetMolkkyWeight(f float64) {
	m.molkky_weight = &f
	m.addmolkky_weight = nil
}

// MolkkyWeight returns the value of the "molkky_weight" field in the mutation.
func (m *ThrowRecordMutation) MolkkyWeight() (r float64, exists bool) {
	v := m.molkky_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldMolkkyWeight returns the old "molkky_weight" field's value of the ThrowRecord entity.
// If the ThrowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowRecordMutation) OldMolkkyWeight(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMolkkyWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMolkkyWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMolkkyWeight: %w", err)
	}
	return oldValue.MolkkyWeight, nil
}

// AddMolkkyWeight adds f to the "molkky_weight" field.
func (m *ThrowRecordMutation) AddMolkkyWeight(f float64) {
	if m.addmolkky_weight != nil {
		*m.addmolkky_weight += f
	} else {
		m.addmolkky_weight = &f
	}
}

// AddedMolkkyWeight returns the value that was added to the "molkky_weight" field in this mutation.
func (m *ThrowRecordMutation) AddedMolkkyWeight() (r float64, exists bool) {
	v := m.addmolkky_weight
	if v == nil {
		return
	}
	return *v, true
}

// ClearMolkkyWeight clears the value of the "molkky_weight" field.
func (m *ThrowRecordMutation) ClearMolkkyWeight() {
	m.molkky_weight = nil
	m.addmolkky_weight = nil
	m.clearedFields[throwrecord.FieldMolkkyWeight] = struct{}{}
}

// MolkkyWeightCleared returns if the "molkky_weight" field was cleared in this mutation.
func (m *ThrowRecordMutation) MolkkyWeightCleared() bool {
	_, ok := m.clearedFields[throwrecord.FieldMolkkyWeight]
	return ok
}

// ResetMolkkyWeight resets all changes to the "molkky_weight" field.
func (m *ThrowRecordMutation) ResetMolkkyWeight() {
	m.molkky_weight = nil
	m.addmolkky_weight = nil
	delete(m.clearedFields, throwrecord.FieldMolkkyWeight)
}

// SetIsSuccess sets the "is_success" field.
func (m *ThrowRecordMutation) SetIsSuccess(b bool) {
	m.is_success = &b
}

// IsSuccess returns the value of the "is_success" field in the mutation.
func (m *ThrowRecordMutation) IsSuccess() (r bool, exists bool) {
	v := m.is_success
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSuccess returns the old "is_success" field's value of the ThrowRecord entity.
// If the ThrowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowRecordMutation) OldIsSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSuccess: %w", err)
	}
	return oldValue.IsSuccess, nil
}

// ResetIsSuccess resets all changes to the "is_success" field.
func (m *ThrowRecordMutation) ResetIsSuccess() {
	m.is_success = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ThrowRecordMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ThrowRecordMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ThrowRecord entity.
// If the ThrowRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThrowRecordMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ThrowRecordMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *ThrowRecordMutation) SetOwnerID(id int) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *ThrowRecordMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[throwrecord.FieldUserID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *ThrowRecordMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *ThrowRecordMutation) OwnerID() (id int, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *ThrowRecordMutation) OwnerIDs() (ids []int) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *ThrowRecordMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the ThrowRecordMutation builder.
func (m *ThrowRecordMutation) Where(ps ...predicate.ThrowRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThrowRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThrowRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ThrowRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThrowRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThrowRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ThrowRecord).
func (m *ThrowRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThrowRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.owner != nil {
		fields = append(fields, throwrecord.FieldUserID)
	}
	if m.distance != nil {
		fields = append(fields, throwrecord.FieldDistance)
	}
	if m.angle != nil {
		fields = append(fields, throwrecord.FieldAngle)
	}
	if m.weather != nil {
		fields = append(fields, throwrecord.FieldWeather)
	}
	if m.humidity != nil {
		fields = append(fields, throwrecord.FieldHumidity)
	}
	if m.temperature != nil {
		fields = append(fields, throwrecord.FieldTemperature)
	}
	if m.soil != nil {
		fields = append(fields, throwrecord.FieldSoil)
	}
	if m.molkky_weight != nil {
		fields = append(fields, throwrecord.FieldMolkkyWeight)
	}
	if m.is_success != nil {
		fields = append(fields, throwrecord.FieldIsSuccess)
	}
	if m.timestamp != nil {
		fields = append(fields, throwrecord.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThrowRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case throwrecord.FieldUserID:
		return m.UserID()
	case throwrecord.FieldDistance:
		return m.Distance()
	case throwrecord.FieldAngle:
		return m.Angle()
	case throwrecord.FieldWeather:
		return m.Weather()
	case throwrecord.FieldHumidity:
		return m.Humidity()
	case throwrecord.FieldTemperature:
		return m.Temperature()
	case throwrecord.FieldSoil:
		return m.Soil()
	case throwrecord.FieldMolkkyWeight:
		return m.MolkkyWeight()
	case throwrecord.FieldIsSuccess:
		return m.IsSuccess()
	case throwrecord.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThrowRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case throwrecord.FieldUserID:
		return m.OldUserID(ctx)
	case throwrecord.FieldDistance:
		return m.OldDistance(ctx)
	case throwrecord.FieldAngle:
		return m.OldAngle(ctx)
	case throwrecord.FieldWeather:
		return m.OldWeather(ctx)
	case throwrecord.FieldHumidity:
		return m.OldHumidity(ctx)
	case throwrecord.FieldTemperature:
		return m.OldTemperature(ctx)
	case throwrecord.FieldSoil:
		return m.OldSoil(ctx)
	case throwrecord.FieldMolkkyWeight:
		return m.OldMolkkyWeight(ctx)
	case throwrecord.FieldIsSuccess:
		return m.OldIsSuccess(ctx)
	case throwrecord.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown ThrowRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThrowRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case throwrecord.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case throwrecord.FieldDistance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistance(v)
		return nil
	case throwrecord.FieldAngle:
		v, ok := value.(throwrecord.Angle)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAngle(v)
		return nil
	case throwrecord.FieldWeather:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeather(v)
		return nil
	case throwrecord.FieldHumidity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumidity(v)
		return nil
	case throwrecord.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case throwrecord.FieldSoil:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoil(v)
		return nil
	case throwrecord.FieldMolkkyWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMolkkyWeight(v)
		return nil
	case throwrecord.FieldIsSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSuccess(v)
		return nil
	case throwrecord.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown ThrowRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThrowRecordMutation) AddedFields() []string {
	var fields []string
	if m.adddistance != nil {
		fields = append(fields, throwrecord.FieldDistance)
	}
	if m.addhumidity != nil {
		fields = append(fields, throwrecord.FieldHumidity)
	}
	if m.addtemperature != nil {
		fields = append(fields, throwrecord.FieldTemperature)
	}
	if m.addmolkky_weight != nil {
		fields = append(fields, throwrecord.FieldMolkkyWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThrowRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case throwrecord.FieldDistance:
		return m.AddedDistance()
	case throwrecord.FieldHumidity:
		return m.AddedHumidity()
	case throwrecord.FieldTemperature:
		return m.AddedTemperature()
	case throwrecord.FieldMolkkyWeight:
		return m.AddedMolkkyWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThrowRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case throwrecord.FieldDistance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistance(v)
		return nil
	case throwrecord.FieldHumidity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHumidity(v)
		return nil
	case throwrecord.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case throwrecord.FieldMolkkyWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMolkkyWeight(v)
		return nil
	}
	return fmt.Errorf("unknown ThrowRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThrowRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(throwrecord.FieldWeather) {
		fields = append(fields, throwrecord.FieldWeather)
	}
	if m.FieldCleared(throwrecord.FieldHumidity) {
		fields = append(fields, throwrecord.FieldHumidity)
	}
	if m.FieldCleared(throwrecord.FieldTemperature) {
		fields = append(fields, throwrecord.FieldTemperature)
	}
	if m.FieldCleared(throwrecord.FieldSoil) {
		fields = append(fields, throwrecord.FieldSoil)
	}
	if m.FieldCleared(throwrecord.FieldMolkkyWeight) {
		fields = append(fields, throwrecord.FieldMolkkyWeight)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThrowRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThrowRecordMutation) ClearField(name string) error {
	switch name {
	case throwrecord.FieldWeather:
		m.ClearWeather()
		return nil
	case throwrecord.FieldHumidity:
		m.ClearHumidity()
		return nil
	case throwrecord.FieldTemperature:
		m.ClearTemperature()
		return nil
	case throwrecord.FieldSoil:
		m.ClearSoil()
		return nil
	case throwrecord.FieldMolkkyWeight:
		m.ClearMolkkyWeight()
		return nil
	}
	return fmt.Errorf("unknown ThrowRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThrowRecordMutation) ResetField(name string) error {
	switch name {
	case throwrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case throwrecord.FieldDistance:
		m.ResetDistance()
		return nil
	case throwrecord.FieldAngle:
		m.ResetAngle()
		return nil
	case throwrecord.FieldWeather:
		m.ResetWeather()
		return nil
	case throwrecord.FieldHumidity:
		m.ResetHumidity()
		return nil
	case throwrecord.FieldTemperature:
		m.ResetTemperature()
		return nil
	case throwrecord.FieldSoil:
		m.ResetSoil()
		return nil
	case throwrecord.FieldMolkkyWeight:
		m.ResetMolkkyWeight()
		return nil
	case throwrecord.FieldIsSuccess:
		m.ResetIsSuccess()
		return nil
	case throwrecord.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown ThrowRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThrowRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owner != nil {
		edges = append(edges, throwrecord.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThrowRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case throwrecord.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThrowRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThrowRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThrowRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowner {
		edges = append(edges, throwrecord.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThrowRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case throwrecord.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThrowRecordMutation) ClearEdge(name string) error {
	switch name {
	case throwrecord.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown ThrowRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThrowRecordMutation) ResetEdge(name string) error {
	switch name {
	case throwrecord.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown ThrowRecord edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op             Op
	typ            string
	id             *int
	name           *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	drafts         map[int]struct{}
	removeddrafts  map[int]struct{}
	cleareddrafts  bool
	records        map[int]struct{}
	removedrecords map[int]struct{}
	clearedrecords bool
	done           bool
	oldValue       func(context.Context) (*User, error)
	predicates     []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddDraftIDs adds the "drafts" edge to the ThrowDraft entity by ids.
func (m *UserMutation) AddDraftIDs(ids ...int) {
	if m.drafts == nil {
		m.drafts = make(map[int]struct{})
	}
	for i := range ids {
		m.drafts[ids[i]] = struct{}{}
	}
}

// ClearDrafts clears the "drafts" edge to the ThrowDraft entity.
func (m *UserMutation) ClearDrafts() {
	m.cleareddrafts = true
}

// DraftsCleared reports if the "drafts" edge to the ThrowDraft entity was cleared.
func (m *UserMutation) DraftsCleared() bool {
	return m.cleareddrafts
}

// RemoveDraftIDs removes the "drafts" edge to the ThrowDraft entity by IDs.
func (m *UserMutation) RemoveDraftIDs(ids ...int) {
	if m.removeddrafts == nil {
		m.removeddrafts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.drafts, ids[i])
		m.removeddrafts[ids[i]] = struct{}{}
	}
}

// RemovedDrafts returns the removed IDs of the "drafts" edge to the ThrowDraft entity.
func (m *UserMutation) RemovedDraftsIDs() (ids []int) {
	for id := range m.removeddrafts {
		ids = append(ids, id)
	}
	return
}

// DraftsIDs returns the "drafts" edge IDs in the mutation.
func (m *UserMutation) DraftsIDs() (ids []int) {
	for id := range m.drafts {
		ids = append(ids, id)
	}
	return
}

// ResetDrafts resets all changes to the "drafts" edge.
func (m *UserMutation) ResetDrafts() {
	m.drafts = nil
	m.cleareddrafts = false
	m.removeddrafts = nil
}

// AddRecordIDs adds the "records" edge to the ThrowRecord entity by ids.
func (m *UserMutation) AddRecordIDs(ids ...int) {
	if m.records == nil {
		m.records = make(map[int]struct{})
	}
	for i := range ids {
		m.records[ids[i]] = struct{}{}
	}
}

// ClearRecords clears the "records" edge to the ThrowRecord entity.
func (m *UserMutation) ClearRecords() {
	m.clearedrecords = true
}

// RecordsCleared reports if the "records" edge to the ThrowRecord entity was cleared.
func (m *UserMutation) RecordsCleared() bool {
	return m.clearedrecords
}

// RemoveRecordIDs removes the "records" edge to the ThrowRecord entity by IDs.
func (m *UserMutation) RemoveRecordIDs(ids ...int) {
	if m.removedrecords == nil {
		m.removedrecords = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.records, ids[i])
		m.removedrecords[ids[i]] = struct{}{}
	}
}

// RemovedRecords returns the removed IDs of the "records" edge to the ThrowRecord entity.
func (m *UserMutation) RemovedRecordsIDs() (ids []int) {
	for id := range m.removedrecords {
		ids = append(ids, id)
	}
	return
}

// RecordsIDs returns the "records" edge IDs in the mutation.
func (m *UserMutation) RecordsIDs() (ids []int) {
	for id := range m.records {
		ids = append(ids, id)
	}
	return
}

// ResetRecords resets all changes to the "records" edge.
func (m *UserMutation) ResetRecords() {
	m.records = nil
	m.clearedrecords = false
	m.removedrecords = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldName:
		return m.Name()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.drafts != nil {
		edges = append(edges, user.EdgeDrafts)
	}
	if m.records != nil {
		edges = append(edges, user.EdgeRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeDrafts:
		ids := make([]ent.Value, 0, len(m.drafts))
		for id := range m.drafts {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.records))
		for id := range m.records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddrafts != nil {
		edges = append(edges, user.EdgeDrafts)
	}
	if m.removedrecords != nil {
		edges = append(edges, user.EdgeRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeDrafts:
		ids := make([]ent.Value, 0, len(m.removeddrafts))
		for id := range m.removeddrafts {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.removedrecords))
		for id := range m.removedrecords {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddrafts {
		edges = append(edges, user.EdgeDrafts)
	}
	if m.clearedrecords {
		edges = append(edges, user.EdgeRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeDrafts:
		return m.cleareddrafts
	case user.EdgeRecords:
		return m.clearedrecords
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeDrafts:
		m.ResetDrafts()
		return nil
	case user.EdgeRecords:
		m.ResetRecords()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
