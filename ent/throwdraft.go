// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/molkkylog/ent/throwdraft"
	"github.com/abhisek/molkkylog/ent/user"
)

// ThrowDraft is the model entity for the ThrowDraft schema.
type ThrowDraft struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// Opaque id of the practice session tab that staged this draft
	SessionID string `json:"session_id,omitempty"`
	// Target distance in meters
	Distance float64 `json:"distance,omitempty"`
	// Angle holds the value of the "angle" field.
	Angle throwdraft.Angle `json:"angle,omitempty"`
	// Weather holds the value of the "weather" field.
	Weather *string `json:"weather,omitempty"`
	// Humidity holds the value of the "humidity" field.
	Humidity *float64 `json:"humidity,omitempty"`
	// Temperature holds the value of the "temperature" field.
	Temperature *float64 `json:"temperature,omitempty"`
	// Soil holds the value of the "soil" field.
	Soil *string `json:"soil,omitempty"`
	// MolkkyWeight holds the value of the "molkky_weight" field.
	MolkkyWeight *float64 `json:"molkky_weight,omitempty"`
	// IsSuccess holds the value of the "is_success" field.
	IsSuccess bool `json:"is_success,omitempty"`
	// Event time of the throw, not insertion time
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ThrowDraftQuery when eager-loading is set.
	Edges        ThrowDraftEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ThrowDraftEdges holds the relations/edges for other nodes in the graph.
type ThrowDraftEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ThrowDraftEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ThrowDraft) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case throwdraft.FieldIsSuccess:
			values[i] = new(sql.NullBool)
		case throwdraft.FieldDistance, throwdraft.FieldHumidity, throwdraft.FieldTemperature, throwdraft.FieldMolkkyWeight:
			values[i] = new(sql.NullFloat64)
		case throwdraft.FieldID, throwdraft.FieldUserID:
			values[i] = new(sql.NullInt64)
		case throwdraft.FieldSessionID, throwdraft.FieldAngle, throwdraft.FieldWeather, throwdraft.FieldSoil:
			values[i] = new(sql.NullString)
		case throwdraft.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ThrowDraft fields.
func (_m *ThrowDraft) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case throwdraft.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case throwdraft.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case throwdraft.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case throwdraft.FieldDistance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field distance", values[i])
			} else if value.Valid {
				_m.Distance = value.Float64
			}
		case throwdraft.FieldAngle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field angle", values[i])
			} else if value.Valid {
				_m.Angle = throwdraft.Angle(value.String)
			}
		case throwdraft.FieldWeather:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field weather", values[i])
			} else if value.Valid {
				_m.Weather = new(string)
				*_m.Weather = value.String
			}
		case throwdraft.FieldHumidity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field humidity", values[i])
			} else if value.Valid {
				_m.Humidity = new(float64)
				*_m.Humidity = value.Float64
			}
		case throwdraft.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = new(float64)
				*_m.Temperature = value.Float64
			}
		case throwdraft.FieldSoil:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field soil", values[i])
			} else if value.Valid {
				_m.Soil = new(string)
				*_m.Soil = value.String
			}
		case throwdraft.FieldMolkkyWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field molkky_weight", values[i])
			} else if value.Valid {
				_m.MolkkyWeight = new(float64)
				*_m.MolkkyWeight = value.Float64
			}
		case throwdraft.FieldIsSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_success", values[i])
			} else if value.Valid {
				_m.IsSuccess = value.Bool
			}
		case throwdraft.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ThrowDraft.
// This includes values selected through modifiers, order, etc.
func (_m *ThrowDraft) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the ThrowDraft entity.
func (_m *ThrowDraft) QueryOwner() *UserQuery {
	return NewThrowDraftClient(_m.config).QueryOwner(_m)
}

// Update returns a builder for updating this ThrowDraft.
// Note that you need to call ThrowDraft.Unwrap() before calling this method if this ThrowDraft
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ThrowDraft) Update() *ThrowDraftUpdateOne {
	return NewThrowDraftClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ThrowDraft entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ThrowDraft) Unwrap() *ThrowDraft {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ThrowDraft is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ThrowDraft) String() string {
	var builder strings.Builder
	builder.WriteString("ThrowDraft(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("distance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Distance))
	builder.WriteString(", ")
	builder.WriteString("angle=")
	builder.WriteString(fmt.Sprintf("%v", _m.Angle))
	builder.WriteString(", ")
	if v := _m.Weather; v != nil {
		builder.WriteString("weather=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Humidity; v != nil {
		builder.WriteString("humidity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Temperature; v != nil {
		builder.WriteString("temperature=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Soil; v != nil {
		builder.WriteString("soil=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MolkkyWeight; v != nil {
		builder.WriteString("molkky_weight=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_success=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSuccess))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ThrowDrafts is a parsable slice of ThrowDraft.
type ThrowDrafts []*ThrowDraft
