// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/molkkylog/ent/throwrecord"
	"github.com/abhisek/molkkylog/ent/user"
)

// ThrowRecord is the model entity for the ThrowRecord schema.
type ThrowRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// Distance holds the value of the "distance" field.
	Distance float64 `json:"distance,omitempty"`
	// Angle holds the value of the "angle" field.
	Angle throwrecord.Angle `json:"angle,omitempty"`
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
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ThrowRecordQuery when eager-loading is set.
	Edges        ThrowRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ThrowRecordEdges holds the relations/edges for other nodes in the graph.
type ThrowRecordEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ThrowRecordEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ThrowRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case throwrecord.FieldIsSuccess:
			values[i] = new(sql.NullBool)
		case throwrecord.FieldDistance, throwrecord.FieldHumidity, throwrecord.FieldTemperature, throwrecord.FieldMolkkyWeight:
			values[i] = new(sql.NullFloat64)
		case throwrecord.FieldID, throwrecord.FieldUserID:
			values[i] = new(sql.NullInt64)
		case throwrecord.FieldAngle, throwrecord.FieldWeather, throwrecord.FieldSoil:
			values[i] = new(sql.NullString)
		case throwrecord.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ThrowRecord fields.
func (_m *ThrowRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case throwrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case throwrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case throwrecord.FieldDistance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field distance", values[i])
			} else if value.Valid {
				_m.Distance = value.Float64
			}
		case throwrecord.FieldAngle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field angle", values[i])
			} else if value.Valid {
				_m.Angle = throwrecord.Angle(value.String)
			}
		case throwrecord.FieldWeather:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field weather", values[i])
			} else if value.Valid {
				_m.Weather = new(string)
				*_m.Weather = value.String
			}
		case throwrecord.FieldHumidity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field humidity", values[i])
			} else if value.Valid {
				_m.Humidity = new(float64)
				*_m.Humidity = value.Float64
			}
		case throwrecord.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = new(float64)
				*_m.Temperature = value.Float64
			}
		case throwrecord.FieldSoil:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field soil", values[i])
			} else if value.Valid {
				_m.Soil = new(string)
				*_m.Soil = value.String
			}
		case throwrecord.FieldMolkkyWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field molkky_weight", values[i])
			} else if value.Valid {
				_m.MolkkyWeight = new(float64)
				*_m.MolkkyWeight = value.Float64
			}
		case throwrecord.FieldIsSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_success", values[i])
			} else if value.Valid {
				_m.IsSuccess = value.Bool
			}
		case throwrecord.FieldTimestamp:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ThrowRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ThrowRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the ThrowRecord entity.
func (_m *ThrowRecord) QueryOwner() *UserQuery {
	return NewThrowRecordClient(_m.config).QueryOwner(_m)
}

// Update returns a builder for updating this ThrowRecord.
// Note that you need to call ThrowRecord.Unwrap() before calling this method if this ThrowRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ThrowRecord) Update() *ThrowRecordUpdateOne {
	return NewThrowRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ThrowRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ThrowRecord) Unwrap() *ThrowRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ThrowRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ThrowRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ThrowRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
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

// ThrowRecords is a parsable slice of ThrowRecord.
type ThrowRecords []*ThrowRecord
