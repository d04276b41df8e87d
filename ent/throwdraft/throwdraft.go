// Code generated by ent, DO NOT EDIT.

package throwdraft

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the throwdraft type in the database.
	Label = "throw_draft"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldDistance holds the string denoting the distance field in the database.
	FieldDistance = "distance"
	// FieldAngle holds the string denoting the angle field in the database.
	FieldAngle = "angle"
	// FieldWeather holds the string denoting the weather field in the database.
	FieldWeather = "weather"
	// FieldHumidity holds the string denoting the humidity field in the database.
	FieldHumidity = "humidity"
	// FieldTemperature holds the string denoting the temperature field in the database.
	FieldTemperature = "temperature"
	// FieldSoil holds the string denoting the soil field in the database.
	FieldSoil = "soil"
	// FieldMolkkyWeight holds the string denoting the molkky_weight field in the database.
	FieldMolkkyWeight = "molkky_weight"
	// FieldIsSuccess holds the string denoting the is_success field in the database.
	FieldIsSuccess = "is_success"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// Table holds the table name of the throwdraft in the database.
	Table = "throw_drafts"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "throw_drafts"
	// OwnerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OwnerInverseTable = "users"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "user_id"
)

// Columns holds all SQL columns for throwdraft fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSessionID,
	FieldDistance,
	FieldAngle,
	FieldWeather,
	FieldHumidity,
	FieldTemperature,
	FieldSoil,
	FieldMolkkyWeight,
	FieldIsSuccess,
	FieldTimestamp,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DistanceValidator is a validator for the "distance" field. It is called by the builders before save.
	DistanceValidator func(float64) error
)

// Angle defines the type for the "angle" enum field.
type Angle string

// Angle values.
const (
	AngleLEFT   Angle = "LEFT"
	AngleCENTER Angle = "CENTER"
	AngleRIGHT  Angle = "RIGHT"
)

func (a Angle) String() string {
	return string(a)
}

// AngleValidator is a validator for the "angle" field enum values. It is called by the builders before save.
func AngleValidator(a Angle) error {
	switch a {
	case AngleLEFT, AngleCENTER, AngleRIGHT:
		return nil
	default:
		return fmt.Errorf("throwdraft: invalid enum value for angle field: %q", a)
	}
}

// OrderOption defines the ordering options for the ThrowDraft queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByDistance orders the results by the distance field.
func ByDistance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistance, opts...).ToFunc()
}

// ByAngle orders the results by the angle field.
func ByAngle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAngle, opts...).ToFunc()
}

// ByWeather orders the results by the weather field.
func ByWeather(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeather, opts...).ToFunc()
}

// ByHumidity orders the results by the humidity field.
func ByHumidity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumidity, opts...).ToFunc()
}

// ByTemperature orders the results by the temperature field.
func ByTemperature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemperature, opts...).ToFunc()
}

// BySoil orders the results by the soil field.
func BySoil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoil, opts...).ToFunc()
}

// ByMolkkyWeight orders the results by the molkky_weight field.
func ByMolkkyWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMolkkyWeight, opts...).ToFunc()
}

// ByIsSuccess orders the results by the is_success field.
func ByIsSuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSuccess, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
	)
}
