// Code generated by ent, DO NOT EDIT.

package throwrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/molkkylog/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldUserID, v))
}

// Distance applies equality check predicate on the "distance" field. It's identical to DistanceEQ.
func Distance(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldDistance, v))
}

// Weather applies equality check predicate on the "weather" field. It's identical to WeatherEQ.
func Weather(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldWeather, v))
}

// Humidity applies equality check predicate on the "humidity" field. It's identical to HumidityEQ.
func Humidity(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldHumidity, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldTemperature, v))
}

// Soil applies equality check predicate on the "soil" field. It's identical to SoilEQ.
func Soil(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldSoil, v))
}

// MolkkyWeight applies equality check predicate on the "molkky_weight" field. It's identical to MolkkyWeightEQ.
func MolkkyWeight(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldMolkkyWeight, v))
}

// IsSuccess applies equality check predicate on the "is_success" field. It's identical to IsSuccessEQ.
func IsSuccess(v bool) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldIsSuccess, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// DistanceEQ applies the EQ predicate on the "distance" field.
func DistanceEQ(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldDistance, v))
}

// DistanceNEQ applies the NEQ predicate on the "distance" field.
func DistanceNEQ(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNEQ(FieldDistance, v))
}

// DistanceIn applies the In predicate on the "distance" field.
func DistanceIn(vs ...float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldIn(FieldDistance, vs...))
}

// DistanceNotIn applies the NotIn predicate on the "distance" field.
func DistanceNotIn(vs ...float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNotIn(FieldDistance, vs...))
}

// DistanceGT applies the GT predicate on the "distance" field.
func DistanceGT(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGT(FieldDistance, v))
}

// DistanceGTE applies the GTE predicate on the "distance" field.
func DistanceGTE(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGTE(FieldDistance, v))
}

// DistanceLT applies the LT predicate on the "distance" field.
func DistanceLT(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLT(FieldDistance, v))
}

// DistanceLTE applies the LTE predicate on the "distance" field.
func DistanceLTE(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLTE(FieldDistance, v))
}

// AngleEQ applies the EQ predicate on the "angle" field.
func AngleEQ(v Angle) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldAngle, v))
}

// AngleNEQ applies the NEQ predicate on the "angle" field.
func AngleNEQ(v Angle) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNEQ(FieldAngle, v))
}

// AngleIn applies the In predicate on the "angle" field.
func AngleIn(vs ...Angle) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldIn(FieldAngle, vs...))
}

// AngleNotIn applies the NotIn predicate on the "angle" field.
func AngleNotIn(vs ...Angle) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNotIn(FieldAngle, vs...))
}

// WeatherEQ applies the EQ predicate on the "weather" field.
func WeatherEQ(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldWeather, v))
}

// WeatherNEQ applies the NEQ predicate on the "weather" field.
func WeatherNEQ(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNEQ(FieldWeather, v))
}

// WeatherIn applies the In predicate on the "weather" field.
func WeatherIn(vs ...string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldIn(FieldWeather, vs...))
}

// WeatherNotIn applies the NotIn predicate on the "weather" field.
func WeatherNotIn(vs ...string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNotIn(FieldWeather, vs...))
}

// WeatherGT applies the GT predicate on the "weather" field.
func WeatherGT(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGT(FieldWeather, v))
}

// WeatherGTE applies the GTE predicate on the "weather" field.
func WeatherGTE(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGTE(FieldWeather, v))
}

// WeatherLT applies the LT predicate on the "weather" field.
func WeatherLT(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLT(FieldWeather, v))
}

// WeatherLTE applies the LTE predicate on the "weather" field.
func WeatherLTE(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLTE(FieldWeather, v))
}

// WeatherContains applies the Contains predicate on the "weather" field.
func WeatherContains(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldContains(FieldWeather, v))
}

// WeatherHasPrefix applies the HasPrefix predicate on the "weather" field.
func WeatherHasPrefix(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldHasPrefix(FieldWeather, v))
}

// WeatherHasSuffix applies the HasSuffix predicate on the "weather" field.
func WeatherHasSuffix(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldHasSuffix(FieldWeather, v))
}

// WeatherIsNil applies the IsNil predicate on the "weather" field.
func WeatherIsNil() predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldIsNull(FieldWeather))
}

// WeatherNotNil applies the NotNil predicate on the "weather" field.
func WeatherNotNil() predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNotNull(FieldWeather))
}

// WeatherEqualFold applies the EqualFold predicate on the "weather" field.
func WeatherEqualFold(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEqualFold(FieldWeather, v))
}

// WeatherContainsFold applies the ContainsFold predicate on the "weather" field.
func WeatherContainsFold(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldContainsFold(FieldWeather, v))
}

// HumidityEQ applies the EQ predicate on the "humidity" field.
func HumidityEQ(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldHumidity, v))
}

// HumidityNEQ applies the NEQ predicate on the "humidity" field.
func HumidityNEQ(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNEQ(FieldHumidity, v))
}

// HumidityIn applies the In predicate on the "humidity" field.
func HumidityIn(vs ...float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldIn(FieldHumidity, vs...))
}

// HumidityNotIn applies the NotIn predicate on the "humidity" field.
func HumidityNotIn(vs ...float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNotIn(FieldHumidity, vs...))
}

// HumidityGT applies the GT predicate on the "humidity" field.
func HumidityGT(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGT(FieldHumidity, v))
}

// HumidityGTE applies the GTE predicate on the "humidity" field.
func HumidityGTE(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGTE(FieldHumidity, v))
}

// HumidityLT applies the LT predicate on the "humidity" field.
func HumidityLT(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLT(FieldHumidity, v))
}

// HumidityLTE applies the LTE predicate on the "humidity" field.
func HumidityLTE(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLTE(FieldHumidity, v))
}

// HumidityIsNil applies the IsNil predicate on the "humidity" field.
func HumidityIsNil() predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldIsNull(FieldHumidity))
}

// HumidityNotNil applies the NotNil predicate on the "humidity" field.
func HumidityNotNil() predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNotNull(FieldHumidity))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLTE(FieldTemperature, v))
}

// TemperatureIsNil applies the IsNil predicate on the "temperature" field.
func TemperatureIsNil() predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldIsNull(FieldTemperature))
}

// TemperatureNotNil applies the NotNil predicate on the "temperature" field.
func TemperatureNotNil() predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNotNull(FieldTemperature))
}

// SoilEQ applies the EQ predicate on the "soil" field.
func SoilEQ(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldSoil, v))
}

// SoilNEQ applies the NEQ predicate on the "soil" field.
func SoilNEQ(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNEQ(FieldSoil, v))
}

// SoilIn applies the In predicate on the "soil" field.
func SoilIn(vs ...string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldIn(FieldSoil, vs...))
}

// SoilNotIn applies the NotIn predicate on the "soil" field.
func SoilNotIn(vs ...string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNotIn(FieldSoil, vs...))
}

// SoilGT applies the GT predicate on the "soil" field.
func SoilGT(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGT(FieldSoil, v))
}

// SoilGTE applies the GTE predicate on the "soil" field.
func SoilGTE(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGTE(FieldSoil, v))
}

// SoilLT applies the LT predicate on the "soil" field.
func SoilLT(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLT(FieldSoil, v))
}

// SoilLTE applies the LTE predicate on the "soil" field.
func SoilLTE(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLTE(FieldSoil, v))
}

// SoilContains applies the Contains predicate on the "soil" field.
func SoilContains(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldContains(FieldSoil, v))
}

// SoilHasPrefix applies the HasPrefix predicate on the "soil" field.
func SoilHasPrefix(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldHasPrefix(FieldSoil, v))
}

// SoilHasSuffix applies the HasSuffix predicate on the "soil" field.
func SoilHasSuffix(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldHasSuffix(FieldSoil, v))
}

// SoilIsNil applies the IsNil predicate on the "soil" field.
func SoilIsNil() predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldIsNull(FieldSoil))
}

// SoilNotNil applies the NotNil predicate on the "soil" field.
func SoilNotNil() predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNotNull(FieldSoil))
}

// SoilEqualFold applies the EqualFold predicate on the "soil" field.
func SoilEqualFold(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEqualFold(FieldSoil, v))
}

// SoilContainsFold applies the ContainsFold predicate on the "soil" field.
func SoilContainsFold(v string) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldContainsFold(FieldSoil, v))
}

// MolkkyWeightEQ applies the EQ predicate on the "molkky_weight" field.
func MolkkyWeightEQ(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldMolkkyWeight, v))
}

// MolkkyWeightNEQ applies the NEQ predicate on the "molkky_weight" field.
func MolkkyWeightNEQ(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNEQ(FieldMolkkyWeight, v))
}

// MolkkyWeightIn applies the In predicate on the "molkky_weight" field.
func MolkkyWeightIn(vs ...float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldIn(FieldMolkkyWeight, vs...))
}

// MolkkyWeightNotIn applies the NotIn predicate on the "molkky_weight" field.
func MolkkyWeightNotIn(vs ...float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNotIn(FieldMolkkyWeight, vs...))
}

// MolkkyWeightGT applies the GT predicate on the "molkky_weight" field.
func MolkkyWeightGT(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGT(FieldMolkkyWeight, v))
}

// MolkkyWeightGTE applies the GTE predicate on the "molkky_weight" field.
func MolkkyWeightGTE(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGTE(FieldMolkkyWeight, v))
}

// MolkkyWeightLT applies the LT predicate on the "molkky_weight" field.
func MolkkyWeightLT(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLT(FieldMolkkyWeight, v))
}

// MolkkyWeightLTE applies the LTE predicate on the "molkky_weight" field.
func MolkkyWeightLTE(v float64) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLTE(FieldMolkkyWeight, v))
}

// MolkkyWeightIsNil applies the IsNil predicate on the "molkky_weight" field.
func MolkkyWeightIsNil() predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldIsNull(FieldMolkkyWeight))
}

// MolkkyWeightNotNil applies the NotNil predicate on the "molkky_weight" field.
func MolkkyWeightNotNil() predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNotNull(FieldMolkkyWeight))
}

// IsSuccessEQ applies the EQ predicate on the "is_success" field.
func IsSuccessEQ(v bool) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldIsSuccess, v))
}

// IsSuccessNEQ applies the NEQ predicate on the "is_success" field.
func IsSuccessNEQ(v bool) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNEQ(FieldIsSuccess, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.FieldLTE(FieldTimestamp, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.ThrowRecord {
	return predicate.ThrowRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.ThrowRecord {
	return predicate.ThrowRecord(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ThrowRecord) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ThrowRecord) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ThrowRecord) predicate.ThrowRecord {
	return predicate.ThrowRecord(sql.NotPredicates(p))
}
