// Code generated by ent, DO NOT EDIT.

package throwdraft

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/molkkylog/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldUserID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldSessionID, v))
}

// Distance applies equality check predicate on the "distance" field. It's identical to DistanceEQ.
func Distance(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldDistance, v))
}

// Weather applies equality check predicate on the "weather" field. It's identical to WeatherEQ.
func Weather(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldWeather, v))
}

// Humidity applies equality check predicate on the "humidity" field. It's identical to HumidityEQ.
func Humidity(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldHumidity, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldTemperature, v))
}

// Soil applies equality check predicate on the "soil" field. It's identical to SoilEQ.
func Soil(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldSoil, v))
}

// MolkkyWeight applies equality check predicate on the "molkky_weight" field. It's identical to MolkkyWeightEQ.
func MolkkyWeight(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldMolkkyWeight, v))
}

// IsSuccess applies equality check predicate on the "is_success" field. It's identical to IsSuccessEQ.
func IsSuccess(v bool) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldIsSuccess, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotIn(FieldUserID, vs...))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldContainsFold(FieldSessionID, v))
}

// DistanceEQ applies the EQ predicate on the "distance" field.
func DistanceEQ(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldDistance, v))
}

// DistanceNEQ applies the NEQ predicate on the "distance" field.
func DistanceNEQ(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNEQ(FieldDistance, v))
}

// DistanceIn applies the In predicate on the "distance" field.
func DistanceIn(vs ...float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIn(FieldDistance, vs...))
}

// DistanceNotIn applies the NotIn predicate on the "distance" field.
func DistanceNotIn(vs ...float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotIn(FieldDistance, vs...))
}

// DistanceGT applies the GT predicate on the "distance" field.
func DistanceGT(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGT(FieldDistance, v))
}

// DistanceGTE applies the GTE predicate on the "distance" field.
func DistanceGTE(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGTE(FieldDistance, v))
}

// DistanceLT applies the LT predicate on the "distance" field.
func DistanceLT(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLT(FieldDistance, v))
}

// DistanceLTE applies the LTE predicate on the "distance" field.
func DistanceLTE(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLTE(FieldDistance, v))
}

// AngleEQ applies the EQ predicate on the "angle" field.
func AngleEQ(v Angle) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldAngle, v))
}

// AngleNEQ applies the NEQ predicate on the "angle" field.
func AngleNEQ(v Angle) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNEQ(FieldAngle, v))
}

// AngleIn applies the In predicate on the "angle" field.
func AngleIn(vs ...Angle) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIn(FieldAngle, vs...))
}

// AngleNotIn applies the NotIn predicate on the "angle" field.
func AngleNotIn(vs ...Angle) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotIn(FieldAngle, vs...))
}

// WeatherEQ applies the EQ predicate on the "weather" field.
func WeatherEQ(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldWeather, v))
}

// WeatherNEQ applies the NEQ predicate on the "weather" field.
func WeatherNEQ(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNEQ(FieldWeather, v))
}

// WeatherIn applies the In predicate on the "weather" field.
func WeatherIn(vs ...string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIn(FieldWeather, vs...))
}

// WeatherNotIn applies the NotIn predicate on the "weather" field.
func WeatherNotIn(vs ...string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotIn(FieldWeather, vs...))
}

// WeatherGT applies the GT predicate on the "weather" field.
func WeatherGT(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGT(FieldWeather, v))
}

// WeatherGTE applies the GTE predicate on the "weather" field.
func WeatherGTE(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGTE(FieldWeather, v))
}

// WeatherLT applies the LT predicate on the "weather" field.
func WeatherLT(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLT(FieldWeather, v))
}

// WeatherLTE applies the LTE predicate on the "weather" field.
func WeatherLTE(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLTE(FieldWeather, v))
}

// WeatherContains applies the Contains predicate on the "weather" field.
func WeatherContains(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldContains(FieldWeather, v))
}

// WeatherHasPrefix applies the HasPrefix predicate on the "weather" field.
func WeatherHasPrefix(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldHasPrefix(FieldWeather, v))
}

// WeatherHasSuffix applies the HasSuffix predicate on the "weather" field.
func WeatherHasSuffix(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldHasSuffix(FieldWeather, v))
}

// WeatherIsNil applies the IsNil predicate on the "weather" field.
func WeatherIsNil() predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIsNull(FieldWeather))
}

// WeatherNotNil applies the NotNil predicate on the "weather" field.
func WeatherNotNil() predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotNull(FieldWeather))
}

// WeatherEqualFold applies the EqualFold predicate on the "weather" field.
func WeatherEqualFold(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEqualFold(FieldWeather, v))
}

// WeatherContainsFold applies the ContainsFold predicate on the "weather" field.
func WeatherContainsFold(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldContainsFold(FieldWeather, v))
}

// HumidityEQ applies the EQ predicate on the "humidity" field.
func HumidityEQ(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldHumidity, v))
}

// HumidityNEQ applies the NEQ predicate on the "humidity" field.
func HumidityNEQ(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNEQ(FieldHumidity, v))
}

// HumidityIn applies the In predicate on the "humidity" field.
func HumidityIn(vs ...float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIn(FieldHumidity, vs...))
}

// HumidityNotIn applies the NotIn predicate on the "humidity" field.
func HumidityNotIn(vs ...float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotIn(FieldHumidity, vs...))
}

// HumidityGT applies the GT predicate on the "humidity" field.
func HumidityGT(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGT(FieldHumidity, v))
}

// HumidityGTE applies the GTE predicate on the "humidity" field.
func HumidityGTE(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGTE(FieldHumidity, v))
}

// HumidityLT applies the LT predicate on the "humidity" field.
func HumidityLT(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLT(FieldHumidity, v))
}

// HumidityLTE applies the LTE predicate on the "humidity" field.
func HumidityLTE(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLTE(FieldHumidity, v))
}

// HumidityIsNil applies the IsNil predicate on the "humidity" field.
func HumidityIsNil() predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIsNull(FieldHumidity))
}

// HumidityNotNil applies the NotNil predicate on the "humidity" field.
func HumidityNotNil() predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotNull(FieldHumidity))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLTE(FieldTemperature, v))
}

// TemperatureIsNil applies the IsNil predicate on the "temperature" field.
func TemperatureIsNil() predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIsNull(FieldTemperature))
}

// TemperatureNotNil applies the NotNil predicate on the "temperature" field.
func TemperatureNotNil() predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotNull(FieldTemperature))
}

// SoilEQ applies the EQ predicate on the "soil" field.
func SoilEQ(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldSoil, v))
}

// SoilNEQ applies the NEQ predicate on the "soil" field.
func SoilNEQ(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNEQ(FieldSoil, v))
}

// SoilIn applies the In predicate on the "soil" field.
func SoilIn(vs ...string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIn(FieldSoil, vs...))
}

// SoilNotIn applies the NotIn predicate on the "soil" field.
func SoilNotIn(vs ...string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotIn(FieldSoil, vs...))
}

// SoilGT applies the GT predicate on the "soil" field.
func SoilGT(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGT(FieldSoil, v))
}

// SoilGTE applies the GTE predicate on the "soil" field.
func SoilGTE(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGTE(FieldSoil, v))
}

// SoilLT applies the LT predicate on the "soil" field.
func SoilLT(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLT(FieldSoil, v))
}

// SoilLTE applies the LTE predicate on the "soil" field.
func SoilLTE(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLTE(FieldSoil, v))
}

// SoilContains applies the Contains predicate on the "soil" field.
func SoilContains(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldContains(FieldSoil, v))
}

// SoilHasPrefix applies the HasPrefix predicate on the "soil" field.
func SoilHasPrefix(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldHasPrefix(FieldSoil, v))
}

// SoilHasSuffix applies the HasSuffix predicate on the "soil" field.
func SoilHasSuffix(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldHasSuffix(FieldSoil, v))
}

// SoilIsNil applies the IsNil predicate on the "soil" field.
func SoilIsNil() predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIsNull(FieldSoil))
}

// SoilNotNil applies the NotNil predicate on the "soil" field.
func SoilNotNil() predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotNull(FieldSoil))
}

// SoilEqualFold applies the EqualFold predicate on the "soil" field.
func SoilEqualFold(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEqualFold(FieldSoil, v))
}

// SoilContainsFold applies the ContainsFold predicate on the "soil" field.
func SoilContainsFold(v string) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldContainsFold(FieldSoil, v))
}

// MolkkyWeightEQ applies the EQ predicate on the "molkky_weight" field.
func MolkkyWeightEQ(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldMolkkyWeight, v))
}

// MolkkyWeightNEQ applies the NEQ predicate on the "molkky_weight" field.
func MolkkyWeightNEQ(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNEQ(FieldMolkkyWeight, v))
}

// MolkkyWeightIn applies the In predicate on the "molkky_weight" field.
func MolkkyWeightIn(vs ...float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIn(FieldMolkkyWeight, vs...))
}

// MolkkyWeightNotIn applies the NotIn predicate on the "molkky_weight" field.
func MolkkyWeightNotIn(vs ...float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotIn(FieldMolkkyWeight, vs...))
}

// MolkkyWeightGT applies the GT predicate on the "molkky_weight" field.
func MolkkyWeightGT(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGT(FieldMolkkyWeight, v))
}

// MolkkyWeightGTE applies the GTE predicate on the "molkky_weight" field.
func MolkkyWeightGTE(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGTE(FieldMolkkyWeight, v))
}

// MolkkyWeightLT applies the LT predicate on the "molkky_weight" field.
func MolkkyWeightLT(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLT(FieldMolkkyWeight, v))
}

// MolkkyWeightLTE applies the LTE predicate on the "molkky_weight" field.
func MolkkyWeightLTE(v float64) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLTE(FieldMolkkyWeight, v))
}

// MolkkyWeightIsNil applies the IsNil predicate on the "molkky_weight" field.
func MolkkyWeightIsNil() predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIsNull(FieldMolkkyWeight))
}

// MolkkyWeightNotNil applies the NotNil predicate on the "molkky_weight" field.
func MolkkyWeightNotNil() predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotNull(FieldMolkkyWeight))
}

// IsSuccessEQ applies the EQ predicate on the "is_success" field.
func IsSuccessEQ(v bool) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldIsSuccess, v))
}

// IsSuccessNEQ applies the NEQ predicate on the "is_success" field.
func IsSuccessNEQ(v bool) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNEQ(FieldIsSuccess, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.FieldLTE(FieldTimestamp, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.ThrowDraft {
	return predicate.ThrowDraft(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.ThrowDraft {
	return predicate.ThrowDraft(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ThrowDraft) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ThrowDraft) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ThrowDraft) predicate.ThrowDraft {
	return predicate.ThrowDraft(sql.NotPredicates(p))
}
