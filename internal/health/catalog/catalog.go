// Package catalog is the static table mapping portable data-type identifiers
// to native record vocabulary and units. The table is total and fixed:
// unknown identifiers are rejected, never coerced.
package catalog

import (
	"fmt"

	"github.com/vitae-lab/healthbridge/internal/native"
)

// DataType is the portable identifier for one physiological or activity
// metric.
type DataType string

const (
	Steps                DataType = "steps"
	Distance             DataType = "distance"
	Calories             DataType = "calories"
	HeartRate            DataType = "heartRate"
	Weight               DataType = "weight"
	Sleep                DataType = "sleep"
	RespiratoryRate      DataType = "respiratoryRate"
	OxygenSaturation     DataType = "oxygenSaturation"
	RestingHeartRate     DataType = "restingHeartRate"
	HeartRateVariability DataType = "heartRateVariability"
	BloodPressure        DataType = "bloodPressure"
	BloodGlucose         DataType = "bloodGlucose"
	BodyTemperature      DataType = "bodyTemperature"
	Height               DataType = "height"
	FlightsClimbed       DataType = "flightsClimbed"
	DistanceCycling      DataType = "distanceCycling"
	BodyFat              DataType = "bodyFat"
	BasalBodyTemperature DataType = "basalBodyTemperature"
	BasalCalories        DataType = "basalCalories"
	TotalCalories        DataType = "totalCalories"
	Mindfulness          DataType = "mindfulness"
)

// RecordKind is the native representation shape of a data type.
type RecordKind int

const (
	// KindQuantity is a simple scalar record with one value.
	KindQuantity RecordKind = iota
	// KindSeries is a record embedding many timestamped measurements.
	KindSeries
	// KindSession is a category/session record, possibly with sub-stages.
	KindSession
	// KindCorrelation is a two-field record (systolic/diastolic).
	KindCorrelation
)

func (k RecordKind) String() string {
	switch k {
	case KindQuantity:
		return "quantity"
	case KindSeries:
		return "series"
	case KindSession:
		return "session"
	case KindCorrelation:
		return "correlation"
	}
	return "unknown"
}

// Descriptor is the catalog row for one data type.
type Descriptor struct {
	ID   DataType
	Kind RecordKind

	// Unit is the portable unit string attached to every sample of this
	// type. Stored values are always in this unit.
	Unit string

	// Instant marks point-in-time records whose start and end coincide.
	Instant bool

	// Aggregable is false for types that must go through range reads:
	// session, correlation, and point-in-time vitals with no cumulative
	// meaning.
	Aggregable bool

	// PreferAverage marks rate-like types where the generic average
	// request, and the fallback for an unrecognized aggregation kind,
	// resolve to avg instead of sum.
	PreferAverage bool

	hkType       string // empty when HealthKit has no equivalent
	hcRecord     string
	hcPermission string // suffix of android.permission.health.READ_/WRITE_
}

var table = map[DataType]Descriptor{
	Steps:                {ID: Steps, Kind: KindQuantity, Unit: "count", Aggregable: true, hkType: "HKQuantityTypeIdentifierStepCount", hcRecord: "StepsRecord", hcPermission: "STEPS"},
	Distance:             {ID: Distance, Kind: KindQuantity, Unit: "meter", Aggregable: true, hkType: "HKQuantityTypeIdentifierDistanceWalkingRunning", hcRecord: "DistanceRecord", hcPermission: "DISTANCE"},
	Calories:             {ID: Calories, Kind: KindQuantity, Unit: "kilocalorie", Aggregable: true, hkType: "HKQuantityTypeIdentifierActiveEnergyBurned", hcRecord: "ActiveCaloriesBurnedRecord", hcPermission: "ACTIVE_CALORIES_BURNED"},
	HeartRate:            {ID: HeartRate, Kind: KindSeries, Unit: "bpm", Aggregable: true, PreferAverage: true, hkType: "HKQuantityTypeIdentifierHeartRate", hcRecord: "HeartRateRecord", hcPermission: "HEART_RATE"},
	Weight:               {ID: Weight, Kind: KindQuantity, Unit: "kilogram", Instant: true, Aggregable: true, PreferAverage: true, hkType: "HKQuantityTypeIdentifierBodyMass", hcRecord: "WeightRecord", hcPermission: "WEIGHT"},
	Sleep:                {ID: Sleep, Kind: KindSession, Unit: "minute", hkType: "HKCategoryTypeIdentifierSleepAnalysis", hcRecord: "SleepSessionRecord", hcPermission: "SLEEP"},
	RespiratoryRate:      {ID: RespiratoryRate, Kind: KindQuantity, Unit: "bpm", Instant: true, hkType: "HKQuantityTypeIdentifierRespiratoryRate", hcRecord: "RespiratoryRateRecord", hcPermission: "RESPIRATORY_RATE"},
	OxygenSaturation:     {ID: OxygenSaturation, Kind: KindQuantity, Unit: "percent", Instant: true, hkType: "HKQuantityTypeIdentifierOxygenSaturation", hcRecord: "OxygenSaturationRecord", hcPermission: "OXYGEN_SATURATION"},
	RestingHeartRate:     {ID: RestingHeartRate, Kind: KindQuantity, Unit: "bpm", Instant: true, Aggregable: true, PreferAverage: true, hkType: "HKQuantityTypeIdentifierRestingHeartRate", hcRecord: "RestingHeartRateRecord", hcPermission: "RESTING_HEART_RATE"},
	HeartRateVariability: {ID: HeartRateVariability, Kind: KindQuantity, Unit: "millisecond", Instant: true, hkType: "HKQuantityTypeIdentifierHeartRateVariabilitySDNN", hcRecord: "HeartRateVariabilityRmssdRecord", hcPermission: "HEART_RATE_VARIABILITY"},
	BloodPressure:        {ID: BloodPressure, Kind: KindCorrelation, Unit: "mmHg", Instant: true, hkType: "HKCorrelationTypeIdentifierBloodPressure", hcRecord: "BloodPressureRecord", hcPermission: "BLOOD_PRESSURE"},
	BloodGlucose:         {ID: BloodGlucose, Kind: KindQuantity, Unit: "mg/dL", Instant: true, Aggregable: true, PreferAverage: true, hkType: "HKQuantityTypeIdentifierBloodGlucose", hcRecord: "BloodGlucoseRecord", hcPermission: "BLOOD_GLUCOSE"},
	BodyTemperature:      {ID: BodyTemperature, Kind: KindQuantity, Unit: "celsius", Instant: true, Aggregable: true, PreferAverage: true, hkType: "HKQuantityTypeIdentifierBodyTemperature", hcRecord: "BodyTemperatureRecord", hcPermission: "BODY_TEMPERATURE"},
	Height:               {ID: Height, Kind: KindQuantity, Unit: "centimeter", Instant: true, Aggregable: true, PreferAverage: true, hkType: "HKQuantityTypeIdentifierHeight", hcRecord: "HeightRecord", hcPermission: "HEIGHT"},
	FlightsClimbed:       {ID: FlightsClimbed, Kind: KindQuantity, Unit: "count", Aggregable: true, hkType: "HKQuantityTypeIdentifierFlightsClimbed", hcRecord: "FloorsClimbedRecord", hcPermission: "FLOORS_CLIMBED"},
	DistanceCycling:      {ID: DistanceCycling, Kind: KindQuantity, Unit: "meter", Aggregable: true, hkType: "HKQuantityTypeIdentifierDistanceCycling", hcRecord: "DistanceRecord", hcPermission: "DISTANCE"},
	BodyFat:              {ID: BodyFat, Kind: KindQuantity, Unit: "percent", Instant: true, Aggregable: true, PreferAverage: true, hkType: "HKQuantityTypeIdentifierBodyFatPercentage", hcRecord: "BodyFatRecord", hcPermission: "BODY_FAT"},
	BasalBodyTemperature: {ID: BasalBodyTemperature, Kind: KindQuantity, Unit: "celsius", Instant: true, Aggregable: true, PreferAverage: true, hkType: "HKQuantityTypeIdentifierBasalBodyTemperature", hcRecord: "BasalBodyTemperatureRecord", hcPermission: "BASAL_BODY_TEMPERATURE"},
	BasalCalories:        {ID: BasalCalories, Kind: KindQuantity, Unit: "kilocalorie", Instant: true, Aggregable: true, PreferAverage: true, hkType: "HKQuantityTypeIdentifierBasalEnergyBurned", hcRecord: "BasalMetabolicRateRecord", hcPermission: "BASAL_METABOLIC_RATE"},
	TotalCalories:        {ID: TotalCalories, Kind: KindQuantity, Unit: "kilocalorie", Aggregable: true, hkType: "", hcRecord: "TotalCaloriesBurnedRecord", hcPermission: "TOTAL_CALORIES_BURNED"},
	Mindfulness:          {ID: Mindfulness, Kind: KindSession, Unit: "minute", hkType: "HKCategoryTypeIdentifierMindfulSession", hcRecord: "MindfulnessSessionRecord", hcPermission: "MINDFULNESS"},
}

// All returns every known data type. The order is unspecified.
func All() []DataType {
	out := make([]DataType, 0, len(table))
	for id := range table {
		out = append(out, id)
	}
	return out
}

// Resolve looks up the descriptor for a portable identifier.
func Resolve(id string) (Descriptor, error) {
	d, ok := table[DataType(id)]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownDataType, id)
	}
	return d, nil
}

// NativeType returns the store-side record identifier for this type on the
// given platform. An empty result means the platform has no equivalent
// record and the type is unavailable there.
func (d Descriptor) NativeType(p native.Platform) string {
	if p == native.PlatformHealthKit {
		return d.hkType
	}
	return d.hcRecord
}

// ReadPermission returns the native permission identifier guarding reads of
// this type on the given platform.
func (d Descriptor) ReadPermission(p native.Platform) string {
	if p == native.PlatformHealthKit {
		return "read:" + d.hkType
	}
	return "android.permission.health.READ_" + d.hcPermission
}

// WritePermission returns the native permission identifier guarding writes.
func (d Descriptor) WritePermission(p native.Platform) string {
	if p == native.PlatformHealthKit {
		return "write:" + d.hkType
	}
	return "android.permission.health.WRITE_" + d.hcPermission
}

// WorkoutType returns the native record identifier for workout sessions on
// the given platform.
func WorkoutType(p native.Platform) string {
	if p == native.PlatformHealthKit {
		return "HKWorkoutTypeIdentifier"
	}
	return "ExerciseSessionRecord"
}

// WorkoutReadPermission returns the permission guarding workout-session
// reads, used for the synthetic "workouts" pseudo-type.
func WorkoutReadPermission(p native.Platform) string {
	if p == native.PlatformHealthKit {
		return "read:HKWorkoutTypeIdentifier"
	}
	return "android.permission.health.READ_EXERCISE"
}

// Units is the closed set of portable unit strings accepted as write
// overrides.
var Units = map[string]struct{}{
	"count":       {},
	"meter":       {},
	"kilocalorie": {},
	"bpm":         {},
	"kilogram":    {},
	"minute":      {},
	"percent":     {},
	"millisecond": {},
	"mmHg":        {},
	"mg/dL":       {},
	"celsius":     {},
	"centimeter":  {},
}

// ResolveUnit resolves an optional caller-supplied unit override against the
// portable unit set. An absent or unrecognized override silently falls back
// to the descriptor's default unit; overrides never fail.
func ResolveUnit(d Descriptor, override string) string {
	if override == "" {
		return d.Unit
	}
	if _, ok := Units[override]; ok {
		return override
	}
	return d.Unit
}
