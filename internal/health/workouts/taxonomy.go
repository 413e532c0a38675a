// Package workouts maps the portable workout-type enumeration onto each
// platform's native activity vocabulary. Both directions are total: every
// portable value maps to some native code (falling back to the shared
// other/unspecified bucket), and every native code reads back as exactly one
// canonical portable value. The reverse mapping is necessarily lossy where
// several portable values share one native bucket; the canonical choice per
// native code is fixed in the tables below, never inferred at runtime.
package workouts

import "github.com/vitae-lab/healthbridge/internal/native"

// Type is one portable workout/activity kind.
type Type string

const (
	AmericanFootball              Type = "americanFootball"
	AustralianFootball            Type = "australianFootball"
	Badminton                     Type = "badminton"
	Baseball                      Type = "baseball"
	Basketball                    Type = "basketball"
	Bowling                       Type = "bowling"
	Boxing                        Type = "boxing"
	Climbing                      Type = "climbing"
	Cricket                       Type = "cricket"
	CrossTraining                 Type = "crossTraining"
	Curling                       Type = "curling"
	Cycling                       Type = "cycling"
	Dance                         Type = "dance"
	Elliptical                    Type = "elliptical"
	Fencing                       Type = "fencing"
	FunctionalStrengthTraining    Type = "functionalStrengthTraining"
	Golf                          Type = "golf"
	Gymnastics                    Type = "gymnastics"
	Handball                      Type = "handball"
	Hiking                        Type = "hiking"
	Hockey                        Type = "hockey"
	JumpRope                      Type = "jumpRope"
	Kickboxing                    Type = "kickboxing"
	Lacrosse                      Type = "lacrosse"
	MartialArts                   Type = "martialArts"
	Pilates                       Type = "pilates"
	Racquetball                   Type = "racquetball"
	Rowing                        Type = "rowing"
	Rugby                         Type = "rugby"
	Running                       Type = "running"
	Sailing                       Type = "sailing"
	SkatingSports                 Type = "skatingSports"
	Skiing                        Type = "skiing"
	Snowboarding                  Type = "snowboarding"
	Soccer                        Type = "soccer"
	Softball                      Type = "softball"
	Squash                        Type = "squash"
	StairClimbing                 Type = "stairClimbing"
	StrengthTraining              Type = "strengthTraining"
	Surfing                       Type = "surfing"
	Swimming                      Type = "swimming"
	SwimmingPool                  Type = "swimmingPool"
	SwimmingOpenWater             Type = "swimmingOpenWater"
	TableTennis                   Type = "tableTennis"
	Tennis                        Type = "tennis"
	TrackAndField                 Type = "trackAndField"
	TraditionalStrengthTraining   Type = "traditionalStrengthTraining"
	Volleyball                    Type = "volleyball"
	Walking                       Type = "walking"
	WaterFitness                  Type = "waterFitness"
	WaterPolo                     Type = "waterPolo"
	WaterSports                   Type = "waterSports"
	Weightlifting                 Type = "weightlifting"
	Wheelchair                    Type = "wheelchair"
	Yoga                          Type = "yoga"
	Archery                       Type = "archery"
	Barre                         Type = "barre"
	Cooldown                      Type = "cooldown"
	CoreTraining                  Type = "coreTraining"
	CrossCountrySkiing            Type = "crossCountrySkiing"
	DiscSports                    Type = "discSports"
	DownhillSkiing                Type = "downhillSkiing"
	EquestrianSports              Type = "equestrianSports"
	Fishing                       Type = "fishing"
	FitnessGaming                 Type = "fitnessGaming"
	Flexibility                   Type = "flexibility"
	HandCycling                   Type = "handCycling"
	HighIntensityIntervalTraining Type = "highIntensityIntervalTraining"
	Hunting                       Type = "hunting"
	MindAndBody                   Type = "mindAndBody"
	MixedCardio                   Type = "mixedCardio"
	PaddleSports                  Type = "paddleSports"
	Pickleball                    Type = "pickleball"
	Play                          Type = "play"
	PreparationAndRecovery        Type = "preparationAndRecovery"
	SnowSports                    Type = "snowSports"
	StepTraining                  Type = "stepTraining"
	SurfingSports                 Type = "surfingSports"
	TaiChi                        Type = "taiChi"
	Transition                    Type = "transition"
	WheelchairRunPace             Type = "wheelchairRunPace"
	WheelchairWalkPace            Type = "wheelchairWalkPace"
	Wrestling                     Type = "wrestling"
	BackExtension                 Type = "backExtension"
	BarbellShoulderPress          Type = "barbellShoulderPress"
	BenchPress                    Type = "benchPress"
	BenchSitUp                    Type = "benchSitUp"
	BikingStationary              Type = "bikingStationary"
	BootCamp                      Type = "bootCamp"
	Burpee                        Type = "burpee"
	Calisthenics                  Type = "calisthenics"
	Crunch                        Type = "crunch"
	Dancing                       Type = "dancing"
	Deadlift                      Type = "deadlift"
	DumbbellCurlLeftArm           Type = "dumbbellCurlLeftArm"
	DumbbellCurlRightArm          Type = "dumbbellCurlRightArm"
	DumbbellFrontRaise            Type = "dumbbellFrontRaise"
	DumbbellLateralRaise          Type = "dumbbellLateralRaise"
	DumbbellTricepsExtLeftArm     Type = "dumbbellTricepsExtensionLeftArm"
	DumbbellTricepsExtRightArm    Type = "dumbbellTricepsExtensionRightArm"
	DumbbellTricepsExtTwoArm      Type = "dumbbellTricepsExtensionTwoArm"
	ExerciseClass                 Type = "exerciseClass"
	ForwardTwist                  Type = "forwardTwist"
	FrisbeeDisc                   Type = "frisbeedisc"
	GuidedBreathing               Type = "guidedBreathing"
	IceHockey                     Type = "iceHockey"
	IceSkating                    Type = "iceSkating"
	JumpingJack                   Type = "jumpingJack"
	LatPullDown                   Type = "latPullDown"
	Lunge                         Type = "lunge"
	Meditation                    Type = "meditation"
	Paddling                      Type = "paddling"
	ParaGliding                   Type = "paraGliding"
	Plank                         Type = "plank"
	RockClimbing                  Type = "rockClimbing"
	RollerHockey                  Type = "rollerHockey"
	RowingMachine                 Type = "rowingMachine"
	RunningTreadmill              Type = "runningTreadmill"
	ScubaDiving                   Type = "scubaDiving"
	Skating                       Type = "skating"
	Snowshoeing                   Type = "snowshoeing"
	StairClimbingMachine          Type = "stairClimbingMachine"
	Stretching                    Type = "stretching"
	UpperTwist                    Type = "upperTwist"
	Other                         Type = "other"
)

// All lists every portable workout type, in declaration order.
var All = []Type{
	AmericanFootball, AustralianFootball, Badminton, Baseball, Basketball,
	Bowling, Boxing, Climbing, Cricket, CrossTraining, Curling, Cycling,
	Dance, Elliptical, Fencing, FunctionalStrengthTraining, Golf, Gymnastics,
	Handball, Hiking, Hockey, JumpRope, Kickboxing, Lacrosse, MartialArts,
	Pilates, Racquetball, Rowing, Rugby, Running, Sailing, SkatingSports,
	Skiing, Snowboarding, Soccer, Softball, Squash, StairClimbing,
	StrengthTraining, Surfing, Swimming, SwimmingPool, SwimmingOpenWater,
	TableTennis, Tennis, TrackAndField, TraditionalStrengthTraining,
	Volleyball, Walking, WaterFitness, WaterPolo, WaterSports, Weightlifting,
	Wheelchair, Yoga, Archery, Barre, Cooldown, CoreTraining,
	CrossCountrySkiing, DiscSports, DownhillSkiing, EquestrianSports,
	Fishing, FitnessGaming, Flexibility, HandCycling,
	HighIntensityIntervalTraining, Hunting, MindAndBody, MixedCardio,
	PaddleSports, Pickleball, Play, PreparationAndRecovery, SnowSports,
	StepTraining, SurfingSports, TaiChi, Transition, WheelchairRunPace,
	WheelchairWalkPace, Wrestling, BackExtension, BarbellShoulderPress,
	BenchPress, BenchSitUp, BikingStationary, BootCamp, Burpee, Calisthenics,
	Crunch, Dancing, Deadlift, DumbbellCurlLeftArm, DumbbellCurlRightArm,
	DumbbellFrontRaise, DumbbellLateralRaise, DumbbellTricepsExtLeftArm,
	DumbbellTricepsExtRightArm, DumbbellTricepsExtTwoArm, ExerciseClass,
	ForwardTwist, FrisbeeDisc, GuidedBreathing, IceHockey, IceSkating,
	JumpingJack, LatPullDown, Lunge, Meditation, Paddling, ParaGliding,
	Plank, RockClimbing, RollerHockey, RowingMachine, RunningTreadmill,
	ScubaDiving, Skating, Snowshoeing, StairClimbingMachine, Stretching,
	UpperTwist, Other,
}

// Parse returns the portable workout type for an identifier string, or
// false when the identifier is not part of the enumeration.
func Parse(s string) (Type, bool) {
	for _, t := range All {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// ToNative maps a portable workout type to the native activity code of the
// given platform. The mapping is total; portable values without a direct
// native equivalent target the shared other/unspecified bucket.
func ToNative(t Type, p native.Platform) int {
	var code int
	var ok bool
	if p == native.PlatformHealthKit {
		code, ok = toHealthKit[t]
		if !ok {
			return hkOther
		}
		return code
	}
	code, ok = toHealthConnect[t]
	if !ok {
		return hcOtherWorkout
	}
	return code
}

// FromNative maps a native activity code back to its canonical portable
// value. Codes without an explicit entry read back as Other.
func FromNative(p native.Platform, code int) Type {
	var t Type
	var ok bool
	if p == native.PlatformHealthKit {
		t, ok = fromHealthKit[code]
	} else {
		t, ok = fromHealthConnect[code]
	}
	if !ok {
		return Other
	}
	return t
}
