package workouts

// Health Connect ExerciseSessionRecord.EXERCISE_TYPE_* values. This
// vocabulary carries fine-grained strength-set types that HealthKit lacks
// and collapses several HealthKit distinctions (one SKIING, one
// MARTIAL_ARTS), so both directions here are lossier than the HealthKit
// tables.
const (
	hcOtherWorkout          = 0
	hcBackExtension         = 1
	hcBadminton             = 2
	hcBarbellShoulderPress  = 3
	hcBaseball              = 4
	hcBasketball            = 5
	hcBenchPress            = 6
	hcBenchSitUp            = 7
	hcBiking                = 8
	hcBikingStationary      = 9
	hcBootCamp              = 10
	hcBoxing                = 11
	hcBurpee                = 12
	hcCalisthenics          = 13
	hcCricket               = 14
	hcCrunch                = 15
	hcDancing               = 16
	hcDeadlift              = 17
	hcDumbbellCurlLeftArm   = 18
	hcDumbbellCurlRightArm  = 19
	hcDumbbellFrontRaise    = 20
	hcDumbbellLateralRaise  = 21
	hcDumbbellTricepsLeft   = 22
	hcDumbbellTricepsRight  = 23
	hcDumbbellTricepsTwoArm = 24
	hcElliptical            = 25
	hcExerciseClass         = 26
	hcFencing               = 27
	hcFootballAmerican      = 28
	hcFootballAustralian    = 29
	hcForwardTwist          = 30
	hcFrisbeeDisc           = 31
	hcGolf                  = 32
	hcGuidedBreathing       = 33
	hcGymnastics            = 34
	hcHandball              = 35
	hcHIIT                  = 36
	hcHiking                = 37
	hcIceHockey             = 38
	hcIceSkating            = 39
	hcJumpingJack           = 40
	hcJumpRope              = 41
	hcLatPullDown           = 42
	hcLunge                 = 43
	hcMartialArts           = 44
	hcMeditation            = 45
	hcPaddling              = 46
	hcParagliding           = 47
	hcPilates               = 48
	hcPlank                 = 49
	hcRacquetball           = 50
	hcRockClimbing          = 51
	hcRollerHockey          = 52
	hcRowing                = 53
	hcRowingMachine         = 54
	hcRugby                 = 55
	hcRunning               = 56
	hcRunningTreadmill      = 57
	hcSailing               = 58
	hcScubaDiving           = 59
	hcSkating               = 60
	hcSkiing                = 61
	hcSnowboarding          = 62
	hcSnowshoeing           = 63
	hcSoccer                = 64
	hcSoftball              = 65
	hcSquash                = 66
	hcStairClimbing         = 68
	hcStairClimbingMachine  = 69
	hcStrengthTraining      = 70
	hcStretching            = 71
	hcSurfing               = 72
	hcSwimmingOpenWater     = 73
	hcSwimmingPool          = 74
	hcTableTennis           = 75
	hcTennis                = 76
	hcUpperTwist            = 77
	hcVolleyball            = 78
	hcWalking               = 79
	hcWaterPolo             = 80
	hcWeightlifting         = 81
	hcWheelchair            = 82
	hcYoga                  = 83
)

var toHealthConnect = map[Type]int{
	AmericanFootball:              hcFootballAmerican,
	AustralianFootball:            hcFootballAustralian,
	Badminton:                     hcBadminton,
	Baseball:                      hcBaseball,
	Basketball:                    hcBasketball,
	Bowling:                       hcOtherWorkout,
	Boxing:                        hcBoxing,
	Climbing:                      hcRockClimbing,
	Cricket:                       hcCricket,
	CrossTraining:                 hcHIIT,
	Curling:                       hcOtherWorkout,
	Cycling:                       hcBiking,
	Dance:                         hcDancing,
	Elliptical:                    hcElliptical,
	Fencing:                       hcFencing,
	FunctionalStrengthTraining:    hcStrengthTraining,
	Golf:                          hcGolf,
	Gymnastics:                    hcGymnastics,
	Handball:                      hcHandball,
	Hiking:                        hcHiking,
	Hockey:                        hcIceHockey,
	JumpRope:                      hcJumpRope,
	Kickboxing:                    hcMartialArts,
	Lacrosse:                      hcOtherWorkout,
	MartialArts:                   hcMartialArts,
	Pilates:                       hcPilates,
	Racquetball:                   hcRacquetball,
	Rowing:                        hcRowing,
	Rugby:                         hcRugby,
	Running:                       hcRunning,
	Sailing:                       hcSailing,
	SkatingSports:                 hcSkating,
	Skiing:                        hcSkiing,
	Snowboarding:                  hcSnowboarding,
	Soccer:                        hcSoccer,
	Softball:                      hcSoftball,
	Squash:                        hcSquash,
	StairClimbing:                 hcStairClimbing,
	StrengthTraining:              hcStrengthTraining,
	Surfing:                       hcSurfing,
	Swimming:                      hcSwimmingPool,
	SwimmingPool:                  hcSwimmingPool,
	SwimmingOpenWater:             hcSwimmingOpenWater,
	TableTennis:                   hcTableTennis,
	Tennis:                        hcTennis,
	TrackAndField:                 hcRunning,
	TraditionalStrengthTraining:   hcStrengthTraining,
	Volleyball:                    hcVolleyball,
	Walking:                       hcWalking,
	WaterFitness:                  hcSwimmingPool,
	WaterPolo:                     hcWaterPolo,
	WaterSports:                   hcSwimmingOpenWater,
	Weightlifting:                 hcWeightlifting,
	Wheelchair:                    hcWheelchair,
	Yoga:                          hcYoga,
	Archery:                       hcOtherWorkout,
	Barre:                         hcPilates,
	Cooldown:                      hcStretching,
	CoreTraining:                  hcStrengthTraining,
	CrossCountrySkiing:            hcSkiing,
	DiscSports:                    hcFrisbeeDisc,
	DownhillSkiing:                hcSkiing,
	EquestrianSports:              hcOtherWorkout,
	Fishing:                       hcOtherWorkout,
	FitnessGaming:                 hcOtherWorkout,
	Flexibility:                   hcStretching,
	HandCycling:                   hcWheelchair,
	HighIntensityIntervalTraining: hcHIIT,
	Hunting:                       hcOtherWorkout,
	MindAndBody:                   hcYoga,
	MixedCardio:                   hcHIIT,
	PaddleSports:                  hcPaddling,
	Pickleball:                    hcOtherWorkout,
	Play:                          hcOtherWorkout,
	PreparationAndRecovery:        hcStretching,
	SnowSports:                    hcSnowshoeing,
	StepTraining:                  hcStairClimbingMachine,
	SurfingSports:                 hcSurfing,
	TaiChi:                        hcYoga,
	Transition:                    hcOtherWorkout,
	WheelchairRunPace:             hcWheelchair,
	WheelchairWalkPace:            hcWheelchair,
	Wrestling:                     hcMartialArts,
	BackExtension:                 hcBackExtension,
	BarbellShoulderPress:          hcBarbellShoulderPress,
	BenchPress:                    hcBenchPress,
	BenchSitUp:                    hcBenchSitUp,
	BikingStationary:              hcBikingStationary,
	BootCamp:                      hcBootCamp,
	Burpee:                        hcBurpee,
	Calisthenics:                  hcCalisthenics,
	Crunch:                        hcCrunch,
	Dancing:                       hcDancing,
	Deadlift:                      hcDeadlift,
	DumbbellCurlLeftArm:           hcDumbbellCurlLeftArm,
	DumbbellCurlRightArm:          hcDumbbellCurlRightArm,
	DumbbellFrontRaise:            hcDumbbellFrontRaise,
	DumbbellLateralRaise:          hcDumbbellLateralRaise,
	DumbbellTricepsExtLeftArm:     hcDumbbellTricepsLeft,
	DumbbellTricepsExtRightArm:    hcDumbbellTricepsRight,
	DumbbellTricepsExtTwoArm:      hcDumbbellTricepsTwoArm,
	ExerciseClass:                 hcExerciseClass,
	ForwardTwist:                  hcForwardTwist,
	FrisbeeDisc:                   hcFrisbeeDisc,
	GuidedBreathing:               hcGuidedBreathing,
	IceHockey:                     hcIceHockey,
	IceSkating:                    hcIceSkating,
	JumpingJack:                   hcJumpingJack,
	LatPullDown:                   hcLatPullDown,
	Lunge:                         hcLunge,
	Meditation:                    hcMeditation,
	Paddling:                      hcPaddling,
	ParaGliding:                   hcParagliding,
	Plank:                         hcPlank,
	RockClimbing:                  hcRockClimbing,
	RollerHockey:                  hcRollerHockey,
	RowingMachine:                 hcRowingMachine,
	RunningTreadmill:              hcRunningTreadmill,
	ScubaDiving:                   hcScubaDiving,
	Skating:                       hcSkating,
	Snowshoeing:                   hcSnowshoeing,
	StairClimbingMachine:          hcStairClimbingMachine,
	Stretching:                    hcStretching,
	UpperTwist:                    hcUpperTwist,
	Other:                         hcOtherWorkout,
}

// Canonical portable value per Health Connect code. Where many portable
// values share one code the historical choice wins: MARTIAL_ARTS reads back
// as wrestling, SKIING as downhillSkiing, WHEELCHAIR as wheelchairWalkPace,
// HIIT as crossTraining, both swimming codes as swimming.
var fromHealthConnect = map[int]Type{
	hcOtherWorkout:          Other,
	hcBackExtension:         BackExtension,
	hcBadminton:             Badminton,
	hcBarbellShoulderPress:  BarbellShoulderPress,
	hcBaseball:              Baseball,
	hcBasketball:            Basketball,
	hcBenchPress:            BenchPress,
	hcBenchSitUp:            BenchSitUp,
	hcBiking:                Cycling,
	hcBikingStationary:      Cycling,
	hcBootCamp:              BootCamp,
	hcBoxing:                Boxing,
	hcBurpee:                Burpee,
	hcCalisthenics:          Calisthenics,
	hcCricket:               Cricket,
	hcCrunch:                Crunch,
	hcDancing:               Dance,
	hcDeadlift:              Deadlift,
	hcDumbbellCurlLeftArm:   DumbbellCurlLeftArm,
	hcDumbbellCurlRightArm:  DumbbellCurlRightArm,
	hcDumbbellFrontRaise:    DumbbellFrontRaise,
	hcDumbbellLateralRaise:  DumbbellLateralRaise,
	hcDumbbellTricepsLeft:   DumbbellTricepsExtLeftArm,
	hcDumbbellTricepsRight:  DumbbellTricepsExtRightArm,
	hcDumbbellTricepsTwoArm: DumbbellTricepsExtTwoArm,
	hcElliptical:            Elliptical,
	hcExerciseClass:         ExerciseClass,
	hcFencing:               Fencing,
	hcFootballAmerican:      AmericanFootball,
	hcFootballAustralian:    AustralianFootball,
	hcForwardTwist:          ForwardTwist,
	hcFrisbeeDisc:           DiscSports,
	hcGolf:                  Golf,
	hcGuidedBreathing:       GuidedBreathing,
	hcGymnastics:            Gymnastics,
	hcHandball:              Handball,
	hcHIIT:                  CrossTraining,
	hcHiking:                Hiking,
	hcIceHockey:             Hockey,
	hcIceSkating:            IceSkating,
	hcJumpingJack:           JumpingJack,
	hcJumpRope:              JumpRope,
	hcLatPullDown:           LatPullDown,
	hcLunge:                 Lunge,
	hcMartialArts:           Wrestling,
	hcMeditation:            Meditation,
	hcPaddling:              PaddleSports,
	hcParagliding:           ParaGliding,
	hcPilates:               Pilates,
	hcPlank:                 Plank,
	hcRacquetball:           Racquetball,
	hcRockClimbing:          Climbing,
	hcRollerHockey:          RollerHockey,
	hcRowing:                Rowing,
	hcRowingMachine:         Rowing,
	hcRugby:                 Rugby,
	hcRunning:               Running,
	hcRunningTreadmill:      RunningTreadmill,
	hcSailing:               Sailing,
	hcScubaDiving:           ScubaDiving,
	hcSkating:               SkatingSports,
	hcSkiing:                DownhillSkiing,
	hcSnowboarding:          Snowboarding,
	hcSnowshoeing:           SnowSports,
	hcSoccer:                Soccer,
	hcSoftball:              Softball,
	hcSquash:                Squash,
	hcStairClimbing:         StairClimbing,
	hcStairClimbingMachine:  StepTraining,
	hcStrengthTraining:      StrengthTraining,
	hcStretching:            Flexibility,
	hcSurfing:               SurfingSports,
	hcSwimmingOpenWater:     Swimming,
	hcSwimmingPool:          Swimming,
	hcTableTennis:           TableTennis,
	hcTennis:                Tennis,
	hcUpperTwist:            UpperTwist,
	hcVolleyball:            Volleyball,
	hcWalking:               Walking,
	hcWaterPolo:             WaterPolo,
	hcWeightlifting:         Weightlifting,
	hcWheelchair:            WheelchairWalkPace,
	hcYoga:                  Yoga,
}
