package workouts

// HKWorkoutActivityType raw values. The portable enum descends from this
// vocabulary, so most entries here are one-to-one; the Android-flavored
// strength-set values collapse into the HealthKit strength/core buckets.
const (
	hkAmericanFootball              = 1
	hkArchery                       = 2
	hkAustralianFootball            = 3
	hkBadminton                     = 4
	hkBaseball                      = 5
	hkBasketball                    = 6
	hkBowling                       = 7
	hkBoxing                        = 8
	hkClimbing                      = 9
	hkCricket                       = 10
	hkCrossTraining                 = 11
	hkCurling                       = 12
	hkCycling                       = 13
	hkDance                         = 14
	hkElliptical                    = 16
	hkEquestrianSports              = 17
	hkFencing                       = 18
	hkFishing                       = 19
	hkFunctionalStrengthTraining    = 20
	hkGolf                          = 21
	hkGymnastics                    = 22
	hkHandball                      = 23
	hkHiking                        = 24
	hkHockey                        = 25
	hkHunting                       = 26
	hkLacrosse                      = 27
	hkMartialArts                   = 28
	hkMindAndBody                   = 29
	hkPaddleSports                  = 31
	hkPlay                          = 32
	hkPreparationAndRecovery        = 33
	hkRacquetball                   = 34
	hkRowing                        = 35
	hkRugby                         = 36
	hkRunning                       = 37
	hkSailing                       = 38
	hkSkatingSports                 = 39
	hkSnowSports                    = 40
	hkSoccer                        = 41
	hkSoftball                      = 42
	hkSquash                        = 43
	hkStairClimbing                 = 44
	hkSurfingSports                 = 45
	hkSwimming                      = 46
	hkTableTennis                   = 47
	hkTennis                        = 48
	hkTrackAndField                 = 49
	hkTraditionalStrengthTraining   = 50
	hkVolleyball                    = 51
	hkWalking                       = 52
	hkWaterFitness                  = 53
	hkWaterPolo                     = 54
	hkWaterSports                   = 55
	hkWrestling                     = 56
	hkYoga                          = 57
	hkBarre                         = 58
	hkCoreTraining                  = 59
	hkCrossCountrySkiing            = 60
	hkDownhillSkiing                = 61
	hkFlexibility                   = 62
	hkHighIntensityIntervalTraining = 63
	hkJumpRope                      = 64
	hkKickboxing                    = 65
	hkPilates                       = 66
	hkSnowboarding                  = 67
	hkStairs                        = 68
	hkStepTraining                  = 69
	hkWheelchairWalkPace            = 70
	hkWheelchairRunPace             = 71
	hkTaiChi                        = 72
	hkMixedCardio                   = 73
	hkHandCycling                   = 74
	hkDiscSports                    = 75
	hkFitnessGaming                 = 76
	hkCardioDance                   = 77
	hkSocialDance                   = 78
	hkPickleball                    = 79
	hkCooldown                      = 80
	hkTransition                    = 83
	hkUnderwaterDiving              = 84
	hkOther                         = 3000
)

var toHealthKit = map[Type]int{
	AmericanFootball:              hkAmericanFootball,
	AustralianFootball:            hkAustralianFootball,
	Badminton:                     hkBadminton,
	Baseball:                      hkBaseball,
	Basketball:                    hkBasketball,
	Bowling:                       hkBowling,
	Boxing:                        hkBoxing,
	Climbing:                      hkClimbing,
	Cricket:                       hkCricket,
	CrossTraining:                 hkCrossTraining,
	Curling:                       hkCurling,
	Cycling:                       hkCycling,
	Dance:                         hkDance,
	Elliptical:                    hkElliptical,
	Fencing:                       hkFencing,
	FunctionalStrengthTraining:    hkFunctionalStrengthTraining,
	Golf:                          hkGolf,
	Gymnastics:                    hkGymnastics,
	Handball:                      hkHandball,
	Hiking:                        hkHiking,
	Hockey:                        hkHockey,
	JumpRope:                      hkJumpRope,
	Kickboxing:                    hkKickboxing,
	Lacrosse:                      hkLacrosse,
	MartialArts:                   hkMartialArts,
	Pilates:                       hkPilates,
	Racquetball:                   hkRacquetball,
	Rowing:                        hkRowing,
	Rugby:                         hkRugby,
	Running:                       hkRunning,
	Sailing:                       hkSailing,
	SkatingSports:                 hkSkatingSports,
	Skiing:                        hkDownhillSkiing,
	Snowboarding:                  hkSnowboarding,
	Soccer:                        hkSoccer,
	Softball:                      hkSoftball,
	Squash:                        hkSquash,
	StairClimbing:                 hkStairClimbing,
	StrengthTraining:              hkTraditionalStrengthTraining,
	Surfing:                       hkSurfingSports,
	Swimming:                      hkSwimming,
	SwimmingPool:                  hkSwimming,
	SwimmingOpenWater:             hkSwimming,
	TableTennis:                   hkTableTennis,
	Tennis:                        hkTennis,
	TrackAndField:                 hkTrackAndField,
	TraditionalStrengthTraining:   hkTraditionalStrengthTraining,
	Volleyball:                    hkVolleyball,
	Walking:                       hkWalking,
	WaterFitness:                  hkWaterFitness,
	WaterPolo:                     hkWaterPolo,
	WaterSports:                   hkWaterSports,
	Weightlifting:                 hkTraditionalStrengthTraining,
	Wheelchair:                    hkWheelchairWalkPace,
	Yoga:                          hkYoga,
	Archery:                       hkArchery,
	Barre:                         hkBarre,
	Cooldown:                      hkCooldown,
	CoreTraining:                  hkCoreTraining,
	CrossCountrySkiing:            hkCrossCountrySkiing,
	DiscSports:                    hkDiscSports,
	DownhillSkiing:                hkDownhillSkiing,
	EquestrianSports:              hkEquestrianSports,
	Fishing:                       hkFishing,
	FitnessGaming:                 hkFitnessGaming,
	Flexibility:                   hkFlexibility,
	HandCycling:                   hkHandCycling,
	HighIntensityIntervalTraining: hkHighIntensityIntervalTraining,
	Hunting:                       hkHunting,
	MindAndBody:                   hkMindAndBody,
	MixedCardio:                   hkMixedCardio,
	PaddleSports:                  hkPaddleSports,
	Pickleball:                    hkPickleball,
	Play:                          hkPlay,
	PreparationAndRecovery:        hkPreparationAndRecovery,
	SnowSports:                    hkSnowSports,
	StepTraining:                  hkStepTraining,
	SurfingSports:                 hkSurfingSports,
	TaiChi:                        hkTaiChi,
	Transition:                    hkTransition,
	WheelchairRunPace:             hkWheelchairRunPace,
	WheelchairWalkPace:            hkWheelchairWalkPace,
	Wrestling:                     hkWrestling,
	BackExtension:                 hkCoreTraining,
	BarbellShoulderPress:          hkTraditionalStrengthTraining,
	BenchPress:                    hkTraditionalStrengthTraining,
	BenchSitUp:                    hkCoreTraining,
	BikingStationary:              hkCycling,
	BootCamp:                      hkHighIntensityIntervalTraining,
	Burpee:                        hkFunctionalStrengthTraining,
	Calisthenics:                  hkFunctionalStrengthTraining,
	Crunch:                        hkCoreTraining,
	Dancing:                       hkDance,
	Deadlift:                      hkTraditionalStrengthTraining,
	DumbbellCurlLeftArm:           hkTraditionalStrengthTraining,
	DumbbellCurlRightArm:          hkTraditionalStrengthTraining,
	DumbbellFrontRaise:            hkTraditionalStrengthTraining,
	DumbbellLateralRaise:          hkTraditionalStrengthTraining,
	DumbbellTricepsExtLeftArm:     hkTraditionalStrengthTraining,
	DumbbellTricepsExtRightArm:    hkTraditionalStrengthTraining,
	DumbbellTricepsExtTwoArm:      hkTraditionalStrengthTraining,
	ExerciseClass:                 hkMixedCardio,
	ForwardTwist:                  hkCoreTraining,
	FrisbeeDisc:                   hkDiscSports,
	GuidedBreathing:               hkMindAndBody,
	IceHockey:                     hkHockey,
	IceSkating:                    hkSkatingSports,
	JumpingJack:                   hkFunctionalStrengthTraining,
	LatPullDown:                   hkTraditionalStrengthTraining,
	Lunge:                         hkFunctionalStrengthTraining,
	Meditation:                    hkMindAndBody,
	Paddling:                      hkPaddleSports,
	ParaGliding:                   hkOther,
	Plank:                         hkCoreTraining,
	RockClimbing:                  hkClimbing,
	RollerHockey:                  hkHockey,
	RowingMachine:                 hkRowing,
	RunningTreadmill:              hkRunning,
	ScubaDiving:                   hkUnderwaterDiving,
	Skating:                       hkSkatingSports,
	Snowshoeing:                   hkSnowSports,
	StairClimbingMachine:          hkStepTraining,
	Stretching:                    hkFlexibility,
	UpperTwist:                    hkCoreTraining,
	Other:                         hkOther,
}

// Canonical portable value per HealthKit code. Shared buckets read back as
// the first-class portable name (traditionalStrengthTraining reads back as
// strengthTraining, the dance variants as dance).
var fromHealthKit = map[int]Type{
	hkAmericanFootball:              AmericanFootball,
	hkArchery:                       Archery,
	hkAustralianFootball:            AustralianFootball,
	hkBadminton:                     Badminton,
	hkBaseball:                      Baseball,
	hkBasketball:                    Basketball,
	hkBowling:                       Bowling,
	hkBoxing:                        Boxing,
	hkClimbing:                      Climbing,
	hkCricket:                       Cricket,
	hkCrossTraining:                 CrossTraining,
	hkCurling:                       Curling,
	hkCycling:                       Cycling,
	hkDance:                         Dance,
	hkElliptical:                    Elliptical,
	hkEquestrianSports:              EquestrianSports,
	hkFencing:                       Fencing,
	hkFishing:                       Fishing,
	hkFunctionalStrengthTraining:    FunctionalStrengthTraining,
	hkGolf:                          Golf,
	hkGymnastics:                    Gymnastics,
	hkHandball:                      Handball,
	hkHiking:                        Hiking,
	hkHockey:                        Hockey,
	hkHunting:                       Hunting,
	hkLacrosse:                      Lacrosse,
	hkMartialArts:                   MartialArts,
	hkMindAndBody:                   MindAndBody,
	hkPaddleSports:                  PaddleSports,
	hkPlay:                          Play,
	hkPreparationAndRecovery:        PreparationAndRecovery,
	hkRacquetball:                   Racquetball,
	hkRowing:                        Rowing,
	hkRugby:                         Rugby,
	hkRunning:                       Running,
	hkSailing:                       Sailing,
	hkSkatingSports:                 SkatingSports,
	hkSnowSports:                    SnowSports,
	hkSoccer:                        Soccer,
	hkSoftball:                      Softball,
	hkSquash:                        Squash,
	hkStairClimbing:                 StairClimbing,
	hkSurfingSports:                 SurfingSports,
	hkSwimming:                      Swimming,
	hkTableTennis:                   TableTennis,
	hkTennis:                        Tennis,
	hkTrackAndField:                 TrackAndField,
	hkTraditionalStrengthTraining:   StrengthTraining,
	hkVolleyball:                    Volleyball,
	hkWalking:                       Walking,
	hkWaterFitness:                  WaterFitness,
	hkWaterPolo:                     WaterPolo,
	hkWaterSports:                   WaterSports,
	hkWrestling:                     Wrestling,
	hkYoga:                          Yoga,
	hkBarre:                         Barre,
	hkCoreTraining:                  CoreTraining,
	hkCrossCountrySkiing:            CrossCountrySkiing,
	hkDownhillSkiing:                DownhillSkiing,
	hkFlexibility:                   Flexibility,
	hkHighIntensityIntervalTraining: HighIntensityIntervalTraining,
	hkJumpRope:                      JumpRope,
	hkKickboxing:                    Kickboxing,
	hkPilates:                       Pilates,
	hkSnowboarding:                  Snowboarding,
	hkStairs:                        StairClimbing,
	hkStepTraining:                  StepTraining,
	hkWheelchairWalkPace:            WheelchairWalkPace,
	hkWheelchairRunPace:             WheelchairRunPace,
	hkTaiChi:                        TaiChi,
	hkMixedCardio:                   MixedCardio,
	hkHandCycling:                   HandCycling,
	hkDiscSports:                    DiscSports,
	hkFitnessGaming:                 FitnessGaming,
	hkCardioDance:                   Dance,
	hkSocialDance:                   Dance,
	hkPickleball:                    Pickleball,
	hkCooldown:                      Cooldown,
	hkTransition:                    Transition,
	hkUnderwaterDiving:              ScubaDiving,
	hkOther:                         Other,
}
