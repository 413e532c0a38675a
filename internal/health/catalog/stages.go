package catalog

import (
	"errors"

	"github.com/vitae-lab/healthbridge/internal/native"
)

// ErrUnknownDataType marks identifiers outside the catalog. Surfaced to
// callers as an invalid-data-type error.
var ErrUnknownDataType = errors.New("unknown data type")

// Sleep stage codes are platform vocabulary. Health Connect numbers its
// SleepSessionRecord stage constants 0-7; HealthKit numbers its
// sleep-analysis category values 0-5. Unmapped or future codes fall back to
// a generic "asleep" label, never an error.
var hcSleepStages = map[int]string{
	0: "unknown",
	1: "awake",
	2: "asleep",
	3: "outOfBed",
	4: "light",
	5: "deep",
	6: "rem",
	7: "inBed",
}

var hkSleepStages = map[int]string{
	0: "inBed",
	1: "asleep",
	2: "awake",
	3: "light",
	4: "deep",
	5: "rem",
}

// SleepStageLabel maps a native sleep stage code to the portable stage
// label for the given platform.
func SleepStageLabel(p native.Platform, code int) string {
	var label string
	var ok bool
	if p == native.PlatformHealthKit {
		label, ok = hkSleepStages[code]
	} else {
		label, ok = hcSleepStages[code]
	}
	if !ok {
		return "asleep"
	}
	return label
}
