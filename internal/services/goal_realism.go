package services

import (
	"fmt"
	"math"
	"time"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
)

// maxWorkoutsPerLevel bounds a weekly goal load per self-reported fitness
// level. Independent of the evaluator's score-band limits on purpose.
var maxWorkoutsPerLevel = map[string]int{
	"beginner":     4,
	"intermediate": 5,
	"advanced":     7,
}

const sedentaryWeeklyWorkoutCeiling = 3

type GoalRealismInput struct {
	ProposedWorkoutCount int
	StartDate            time.Time
	EndDate              time.Time
}

// GoalRealismResult is advisory only; warnings never block goal creation.
type GoalRealismResult struct {
	IsRealistic bool     `json:"is_realistic"`
	Warnings    []string `json:"warnings"`
}

// CheckGoalRealism sanity-checks a proposed goal's workout load against the
// profile. A nil profile yields a realistic result with no warnings.
func CheckGoalRealism(profile *models.Profile, input GoalRealismInput) GoalRealismResult {
	if profile == nil {
		return GoalRealismResult{IsRealistic: true, Warnings: []string{}}
	}

	durationDays := int(math.Ceil(input.EndDate.Sub(input.StartDate).Hours() / 24))
	warnings := []string{}

	var workoutsPerWeek float64
	if durationDays > 0 {
		workoutsPerWeek = float64(input.ProposedWorkoutCount) / float64(durationDays) * 7
	}

	if profile.FitnessLevel != nil {
		level := normalize(*profile.FitnessLevel)
		if maxPerWeek, ok := maxWorkoutsPerLevel[level]; ok && workoutsPerWeek > float64(maxPerWeek) {
			warnings = append(warnings, fmt.Sprintf(
				"This goal averages %.1f workouts per week; at most %d per week is recommended for %s level.",
				workoutsPerWeek, maxPerWeek, level,
			))
		}
	}

	if len(sliceValue(profile.MedicalConditions)) > 0 {
		warnings = append(warnings,
			"You have reported medical conditions; consult your healthcare provider before starting this goal.")
	}

	if stringValue(profile.ActivityLevel) == "sedentary" && workoutsPerWeek > sedentaryWeeklyWorkoutCeiling {
		warnings = append(warnings,
			"Your activity level is sedentary; consider starting with 3 or fewer workouts per week.")
	}

	return GoalRealismResult{
		IsRealistic: len(warnings) == 0,
		Warnings:    warnings,
	}
}
