package services

import (
	"fmt"
	"math"
	"time"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
)

// FitnessEvaluation is the result of scoring a profile: a bounded 0-100
// score, the derived capability level and the workout limits that follow
// from it.
type FitnessEvaluation struct {
	Score                     int      `json:"score"`
	Level                     string   `json:"level"`
	MaxWeeklyWorkouts         int      `json:"max_weekly_workouts"`
	MaxWorkoutDurationMinutes int      `json:"max_workout_duration_minutes"`
	RecommendedIntensity      string   `json:"recommended_intensity"`
	Recommendations           []string `json:"recommendations"`
}

// Scoring tables. They are deliberately package-level named values rather
// than inline literals so the weights can be audited and tested apart from
// the arithmetic that consumes them.

type scoreBand struct {
	min    int
	points int
}

var ageBands = []scoreBand{
	{min: 55, points: 5},
	{min: 45, points: 10},
	{min: 35, points: 15},
	{min: 25, points: 20},
	{min: 0, points: 25},
}

type bmiBand struct {
	low    float64
	high   float64
	points int
}

var bmiBands = []bmiBand{
	{low: 18.5, high: 24.9, points: 20},
	{low: 25, high: 29.9, points: 15},
	{low: 0, high: 18.5, points: 10},
}

const bmiOutOfBandPoints = 5

var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extremely_active":  1.9,
}

const activityPointsCap = 25

var experienceOrdinals = map[string]int{
	"beginner":     1,
	"novice":       2,
	"intermediate": 3,
	"advanced":     4,
	"expert":       5,
}

const experienceWeight = 5

var intensityOrdinals = map[string]int{
	"low":      1,
	"moderate": 2,
	"high":     3,
	"extreme":  4,
}

const intensityWeight = 3

const (
	medicalConditionPenalty = 5
	previousInjuryPenalty   = 3
)

// limitBands map the final score to level and derived limits. This table is
// intentionally independent of the per-level maximums used by the goal
// realism check; the two were observed separately and are kept separate.
type limitBand struct {
	minScore             int
	level                string
	maxWeeklyWorkouts    int
	maxDurationMinutes   int
	recommendedIntensity string
}

var limitBands = []limitBand{
	{minScore: 80, level: "Expert", maxWeeklyWorkouts: 7, maxDurationMinutes: 90, recommendedIntensity: "High to Extreme"},
	{minScore: 60, level: "Advanced", maxWeeklyWorkouts: 5, maxDurationMinutes: 75, recommendedIntensity: "Moderate to High"},
	{minScore: 40, level: "Intermediate", maxWeeklyWorkouts: 4, maxDurationMinutes: 60, recommendedIntensity: "Low to Moderate"},
	{minScore: 20, level: "Novice", maxWeeklyWorkouts: 3, maxDurationMinutes: 45, recommendedIntensity: "Low"},
	{minScore: 0, level: "Beginner", maxWeeklyWorkouts: 2, maxDurationMinutes: 30, recommendedIntensity: "Low"},
}

// EvaluateFitness converts self-reported profile facts into a bounded score
// and the workout limits derived from it. Missing optional fields contribute
// zero; a nil profile is valid input and scores as all-absent. The function
// is pure and deterministic.
func EvaluateFitness(profile *models.Profile, now time.Time) FitnessEvaluation {
	score := 0
	score += agePoints(profile, now)
	score += bmiPoints(profile)
	score += activityPoints(profile)
	score += ordinalPoints(profileField(profile, func(p *models.Profile) *string { return p.ExperienceLevel }), experienceOrdinals, experienceWeight)
	score += ordinalPoints(profileField(profile, func(p *models.Profile) *string { return p.PreferredIntensity }), intensityOrdinals, intensityWeight)

	conditions := len(conditionList(profile))
	injuries := len(injuryList(profile))
	score -= conditions * medicalConditionPenalty
	score -= injuries * previousInjuryPenalty

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	band := bandForScore(score)
	return FitnessEvaluation{
		Score:                     score,
		Level:                     band.level,
		MaxWeeklyWorkouts:         band.maxWeeklyWorkouts,
		MaxWorkoutDurationMinutes: band.maxDurationMinutes,
		RecommendedIntensity:      band.recommendedIntensity,
		Recommendations:           buildRecommendations(band, conditions > 0, injuries > 0),
	}
}

func agePoints(profile *models.Profile, now time.Time) int {
	age := profile.Age(now)
	if age == nil {
		return 0
	}
	for _, band := range ageBands {
		if *age >= band.min {
			return band.points
		}
	}
	return 0
}

func bmiPoints(profile *models.Profile) int {
	bmi := profile.BMI()
	if bmi == nil {
		return 0
	}
	for _, band := range bmiBands {
		if *bmi >= band.low && *bmi <= band.high {
			return band.points
		}
	}
	return bmiOutOfBandPoints
}

func activityPoints(profile *models.Profile) int {
	level := profileField(profile, func(p *models.Profile) *string { return p.ActivityLevel })
	multiplier, ok := activityMultipliers[normalize(stringValue(level))]
	if !ok {
		return 0
	}
	points := int(math.Round((multiplier - 1.2) * 50))
	if points > activityPointsCap {
		points = activityPointsCap
	}
	return points
}

func ordinalPoints(value *string, ordinals map[string]int, weight int) int {
	ordinal, ok := ordinals[normalize(stringValue(value))]
	if !ok {
		return 0
	}
	return ordinal * weight
}

func bandForScore(score int) limitBand {
	for _, band := range limitBands {
		if score >= band.minScore {
			return band
		}
	}
	return limitBands[len(limitBands)-1]
}

func buildRecommendations(band limitBand, hasConditions, hasInjuries bool) []string {
	recommendations := []string{
		fmt.Sprintf("Aim for up to %d workouts per week at %s intensity.", band.maxWeeklyWorkouts, band.recommendedIntensity),
		fmt.Sprintf("Keep individual sessions under %d minutes.", band.maxDurationMinutes),
	}
	switch band.level {
	case "Beginner", "Novice":
		recommendations = append(recommendations, "Start with low-impact sessions and build consistency before intensity.")
	case "Intermediate":
		recommendations = append(recommendations, "Mix steady cardio with progressive strength work.")
	default:
		recommendations = append(recommendations, "You can handle high-intensity and interval training; prioritize recovery days.")
	}
	if hasConditions {
		recommendations = append(recommendations, "Consult your healthcare provider before increasing your training load.")
	}
	if hasInjuries {
		recommendations = append(recommendations, "Warm up thoroughly and avoid movements that stress previously injured areas.")
	}
	return recommendations
}

func conditionList(profile *models.Profile) []string {
	if profile == nil {
		return nil
	}
	return sliceValue(profile.MedicalConditions)
}

func injuryList(profile *models.Profile) []string {
	if profile == nil {
		return nil
	}
	return sliceValue(profile.PreviousInjuries)
}

func profileField(profile *models.Profile, pick func(*models.Profile) *string) *string {
	if profile == nil {
		return nil
	}
	return pick(profile)
}
