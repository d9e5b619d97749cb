package services

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
)

func strPtr(v string) *string       { return &v }
func floatPtr(v float64) *float64   { return &v }
func intPtr(v int) *int             { return &v }
func slicePtr(v []string) *[]string { return &v }
func timePtr(v time.Time) *time.Time {
	return &v
}

func evalNow() time.Time {
	return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestEvaluateFitnessNilProfileScoresZero(t *testing.T) {
	result := EvaluateFitness(nil, evalNow())
	if result.Score != 0 {
		t.Fatalf("expected score 0 for nil profile, got %d", result.Score)
	}
	if result.Level != "Beginner" {
		t.Fatalf("expected Beginner level, got %q", result.Level)
	}
	if result.MaxWeeklyWorkouts != 2 || result.MaxWorkoutDurationMinutes != 30 {
		t.Fatalf("unexpected limits: %d workouts, %d minutes", result.MaxWeeklyWorkouts, result.MaxWorkoutDurationMinutes)
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("expected recommendations even for an empty profile")
	}
}

func TestEvaluateFitnessEmptyProfileMatchesNil(t *testing.T) {
	empty := EvaluateFitness(&models.Profile{}, evalNow())
	nilResult := EvaluateFitness(nil, evalNow())
	if empty.Score != nilResult.Score || empty.Level != nilResult.Level {
		t.Fatalf("empty profile scored (%d, %q), nil profile scored (%d, %q)",
			empty.Score, empty.Level, nilResult.Score, nilResult.Level)
	}
}

func TestEvaluateFitnessModeratelyActiveThirtyYearOld(t *testing.T) {
	// age 30 -> 20, BMI 22.9 -> 20, moderately_active -> 18
	profile := &models.Profile{
		DateOfBirth:   timePtr(time.Date(1996, 3, 1, 0, 0, 0, 0, time.UTC)),
		HeightCM:      floatPtr(175),
		WeightKG:      floatPtr(70),
		ActivityLevel: strPtr("moderately_active"),
	}

	result := EvaluateFitness(profile, evalNow())
	if result.Score != 58 {
		t.Fatalf("expected score 58, got %d", result.Score)
	}
	if result.Level != "Intermediate" {
		t.Fatalf("expected Intermediate, got %q", result.Level)
	}
	if result.MaxWeeklyWorkouts != 4 || result.MaxWorkoutDurationMinutes != 60 {
		t.Fatalf("unexpected limits: %d workouts, %d minutes", result.MaxWeeklyWorkouts, result.MaxWorkoutDurationMinutes)
	}
	if result.RecommendedIntensity != "Low to Moderate" {
		t.Fatalf("unexpected intensity %q", result.RecommendedIntensity)
	}
}

func TestEvaluateFitnessScoreIsClampedToHundred(t *testing.T) {
	profile := &models.Profile{
		DateOfBirth:        timePtr(time.Date(2004, 1, 1, 0, 0, 0, 0, time.UTC)),
		HeightCM:           floatPtr(180),
		WeightKG:           floatPtr(75),
		ActivityLevel:      strPtr("extremely_active"),
		ExperienceLevel:    strPtr("expert"),
		PreferredIntensity: strPtr("extreme"),
	}

	result := EvaluateFitness(profile, evalNow())
	if result.Score > 100 {
		t.Fatalf("score exceeded 100: %d", result.Score)
	}
	if result.Score != 100 {
		t.Fatalf("expected a fully-loaded profile to reach 100, got %d", result.Score)
	}
	if result.Level != "Expert" {
		t.Fatalf("expected Expert, got %q", result.Level)
	}
}

func TestEvaluateFitnessPenaltiesNeverGoNegative(t *testing.T) {
	profile := &models.Profile{
		MedicalConditions: slicePtr([]string{"asthma", "hypertension", "diabetes"}),
		PreviousInjuries:  slicePtr([]string{"knee", "shoulder"}),
	}

	result := EvaluateFitness(profile, evalNow())
	if result.Score != 0 {
		t.Fatalf("expected score clamped to 0, got %d", result.Score)
	}
}

func TestEvaluateFitnessPenaltiesSubtractPerEntry(t *testing.T) {
	base := &models.Profile{ActivityLevel: strPtr("very_active")}
	withPenalties := &models.Profile{
		ActivityLevel:     strPtr("very_active"),
		MedicalConditions: slicePtr([]string{"asthma"}),
		PreviousInjuries:  slicePtr([]string{"knee", "ankle"}),
	}

	baseScore := EvaluateFitness(base, evalNow()).Score
	penalized := EvaluateFitness(withPenalties, evalNow()).Score
	if want := baseScore - 5 - 2*3; penalized != want {
		t.Fatalf("expected %d after penalties, got %d", want, penalized)
	}
}

func TestEvaluateFitnessIsDeterministic(t *testing.T) {
	profile := &models.Profile{
		DateOfBirth:     timePtr(time.Date(1980, 7, 20, 0, 0, 0, 0, time.UTC)),
		HeightCM:        floatPtr(165),
		WeightKG:        floatPtr(82),
		ActivityLevel:   strPtr("lightly_active"),
		ExperienceLevel: strPtr("intermediate"),
	}

	first := EvaluateFitness(profile, evalNow())
	for i := 0; i < 5; i++ {
		again := EvaluateFitness(profile, evalNow())
		if again.Score != first.Score || again.Level != first.Level {
			t.Fatalf("evaluation changed between runs: (%d, %q) vs (%d, %q)",
				first.Score, first.Level, again.Score, again.Level)
		}
	}
}

func TestEvaluateFitnessLevelBands(t *testing.T) {
	cases := []struct {
		score int
		level string
	}{
		{0, "Beginner"},
		{19, "Beginner"},
		{20, "Novice"},
		{39, "Novice"},
		{40, "Intermediate"},
		{59, "Intermediate"},
		{60, "Advanced"},
		{79, "Advanced"},
		{80, "Expert"},
		{100, "Expert"},
	}
	for _, tc := range cases {
		band := bandForScore(tc.score)
		if band.level != tc.level {
			t.Errorf("score %d: expected %q, got %q", tc.score, tc.level, band.level)
		}
	}
}

func TestEvaluateFitnessConditionAndInjuryRecommendations(t *testing.T) {
	profile := &models.Profile{
		MedicalConditions: slicePtr([]string{"asthma"}),
		PreviousInjuries:  slicePtr([]string{"knee"}),
	}

	result := EvaluateFitness(profile, evalNow())
	foundCondition, foundInjury := false, false
	for _, rec := range result.Recommendations {
		if rec == "Consult your healthcare provider before increasing your training load." {
			foundCondition = true
		}
		if rec == "Warm up thoroughly and avoid movements that stress previously injured areas." {
			foundInjury = true
		}
	}
	if !foundCondition {
		t.Error("expected a healthcare-provider recommendation for medical conditions")
	}
	if !foundInjury {
		t.Error("expected a warm-up recommendation for previous injuries")
	}
}

func TestEvaluateFitnessScoreBoundedForRandomProfiles(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	activityLevels := []string{"sedentary", "lightly_active", "moderately_active", "very_active", "extremely_active", "unknown", ""}
	experienceLevels := []string{"beginner", "novice", "intermediate", "advanced", "expert", "guru", ""}
	intensities := []string{"low", "moderate", "high", "extreme", "brutal", ""}

	randomList := func(max int) *[]string {
		n := rng.Intn(max + 1)
		items := make([]string, n)
		for i := range items {
			items[i] = fmt.Sprintf("entry-%d", i)
		}
		return &items
	}

	for i := 0; i < 500; i++ {
		profile := &models.Profile{}
		if rng.Intn(2) == 0 {
			profile.DateOfBirth = timePtr(evalNow().AddDate(-rng.Intn(110), 0, 0))
		}
		if rng.Intn(2) == 0 {
			profile.HeightCM = floatPtr(40 + rng.Float64()*200)
		}
		if rng.Intn(2) == 0 {
			profile.WeightKG = floatPtr(10 + rng.Float64()*250)
		}
		if rng.Intn(2) == 0 {
			profile.ActivityLevel = strPtr(activityLevels[rng.Intn(len(activityLevels))])
		}
		if rng.Intn(2) == 0 {
			profile.ExperienceLevel = strPtr(experienceLevels[rng.Intn(len(experienceLevels))])
		}
		if rng.Intn(2) == 0 {
			profile.PreferredIntensity = strPtr(intensities[rng.Intn(len(intensities))])
		}
		if rng.Intn(2) == 0 {
			profile.MedicalConditions = randomList(6)
		}
		if rng.Intn(2) == 0 {
			profile.PreviousInjuries = randomList(6)
		}

		result := EvaluateFitness(profile, evalNow())
		if result.Score < 0 || result.Score > 100 {
			t.Fatalf("profile %+v scored %d, outside [0,100]", profile, result.Score)
		}
		if result.Level == "" || result.MaxWeeklyWorkouts <= 0 {
			t.Fatalf("profile %+v produced incomplete evaluation %+v", profile, result)
		}
	}
}

func TestEvaluateFitnessBMIOutOfBandStillScores(t *testing.T) {
	// BMI 34.3 falls outside every band and gets the floor points
	inBand := &models.Profile{HeightCM: floatPtr(175), WeightKG: floatPtr(70)}
	outOfBand := &models.Profile{HeightCM: floatPtr(175), WeightKG: floatPtr(105)}

	if got := EvaluateFitness(inBand, evalNow()).Score; got != 20 {
		t.Fatalf("expected in-band BMI to score 20, got %d", got)
	}
	if got := EvaluateFitness(outOfBand, evalNow()).Score; got != 5 {
		t.Fatalf("expected out-of-band BMI to score 5, got %d", got)
	}
}
