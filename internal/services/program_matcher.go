package services

import (
	"sort"
	"strings"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
)

const DefaultSuggestionLimit = 5

// goalCategorySynonyms expands a profile goal tag into the program categories
// that serve it. Lookups run on normalized tags.
var goalCategorySynonyms = map[string][]string{
	"weight_loss":     {"weight_loss", "cardio", "general_fitness"},
	"fat_loss":        {"weight_loss", "cardio", "general_fitness"},
	"muscle_gain":     {"muscle_gain", "strength", "general_fitness"},
	"strength":        {"strength", "muscle_gain", "general_fitness"},
	"endurance":       {"endurance", "cardio", "general_fitness"},
	"flexibility":     {"flexibility", "yoga", "general_fitness"},
	"mobility":        {"flexibility", "yoga", "general_fitness"},
	"general_fitness": {"general_fitness", "cardio", "strength"},
}

// lowImpactCategories replaces any goal-derived category restriction when the
// profile reports medical conditions.
var lowImpactCategories = map[string]struct{}{
	"flexibility":     {},
	"rehabilitation":  {},
	"general_fitness": {},
}

var difficultyOrdinals = map[string]int{
	"beginner":     1,
	"intermediate": 2,
	"advanced":     3,
}

const (
	durationSlackMinutes = 15
	noProfileFlatScore   = 50
)

// SuggestPrograms ranks catalog programs against a profile. Candidates are
// filtered first (difficulty, goal categories, duration, frequency, and a
// low-impact override for medical conditions), then scored 0-100. Callers
// pass the catalog in its default ordering (rating, then recency); that
// ordering is preserved whenever no score-based ordering applies.
func SuggestPrograms(profile *models.Profile, programs []models.Program, limit int) []models.ProgramSuggestion {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	candidates := filterPrograms(profile, programs)

	suggestions := make([]models.ProgramSuggestion, 0, len(candidates))
	for _, program := range candidates {
		score, reason := scoreProgram(profile, &program)
		suggestions = append(suggestions, models.ProgramSuggestion{
			Program:    program,
			MatchScore: score,
			Reason:     reason,
		})
	}

	switch {
	case profile == nil:
		// keep the catalog's default ordering
	case hasMedicalConditions(profile):
		sort.SliceStable(suggestions, func(i, j int) bool {
			di := difficultyOrdinals[normalize(suggestions[i].Difficulty)]
			dj := difficultyOrdinals[normalize(suggestions[j].Difficulty)]
			if di == dj {
				return floatValue(suggestions[i].RatingAverage) > floatValue(suggestions[j].RatingAverage)
			}
			return di < dj
		})
	default:
		sort.SliceStable(suggestions, func(i, j int) bool {
			return suggestions[i].MatchScore > suggestions[j].MatchScore
		})
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

func filterPrograms(profile *models.Profile, programs []models.Program) []models.Program {
	level := "beginner"
	if profile != nil && profile.FitnessLevel != nil && normalize(*profile.FitnessLevel) != "" {
		level = normalize(*profile.FitnessLevel)
	}

	var allowedCategories map[string]struct{}
	if hasMedicalConditions(profile) {
		allowedCategories = lowImpactCategories
	} else if profile != nil {
		allowedCategories = expandGoalCategories(sliceValue(profile.FitnessGoals))
	}

	filtered := make([]models.Program, 0, len(programs))
	for _, program := range programs {
		if normalize(program.Difficulty) != level {
			continue
		}
		if allowedCategories != nil {
			if _, ok := allowedCategories[normalize(program.Category)]; !ok {
				continue
			}
		}
		if profile != nil && profile.WorkoutDurationMinutes != nil &&
			program.EstimatedTimePerSession > *profile.WorkoutDurationMinutes+durationSlackMinutes {
			continue
		}
		if profile != nil && profile.WorkoutFrequency != nil &&
			program.WorkoutsPerWeek > *profile.WorkoutFrequency {
			continue
		}
		filtered = append(filtered, program)
	}
	return filtered
}

// expandGoalCategories returns nil for an empty goal set, meaning no category
// restriction at all.
func expandGoalCategories(goals []string) map[string]struct{} {
	if len(goals) == 0 {
		return nil
	}
	expanded := make(map[string]struct{})
	for _, goal := range goals {
		key := normalize(goal)
		if key == "" {
			continue
		}
		synonyms, ok := goalCategorySynonyms[key]
		if !ok {
			synonyms = []string{key}
		}
		for _, category := range synonyms {
			expanded[category] = struct{}{}
		}
	}
	if len(expanded) == 0 {
		return nil
	}
	return expanded
}

func scoreProgram(profile *models.Profile, program *models.Program) (int, string) {
	if profile == nil {
		return noProfileFlatScore, "Great starting program for beginners"
	}

	score := 0
	reasons := make([]string, 0, 4)

	profileLevel := ""
	if profile.FitnessLevel != nil {
		profileLevel = normalize(*profile.FitnessLevel)
	}
	programLevel := normalize(program.Difficulty)
	if profileLevel != "" {
		switch {
		case profileLevel == programLevel:
			score += 30
			reasons = append(reasons, "matches your fitness level")
		case difficultyGap(profileLevel, programLevel) == 1:
			score += 15
		}
	}

	if goalCategories := expandGoalCategories(sliceValue(profile.FitnessGoals)); goalCategories != nil {
		if _, ok := goalCategories[normalize(program.Category)]; ok {
			score += 25
			reasons = append(reasons, "aligns with your goals")
		}
	}

	if profile.WorkoutDurationMinutes != nil {
		gap := program.EstimatedTimePerSession - *profile.WorkoutDurationMinutes
		if gap < 0 {
			gap = -gap
		}
		switch {
		case gap <= 15:
			score += 20
			reasons = append(reasons, "fits your session length")
		case gap <= 30:
			score += 10
		}
	}

	if profile.WorkoutFrequency != nil && program.WorkoutsPerWeek <= *profile.WorkoutFrequency {
		score += 15
	}

	switch rating := floatValue(program.RatingAverage); {
	case rating >= 4:
		score += 10
		reasons = append(reasons, "highly rated")
	case rating >= 3:
		score += 5
	}

	if len(reasons) == 0 {
		return score, "Recommended for you"
	}
	return score, strings.Join(reasons, ", ")
}

func difficultyGap(a, b string) int {
	oa, oka := difficultyOrdinals[a]
	ob, okb := difficultyOrdinals[b]
	if !oka || !okb {
		return -1
	}
	gap := oa - ob
	if gap < 0 {
		gap = -gap
	}
	return gap
}

func hasMedicalConditions(profile *models.Profile) bool {
	return profile != nil && len(sliceValue(profile.MedicalConditions)) > 0
}

func normalize(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	value = strings.ReplaceAll(value, " ", "_")
	value = strings.ReplaceAll(value, "-", "_")
	return value
}

func sliceValue(values *[]string) []string {
	if values == nil {
		return nil
	}
	return *values
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func floatValue(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}

func intValue(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
