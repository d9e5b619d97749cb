package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	GoalsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mefit_goals_created_total",
		Help: "Goals created",
	})

	WorkoutsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mefit_goal_workouts_completed_total",
		Help: "Goal workouts marked completed",
	})

	AchievementsEarned = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mefit_achievements_earned_total",
		Help: "Achievements appended to goals",
	})

	SuggestionsServed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mefit_program_suggestions_served_total",
		Help: "Program suggestion requests served",
	})
)

func Register() {
	prometheus.MustRegister(GoalsCreated, WorkoutsCompleted, AchievementsEarned, SuggestionsServed)
}
