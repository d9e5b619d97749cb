package routes

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/cache"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/config"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/handlers"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/middleware"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/repository"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/services"
)

type Dependencies struct {
	DB     *pgxpool.Pool
	Cache  *cache.Cache
	Config *config.Config
	Logger *zap.Logger
}

// SetupRoutes builds the repository/service/handler graph and registers all
// HTTP routes on the app.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	userRepo := repository.NewUserRepository(deps.DB)
	profileRepo := repository.NewProfileRepository(deps.DB)
	exerciseRepo := repository.NewExerciseRepository(deps.DB)
	workoutRepo := repository.NewWorkoutRepository(deps.DB)
	programRepo := repository.NewProgramRepository(deps.DB)
	goalRepo := repository.NewGoalRepository(deps.DB)

	profileService := services.NewProfileService(profileRepo)
	goalService := services.NewGoalService(deps.DB, goalRepo, profileRepo, programRepo, deps.Logger)

	recommendationService := newRecommendationService(programRepo, profileRepo, deps.Cache, deps.Logger)

	authHandler := handlers.NewAuthHandler(deps.DB, userRepo, profileRepo, deps.Config.JWTSecret)
	profileHandler := handlers.NewProfileHandler(profileRepo, profileService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseRepo)
	workoutHandler := handlers.NewWorkoutHandler(workoutRepo)
	programHandler := handlers.NewProgramHandler(programRepo, recommendationService)
	goalHandler := handlers.NewGoalHandler(goalService)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.Config.EnableMetrics {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	v1 := api.Group("/v1", middleware.AuthRequired(deps.Config.JWTSecret))
	v1.Get("/me", authHandler.Me)

	v1.Get("/profile", profileHandler.GetProfile)
	v1.Put("/profile", profileHandler.UpdateProfile)
	v1.Get("/profile/evaluation", profileHandler.GetEvaluation)

	exercises := v1.Group("/exercises")
	exercises.Get("/", exerciseHandler.List)
	exercises.Get("/:id", exerciseHandler.Get)
	exercises.Post("/", middleware.ContributorRequired(), exerciseHandler.Create)
	exercises.Put("/:id", middleware.ContributorRequired(), exerciseHandler.Update)
	exercises.Delete("/:id", middleware.ContributorRequired(), exerciseHandler.Delete)

	workouts := v1.Group("/workouts")
	workouts.Get("/", workoutHandler.List)
	workouts.Get("/:id", workoutHandler.Get)
	workouts.Post("/", middleware.ContributorRequired(), workoutHandler.Create)
	workouts.Put("/:id", middleware.ContributorRequired(), workoutHandler.Update)
	workouts.Delete("/:id", middleware.ContributorRequired(), workoutHandler.Delete)

	programs := v1.Group("/programs")
	programs.Get("/", programHandler.List)
	programs.Get("/suggestions", programHandler.Suggestions)
	programs.Get("/:id", programHandler.Get)
	programs.Post("/", middleware.ContributorRequired(), programHandler.Create)
	programs.Put("/:id", middleware.ContributorRequired(), programHandler.Update)
	programs.Delete("/:id", middleware.ContributorRequired(), programHandler.Delete)

	goals := v1.Group("/goals")
	goals.Get("/", goalHandler.List)
	goals.Post("/", goalHandler.Create)
	goals.Get("/:id", goalHandler.Get)
	goals.Put("/:id/status", goalHandler.ChangeStatus)
	goals.Post("/:id/workouts/:workoutId/complete", goalHandler.CompleteWorkout)
	goals.Delete("/:id", goalHandler.Delete)
}

// newRecommendationService keeps the nil-cache degradation explicit: a typed
// nil *cache.Cache must become a nil interface inside the service.
func newRecommendationService(
	programRepo *repository.ProgramRepository,
	profileRepo *repository.ProfileRepository,
	catalogCache *cache.Cache,
	logger *zap.Logger,
) *services.RecommendationService {
	if catalogCache == nil {
		return services.NewRecommendationServiceWithoutCache(programRepo, profileRepo, logger)
	}
	return services.NewRecommendationService(programRepo, profileRepo, catalogCache, logger)
}
