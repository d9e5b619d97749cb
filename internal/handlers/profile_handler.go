package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/repository"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/services"
)

type ProfileHandler struct {
	profileRepo    *repository.ProfileRepository
	profileService *services.ProfileService
}

func NewProfileHandler(profileRepo *repository.ProfileRepository, profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo, profileService: profileService}
}

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, err := h.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

// UpdateProfile applies a partial update and marks onboarding complete.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var input repository.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validateProfileInput(&input); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	profile, err := h.profileService.UpdateProfile(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

// GetEvaluation scores the authenticated user's profile and returns the
// computed fitness level, limits and recommendations.
func (h *ProfileHandler) GetEvaluation(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, err := h.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	evaluation := services.EvaluateFitness(profile, time.Now())
	return c.JSON(fiber.Map{"evaluation": evaluation})
}
