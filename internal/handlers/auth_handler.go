package handlers

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/repository"
	"github.com/ReddyRohith-E/MeFit-sub000/pkg/utils"
)

type AuthHandler struct {
	db          *pgxpool.Pool
	userRepo    *repository.UserRepository
	profileRepo *repository.ProfileRepository
	jwtSecret   string
}

func NewAuthHandler(
	db *pgxpool.Pool,
	userRepo *repository.UserRepository,
	profileRepo *repository.ProfileRepository,
	jwtSecret string,
) *AuthHandler {
	return &AuthHandler{
		db:          db,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtSecret:   jwtSecret,
	}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	parsedEmail, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email format"})
	}
	req.Email = strings.ToLower(parsedEmail.Address)
	if len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Password must be at least 8 characters"})
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "first_name and last_name are required"})
	}

	existing, err := h.userRepo.GetByEmail(c.Context(), req.Email)
	if err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
	}
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to check email"})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashed,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
	}
	tx, err := h.db.Begin(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to start registration transaction"})
	}
	defer func() {
		_ = tx.Rollback(c.Context())
	}()

	txUserRepo := repository.NewUserRepository(tx)
	txProfileRepo := repository.NewProfileRepository(tx)

	if err := txUserRepo.CreateUser(c.Context(), user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"error": "Email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create user"})
	}
	if err := txProfileRepo.CreateEmpty(c.Context(), user.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create profile"})
	}
	if err := tx.Commit(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to complete registration"})
	}

	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), user.IsContributor, user.IsAdmin, h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := h.userRepo.GetByEmail(c.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch user"})
	}
	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), user.IsContributor, user.IsAdmin, h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch user"})
	}

	return c.JSON(fiber.Map{"user": user})
}

func parseAuthUserID(c *fiber.Ctx) (int64, error) {
	userIDValue := c.Locals("user_id")
	userIDStr, ok := userIDValue.(string)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(userIDStr, 10, 64)
}
