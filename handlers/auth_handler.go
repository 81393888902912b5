package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"employee-management-api/models"
	"employee-management-api/repository"
)

type AuthHandler struct {
	userRepo repository.UserRepository
}

func NewAuthHandler(userRepo repository.UserRepository) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
	}
}

// SignUp godoc
// @Summary Sign up
// @Description Creates an account. Every failure (missing fields, duplicate userName, bad body) gets the same message on purpose.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body models.SignUpPayload true "User data"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Router /signUp [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var payload models.SignUpPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create user"})
	}

	user := &models.User{
		UserName: payload.UserName,
		Password: payload.Password,
		Name:     payload.Name,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	created, err := h.userRepo.Create(ctx, user)
	if err != nil {
		log.Printf("failed to create user: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create user"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Login godoc
// @Summary Log in
// @Description Compares the password by plain equality. Unknown user and wrong password return the same 401 so neither is revealed.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginPayload true "Credentials"
// @Success 200 {object} models.LoginSuccessResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.LoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to process request."})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindByUserName(ctx, payload.UserName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username or password"})
		}
		log.Printf("failed to find user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	if payload.Password != user.Password {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username or password"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"userId":  user.ID,
		"name":    user.Name,
	})
}
