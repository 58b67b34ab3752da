package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"htmxcontacts/internal/service"
)

var validate = validator.New()

// createUserRequest uses a pointer so that a missing or null username fails
// `required` while an explicit "" passes.
type createUserRequest struct {
	Username *string `json:"username" validate:"required"`
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param body body createUserRequest true "User to create"
// @Success 201 {object} model.User
// @Failure 400 {object} errorPayload
// @Failure 415 {object} errorPayload
// @Router /users [post]
func CreateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEApplicationJSON) {
			return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "expected application/json")
		}

		var req createUserRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed JSON body")
		}
		if err := validate.Struct(req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "username is required")
		}

		user, err := svc.Create(c.UserContext(), *req.Username)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	}
}
