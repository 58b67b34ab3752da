package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"htmxcontacts/internal/logging"
	"htmxcontacts/internal/service"
)

// StaticPrefix is where files from Deps.StaticDir are mounted.
const StaticPrefix = "/styles"

// Deps are the collaborators the routes are built from.
type Deps struct {
	Contacts  service.ContactService
	Users     service.UserService
	Log       *logging.Logger
	StaticDir string
}

// NewApp builds a Fiber app rendering through views, with the standard error
// handler and panic recovery installed.
func NewApp(views fiber.Views) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler(),
		Views:                 views,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	return app
}

// RegisterRoutes attaches the page, fragment and API routes to app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/healthz", LivenessProbe())

	app.Get("/", Index(d.Log))
	app.Get("/contact/:id", ShowContact(d.Contacts, d.Log))
	app.Get("/contact/:id/edit", EditContact(d.Contacts, d.Log))
	app.Put("/contact/:id", UpdateContact(d.Contacts, d.Log))

	app.Post("/users", CreateUser(d.Users))

	if d.StaticDir != "" {
		app.Static(StaticPrefix, d.StaticDir)
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
