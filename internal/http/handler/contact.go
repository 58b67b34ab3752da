package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"htmxcontacts/internal/logging"
	"htmxcontacts/internal/model"
	"htmxcontacts/internal/service"
	"htmxcontacts/internal/view"
)

// FragmentHeader is sent by htmx on every request it issues. Its presence,
// whatever the value, asks for the fragment instead of the full page.
const FragmentHeader = "HX-Request"

// contactFormFields are the keys an update form must carry.
var contactFormFields = []string{"first_name", "last_name", "email"}

// contactID parses the :id segment as an unsigned 32-bit integer.
func contactID(c *fiber.Ctx) (uint32, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}

func wantsFragment(c *fiber.Ctx) bool {
	found := false
	c.Request().Header.VisitAll(func(k, _ []byte) {
		if strings.EqualFold(string(k), FragmentHeader) {
			found = true
		}
	})
	return found
}

// render writes the named template as the response, or a TEMPLATE_ERROR
// envelope when rendering fails.
func render(c *fiber.Ctx, log *logging.Logger, name string, data any) error {
	if err := c.Render(name, data); err != nil {
		log.Error("template_render_failed", err, map[string]any{
			"request_id": requestIDFromCtx(c),
			"template":   name,
			"path":       c.Path(),
		})
		c.Response().ResetBody()
		return writeError(c, fiber.StatusInternalServerError, "TEMPLATE_ERROR", "template rendering failed")
	}
	return nil
}

// Index godoc
// @Summary Landing page
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 {object} errorPayload
// @Router / [get]
func Index(log *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return render(c, log, view.Index, nil)
	}
}

// ShowContact godoc
// @Summary Show the contact card
// @Description Full page, or only the card fragment when the HX-Request header is present.
// @Tags contacts
// @Produce html
// @Param id path int true "Contact ID"
// @Param HX-Request header string false "Any value selects the fragment"
// @Success 200 {string} string "HTML"
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /contact/{id} [get]
func ShowContact(svc service.ContactService, log *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := contactID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		contact, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		name := view.ContactPage
		if wantsFragment(c) {
			name = view.ContactCard
		}
		return render(c, log, name, view.NewContactView(id, contact))
	}
}

// EditContact godoc
// @Summary Contact edit form
// @Tags contacts
// @Produce html
// @Param id path int true "Contact ID"
// @Success 200 {string} string "HTML form fragment"
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /contact/{id}/edit [get]
func EditContact(svc service.ContactService, log *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := contactID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		contact, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return render(c, log, view.ContactEdit, view.NewContactView(id, contact))
	}
}

// UpdateContact godoc
// @Summary Update the contact card
// @Description Echoes the submitted values back as the card fragment. Nothing is stored.
// @Tags contacts
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "Contact ID"
// @Param first_name formData string true "First name"
// @Param last_name formData string true "Last name"
// @Param email formData string true "Email"
// @Success 200 {string} string "HTML card fragment"
// @Failure 400 {object} errorPayload
// @Failure 415 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /contact/{id} [put]
func UpdateContact(svc service.ContactService, log *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := contactID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if !strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEApplicationForm) {
			return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "expected application/x-www-form-urlencoded")
		}

		// Every field must be sent; an empty value is a valid value.
		args := c.Request().PostArgs()
		for _, key := range contactFormFields {
			if !args.Has(key) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_FORM", "first_name, last_name and email are required")
			}
		}

		var form model.Contact
		if err := c.BodyParser(&form); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FORM", "malformed form body")
		}

		contact, err := svc.Update(c.UserContext(), id, form)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return render(c, log, view.ContactCard, view.NewContactView(id, contact))
	}
}
