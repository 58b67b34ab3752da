package handler

import (
	"bytes"
	"errors"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"htmxcontacts/internal/http/middleware"
)

// errorPayload is the JSON error body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorFragment is what htmx requests get instead of JSON, so a swap or an
// htmx:responseError listener receives markup it can place in the page.
var errorFragment = template.Must(template.New("error").Parse(
	`<div class="error" role="alert" data-code="{{.Error.Code}}" data-request-id="{{.RequestID}}">{{.Error.Message}}</div>`,
))

// statusCodes maps the statuses Fiber raises on its own to error codes.
var statusCodes = map[int]errorEnvelope{
	fiber.StatusBadRequest:           {Code: "BAD_REQUEST", Message: "bad request"},
	fiber.StatusNotFound:             {Code: "NOT_FOUND", Message: "resource not found"},
	fiber.StatusMethodNotAllowed:     {Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"},
	fiber.StatusUnsupportedMediaType: {Code: "UNSUPPORTED_MEDIA_TYPE", Message: "unsupported media type"},
}

func requestIDFromCtx(c *fiber.Ctx) string {
	s, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	return s
}

// writeError answers with code and a safe message: an HTML fragment when the
// request came from htmx, the JSON envelope otherwise.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error:     errorEnvelope{Code: code, Message: message},
	}

	if !wantsFragment(c) {
		return c.Status(status).JSON(res)
	}

	var buf bytes.Buffer
	if err := errorFragment.Execute(&buf, res); err != nil {
		return c.Status(status).JSON(res)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// ErrorHandler is the app-wide Fiber error handler. Errors that are not a
// *fiber.Error (panics recovered by the recover middleware included) are 500s.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		env, ok := statusCodes[status]
		if !ok {
			env = errorEnvelope{Code: "INTERNAL_ERROR", Message: "internal server error"}
		}
		return writeError(c, status, env.Code, env.Message)
	}
}
