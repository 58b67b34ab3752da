package handler

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"htmxcontacts/docs"
	"htmxcontacts/internal/http/middleware"
)

// RegisterMetrics exposes gatherer in the Prometheus text format.
func RegisterMetrics(app *fiber.App, gatherer prometheus.Gatherer) {
	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// swaggerMu guards docs.SwaggerInfo, which swag reads while rendering doc.json.
var swaggerMu sync.Mutex

// RegisterSwagger serves the API docs UI with the host and scheme the caller used.
func RegisterSwagger(app *fiber.App) {
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		swaggerMu.Lock()
		defer swaggerMu.Unlock()

		// SwaggerInfo outlives the request; fasthttp reuses header buffers.
		docs.SwaggerInfo.Host = utils.CopyString(c.Get("Host"))
		docs.SwaggerInfo.Schemes = []string{utils.CopyString(scheme)}

		return swagger.HandlerDefault(c)
	})
}
