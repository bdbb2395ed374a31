package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/samirwankhede/contact-relay/internal/api/contact"
	"github.com/samirwankhede/contact-relay/internal/config"
	"github.com/samirwankhede/contact-relay/internal/mailer"
	"github.com/samirwankhede/contact-relay/internal/middleware"
	contactService "github.com/samirwankhede/contact-relay/internal/service/contact"
)

// RegisterRoutes wires all HTTP routes. Middleware is installed before any
// route so that CORS headers reach every response, including 404s and
// preflight requests.
func RegisterRoutes(r *gin.Engine, log *zap.Logger, cfg config.Config, sender mailer.Sender) {
	r.Use(middleware.CORS(cfg.AllowAllOrigins(), cfg.CORSOrigins))
	r.Use(middleware.MetricsMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "contact-relay",
			"description": "Relays portfolio contact form submissions to a mailbox.",
			"version":     "1.0.0",
			"docs":        "/docs",
			"endpoints":   []string{"/api/health", "/api/contact"},
		})
	})
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	RegisterDocs(r)

	contactSvc := contactService.NewContactService(log, sender, cfg.EmailUser)
	contact.NewContactHandler(log, contactSvc).Register(r)
}
