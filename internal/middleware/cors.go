package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows browser calls from the given origins, or from any origin when
// allowAll is set. With allowAll every response carries
// Access-Control-Allow-Origin: *, including requests without an Origin header.
func CORS(allowAll bool, origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if !allowAll {
		cfg.AllowOrigins = origins
		return cors.New(cfg)
	}

	cfg.AllowAllOrigins = true
	handle := cors.New(cfg)
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		handle(c)
	}
}
