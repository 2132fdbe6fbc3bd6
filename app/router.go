// HTTP route wiring shared by all deployments.
package app

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbrown517/Veteran-Compass-Corps/auth"
)

const requestIDKey = "request_id"

// NewRouter builds the HTTP router. The verifier may be nil; billing
// routes then reject every request while /health and the webhook stay up,
// and /api/chat answers 401 from its own identity resolution.
func NewRouter(s *Server, verifier *auth.Verifier) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": "An unexpected error occurred. Please try again.",
		})
	}))
	router.Use(RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/health", s.Health)
	router.POST("/api/chat", s.Chat)
	router.POST("/api/stripe/webhook", s.StripeWebhook)

	billing := router.Group("/api/billing")
	billing.Use(auth.Middleware(verifier))
	billing.POST("/create-checkout-session", s.CreateCheckoutSession)
	billing.POST("/portal-session", s.CreatePortalSession)

	return router
}

// RequestID tags each request with an ID for log correlation and echoes
// it back as X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
